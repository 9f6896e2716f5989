// Copyright 2024 The xfile Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package xfile decodes IW-engine "Fastfile" containers: a fixed header,
// a zlib-compressed payload, and a sequential stream of tagged asset
// records linked by a pointer-sentinel fix-up protocol.
package xfile

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/edsrzf/mmap-go"

	"github.com/nightdive-tools/xfile/internal/xlog"
)

// defaultMaxStringLength bounds how far readCString will scan before giving
// up on finding a terminating NUL, guarding against a corrupt length
// driving an unbounded allocation.
const defaultMaxStringLength = 1 << 16

// Options configures a Decoder. The zero value is not ready to use; call
// Open/OpenBytes/OpenReader, which apply defaults to an unset Options.
type Options struct {
	// StrictUnknownKinds selects strict handling of unrecognized asset
	// kinds. Since record lengths are not self-describing, permissive mode
	// cannot skip past such a record either: in both modes Decode records
	// an UnknownAssetKind warning and returns ErrUnknownAssetKind, so this
	// flag does not change the outcome of a decode.
	StrictUnknownKinds bool

	// MaxLocalClients overrides MaxLocalClients for non-PC targets. Zero
	// means "use the PC default".
	MaxLocalClients int

	// MaxStringLength bounds a single interned string's byte length. Zero
	// means defaultMaxStringLength.
	MaxStringLength uint32

	// Logger receives a line for every Warning this decode accumulates, in
	// addition to the sidecar Warnings list on Result. Nil discards them.
	Logger xlog.Logger
}

func (o *Options) setDefaults() {
	if o.MaxLocalClients == 0 {
		o.MaxLocalClients = MaxLocalClients
	}
	if o.MaxStringLength == 0 {
		o.MaxStringLength = defaultMaxStringLength
	}
}

// Result is the outcome of a successful Decode.
type Result struct {
	Assets   []Asset
	Warnings []Warning
}

// Decoder holds the state of one in-progress or completed container decode.
// A Decoder is not safe for concurrent use.
type Decoder struct {
	opts *Options
	log  *xlog.Helper

	data mmap.MMap
	file *os.File

	signed   bool
	platform byte

	stream   *LoadStream
	registry *Registry
	strings  *StringPool

	warnings []Warning
	assets   []Asset
}

// Open memory-maps path and decodes it. The returned Decoder owns the
// mapping until Close.
func Open(path string, opts *Options) (*Decoder, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("xfile: mmap %s: %w", path, err)
	}
	d, err := newDecoder(bytes.NewReader(m), []byte(m), opts)
	if err != nil {
		m.Unmap()
		f.Close()
		return nil, err
	}
	d.data = m
	d.file = f
	return d, nil
}

// OpenBytes decodes a container already resident in memory. The slice must
// outlive the returned Decoder.
func OpenBytes(data []byte, opts *Options) (*Decoder, error) {
	return newDecoder(bytes.NewReader(data), data, opts)
}

// OpenReader decodes a container from r, buffering it fully in memory
// first; the signature check of a signed container needs the whole
// container at once, which a pure io.Reader cannot provide.
func OpenReader(r io.Reader, opts *Options) (*Decoder, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return newDecoder(bytes.NewReader(data), data, opts)
}

func newDecoder(r io.Reader, full []byte, opts *Options) (*Decoder, error) {
	if opts == nil {
		opts = &Options{}
	}
	o := *opts
	o.setDefaults()

	raw := make([]byte, headerSize)
	if _, err := io.ReadFull(r, raw); err != nil {
		return nil, ErrTruncatedContainer
	}
	h, err := parseHeader(raw)
	if err != nil {
		return nil, err
	}

	d := &Decoder{
		opts:     &o,
		log:      xlog.NewHelper(o.Logger),
		signed:   h.signed,
		platform: h.platform,
		registry: newRegistry(),
		strings:  newStringPool(),
	}

	if h.platform != PlatformPC {
		d.warn(WarnNonPCPlatform, fmt.Sprintf("platform byte 0x%02x", h.platform))
	}

	if h.signed {
		if _, err := verifySignature(full); err != nil {
			d.warn(WarnSignatureUnchecked, err.Error())
		}
	}

	inflated, err := newInflateReader(r)
	if err != nil {
		return nil, err
	}
	d.stream = newLoadStream(inflated)

	return d, nil
}

// Close releases the memory mapping and file handle, if Open allocated
// them. It is a no-op for decoders created via OpenBytes/OpenReader.
func (d *Decoder) Close() error {
	var err error
	if d.data != nil {
		err = d.data.Unmap()
	}
	if d.file != nil {
		if cerr := d.file.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

func (d *Decoder) warn(kind WarningKind, msg string) {
	w := Warning{Kind: kind, Message: msg}
	d.warnings = append(d.warnings, w)
	d.log.Warn(w.String())
}

// Decode runs C3 through C7 to completion, returning every decoded asset
// and warning accumulated along the way.
//
// An unknown asset kind is always fatal, in both strict and permissive
// mode: decodeAssetList already returns ErrUnknownAssetKind as soon as it
// records the warning, since it has no way to know how many bytes to skip
// to reach the next asset. Options.StrictUnknownKinds does not change this.
func (d *Decoder) Decode() (*Result, error) {
	if err := d.decodeAssetList(); err != nil {
		return nil, err
	}

	if err := d.probeTrailingBytes(); err != nil {
		return nil, err
	}

	return &Result{Assets: d.assets, Warnings: d.warnings}, nil
}

// probeTrailingBytes reads one byte past the last decoded asset; finding
// one is not an error by itself, only a TrailingBytes warning (P9), since
// the original loader stops as soon as assetCount records are consumed and
// never validates that the compressed stream ends there.
func (d *Decoder) probeTrailingBytes() error {
	_, err := d.stream.ReadByte()
	if err == nil {
		d.warn(WarnTrailingBytes, fmt.Sprintf("unconsumed bytes after offset %d", d.stream.Position()))
		return nil
	}
	if err == ErrUnexpectedEOF {
		return nil
	}
	return err
}
