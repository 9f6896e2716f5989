// Copyright 2024 The xfile Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package xfile

import (
	"errors"
	"fmt"
	"strings"
)

// Errors returned by the decoder. Every fallible operation returns one of
// these, wrapped with the context trail at the point of failure.
var (
	// ErrBadMagic is returned when the 8-byte magic does not match either
	// accepted value.
	ErrBadMagic = errors.New("xfile: bad magic")

	// ErrUnsupportedVersion is returned when the header version word is not
	// the single supported constant.
	ErrUnsupportedVersion = errors.New("xfile: unsupported version")

	// ErrUnsupportedPlatform is returned when the platform byte is neither
	// PC nor macOS.
	ErrUnsupportedPlatform = errors.New("xfile: unsupported platform")

	// ErrTruncatedContainer is returned when fewer than headerSize bytes
	// are available, and by verifySignature when the container is shorter
	// than minSignatureBlock.
	ErrTruncatedContainer = errors.New("xfile: truncated container")

	// ErrDecompress is returned when the deflate stream is malformed.
	ErrDecompress = errors.New("xfile: decompression error")

	// ErrUnexpectedEOF is returned when a structured read runs off the end
	// of the decompressed payload.
	ErrUnexpectedEOF = errors.New("xfile: unexpected EOF")

	// ErrDanglingReference is returned when an already-loaded pointer names
	// an identity that was never registered.
	ErrDanglingReference = errors.New("xfile: dangling reference")

	// ErrDuplicateInline is returned when the same (kind, identity) pair is
	// serialized inline twice.
	ErrDuplicateInline = errors.New("xfile: duplicate inline referent")

	// ErrIllegalSentinel is returned when a pointer sentinel appears where
	// its trichotomy has no legal interpretation for that field.
	ErrIllegalSentinel = errors.New("xfile: illegal pointer sentinel")

	// ErrUnknownAssetKind is returned when the asset dispatcher has no
	// decoder registered for a kind tag.
	ErrUnknownAssetKind = errors.New("xfile: unknown asset kind")

	// ErrUnknownSubKind is returned when a tagged sub-record's discriminant
	// has no known variant.
	ErrUnknownSubKind = errors.New("xfile: unknown sub kind")

	// ErrRangeViolation is returned when an array length or count field
	// exceeds a declared sanity bound.
	ErrRangeViolation = errors.New("xfile: range violation")

	// ErrInvariantViolation is returned when a field's value is
	// inconsistent with a sibling field's.
	ErrInvariantViolation = errors.New("xfile: invariant violation")
)

// WarningKind classifies a non-fatal decode condition.
type WarningKind string

// Recognized warning kinds. See spec §7.
const (
	WarnNonPCPlatform      WarningKind = "NonPCPlatform"
	WarnSignatureUnchecked WarningKind = "SignatureUnchecked"
	WarnTrailingBytes      WarningKind = "TrailingBytes"
	WarnUnknownAssetKind   WarningKind = "UnknownAssetKind"
)

// Warning is a recoverable condition observed during decode; it is
// accumulated on a sidecar list rather than aborting the decode, unless
// strict mode is enabled.
type Warning struct {
	Kind    WarningKind
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Kind, w.Message)
}

// decodeContext is the push/pop frame trail attached to fatal errors,
// identifying the asset kind, record type and field being decoded at the
// point of failure.
type decodeContext struct {
	frames []string
}

func newDecodeContext() *decodeContext {
	return &decodeContext{}
}

func (c *decodeContext) push(frame string) {
	c.frames = append(c.frames, frame)
}

func (c *decodeContext) pop() {
	c.frames = c.frames[:len(c.frames)-1]
}

func (c *decodeContext) trail() string {
	return strings.Join(c.frames, " -> ")
}

// DecodeError wraps a sentinel error with the context trail active when it
// occurred.
type DecodeError struct {
	Err   error
	Trail string
}

func (e *DecodeError) Error() string {
	if e.Trail == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s (at %s)", e.Err, e.Trail)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// wrap attaches the current trail to err. A nil err stays nil so callers can
// write `return d.wrap(err)` unconditionally.
func (c *decodeContext) wrap(err error) error {
	if err == nil {
		return nil
	}
	var de *DecodeError
	if errors.As(err, &de) {
		return err
	}
	return &DecodeError{Err: err, Trail: c.trail()}
}
