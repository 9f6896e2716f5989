// Copyright 2024 The xfile Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package xfile

import (
	"bytes"
	"encoding/binary"

	"go.mozilla.org/pkcs7"
)

const (
	// headerSize is the fixed, uncompressed header: 8-byte magic, platform
	// byte, 3 bytes of reserved padding, 4-byte version word.
	headerSize = 16

	// fileVersion is the single version word this core accepts, the PC
	// build of the IW engine's T5/BO1 variant.
	fileVersion uint32 = 0x183
)

// Platform byte sentinels. PC is the only value this core knows how to
// decode without a warning; see spec Open Question (a).
const (
	PlatformPC    byte = 0x00
	PlatformMacOS byte = 0x01
)

var (
	magicUnencrypted = [8]byte{'I', 'W', 'f', 'f', 'u', '1', '0', '0'}
	magicSigned      = [8]byte{'I', 'W', 'f', 'f', 's', '1', '0', '0'}
)

// header is the parsed, fixed-size container header.
type header struct {
	signed   bool
	platform byte
	version  uint32
}

// parseHeader validates the fixed header living at the front of raw. raw
// must be at least headerSize bytes.
func parseHeader(raw []byte) (header, error) {
	if len(raw) < headerSize {
		return header{}, ErrTruncatedContainer
	}

	var h header
	switch {
	case bytes.Equal(raw[:8], magicUnencrypted[:]):
		h.signed = false
	case bytes.Equal(raw[:8], magicSigned[:]):
		h.signed = true
	default:
		return header{}, ErrBadMagic
	}

	h.platform = raw[8]
	// raw[9:12] is reserved padding; consumed but not inspected.
	h.version = binary.LittleEndian.Uint32(raw[12:16])

	if h.version != fileVersion {
		return header{}, ErrUnsupportedVersion
	}

	switch h.platform {
	case PlatformPC, PlatformMacOS:
		// NonPCPlatform warning, if any, is emitted by the caller once it
		// has a logger/warnings sink to write to.
	default:
		return header{}, ErrUnsupportedPlatform
	}

	return h, nil
}

// minSignatureBlock is the smallest trailer verifySignature will attempt to
// parse as a PKCS7 structure.
const minSignatureBlock = 32

// verifySignature makes a best-effort attempt to parse a trailing PKCS7
// signature block out of the full, raw container bytes (header plus the
// still-compressed payload). The T5
// "signed" variant does not actually append a verifiable PKCS7 structure —
// this exists for the variants that might, and is expected to fail here,
// per spec Open Question (b): a failure simply means the caller falls back
// to Warning::SignatureUnchecked.
func verifySignature(full []byte) (*pkcs7.PKCS7, error) {
	if len(full) < minSignatureBlock {
		return nil, ErrTruncatedContainer
	}
	return pkcs7.Parse(full[len(full)-minSignatureBlock:])
}
