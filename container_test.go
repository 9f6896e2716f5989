// Copyright 2024 The xfile Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package xfile

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestParseHeaderRejectsBadMagic(t *testing.T) {
	tests := [][]byte{
		append([]byte("randombyt"), make([]byte, 7)...),
		make([]byte, headerSize),
		append([]byte("IWffu101"), make([]byte, 8)...),
	}

	for _, raw := range tests {
		if _, err := parseHeader(raw); err != ErrBadMagic {
			t.Errorf("parseHeader(%q) = %v, want ErrBadMagic", raw[:8], err)
		}
	}
}

func TestParseHeaderTruncated(t *testing.T) {
	if _, err := parseHeader(make([]byte, headerSize-1)); err != ErrTruncatedContainer {
		t.Fatalf("got %v, want ErrTruncatedContainer", err)
	}
}

func TestParseHeaderVersionGate(t *testing.T) {
	raw := make([]byte, headerSize)
	copy(raw, magicUnencrypted[:])
	raw[8] = PlatformPC

	binary.LittleEndian.PutUint32(raw[12:16], fileVersion+1)
	if _, err := parseHeader(raw); err != ErrUnsupportedVersion {
		t.Fatalf("got %v, want ErrUnsupportedVersion", err)
	}

	binary.LittleEndian.PutUint32(raw[12:16], fileVersion)
	h, err := parseHeader(raw)
	if err != nil {
		t.Fatalf("parseHeader failed on supported version: %v", err)
	}
	if h.signed {
		t.Errorf("expected unsigned header")
	}
}

func TestParseHeaderUnsupportedPlatform(t *testing.T) {
	raw := make([]byte, headerSize)
	copy(raw, magicUnencrypted[:])
	raw[8] = 0x7F
	binary.LittleEndian.PutUint32(raw[12:16], fileVersion)

	if _, err := parseHeader(raw); err != ErrUnsupportedPlatform {
		t.Fatalf("got %v, want ErrUnsupportedPlatform", err)
	}
}

func TestVerifySignatureFailsOnNonPKCS7Trailer(t *testing.T) {
	full := bytes.Repeat([]byte{0x41}, minSignatureBlock+16)
	if _, err := verifySignature(full); err == nil {
		t.Errorf("verifySignature unexpectedly succeeded on a non-PKCS7 trailer")
	}
}
