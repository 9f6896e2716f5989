// Copyright 2024 The xfile Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package xfile

import (
	"bytes"
	"testing"
)

func TestLoadStreamAlignment(t *testing.T) {
	tests := []struct {
		name  string
		width uint64
		read  func(s *LoadStream) error
	}{
		{"u16", 2, func(s *LoadStream) error { _, err := s.ReadUint16(); return err }},
		{"u32", 4, func(s *LoadStream) error { _, err := s.ReadUint32(); return err }},
		{"u64", 8, func(s *LoadStream) error { _, err := s.ReadUint64(); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := make([]byte, 1+32)
			s := newLoadStream(bytes.NewReader(buf))

			if _, err := s.ReadByte(); err != nil {
				t.Fatalf("ReadByte failed: %v", err)
			}
			if err := tt.read(s); err != nil {
				t.Fatalf("read failed: %v", err)
			}
			if s.Position()%tt.width != 0 {
				t.Errorf("position %d is not a multiple of %d", s.Position(), tt.width)
			}
		})
	}
}

func TestLoadStreamUnexpectedEOF(t *testing.T) {
	s := newLoadStream(bytes.NewReader([]byte{1, 2}))
	if _, err := s.ReadUint32(); err != ErrUnexpectedEOF {
		t.Fatalf("got error %v, want ErrUnexpectedEOF", err)
	}
}

func TestReadCStringRangeViolation(t *testing.T) {
	s := newLoadStream(bytes.NewReader(bytes.Repeat([]byte{'a'}, 100)))
	if _, err := s.readCString(8); err != ErrRangeViolation {
		t.Fatalf("got error %v, want ErrRangeViolation", err)
	}
}

func TestReadCStringFindsTerminator(t *testing.T) {
	s := newLoadStream(bytes.NewReader([]byte("hi\x00trailing")))
	got, err := s.readCString(64)
	if err != nil {
		t.Fatalf("readCString failed: %v", err)
	}
	if string(got) != "hi" {
		t.Errorf("got %q, want %q", got, "hi")
	}
}
