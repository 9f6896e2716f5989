// Copyright 2024 The xfile Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package xfile

import (
	"bufio"
	"encoding/binary"
	"io"
	"math"
)

// loadStreamBufferSize is the bufio.Reader buffer size backing every
// LoadStream; chosen to comfortably cover a single record read without
// refilling.
const loadStreamBufferSize = 64 * 1024

// LoadStream is the sole source of bytes for every structured read once the
// payload has been decompressed. It is strictly sequential: there is no
// seek, matching the original engine's single-pass load.
type LoadStream struct {
	r   *bufio.Reader
	pos uint64
}

func newLoadStream(r io.Reader) *LoadStream {
	return &LoadStream{r: bufio.NewReaderSize(r, loadStreamBufferSize)}
}

// Position reports the number of bytes consumed so far. Strictly
// informational, for diagnostics.
func (s *LoadStream) Position() uint64 { return s.pos }

// AlignTo advances the cursor to the next multiple of a (a must be a power
// of two in {1,2,4,8,16}), consuming but not inspecting the padding bytes.
func (s *LoadStream) AlignTo(a uint64) error {
	if a <= 1 {
		return nil
	}
	rem := s.pos % a
	if rem == 0 {
		return nil
	}
	return s.skip(a - rem)
}

func (s *LoadStream) skip(n uint64) error {
	if n == 0 {
		return nil
	}
	written, err := io.CopyN(io.Discard, s.r, int64(n))
	s.pos += uint64(written)
	if err != nil {
		return ErrUnexpectedEOF
	}
	return nil
}

// ReadBytes reads exactly n bytes with no alignment. Used for string and
// raw-buffer payloads, which carry no natural width of their own.
func (s *LoadStream) ReadBytes(n uint32) ([]byte, error) {
	buf := make([]byte, n)
	if n == 0 {
		return buf, nil
	}
	nr, err := io.ReadFull(s.r, buf)
	s.pos += uint64(nr)
	if err != nil {
		return nil, ErrUnexpectedEOF
	}
	return buf, nil
}

// ReadByte reads a single unaligned byte, satisfying io.ByteReader so the
// stream can be probed for a clean EOF (P9).
func (s *LoadStream) ReadByte() (byte, error) {
	b, err := s.r.ReadByte()
	if err != nil {
		return 0, ErrUnexpectedEOF
	}
	s.pos++
	return b, nil
}

// ReadUint8 reads one byte.
func (s *LoadStream) ReadUint8() (uint8, error) {
	return s.ReadByte()
}

// ReadUint16 reads a little-endian uint16, aligned to 2 bytes.
func (s *LoadStream) ReadUint16() (uint16, error) {
	if err := s.AlignTo(2); err != nil {
		return 0, err
	}
	b, err := s.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// ReadUint32 reads a little-endian uint32, aligned to 4 bytes.
func (s *LoadStream) ReadUint32() (uint32, error) {
	if err := s.AlignTo(4); err != nil {
		return 0, err
	}
	b, err := s.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// ReadUint64 reads a little-endian uint64, aligned to 8 bytes.
func (s *LoadStream) ReadUint64() (uint64, error) {
	if err := s.AlignTo(8); err != nil {
		return 0, err
	}
	b, err := s.ReadBytes(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// ReadInt32 reads a signed little-endian int32, aligned to 4 bytes.
func (s *LoadStream) ReadInt32() (int32, error) {
	u, err := s.ReadUint32()
	return int32(u), err
}

// ReadFloat32 reads an IEEE-754 little-endian float32, aligned to 4 bytes.
func (s *LoadStream) ReadFloat32() (float32, error) {
	u, err := s.ReadUint32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(u), nil
}

// ReadPointer reads one 32-bit pointer word. Pointer words are themselves
// 4-byte aligned scalars.
func (s *LoadStream) ReadPointer() (PointerWord, error) {
	v, err := s.ReadUint32()
	if err != nil {
		return 0, err
	}
	return PointerWord(v), nil
}

// readCString reads bytes up to and including a terminating NUL, returning
// the bytes before it. It refuses to read past maxLen bytes without finding
// one, per the §4.5 sanity cap.
func (s *LoadStream) readCString(maxLen uint32) ([]byte, error) {
	var out []byte
	for uint32(len(out)) < maxLen {
		b, err := s.ReadByte()
		if err != nil {
			return nil, err
		}
		if b == 0 {
			return out, nil
		}
		out = append(out, b)
	}
	return nil, ErrRangeViolation
}
