// Copyright 2024 The xfile Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package xfile

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"math"
	"testing"
)

// payloadBuilder assembles a decompressed payload byte-by-byte, mirroring
// the field order a real encoder would emit. It exists only for tests:
// there is no production encoder in this core.
type payloadBuilder struct {
	buf bytes.Buffer
}

func newPayloadBuilder() *payloadBuilder { return &payloadBuilder{} }

func (b *payloadBuilder) align(a int) *payloadBuilder {
	for b.buf.Len()%a != 0 {
		b.buf.WriteByte(0)
	}
	return b
}

func (b *payloadBuilder) u8(v uint8) *payloadBuilder {
	b.buf.WriteByte(v)
	return b
}

func (b *payloadBuilder) u16(v uint16) *payloadBuilder {
	b.align(2)
	var tmp [2]byte
	binary.LittleEndian.PutUint16(tmp[:], v)
	b.buf.Write(tmp[:])
	return b
}

func (b *payloadBuilder) u32(v uint32) *payloadBuilder {
	b.align(4)
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	b.buf.Write(tmp[:])
	return b
}

func (b *payloadBuilder) f32(v float32) *payloadBuilder {
	return b.u32(math.Float32bits(v))
}

func (b *payloadBuilder) pointer(p PointerWord) *payloadBuilder {
	return b.u32(uint32(p))
}

// inlineString writes the inline-sentinel + NUL-terminated bytes + padding
// form a string field takes when its pointer resolves to PointerKindInline.
func (b *payloadBuilder) inlineString(s string) *payloadBuilder {
	b.pointer(PointerInline)
	b.buf.WriteString(s)
	b.buf.WriteByte(0)
	return b.align(4)
}

func (b *payloadBuilder) loadedString() *payloadBuilder {
	return b.pointer(PointerLoaded)
}

// inlineBuffer writes the form an inline length-prefixed buffer takes
// (RawFile.Buffer, GfxImage.Pixels, SndAlias.PCM): pointer sentinel, raw
// bytes, padding. The length itself is a separate sibling field the caller
// writes before calling this.
func (b *payloadBuilder) inlineBuffer(raw []byte) *payloadBuilder {
	b.pointer(PointerInline)
	b.buf.Write(raw)
	return b.align(4)
}

func (b *payloadBuilder) bytes() []byte { return b.buf.Bytes() }

// container wraps a header plus the deflate-compressed payload into a full
// on-disk XFile image.
func container(t *testing.T, signed bool, platform byte, payload []byte) []byte {
	t.Helper()

	var out bytes.Buffer
	if signed {
		out.Write(magicSigned[:])
	} else {
		out.Write(magicUnencrypted[:])
	}
	out.WriteByte(platform)
	out.Write([]byte{0, 0, 0})
	var version [4]byte
	binary.LittleEndian.PutUint32(version[:], fileVersion)
	out.Write(version[:])

	zw := zlib.NewWriter(&out)
	if _, err := zw.Write(payload); err != nil {
		t.Fatalf("compressing payload: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("closing zlib writer: %v", err)
	}

	return out.Bytes()
}
