// Copyright 2024 The xfile Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package xfile

import (
	"fmt"

	"golang.org/x/text/encoding/unicode"
)

// Font is a named glyph set plus a caption string stored in-stream as
// UTF-16LE, matching the engine's native wide-char text fields.
type Font struct {
	Name       string
	GlyphCount uint16
	Caption    string
}

func decodeFont(d *Decoder, ctx *decodeContext) (interface{}, string, error) {
	ctx.push("Font")
	defer ctx.pop()

	name, err := d.str(ctx, "name", "")
	if err != nil {
		return nil, "", err
	}
	glyphCount, err := d.u16(ctx, "glyphCount")
	if err != nil {
		return nil, "", err
	}

	caption, err := d.readUTF16Caption(ctx, "caption")
	if err != nil {
		return nil, "", err
	}

	return &Font{Name: name, GlyphCount: glyphCount, Caption: caption}, name, nil
}

// readUTF16Caption reads a pointer-to-bytes field whose inline payload is a
// byte length followed by that many bytes of UTF-16LE text (no NUL
// terminator convention of its own — the byte length is authoritative).
func (d *Decoder) readUTF16Caption(ctx *decodeContext, field string) (string, error) {
	ctx.push(field)
	defer ctx.pop()

	ptr, err := d.stream.ReadPointer()
	if err != nil {
		return "", ctx.wrap(err)
	}

	switch ptr.Kind() {
	case PointerKindInline:
		byteLen, err := d.u32(ctx, "byteLen")
		if err != nil {
			return "", err
		}
		raw, err := d.stream.ReadBytes(byteLen)
		if err != nil {
			return "", ctx.wrap(err)
		}
		if err := d.stream.AlignTo(4); err != nil {
			return "", ctx.wrap(err)
		}

		decoded, err := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder().Bytes(raw)
		if err != nil {
			return "", ctx.wrap(fmt.Errorf("%w: caption: %v", ErrInvariantViolation, err))
		}
		return string(decoded), nil

	case PointerKindLoaded:
		return "", ctx.wrap(fmt.Errorf("%w: caption has no already-loaded form", ErrIllegalSentinel))

	default:
		return "", nil
	}
}
