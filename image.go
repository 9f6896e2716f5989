// Copyright 2024 The xfile Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package xfile

// GfxImage is a named texture: dimensions plus a length-prefixed pixel
// buffer. The original pixel format tag is preserved verbatim; this core
// does not interpret or decompress it.
//
// A streamed XFile can also describe an image whose pixel data was never
// embedded: the engine instead left a runtime GPU resource handle in the
// pointer slot. That case leaves Pixels nil and RuntimeHandle set to the
// raw, uninterpreted pointer word; the two are never both populated (an
// opaque pointer word of 0 leaves both empty).
type GfxImage struct {
	Name          string
	Width         uint16
	Height        uint16
	Format        uint8
	MipCount      uint8
	Pixels        []byte
	RuntimeHandle uint32
}

func decodeGfxImage(d *Decoder, ctx *decodeContext) (interface{}, string, error) {
	ctx.push("GfxImage")
	defer ctx.pop()

	name, err := d.str(ctx, "name", "")
	if err != nil {
		return nil, "", err
	}
	width, err := d.u16(ctx, "width")
	if err != nil {
		return nil, "", err
	}
	height, err := d.u16(ctx, "height")
	if err != nil {
		return nil, "", err
	}
	format, err := d.u8(ctx, "format")
	if err != nil {
		return nil, "", err
	}
	mipCount, err := d.u8(ctx, "mipCount")
	if err != nil {
		return nil, "", err
	}
	dataLen, err := d.u32(ctx, "dataLen")
	if err != nil {
		return nil, "", err
	}
	pixels, ptr, err := d.readInlineBuffer(ctx, "pixels", dataLen)
	if err != nil {
		return nil, "", err
	}

	var runtimeHandle uint32
	if ptr.Kind() == PointerKindOpaque {
		runtimeHandle = uint32(ptr)
	}

	return &GfxImage{
		Name:          name,
		Width:         width,
		Height:        height,
		Format:        format,
		MipCount:      mipCount,
		Pixels:        pixels,
		RuntimeHandle: runtimeHandle,
	}, name, nil
}
