// Copyright 2024 The xfile Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package xfile

// The u8/u16/u32/u64/f32 helpers below thread a field name into the
// context trail only on the failure path, so the common case stays a
// three-line read without defer/push/pop noise at every call site.

func (d *Decoder) u8(ctx *decodeContext, field string) (uint8, error) {
	v, err := d.stream.ReadUint8()
	if err != nil {
		ctx.push(field)
		defer ctx.pop()
		return 0, ctx.wrap(err)
	}
	return v, nil
}

func (d *Decoder) u16(ctx *decodeContext, field string) (uint16, error) {
	v, err := d.stream.ReadUint16()
	if err != nil {
		ctx.push(field)
		defer ctx.pop()
		return 0, ctx.wrap(err)
	}
	return v, nil
}

func (d *Decoder) u32(ctx *decodeContext, field string) (uint32, error) {
	v, err := d.stream.ReadUint32()
	if err != nil {
		ctx.push(field)
		defer ctx.pop()
		return 0, ctx.wrap(err)
	}
	return v, nil
}

func (d *Decoder) u64(ctx *decodeContext, field string) (uint64, error) {
	v, err := d.stream.ReadUint64()
	if err != nil {
		ctx.push(field)
		defer ctx.pop()
		return 0, ctx.wrap(err)
	}
	return v, nil
}

func (d *Decoder) f32(ctx *decodeContext, field string) (float32, error) {
	v, err := d.stream.ReadFloat32()
	if err != nil {
		ctx.push(field)
		defer ctx.pop()
		return 0, ctx.wrap(err)
	}
	return v, nil
}

// str reads a pointer-to-string field, wrapping any failure with field in
// the trail. loadedIdentity is forwarded to readString unchanged.
func (d *Decoder) str(ctx *decodeContext, field, loadedIdentity string) (string, error) {
	ctx.push(field)
	defer ctx.pop()
	v, err := d.readString(ctx, loadedIdentity)
	if err != nil {
		return "", ctx.wrap(err)
	}
	return v, nil
}
