// Copyright 2024 The xfile Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package xfile

import "fmt"

// RawFile is an opaque, named blob embedded verbatim in the container —
// scripts, shader source, config text and the like. It carries no schema
// of its own beyond a length-prefixed buffer.
type RawFile struct {
	Name   string
	Buffer []byte
}

// decodeRawFile implements scenario 2: name, then a length, then the
// buffer itself behind its own pointer sentinel.
func decodeRawFile(d *Decoder, ctx *decodeContext) (interface{}, string, error) {
	name, err := d.str(ctx, "name", "")
	if err != nil {
		return nil, "", err
	}

	length, err := d.u32(ctx, "len")
	if err != nil {
		return nil, "", err
	}

	// RawFile bodies are always embedded in this container's intended use
	// (source text, config); a non-sentinel pointer here has no consumer in
	// this core, so the raw token is discarded. See GfxImage.RuntimeHandle
	// for a field where the opaque case is load-bearing.
	buf, _, err := d.readInlineBuffer(ctx, "buffer", length)
	if err != nil {
		return nil, "", err
	}

	return &RawFile{Name: name, Buffer: buf}, name, nil
}

// readInlineBuffer reads a length-prefixed byte buffer behind its own
// pointer sentinel: inline means exactly n raw bytes follow, aligned to 4
// afterward; already-loaded has no legal meaning for a raw buffer (it
// carries no content identity of its own); opaque means the field is a
// runtime handle this core does not resolve — the raw PointerWord is
// returned verbatim so a caller that cares (see GfxImage) can keep it.
func (d *Decoder) readInlineBuffer(ctx *decodeContext, field string, n uint32) ([]byte, PointerWord, error) {
	ctx.push(field)
	defer ctx.pop()

	ptr, err := d.stream.ReadPointer()
	if err != nil {
		return nil, 0, ctx.wrap(err)
	}

	switch ptr.Kind() {
	case PointerKindInline:
		buf, err := d.stream.ReadBytes(n)
		if err != nil {
			return nil, ptr, ctx.wrap(err)
		}
		if err := d.stream.AlignTo(4); err != nil {
			return nil, ptr, ctx.wrap(err)
		}
		return buf, ptr, nil
	case PointerKindLoaded:
		return nil, ptr, ctx.wrap(fmt.Errorf("%w: raw buffer has no already-loaded form", ErrIllegalSentinel))
	default:
		return nil, ptr, nil
	}
}
