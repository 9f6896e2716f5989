// Copyright 2024 The xfile Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package xfile

import "fmt"

// PooledString is one interned, append-only string entry.
type PooledString struct {
	Bytes []byte
}

// StringPool is the decode-time set of interned byte strings embedded in
// the stream. Interning is by content equality.
type StringPool struct {
	byContent map[string]*PooledString
	order     []*PooledString
}

func newStringPool() *StringPool {
	return &StringPool{byContent: make(map[string]*PooledString)}
}

func (p *StringPool) intern(b []byte) *PooledString {
	key := string(b)
	if s, ok := p.byContent[key]; ok {
		return s
	}
	s := &PooledString{Bytes: append([]byte(nil), b...)}
	p.byContent[key] = s
	p.order = append(p.order, s)
	return s
}

func (p *StringPool) lookup(b []byte) (*PooledString, bool) {
	s, ok := p.byContent[string(b)]
	return s, ok
}

// readString implements the §4.5 string-read protocol for one pointer-to-
// string field.
//
// loadedIdentity is the byte content to resolve against when the pointer
// is the already-loaded sentinel. Standalone string fields (not an asset's
// own name) only ever carry that sentinel when the engine is pointing back
// at a string this same record already knows by content — typically its
// own name, or another field read earlier in the same record — so callers
// pass whatever sibling value plays that role; the empty string means "this
// field has no legal already-loaded form", producing IllegalSentinel.
func (d *Decoder) readString(ctx *decodeContext, loadedIdentity string) (string, error) {
	ptr, err := d.stream.ReadPointer()
	if err != nil {
		return "", err
	}

	switch ptr.Kind() {
	case PointerKindInline:
		raw, err := d.stream.readCString(d.opts.MaxStringLength)
		if err != nil {
			return "", err
		}
		if err := d.stream.AlignTo(4); err != nil {
			return "", err
		}
		pooled := d.strings.intern(raw)
		return string(pooled.Bytes), nil

	case PointerKindLoaded:
		if loadedIdentity == "" {
			return "", fmt.Errorf("%w: already-loaded string with no prior identity", ErrIllegalSentinel)
		}
		pooled, ok := d.strings.lookup([]byte(loadedIdentity))
		if !ok {
			return "", fmt.Errorf("%w: string %q", ErrDanglingReference, loadedIdentity)
		}
		return string(pooled.Bytes), nil

	default:
		// Opaque string pointers carry no embedded text. None of the
		// string-valued fields this core decodes are meant to carry a
		// runtime handle in their place, so the token itself is not worth
		// plumbing back out here; see GfxImage.RuntimeHandle for a field
		// where an opaque token is the point.
		return "", nil
	}
}
