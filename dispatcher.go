// Copyright 2024 The xfile Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package xfile

import "fmt"

// assetDecodeFunc decodes one asset body from the current cursor position,
// returning its decoded value and canonical name (empty for unnamed
// internals).
type assetDecodeFunc func(d *Decoder, ctx *decodeContext) (value interface{}, name string, err error)

// assetDecoders maps a recognized AssetKind to its decoder. Kinds absent
// from this map are schema errors: spec §4.6/§9 explain why an unknown
// kind cannot simply be skipped (record lengths are not self-describing).
var assetDecoders = map[AssetKind]assetDecodeFunc{
	AssetKindRawFile:         decodeRawFile,
	AssetKindMaterial:        decodeMaterial,
	AssetKindTechniqueSet:    decodeTechniqueSet,
	AssetKindImage:           decodeGfxImage,
	AssetKindSound:           decodeSndAlias,
	AssetKindFont:            decodeFont,
	AssetKindLocalizeEntry:   decodeLocalizeEntry,
	AssetKindPhysConstraints: decodePhysConstraints,
}

// decodeAssetList implements C6: it reads the payload preamble and drives
// a decoder per descriptor, in declaration order.
//
// The preamble's stringCount placeholder words are consumed here but
// otherwise inert: every scenario in spec §8 embeds its string bodies at
// the point a record's own pointer-to-string field is read (scenario 2's
// RawFile name, for instance), not in a separate up-front region, so this
// core treats stringCount as a reserved-slot count rather than a second
// stream of inline bodies. See DESIGN.md for the reasoning.
func (d *Decoder) decodeAssetList() error {
	ctx := newDecodeContext()
	ctx.push("assetList")

	assetCount, err := d.u32(ctx, "assetCount")
	if err != nil {
		return err
	}
	stringCount, err := d.u32(ctx, "stringCount")
	if err != nil {
		return err
	}

	for i := uint32(0); i < stringCount; i++ {
		ptr, err := d.stream.ReadPointer()
		if err != nil {
			return ctx.wrap(err)
		}
		if ptr != PointerInline {
			return ctx.wrap(fmt.Errorf("%w: string placeholder %d is not the inline sentinel", ErrInvariantViolation, i))
		}
	}

	type descriptor struct {
		kind AssetKind
		ptr  PointerWord
	}
	descriptors := make([]descriptor, assetCount)
	for i := range descriptors {
		kindRaw, err := d.u32(ctx, fmt.Sprintf("assetDescriptor[%d].kind", i))
		if err != nil {
			return err
		}
		ptr, err := d.stream.ReadPointer()
		if err != nil {
			return ctx.wrap(err)
		}
		if ptr != PointerInline {
			return ctx.wrap(fmt.Errorf("%w: asset descriptor %d pointer is not the inline sentinel", ErrInvariantViolation, i))
		}
		descriptors[i] = descriptor{kind: AssetKind(kindRaw), ptr: ptr}
	}
	ctx.pop()

	for i, desc := range descriptors {
		assetCtx := newDecodeContext()
		assetCtx.push(fmt.Sprintf("%s#%d", desc.kind, i))

		decode, ok := assetDecoders[desc.kind]
		if !ok {
			d.warn(WarnUnknownAssetKind, fmt.Sprintf("%s at asset index %d", desc.kind, i))
			// Permissive mode cannot know the unknown record's length, so
			// it degrades to "decode what precedes, warn, stop": the
			// warning becomes fatal because nothing after it can be
			// located in the stream.
			return assetCtx.wrap(fmt.Errorf("%w: %s", ErrUnknownAssetKind, desc.kind))
		}

		value, name, err := decode(d, assetCtx)
		if err != nil {
			return err
		}

		key := RegistryKey{Kind: desc.kind, Identity: name}
		if key.Identity == "" {
			key.Identity = d.registry.nextUnnamedIdentity()
		}
		if _, exists := d.registry.Lookup(key); !exists {
			_ = d.registry.Insert(key, value)
		}

		d.assets = append(d.assets, Asset{Kind: desc.kind, Name: name, Value: value})
	}

	return nil
}
