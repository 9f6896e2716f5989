// Copyright 2024 The xfile Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package xfile

// TechniqueSet names the shader technique variants a Material selects
// between. It is usually shared across many materials, which is why it is
// the canonical example in scenario 3/4 of the already-loaded sentinel.
type TechniqueSet struct {
	Name string
}

func decodeTechniqueSetBody(d *Decoder, ctx *decodeContext) (*TechniqueSet, string, error) {
	name, err := d.str(ctx, "name", "")
	if err != nil {
		return nil, "", err
	}
	return &TechniqueSet{Name: name}, name, nil
}

func decodeTechniqueSet(d *Decoder, ctx *decodeContext) (interface{}, string, error) {
	return decodeTechniqueSetBody(d, ctx)
}

// Material couples a surface name to a shared TechniqueSet referent. The
// techniqueSetName field is read before the techniqueSet pointer precisely
// so an already-loaded sentinel on the latter has an identity to resolve
// against, per §4.4.3.
type Material struct {
	Name         string
	TechniqueSet *TechniqueSet
}

func decodeMaterial(d *Decoder, ctx *decodeContext) (interface{}, string, error) {
	ctx.push("Material")
	defer ctx.pop()

	name, err := d.str(ctx, "name", "")
	if err != nil {
		return nil, "", err
	}

	techniqueSetName, err := d.str(ctx, "techniqueSetName", name)
	if err != nil {
		return nil, "", err
	}

	ctx.push("techniqueSet")
	value, _, err := d.readPointerTo(AssetKindTechniqueSet, techniqueSetName, func() (interface{}, string, error) {
		return decodeTechniqueSetBody(d, ctx)
	})
	ctx.pop()
	if err != nil {
		return nil, "", ctx.wrap(err)
	}

	var ts *TechniqueSet
	if value != nil {
		ts = value.(*TechniqueSet)
	}

	return &Material{Name: name, TechniqueSet: ts}, name, nil
}
