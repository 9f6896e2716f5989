// Copyright 2024 The xfile Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package xfile

import "fmt"

// maxPhysConstraints bounds a single PhysConstraints record's constraint
// count, guarding against a corrupt count field driving an unbounded
// allocation (spec's RangeViolation family).
const maxPhysConstraints = 1 << 12

// PhysConstraint is one ragdoll/rigid-body joint limit.
type PhysConstraint struct {
	Type       uint32
	TargetBone string
	Limit      float32
}

// PhysConstraints is a named set of joint constraints, as used by ragdoll
// and destructible physics.
type PhysConstraints struct {
	Name        string
	Constraints []PhysConstraint
}

func decodePhysConstraints(d *Decoder, ctx *decodeContext) (interface{}, string, error) {
	ctx.push("PhysConstraints")
	defer ctx.pop()

	name, err := d.str(ctx, "name", "")
	if err != nil {
		return nil, "", err
	}

	count, err := d.u32(ctx, "count")
	if err != nil {
		return nil, "", err
	}
	if count > maxPhysConstraints {
		return nil, "", ctx.wrap(fmt.Errorf("%w: constraint count %d exceeds %d", ErrRangeViolation, count, maxPhysConstraints))
	}

	constraints := make([]PhysConstraint, count)
	for i := range constraints {
		ctx.push(fmt.Sprintf("constraints[%d]", i))
		typ, err := d.u32(ctx, "type")
		if err != nil {
			return nil, "", err
		}
		bone, err := d.str(ctx, "targetBone", "")
		if err != nil {
			return nil, "", err
		}
		limit, err := d.f32(ctx, "limit")
		if err != nil {
			return nil, "", err
		}
		ctx.pop()
		constraints[i] = PhysConstraint{Type: typ, TargetBone: bone, Limit: limit}
	}

	return &PhysConstraints{Name: name, Constraints: constraints}, name, nil
}
