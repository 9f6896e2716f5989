// Copyright 2024 The xfile Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package xfile

// LocalizeEntry binds a lookup key to its default-language text. Locale
// selection among languages is out of scope; this core only exposes the
// single text the container carries.
type LocalizeEntry struct {
	Key   string
	Value string
}

func decodeLocalizeEntry(d *Decoder, ctx *decodeContext) (interface{}, string, error) {
	ctx.push("LocalizeEntry")
	defer ctx.pop()

	key, err := d.str(ctx, "key", "")
	if err != nil {
		return nil, "", err
	}
	value, err := d.str(ctx, "value", "")
	if err != nil {
		return nil, "", err
	}

	return &LocalizeEntry{Key: key, Value: value}, key, nil
}
