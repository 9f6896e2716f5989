// Copyright 2024 The xfile Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

//go:build gofuzz

package xfile

// Fuzz decodes data as an XFile container, exercising the header parser,
// decompressor, load stream and every registered asset decoder from a
// single entrypoint. Returns 1 for inputs worth prioritizing (a clean
// decode), 0 otherwise.
func Fuzz(data []byte) int {
	d, err := OpenBytes(data, nil)
	if err != nil {
		return 0
	}
	defer d.Close()

	if _, err := d.Decode(); err != nil {
		return 0
	}
	return 1
}
