// Copyright 2024 The xfile Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package xfile

import (
	"compress/zlib"
	"fmt"
	"io"
)

// newInflateReader wraps r, the bytes immediately following the header, in
// a streaming zlib/deflate reader. The IW engine packs its payload with a
// standard zlib-wrapped deflate stream; the returned reader is monotonic
// and exposes no seek.
func newInflateReader(r io.Reader) (io.Reader, error) {
	zr, err := zlib.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecompress, err)
	}
	return zr, nil
}
