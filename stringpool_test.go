// Copyright 2024 The xfile Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package xfile

import "testing"

func TestStringPoolInterningByContent(t *testing.T) {
	p := newStringPool()

	a := p.intern([]byte("hello"))
	b := p.intern([]byte("hello"))
	c := p.intern([]byte("world"))

	if a != b {
		t.Errorf("expected identical content to intern to the same handle, got %p and %p", a, b)
	}
	if a == c {
		t.Errorf("expected different content to intern to different handles")
	}
}

func TestStringPoolLookupMiss(t *testing.T) {
	p := newStringPool()
	if _, ok := p.lookup([]byte("nope")); ok {
		t.Errorf("lookup succeeded for a string never interned")
	}
}
