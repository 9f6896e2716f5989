// Copyright 2024 The xfile Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package xfile

import "testing"

func TestPointerKind(t *testing.T) {
	tests := []struct {
		word PointerWord
		want PointerKind
	}{
		{PointerInline, PointerKindInline},
		{PointerLoaded, PointerKindLoaded},
		{0x12345678, PointerKindOpaque},
		{0, PointerKindOpaque},
	}

	for _, tt := range tests {
		if got := tt.word.Kind(); got != tt.want {
			t.Errorf("PointerWord(0x%x).Kind() = %v, want %v", uint32(tt.word), got, tt.want)
		}
	}
}

func TestRegistryWriteOnce(t *testing.T) {
	r := newRegistry()
	key := RegistryKey{Kind: AssetKindMaterial, Identity: "mat_floor"}

	if err := r.Insert(key, &Material{Name: "mat_floor"}); err != nil {
		t.Fatalf("first Insert failed: %v", err)
	}
	if err := r.Insert(key, &Material{Name: "mat_floor"}); err == nil {
		t.Fatalf("second Insert succeeded, want ErrDuplicateInline")
	}

	v, ok := r.Lookup(key)
	if !ok {
		t.Fatalf("Lookup(%v) failed after Insert", key)
	}
	if v.(*Material).Name != "mat_floor" {
		t.Errorf("got %+v, want mat_floor", v)
	}
}

func TestRegistryUnnamedIdentitiesAreDistinct(t *testing.T) {
	r := newRegistry()
	a := r.nextUnnamedIdentity()
	b := r.nextUnnamedIdentity()
	if a == b {
		t.Errorf("nextUnnamedIdentity returned the same value twice: %q", a)
	}
}
