// Copyright 2024 The xfile Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package xfile

import "fmt"

// PointerWord is a raw 32-bit pointer value as serialized in the stream.
// Its meaning is determined exclusively by its numeric value: see Kind.
type PointerWord uint32

// The two reserved pointer sentinels. Every other value is opaque.
const (
	PointerInline PointerWord = 0xFFFFFFFF
	PointerLoaded PointerWord = 0xFFFFFFFE
)

// PointerKind classifies a PointerWord.
type PointerKind int

const (
	// PointerKindInline means the referent is serialized in-stream,
	// immediately following any alignment padding.
	PointerKindInline PointerKind = iota
	// PointerKindLoaded means the referent was already serialized earlier
	// and must be retrieved from the registry by logical identity.
	PointerKindLoaded
	// PointerKindOpaque means the value denotes no in-stream payload and
	// must be preserved verbatim.
	PointerKindOpaque
)

// Kind classifies p.
func (p PointerWord) Kind() PointerKind {
	switch p {
	case PointerInline:
		return PointerKindInline
	case PointerLoaded:
		return PointerKindLoaded
	default:
		return PointerKindOpaque
	}
}

// RegistryKey identifies a decoded referent: its asset kind plus its
// logical identity (a canonical name for named assets, or a synthetic
// per-container index for unnamed internals).
type RegistryKey struct {
	Kind     AssetKind
	Identity string
}

func (k RegistryKey) String() string {
	return fmt.Sprintf("%s/%s", k.Kind, k.Identity)
}

// Registry is the decode-time map from logical identity to fully decoded
// referent. It is write-once per key: by construction (inline referents are
// always fully materialized before being registered, and an already-loaded
// sentinel can only target a prior entry) the decoded graph it backs is a
// DAG, never a cycle.
type Registry struct {
	entries   map[RegistryKey]interface{}
	order     []RegistryKey
	nextIndex uint64
}

func newRegistry() *Registry {
	return &Registry{entries: make(map[RegistryKey]interface{})}
}

// nextUnnamedIdentity mints the next per-container monotonic index used as
// the logical identity of an unnamed internal referent.
func (r *Registry) nextUnnamedIdentity() string {
	r.nextIndex++
	return fmt.Sprintf("#%d", r.nextIndex)
}

// Lookup retrieves the referent registered under key, if any.
func (r *Registry) Lookup(key RegistryKey) (interface{}, bool) {
	v, ok := r.entries[key]
	return v, ok
}

// Insert registers value under key. A second insertion under the same key
// is a DuplicateInline error: the registry is write-once.
func (r *Registry) Insert(key RegistryKey, value interface{}) error {
	if _, exists := r.entries[key]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateInline, key)
	}
	r.entries[key] = value
	r.order = append(r.order, key)
	return nil
}

// decodeInlineFunc performs the inline decode of one referent, returning
// its canonical identity (empty for unnamed internals, which get a
// synthetic index instead).
type decodeInlineFunc func() (value interface{}, identity string, err error)

// readPointerTo implements the §4.4 pointer protocol for a referent of the
// given asset kind. priorIdentity is the identity carried by a sibling
// field already read from the parent record (required, by the protocol,
// to precede any already-loaded reference to it); it is used only when the
// pointer resolves to PointerKindLoaded.
//
// The returned PointerWord lets opaque-pointer callers preserve the raw
// token; for PointerKindInline/PointerKindLoaded it is informational only.
func (d *Decoder) readPointerTo(kind AssetKind, priorIdentity string, decode decodeInlineFunc) (interface{}, PointerWord, error) {
	ptr, err := d.stream.ReadPointer()
	if err != nil {
		return nil, 0, err
	}

	switch ptr.Kind() {
	case PointerKindInline:
		value, identity, err := decode()
		if err != nil {
			return nil, ptr, err
		}
		key := RegistryKey{Kind: kind, Identity: identity}
		if key.Identity == "" {
			key.Identity = d.registry.nextUnnamedIdentity()
		}
		if err := d.registry.Insert(key, value); err != nil {
			return nil, ptr, err
		}
		return value, ptr, nil

	case PointerKindLoaded:
		if priorIdentity == "" {
			return nil, ptr, fmt.Errorf("%w: already-loaded %s with no prior identity", ErrIllegalSentinel, kind)
		}
		key := RegistryKey{Kind: kind, Identity: priorIdentity}
		v, ok := d.registry.Lookup(key)
		if !ok {
			return nil, ptr, fmt.Errorf("%w: %s", ErrDanglingReference, key)
		}
		return v, ptr, nil

	default:
		return nil, ptr, nil
	}
}
