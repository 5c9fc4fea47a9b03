// Copyright 2026 The Strada Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ref implements the Strada runtime's reference and anonymous-
// constructor layer: a first-class Ref value pointing at another Value
// with shared ownership, and the anon_array/anon_hash builders the
// language uses for literal "[...]" and "{...}" expressions. See
// spec.md §4.6.
package ref

import "strada-lang/runtime/internal/value"

// MakeRef allocates a Ref value pointing at target, incrementing target's
// refcount (the Ref itself starts at refcount 1, owned by the caller).
func MakeRef(target *value.Value) *value.Value {
	value.Retain(target)
	return value.NewRefBare(target)
}

// MakeRefTake allocates a Ref value pointing at target WITHOUT
// incrementing target's refcount: it adopts the caller's existing
// reference. This is the variant used when wrapping a just-constructed
// container (anon_array/anon_hash below), so the container is not
// double-retained.
func MakeRefTake(target *value.Value) *value.Value {
	return value.NewRefBare(target)
}

// DerefScalar returns an owned (incref'd) handle to ref's target.
// Dereferencing a Ref whose target is Undef is legal and yields Undef.
func DerefScalar(ref *value.Value) *value.Value {
	return value.Retain(ref.Target())
}

// DerefSet mutates ref's target in place so it matches newValue's kind
// and payload. This is the aliasing primitive: every observer holding the
// same target Value (including other Refs, and captured closure slots
// pointing at it) sees the change, because no new Value is allocated —
// only the existing one's payload is overwritten.
func DerefSet(ref *value.Value, newValue *value.Value) {
	value.Overwrite(ref.Target(), newValue)
}

// AnonArray builds an Array Value from elems (ownership of each is taken
// without a Retain, matching ArrayBody.Push's contract, since elems are freshly
// evaluated expression results the caller no longer needs directly) and
// wraps it via MakeRefTake.
func AnonArray(elems ...*value.Value) *value.Value {
	arr := value.NewArray()
	for _, e := range elems {
		arr.Array().Push(e)
	}
	return MakeRefTake(arr)
}

// AnonHash builds a Hash Value from alternating key/value pairs and wraps
// it via MakeRefTake. kvPairs must have even length; keys are coerced to
// string.
func AnonHash(kvPairs ...*value.Value) *value.Value {
	h := value.NewHash()
	for i := 0; i+1 < len(kvPairs); i += 2 {
		h.Hash().Set(value.CoerceStr(kvPairs[i]), kvPairs[i+1])
	}
	return MakeRefTake(h)
}
