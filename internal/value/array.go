// Copyright 2026 The Strada Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import "sort"

const defaultArrayCapacity = 8

// ArrayBody is the ordered, growable sequence backing a Value of kind
// Array. It carries its own refcount (an Array value wrapped in a Ref can
// be aliased, so the body must be independently shareable) and holds
// owning references to every element: pushing a Value increments its
// refcount (unless the caller uses the "take" variant), and releasing the
// body decrefs every element in order.
type ArrayBody struct {
	elems    []*Value
	refcount int32
}

func newArrayBody(capacityHint int) *ArrayBody {
	cap := capacityHint
	if cap < defaultArrayCapacity {
		cap = defaultArrayCapacity
	}
	return &ArrayBody{elems: make([]*Value, 0, cap), refcount: 1}
}

// Len returns the number of elements.
func (a *ArrayBody) Len() int { return len(a.elems) }

func (a *ArrayBody) normalizeIndex(i int) int {
	if i < 0 {
		return len(a.elems) + i
	}
	return i
}

// Get returns a borrowed handle to the element at i (negative indices
// count from the end), or Undef if out of range. The caller does not own
// an extra reference to the returned Value.
func (a *ArrayBody) Get(i int) *Value {
	idx := a.normalizeIndex(i)
	if idx < 0 || idx >= len(a.elems) {
		return NewUndef()
	}
	return a.elems[idx]
}

// Set replaces the element at i with v (taking ownership of one
// reference to v), padding with Undef if i is past the current end. Any
// prior occupant is released. Negative indices count from the end of the
// array as it stood before any padding.
func (a *ArrayBody) Set(i int, v *Value) {
	idx := i
	if idx < 0 {
		idx = len(a.elems) + idx
		if idx < 0 {
			return
		}
	}
	for idx >= len(a.elems) {
		a.elems = append(a.elems, NewUndef())
	}
	Release(a.elems[idx])
	a.elems[idx] = v
}

// Push appends v, taking ownership of one reference (the "take" variant
// named in spec.md §3: "Both variants must exist for array push"). Use
// PushBorrow when the caller wants to retain its own reference.
func (a *ArrayBody) Push(v *Value) {
	a.elems = append(a.elems, v)
}

// PushBorrow appends v without transferring ownership: it increments v's
// refcount itself, leaving the caller's reference intact. This is the
// "borrow" variant the code generator selects when it still needs to use
// v afterwards.
func (a *ArrayBody) PushBorrow(v *Value) {
	a.elems = append(a.elems, Retain(v))
}

// Pop removes and returns the last element, transferring ownership of its
// reference to the caller (mirrors C Perl/Strada pop semantics: the
// caller must eventually Release it). Returns a fresh Undef if empty.
func (a *ArrayBody) Pop() *Value {
	n := len(a.elems)
	if n == 0 {
		return NewUndef()
	}
	v := a.elems[n-1]
	a.elems = a.elems[:n-1]
	return v
}

// Shift removes and returns the first element, transferring ownership.
func (a *ArrayBody) Shift() *Value {
	if len(a.elems) == 0 {
		return NewUndef()
	}
	v := a.elems[0]
	a.elems = a.elems[1:]
	return v
}

// Unshift prepends v, taking ownership of one reference.
func (a *ArrayBody) Unshift(v *Value) {
	a.elems = append([]*Value{v}, a.elems...)
}

// Reverse reverses the element order in place.
func (a *ArrayBody) Reverse() {
	for i, j := 0, len(a.elems)-1; i < j; i, j = i+1, j-1 {
		a.elems[i], a.elems[j] = a.elems[j], a.elems[i]
	}
}

// Reserve grows the backing slice's capacity to at least n without
// changing its length.
func (a *ArrayBody) Reserve(n int) {
	if cap(a.elems) >= n {
		return
	}
	grown := make([]*Value, len(a.elems), n)
	copy(grown, a.elems)
	a.elems = grown
}

// Sort returns a new ArrayBody holding the same elements (each retained)
// ordered by byte-wise (ASCII/lexical) comparison of their string
// coercion. Go's sort.SliceStable is used so repeated sorts of
// already-sorted data are cheap and so callers who need determinism
// across equal keys get it, even though spec.md §9 leaves stability an
// open question for this source family — this reimplementation commits
// to "stable" as the documented, testable behavior.
func (a *ArrayBody) Sort(toStr func(*Value) string) *ArrayBody {
	out := make([]*Value, len(a.elems))
	copy(out, a.elems)
	sort.SliceStable(out, func(i, j int) bool {
		return toStr(out[i]) < toStr(out[j])
	})
	for _, v := range out {
		Retain(v)
	}
	return &ArrayBody{elems: out, refcount: 1}
}

// NSort is Sort's numeric sibling: elements are ordered by their coerced
// float64 value.
func (a *ArrayBody) NSort(toNum func(*Value) float64) *ArrayBody {
	out := make([]*Value, len(a.elems))
	copy(out, a.elems)
	sort.SliceStable(out, func(i, j int) bool {
		return toNum(out[i]) < toNum(out[j])
	})
	for _, v := range out {
		Retain(v)
	}
	return &ArrayBody{elems: out, refcount: 1}
}

// Range builds a new ArrayBody containing the inclusive integer sequence
// from a to b, ascending if a <= b, descending otherwise.
func Range(a, b int64) *ArrayBody {
	var n int64
	if a <= b {
		n = b - a + 1
	} else {
		n = a - b + 1
	}
	body := newArrayBody(int(n))
	if a <= b {
		for x := a; x <= b; x++ {
			body.elems = append(body.elems, NewInt(x))
		}
	} else {
		for x := a; x >= b; x-- {
			body.elems = append(body.elems, NewInt(x))
		}
	}
	return body
}

// retainArray increments the body's own refcount (distinct from any
// single Value wrapping it — multiple Ref values may alias one body).
func retainArray(b *ArrayBody) *ArrayBody {
	b.refcount++
	return b
}

func (a *ArrayBody) release() {
	a.refcount--
	if a.refcount > 0 {
		return
	}
	for _, e := range a.elems {
		Release(e)
	}
	a.elems = nil
}
