// Copyright 2026 The Strada Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import "strings"

// bothInt reports whether a and b are both Int, in which case integer
// arithmetic is used directly instead of routing through float64.
func bothInt(a, b *Value) bool { return a.kind == Int && b.kind == Int }

// Add, Sub, Mul follow spec.md §4.3: operate on Int when both operands
// are Int, otherwise coerce both to Num.
func Add(a, b *Value) *Value {
	if bothInt(a, b) {
		return NewInt(a.i + b.i)
	}
	return NewNum(CoerceNum(a) + CoerceNum(b))
}

func Sub(a, b *Value) *Value {
	if bothInt(a, b) {
		return NewInt(a.i - b.i)
	}
	return NewNum(CoerceNum(a) - CoerceNum(b))
}

func Mul(a, b *Value) *Value {
	if bothInt(a, b) {
		return NewInt(a.i * b.i)
	}
	return NewNum(CoerceNum(a) * CoerceNum(b))
}

// Div always yields Num (even for two Ints), matching source-language
// division semantics where "/" is float division and integer division is
// a distinct, explicit operator.
func Div(a, b *Value) *Value {
	return NewNum(CoerceNum(a) / CoerceNum(b))
}

// Spaceship returns -1, 0, or 1 by numeric comparison of a and b.
func Spaceship(a, b *Value) *Value {
	x, y := CoerceNum(a), CoerceNum(b)
	switch {
	case x < y:
		return NewInt(-1)
	case x > y:
		return NewInt(1)
	default:
		return NewInt(0)
	}
}

// Cmp returns -1, 0, or 1 by byte-wise string comparison of a and b.
func Cmp(a, b *Value) *Value {
	return NewInt(int64(strings.Compare(CoerceStr(a), CoerceStr(b))))
}

// NumEq, NumLt etc. are the numeric comparison family; string comparisons
// live alongside Cmp above. Only this handful is exposed; others follow
// the same pattern trivially.
func NumEq(a, b *Value) bool { return CoerceNum(a) == CoerceNum(b) }
func NumLt(a, b *Value) bool { return CoerceNum(a) < CoerceNum(b) }
func NumLe(a, b *Value) bool { return CoerceNum(a) <= CoerceNum(b) }
func NumGt(a, b *Value) bool { return CoerceNum(a) > CoerceNum(b) }
func NumGe(a, b *Value) bool { return CoerceNum(a) >= CoerceNum(b) }
func StrEq(a, b *Value) bool { return CoerceStr(a) == CoerceStr(b) }

// ConcatSV coerces both operands to their string form and allocates a
// single new Str holding their concatenation, with refcount 1.
//
// In-place append is deliberately NOT performed here even when
// a.Refcount() == 1: the runtime cannot tell a sole-owned temporary from
// an aliased global by refcount alone, and the C source this is ported
// from disables the optimization for exactly that reason (spec.md §4.3,
// §9). Code generators that can separately prove sole ownership should
// call AppendInPlace instead.
func ConcatSV(a, b *Value) *Value {
	as, bs := CoerceStr(a), CoerceStr(b)
	out := make([]byte, 0, len(as)+len(bs))
	out = append(out, as...)
	out = append(out, bs...)
	return NewStr(out)
}

// AppendInPlace mutates a Str value's bytes directly, for callers who
// have already proven (outside this package) that no other reference to
// a can observe the old contents. This is the explicit, distinctly-named
// escape hatch spec.md §4.3 permits; ConcatSV must never do this itself.
func AppendInPlace(a *Value, b *Value) {
	if a.kind != Str {
		return
	}
	a.s = append(a.s, CoerceStr(b)...)
}

// IncDecResult is returned by Inc/Dec: the new Value installed in the
// variable slot, and (for the postfix form) a still-owned handle to the
// value that was there before the operation.
type IncDecResult struct {
	New *Value
	Old *Value
}

// Inc implements both prefix and postfix increment. The variable slot is
// always replaced with a freshly-allocated numeric Value (never mutated
// in place, for the same aliasing reason as ConcatSV); the postfix form
// additionally hands back a retained reference to the pre-increment
// value so the expression's result reads as the old value.
func Inc(old *Value, postfix bool) IncDecResult {
	var next *Value
	if old.kind == Int {
		next = NewInt(old.i + 1)
	} else {
		next = NewNum(CoerceNum(old) + 1)
	}
	if postfix {
		return IncDecResult{New: next, Old: Retain(old)}
	}
	return IncDecResult{New: next, Old: next}
}

// Dec is Inc's mirror image.
func Dec(old *Value, postfix bool) IncDecResult {
	var next *Value
	if old.kind == Int {
		next = NewInt(old.i - 1)
	} else {
		next = NewNum(CoerceNum(old) - 1)
	}
	if postfix {
		return IncDecResult{New: next, Old: Retain(old)}
	}
	return IncDecResult{New: next, Old: next}
}

// Size implements the generic size() operation of spec.md §4.5: it works
// on Array, Hash, and Str directly, and follows through a Ref to its
// target exactly once (not recursively through chained refs).
func Size(v *Value) int64 {
	switch v.kind {
	case Array:
		return int64(v.arr.Len())
	case Hash:
		return int64(v.dict.Len())
	case Str:
		return int64(len(v.s))
	case Ref:
		if v.ref == nil || v.ref.kind == Ref {
			return 0
		}
		return Size(v.ref)
	default:
		return 0
	}
}
