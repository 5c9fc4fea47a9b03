// Copyright 2026 The Strada Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import "testing"

func TestConcatSVNeverMutatesInPlace(t *testing.T) {
	a := NewStr([]byte("hello "))
	b := NewStr([]byte("world"))
	c := ConcatSV(a, b)

	if got := CoerceStr(c); got != "hello world" {
		t.Fatalf("ConcatSV result = %q, want %q", got, "hello world")
	}
	if got := CoerceStr(a); got != "hello " {
		t.Fatalf("ConcatSV mutated operand a: %q", got)
	}
	if c.Refcount() != 1 {
		t.Fatalf("ConcatSV result refcount = %d, want 1", c.Refcount())
	}
}

func TestIncDecPostfixReturnsOldValue(t *testing.T) {
	slot := NewInt(5)
	res := Inc(slot, true)
	if res.Old.Int() != 5 {
		t.Fatalf("postfix Old = %d, want 5", res.Old.Int())
	}
	if res.New.Int() != 6 {
		t.Fatalf("postfix New = %d, want 6", res.New.Int())
	}
}

func TestIncDecPrefixReturnsNewValue(t *testing.T) {
	slot := NewInt(5)
	res := Inc(slot, false)
	if res.Old != res.New {
		t.Fatalf("prefix Old and New should be the same Value")
	}
	if res.New.Int() != 6 {
		t.Fatalf("prefix New = %d, want 6", res.New.Int())
	}
}

func TestSpaceshipAndCmp(t *testing.T) {
	if got := Spaceship(NewInt(1), NewInt(2)).Int(); got != -1 {
		t.Fatalf("Spaceship(1,2) = %d, want -1", got)
	}
	if got := Spaceship(NewInt(2), NewInt(2)).Int(); got != 0 {
		t.Fatalf("Spaceship(2,2) = %d, want 0", got)
	}
	if got := Cmp(NewStr([]byte("b")), NewStr([]byte("a"))).Int(); got != 1 {
		t.Fatalf("Cmp(b,a) = %d, want 1", got)
	}
}

func TestAddIntVsNum(t *testing.T) {
	sum := Add(NewInt(2), NewInt(3))
	if sum.Kind() != Int || sum.Int() != 5 {
		t.Fatalf("Add(Int,Int) = %v %v, want Int 5", sum.Kind(), sum.Int())
	}
	mixed := Add(NewInt(2), NewNum(3.5))
	if mixed.Kind() != Num || mixed.Num() != 5.5 {
		t.Fatalf("Add(Int,Num) = %v %v, want Num 5.5", mixed.Kind(), mixed.Num())
	}
}
