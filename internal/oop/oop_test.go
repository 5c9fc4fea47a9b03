// Copyright 2026 The Strada Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oop

import (
	"testing"

	"strada-lang/runtime/internal/exception"
	"strada-lang/runtime/internal/value"
)

// TestMultipleInheritanceDFSOrder covers spec.md §8's multiple-
// inheritance dispatch scenario: Child inherits from (Left, Right) in
// that order; both define greet, and Child does not override it, so DFS
// picks Left's greet first.
func TestMultipleInheritanceDFSOrder(t *testing.T) {
	r := NewRegistry()
	mustOK(t, r.Define("Left"))
	mustOK(t, r.Define("Right"))
	mustOK(t, r.Define("Child", "Left", "Right"))

	mustOK(t, r.DefineMethod("Left", "greet", func(self *value.Value, args []*value.Value) *value.Value {
		return value.NewStr([]byte("left"))
	}))
	mustOK(t, r.DefineMethod("Right", "greet", func(self *value.Value, args []*value.Value) *value.Value {
		return value.NewStr([]byte("right"))
	}))
	r.Freeze()

	target := value.NewUndef()
	obj := value.NewRefBare(target)
	if err := r.Bless(obj, "Child"); err != nil {
		t.Fatalf("Bless: %v", err)
	}

	got, err := r.MethodCall(obj, "greet", nil)
	if err != nil {
		t.Fatalf("MethodCall: %v", err)
	}
	if value.CoerceStr(got) != "left" {
		t.Fatalf("MethodCall greet = %q, want left", value.CoerceStr(got))
	}
}

func TestIsaTransitiveThroughDiamond(t *testing.T) {
	r := NewRegistry()
	mustOK(t, r.Define("Base"))
	mustOK(t, r.Define("Mid1", "Base"))
	mustOK(t, r.Define("Mid2", "Base"))
	mustOK(t, r.Define("Bottom", "Mid1", "Mid2"))
	r.Freeze()

	obj := value.NewRefBare(value.NewUndef())
	if err := r.Bless(obj, "Bottom"); err != nil {
		t.Fatalf("Bless: %v", err)
	}

	for _, want := range []string{"Bottom", "Mid1", "Mid2", "Base"} {
		if !r.Isa(obj, want) {
			t.Errorf("Isa(%q) = false, want true", want)
		}
	}
	if r.Isa(obj, "NoSuchClass") {
		t.Errorf("Isa(NoSuchClass) = true, want false")
	}
}

// TestSuperCallResolvesAboveDefiningClass covers the SUPER dispatch rule:
// resolution starts above the class where the CALLING method is defined,
// not the object's runtime (most-derived) class.
func TestSuperCallResolvesAboveDefiningClass(t *testing.T) {
	r := NewRegistry()
	mustOK(t, r.Define("Animal"))
	mustOK(t, r.Define("Dog", "Animal"))

	mustOK(t, r.DefineMethod("Animal", "speak", func(self *value.Value, args []*value.Value) *value.Value {
		return value.NewStr([]byte("..."))
	}))
	mustOK(t, r.DefineMethod("Dog", "speak", func(self *value.Value, args []*value.Value) *value.Value {
		sup, err := r.SuperCall(self, "Dog", "speak", args)
		if err != nil {
			t.Fatalf("SuperCall: %v", err)
		}
		return value.NewStr([]byte(value.CoerceStr(sup) + " woof"))
	}))
	r.Freeze()

	obj := value.NewRefBare(value.NewUndef())
	mustOK(t, r.Bless(obj, "Dog"))

	got, err := r.MethodCall(obj, "speak", nil)
	if err != nil {
		t.Fatalf("MethodCall: %v", err)
	}
	if value.CoerceStr(got) != "... woof" {
		t.Fatalf("MethodCall speak = %q, want %q", value.CoerceStr(got), "... woof")
	}
}

func TestCanReflectsAncestorMethods(t *testing.T) {
	r := NewRegistry()
	mustOK(t, r.Define("Base"))
	mustOK(t, r.Define("Derived", "Base"))
	mustOK(t, r.DefineMethod("Base", "foo", func(self *value.Value, args []*value.Value) *value.Value {
		return value.NewUndef()
	}))
	r.Freeze()

	obj := value.NewRefBare(value.NewUndef())
	mustOK(t, r.Bless(obj, "Derived"))

	if !r.Can(obj, "foo") {
		t.Errorf("Can(foo) = false, want true")
	}
	if r.Can(obj, "bar") {
		t.Errorf("Can(bar) = true, want false")
	}
}

func TestDestroyDispatchesOnFinalRelease(t *testing.T) {
	r := NewRegistry()
	mustOK(t, r.Define("Resource"))
	destroyed := false
	mustOK(t, r.DefineMethod("Resource", "DESTROY", func(self *value.Value, args []*value.Value) *value.Value {
		destroyed = true
		return value.NewUndef()
	}))
	r.Freeze()
	value.SetDestroyer(r)
	defer value.SetDestroyer(nil)

	obj := value.NewRefBare(value.NewUndef())
	mustOK(t, r.Bless(obj, "Resource"))

	value.Release(obj)

	if !destroyed {
		t.Errorf("DESTROY was not invoked on final release")
	}
}

// TestMethodCallOnUnknownMethodIsCatchable covers spec.md §7's
// classification of "unknown method" as a catchable Exception rather
// than a fatal exit: dispatching a method no ancestor defines must be
// recoverable via an enclosing try, not terminate the process.
func TestMethodCallOnUnknownMethodIsCatchable(t *testing.T) {
	r := NewRegistry()
	mustOK(t, r.Define("Widget"))
	r.Freeze()

	obj := value.NewRefBare(value.NewUndef())
	mustOK(t, r.Bless(obj, "Widget"))

	caught := exception.Try(func() {
		r.MethodCall(obj, "noSuchMethod", nil)
		t.Fatalf("MethodCall returned instead of throwing")
	})
	if caught == nil {
		t.Fatalf("unknown method call was not caught as an exception")
	}
}

func TestDefineAfterFreezeErrors(t *testing.T) {
	r := NewRegistry()
	mustOK(t, r.Define("A"))
	r.Freeze()
	if err := r.Define("B"); err == nil {
		t.Errorf("Define after Freeze: want error, got nil")
	}
	if err := r.DefineMethod("A", "m", func(*value.Value, []*value.Value) *value.Value { return nil }); err == nil {
		t.Errorf("DefineMethod after Freeze: want error, got nil")
	}
}

func mustOK(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
