// Copyright 2026 The Strada Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ffi

import "testing"

// TestOpenAndSymLibc covers spec.md §4.11's dl_open/dl_sym contract
// against the C library itself, which every POSIX host is guaranteed to
// have — avoiding a test fixture .so of our own.
func TestOpenAndSymLibc(t *testing.T) {
	lib, err := Open("libc.so.6")
	if err != nil {
		t.Skipf("libc.so.6 not resolvable in this environment: %v", err)
	}
	defer lib.Close()

	sym, err := lib.Sym("abs")
	if err != nil {
		t.Fatalf("Sym(abs): %v", err)
	}
	if sym == nil {
		t.Fatalf("Sym(abs) returned nil pointer")
	}

	got, err := DLCallInt(sym, -7)
	if err != nil {
		t.Fatalf("DLCallInt: %v", err)
	}
	if got != 7 {
		t.Fatalf("abs(-7) via DLCallInt = %d, want 7", got)
	}
}

func TestOpenUnknownLibraryErrors(t *testing.T) {
	if _, err := Open("/no/such/library.so"); err == nil {
		t.Fatalf("Open of nonexistent library: want error, got nil")
	}
}

func TestSymOnClosedLibraryErrors(t *testing.T) {
	lib, err := Open("libc.so.6")
	if err != nil {
		t.Skipf("libc.so.6 not resolvable in this environment: %v", err)
	}
	lib.Close()
	if _, err := lib.Sym("abs"); err == nil {
		t.Fatalf("Sym on closed library: want error, got nil")
	}
}
