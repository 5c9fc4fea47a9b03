// Copyright 2026 The Strada Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ffi

import (
	"testing"
	"unsafe"

	"strada-lang/runtime/internal/value"
)

func TestCPointerRoundTrip(t *testing.T) {
	x := 42
	p := unsafe.Pointer(&x)
	v := ToCPointer(p)

	got, err := FromCPointer(v)
	if err != nil {
		t.Fatalf("FromCPointer: %v", err)
	}
	if got != p {
		t.Fatalf("FromCPointer() = %p, want %p", got, p)
	}
}

func TestFromCPointerRejectsWrongKind(t *testing.T) {
	if _, err := FromCPointer(value.NewInt(1)); err == nil {
		t.Fatalf("FromCPointer(Int): want error, got nil")
	}
}

func TestReadCStructFieldLittleEndian(t *testing.T) {
	buf := []byte{0x78, 0x56, 0x34, 0x12}
	v := value.NewCStruct("uint32_field", buf)

	got, err := ReadCStructField(v, 0, 4)
	if err != nil {
		t.Fatalf("ReadCStructField: %v", err)
	}
	if got != 0x12345678 {
		t.Fatalf("ReadCStructField() = %#x, want 0x12345678", got)
	}
}

func TestReadCStructFieldOutOfBounds(t *testing.T) {
	v := value.NewCStruct("small", []byte{1, 2})
	if _, err := ReadCStructField(v, 0, 4); err == nil {
		t.Fatalf("ReadCStructField out of bounds: want error, got nil")
	}
}
