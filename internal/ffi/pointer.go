// Copyright 2026 The Strada Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ffi

import (
	"fmt"
	"unsafe"

	"strada-lang/runtime/internal/value"
)

// ToCPointer wraps a raw unsafe.Pointer resolved from dlsym (or read out
// of a CStruct field) as a borrowed CPointer Value, per spec.md §4.1's
// "CPointer kind is never freed by the runtime."
func ToCPointer(p unsafe.Pointer) *value.Value {
	return value.NewCPointer(p)
}

// FromCPointer unwraps a CPointer Value back to its raw pointer,
// returning an error if v is not a CPointer.
func FromCPointer(v *value.Value) (unsafe.Pointer, error) {
	if v.Kind() != value.CPointer {
		return nil, fmt.Errorf("strada/ffi: expected CPointer, got %s", v.Kind())
	}
	p, _ := v.CPointer().(unsafe.Pointer)
	return p, nil
}

// ReadCStructField reads a little-endian integer field of the given byte
// width out of a CStruct Value's backing buffer at offset — the FFI-side
// complement to internal/strutil/pack.go's Pack/Unpack, for C struct
// layouts the host program already knows (rather than a packed-string
// format it specifies at runtime).
func ReadCStructField(v *value.Value, offset, width int) (uint64, error) {
	if v.Kind() != value.CStruct {
		return 0, fmt.Errorf("strada/ffi: expected CStruct, got %s", v.Kind())
	}
	buf := v.CStructBytes()
	if offset < 0 || width <= 0 || width > 8 || offset+width > len(buf) {
		return 0, fmt.Errorf("strada/ffi: field [%d:%d] out of bounds for %d-byte struct", offset, offset+width, len(buf))
	}
	var out uint64
	for i := width - 1; i >= 0; i-- {
		out = out<<8 | uint64(buf[offset+i])
	}
	return out, nil
}
