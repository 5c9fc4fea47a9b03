// Copyright 2026 The Strada Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package strutil

import "strada-lang/runtime/internal/value"

// ByteLength returns the authoritative byte length of v — never derived
// from a C-string scan, since strings may contain embedded NULs.
func ByteLength(v *value.Value) int {
	return len(v.Bytes())
}

// ByteSubstr returns a new Str holding the byte range [offset, offset+n),
// with negative offsets counting from the end, mirroring Substr but at
// byte granularity.
func ByteSubstr(v *value.Value, offset, n int) *value.Value {
	b := v.Bytes()
	total := len(b)

	start := offset
	if start < 0 {
		start += total
	}
	if start < 0 {
		start = 0
	}
	if start > total {
		return value.NewStr(nil)
	}

	end := start + n
	if n < 0 {
		end = total + n
	}
	if end > total {
		end = total
	}
	if end < start {
		return value.NewStr(nil)
	}
	return value.NewStr(b[start:end])
}

// GetByte returns the raw byte at index i (0 if out of range).
func GetByte(v *value.Value, i int) byte {
	b := v.Bytes()
	if i < 0 {
		i += len(b)
	}
	if i < 0 || i >= len(b) {
		return 0
	}
	return b[i]
}

// SetByte returns a new Str equal to v with the byte at index i replaced
// by bv; out-of-range indices are a no-op (the source byte slice is
// returned unchanged in a fresh Str, matching the "always return new Str"
// discipline of the string engine).
func SetByte(v *value.Value, i int, bv byte) *value.Value {
	b := append([]byte(nil), v.Bytes()...)
	idx := i
	if idx < 0 {
		idx += len(b)
	}
	if idx < 0 || idx >= len(b) {
		return value.NewStr(b)
	}
	b[idx] = bv
	return value.NewStr(b)
}

// OrdByte returns the raw byte value at index 0 as an int, 0 if empty.
func OrdByte(v *value.Value) int {
	b := v.Bytes()
	if len(b) == 0 {
		return 0
	}
	return int(b[0])
}
