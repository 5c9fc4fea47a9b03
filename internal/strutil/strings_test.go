// Copyright 2026 The Strada Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package strutil

import (
	"testing"

	"strada-lang/runtime/internal/value"
)

func TestUTF8LengthVsByteLength(t *testing.T) {
	// spec.md §8: length("héllo") is 5; byte_length("héllo") is 6.
	v := value.NewStr([]byte("héllo"))
	if got := Length(v); got != 5 {
		t.Fatalf("Length() = %d, want 5", got)
	}
	if got := ByteLength(v); got != 6 {
		t.Fatalf("ByteLength() = %d, want 6", got)
	}
}

func TestSubstrNegativeOffset(t *testing.T) {
	v := value.NewStr([]byte("héllo"))
	got := value.CoerceStr(Substr(v, -2, 2))
	if got != "lo" {
		t.Fatalf("Substr(-2,2) = %q, want lo", got)
	}
}

func TestReverseCodepointOrder(t *testing.T) {
	v := value.NewStr([]byte("héllo"))
	got := value.CoerceStr(Reverse(v))
	if got != "olléh" {
		t.Fatalf("Reverse() = %q, want olléh", got)
	}
}

func TestChrOrdRoundTrip(t *testing.T) {
	tests := []int32{65, 255, 0x1F600}
	for _, cp := range tests {
		s := Chr(cp)
		got := Ord(s)
		if got != cp {
			t.Errorf("Ord(Chr(%d)) = %d, want %d", cp, got, cp)
		}
	}
	// Low codepoints return a single raw byte, matching classic chr().
	if got := len(Chr(200).Bytes()); got != 1 {
		t.Fatalf("Chr(200) byte length = %d, want 1", got)
	}
}

func TestByteLevelOps(t *testing.T) {
	v := value.NewStr([]byte{0x41, 0x00, 0x42})
	if GetByte(v, 1) != 0x00 {
		t.Fatalf("GetByte(1) = %d, want 0", GetByte(v, 1))
	}
	updated := SetByte(v, 1, 0xFF)
	if GetByte(updated, 1) != 0xFF {
		t.Fatalf("SetByte did not take effect")
	}
	if GetByte(v, 1) != 0x00 {
		t.Fatalf("SetByte mutated the original value")
	}
}
