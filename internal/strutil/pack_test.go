// Copyright 2026 The Strada Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package strutil

import (
	"bytes"
	"testing"

	"strada-lang/runtime/internal/value"
)

func TestPackHeaderExample(t *testing.T) {
	// spec.md §8 scenario 3.
	got, err := Pack("NnC", []*value.Value{
		value.NewInt(0x12345678),
		value.NewInt(80),
		value.NewInt(255),
	})
	if err != nil {
		t.Fatalf("Pack returned error: %v", err)
	}
	want := []byte{0x12, 0x34, 0x56, 0x78, 0x00, 0x50, 0xFF}
	if !bytes.Equal(got, want) {
		t.Fatalf("Pack(NnC,...) = % x, want % x", got, want)
	}
}

func TestUnpackHeaderExample(t *testing.T) {
	buf := []byte{0x12, 0x34, 0x56, 0x78, 0x00, 0x50, 0xFF}
	got, err := Unpack("NnC", buf)
	if err != nil {
		t.Fatalf("Unpack returned error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("Unpack returned %d values, want 3", len(got))
	}
	want := []int64{0x12345678, 80, 255}
	for i, w := range want {
		if got[i].Int() != w {
			t.Fatalf("Unpack[%d] = %d, want %d", i, got[i].Int(), w)
		}
	}
}

func TestPackUnpackRoundTrip(t *testing.T) {
	format := "lLqQ"
	args := []*value.Value{
		value.NewInt(-12345),
		value.NewInt(98765),
		value.NewInt(-123456789012),
		value.NewInt(123456789012),
	}
	packed, err := Pack(format, args)
	if err != nil {
		t.Fatalf("Pack error: %v", err)
	}
	unpacked, err := Unpack(format, packed)
	if err != nil {
		t.Fatalf("Unpack error: %v", err)
	}
	for i, a := range args {
		if unpacked[i].Int() != a.Int() {
			t.Fatalf("round trip[%d] = %d, want %d", i, unpacked[i].Int(), a.Int())
		}
	}
}

func TestPackFixedASCIIPadding(t *testing.T) {
	packed, err := Pack("a5A5", []*value.Value{
		value.NewStr([]byte("hi")),
		value.NewStr([]byte("hi")),
	})
	if err != nil {
		t.Fatalf("Pack error: %v", err)
	}
	want := []byte{'h', 'i', 0, 0, 0, 'h', 'i', ' ', ' ', ' '}
	if !bytes.Equal(packed, want) {
		t.Fatalf("Pack(a5A5) = % x, want % x", packed, want)
	}

	unpacked, err := Unpack("a5A5", packed)
	if err != nil {
		t.Fatalf("Unpack error: %v", err)
	}
	if value.CoerceStr(unpacked[0]) != "hi" || value.CoerceStr(unpacked[1]) != "hi" {
		t.Fatalf("Unpack(a5A5) = %q %q, want hi hi", value.CoerceStr(unpacked[0]), value.CoerceStr(unpacked[1]))
	}
}

func TestPackHex(t *testing.T) {
	packed, err := Pack("H4", []*value.Value{value.NewStr([]byte("1a2b"))})
	if err != nil {
		t.Fatalf("Pack error: %v", err)
	}
	want := []byte{0x1a, 0x2b}
	if !bytes.Equal(packed, want) {
		t.Fatalf("Pack(H4) = % x, want % x", packed, want)
	}
}
