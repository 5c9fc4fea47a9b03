// Copyright 2026 The Strada Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package strutil implements the Strada runtime's string engine: a
// codepoint-aware (UTF-8) surface, a parallel byte-level surface, a
// pack/unpack binary codec, and an amortized-O(1)-append string builder.
// See spec.md §4.4.
package strutil

import (
	"strings"
	"unicode/utf8"

	"strada-lang/runtime/internal/value"
)

// Length returns the codepoint count of a Str value (spec.md §8:
// Length("héllo") == 5).
func Length(v *value.Value) int {
	return utf8.RuneCountInString(string(v.Bytes()))
}

// Substr returns a new Str holding the codepoint range [offset, offset+n)
// of v, using negative-from-end offsets exactly as spec.md §4.4
// describes. A length that runs past the end is clamped; a negative
// length leaves that many codepoints off the end of v, and yields an
// empty string when that end falls before offset.
func Substr(v *value.Value, offset, n int) *value.Value {
	runes := []rune(string(v.Bytes()))
	total := len(runes)

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
	return value.NewStr([]byte(string(runes[start:end])))
}

// Reverse returns a new Str with codepoint order reversed.
func Reverse(v *value.Value) *value.Value {
	runes := []rune(string(v.Bytes()))
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return value.NewStr([]byte(string(runes)))
}

// Chr encodes codepoint as a Str. Codepoints 0-255 are emitted as a
// single raw byte to match classic single-byte chr() semantics (spec.md
// §4.4); codepoints above 255 are UTF-8 encoded.
func Chr(codepoint int32) *value.Value {
	if codepoint >= 0 && codepoint <= 255 {
		return value.NewStr([]byte{byte(codepoint)})
	}
	buf := make([]byte, utf8.UTFMax)
	n := utf8.EncodeRune(buf, codepoint)
	return value.NewStr(buf[:n])
}

// Ord decodes the first codepoint of v's bytes as UTF-8, returning 0 for
// an empty string. A leading byte that does not start a valid UTF-8
// sequence (such as the raw bytes Chr emits for 128-255) is returned as
// its byte value, so Ord(Chr(c)) == c for every c Chr accepts.
func Ord(v *value.Value) int32 {
	b := v.Bytes()
	if len(b) == 0 {
		return 0
	}
	r, size := utf8.DecodeRune(b)
	if r == utf8.RuneError && size == 1 {
		return int32(b[0])
	}
	return r
}

// Index returns the codepoint index of the first occurrence of needle
// within haystack, or -1 if absent. Provided as a supplemental
// convenience operation commonly paired with Substr by generated code
// implementing source-level "index"/"find" builtins.
func Index(haystack, needle *value.Value) int {
	h := string(haystack.Bytes())
	n := string(needle.Bytes())
	byteIdx := strings.Index(h, n)
	if byteIdx < 0 {
		return -1
	}
	return utf8.RuneCountInString(h[:byteIdx])
}
