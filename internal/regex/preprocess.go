// Copyright 2026 The Strada Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package regex implements the Strada runtime's regex layer: flag
// preprocessing, compile/match/replace/split, and the last-captures slot.
// See spec.md §4.4.
package regex

import "strings"

// Flags bundles the four source-language regex flags.
type Flags struct {
	I bool // case-insensitive
	M bool // newline-anchored (^/$ match at line boundaries)
	S bool // dotall: '.' also matches '\n'
	X bool // extended: whitespace and #-comments outside [...] are stripped
}

// ParseFlags turns a flag-letter string (e.g. "ims") into a Flags value.
// Unknown letters are ignored, matching the source's permissive flag
// parsing.
func ParseFlags(letters string) Flags {
	var f Flags
	for _, r := range letters {
		switch r {
		case 'i':
			f.I = true
		case 'm':
			f.M = true
		case 's':
			f.S = true
		case 'x':
			f.X = true
		}
	}
	return f
}

// Preprocess rewrites pattern per the flags, as a pure function pass
// (spec.md §9 calls this out as a prime candidate for a dedicated,
// exhaustively-tested module — kept separate from Compile for exactly
// that reason). The 's' flag rewrites every unescaped '.' outside
// bracket expressions to "(.|\n)"; the 'x' flag strips ASCII whitespace
// and "#...\n" comments outside bracket expressions. 'i' and 'm' do not
// rewrite the pattern text; they are applied as Go regexp inline flags by
// Compile.
func Preprocess(pattern string, f Flags) string {
	if f.S {
		pattern = rewriteDotAsDotOrNewline(pattern)
	}
	if f.X {
		pattern = stripExtendedWhitespaceAndComments(pattern)
	}
	return pattern
}

// rewriteDotAsDotOrNewline walks pattern once, tracking bracket-expression
// and escape state, and replaces every unescaped '.' found outside a
// bracket expression with the literal text "(.|\n)".
func rewriteDotAsDotOrNewline(pattern string) string {
	var out strings.Builder
	inBracket := false
	escaped := false
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		switch {
		case escaped:
			out.WriteByte(c)
			escaped = false
		case c == '\\':
			out.WriteByte(c)
			escaped = true
		case c == '[' && !inBracket:
			inBracket = true
			out.WriteByte(c)
		case c == ']' && inBracket:
			inBracket = false
			out.WriteByte(c)
		case c == '.' && !inBracket:
			out.WriteString(`(.|\n)`)
		default:
			out.WriteByte(c)
		}
	}
	return out.String()
}

// stripExtendedWhitespaceAndComments removes ASCII whitespace and
// "#...\n"-style comments from pattern, except inside bracket expressions
// or when escaped, implementing the source's 'x' flag.
func stripExtendedWhitespaceAndComments(pattern string) string {
	var out strings.Builder
	inBracket := false
	escaped := false
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		switch {
		case escaped:
			out.WriteByte(c)
			escaped = false
		case c == '\\':
			out.WriteByte(c)
			escaped = true
		case c == '[' && !inBracket:
			inBracket = true
			out.WriteByte(c)
		case c == ']' && inBracket:
			inBracket = false
			out.WriteByte(c)
		case inBracket:
			out.WriteByte(c)
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			// dropped
		case c == '#':
			for i < len(pattern) && pattern[i] != '\n' {
				i++
			}
		default:
			out.WriteByte(c)
		}
	}
	return out.String()
}

// inlineFlagsPrefix returns the Go-regexp inline-flag prefix for i/m
// ("(?im)"-style), empty if neither is set.
func inlineFlagsPrefix(f Flags) string {
	var letters string
	if f.I {
		letters += "i"
	}
	if f.M {
		letters += "m"
	}
	if letters == "" {
		return ""
	}
	return "(?" + letters + ")"
}
