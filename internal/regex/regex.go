// Copyright 2026 The Strada Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package regex

import (
	"regexp"

	"strada-lang/runtime/internal/value"
)

// Matcher is the compiled-regex payload a Regex Value wraps. POSIX
// extended syntax is approximated with Go's regexp.Compile switched to
// leftmost-longest matching (Regexp.Longest), which keeps POSIX match
// semantics while still accepting the \d-style classes and (?i)/(?m)
// inline flags that regexp.CompilePOSIX rejects.
type Matcher struct {
	re *regexp.Regexp
}

// Close satisfies value.Closeable; compiled Go regexes hold no OS
// resources, so this is a no-op kept for ABI symmetry with the other
// scoped-resource kinds (FileHandle, Socket).
func (m *Matcher) Close() error { return nil }

// Compile preprocesses pattern per flags and compiles it with
// leftmost-longest matching.
func Compile(pattern, flagLetters string) (*Matcher, error) {
	f := ParseFlags(flagLetters)
	rewritten := Preprocess(pattern, f)
	full := inlineFlagsPrefix(f) + rewritten
	re, err := regexp.Compile(full)
	if err != nil {
		return nil, err
	}
	re.Longest()
	return &Matcher{re: re}, nil
}

// Wrap returns a Regex Value wrapping m, freed on final decref.
func Wrap(m *Matcher) *value.Value { return value.NewRegex(m) }

// Match reports whether m matches within subject and, on success, records
// the full match plus every capture group into the calling goroutine's
// last-captures slot.
func (m *Matcher) Match(subject string) bool {
	groups := m.re.FindStringSubmatch(subject)
	if groups == nil {
		return false
	}
	setLastCaptures(groups)
	return true
}

// Replace substitutes the first match of m in subject with replacement
// (which may reference capture groups using Go's "$1"-style syntax). If
// the pattern fails to match, the original string is returned unchanged —
// spec.md §7 explicitly calls for "original string unchanged" rather than
// an exception on regex-related replace failures.
func (m *Matcher) Replace(subject, replacement string, all bool) string {
	if all {
		return m.re.ReplaceAllString(subject, replacement)
	}
	loc := m.re.FindStringIndex(subject)
	if loc == nil {
		return subject
	}
	matched := subject[loc[0]:loc[1]]
	expanded := m.re.ReplaceAllString(matched, replacement)
	return subject[:loc[0]] + expanded + subject[loc[1]:]
}

// Split divides subject on every match of m, like the source language's
// split() builtin.
func (m *Matcher) Split(subject string, limit int) []string {
	return m.re.Split(subject, limit)
}

// MatchValue, ReplaceValue and SplitValue are the Value-level entry
// points generated code actually calls; they wrap the string-level
// methods above with Value coercion.
func MatchValue(rv, subject *value.Value) (*value.Value, error) {
	m, err := matcherOf(rv)
	if err != nil {
		return nil, err
	}
	return value.NewInt(boolToInt(m.Match(value.CoerceStr(subject)))), nil
}

func ReplaceValue(rv, subject, replacement *value.Value, all bool) (*value.Value, error) {
	m, err := matcherOf(rv)
	if err != nil {
		return nil, err
	}
	out := m.Replace(value.CoerceStr(subject), value.CoerceStr(replacement), all)
	return value.NewStr([]byte(out)), nil
}

func SplitValue(rv, subject *value.Value, limit int) (*value.Value, error) {
	m, err := matcherOf(rv)
	if err != nil {
		return nil, err
	}
	parts := m.Split(value.CoerceStr(subject), limit)
	arr := value.NewArray()
	for _, p := range parts {
		arr.Array().Push(value.NewStr([]byte(p)))
	}
	return arr, nil
}

func matcherOf(rv *value.Value) (*Matcher, error) {
	c := rv.Closeable()
	m, ok := c.(*Matcher)
	if !ok {
		return nil, errNotARegex
	}
	return m, nil
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
