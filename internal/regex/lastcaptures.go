// Copyright 2026 The Strada Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package regex

import (
	"strada-lang/runtime/internal/gls"
	"strada-lang/runtime/internal/value"
)

// The original C runtime keeps "last captures" in a single process-wide
// slot, which spec.md §5 and §9 both flag as a concurrency hazard and
// explicitly recommend replacing with thread-local storage "from the
// start" of any rewrite. lastCaptures is that rewrite: captures are keyed
// per-goroutine via internal/gls instead of living in one shared
// variable, so concurrent regex matches on different goroutines no
// longer clobber each other.
var lastCaptures gls.Map[[]string]

// setLastCaptures records groups (full match at index 0, then each
// capture group) as the calling goroutine's most recent successful match.
func setLastCaptures(groups []string) {
	lastCaptures.Set(append([]string(nil), groups...))
}

// Captures returns the calling goroutine's last captures as an Array
// Value (empty if no prior successful match on this goroutine).
func Captures() *value.Value {
	groups, _ := lastCaptures.Get()

	arr := value.NewArray()
	for _, g := range groups {
		arr.Array().Push(value.NewStr([]byte(g)))
	}
	return arr
}

// clearGoroutineCaptures drops the stored captures for the calling
// goroutine; used by tests that want a clean slate.
func clearGoroutineCaptures() {
	lastCaptures.Delete()
}
