// Copyright 2026 The Strada Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gls provides a minimal goroutine-local-storage primitive.
//
// Several runtime components (the regex engine's last-captures slot, the
// exception checkpoint stack) are spec'd around a single process-wide
// global in the original C implementation, which spec.md §5 and §9 both
// flag as a threading hazard and explicitly recommend fixing with
// thread-local storage in any rewrite. Go goroutines have no native
// thread-local storage, so this package recovers a goroutine id from the
// runtime stack trace — the same well-known technique used by several
// goroutine-local-storage shims in the wider Go ecosystem — and keys a
// plain mutex-guarded map by it.
package gls

import (
	"bytes"
	"runtime"
	"strconv"
	"sync"
)

// ID returns an identifier for the calling goroutine, stable for the
// lifetime of that goroutine.
func ID() uint64 {
	buf := make([]byte, 64)
	n := runtime.Stack(buf, false)
	buf = buf[:n]
	const prefix = "goroutine "
	if !bytes.HasPrefix(buf, []byte(prefix)) {
		return 0
	}
	rest := buf[len(prefix):]
	sp := bytes.IndexByte(rest, ' ')
	if sp < 0 {
		return 0
	}
	id, err := strconv.ParseUint(string(rest[:sp]), 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// Map is a goroutine-keyed value store. The zero value is usable.
type Map[T any] struct {
	mu sync.Mutex
	m  map[uint64]T
}

// Get returns the stored value for the calling goroutine and whether one
// was present.
func (g *Map[T]) Get() (T, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	v, ok := g.m[ID()]
	return v, ok
}

// Set stores v for the calling goroutine.
func (g *Map[T]) Set(v T) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.m == nil {
		g.m = make(map[uint64]T)
	}
	g.m[ID()] = v
}

// Delete removes any stored value for the calling goroutine.
func (g *Map[T]) Delete() {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.m, ID())
}
