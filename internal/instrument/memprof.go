// Copyright 2026 The Strada Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package instrument

import (
	"sync"

	"strada-lang/runtime/internal/value"
)

// KindCounters holds the per-kind counters spec.md §4.13 names:
// alloc_count, free_count, current_count, peak_count, total_bytes,
// current_bytes, peak_bytes.
type KindCounters struct {
	AllocCount   uint64
	FreeCount    uint64
	CurrentCount uint64
	PeakCount    uint64
	TotalBytes   uint64
	CurrentBytes uint64
	PeakBytes    uint64
}

// MemProfiler tracks allocation/free events per Value kind. Disabled by
// default; EnableMemProfile wires it into internal/value's constructors
// and release cascade via value.SetAllocObserver, so the common case
// (profiling off) costs a single nil check per allocation and
// DisableMemProfile un-wires it again.
type MemProfiler struct {
	mu       sync.Mutex
	counters map[value.Kind]*KindCounters
}

// NewMemProfiler constructs an empty MemProfiler.
func NewMemProfiler() *MemProfiler {
	return &MemProfiler{counters: make(map[value.Kind]*KindCounters)}
}

func (m *MemProfiler) counterFor(k value.Kind) *KindCounters {
	c, ok := m.counters[k]
	if !ok {
		c = &KindCounters{}
		m.counters[k] = c
	}
	return c
}

// RecordAlloc registers an allocation of nbytes for kind k.
func (m *MemProfiler) RecordAlloc(k value.Kind, nbytes uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c := m.counterFor(k)
	c.AllocCount++
	c.CurrentCount++
	if c.CurrentCount > c.PeakCount {
		c.PeakCount = c.CurrentCount
	}
	c.TotalBytes += nbytes
	c.CurrentBytes += nbytes
	if c.CurrentBytes > c.PeakBytes {
		c.PeakBytes = c.CurrentBytes
	}
}

// RecordFree registers a free of nbytes for kind k.
func (m *MemProfiler) RecordFree(k value.Kind, nbytes uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c := m.counterFor(k)
	c.FreeCount++
	if c.CurrentCount > 0 {
		c.CurrentCount--
	}
	if c.CurrentBytes >= nbytes {
		c.CurrentBytes -= nbytes
	} else {
		c.CurrentBytes = 0
	}
}

// Snapshot returns a copy of the per-kind counters.
func (m *MemProfiler) Snapshot() map[value.Kind]KindCounters {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[value.Kind]KindCounters, len(m.counters))
	for k, c := range m.counters {
		out[k] = *c
	}
	return out
}

var (
	globalMu      sync.Mutex
	globalMemProf *MemProfiler
)

// EnableMemProfile installs a process-wide MemProfiler, wires it into
// internal/value's allocation/release path via value.SetAllocObserver,
// and returns it. Calling it more than once returns the
// already-installed instance without re-wiring.
func EnableMemProfile() *MemProfiler {
	globalMu.Lock()
	defer globalMu.Unlock()
	if globalMemProf == nil {
		globalMemProf = NewMemProfiler()
		value.SetAllocObserver(globalMemProf)
	}
	return globalMemProf
}

// DisableMemProfile uninstalls the process-wide MemProfiler and
// disconnects it from internal/value again.
func DisableMemProfile() {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalMemProf = nil
	value.SetAllocObserver(nil)
}

// Global returns the currently-installed process-wide MemProfiler, or
// nil if profiling is off.
func Global() *MemProfiler {
	globalMu.Lock()
	defer globalMu.Unlock()
	return globalMemProf
}
