// Copyright 2026 The Strada Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package instrument

import (
	"testing"

	"strada-lang/runtime/internal/value"
)

func TestRecordAllocTracksPeakAndCurrent(t *testing.T) {
	m := NewMemProfiler()
	m.RecordAlloc(value.Str, 10)
	m.RecordAlloc(value.Str, 20)
	m.RecordFree(value.Str, 10)

	snap := m.Snapshot()[value.Str]
	if snap.AllocCount != 2 {
		t.Errorf("AllocCount = %d, want 2", snap.AllocCount)
	}
	if snap.FreeCount != 1 {
		t.Errorf("FreeCount = %d, want 1", snap.FreeCount)
	}
	if snap.CurrentCount != 1 {
		t.Errorf("CurrentCount = %d, want 1", snap.CurrentCount)
	}
	if snap.PeakCount != 2 {
		t.Errorf("PeakCount = %d, want 2", snap.PeakCount)
	}
	if snap.CurrentBytes != 20 {
		t.Errorf("CurrentBytes = %d, want 20", snap.CurrentBytes)
	}
	if snap.PeakBytes != 30 {
		t.Errorf("PeakBytes = %d, want 30", snap.PeakBytes)
	}
	if snap.TotalBytes != 30 {
		t.Errorf("TotalBytes = %d, want 30", snap.TotalBytes)
	}
}

func TestEnableMemProfileIsIdempotent(t *testing.T) {
	defer DisableMemProfile()
	a := EnableMemProfile()
	b := EnableMemProfile()
	if a != b {
		t.Errorf("EnableMemProfile returned different instances on repeat calls")
	}
}

func TestGlobalNilWhenDisabled(t *testing.T) {
	DisableMemProfile()
	if Global() != nil {
		t.Errorf("Global() = non-nil after DisableMemProfile")
	}
}

// TestEnableMemProfileObservesValueConstructorsAndRelease proves the
// wiring spec.md §4.13 describes end-to-end: once enabled, ordinary
// internal/value constructors and Release calls feed the installed
// MemProfiler without any call site in internal/value needing to know
// instrumentation exists.
func TestEnableMemProfileObservesValueConstructorsAndRelease(t *testing.T) {
	defer DisableMemProfile()
	m := EnableMemProfile()

	s := value.NewStr([]byte("hello"))
	before := m.Snapshot()[value.Str]
	if before.AllocCount != 1 {
		t.Fatalf("AllocCount after NewStr = %d, want 1", before.AllocCount)
	}
	if before.CurrentBytes != 5 {
		t.Fatalf("CurrentBytes after NewStr(\"hello\") = %d, want 5", before.CurrentBytes)
	}

	value.Release(s)
	after := m.Snapshot()[value.Str]
	if after.FreeCount != 1 {
		t.Fatalf("FreeCount after Release = %d, want 1", after.FreeCount)
	}
	if after.CurrentCount != 0 {
		t.Fatalf("CurrentCount after Release = %d, want 0", after.CurrentCount)
	}
	if after.CurrentBytes != 0 {
		t.Fatalf("CurrentBytes after Release = %d, want 0", after.CurrentBytes)
	}
}
