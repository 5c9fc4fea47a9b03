// Copyright 2026 The Strada Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package instrument

import (
	"testing"
	"time"
)

// TestEnterExitAccumulatesSelfAndTotalTime covers spec.md §4.13's
// worked bookkeeping: a parent call enclosing a child call should end up
// with total_time covering both, but self_time excluding the child's
// elapsed time.
func TestEnterExitAccumulatesSelfAndTotalTime(t *testing.T) {
	p := New()
	p.Enable()

	var now time.Time
	p.nowFn = func() time.Time { return now }

	now = time.Unix(0, 0)
	p.Enter("parent")
	now = time.Unix(0, 10)
	p.Enter("child")
	now = time.Unix(0, 30)
	p.Exit() // child: elapsed 20
	now = time.Unix(0, 50)
	p.Exit() // parent: elapsed 50, child_time 20, self 30

	stats := p.Snapshot()
	byName := map[string]FunctionStats{}
	for _, s := range stats {
		byName[s.Name] = s
	}

	parent := byName["parent"]
	if parent.TotalTime != 50*time.Nanosecond {
		t.Errorf("parent.TotalTime = %v, want 50ns", parent.TotalTime)
	}
	if parent.SelfTime != 30*time.Nanosecond {
		t.Errorf("parent.SelfTime = %v, want 30ns", parent.SelfTime)
	}

	child := byName["child"]
	if child.TotalTime != 20*time.Nanosecond {
		t.Errorf("child.TotalTime = %v, want 20ns", child.TotalTime)
	}
	if child.SelfTime != 20*time.Nanosecond {
		t.Errorf("child.SelfTime = %v, want 20ns", child.SelfTime)
	}
}

func TestCallCountIncrementsPerEnter(t *testing.T) {
	p := New()
	p.Enable()
	for i := 0; i < 3; i++ {
		p.Enter("f")
		p.Exit()
	}
	stats := p.Snapshot()
	if len(stats) != 1 || stats[0].CallCount != 3 {
		t.Fatalf("stats = %+v, want single entry with CallCount 3", stats)
	}
}

func TestDisabledProfilerRecordsNothing(t *testing.T) {
	p := New()
	p.Enter("f")
	p.Exit()
	if len(p.Snapshot()) != 0 {
		t.Fatalf("disabled profiler recorded %d entries, want 0", len(p.Snapshot()))
	}
}

func TestStackDepthCapIgnoresOverflow(t *testing.T) {
	p := New()
	p.Enable()
	for i := 0; i < MaxStackDepth+10; i++ {
		p.Enter("f")
	}
	if len(p.stack) != MaxStackDepth {
		t.Fatalf("stack depth = %d, want capped at %d", len(p.stack), MaxStackDepth)
	}
}
