// Copyright 2026 The Strada Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package instrument

import (
	"time"

	"github.com/google/pprof/profile"
)

// ToPprof renders a Profiler's accumulated stats as a github.com/google/
// pprof/profile.Profile, so the caller can write out a standard pprof
// file that `go tool pprof` (and cmd/stradaprof, which reads such files)
// already knows how to handle, instead of inventing a bespoke report
// format for SPEC_FULL.md's function profiler.
func ToPprof(p *Profiler) *profile.Profile {
	stats := p.Snapshot()

	samplesValueType := &profile.ValueType{Type: "samples", Unit: "count"}
	cpuValueType := &profile.ValueType{Type: "cpu", Unit: "nanoseconds"}

	prof := &profile.Profile{
		SampleType:     []*profile.ValueType{samplesValueType, cpuValueType},
		TimeNanos:      time.Now().UnixNano(),
		DurationNanos:  0,
	}

	locs := make([]*profile.Location, 0, len(stats))
	fns := make([]*profile.Function, 0, len(stats))
	for i, s := range stats {
		id := uint64(i + 1)
		fn := &profile.Function{ID: id, Name: s.Name, SystemName: s.Name}
		fns = append(fns, fn)

		loc := &profile.Location{
			ID:   id,
			Line: []profile.Line{{Function: fn, Line: 0}},
		}
		locs = append(locs, loc)

		prof.Sample = append(prof.Sample, &profile.Sample{
			Location: []*profile.Location{loc},
			Value:    []int64{int64(s.CallCount), s.SelfTime.Nanoseconds()},
		})
	}
	prof.Function = fns
	prof.Location = locs

	return prof
}
