// Copyright 2026 The Strada Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package instrument

import "testing"

func TestToPprofProducesOneSamplePerFunction(t *testing.T) {
	p := New()
	p.Enable()
	p.Enter("alpha")
	p.Exit()
	p.Enter("beta")
	p.Exit()
	p.Enter("beta")
	p.Exit()

	prof := ToPprof(p)
	if len(prof.Function) != 2 {
		t.Fatalf("len(Function) = %d, want 2", len(prof.Function))
	}
	if len(prof.Sample) != 2 {
		t.Fatalf("len(Sample) = %d, want 2", len(prof.Sample))
	}
	if len(prof.SampleType) != 2 {
		t.Fatalf("len(SampleType) = %d, want 2", len(prof.SampleType))
	}
}
