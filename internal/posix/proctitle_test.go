// Copyright 2026 The Strada Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package posix

import "testing"

func TestSetShortNameAcceptsOverlongName(t *testing.T) {
	if err := SetShortName("a-name-much-longer-than-fifteen-bytes"); err != nil {
		t.Fatalf("SetShortName: %v", err)
	}
}

func TestSetTitleRoundTrips(t *testing.T) {
	if err := SetTitle("strada-worker[3]"); err != nil {
		t.Fatalf("SetTitle: %v", err)
	}
	if got := GetTitle(); got != "strada-worker[3]" {
		t.Fatalf("GetTitle() = %q, want strada-worker[3]", got)
	}
}

func TestSetTitleTruncatesToArgvBound(t *testing.T) {
	savedBound := argvBound
	defer func() { argvBound = savedBound }()

	argvBound = 4
	if err := SetTitle("way too long a title"); err != nil {
		t.Fatalf("SetTitle: %v", err)
	}
	if got := GetTitle(); len(got) != 4 {
		t.Fatalf("GetTitle() length = %d, want 4", len(got))
	}
}
