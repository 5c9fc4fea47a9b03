// Copyright 2026 The Strada Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package posix

import (
	"testing"

	"golang.org/x/sys/unix"

	"strada-lang/runtime/internal/value"
)

func TestGetrlimitNofile(t *testing.T) {
	got, err := Getrlimit(unix.RLIMIT_NOFILE)
	if err != nil {
		t.Fatalf("Getrlimit: %v", err)
	}
	d := got.Hash()
	if !d.Exists("cur") || !d.Exists("max") {
		t.Fatalf("Getrlimit() missing cur/max")
	}
	if value.CoerceInt(d.Get("cur")) <= 0 && value.CoerceInt(d.Get("cur")) != rlimitInfinity {
		t.Errorf("cur = %d, want > 0 or unlimited sentinel", value.CoerceInt(d.Get("cur")))
	}
}

func TestGetrusageReturnsShape(t *testing.T) {
	got, err := Getrusage()
	if err != nil {
		t.Fatalf("Getrusage: %v", err)
	}
	d := got.Hash()
	for _, key := range []string{"utime_sec", "utime_usec", "stime_sec", "stime_usec", "maxrss", "minflt", "majflt", "nvcsw", "nivcsw"} {
		if !d.Exists(key) {
			t.Errorf("Getrusage() missing key %q", key)
		}
	}
}
