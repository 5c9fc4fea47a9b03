// Copyright 2026 The Strada Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package posix

import (
	"os/user"
	"strconv"
	"testing"

	"strada-lang/runtime/internal/value"
)

func TestGetpwUidCurrentUser(t *testing.T) {
	me, err := user.Current()
	if err != nil {
		t.Skipf("user.Current unavailable: %v", err)
	}
	uid, err := strconv.Atoi(me.Uid)
	if err != nil {
		t.Skipf("non-numeric uid in this environment: %v", err)
	}

	got, err := GetpwUid(uid)
	if err != nil {
		t.Skipf("getpwuid unavailable in this environment: %v", err)
	}
	d := got.Hash()
	for _, key := range []string{"name", "passwd", "uid", "gid", "gecos", "dir", "shell"} {
		if !d.Exists(key) {
			t.Errorf("GetpwUid() missing key %q", key)
		}
	}
	if value.CoerceInt(d.Get("uid")) != int64(uid) {
		t.Errorf("uid = %d, want %d", value.CoerceInt(d.Get("uid")), uid)
	}
}

// TestGetpwNamUnknownReturnsUndef mirrors spec.md §7's "Undef as
// absent" rule for a lookup that finds nothing, the same contract
// Stat/Lstat follow for a missing path.
func TestGetpwNamUnknownReturnsUndef(t *testing.T) {
	got, err := GetpwNam("no-such-user-strada-test")
	if err != nil {
		t.Fatalf("GetpwNam(unknown): want no error, got %v", err)
	}
	if got.Kind() != value.Undef {
		t.Fatalf("GetpwNam(unknown) = %v, want Undef", got.Kind())
	}
}

func TestGetgrNamUnknownReturnsUndef(t *testing.T) {
	got, err := GetgrNam("no-such-group-strada-test")
	if err != nil {
		t.Fatalf("GetgrNam(unknown): want no error, got %v", err)
	}
	if got.Kind() != value.Undef {
		t.Fatalf("GetgrNam(unknown) = %v, want Undef", got.Kind())
	}
}
