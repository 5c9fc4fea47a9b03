// Copyright 2026 The Strada Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package posix

import (
	"os"
	"path/filepath"
	"testing"

	"strada-lang/runtime/internal/value"
)

func TestStatReturnsExpectedShape(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f.txt")
	if err := os.WriteFile(path, []byte("hello"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := Stat(path)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	d := got.Hash()
	for _, key := range []string{"dev", "ino", "mode", "nlink", "uid", "gid", "rdev", "size", "atime", "mtime", "ctime", "blksize", "blocks"} {
		if !d.Exists(key) {
			t.Errorf("Stat() missing key %q", key)
		}
	}
	if value.CoerceInt(d.Get("size")) != 5 {
		t.Errorf("size = %d, want 5", value.CoerceInt(d.Get("size")))
	}
}

// TestStatMissingFileReturnsUndef covers spec.md §7's own named example
// of "any syscall wrapper that cannot produce its intended result":
// stat of a missing path returns Undef, not an error.
func TestStatMissingFileReturnsUndef(t *testing.T) {
	got, err := Stat("/nonexistent/path/does-not-exist")
	if err != nil {
		t.Fatalf("Stat of missing file: want no error, got %v", err)
	}
	if got.Kind() != value.Undef {
		t.Fatalf("Stat of missing file = %v, want Undef", got.Kind())
	}
}

func TestLstatMissingFileReturnsUndef(t *testing.T) {
	got, err := Lstat("/nonexistent/path/does-not-exist")
	if err != nil {
		t.Fatalf("Lstat of missing file: want no error, got %v", err)
	}
	if got.Kind() != value.Undef {
		t.Fatalf("Lstat of missing file = %v, want Undef", got.Kind())
	}
}

func TestPipeReturnsTwoElementArray(t *testing.T) {
	got, err := Pipe()
	if err != nil {
		t.Fatalf("Pipe: %v", err)
	}
	arr := got.Array()
	if arr.Len() != 2 {
		t.Fatalf("Pipe() array length = %d, want 2", arr.Len())
	}
	os.NewFile(uintptr(value.CoerceInt(arr.Get(0))), "r").Close()
	os.NewFile(uintptr(value.CoerceInt(arr.Get(1))), "w").Close()
}
