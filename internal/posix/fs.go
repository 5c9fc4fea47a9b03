// Copyright 2026 The Strada Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package posix implements the Strada runtime's POSIX surface: thin,
// well-contracted wrappers around filesystem, process, time, and signal
// syscalls, each returning a Value of the fixed shape spec.md §4.12
// tabulates. golang.org/x/sys/unix is the syscall layer throughout,
// since the os package's own stat/rlimit/rusage types don't expose every
// field the contract names (e.g. blksize, blocks, nivcsw).
package posix

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"

	"strada-lang/runtime/internal/value"
)

// Stat wraps unix.Stat, returning a Hash with the exact keys spec.md
// §4.12 names: dev, ino, mode, nlink, uid, gid, rdev, size, atime, mtime,
// ctime, blksize, blocks. A missing path is spec.md §7's own named
// example of "any syscall wrapper that cannot produce its intended
// result" — it returns Undef, tested via defined(), not an error; a
// genuine system error (EACCES, ENAMETOOLONG, ...) still returns one.
func Stat(path string) (*value.Value, error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		if isNotFound(err) {
			return value.NewUndef(), nil
		}
		return nil, fmt.Errorf("strada/posix: stat %q: %w", path, err)
	}
	return statToHash(&st), nil
}

// Lstat is Stat's symlink-not-followed counterpart, with the same
// missing-path-is-Undef contract.
func Lstat(path string) (*value.Value, error) {
	var st unix.Stat_t
	if err := unix.Lstat(path, &st); err != nil {
		if isNotFound(err) {
			return value.NewUndef(), nil
		}
		return nil, fmt.Errorf("strada/posix: lstat %q: %w", path, err)
	}
	return statToHash(&st), nil
}

// isNotFound reports whether err is the "no such file or directory" or
// "not a directory" class of failure a missing path produces, as
// distinct from a genuine access/argument error.
func isNotFound(err error) bool {
	return errors.Is(err, unix.ENOENT) || errors.Is(err, unix.ENOTDIR)
}

func statToHash(st *unix.Stat_t) *value.Value {
	h := value.NewHash()
	set := h.Hash()
	set.Set("dev", value.NewInt(int64(st.Dev)))
	set.Set("ino", value.NewInt(int64(st.Ino)))
	set.Set("mode", value.NewInt(int64(st.Mode)))
	set.Set("nlink", value.NewInt(int64(st.Nlink)))
	set.Set("uid", value.NewInt(int64(st.Uid)))
	set.Set("gid", value.NewInt(int64(st.Gid)))
	set.Set("rdev", value.NewInt(int64(st.Rdev)))
	set.Set("size", value.NewInt(st.Size))
	set.Set("atime", value.NewInt(int64(st.Atim.Sec)))
	set.Set("mtime", value.NewInt(int64(st.Mtim.Sec)))
	set.Set("ctime", value.NewInt(int64(st.Ctim.Sec)))
	set.Set("blksize", value.NewInt(int64(st.Blksize)))
	set.Set("blocks", value.NewInt(int64(st.Blocks)))
	return h
}

// Pipe wraps unix.Pipe, returning the two-element Array [read_fd,
// write_fd] spec.md §4.12 names.
func Pipe() (*value.Value, error) {
	var fds [2]int
	if err := unix.Pipe(fds[:]); err != nil {
		return nil, fmt.Errorf("strada/posix: pipe: %w", err)
	}
	arr := value.NewArray()
	arr.Array().Push(value.NewInt(int64(fds[0])))
	arr.Array().Push(value.NewInt(int64(fds[1])))
	return arr, nil
}
