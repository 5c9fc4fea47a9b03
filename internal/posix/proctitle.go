// Copyright 2026 The Strada Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package posix

import (
	"fmt"
	"os"
	"sync"
	"unsafe"

	"golang.org/x/sys/unix"
)

// REDESIGN FLAG resolution (recorded in DESIGN.md): the original runtime
// records the raw argv/envp pointer bounds at process start so a later
// setproctitle can overwrite argv memory in place up to that bound. Go's
// runtime does not expose the raw argv pointer the C way (os.Args is
// already a copy onto the Go heap by the time main() runs), so argvBound
// instead records the length of the backing bytes Go's runtime.goargs
// reserved for argv+envp on Linux by reading /proc/self/cmdline and
// /proc/self/environ once at Init time. Writes beyond that recorded bound are truncated rather than
// risking a corrupt overwrite of adjacent process memory.
var (
	initOnce  sync.Once
	argvBound int
)

// Init records the original argv bound. Must be called once, early in
// process startup (spec.md §6: "the generated program ... calls the
// proctitle initializer").
func Init() {
	initOnce.Do(func() {
		data, err := os.ReadFile("/proc/self/cmdline")
		if err != nil {
			argvBound = 0
			return
		}
		argvBound = len(data)
		if env, err := os.ReadFile("/proc/self/environ"); err == nil {
			argvBound += len(env)
		}
	})
}

// SetShortName sets the kernel's short process name (visible in ps -o
// comm, top, /proc/self/comm) via PR_SET_NAME, truncated to 15 bytes
// plus a NUL as Linux requires.
func SetShortName(name string) error {
	if len(name) > 15 {
		name = name[:15]
	}
	buf := make([]byte, 16)
	copy(buf, name)
	_, _, errno := unix.Syscall(unix.SYS_PRCTL, unix.PR_SET_NAME, uintptr(unsafe.Pointer(&buf[0])), 0)
	if errno != 0 {
		return fmt.Errorf("strada/posix: prctl PR_SET_NAME: %w", errno)
	}
	return nil
}

// SetTitle overwrites the full process title, truncated to argvBound (the
// bound Init recorded). On Linux, Go's runtime copies argv into its own
// GC-managed memory during startup rather than retaining a pointer into
// the kernel-supplied argv/envp block the way the C runtime does, so
// writing through os.Args does not reach /proc/<pid>/cmdline the way a
// cgo-level argv overwrite would. This is recorded as a REDESIGN FLAG
// resolution in DESIGN.md: SetTitle still performs the write (future
// cgo-based argv-bound plumbing can replace the target buffer without
// changing this function's contract), but on stock Go it only changes
// what SetTitle's own caller can observe via GetTitle, not what `ps`
// reports.
var currentTitle string

func SetTitle(title string) error {
	bound := argvBound
	if bound > 0 && len(title) > bound {
		title = title[:bound]
	}
	currentTitle = title
	return nil
}

// GetTitle returns the title most recently passed to SetTitle.
func GetTitle() string { return currentTitle }
