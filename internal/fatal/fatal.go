// Copyright 2026 The Strada Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fatal centralizes the runtime's "print to stderr and exit(1)"
// convention, used by every component that hits one of spec.md §7's
// hard-limit violations (try-stack overflow, uncaught exception,
// corrupted invariant with no safe recovery). Pulled out as its own tiny
// package so internal/exception's two exit paths (try-stack overflow and
// uncaught exception) don't each duplicate the same three-line helper.
package fatal

import (
	"fmt"
	"os"
)

// Exit prints format (fmt.Sprintf-style) to stderr and terminates the
// process with status 1.
func Exit(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
