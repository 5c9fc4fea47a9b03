// Copyright 2026 The Strada Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build amd64

package ffi

import (
	"fmt"
	"strings"

	"golang.org/x/arch/x86/x86asm"
)

// DisassembleEntry is a diagnostic aid SPEC_FULL.md §5 wires
// golang.org/x/arch/x86/x86asm into: given a function pointer's raw code
// bytes (read by the caller, e.g. via /proc/self/maps on Linux) and the
// entry's symbol name, it disassembles the first few instructions for
// inclusion in an "FFI call failed" diagnostic — useful when a dlsym'd
// entry point turns out not to be executable code at all (a common
// misconfiguration: wrong symbol, wrong calling convention, data symbol
// mistaken for a function). amd64-only, matching the package's narrow
// purpose.
func DisassembleEntry(name string, code []byte, maxInsns int) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "%s:\n", name)
	off := 0
	for i := 0; i < maxInsns && off < len(code); i++ {
		inst, err := x86asm.Decode(code[off:], 64)
		if err != nil {
			fmt.Fprintf(&b, "  <decode error at +%#x: %v>\n", off, err)
			break
		}
		fmt.Fprintf(&b, "  +%#04x  %s\n", off, x86asm.GNUSyntax(inst, uint64(off), nil))
		off += inst.Len
	}
	return b.String(), nil
}
