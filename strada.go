// Copyright 2026 The Strada Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package strada is the runtime's public ABI facade: the entry points a
// compiled Strada program (or, here, a smoke-test harness exercising the
// runtime directly from Go) calls at process start, per spec.md §6.
package strada

import (
	"os"
	"sync"

	"strada-lang/runtime/internal/instrument"
	"strada-lang/runtime/internal/oop"
	"strada-lang/runtime/internal/posix"
	"strada-lang/runtime/internal/value"
)

// ARGC and ARGV are the generated program's view of its own command-line
// arguments, set up from the OS argc/argv at entry per spec.md §6.
var (
	ARGC *value.Value
	ARGV *value.Value
)

// Registry is the process-wide OOP package registry, wired as
// internal/value's DESTROY hook at package init. Generated code (or
// command-line tools) register classes and methods on it before calling
// Freeze.
var Registry = oop.NewRegistry()

var profilerOnce sync.Once

// Profiler is the process-wide function profiler, returned by
// InitProfiler once enabled.
var Profiler = instrument.New()

func init() {
	value.SetDestroyer(Registry)
	ARGV = value.NewArray()
	for _, a := range os.Args {
		ARGV.Array().Push(value.NewStr([]byte(a)))
	}
	ARGC = value.NewInt(int64(len(os.Args)))
}

// InitProfiler enables the process-wide function profiler, matching
// spec.md §6's "calls the profiler initializer" step. Safe to call more
// than once; only the first call has any effect.
func InitProfiler() *instrument.Profiler {
	profilerOnce.Do(func() {
		Profiler.Enable()
	})
	return Profiler
}

// InitProcTitle records the original argv bound for later SetTitle
// calls, matching spec.md §6's "calls the proctitle initializer" step.
func InitProcTitle() {
	posix.Init()
}
