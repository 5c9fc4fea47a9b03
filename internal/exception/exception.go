// Copyright 2026 The Strada Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package exception implements the Strada runtime's exception stack: a
// bounded per-goroutine stack of nonlocal-exit checkpoints and a current-
// exception slot, matching spec.md §4.7. Go's panic/recover is the
// idiomatic analogue of the source runtime's setjmp/longjmp checkpoint
// mechanism, so Throw panics with a private sentinel type that only
// Try's deferred recover understands.
package exception

import (
	"strada-lang/runtime/internal/fatal"
	"strada-lang/runtime/internal/gls"
	"strada-lang/runtime/internal/value"
)

// MaxTryDepth is the bounded checkpoint-stack depth named in spec.md
// §4.7. Exceeding it is one of the hard-limit fatal exits spec.md §7
// calls for.
const MaxTryDepth = 64

type checkpointSignal struct {
	msg *value.Value
}

type goroutineState struct {
	depth       int
	currentExc  *value.Value
}

var states gls.Map[*goroutineState]

func state() *goroutineState {
	s, ok := states.Get()
	if !ok {
		s = &goroutineState{}
		states.Set(s)
	}
	return s
}

// TryPush records entry into a new try-block checkpoint. Code generators
// pair this with a deferred TryPop and a recover() — see Try below for
// the packaged version most callers should use instead of calling
// TryPush/TryPop directly.
func TryPush() error {
	s := state()
	if s.depth >= MaxTryDepth {
		fatal.Exit("exception: try-stack depth %d exceeded", MaxTryDepth)
	}
	s.depth++
	return nil
}

// TryPop unwinds one checkpoint level.
func TryPop() {
	s := state()
	if s.depth > 0 {
		s.depth--
	}
}

// Depth reports the calling goroutine's current checkpoint depth.
func Depth() int { return state().depth }

// Throw raises msg as an exception. If the calling goroutine has an
// active try checkpoint, control nonlocally jumps to it (via panic,
// caught by the nearest enclosing Try's recover); otherwise the message
// is printed to stderr and the process exits with status 1, exactly as
// spec.md §4.7 and §7 require for an uncaught exception.
func Throw(msg string) {
	v := value.NewStr([]byte(msg))
	ThrowValue(v)
}

// ThrowValue coerces v to its string form, then throws it.
func ThrowValue(v *value.Value) {
	if v.Kind() != value.Str {
		v = value.NewStr([]byte(value.CoerceStr(v)))
	}
	s := state()
	if s.depth > 0 {
		panic(checkpointSignal{msg: v})
	}
	fatal.Exit("%s", value.CoerceStr(v))
}

// Die is the shortcut spec.md §4.7 names: identical to Throw when inside
// a try, identical to an uncaught-exception exit otherwise.
func Die(msg string) { Throw(msg) }

// GetException returns the current-exception slot's contents (Undef if
// none), without clearing it.
func GetException() *value.Value {
	s := state()
	if s.currentExc == nil {
		return value.NewUndef()
	}
	return s.currentExc
}

// ClearException drops the current-exception slot.
func ClearException() {
	state().currentExc = nil
}

// Try runs fn under a fresh checkpoint. If fn (or anything it calls)
// throws, Try recovers the exception, stores it in the current-exception
// slot, and returns it; otherwise it returns nil. This is the packaged
// realization of "code generator wraps try-blocks with try_push/try_pop
// and a setjmp" (spec.md §4.7) — TryPush/TryPop/Throw remain available
// individually for callers that need to mirror the C calling convention
// more literally.
func Try(fn func()) (caught *value.Value) {
	if err := TryPush(); err != nil {
		return nil
	}
	defer TryPop()
	defer func() {
		if r := recover(); r != nil {
			sig, ok := r.(checkpointSignal)
			if !ok {
				panic(r) // not ours; propagate to an outer Go recover, if any
			}
			state().currentExc = sig.msg
			caught = sig.msg
		}
	}()
	fn()
	return nil
}

