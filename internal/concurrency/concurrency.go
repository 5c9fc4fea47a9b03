// Copyright 2026 The Strada Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package concurrency implements the Strada runtime's threading
// primitives, per spec.md §4.10: OS threads realized as goroutines,
// mutexes, and condition variables.
package concurrency

import (
	"sync"

	"strada-lang/runtime/internal/closure"
	"strada-lang/runtime/internal/value"
)

// Thread is the handle returned by ThreadCreate: a running (or detached)
// goroutine plus the plumbing needed to join it exactly once.
type Thread struct {
	result chan *value.Value
	done   sync.WaitGroup
	joined bool
	mu     sync.Mutex
}

// ThreadCreate launches fn (a closure taking zero explicit arguments) on
// a new goroutine and returns a handle to it. Matches spec.md §4.10's
// "thread_create spawns an OS thread running the given closure" — Go
// goroutines are the idiomatic stand-in named in SPEC_FULL.md §6.9.
func ThreadCreate(fn *closure.Closure) *Thread {
	t := &Thread{result: make(chan *value.Value, 1)}
	t.done.Add(1)
	go func() {
		defer t.done.Done()
		ret, err := fn.Call()
		if err != nil {
			ret = value.NewUndef()
		}
		t.result <- ret
	}()
	return t
}

// ThreadJoin blocks until the thread's closure returns, then yields its
// result. Calling Join more than once returns a fresh Undef rather than
// blocking forever on an already-drained channel.
func (t *Thread) ThreadJoin() *value.Value {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.joined {
		return value.NewUndef()
	}
	t.joined = true
	t.done.Wait()
	select {
	case v := <-t.result:
		return v
	default:
		return value.NewUndef()
	}
}

// ThreadDetach lets the goroutine run to completion without anyone ever
// receiving its result; the buffered result channel absorbs the send so
// the goroutine does not leak blocked on an unread channel.
func (t *Thread) ThreadDetach() {
	t.mu.Lock()
	t.joined = true
	t.mu.Unlock()
}

// Mutex is a thin pass-through wrapper over sync.Mutex, matching spec.md
// §4.10's mutex_lock/mutex_unlock pair exactly — no reimplementation
// needed since Go's own contract already matches the spec'd one.
type Mutex struct {
	mu sync.Mutex
}

// NewMutex returns an unlocked Mutex.
func NewMutex() *Mutex { return &Mutex{} }

// Lock acquires the mutex, blocking until it is available.
func (m *Mutex) Lock() { m.mu.Lock() }

// Unlock releases the mutex.
func (m *Mutex) Unlock() { m.mu.Unlock() }

// Cond is a thin pass-through wrapper over sync.Cond paired with its own
// Mutex, matching spec.md §4.10's condition-variable semantics: Wait
// releases the lock and reacquires it before returning, Signal wakes one
// waiter, Broadcast wakes all.
type Cond struct {
	c *sync.Cond
}

// NewCond constructs a Cond guarded by m.
func NewCond(m *Mutex) *Cond {
	return &Cond{c: sync.NewCond(&m.mu)}
}

// Wait releases the underlying mutex and blocks until Signal or
// Broadcast wakes it, then reacquires the mutex before returning — the
// caller must hold the lock when calling Wait, exactly as sync.Cond
// requires.
func (c *Cond) Wait() { c.c.Wait() }

// Signal wakes one goroutine waiting on c, if any.
func (c *Cond) Signal() { c.c.Signal() }

// Broadcast wakes all goroutines waiting on c.
func (c *Cond) Broadcast() { c.c.Broadcast() }
