// Copyright 2026 The Strada Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package posix

import (
	"os"
	"os/signal"
	"sync"

	"golang.org/x/sys/unix"

	"strada-lang/runtime/internal/value"
)

// signalNames is the name→number table spec.md §4.12 requires, covering
// at least the listed set.
var signalNames = map[string]os.Signal{
	"INT":   unix.SIGINT,
	"TERM":  unix.SIGTERM,
	"HUP":   unix.SIGHUP,
	"QUIT":  unix.SIGQUIT,
	"USR1":  unix.SIGUSR1,
	"USR2":  unix.SIGUSR2,
	"ALRM":  unix.SIGALRM,
	"PIPE":  unix.SIGPIPE,
	"CHLD":  unix.SIGCHLD,
	"CONT":  unix.SIGCONT,
	"STOP":  unix.SIGSTOP,
	"TSTP":  unix.SIGTSTP,
	"SEGV":  unix.SIGSEGV,
	"ABRT":  unix.SIGABRT,
	"FPE":   unix.SIGFPE,
	"ILL":   unix.SIGILL,
	"BUS":   unix.SIGBUS,
	"WINCH": unix.SIGWINCH,
}

// Handler is the closure-or-sentinel a script passes to Signal.
type Handler struct {
	// Ignore and Default select the "IGNORE"/"DEFAULT" literal forms
	// spec.md §4.12 names. When neither is set, Fn is invoked on receipt.
	Ignore bool
	Default bool
	Fn      func(name string)
}

type registration struct {
	ch   chan os.Signal
	stop chan struct{}
}

var (
	mu    sync.Mutex
	active = map[string]*registration{}
)

// Signal installs h for the named signal, returning an Undef Value (per
// spec.md's "unknown names return undef") if name isn't in signalNames.
func Signal(name string, h Handler) *value.Value {
	sig, ok := signalNames[name]
	if !ok {
		return value.NewUndef()
	}

	mu.Lock()
	if prev, exists := active[name]; exists {
		signal.Stop(prev.ch)
		close(prev.stop)
		delete(active, name)
	}
	mu.Unlock()

	switch {
	case h.Ignore:
		signal.Ignore(sig)
		return value.NewUndef()
	case h.Default:
		signal.Reset(sig)
		return value.NewUndef()
	default:
		ch := make(chan os.Signal, 1)
		stop := make(chan struct{})
		signal.Notify(ch, sig)
		mu.Lock()
		active[name] = &registration{ch: ch, stop: stop}
		mu.Unlock()
		go func() {
			for {
				select {
				case <-ch:
					if h.Fn != nil {
						h.Fn(name)
					}
				case <-stop:
					return
				}
			}
		}()
		return value.NewUndef()
	}
}
