// Copyright 2026 The Strada Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package posix

import (
	"os"
	"testing"
	"time"

	"golang.org/x/sys/unix"

	"strada-lang/runtime/internal/value"
)

func signalSelfUSR1() error {
	return unix.Kill(os.Getpid(), unix.SIGUSR1)
}

func TestSignalUnknownNameReturnsUndef(t *testing.T) {
	got := Signal("NOT_A_REAL_SIGNAL", Handler{Ignore: true})
	if got.Kind() != value.Undef {
		t.Fatalf("Signal(unknown) kind = %v, want Undef", got.Kind())
	}
}

func TestSignalHandlerFnInvokedOnReceipt(t *testing.T) {
	received := make(chan string, 1)
	Signal("USR1", Handler{Fn: func(name string) { received <- name }})
	defer Signal("USR1", Handler{Default: true})

	if err := signalSelfUSR1(); err != nil {
		t.Skipf("could not signal self: %v", err)
	}

	select {
	case name := <-received:
		if name != "USR1" {
			t.Errorf("handler invoked with %q, want USR1", name)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("handler was not invoked within timeout")
	}
}

func TestAllDocumentedSignalNamesResolve(t *testing.T) {
	for _, name := range []string{
		"INT", "TERM", "HUP", "QUIT", "USR1", "USR2", "ALRM", "PIPE",
		"CHLD", "CONT", "STOP", "TSTP", "SEGV", "ABRT", "FPE", "ILL", "BUS", "WINCH",
	} {
		if _, ok := signalNames[name]; !ok {
			t.Errorf("signalNames missing %q", name)
		}
	}
}
