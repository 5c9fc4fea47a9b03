// Copyright 2026 The Strada Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ffi implements the Strada runtime's foreign-function
// interface: loading shared libraries with dlopen, resolving symbols
// with dlsym, and calling them with 0–10 arguments across the raw and
// passthrough families named in spec.md §4.11. This package is the one
// corner of the runtime that legitimately needs cgo: dlopen/dlsym have
// no portable syscall-only equivalent.
package ffi

/*
#cgo LDFLAGS: -ldl
#include <dlfcn.h>
#include <stdlib.h>
*/
import "C"

import (
	"fmt"
	"sync"
	"unsafe"
)

// Library is a handle to a shared object opened with dlopen, closed
// exactly once on Close.
type Library struct {
	mu     sync.Mutex
	handle unsafe.Pointer
	path   string
	closed bool
}

// Open dlopen(3)s path with RTLD_NOW|RTLD_GLOBAL, matching spec.md
// §4.11's dl_open contract: a failure returns a descriptive error rather
// than a null handle the caller must separately check.
func Open(path string) (*Library, error) {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))

	h := C.dlopen(cpath, C.RTLD_NOW|C.RTLD_GLOBAL)
	if h == nil {
		return nil, fmt.Errorf("strada/ffi: dlopen %q: %s", path, C.GoString(C.dlerror()))
	}
	return &Library{handle: h, path: path}, nil
}

// Sym resolves name to a function pointer, analogous to dlsym(3).
func (l *Library) Sym(name string) (unsafe.Pointer, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return nil, fmt.Errorf("strada/ffi: %q: library already closed", l.path)
	}
	C.dlerror() // clear any pending error, per dlsym(3)'s documented idiom
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	sym := C.dlsym(l.handle, cname)
	if sym == nil {
		if errmsg := C.dlerror(); errmsg != nil {
			return nil, fmt.Errorf("strada/ffi: dlsym %q in %q: %s", name, l.path, C.GoString(errmsg))
		}
	}
	return sym, nil
}

// Close dlclose(3)s the library. Safe to call more than once.
func (l *Library) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return nil
	}
	l.closed = true
	if C.dlclose(l.handle) != 0 {
		return fmt.Errorf("strada/ffi: dlclose %q: %s", l.path, C.GoString(C.dlerror()))
	}
	return nil
}

// Path returns the path Open was called with.
func (l *Library) Path() string { return l.path }
