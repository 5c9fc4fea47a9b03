// Copyright 2026 The Strada Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ffi

/*
#include <stdint.h>
#include <string.h>

typedef long long (*strada_int_fn0)(void);
typedef long long (*strada_int_fn1)(long long);
typedef long long (*strada_int_fn2)(long long, long long);
typedef long long (*strada_int_fn3)(long long, long long, long long);
typedef long long (*strada_int_fn4)(long long, long long, long long, long long);
typedef long long (*strada_int_fn5)(long long, long long, long long, long long, long long);
typedef long long (*strada_int_fn6)(long long, long long, long long, long long, long long, long long);
typedef long long (*strada_int_fn7)(long long, long long, long long, long long, long long, long long, long long);
typedef long long (*strada_int_fn8)(long long, long long, long long, long long, long long, long long, long long, long long);
typedef long long (*strada_int_fn9)(long long, long long, long long, long long, long long, long long, long long, long long, long long);
typedef long long (*strada_int_fn10)(long long, long long, long long, long long, long long, long long, long long, long long, long long, long long);

static long long strada_call_int(void *fn, int argc, long long *argv) {
	switch (argc) {
	case 0: return ((strada_int_fn0)fn)();
	case 1: return ((strada_int_fn1)fn)(argv[0]);
	case 2: return ((strada_int_fn2)fn)(argv[0], argv[1]);
	case 3: return ((strada_int_fn3)fn)(argv[0], argv[1], argv[2]);
	case 4: return ((strada_int_fn4)fn)(argv[0], argv[1], argv[2], argv[3]);
	case 5: return ((strada_int_fn5)fn)(argv[0], argv[1], argv[2], argv[3], argv[4]);
	case 6: return ((strada_int_fn6)fn)(argv[0], argv[1], argv[2], argv[3], argv[4], argv[5]);
	case 7: return ((strada_int_fn7)fn)(argv[0], argv[1], argv[2], argv[3], argv[4], argv[5], argv[6]);
	case 8: return ((strada_int_fn8)fn)(argv[0], argv[1], argv[2], argv[3], argv[4], argv[5], argv[6], argv[7]);
	case 9: return ((strada_int_fn9)fn)(argv[0], argv[1], argv[2], argv[3], argv[4], argv[5], argv[6], argv[7], argv[8]);
	case 10: return ((strada_int_fn10)fn)(argv[0], argv[1], argv[2], argv[3], argv[4], argv[5], argv[6], argv[7], argv[8], argv[9]);
	default: return 0;
	}
}

typedef double (*strada_num_fn0)(void);
typedef double (*strada_num_fn1)(double);
typedef double (*strada_num_fn2)(double, double);
typedef double (*strada_num_fn3)(double, double, double);
typedef double (*strada_num_fn4)(double, double, double, double);
typedef double (*strada_num_fn5)(double, double, double, double, double);
typedef double (*strada_num_fn6)(double, double, double, double, double, double);
typedef double (*strada_num_fn7)(double, double, double, double, double, double, double);
typedef double (*strada_num_fn8)(double, double, double, double, double, double, double, double);
typedef double (*strada_num_fn9)(double, double, double, double, double, double, double, double, double);
typedef double (*strada_num_fn10)(double, double, double, double, double, double, double, double, double, double);

static double strada_call_num(void *fn, int argc, double *argv) {
	switch (argc) {
	case 0: return ((strada_num_fn0)fn)();
	case 1: return ((strada_num_fn1)fn)(argv[0]);
	case 2: return ((strada_num_fn2)fn)(argv[0], argv[1]);
	case 3: return ((strada_num_fn3)fn)(argv[0], argv[1], argv[2]);
	case 4: return ((strada_num_fn4)fn)(argv[0], argv[1], argv[2], argv[3]);
	case 5: return ((strada_num_fn5)fn)(argv[0], argv[1], argv[2], argv[3], argv[4]);
	case 6: return ((strada_num_fn6)fn)(argv[0], argv[1], argv[2], argv[3], argv[4], argv[5]);
	case 7: return ((strada_num_fn7)fn)(argv[0], argv[1], argv[2], argv[3], argv[4], argv[5], argv[6]);
	case 8: return ((strada_num_fn8)fn)(argv[0], argv[1], argv[2], argv[3], argv[4], argv[5], argv[6], argv[7]);
	case 9: return ((strada_num_fn9)fn)(argv[0], argv[1], argv[2], argv[3], argv[4], argv[5], argv[6], argv[7], argv[8]);
	case 10: return ((strada_num_fn10)fn)(argv[0], argv[1], argv[2], argv[3], argv[4], argv[5], argv[6], argv[7], argv[8], argv[9]);
	default: return 0;
	}
}

typedef const char *(*strada_str_fn0)(void);
typedef const char *(*strada_str_fn1)(const char *);
typedef const char *(*strada_str_fn2)(const char *, const char *);
typedef const char *(*strada_str_fn3)(const char *, const char *, const char *);
typedef const char *(*strada_str_fn4)(const char *, const char *, const char *, const char *);
typedef const char *(*strada_str_fn5)(const char *, const char *, const char *, const char *, const char *);
typedef const char *(*strada_str_fn6)(const char *, const char *, const char *, const char *, const char *, const char *);
typedef const char *(*strada_str_fn7)(const char *, const char *, const char *, const char *, const char *, const char *, const char *);
typedef const char *(*strada_str_fn8)(const char *, const char *, const char *, const char *, const char *, const char *, const char *, const char *);
typedef const char *(*strada_str_fn9)(const char *, const char *, const char *, const char *, const char *, const char *, const char *, const char *, const char *);
typedef const char *(*strada_str_fn10)(const char *, const char *, const char *, const char *, const char *, const char *, const char *, const char *, const char *, const char *);

static const char *strada_call_str(void *fn, int argc, const char **argv) {
	switch (argc) {
	case 0: return ((strada_str_fn0)fn)();
	case 1: return ((strada_str_fn1)fn)(argv[0]);
	case 2: return ((strada_str_fn2)fn)(argv[0], argv[1]);
	case 3: return ((strada_str_fn3)fn)(argv[0], argv[1], argv[2]);
	case 4: return ((strada_str_fn4)fn)(argv[0], argv[1], argv[2], argv[3]);
	case 5: return ((strada_str_fn5)fn)(argv[0], argv[1], argv[2], argv[3], argv[4]);
	case 6: return ((strada_str_fn6)fn)(argv[0], argv[1], argv[2], argv[3], argv[4], argv[5]);
	case 7: return ((strada_str_fn7)fn)(argv[0], argv[1], argv[2], argv[3], argv[4], argv[5], argv[6]);
	case 8: return ((strada_str_fn8)fn)(argv[0], argv[1], argv[2], argv[3], argv[4], argv[5], argv[6], argv[7]);
	case 9: return ((strada_str_fn9)fn)(argv[0], argv[1], argv[2], argv[3], argv[4], argv[5], argv[6], argv[7], argv[8]);
	case 10: return ((strada_str_fn10)fn)(argv[0], argv[1], argv[2], argv[3], argv[4], argv[5], argv[6], argv[7], argv[8], argv[9]);
	default: return 0;
	}
}

typedef void (*strada_void_fn0)(void);
typedef void (*strada_void_fn1)(long long);
typedef void (*strada_void_fn2)(long long, long long);
typedef void (*strada_void_fn3)(long long, long long, long long);
typedef void (*strada_void_fn4)(long long, long long, long long, long long);
typedef void (*strada_void_fn5)(long long, long long, long long, long long, long long);
typedef void (*strada_void_fn6)(long long, long long, long long, long long, long long, long long);
typedef void (*strada_void_fn7)(long long, long long, long long, long long, long long, long long, long long);
typedef void (*strada_void_fn8)(long long, long long, long long, long long, long long, long long, long long, long long);
typedef void (*strada_void_fn9)(long long, long long, long long, long long, long long, long long, long long, long long, long long);
typedef void (*strada_void_fn10)(long long, long long, long long, long long, long long, long long, long long, long long, long long, long long);

static void strada_call_void(void *fn, int argc, long long *argv) {
	switch (argc) {
	case 0: ((strada_void_fn0)fn)(); return;
	case 1: ((strada_void_fn1)fn)(argv[0]); return;
	case 2: ((strada_void_fn2)fn)(argv[0], argv[1]); return;
	case 3: ((strada_void_fn3)fn)(argv[0], argv[1], argv[2]); return;
	case 4: ((strada_void_fn4)fn)(argv[0], argv[1], argv[2], argv[3]); return;
	case 5: ((strada_void_fn5)fn)(argv[0], argv[1], argv[2], argv[3], argv[4]); return;
	case 6: ((strada_void_fn6)fn)(argv[0], argv[1], argv[2], argv[3], argv[4], argv[5]); return;
	case 7: ((strada_void_fn7)fn)(argv[0], argv[1], argv[2], argv[3], argv[4], argv[5], argv[6]); return;
	case 8: ((strada_void_fn8)fn)(argv[0], argv[1], argv[2], argv[3], argv[4], argv[5], argv[6], argv[7]); return;
	case 9: ((strada_void_fn9)fn)(argv[0], argv[1], argv[2], argv[3], argv[4], argv[5], argv[6], argv[7], argv[8]); return;
	case 10: ((strada_void_fn10)fn)(argv[0], argv[1], argv[2], argv[3], argv[4], argv[5], argv[6], argv[7], argv[8], argv[9]); return;
	default: return;
	}
}
*/
import "C"

import (
	"fmt"
	"unsafe"

	"strada-lang/runtime/internal/value"
)

// MaxArgs is the 0–10 explicit-argument cap spec.md §4.11 names for
// every DLCall* family member.
const MaxArgs = 10

func checkArgc(args []int64) error {
	if len(args) > MaxArgs {
		return fmt.Errorf("strada/ffi: %d arguments exceeds max %d", len(args), MaxArgs)
	}
	return nil
}

// DLCallInt is the raw-family integer call: fn is treated as a function
// of up to 10 long long arguments returning long long.
func DLCallInt(fn unsafe.Pointer, args ...int64) (int64, error) {
	if err := checkArgc(args); err != nil {
		return 0, err
	}
	cargs := make([]C.longlong, len(args))
	for i, a := range args {
		cargs[i] = C.longlong(a)
	}
	var argPtr *C.longlong
	if len(cargs) > 0 {
		argPtr = &cargs[0]
	}
	r := C.strada_call_int(fn, C.int(len(args)), (*C.longlong)(unsafe.Pointer(argPtr)))
	return int64(r), nil
}

// DLCallNum is the raw-family float call: fn is treated as a function of
// up to 10 double arguments returning double.
func DLCallNum(fn unsafe.Pointer, args ...float64) (float64, error) {
	if len(args) > MaxArgs {
		return 0, fmt.Errorf("strada/ffi: %d arguments exceeds max %d", len(args), MaxArgs)
	}
	cargs := make([]C.double, len(args))
	for i, a := range args {
		cargs[i] = C.double(a)
	}
	var argPtr *C.double
	if len(cargs) > 0 {
		argPtr = &cargs[0]
	}
	r := C.strada_call_num(fn, C.int(len(args)), (*C.double)(unsafe.Pointer(argPtr)))
	return float64(r), nil
}

// DLCallStr is the raw-family string call: fn takes up to 10 const
// char* arguments and returns a const char* (the zero-argument form
// covers entry points like __strada_version). The returned string is
// copied into Go memory immediately; ownership of the C-side buffer is
// left to the callee's own convention (static, leaked, or
// caller-freed), exactly as spec.md §4.11 leaves it to the library
// contract.
func DLCallStr(fn unsafe.Pointer, args ...string) (string, error) {
	if len(args) > MaxArgs {
		return "", fmt.Errorf("strada/ffi: %d arguments exceeds max %d", len(args), MaxArgs)
	}
	cargs := make([]*C.char, len(args))
	for i, a := range args {
		cargs[i] = C.CString(a)
		defer C.free(unsafe.Pointer(cargs[i]))
	}
	var argPtr **C.char
	if len(cargs) > 0 {
		argPtr = &cargs[0]
	}
	r := C.strada_call_str(fn, C.int(len(args)), argPtr)
	if r == nil {
		return "", nil
	}
	return C.GoString(r), nil
}

// DLCallVoid is the raw-family void call: fn takes up to 10 long long
// arguments and returns nothing.
func DLCallVoid(fn unsafe.Pointer, args ...int64) error {
	if err := checkArgc(args); err != nil {
		return err
	}
	cargs := make([]C.longlong, len(args))
	for i, a := range args {
		cargs[i] = C.longlong(a)
	}
	var argPtr *C.longlong
	if len(cargs) > 0 {
		argPtr = &cargs[0]
	}
	C.strada_call_void(fn, C.int(len(args)), (*C.longlong)(unsafe.Pointer(argPtr)))
	return nil
}

// --- Passthrough family: spec.md §4.11's DLCallIntSV/DLCallStrSV/
// DLCallVoidSV/DLCallSV, which accept and return *value.Value directly
// instead of raw Go scalars, coercing at the boundary the same way the
// rest of the runtime's arithmetic layer does (internal/value/coerce.go).

// DLCallIntSV coerces each argument Value to int64, calls through
// DLCallInt, and wraps the result back up as an Int Value.
func DLCallIntSV(fn unsafe.Pointer, args []*value.Value) (*value.Value, error) {
	ints := make([]int64, len(args))
	for i, a := range args {
		ints[i] = value.CoerceInt(a)
	}
	r, err := DLCallInt(fn, ints...)
	if err != nil {
		return nil, err
	}
	return value.NewInt(r), nil
}

// DLCallStrSV coerces each argument Value to a string, calls through
// DLCallStr, and wraps the result back up as a Str Value.
func DLCallStrSV(fn unsafe.Pointer, args []*value.Value) (*value.Value, error) {
	strs := make([]string, len(args))
	for i, a := range args {
		strs[i] = value.CoerceStr(a)
	}
	r, err := DLCallStr(fn, strs...)
	if err != nil {
		return nil, err
	}
	return value.NewStr([]byte(r)), nil
}

// DLCallVoidSV coerces each argument Value to int64 and calls through
// DLCallVoid, returning Undef.
func DLCallVoidSV(fn unsafe.Pointer, args []*value.Value) (*value.Value, error) {
	ints := make([]int64, len(args))
	for i, a := range args {
		ints[i] = value.CoerceInt(a)
	}
	if err := DLCallVoid(fn, ints...); err != nil {
		return nil, err
	}
	return value.NewUndef(), nil
}

// DLCallSV is the most permissive passthrough entry point: it dispatches
// to DLCallIntSV, deliberately the lowest common denominator, matching
// spec.md §4.11's note that DLCallSV exists for callers that don't know
// ahead of time which native return type a library function uses and
// want "an Int they can re-coerce themselves."
func DLCallSV(fn unsafe.Pointer, args []*value.Value) (*value.Value, error) {
	return DLCallIntSV(fn, args)
}
