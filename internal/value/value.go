// Copyright 2026 The Strada Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package value implements the Strada runtime's universal tagged value
// type and its reference-counted memory discipline, together with the
// two ordered/unordered containers (array and dict) every Value of kind
// Array or Hash ultimately holds.
//
// Every script-level variable a generated Strada program manipulates is a
// *Value. The runtime owns all heap objects reachable through a Value;
// generated code never allocates or frees memory directly.
package value

import (
	"fmt"
	"log"
	"os"
	"sync/atomic"
)

var logger = log.New(os.Stderr, "strada: ", log.Lshortfile)

// Kind identifies which payload field of a Value is meaningful.
type Kind uint8

const (
	Undef Kind = iota
	Int
	Num
	Str
	Array
	Hash
	Ref
	FileHandle
	Regex
	Socket
	CStruct
	CPointer
	Closure
)

func (k Kind) String() string {
	switch k {
	case Undef:
		return "Undef"
	case Int:
		return "Int"
	case Num:
		return "Num"
	case Str:
		return "Str"
	case Array:
		return "Array"
	case Hash:
		return "Hash"
	case Ref:
		return "Ref"
	case FileHandle:
		return "FileHandle"
	case Regex:
		return "Regex"
	case Socket:
		return "Socket"
	case CStruct:
		return "CStruct"
	case CPointer:
		return "CPointer"
	case Closure:
		return "Closure"
	default:
		return "Unknown"
	}
}

// Destroyer is implemented by anything that wants a hook invoked at final
// decref of a blessed Ref (the DESTROY method, see internal/oop). The
// value package does not itself know about OOP dispatch; it calls back
// through this narrow seam to avoid an import cycle with internal/oop.
type Destroyer interface {
	Destroy(ref *Value)
}

// destroyer is installed once by the root package's initializer via
// SetDestroyer. It is nil until then, which is fine: no Ref can be
// blessed before the OOP registry exists.
var destroyer Destroyer

// SetDestroyer wires the OOP dispatcher's DESTROY hook into the value
// package's release cascade. Called exactly once, from the root package's
// initializer.
func SetDestroyer(d Destroyer) { destroyer = d }

// AllocObserver is implemented by internal/instrument's MemProfiler. The
// value package does not itself know about instrumentation; it calls
// back through this narrow seam, the same way it calls back through
// Destroyer for OOP, to avoid an import cycle (instrument imports value
// for Kind, so value cannot import instrument back).
type AllocObserver interface {
	RecordAlloc(k Kind, nbytes uint64)
	RecordFree(k Kind, nbytes uint64)
}

// allocObserver is installed by internal/instrument's EnableMemProfile,
// nil (and therefore a single no-op check per call) until then.
var allocObserver AllocObserver

// SetAllocObserver wires internal/instrument's MemProfiler into every
// Value constructor and the release cascade, per spec.md §4.13's
// description of the profiler as "fed by" allocation and release.
// Passing nil disables observation again.
func SetAllocObserver(o AllocObserver) { allocObserver = o }

// recordAlloc stashes nbytes on v (so the matching RecordFree at release
// replays the same figure) and notifies the installed observer, if any.
func recordAlloc(v *Value, nbytes uint64) {
	v.instrBytes = nbytes
	if allocObserver != nil {
		allocObserver.RecordAlloc(v.kind, nbytes)
	}
}

// recordFree notifies the installed observer that v is being released,
// using the byte count recorded at construction.
func recordFree(v *Value) {
	if allocObserver != nil {
		allocObserver.RecordFree(v.kind, v.instrBytes)
	}
}

// ClosureBody is implemented by internal/closure's Closure type. Held here
// as an interface for the same reason as Destroyer: value must not import
// closure (closure imports value for captured slots).
type ClosureBody interface {
	ReleaseCaptures()
}

// CPointerBody distinguishes a borrowed raw pointer (never freed by the
// runtime) from anything else; kept as an opaque interface{} slot instead
// of unsafe.Pointer so non-cgo builds still type-check.
type CPointerBody = any

// Closeable is satisfied by FileHandle, Regex and Socket payloads:
// anything with OS state that must be released exactly once, at final
// decref. CStruct payloads are plain byte buffers and do not use it.
type Closeable interface {
	Close() error
}

// Value is the tagged union every Strada runtime operation reads and
// writes. Unlike the original C implementation, Go gives every kind its
// own struct field instead of a raw union; the cost is a slightly larger
// struct, the benefit is that the Go compiler, not the programmer, keeps
// the fields honest. Only the field matching Kind is meaningful.
type Value struct {
	kind Kind

	refcount int32 // atomic; starts at 1

	// blessedClass is only meaningful when kind == Ref. If it is set on
	// any other kind the runtime has been corrupted by faulty host code;
	// see checkBlessedInvariant.
	blessedClass string

	i     int64
	f     float64
	s     []byte // authoritative byte length is len(s); never re-derived
	arr   *ArrayBody
	dict  *DictBody
	ref   *Value // non-owning field, semantically shared ownership
	close Closeable
	cptr  any
	clos  ClosureBody

	destroying bool // re-entrancy guard for DESTROY on this particular Ref

	instrBytes uint64 // size recorded with allocObserver at construction, replayed at release
}

// Kind reports which payload field is meaningful.
func (v *Value) Kind() Kind { return v.kind }

// Refcount reads the current reference count. Intended for tests and
// diagnostics; do not branch production logic on an exact count beyond
// the "am I the sole owner" check a few operations perform.
func (v *Value) Refcount() int32 { return atomic.LoadInt32(&v.refcount) }

func newValue(k Kind) *Value {
	return &Value{kind: k, refcount: 1}
}

// NewUndef returns a fresh Undef value with refcount 1.
func NewUndef() *Value {
	v := newValue(Undef)
	recordAlloc(v, 0)
	return v
}

// NewInt returns a fresh Int value with refcount 1.
func NewInt(i int64) *Value {
	v := newValue(Int)
	v.i = i
	recordAlloc(v, 8)
	return v
}

// NewNum returns a fresh Num value with refcount 1.
func NewNum(f float64) *Value {
	v := newValue(Num)
	v.f = f
	recordAlloc(v, 8)
	return v
}

// NewStr constructs a Str value from the given bytes. The byte slice is
// copied so later mutation of the caller's slice cannot alias the Value;
// embedded NULs are preserved because length is tracked explicitly.
func NewStr(b []byte) *Value {
	v := newValue(Str)
	v.s = append([]byte(nil), b...)
	recordAlloc(v, uint64(len(v.s)))
	return v
}

// NewStrLen is the explicit "take these bytes and this length" entry
// point the spec calls new_str_len; with Go slices the length is already
// carried alongside the data, so this is an alias of NewStr kept for
// parity with the ABI surface named in spec.md.
func NewStrLen(b []byte) *Value { return NewStr(b) }

// NewFileHandle wraps an already-open Closeable (e.g. *os.File), closed
// automatically on final decref.
func NewFileHandle(c Closeable) *Value {
	v := newValue(FileHandle)
	v.close = c
	recordAlloc(v, 0)
	return v
}

// NewSocket wraps a Closeable representing a socket file descriptor.
func NewSocket(c Closeable) *Value {
	v := newValue(Socket)
	v.close = c
	recordAlloc(v, 0)
	return v
}

// NewRegex wraps a compiled regex payload freed on final decref.
func NewRegex(c Closeable) *Value {
	v := newValue(Regex)
	v.close = c
	recordAlloc(v, 0)
	return v
}

// NewCStruct wraps an owned byte buffer tagged with a C type name.
func NewCStruct(typeName string, buf []byte) *Value {
	v := newValue(CStruct)
	v.blessedClass = "" // CStruct never carries a bless tag
	v.s = append([]byte(nil), buf...)
	v.cptr = typeName
	recordAlloc(v, uint64(len(v.s)))
	return v
}

// CStructTypeName returns the type-name tag of a CStruct value.
func (v *Value) CStructTypeName() string {
	if v.kind != CStruct {
		return ""
	}
	name, _ := v.cptr.(string)
	return name
}

// CStructBytes returns the raw backing buffer of a CStruct value, or nil
// if Kind() != CStruct. Unlike Bytes (Str-only), the returned slice is
// intended for in-place field reads by internal/ffi, not treated as an
// immutable string payload.
func (v *Value) CStructBytes() []byte {
	if v.kind != CStruct {
		return nil
	}
	return v.s
}

// NewCPointer wraps a borrowed raw pointer. The runtime never frees it.
func NewCPointer(p any) *Value {
	v := newValue(CPointer)
	v.cptr = p
	recordAlloc(v, 8)
	return v
}

// NewClosure wraps a closure body (see internal/closure.Closure).
func NewClosure(c ClosureBody) *Value {
	v := newValue(Closure)
	v.clos = c
	recordAlloc(v, 0)
	return v
}

// NewArray wraps a fresh, empty ArrayBody.
func NewArray() *Value {
	v := newValue(Array)
	v.arr = newArrayBody(0)
	recordAlloc(v, 0)
	return v
}

// NewArrayFromBody wraps an already-constructed ArrayBody.
func NewArrayFromBody(b *ArrayBody) *Value {
	v := newValue(Array)
	v.arr = b
	recordAlloc(v, uint64(b.Len())*8)
	return v
}

// NewHash wraps a fresh, empty DictBody.
func NewHash() *Value {
	v := newValue(Hash)
	v.dict = newDictBody(0)
	recordAlloc(v, 0)
	return v
}

// NewHashFromBody wraps an already-constructed DictBody.
func NewHashFromBody(b *DictBody) *Value {
	v := newValue(Hash)
	v.dict = b
	recordAlloc(v, uint64(len(b.Keys()))*8)
	return v
}

// NewRefBare constructs a Ref value pointing at target, adopting the
// caller's existing ownership share of target (no refcount change here).
// internal/ref builds both make_ref and make_ref_take on top of this:
// make_ref calls Retain(target) first, make_ref_take does not.
func NewRefBare(target *Value) *Value {
	v := newValue(Ref)
	v.ref = target
	recordAlloc(v, 8)
	return v
}

// Overwrite implements deref_set: it mutates dst's kind and payload
// fields in place to match src, without allocating a new Value or
// changing dst's own refcount. Any other holder of dst's pointer observes
// the change immediately — this is the aliasing primitive that makes Ref
// targets, and closure capture slots, work. dst's previous payload is
// released as if dst itself had gone out of scope; src's new payload, if
// it is a shared body (Array/Hash) or another Ref, has its ownership
// count bumped by one since dst now independently shares it.
func Overwrite(dst, src *Value) {
	if dst == nil || src == nil || dst == src {
		return
	}
	old := &Value{
		kind: dst.kind, blessedClass: dst.blessedClass,
		i: dst.i, f: dst.f, s: dst.s,
		arr: dst.arr, dict: dst.dict, ref: dst.ref,
		close: dst.close, cptr: dst.cptr, clos: dst.clos,
		instrBytes: dst.instrBytes,
	}
	releaseCascade(old)

	dst.kind = src.kind
	dst.blessedClass = src.blessedClass
	dst.i = src.i
	dst.f = src.f
	dst.s = src.s
	dst.arr = src.arr
	dst.dict = src.dict
	dst.ref = src.ref
	dst.close = src.close
	dst.cptr = src.cptr
	dst.clos = src.clos
	dst.instrBytes = src.instrBytes

	switch dst.kind {
	case Array:
		if dst.arr != nil {
			retainArray(dst.arr)
		}
	case Hash:
		if dst.dict != nil {
			dst.dict.refcount++
		}
	case Ref:
		Retain(dst.ref)
	}
}

// Array returns the underlying ArrayBody, or nil if Kind() != Array.
func (v *Value) Array() *ArrayBody {
	if v.kind != Array {
		return nil
	}
	return v.arr
}

// Hash returns the underlying DictBody, or nil if Kind() != Hash.
func (v *Value) Hash() *DictBody {
	if v.kind != Hash {
		return nil
	}
	return v.dict
}

// Int returns the raw int64 payload. Valid only when Kind() == Int;
// callers needing coercion should use the Coerce* helpers in coerce.go.
func (v *Value) Int() int64 { return v.i }

// Num returns the raw float64 payload. Valid only when Kind() == Num.
func (v *Value) Num() float64 { return v.f }

// Bytes returns the raw byte payload of a Str value. The returned slice
// must not be mutated by the caller; strings are immutable once built
// (see ConcatSV's "never append in place" rule in arith.go).
func (v *Value) Bytes() []byte {
	if v.kind != Str {
		return nil
	}
	return v.s
}

// CPointer returns the borrowed raw pointer payload.
func (v *Value) CPointer() any { return v.cptr }

// Closure returns the closure body payload.
func (v *Value) Closure() ClosureBody { return v.clos }

// Closeable returns the scoped-resource payload (FileHandle/Socket/Regex).
func (v *Value) Closeable() Closeable { return v.close }

// Target dereferences a Ref, returning its pointee (which may itself be
// Undef, but never nil — a Ref always has a non-nil target Value).
func (v *Value) Target() *Value {
	if v.kind != Ref {
		return nil
	}
	return v.ref
}

// setTarget points v at t without touching any refcount. It is used only
// by this package's tests (internal/ref builds Refs through NewRefBare);
// kept unexported so nothing outside this package can bypass the
// refcount discipline make_ref/make_ref_take enforce.
func (v *Value) setTarget(t *Value) { v.ref = t }

// BlessedClass returns the bless tag, or "" if unblessed. Only Ref values
// may carry one; see checkBlessedInvariant.
func (v *Value) BlessedClass() string { return v.blessedClass }

// SetBlessedClass sets or clears the bless tag. Returns an error (instead
// of silently accepting corruption) if called on a non-Ref kind; per
// spec.md §3 the runtime "treats it as corruption and logs but declines
// to invoke DESTROY" — here we additionally refuse the write outright,
// which is the Go-idiomatic tightening of the same guard.
func (v *Value) SetBlessedClass(class string) error {
	if v.kind != Ref {
		logger.Printf("corruption guard: attempted to bless non-Ref kind %s", v.kind)
		return fmt.Errorf("strada/value: cannot bless a %s value", v.kind)
	}
	v.blessedClass = class
	return nil
}

// checkBlessedInvariant validates that a blessed_class tag looks like a
// plausible, short, printable user class name before DESTROY is invoked
// on it. This is the corruption guard spec.md §4.1 calls for: defense in
// depth against faulty host code, not a security boundary.
func checkBlessedInvariant(class string) bool {
	if len(class) == 0 || len(class) > 256 {
		return false
	}
	for _, r := range class {
		if r < 0x20 || r == 0x7f {
			return false
		}
	}
	return true
}

// Retain increments the refcount atomically. This is the Go name for the
// spec's incref.
func Retain(v *Value) *Value {
	if v == nil {
		return v
	}
	atomic.AddInt32(&v.refcount, 1)
	return v
}

// Release decrements the refcount atomically; at the transition to zero
// it runs the release cascade for v's kind, invoking DESTROY first when v
// is a blessed Ref. This is the Go name for the spec's decref.
func Release(v *Value) {
	if v == nil {
		return
	}
	if atomic.AddInt32(&v.refcount, -1) > 0 {
		return
	}
	releaseCascade(v)
}

func releaseCascade(v *Value) {
	recordFree(v)
	switch v.kind {
	case Str:
		v.s = nil
	case Array:
		if v.arr != nil {
			v.arr.release()
		}
	case Hash:
		if v.dict != nil {
			v.dict.release()
		}
	case Ref:
		if v.blessedClass != "" && !v.destroying {
			if checkBlessedInvariant(v.blessedClass) {
				if destroyer != nil {
					v.destroying = true
					destroyer.Destroy(v)
					v.destroying = false
				}
			} else {
				logger.Printf("corruption guard: implausible blessed_class %q, skipping DESTROY", v.blessedClass)
				v.blessedClass = ""
			}
		}
		Release(v.ref)
		v.ref = nil
	case FileHandle, Socket, Regex:
		if v.close != nil {
			if err := v.close.Close(); err != nil {
				logger.Printf("release: close error: %v", err)
			}
		}
	case CStruct:
		v.s = nil
		v.cptr = nil
	case CPointer:
		// borrowed; runtime never frees it.
	case Closure:
		if v.clos != nil {
			v.clos.ReleaseCaptures()
		}
	}
}
