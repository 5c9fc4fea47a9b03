// Copyright 2026 The Strada Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package strutil

import (
	"bytes"

	"strada-lang/runtime/internal/value"
)

const defaultBuilderCapacity = 1024

// StringBuilder accumulates bytes with amortized O(1) append, doubling
// its backing buffer's capacity on growth. It is an opaque object per
// spec.md §4.4: callers use Append/Length/Clear/ToString/Free and never
// reach into the internals.
type StringBuilder struct {
	buf *bytes.Buffer
}

// NewStringBuilder creates a builder with the default initial capacity
// (1024 bytes).
func NewStringBuilder() *StringBuilder {
	return NewStringBuilderCap(defaultBuilderCapacity)
}

// NewStringBuilderCap creates a builder with a caller-specified initial
// capacity.
func NewStringBuilderCap(capacity int) *StringBuilder {
	b := &StringBuilder{buf: new(bytes.Buffer)}
	b.buf.Grow(capacity)
	return b
}

// Append adds v's string coercion to the builder.
func (b *StringBuilder) Append(v *value.Value) {
	b.buf.WriteString(value.CoerceStr(v))
}

// AppendBytes adds raw bytes directly, for binary-safe building.
func (b *StringBuilder) AppendBytes(p []byte) {
	b.buf.Write(p)
}

// Length returns the number of bytes accumulated so far.
func (b *StringBuilder) Length() int { return b.buf.Len() }

// Clear empties the builder without releasing its backing capacity.
func (b *StringBuilder) Clear() { b.buf.Reset() }

// ToString returns a new Str Value holding a copy of the accumulated
// bytes. The builder retains its own buffer afterwards; ToString does not
// consume it.
func (b *StringBuilder) ToString() *value.Value {
	return value.NewStr(b.buf.Bytes())
}

// Free releases the builder's backing buffer. After Free the builder must
// not be used again. Provided for parity with the spec's explicit
// free() entry point; Go's GC would reclaim the buffer regardless, but
// generated code that mirrors the C calling convention expects a
// matching call for every builder it creates.
func (b *StringBuilder) Free() {
	b.buf = nil
}
