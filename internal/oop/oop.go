// Copyright 2026 The Strada Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package oop implements the Strada runtime's object system: a package
// registry with multiple inheritance, method dispatch by depth-first
// search over the parent list, and DESTROY wiring into internal/value's
// release cascade, per spec.md §4.9.
package oop

import (
	"fmt"
	"sync"
	"sync/atomic"

	"strada-lang/runtime/internal/exception"
	"strada-lang/runtime/internal/value"
)

// MaxParents bounds a single class's direct parent list, matching spec.md
// §4.9's stated cap.
const MaxParents = 16

// maxIsaDepth bounds the DFS visited-set spec.md §9 calls for, so a
// cyclic (malformed) inheritance graph fails fast instead of recursing
// forever.
const maxIsaDepth = 64

// Method is a bound native method implementation: given the receiver and
// explicit arguments, it returns a result.
type Method func(self *value.Value, args []*value.Value) *value.Value

type class struct {
	name    string
	parents []string
	methods map[string]Method
}

// Registry is a package-keyed class table supporting Bless/Isa/
// MethodCall/SuperCall/Can. The zero value is ready to use. Registration
// is expected to happen once during program initialization; after Freeze
// is called, writes return an error instead of mutating shared state, per
// spec.md §9's suggested design. Reads take the registry mutex both
// before and after Freeze.
type Registry struct {
	mu      sync.Mutex
	classes map[string]*class
	frozen  atomic.Bool
}

// NewRegistry constructs an empty, unfrozen Registry.
func NewRegistry() *Registry {
	return &Registry{classes: make(map[string]*class)}
}

// Define registers a class with the given direct parents (resolved by
// name; order matters for DFS dispatch — spec.md §4.9's "leftmost parent
// wins" rule). Calling Define again for an existing class replaces its
// parent list but preserves already-registered methods.
func (r *Registry) Define(className string, parents ...string) error {
	if r.frozen.Load() {
		return fmt.Errorf("strada/oop: registry frozen, cannot define %q", className)
	}
	if len(parents) > MaxParents {
		return fmt.Errorf("strada/oop: class %q has %d parents, exceeds max %d", className, len(parents), MaxParents)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.classes[className]
	if !ok {
		c = &class{name: className, methods: make(map[string]Method)}
		r.classes[className] = c
	}
	c.parents = append([]string(nil), parents...)
	return nil
}

// DefineMethod registers a method on className. If className has not been
// Define'd yet, it is registered here with no parents.
func (r *Registry) DefineMethod(className, methodName string, m Method) error {
	if r.frozen.Load() {
		return fmt.Errorf("strada/oop: registry frozen, cannot define method %s::%s", className, methodName)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.classes[className]
	if !ok {
		c = &class{name: className, methods: make(map[string]Method)}
		r.classes[className] = c
	}
	c.methods[methodName] = m
	return nil
}

// Freeze flips the registry to read-only. It is idempotent and safe to
// call from program initialization exactly once, as spec.md §9 suggests.
func (r *Registry) Freeze() { r.frozen.Store(true) }

// Bless tags v (which must be a Ref) with className, entering the OOP
// chain. Matches spec.md §4.9's "new_object"/"bless" operation.
func (r *Registry) Bless(v *value.Value, className string) error {
	r.mu.Lock()
	_, known := r.classes[className]
	r.mu.Unlock()
	if !known {
		return fmt.Errorf("strada/oop: unknown class %q", className)
	}
	return v.SetBlessedClass(className)
}

// Isa reports whether v's blessed class is, or inherits from (directly
// or transitively), className.
func (r *Registry) Isa(v *value.Value, className string) bool {
	cls := v.BlessedClass()
	if cls == "" {
		return false
	}
	return r.classIsa(cls, className, make(map[string]bool), 0)
}

func (r *Registry) classIsa(cls, target string, visited map[string]bool, depth int) bool {
	if depth > maxIsaDepth {
		return false
	}
	if cls == target {
		return true
	}
	if visited[cls] {
		return false
	}
	visited[cls] = true

	r.mu.Lock()
	c, ok := r.classes[cls]
	r.mu.Unlock()
	if !ok {
		return false
	}
	for _, p := range c.parents {
		if r.classIsa(p, target, visited, depth+1) {
			return true
		}
	}
	return false
}

// resolve performs the DFS method lookup spec.md §4.9 names: depth-first,
// left-to-right across each class's parent list, first match wins.
func (r *Registry) resolve(cls, method string, visited map[string]bool, depth int) (Method, string, bool) {
	if depth > maxIsaDepth || visited[cls] {
		return nil, "", false
	}
	visited[cls] = true

	r.mu.Lock()
	c, ok := r.classes[cls]
	r.mu.Unlock()
	if !ok {
		return nil, "", false
	}
	if m, ok := c.methods[method]; ok {
		return m, cls, true
	}
	for _, p := range c.parents {
		if m, owner, ok := r.resolve(p, method, visited, depth+1); ok {
			return m, owner, true
		}
	}
	return nil, "", false
}

// Can reports whether v's class (or an ancestor) defines method.
func (r *Registry) Can(v *value.Value, method string) bool {
	cls := v.BlessedClass()
	if cls == "" {
		return false
	}
	_, _, ok := r.resolve(cls, method, make(map[string]bool), 0)
	return ok
}

// MethodCall dispatches method on self's blessed class via DFS, per
// spec.md §4.9. An unknown method is a logic error the runtime raises
// itself — spec.md §7 classifies it as a catchable Exception, not a
// fatal exit — so the not-found case routes through exception.Throw
// rather than returning a plain error.
func (r *Registry) MethodCall(self *value.Value, method string, args []*value.Value) (*value.Value, error) {
	cls := self.BlessedClass()
	if cls == "" {
		return nil, fmt.Errorf("strada/oop: method call %q on unblessed value", method)
	}
	m, _, ok := r.resolve(cls, method, make(map[string]bool), 0)
	if !ok {
		exception.Throw(fmt.Sprintf("strada/oop: no method %q found for class %q", method, cls))
		return nil, nil
	}
	return m(self, args), nil
}

// SuperCall dispatches method starting the DFS search from fromClass's
// parent list rather than self's own class — the Go realization of
// SUPER, keyed on the class that defines the calling method (spec.md
// §4.9's "SUPER is resolved relative to the class where the CALLING
// method is defined, not the object's runtime class").
func (r *Registry) SuperCall(self *value.Value, fromClass, method string, args []*value.Value) (*value.Value, error) {
	r.mu.Lock()
	c, ok := r.classes[fromClass]
	r.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("strada/oop: unknown class %q in SUPER call", fromClass)
	}
	visited := make(map[string]bool)
	visited[fromClass] = true
	for _, p := range c.parents {
		if m, _, ok := r.resolve(p, method, visited, 1); ok {
			return m(self, args), nil
		}
	}
	return nil, fmt.Errorf("strada/oop: SUPER::%s not found above %q", method, fromClass)
}

// Destroy implements value.Destroyer: it dispatches DESTROY if the
// blessed class (or an ancestor) defines one, swallowing "not found" as
// a no-op since DESTROY is optional.
func (r *Registry) Destroy(ref *value.Value) {
	cls := ref.BlessedClass()
	if cls == "" {
		return
	}
	m, _, ok := r.resolve(cls, "DESTROY", make(map[string]bool), 0)
	if !ok {
		return
	}
	m(ref, nil)
}
