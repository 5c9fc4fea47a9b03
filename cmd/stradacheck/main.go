// Copyright 2026 The Strada Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command stradacheck is a small interactive smoke-test harness: it
// exercises the runtime's value, container, and closure layers directly
// from Go (standing in for a compiled Strada program, since the
// lexer/parser/codegen toolchain is out of scope per spec.md §1) and
// reports any invariant it finds broken.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"

	"strada-lang/runtime/internal/closure"
	"strada-lang/runtime/internal/value"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("stradacheck: ")

	fs := flag.NewFlagSet("stradacheck", flag.ExitOnError)
	seed := fs.Int64("seed", 1, "seed for the randomized array/hash smoke test")
	verbose := fs.Bool("verbose", false, "print each check as it runs")
	fs.Parse(os.Args[1:])

	rng := rand.New(rand.NewSource(*seed))

	checks := []struct {
		name string
		run  func(*rand.Rand) error
	}{
		{"array push/pop refcount", checkArrayRefcount},
		{"dict bucket-walk covers every key", checkDictKeys},
		{"closure capture visible after call", checkClosureCapture},
		{"string concat never mutates in place", checkConcatImmutable},
	}

	failures := 0
	for _, c := range checks {
		if *verbose {
			fmt.Printf("running: %s\n", c.name)
		}
		if err := c.run(rng); err != nil {
			fmt.Printf("FAIL: %s: %v\n", c.name, err)
			failures++
		} else if *verbose {
			fmt.Printf("ok: %s\n", c.name)
		}
	}

	if failures > 0 {
		log.Fatalf("%d/%d checks failed", failures, len(checks))
	}
	fmt.Printf("%d checks passed\n", len(checks))
}

func checkArrayRefcount(rng *rand.Rand) error {
	elem := value.NewInt(rng.Int63())
	arr := value.NewArray()
	arr.Array().PushBorrow(elem)
	if elem.Refcount() != 2 {
		return fmt.Errorf("refcount after PushBorrow = %d, want 2", elem.Refcount())
	}
	popped := arr.Array().Pop()
	if popped != elem {
		return fmt.Errorf("Pop() did not return the pushed element")
	}
	value.Release(popped)
	if elem.Refcount() != 1 {
		return fmt.Errorf("refcount after Release(popped) = %d, want 1", elem.Refcount())
	}
	return nil
}

func checkDictKeys(rng *rand.Rand) error {
	h := value.NewHash()
	d := h.Hash()
	want := map[string]bool{}
	for i := 0; i < 50; i++ {
		key := fmt.Sprintf("k%d", rng.Intn(1000))
		want[key] = true
		d.Set(key, value.NewInt(int64(i)))
	}
	got := map[string]bool{}
	for _, k := range d.Keys() {
		got[k] = true
	}
	if len(got) != len(want) {
		return fmt.Errorf("Keys() returned %d distinct keys, want %d", len(got), len(want))
	}
	for k := range want {
		if !got[k] {
			return fmt.Errorf("Keys() missing %q", k)
		}
	}
	return nil
}

func checkClosureCapture(rng *rand.Rand) error {
	start := rng.Int63n(1000)
	slot := closure.NewSlot(value.NewInt(start))
	incr := closure.New(func(captures []*closure.Slot, args []*value.Value) *value.Value {
		cur := captures[0].V.Int()
		value.Overwrite(captures[0].V, value.NewInt(cur+1))
		return value.NewUndef()
	}, 0, []*closure.Slot{slot})

	if _, err := incr.Call(); err != nil {
		return err
	}
	if slot.V.Int() != start+1 {
		return fmt.Errorf("captured slot = %d, want %d", slot.V.Int(), start+1)
	}
	return nil
}

func checkConcatImmutable(rng *rand.Rand) error {
	a := value.NewStr([]byte(fmt.Sprintf("part-%d-", rng.Intn(100))))
	original := append([]byte(nil), a.Bytes()...)
	result := value.ConcatSV(a, value.NewStr([]byte("suffix")))
	if string(a.Bytes()) != string(original) {
		return fmt.Errorf("ConcatSV mutated its left operand in place")
	}
	if result == a {
		return fmt.Errorf("ConcatSV returned the same Value as its left operand")
	}
	return nil
}
