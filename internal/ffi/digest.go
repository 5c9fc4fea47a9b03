// Copyright 2026 The Strada Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ffi

import (
	"encoding/hex"
	"fmt"
	"os"

	"golang.org/x/crypto/blake2b"
)

// Digest computes a BLAKE2b-256 hex digest of a shared library's file
// contents. SPEC_FULL.md §5 wires golang.org/x/crypto/blake2b in here as
// an OPTIONAL library-integrity check: a deployment can pin the expected
// digest of a .so it dlopen's and have VerifyDigest refuse to load a
// tampered or mismatched build, without requiring every caller of Open
// to opt in.
func Digest(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("strada/ffi: digest %q: %w", path, err)
	}
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// VerifyDigest checks that path's BLAKE2b-256 digest matches want (a hex
// string), returning an error on mismatch or read failure.
func VerifyDigest(path, want string) error {
	got, err := Digest(path)
	if err != nil {
		return err
	}
	if got != want {
		return fmt.Errorf("strada/ffi: digest mismatch for %q: got %s, want %s", path, got, want)
	}
	return nil
}
