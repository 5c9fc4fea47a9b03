// Copyright 2026 The Strada Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ffi

import "testing"

func TestCheckABIVersionAcceptsUnversioned(t *testing.T) {
	if err := CheckABIVersion(""); err != nil {
		t.Fatalf("CheckABIVersion(\"\") = %v, want nil", err)
	}
}

func TestCheckABIVersionAcceptsMalformed(t *testing.T) {
	if err := CheckABIVersion("not-a-version"); err != nil {
		t.Fatalf("CheckABIVersion(garbage) = %v, want nil (unversioned fallback)", err)
	}
}

func TestCheckABIVersionRejectsDifferentMajor(t *testing.T) {
	if err := CheckABIVersion("v2.0.0"); err == nil {
		t.Fatalf("CheckABIVersion(v2.0.0) = nil, want error against major v1")
	}
}

func TestCheckABIVersionAcceptsCompatible(t *testing.T) {
	if err := CheckABIVersion("v1.4.0"); err != nil {
		t.Fatalf("CheckABIVersion(v1.4.0) = %v, want nil", err)
	}
}

func TestCheckABIVersionRejectsOlderThanMinimum(t *testing.T) {
	if err := CheckABIVersion("v0.9.0"); err == nil {
		t.Fatalf("CheckABIVersion(v0.9.0) = nil, want error")
	}
}
