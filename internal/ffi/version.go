// Copyright 2026 The Strada Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ffi

import (
	"fmt"

	"golang.org/x/mod/semver"
)

// VersionContract is the version-compatibility check SPEC_FULL.md §5
// wires golang.org/x/mod/semver into: a Strada-aware library reports a
// version string through its __strada_version export, and
// CheckABIVersion checks it against the runtime's own supported range.
// Open performs no such check itself; cmd/stradadump is the caller that
// runs it before trusting the library's other symbols. This is a Go-side addition with no direct spec.md analogue —
// the original runtime simply trusts whatever shared object it's handed
// — but it's a natural hardening step for the cgo bridge and gives
// x/mod/semver a genuine home, so it's included rather than left unwired.
const minSupportedABI = "v1.0.0"
const maxSupportedABI = "v1.x" // documents the range only; CheckABIVersion enforces it by comparing semver.Major with minSupportedABI's

// CheckABIVersion validates a library-reported version string like
// "v1.2.0" against the runtime's supported major version. An empty or
// malformed version string is treated as "unversioned" and accepted,
// since most real C shared libraries will never export this symbol —
// the check only protects against a STRADA-aware library declaring
// incompatibility, not against ordinary third-party libraries lacking
// the convention entirely.
func CheckABIVersion(reported string) error {
	if reported == "" {
		return nil
	}
	if !semver.IsValid(reported) {
		return nil
	}
	if semver.Major(reported) != semver.Major(minSupportedABI) {
		return fmt.Errorf("strada/ffi: library ABI version %s is incompatible with runtime major version %s",
			reported, semver.Major(minSupportedABI))
	}
	if semver.Compare(reported, minSupportedABI) < 0 {
		return fmt.Errorf("strada/ffi: library ABI version %s is older than minimum supported %s", reported, minSupportedABI)
	}
	return nil
}
