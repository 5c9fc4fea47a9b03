// Copyright 2026 The Strada Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command stradadump introspects a shared library built against the
// Strada FFI export convention (spec.md §6: __strada_export_info and
// __strada_version), printing its descriptor string and optionally
// rejecting it if its reported version is below -min-version.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/mod/semver"

	"strada-lang/runtime/internal/ffi"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("stradadump: ")

	fs := flag.NewFlagSet("stradadump", flag.ExitOnError)
	minVersion := fs.String("min-version", "", "reject the library if __strada_version() reports an older semver than this")
	fs.Parse(os.Args[1:])

	if fs.NArg() != 1 {
		log.Fatal("usage: stradadump [-min-version vX.Y.Z] <path-to-shared-library>")
	}
	path := fs.Arg(0)

	if *minVersion != "" && !semver.IsValid(*minVersion) {
		log.Fatalf("-min-version %q is not a valid semver string", *minVersion)
	}

	lib, err := ffi.Open(path)
	if err != nil {
		log.Fatalf("open %s: %v", path, err)
	}
	defer lib.Close()

	versionSym, err := lib.Sym("__strada_version")
	if err != nil {
		log.Fatalf("%s does not export __strada_version: %v", path, err)
	}
	version, err := ffi.DLCallStr(versionSym)
	if err != nil {
		log.Fatalf("call __strada_version: %v", err)
	}

	if *minVersion != "" {
		if err := ffi.CheckABIVersion(version); err != nil {
			log.Fatalf("%v", err)
		}
		if semver.IsValid(version) && semver.Compare(version, *minVersion) < 0 {
			log.Fatalf("%s reports version %s, below required minimum %s", path, version, *minVersion)
		}
	}

	infoSym, err := lib.Sym("__strada_export_info")
	if err != nil {
		log.Fatalf("%s does not export __strada_export_info: %v", path, err)
	}
	info, err := ffi.DLCallStr(infoSym)
	if err != nil {
		log.Fatalf("call __strada_export_info: %v", err)
	}

	fmt.Printf("%s  (version %s)\n%s\n", path, version, info)
}
