// Copyright 2026 The Strada Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command stradaprof reads a function-profiler report produced by the
// Strada runtime's instrumentation package and prints it as text or
// writes the parsed profile back out in pprof format, per SPEC_FULL.md
// §4.C.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/pprof/profile"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("stradaprof: ")

	fs := flag.NewFlagSet("stradaprof", flag.ExitOnError)
	profilePath := fs.String("profile", "", "path to a pprof-format profile written by the runtime's instrumentation package")
	format := fs.String("format", "text", "report format: text or pprof")
	fs.Parse(os.Args[1:])

	if *profilePath == "" {
		log.Fatal("-profile is required")
	}

	f, err := os.Open(*profilePath)
	if err != nil {
		log.Fatalf("open %s: %v", *profilePath, err)
	}
	defer f.Close()

	prof, err := profile.Parse(f)
	if err != nil {
		log.Fatalf("parse %s: %v", *profilePath, err)
	}

	switch *format {
	case "text":
		printText(prof)
	case "pprof":
		if err := prof.Write(os.Stdout); err != nil {
			log.Fatalf("write pprof: %v", err)
		}
	default:
		log.Fatalf("unknown -format %q (want text or pprof)", *format)
	}
}

func printText(prof *profile.Profile) {
	for _, fn := range prof.Function {
		fmt.Printf("%s\n", fn.Name)
	}
	for _, s := range prof.Sample {
		var names []string
		for _, loc := range s.Location {
			for _, line := range loc.Line {
				names = append(names, line.Function.Name)
			}
		}
		fmt.Printf("  %v %v\n", names, s.Value)
	}
}
