// Copyright 2026 The Strada Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package posix

import (
	"fmt"

	"golang.org/x/sys/unix"

	"strada-lang/runtime/internal/value"
)

// rlimitInfinity is the Value-level stand-in for RLIM_INFINITY, since
// unix.RLIM_INFINITY overflows int64 on some platforms' representations;
// spec.md's Int kind is a signed 64-bit quantity, so -1 is used as the
// conventional "unlimited" sentinel the same way many userspace tools
// already report it.
const rlimitInfinity = -1

// Getrlimit returns {cur, max} for resource (an RLIMIT_* constant from
// golang.org/x/sys/unix, e.g. unix.RLIMIT_NOFILE), per spec.md §4.12.
func Getrlimit(resource int) (*value.Value, error) {
	var rl unix.Rlimit
	if err := unix.Getrlimit(resource, &rl); err != nil {
		return nil, fmt.Errorf("strada/posix: getrlimit: %w", err)
	}
	h := value.NewHash()
	h.Hash().Set("cur", value.NewInt(clampRlim(rl.Cur)))
	h.Hash().Set("max", value.NewInt(clampRlim(rl.Max)))
	return h, nil
}

// Setrlimit exchanges {cur, max} for resource.
func Setrlimit(resource int, limits *value.Value) error {
	d := limits.Hash()
	if d == nil {
		return fmt.Errorf("strada/posix: setrlimit: expected a Hash with cur/max")
	}
	rl := unix.Rlimit{
		Cur: unclampRlim(value.CoerceInt(d.Get("cur"))),
		Max: unclampRlim(value.CoerceInt(d.Get("max"))),
	}
	if err := unix.Setrlimit(resource, &rl); err != nil {
		return fmt.Errorf("strada/posix: setrlimit: %w", err)
	}
	return nil
}

func clampRlim(v uint64) int64 {
	if v == unix.RLIM_INFINITY {
		return rlimitInfinity
	}
	return int64(v)
}

func unclampRlim(v int64) uint64 {
	if v == rlimitInfinity {
		return unix.RLIM_INFINITY
	}
	return uint64(v)
}

// Getrusage wraps unix.Getrusage(RUSAGE_SELF), returning {utime_sec,
// utime_usec, stime_sec, stime_usec, maxrss, minflt, majflt, nvcsw,
// nivcsw} per spec.md §4.12.
func Getrusage() (*value.Value, error) {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return nil, fmt.Errorf("strada/posix: getrusage: %w", err)
	}
	h := value.NewHash()
	d := h.Hash()
	d.Set("utime_sec", value.NewInt(int64(ru.Utime.Sec)))
	d.Set("utime_usec", value.NewInt(int64(ru.Utime.Usec)))
	d.Set("stime_sec", value.NewInt(int64(ru.Stime.Sec)))
	d.Set("stime_usec", value.NewInt(int64(ru.Stime.Usec)))
	d.Set("maxrss", value.NewInt(int64(ru.Maxrss)))
	d.Set("minflt", value.NewInt(int64(ru.Minflt)))
	d.Set("majflt", value.NewInt(int64(ru.Majflt)))
	d.Set("nvcsw", value.NewInt(int64(ru.Nvcsw)))
	d.Set("nivcsw", value.NewInt(int64(ru.Nivcsw)))
	return h, nil
}
