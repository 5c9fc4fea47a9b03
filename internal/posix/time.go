// Copyright 2026 The Strada Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package posix

import (
	"time"

	"golang.org/x/sys/unix"

	"strada-lang/runtime/internal/value"
)

// Gettimeofday wraps unix.Gettimeofday, returning {sec, usec} per spec.md
// §4.12.
func Gettimeofday() (*value.Value, error) {
	var tv unix.Timeval
	if err := unix.Gettimeofday(&tv); err != nil {
		return nil, err
	}
	h := value.NewHash()
	h.Hash().Set("sec", value.NewInt(int64(tv.Sec)))
	h.Hash().Set("usec", value.NewInt(int64(tv.Usec)))
	return h, nil
}

// Localtime and Gmtime both return {sec, min, hour, mday, mon, year,
// wday, yday, isdst}, broken down in local and UTC time respectively,
// per spec.md §4.12. year follows the source convention of "years since
// 1900" and mon is zero-based, matching struct tm exactly (not the
// calendar-natural 1-based month), since scripts ported against the
// original runtime will already expect that offset.
func Localtime(sec int64) *value.Value {
	return breakDownTime(time.Unix(sec, 0).Local())
}

func Gmtime(sec int64) *value.Value {
	return breakDownTime(time.Unix(sec, 0).UTC())
}

func breakDownTime(t time.Time) *value.Value {
	h := value.NewHash()
	d := h.Hash()
	d.Set("sec", value.NewInt(int64(t.Second())))
	d.Set("min", value.NewInt(int64(t.Minute())))
	d.Set("hour", value.NewInt(int64(t.Hour())))
	d.Set("mday", value.NewInt(int64(t.Day())))
	d.Set("mon", value.NewInt(int64(t.Month())-1))
	d.Set("year", value.NewInt(int64(t.Year())-1900))
	d.Set("wday", value.NewInt(int64(t.Weekday())))
	d.Set("yday", value.NewInt(int64(t.YearDay())-1))
	d.Set("isdst", value.NewInt(int64(dstFlag(t))))
	return h
}

// dstFlag approximates struct tm's tm_isdst: Go's time package exposes no
// direct "is this instant in daylight time" query, so this compares t's
// UTC offset against the offset six months away in the same location —
// whichever of the two is smaller is standard time, and t is in DST iff
// its own offset is the larger one. UTC (zero offset year-round) always
// reports 0, matching struct tm's "not applicable" convention for Gmtime.
func dstFlag(t time.Time) int {
	_, off := t.Zone()
	_, offOppositeSeason := t.AddDate(0, 6, 0).Zone()
	if off == offOppositeSeason {
		return 0
	}
	if off > offOppositeSeason {
		return 1
	}
	return 0
}
