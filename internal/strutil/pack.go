// Copyright 2026 The Strada Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package strutil

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strconv"

	"strada-lang/runtime/internal/value"
)

// codeSpec describes one parsed pack/unpack format item: a code letter
// plus an optional repeat count (e.g. "a10" packs/unpacks a 10-byte
// field). A bare code with no digits following it has count 1, except
// for a/A/H where a missing count historically means "as much as
// available" — here it is treated as count 1 for pack (one byte/nibble)
// to keep the contract total and unsurprising; callers needing a
// variable-width field must supply an explicit count.
type codeSpec struct {
	code  byte
	count int
}

func parseFormat(format string) ([]codeSpec, error) {
	var specs []codeSpec
	i := 0
	for i < len(format) {
		c := format[i]
		i++
		if c == ' ' || c == '\t' || c == '\n' {
			continue
		}
		start := i
		for i < len(format) && format[i] >= '0' && format[i] <= '9' {
			i++
		}
		count := 1
		if i > start {
			n, err := strconv.Atoi(format[start:i])
			if err != nil {
				return nil, fmt.Errorf("strutil: bad repeat count in format %q", format)
			}
			count = n
		}
		specs = append(specs, codeSpec{code: c, count: count})
	}
	return specs, nil
}

// Pack serializes the given values according to format, per the code
// table in spec.md §4.4. Overflowing a signed value into an unsigned
// narrow code (or vice versa) truncates via ordinary two's-complement
// wraparound, matching the documented source behavior for this open
// question (spec.md §9).
func Pack(format string, args []*value.Value) ([]byte, error) {
	specs, err := parseFormat(format)
	if err != nil {
		return nil, err
	}
	var out []byte
	argi := 0
	next := func() *value.Value {
		if argi >= len(args) {
			return value.NewUndef()
		}
		v := args[argi]
		argi++
		return v
	}

	for _, s := range specs {
		switch s.code {
		case 'c', 'C':
			for n := 0; n < s.count; n++ {
				out = append(out, byte(value.CoerceInt(next())))
			}
		case 's', 'S':
			for n := 0; n < s.count; n++ {
				buf := make([]byte, 2)
				nativeEndian.PutUint16(buf, uint16(value.CoerceInt(next())))
				out = append(out, buf...)
			}
		case 'n':
			for n := 0; n < s.count; n++ {
				buf := make([]byte, 2)
				binary.BigEndian.PutUint16(buf, uint16(value.CoerceInt(next())))
				out = append(out, buf...)
			}
		case 'v':
			for n := 0; n < s.count; n++ {
				buf := make([]byte, 2)
				binary.LittleEndian.PutUint16(buf, uint16(value.CoerceInt(next())))
				out = append(out, buf...)
			}
		case 'l', 'L':
			for n := 0; n < s.count; n++ {
				buf := make([]byte, 4)
				nativeEndian.PutUint32(buf, uint32(value.CoerceInt(next())))
				out = append(out, buf...)
			}
		case 'N':
			for n := 0; n < s.count; n++ {
				buf := make([]byte, 4)
				binary.BigEndian.PutUint32(buf, uint32(value.CoerceInt(next())))
				out = append(out, buf...)
			}
		case 'V':
			for n := 0; n < s.count; n++ {
				buf := make([]byte, 4)
				binary.LittleEndian.PutUint32(buf, uint32(value.CoerceInt(next())))
				out = append(out, buf...)
			}
		case 'q', 'Q':
			for n := 0; n < s.count; n++ {
				buf := make([]byte, 8)
				nativeEndian.PutUint64(buf, uint64(value.CoerceInt(next())))
				out = append(out, buf...)
			}
		case 'a':
			out = append(out, packFixedASCII(value.CoerceStr(next()), s.count, 0x00)...)
		case 'A':
			out = append(out, packFixedASCII(value.CoerceStr(next()), s.count, ' ')...)
		case 'H':
			out = append(out, packHex(value.CoerceStr(next()), s.count)...)
		case 'x':
			for n := 0; n < s.count; n++ {
				out = append(out, 0)
			}
		case 'X':
			for n := 0; n < s.count; n++ {
				if len(out) > 0 {
					out = out[:len(out)-1]
				}
			}
		default:
			return nil, fmt.Errorf("strutil: unknown pack code %q", s.code)
		}
	}
	return out, nil
}

func packFixedASCII(s string, width int, pad byte) []byte {
	b := []byte(s)
	if len(b) >= width {
		return b[:width]
	}
	out := make([]byte, width)
	copy(out, b)
	for i := len(b); i < width; i++ {
		out[i] = pad
	}
	return out
}

func packHex(s string, nibbles int) []byte {
	padded := s
	if len(padded) < nibbles {
		pad := make([]byte, nibbles-len(padded))
		for i := range pad {
			pad[i] = '0'
		}
		padded += string(pad)
	}
	if len(padded) > nibbles {
		padded = padded[:nibbles]
	}
	if len(padded)%2 != 0 {
		padded += "0"
	}
	decoded, err := hex.DecodeString(padded)
	if err != nil {
		// non-hex input: best-effort, drop invalid chars to 0
		clean := make([]byte, len(padded))
		for i := 0; i < len(padded); i++ {
			if isHexDigit(padded[i]) {
				clean[i] = padded[i]
			} else {
				clean[i] = '0'
			}
		}
		decoded, _ = hex.DecodeString(string(clean))
	}
	return decoded
}

func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

// Unpack deserializes buf according to format, returning one Value per
// field occurrence (each repeat count within a code produces that many
// Values, matching Pack's argument consumption one-for-one).
func Unpack(format string, buf []byte) ([]*value.Value, error) {
	specs, err := parseFormat(format)
	if err != nil {
		return nil, err
	}
	var out []*value.Value
	pos := 0
	take := func(n int) []byte {
		if pos+n > len(buf) {
			n = len(buf) - pos
			if n < 0 {
				n = 0
			}
		}
		b := buf[pos : pos+n]
		pos += n
		return b
	}

	for _, s := range specs {
		switch s.code {
		case 'c':
			for n := 0; n < s.count; n++ {
				b := take(1)
				if len(b) == 1 {
					out = append(out, value.NewInt(int64(int8(b[0]))))
				} else {
					out = append(out, value.NewInt(0))
				}
			}
		case 'C':
			for n := 0; n < s.count; n++ {
				b := take(1)
				if len(b) == 1 {
					out = append(out, value.NewInt(int64(b[0])))
				} else {
					out = append(out, value.NewInt(0))
				}
			}
		case 's':
			for n := 0; n < s.count; n++ {
				b := take(2)
				out = append(out, value.NewInt(int64(int16(readU16(b, nativeEndian)))))
			}
		case 'S':
			for n := 0; n < s.count; n++ {
				b := take(2)
				out = append(out, value.NewInt(int64(readU16(b, nativeEndian))))
			}
		case 'n':
			for n := 0; n < s.count; n++ {
				b := take(2)
				out = append(out, value.NewInt(int64(readU16(b, binary.BigEndian))))
			}
		case 'v':
			for n := 0; n < s.count; n++ {
				b := take(2)
				out = append(out, value.NewInt(int64(readU16(b, binary.LittleEndian))))
			}
		case 'l':
			for n := 0; n < s.count; n++ {
				b := take(4)
				out = append(out, value.NewInt(int64(int32(readU32(b, nativeEndian)))))
			}
		case 'L':
			for n := 0; n < s.count; n++ {
				b := take(4)
				out = append(out, value.NewInt(int64(readU32(b, nativeEndian))))
			}
		case 'N':
			for n := 0; n < s.count; n++ {
				b := take(4)
				out = append(out, value.NewInt(int64(readU32(b, binary.BigEndian))))
			}
		case 'V':
			for n := 0; n < s.count; n++ {
				b := take(4)
				out = append(out, value.NewInt(int64(readU32(b, binary.LittleEndian))))
			}
		case 'q':
			for n := 0; n < s.count; n++ {
				b := take(8)
				out = append(out, value.NewInt(int64(readU64(b, nativeEndian))))
			}
		case 'Q':
			for n := 0; n < s.count; n++ {
				b := take(8)
				out = append(out, value.NewInt(int64(readU64(b, nativeEndian))))
			}
		case 'a':
			b := take(s.count)
			out = append(out, value.NewStr(trimTrailing(b, 0x00)))
		case 'A':
			b := take(s.count)
			out = append(out, value.NewStr(trimTrailing(b, ' ')))
		case 'H':
			nbytes := (s.count + 1) / 2
			b := take(nbytes)
			enc := hex.EncodeToString(b)
			if len(enc) > s.count {
				enc = enc[:s.count]
			}
			out = append(out, value.NewStr([]byte(enc)))
		case 'x':
			take(s.count)
		case 'X':
			if pos >= s.count {
				pos -= s.count
			} else {
				pos = 0
			}
		default:
			return nil, fmt.Errorf("strutil: unknown unpack code %q", s.code)
		}
	}
	return out, nil
}

func trimTrailing(b []byte, pad byte) []byte {
	end := len(b)
	for end > 0 && b[end-1] == pad {
		end--
	}
	out := make([]byte, end)
	copy(out, b[:end])
	return out
}

// nativeEndian is the host's byte order, used for the pack codes
// spec.md §4.4 marks "native" (c/C, s/S, l/L, q/Q) — unlike n/v/N/V,
// whose endianness is fixed per-code regardless of host.
var nativeEndian = binary.NativeEndian

func readU16(b []byte, order binary.ByteOrder) uint16 {
	if len(b) < 2 {
		padded := make([]byte, 2)
		copy(padded, b)
		b = padded
	}
	return order.Uint16(b)
}

func readU32(b []byte, order binary.ByteOrder) uint32 {
	if len(b) < 4 {
		padded := make([]byte, 4)
		copy(padded, b)
		b = padded
	}
	return order.Uint32(b)
}

func readU64(b []byte, order binary.ByteOrder) uint64 {
	if len(b) < 8 {
		padded := make([]byte, 8)
		copy(padded, b)
		b = padded
	}
	return order.Uint64(b)
}
