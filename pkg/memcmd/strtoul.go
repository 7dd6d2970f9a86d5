// Copyright 2024 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package memcmd

import (
	"math"
	"strings"
)

// ParseUint parses s the way C strtoull does: leading whitespace and a sign
// are skipped, base 0 picks hex for 0x, octal for a leading 0 and decimal
// otherwise, and parsing stops at the first invalid digit. No digits gives
// 0 and overflow saturates. A minus sign negates the result modulo 2^64.
func ParseUint(s string, base int) uint64 {
	s = strings.TrimLeft(s, " \t\n\v\f\r")
	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}

	hasHexPrefix := len(s) > 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') && digitVal(s[2]) < 16
	switch {
	case (base == 0 || base == 16) && hasHexPrefix:
		base = 16
		s = s[2:]
	case base == 0 && len(s) > 1 && s[0] == '0':
		base = 8
	case base == 0:
		base = 10
	}
	if base < 2 || base > 36 {
		return 0
	}

	var v uint64
	overflow := false
	for i := 0; i < len(s); i++ {
		d := digitVal(s[i])
		if d >= base {
			break
		}
		if v > (math.MaxUint64-uint64(d))/uint64(base) {
			overflow = true
			continue
		}
		v = v*uint64(base) + uint64(d)
	}
	if overflow {
		return math.MaxUint64
	}
	if neg {
		return -v
	}
	return v
}

func digitVal(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10
	}
	return math.MaxInt32
}
