// Copyright 2024 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package memutil

// IsPowerOf2 reports whether n is a power of two.
func IsPowerOf2(n uint32) bool {
	return n != 0 && n&(n-1) == 0
}

// PowerOf2 returns the power of two closest to n in the requested direction.
//
// With up set it returns the smallest power of two >= n, otherwise the
// largest power of two < n. Powers of two are returned unchanged either way.
// 0 and 1 map to 1 when rounding up and to 0 when rounding down.
//
// Above 0x80000000 the next power of two does not fit in 32 bits; the
// increment wraps and both directions return 0.
func PowerOf2(n uint32, up bool) uint32 {
	if n <= 1 {
		if up {
			return 1
		}
		return 0
	}
	if IsPowerOf2(n) {
		return n
	}

	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n++

	if up {
		return n
	}
	return n >> 1
}
