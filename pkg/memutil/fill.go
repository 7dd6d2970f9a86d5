// Copyright 2024 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package memutil

// Fill writes num copies of the low size bytes of value into dst, least
// significant byte first. dst must hold at least num*size bytes.
//
// Bytes past the 8th of a wide element are written as zero.
func Fill(dst []byte, value uint64, num, size int) {
	p := 0
	for ; num > 0; num-- {
		for j := 0; j < size; j++ {
			dst[p] = byte(value >> (uint(j) * 8))
			p++
		}
	}
}

// MemFill is Fill on raw memory starting at addr. The destination is not
// checked. Bytes are written one at a time so num*size is never formed and
// cannot wrap.
func MemFill(addr uintptr, value uint64, num, size uintptr) {
	for ; num > 0; num-- {
		for j := uintptr(0); j < size; j++ {
			UnsafeBytes(addr, 1)[0] = byte(value >> (uint64(j) * 8))
			addr++
		}
	}
}
