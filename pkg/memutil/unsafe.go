// Copyright 2024 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package memutil

import (
	"unsafe"
)

// UnsafeBytes returns a slice aliasing n bytes of memory at addr.
//
// Nothing is validated. The memory must stay valid (and, for writes,
// writable) for as long as the slice is used, and the garbage collector
// knows nothing about it.
func UnsafeBytes(addr uintptr, n int) []byte {
	if n <= 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), n)
}

// AddressOf returns the address of the first byte of b, or 0 if b is empty.
func AddressOf(b []byte) uintptr {
	if len(b) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(&b[0]))
}
