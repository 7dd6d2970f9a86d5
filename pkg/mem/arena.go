// Copyright 2024 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mem

import (
	"fmt"

	"github.com/u-root/memtool/pkg/memutil"
)

// Arena is a simulated RAM window. It behaves like a board's SRAM at a fixed
// base address without touching real hardware.
type Arena struct {
	base uintptr
	buf  []byte
}

// MaxArenaSize is the largest arena size that still rounds up to a power of
// two representable in an int on 32-bit targets.
const MaxArenaSize = 1 << 30

// NewArena allocates an arena of at least size bytes at base. The backing
// store is rounded up to a power of two.
func NewArena(base uintptr, size int) (*Arena, error) {
	if size < 0 || size > MaxArenaSize {
		return nil, fmt.Errorf("%w: %d bytes, limit %d", ErrArenaSize, size, MaxArenaSize)
	}
	n := 0
	if size > 0 {
		n = int(memutil.PowerOf2(uint32(size), true))
	}
	return &Arena{base: base, buf: make([]byte, n)}, nil
}

func (a *Arena) Base() uintptr {
	return a.base
}

func (a *Arena) Size() int {
	return len(a.buf)
}

// Bytes gives direct access to the whole arena.
func (a *Arena) Bytes() []byte {
	return a.buf
}

func (a *Arena) Map(addr uintptr, n int) (Region, error) {
	if n <= 0 {
		return sliceRegion(nil), nil
	}
	if addr < a.base || uint64(addr-a.base)+uint64(n) > uint64(len(a.buf)) {
		return nil, fmt.Errorf("%w: %#x+%d not in [%#x, %#x)", ErrOutOfRange, addr, n, a.base, a.base+uintptr(len(a.buf)))
	}
	off := addr - a.base
	return sliceRegion(a.buf[off : off+uintptr(n)]), nil
}

func (a *Arena) Close() error {
	return nil
}
