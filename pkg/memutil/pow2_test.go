// Copyright 2024 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package memutil

import (
	"testing"
	"testing/quick"
)

func TestPowerOf2(t *testing.T) {
	for _, tt := range []struct {
		n    uint32
		up   uint32
		down uint32
	}{
		{0, 1, 0},
		{1, 1, 0},
		{2, 2, 2},
		{3, 4, 2},
		{5, 8, 4},
		{1023, 1024, 512},
		{1024, 1024, 1024},
		{1025, 2048, 1024},
		{0x7fffffff, 0x80000000, 0x40000000},
		{0x80000000, 0x80000000, 0x80000000},
		// The next power of two does not fit in 32 bits
		{0x80000001, 0, 0},
		{0xffffffff, 0, 0},
	} {
		if got := PowerOf2(tt.n, true); got != tt.up {
			t.Errorf("PowerOf2(%#x, true) = %#x, want %#x", tt.n, got, tt.up)
		}
		if got := PowerOf2(tt.n, false); got != tt.down {
			t.Errorf("PowerOf2(%#x, false) = %#x, want %#x", tt.n, got, tt.down)
		}
	}
}

func TestPowerOf2Up(t *testing.T) {
	f := func(n uint32) bool {
		n %= 0x80000001
		p := PowerOf2(n, true)
		return IsPowerOf2(p) && p >= n
	}
	if err := quick.Check(f, nil); err != nil {
		t.Fatal(err)
	}
}

func TestPowerOf2Down(t *testing.T) {
	f := func(n uint32) bool {
		n %= 0x80000001
		p := PowerOf2(n, false)
		if n <= 1 {
			return p == 0
		}
		return IsPowerOf2(p) && p <= n && (p == n || p > n/2)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Fatal(err)
	}
}

func TestIsPowerOf2(t *testing.T) {
	for n, want := range map[uint32]bool{0: false, 1: true, 2: true, 3: false, 4096: true, 0x80000000: true, 0xffffffff: false} {
		if got := IsPowerOf2(n); got != want {
			t.Errorf("IsPowerOf2(%#x) = %v, want %v", n, got, want)
		}
	}
}
