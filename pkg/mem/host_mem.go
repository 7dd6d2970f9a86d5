// Copyright 2024 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mem

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

type hostMem struct {
	mf *os.File
}

// OpenPhysical opens a memory device such as /dev/mem. Any file that
// supports shared mmap works, which is what the tests rely on.
func OpenPhysical(path string) (Space, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_SYNC, 0600)
	if err != nil {
		return nil, fmt.Errorf("open memory device: %w", err)
	}
	log.Debugf("Opened physical memory at %s", path)
	return &hostMem{f}, nil
}

type hostRegion struct {
	mapping []byte
	data    []byte
}

func (r *hostRegion) Bytes() []byte {
	return r.data
}

func (r *hostRegion) Close() error {
	if r.mapping == nil {
		return nil
	}
	err := unix.Munmap(r.mapping)
	r.mapping, r.data = nil, nil
	return err
}

// Map maps the pages covering [addr, addr+n). Every call creates a new
// mapping, which is fine for the amount of data pushed through a debug
// shell.
func (m *hostMem) Map(address uintptr, n int) (Region, error) {
	if n <= 0 {
		return sliceRegion(nil), nil
	}
	ps := uintptr(unix.Getpagesize())
	page := address & ^(ps - 1)
	offset := int(address - page)
	length := offset + n

	mapping, err := unix.Mmap(int(m.mf.Fd()), int64(page), length, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("mmap %#x+%d: %w", address, n, err)
	}
	return &hostRegion{mapping: mapping, data: mapping[offset : offset+n]}, nil
}

func (m *hostMem) Close() error {
	return m.mf.Close()
}
