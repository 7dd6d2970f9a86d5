// Copyright 2024 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mem resolves the bare addresses typed into the debug shell to
// something that can be read and written.
//
// On the BMC the interesting addresses are physical (SCU, GPIO, flash
// controllers) and are reached through /dev/mem. When debugging the tool
// itself, the process' own address space or a simulated RAM arena is used
// instead.
package mem

import (
	"errors"
	"fmt"

	"github.com/u-root/memtool/pkg/logger"
)

var log = logger.LogContainer.GetSimpleLogger()

var (
	ErrOutOfRange  = errors.New("address range outside of memory space")
	ErrUnknownKind = errors.New("unknown memory space")
	ErrArenaSize   = errors.New("invalid arena size")
)

// Region is a window of memory obtained from a Space. The slice is only
// valid until Close is called.
type Region interface {
	Bytes() []byte
	Close() error
}

// Space maps address ranges into the process.
type Space interface {
	Map(addr uintptr, n int) (Region, error)
	Close() error
}

// Kinds accepted by Open
const (
	KindPhysical = "physical"
	KindProcess  = "process"
	KindArena    = "arena"
)

// Open creates a Space of the given kind. path is used by physical spaces,
// base and size by arenas.
func Open(kind, path string, base uintptr, size int) (Space, error) {
	switch kind {
	case KindPhysical:
		return OpenPhysical(path)
	case KindProcess:
		return Process(), nil
	case KindArena:
		return NewArena(base, size)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
}

// sliceRegion is a Region that needs no cleanup.
type sliceRegion []byte

func (r sliceRegion) Bytes() []byte {
	return r
}

func (r sliceRegion) Close() error {
	return nil
}
