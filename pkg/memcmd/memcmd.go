// Copyright 2024 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package memcmd adapts the memutil helpers to shell commands.
package memcmd

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/u-root/memtool/pkg/logger"
	"github.com/u-root/memtool/pkg/mem"
	"github.com/u-root/memtool/pkg/memutil"
	"github.com/u-root/memtool/pkg/shell"
)

var log = logger.LogContainer.GetSimpleLogger()

// Row width used by dump_hex
const DumpWidth = 16

var ErrTooLarge = errors.New("range does not fit in the address space")

const (
	dumpHexUsage = "Usage: dump_hex <address> <size>\r\n"
	memfillUsage = "Usage: memfill <address> <value> <num> <byte-width>\r\n"
)

// Register adds dump_hex and memfill, operating on s, to r.
func Register(r *shell.Registry, s mem.Space) error {
	for _, c := range []shell.Command{
		{Name: "dump_hex", Help: "Dump memory in hex", Func: DumpHex(s)},
		{Name: "memfill", Help: "Fill memory", Func: MemFill(s)},
	} {
		if err := r.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// DumpHex returns the dump_hex command: dump_hex <address> <size>
func DumpHex(s mem.Space) shell.Func {
	return func(w io.Writer, argv []string) int {
		if len(argv) != 3 {
			fmt.Fprint(w, dumpHexUsage)
			return -1
		}
		addr := uintptr(ParseUint(argv[1], 0))
		size := uint32(ParseUint(argv[2], 10))
		if uint64(size) > math.MaxInt {
			return mapFailed(w, argv[0], fmt.Errorf("%w: %d bytes", ErrTooLarge, size))
		}

		r, err := s.Map(addr, int(size))
		if err != nil {
			return mapFailed(w, argv[0], err)
		}
		defer r.Close()
		memutil.Dump(w, addr, r.Bytes(), DumpWidth)
		return 0
	}
}

// MemFill returns the memfill command: memfill <address> <value> <num> <byte-width>
func MemFill(s mem.Space) shell.Func {
	return func(w io.Writer, argv []string) int {
		if len(argv) != 5 {
			fmt.Fprint(w, memfillUsage)
			return -1
		}
		addr := uintptr(ParseUint(argv[1], 0))
		value := ParseUint(argv[2], 0)
		num := ParseUint(argv[3], 0)
		size := ParseUint(argv[4], 0)
		n, ok := regionSize(num, size)
		if !ok {
			return mapFailed(w, argv[0], fmt.Errorf("%w: %d x %d bytes", ErrTooLarge, num, size))
		}

		r, err := s.Map(addr, n)
		if err != nil {
			return mapFailed(w, argv[0], err)
		}
		defer r.Close()
		// A factor past MaxInt only gets here when the other is 0; Fill then
		// writes nothing
		memutil.Fill(r.Bytes(), value, int(num), int(size))
		log.Debugw("Filled memory", "addr", fmt.Sprintf("%#x", addr), "value", fmt.Sprintf("%#x", value), "num", num, "size", size)
		return 0
	}
}

// regionSize returns num*size if it fits in an int.
func regionSize(num, size uint64) (int, bool) {
	if num != 0 && size > math.MaxInt/num {
		return 0, false
	}
	return int(num * size), true
}

func mapFailed(w io.Writer, cmd string, err error) int {
	log.Errorf("%s: %v", cmd, err)
	fmt.Fprintf(w, "%s: %v\r\n", cmd, err)
	return -1
}
