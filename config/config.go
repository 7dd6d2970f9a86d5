// Copyright 2024 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"fmt"

	"github.com/u-root/memtool/pkg/mem"
)

// Set at link time with -X
var (
	gitVersion = "dev"
	gitHash    = ""
)

type Version struct {
	Version string
	GitHash string
}

type Memory struct {
	// One of mem.KindPhysical, mem.KindProcess or mem.KindArena
	Space     string
	Device    string
	ArenaBase uint64
	ArenaSize int
}

type Console struct {
	// Empty means stdio
	Uart   string
	Baud   int
	Prompt string
}

type Config struct {
	Memory  Memory
	Console Console
	// Commands to run before the interactive shell starts
	Script string
	// Address to serve Prometheus metrics on, empty to disable
	MetricsAddress string
	LogFile        string
	Debug          bool
	Version        Version
}

var DefaultConfig = &Config{
	// On the BMC the registers worth poking at live in physical memory.
	Memory: Memory{
		Space:     mem.KindPhysical,
		Device:    "/dev/mem",
		ArenaBase: 0x20000000,
		ArenaSize: 64 * 1024,
	},

	// The AST2500 debug UART runs at 115200 8N1.
	Console: Console{
		Baud:   115200,
		Prompt: "memsh:/$ ",
	},

	Version: Version{
		Version: gitVersion,
		GitHash: gitHash,
	},
}

// Validate checks the settings that cannot be caught when they are used.
func (c *Config) Validate() error {
	switch c.Memory.Space {
	case mem.KindPhysical:
		if c.Memory.Device == "" {
			return fmt.Errorf("physical memory space needs a device")
		}
	case mem.KindProcess:
	case mem.KindArena:
		if c.Memory.ArenaSize <= 0 || c.Memory.ArenaSize > mem.MaxArenaSize {
			return fmt.Errorf("arena size must be in (0, %d], got %d", mem.MaxArenaSize, c.Memory.ArenaSize)
		}
		if c.Memory.ArenaBase > uint64(^uintptr(0)) {
			return fmt.Errorf("arena base %#x does not fit in an address", c.Memory.ArenaBase)
		}
	default:
		return fmt.Errorf("%w: %q", mem.ErrUnknownKind, c.Memory.Space)
	}
	if c.Console.Uart != "" && c.Console.Baud <= 0 {
		return fmt.Errorf("invalid baud rate %d", c.Console.Baud)
	}
	return nil
}
