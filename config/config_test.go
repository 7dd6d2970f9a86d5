// Copyright 2019 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"errors"
	"testing"

	"github.com/u-root/memtool/pkg/mem"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig.Validate(); err != nil {
		t.Fatalf("DefaultConfig is invalid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	for _, tt := range []struct {
		name   string
		modify func(c *Config)
		ok     bool
	}{
		{"process", func(c *Config) { c.Memory.Space = mem.KindProcess }, true},
		{"arena", func(c *Config) { c.Memory.Space = mem.KindArena }, true},
		{"empty arena", func(c *Config) { c.Memory.Space = mem.KindArena; c.Memory.ArenaSize = 0 }, false},
		{"largest arena", func(c *Config) { c.Memory.Space = mem.KindArena; c.Memory.ArenaSize = mem.MaxArenaSize }, true},
		{"oversized arena", func(c *Config) { c.Memory.Space = mem.KindArena; c.Memory.ArenaSize = mem.MaxArenaSize + 1 }, false},
		{"no device", func(c *Config) { c.Memory.Device = "" }, false},
		{"unknown space", func(c *Config) { c.Memory.Space = "flash" }, false},
		{"uart", func(c *Config) { c.Console.Uart = "/dev/ttyS4" }, true},
		{"uart without baud", func(c *Config) { c.Console.Uart = "/dev/ttyS4"; c.Console.Baud = 0 }, false},
	} {
		c := *DefaultConfig
		tt.modify(&c)
		err := c.Validate()
		if tt.ok && err != nil {
			t.Errorf("%s: unexpected error %v", tt.name, err)
		}
		if !tt.ok && err == nil {
			t.Errorf("%s: expected an error", tt.name)
		}
	}

	c := *DefaultConfig
	c.Memory.Space = "flash"
	if err := c.Validate(); !errors.Is(err, mem.ErrUnknownKind) {
		t.Errorf("unknown space: got %v, want ErrUnknownKind", err)
	}
}
