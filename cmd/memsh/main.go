// Copyright 2024 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// memsh is a debug shell for peeking and poking memory on the BMC.
//
//	memsh:/$ dump_hex 0x1e6e207c 4
//	memsh:/$ memfill 0x1e6e2040 0 2 4
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"
	"github.com/u-root/memtool/config"
	"github.com/u-root/memtool/pkg/console"
	"github.com/u-root/memtool/pkg/logger"
	"github.com/u-root/memtool/pkg/mem"
	"github.com/u-root/memtool/pkg/memcmd"
	"github.com/u-root/memtool/pkg/metric"
	"github.com/u-root/memtool/pkg/shell"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"
)

var (
	log = logger.LogContainer.GetSimpleLogger()
	c   = config.DefaultConfig

	space     = flag.String("space", c.Memory.Space, "Memory space to operate on: physical, process or arena")
	device    = flag.String("mem", c.Memory.Device, "Memory device for the physical space")
	arenaBase = flag.Uint64("arena-base", c.Memory.ArenaBase, "Base address of the simulated RAM arena")
	arenaSize = flag.Int("arena-size", c.Memory.ArenaSize, "Size in bytes of the simulated RAM arena")
	uart      = flag.String("uart", c.Console.Uart, "Serve the shell on this UART instead of stdio")
	baud      = flag.Int("baud", c.Console.Baud, "UART baud rate")
	prompt    = flag.String("prompt", c.Console.Prompt, "Shell prompt")
	script    = flag.String("script", c.Script, "Run the commands in this file before going interactive")
	metrics   = flag.String("metrics", c.MetricsAddress, "Serve Prometheus metrics on this address")
	logFile   = flag.String("log", c.LogFile, "Also write JSON logs to this file")
	debug     = flag.Bool("debug", c.Debug, "Enable debug logging")
	version   = flag.Bool("version", false, "Print the version and exit")
)

func main() {
	flag.Parse()

	if *version {
		fmt.Printf("memsh %s %s\n", c.Version.Version, c.Version.GitHash)
		return
	}

	if err := run(); err != nil && err != context.Canceled {
		log.Fatal(err)
	}
}

func run() error {
	c.Memory = config.Memory{Space: *space, Device: *device, ArenaBase: *arenaBase, ArenaSize: *arenaSize}
	c.Console = config.Console{Uart: *uart, Baud: *baud, Prompt: *prompt}
	c.Script = *script
	c.MetricsAddress = *metrics
	c.LogFile = *logFile
	c.Debug = *debug
	if err := c.Validate(); err != nil {
		return err
	}

	level := zapcore.InfoLevel
	if c.Debug {
		level = zapcore.DebugLevel
	}
	if err := logger.LogContainer.Configure(level, c.LogFile); err != nil {
		return fmt.Errorf("configure logging: %w", err)
	}
	defer log.Sync()

	s, err := mem.Open(c.Memory.Space, c.Memory.Device, uintptr(c.Memory.ArenaBase), c.Memory.ArenaSize)
	if err != nil {
		return err
	}
	defer s.Close()

	r := shell.NewRegistry()
	if err := memcmd.Register(r, s); err != nil {
		return err
	}

	if c.MetricsAddress != "" {
		l, err := metric.Start(c.MetricsAddress)
		if err != nil {
			return err
		}
		defer l.Close()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if c.Script != "" {
		if err := r.RunScript(ctx, afero.NewOsFs(), c.Script, os.Stdout); err != nil {
			return err
		}
	}

	sh := shell.New(r)
	sh.Prompt = c.Console.Prompt

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sig)
		select {
		case sg := <-sig:
			log.Infof("Got %v, exiting", sg)
			cancel()
			return context.Canceled
		case <-ctx.Done():
			return nil
		}
	})
	g.Go(func() error {
		// Returning ends the signal watcher too
		defer cancel()
		if c.Console.Uart == "" {
			return sh.Run(ctx, console.Stdio())
		}
		k := &console.Keepalive{
			Open: func() (io.ReadWriteCloser, error) {
				return console.Open(c.Console.Uart, c.Console.Baud)
			},
			Serve: sh.Run,
		}
		return k.Run(ctx)
	})
	return g.Wait()
}
