// Copyright 2024 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package console provides the byte stream the debug shell talks over:
// stdio, or a UART on the BMC.
package console

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jpillora/backoff"
	"github.com/tarm/serial"
	"github.com/u-root/memtool/pkg/logger"
)

var log = logger.LogContainer.GetSimpleLogger()

type stdio struct {
	io.Reader
	io.Writer
}

func (stdio) Close() error {
	return nil
}

// Stdio returns a console on the process' stdin and stdout.
func Stdio() io.ReadWriteCloser {
	return stdio{os.Stdin, os.Stdout}
}

// Open returns the UART at path, or stdio when path is empty.
func Open(path string, baud int) (io.ReadWriteCloser, error) {
	if path == "" {
		return Stdio(), nil
	}
	c := &serial.Config{Name: path, Baud: baud}
	s, err := serial.OpenPort(c)
	if err != nil {
		return nil, fmt.Errorf("serial.OpenPort: %w", err)
	}
	log.Infof("Opened UART %s at %d baud", path, baud)
	return s, nil
}

// Keepalive opens a console and serves it, again and again. A UART can
// disappear under us (USB serial, driver reload), so failures to open or to
// serve are retried with backoff. It returns when ctx is done or when
// serve returns nil.
type Keepalive struct {
	Open  func() (io.ReadWriteCloser, error)
	Serve func(ctx context.Context, rw io.ReadWriter) error

	// Zero values use the defaults of the backoff package
	MinDelay time.Duration
	MaxDelay time.Duration

	after func(time.Duration) <-chan time.Time
}

func (k *Keepalive) Run(ctx context.Context) error {
	b := &backoff.Backoff{Min: k.MinDelay, Max: k.MaxDelay, Factor: 2, Jitter: true}
	after := k.after
	if after == nil {
		after = time.After
	}
	for {
		opened, err := k.once(ctx)
		if err == nil {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		// A console that opened was healthy; only back off on repeated
		// failures since then
		if opened {
			b.Reset()
		}
		d := b.Duration()
		log.Warnf("Console failed, retrying in %v: %v", d, err)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-after(d):
		}
	}
}

func (k *Keepalive) once(ctx context.Context) (bool, error) {
	c, err := k.Open()
	if err != nil {
		return false, err
	}
	defer c.Close()
	return true, k.Serve(ctx, c)
}
