// Copyright 2024 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shell

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
)

const DefaultPrompt = "memsh:/$ "

type Shell struct {
	Registry *Registry
	Prompt   string
}

func New(r *Registry) *Shell {
	return &Shell{Registry: r, Prompt: DefaultPrompt}
}

// scanCommandLines splits on CR, LF or CRLF. Serial terminals usually only
// send CR on enter.
func scanCommandLines() bufio.SplitFunc {
	var prevCR bool
	return func(data []byte, atEOF bool) (int, []byte, error) {
		if prevCR && len(data) > 0 && data[0] == '\n' {
			prevCR = false
			return 1, nil, nil
		}
		if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
			prevCR = data[i] == '\r'
			return i + 1, data[:i], nil
		}
		prevCR = false
		if atEOF && len(data) > 0 {
			return len(data), data, nil
		}
		return 0, nil, nil
	}
}

// Run serves the shell on rw until EOF, a read error or ctx is done. EOF is
// not an error.
func (s *Shell) Run(ctx context.Context, rw io.ReadWriter) error {
	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		sc := bufio.NewScanner(rw)
		sc.Split(scanCommandLines())
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		errc <- sc.Err()
	}()

	for {
		fmt.Fprint(rw, s.Prompt)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-errc:
			if err != nil {
				return fmt.Errorf("console read: %w", err)
			}
			log.Debug("Console closed")
			return nil
		case line := <-lines:
			s.Registry.Exec(rw, line)
		}
	}
}
