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
	"strings"

	"github.com/spf13/afero"
)

// RunScript executes the commands in path, one per line. Blank lines and
// lines starting with # are skipped. The script stops at the first command
// that does not exit with 0.
func (r *Registry) RunScript(ctx context.Context, fs afero.Fs, path string, w io.Writer) error {
	b, err := afero.ReadFile(fs, path)
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	sc := bufio.NewScanner(bytes.NewReader(b))
	sc.Split(scanCommandLines())
	for n := 1; sc.Scan(); n++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		log.Infof("%s:%d: %s", path, n, line)
		if ret := r.Exec(w, line); ret != 0 {
			return fmt.Errorf("%s:%d: %q exited with %d", path, n, line, ret)
		}
	}
	return sc.Err()
}
