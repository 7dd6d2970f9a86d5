// Copyright 2024 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shell is a small line oriented debug shell. Commands are kept in
// an explicit Registry that is filled in at startup, and each one is called
// with argv style arguments.
package shell

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/u-root/memtool/pkg/logger"
)

var log = logger.LogContainer.GetSimpleLogger()

var (
	ErrDuplicate = errors.New("command already registered")
	ErrNoName    = errors.New("command has no name")
)

// Func runs a command. argv[0] is the command name. Output goes to w and
// the return value is the exit code, 0 meaning success.
type Func func(w io.Writer, argv []string) int

type Command struct {
	Name string
	Help string
	Func Func
}

type Registry struct {
	cmds map[string]Command
}

// NewRegistry returns a registry holding only the builtin help command.
func NewRegistry() *Registry {
	r := &Registry{cmds: make(map[string]Command)}
	r.MustRegister(Command{Name: "help", Help: "Show command info", Func: r.help})
	return r
}

func (r *Registry) Register(c Command) error {
	if c.Name == "" || c.Func == nil {
		return ErrNoName
	}
	if _, ok := r.cmds[c.Name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicate, c.Name)
	}
	r.cmds[c.Name] = c
	return nil
}

func (r *Registry) MustRegister(c Command) {
	if err := r.Register(c); err != nil {
		panic(err)
	}
}

func (r *Registry) Lookup(name string) (Command, bool) {
	c, ok := r.cmds[name]
	return c, ok
}

// Commands returns all registered commands sorted by name.
func (r *Registry) Commands() []Command {
	cmds := make([]Command, 0, len(r.cmds))
	for _, c := range r.cmds {
		cmds = append(cmds, c)
	}
	sort.Slice(cmds, func(i, j int) bool { return cmds[i].Name < cmds[j].Name })
	return cmds
}

// Exec parses line and runs the matching command.
func (r *Registry) Exec(w io.Writer, line string) int {
	argv, err := Split(line)
	if err != nil {
		fmt.Fprintf(w, "%v\r\n", err)
		return -1
	}
	if len(argv) == 0 {
		return 0
	}
	c, ok := r.cmds[argv[0]]
	if !ok {
		commandsTotal.WithLabelValues("", resultUnknown).Inc()
		fmt.Fprint(w, "Command not Found\r\n")
		return -1
	}

	ret := c.Func(w, argv)
	result := resultOK
	if ret != 0 {
		result = resultError
	}
	commandsTotal.WithLabelValues(c.Name, result).Inc()
	log.Debugw("Command finished", "argv", argv, "ret", ret)
	return ret
}

func (r *Registry) help(w io.Writer, argv []string) int {
	if len(argv) > 1 {
		c, ok := r.cmds[argv[1]]
		if !ok {
			fmt.Fprint(w, "Command not Found\r\n")
			return -1
		}
		fmt.Fprintf(w, "%s: %s\r\n", c.Name, c.Help)
		return 0
	}
	fmt.Fprint(w, "Command List:\r\n")
	for _, c := range r.Commands() {
		fmt.Fprintf(w, "%-20s %s\r\n", c.Name, c.Help)
	}
	return 0
}
