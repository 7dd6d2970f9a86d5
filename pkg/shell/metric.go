// Copyright 2024 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shell

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	resultOK      = "ok"
	resultError   = "error"
	resultUnknown = "unknown"
)

var (
	commandsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "memtool",
			Subsystem: "shell",
			Name:      "commands_total",
			Help:      "Number of shell commands executed, by command and result.",
		},
		[]string{"command", "result"},
	)
)

func init() {
	prometheus.MustRegister(commandsTotal)
}
