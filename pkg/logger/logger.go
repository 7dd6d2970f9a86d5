// Copyright 2021 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logger

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	LogContainer logContainer
)

// The shell owns stdout, so console logging goes to stderr
type logContainer struct {
	mu      sync.Mutex
	level   zap.AtomicLevel
	logFile string
	file    *os.File
	logger  *zap.Logger
	sugared *zap.SugaredLogger
}

func init() {
	LogContainer.level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
}

// Configure sets the level and an optional JSON log file. It rebuilds the
// cores, so loggers handed out earlier pick up the change.
func (l *logContainer) Configure(level zapcore.Level, logFile string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	// Build the stdio-only logger before the new file setting is visible
	l.root().Sync()
	l.level.SetLevel(level)
	l.logFile = logFile
	core, f, err := l.core()
	if err != nil {
		return err
	}
	*l.logger = *zap.New(core)
	*l.sugared = *l.logger.Sugar()

	// Nothing writes to the old file once the cores are swapped
	old := l.file
	l.file = f
	if old != nil {
		return old.Close()
	}
	return nil
}

// GetLogger returns the pointer to the logger and creates one if none exists
func (l *logContainer) GetLogger() *zap.Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.root()
}

// GetSimpleLogger returns the pointer to the sugared logger and creates one
// if none exists
func (l *logContainer) GetSimpleLogger() *zap.SugaredLogger {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.root()
	return l.sugared
}

func (l *logContainer) root() *zap.Logger {
	if l.logger == nil {
		// Without a log file the core cannot fail
		core, _, _ := l.core()
		l.logger = zap.New(core)
		l.sugared = l.logger.Sugar()
	}
	return l.logger
}

// core builds the cores for the current settings. The returned file, if
// any, backs the JSON core and is owned by the caller.
func (l *logContainer) core() (zapcore.Core, *os.File, error) {
	console := zapcore.NewCore(getConsoleEncoder(), zapcore.Lock(os.Stderr), l.level)
	if l.logFile == "" {
		return console, nil, nil
	}
	f, err := os.OpenFile(l.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return console, nil, err
	}
	json := zapcore.NewCore(getJsonEncoder(), zapcore.AddSync(f), l.level)
	return zapcore.NewTee(console, json), f, nil
}

func getConsoleEncoder() zapcore.Encoder {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return zapcore.NewConsoleEncoder(encoderConfig)
}

func getJsonEncoder() zapcore.Encoder {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.EpochTimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	return zapcore.NewJSONEncoder(encoderConfig)
}
