// Copyright (C) 2026 The jfmt Authors. All Rights Reserved.

// Package logging configures the process-wide logger.
package logging

import (
	"os"
	"sync"

	"github.com/charmbracelet/log"
)

var (
	defaultLogger *log.Logger
	defaultOnce   sync.Once
)

// New creates a logger writing to stderr at the given level.
func New(level log.Level) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Level:           level,
	})
	return logger
}

// Default returns the shared logger, creating it at WarnLevel on first use.
func Default() *log.Logger {
	defaultOnce.Do(func() {
		if defaultLogger == nil {
			defaultLogger = New(log.WarnLevel)
		}
	})
	return defaultLogger
}

// SetLevel adjusts the level of the shared logger.
func SetLevel(level log.Level) {
	Default().SetLevel(level)
}
