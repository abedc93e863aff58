/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package logger provides the process-wide leveled logger used by the CLI
// and the generation pipeline.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu     sync.RWMutex
	output io.Writer = os.Stderr
	level            = zerolog.InfoLevel
	logger           = build(output, level)
)

func build(w io.Writer, lvl zerolog.Level) zerolog.Logger {
	console := zerolog.NewConsoleWriter()
	console.Out = w
	console.NoColor = true
	console.PartsExclude = []string{zerolog.TimestampFieldName}
	return zerolog.New(console).Level(lvl)
}

func current() *zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	l := logger
	return &l
}

// SetOutput configures the logger output destination.
// Use io.Discard to silence all logging.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
	logger = build(output, level)
}

// SetLevel sets the minimum level that is written. Accepted names are
// those of zerolog: debug, info, warn, error, disabled.
func SetLevel(name string) error {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(name)))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", name, err)
	}
	mu.Lock()
	defer mu.Unlock()
	level = lvl
	logger = build(output, level)
	return nil
}

// Warn logs a warning message.
func Warn(format string, args ...any) {
	current().Warn().Msgf(format, args...)
}

// Info logs an informational message.
func Info(format string, args ...any) {
	current().Info().Msgf(format, args...)
}

// Debug logs a debug message.
func Debug(format string, args ...any) {
	current().Debug().Msgf(format, args...)
}
