// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog.Logger for the go-content-keeper client.
//
// *Logger embeds zerolog.Logger, so Debug, Info, Warn and the rest are
// called directly on it. Synchronizer calls get a mutation-scoped child via
// ForMutation; code below the synchronizer picks it up from the request
// context with FromContext.
package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DefaultLogFileName is the file created next to the executable when no
// explicit log path is configured.
const DefaultLogFileName = "logs"

type Logger struct {
	zerolog.Logger
}

// New writes JSON lines to w. Every entry carries role, a "time" timestamp
// and the calling function under "func".
func New(w io.Writer, role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerFieldName = "func"
	zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
		return runtime.FuncForPC(pc).Name()
	}

	return &Logger{zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()}
}

// NewLogger logs to stdout.
func NewLogger(role string) *Logger {
	return New(os.Stdout, role)
}

// NewClientLogger logs to path, or to a "logs" file next to the executable
// when path is empty, so that log lines stay out of the terminal the CLI and
// the panel draw on. It falls back to stdout if the file cannot be opened.
func NewClientLogger(role, path string) *Logger {
	if path == "" {
		execPath, _ := os.Executable()
		path = filepath.Join(filepath.Dir(execPath), DefaultLogFileName)
	}

	var w io.Writer = os.Stdout
	if f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644); err == nil {
		w = f
	}

	return New(w, role)
}

// Nop discards everything. Used in tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// WithLevel returns a child that drops entries below level. An unknown level
// name is an error and leaves the receiver untouched.
func (l *Logger) WithLevel(level string) (*Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return l, fmt.Errorf("parse log level %q: %w", level, err)
	}

	return &Logger{l.Level(lvl)}, nil
}

// GetChildLogger returns a copy that can be enriched without touching l.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// ForMutation returns a child logger carrying the entity, operation and
// mutation id of a single synchronizer call.
func (l *Logger) ForMutation(entity, op, mutationID string) *Logger {
	return &Logger{l.With().
		Str("entity", entity).
		Str("op", op).
		Str("mutation_id", mutationID).
		Logger()}
}

// FromContext returns the logger attached to ctx with zerolog's WithContext.
// Without one zerolog hands back its default logger, never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
