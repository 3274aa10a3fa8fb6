// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anton Karpov

// Package logger provides a thin wrapper around zerolog.Logger used
// throughout pipekit.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Application code should pass *Logger by pointer and obtain scoped loggers
// via Child or FromContext.
//
// New deliberately does not touch the global zerolog level: the process-wide
// threshold is owned by the configuration layer, which derives it from the
// requested verbosity on every reset.
package logger

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
// Embedding zerolog.Logger exposes the full zerolog API while allowing the
// application to add helper methods without modifying the upstream type.
type Logger struct {
	zerolog.Logger
}

// New constructs a *Logger for the given component label
// (e.g. "config", "tmpdir").
//
// The logger is configured with:
//   - a "component" field set to component, useful for filtering logs from
//     different parts of the application;
//   - a timestamp field added to every log entry.
//
// Output is written to os.Stdout in JSON format.
func New(component string) *Logger {
	logger := zerolog.New(os.Stdout).With().
		Str("component", component).
		Timestamp().
		Logger()

	return &Logger{logger}
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and other contexts where logging is
// undesirable or would produce noise.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// Child returns a new *Logger that inherits all fields of the receiver.
// The child logger can be enriched with additional context fields without
// affecting the parent logger.
func (l *Logger) Child() *Logger {
	return &Logger{l.With().Logger()}
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's log.Ctx
// helper and returns it as a *Logger.
//
// If no logger has been attached to ctx, zerolog returns its global logger,
// so this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
