// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"io"
	"log/slog"

	"golang.org/x/term"
)

// NewDiagLogger creates a structured logger for diagnostic output.
// When diag is a terminal, it uses slog.TextHandler for
// human-readable output. When diag is piped or redirected (CI,
// scripts, integration tests), it uses slog.JSONHandler for
// machine-parseable output.
//
// The primary "dcat: <source>: <detail>" error lines are written
// directly, not through this logger; the logger carries secondary
// diagnostics such as non-terminal progress reports.
func NewDiagLogger(diag io.Writer) *slog.Logger {
	var handler slog.Handler
	options := &slog.HandlerOptions{Level: slog.LevelInfo}
	if isTerminal(diag) {
		handler = slog.NewTextHandler(diag, options)
	} else {
		handler = slog.NewJSONHandler(diag, options)
	}
	return slog.New(handler)
}

// isTerminal reports whether w is backed by a terminal. Only writers
// exposing a file descriptor (os.File) can be.
func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
