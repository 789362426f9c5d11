// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package stream

import (
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/term"
)

// progressInterval is the byte count between progress reports.
// Coarse on purpose: progress exists for multi-gigabyte streams and
// must never become the bottleneck.
const progressInterval = 10 * 1024 * 1024

// progressMeter tracks bytes processed for one source and emits
// periodic status on the diagnostic stream. When the diagnostic
// stream is a terminal it uses carriage-return overwrite lines;
// otherwise it emits structured log records so scripts and CI get
// parseable output. Progress never touches the primary output.
type progressMeter struct {
	name     string
	diag     io.Writer
	logger   *slog.Logger
	enabled  bool
	terminal bool
	total    int64
	reported int64
}

// newProgressMeter builds a meter for one source. A disabled meter
// only counts bytes.
func newProgressMeter(name string, diag io.Writer, logger *slog.Logger, enabled bool) *progressMeter {
	return &progressMeter{
		name:     name,
		diag:     diag,
		logger:   logger,
		enabled:  enabled,
		terminal: writerIsTerminal(diag),
	}
}

// add records n more processed bytes and reports when the interval
// has elapsed.
func (m *progressMeter) add(n int) {
	m.total += int64(n)
	if !m.enabled || m.total-m.reported < progressInterval {
		return
	}
	m.reported = m.total
	if m.terminal {
		fmt.Fprintf(m.diag, "\r%s: %d MB processed", m.name, m.total/(1024*1024))
		return
	}
	m.logger.Info("progress", "source", m.name, "bytes", m.total)
}

// finish terminates the progress display for the source. The
// terminal form overwrites the last report with a completed line;
// sources that never crossed the interval stay silent.
func (m *progressMeter) finish() {
	if !m.enabled || m.reported == 0 {
		return
	}
	if m.terminal {
		fmt.Fprintf(m.diag, "\r%s: %d MB processed - done\n", m.name, m.total/(1024*1024))
		return
	}
	m.logger.Info("progress done", "source", m.name, "bytes", m.total)
}

// writerIsTerminal reports whether w is backed by a terminal. Only
// writers exposing a file descriptor (os.File) can be terminals.
func writerIsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
