// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package stream

import (
	"io"
	"log/slog"
)

// Processor drives the render pipeline for a sequence of sources.
// It owns the read buffer and the running line counter, selects the
// render path once per source, and resets per-source state (carried
// line state, hex dump offset) between sources while the line
// counter persists.
//
// A Processor handles one source at a time; it is not safe for
// concurrent use, and the global line counter makes concurrent
// sources meaningless anyway.
type Processor struct {
	// Progress enables periodic status reports on the diagnostic
	// stream for large sources.
	Progress bool

	cfg        Config
	output     io.Writer
	diag       io.Writer
	logger     *slog.Logger
	transcoder *Transcoder
	buf        []byte
	lineNumber uint64
}

// New returns a processor rendering to output with diagnostics on
// diag. The configuration is validated once here; the buffer is
// allocated once and reused for every chunk of every source.
func New(cfg Config, output, diag io.Writer, logger *slog.Logger) (*Processor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Processor{
		cfg:        cfg,
		output:     output,
		diag:       diag,
		logger:     logger,
		transcoder: NewTranscoder(cfg),
		buf:        make([]byte, cfg.BufferSize),
	}, nil
}

// LineNumber returns the running line counter. It advances only on
// the annotated path when numbering is active.
func (p *Processor) LineNumber() uint64 {
	return p.lineNumber
}

// ProcessSource renders one source to completion. A *SourceError
// return means this source failed mid-read and the caller may
// continue with the next source; a *SinkError means the output sink
// failed and the invocation should stop.
func (p *Processor) ProcessSource(name string, r io.Reader) error {
	meter := newProgressMeter(name, p.diag, p.logger, p.Progress)

	var err error
	switch p.cfg.Mode() {
	case ModeHexDump:
		dumper := NewDumper(p.output)
		err = p.run(name, r, meter, dumper.WriteChunk)
		// Render the residual partial row even after a read
		// failure: bytes delivered before the failure are output,
		// matching the other render paths.
		if flushErr := dumper.Flush(); flushErr != nil && err == nil {
			err = &SinkError{Err: flushErr}
		}
	case ModeAnnotated:
		annotator := NewAnnotator(p.cfg, p.transcoder, p.output, &p.lineNumber)
		err = p.run(name, r, meter, annotator.WriteChunk)
	default:
		err = p.run(name, r, meter, p.copyChunk)
	}

	meter.finish()
	return err
}

// run is the per-source read loop shared by all render paths:
// chunked reads until exhaustion, handing each chunk to the path's
// render function. Bytes delivered alongside a read failure are
// rendered before the failure is surfaced.
func (p *Processor) run(name string, r io.Reader, meter *progressMeter, render func([]byte) error) error {
	for {
		n, err := ReadChunk(r, p.buf)
		if n > 0 {
			if renderErr := render(p.buf[:n]); renderErr != nil {
				return &SinkError{Err: renderErr}
			}
			meter.add(n)
		}
		if err != nil {
			return &SourceError{Name: name, Op: "read", Err: err}
		}
		if n == 0 {
			return nil
		}
	}
}

// copyChunk is the fast-copy render path: bytes move to the output
// unmodified, with no line awareness and no counter mutation.
func (p *Processor) copyChunk(chunk []byte) error {
	_, err := p.output.Write(chunk)
	return err
}
