// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package stream

import (
	"io"
	"strconv"
)

// numberWidth is the field width for emitted line numbers. Numbers
// wider than the field are not truncated.
const numberWidth = 6

// Annotator renders line records for one source: numbering, end-of-
// line markers, tab/control escaping, and blank-line squeezing. It
// carries [State] across chunks so that a line straddling a chunk
// boundary is treated as one logical line, and shares the running
// line counter with the processor so numbering spans sources.
type Annotator struct {
	cfg            Config
	transcoder     *Transcoder
	out            io.Writer
	state          State
	lineNumber     *uint64
	numberAll      bool
	numberNonblank bool
	scratch        []byte
}

// NewAnnotator returns an annotator writing to out. lineNumber is
// owned by the caller and persists across sources; the annotator
// pre-increments it for each number it emits.
func NewAnnotator(cfg Config, transcoder *Transcoder, out io.Writer, lineNumber *uint64) *Annotator {
	a := &Annotator{
		cfg:        cfg,
		transcoder: transcoder,
		out:        out,
		state:      NewState(),
		lineNumber: lineNumber,
	}
	a.numberAll, a.numberNonblank = cfg.numbering()
	return a
}

// WriteChunk renders one chunk of input.
func (a *Annotator) WriteChunk(chunk []byte) error {
	return SplitLines(chunk, a.writeLine)
}

func (a *Annotator) writeLine(line Line) error {
	startsLine := a.state.AtLineStart
	out := a.scratch[:0]

	// A terminated empty record at a line start is a blank line. An
	// empty terminated record mid-line is just the terminator of a
	// line whose content arrived in the previous chunk, and falls
	// through to the general path below.
	if startsLine && len(line.Bytes) == 0 && line.Terminated {
		a.state.BlankRun++
		if a.cfg.SqueezeBlank && a.state.BlankRun > 1 {
			// Suppressed entirely: no number, no terminator, and
			// the line counter does not advance. AtLineStart stays
			// true so the next real line is still recognized as
			// following a newline.
			return nil
		}
		if a.numberAll {
			out = a.appendLineNumber(out)
		}
		if a.cfg.ShowEnds {
			out = append(out, '$')
		}
		out = append(out, '\n')
		a.scratch = out
		_, err := a.out.Write(out)
		return err
	}

	if len(line.Bytes) > 0 {
		a.state.BlankRun = 0
	}
	if startsLine && len(line.Bytes) > 0 && (a.numberAll || a.numberNonblank) {
		out = a.appendLineNumber(out)
		out = append(out, '\t')
	}
	out = a.transcoder.Append(out, line.Bytes)
	if line.Terminated {
		if a.cfg.ShowEnds {
			out = append(out, '$')
		}
		out = append(out, '\n')
		a.state.AtLineStart = true
	} else {
		// Chunk ended mid-line. The next record continues this
		// line: no renumbering, no terminator yet.
		a.state.AtLineStart = false
	}
	a.scratch = out
	_, err := a.out.Write(out)
	return err
}

// appendLineNumber advances the shared counter and appends it
// right-justified in a numberWidth-column field.
func (a *Annotator) appendLineNumber(dst []byte) []byte {
	*a.lineNumber++
	var digits [20]byte
	number := strconv.AppendUint(digits[:0], *a.lineNumber, 10)
	for pad := numberWidth - len(number); pad > 0; pad-- {
		dst = append(dst, ' ')
	}
	return append(dst, number...)
}
