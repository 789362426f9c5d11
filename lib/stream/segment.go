// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package stream

import "bytes"

// Line is one line record within a chunk: the line's bytes (newline
// excluded) and whether a newline terminated it before the chunk
// ended. A non-terminated record means the chunk ended mid-line; the
// rest of the line arrives with the next chunk, or the stream ended
// without a trailing newline.
type Line struct {
	Bytes      []byte
	Terminated bool
}

// SplitLines scans chunk for newline bytes and calls emit once per
// line record, in order. The sequence is lazy and non-restartable:
// an error from emit aborts the scan and is returned unchanged.
//
// A chunk ending exactly on a newline produces no trailing record;
// residual bytes after the last newline produce one non-terminated
// record. SplitLines never emits an empty non-terminated record.
func SplitLines(chunk []byte, emit func(Line) error) error {
	for len(chunk) > 0 {
		i := bytes.IndexByte(chunk, '\n')
		if i < 0 {
			return emit(Line{Bytes: chunk})
		}
		if err := emit(Line{Bytes: chunk[:i], Terminated: true}); err != nil {
			return err
		}
		chunk = chunk[i+1:]
	}
	return nil
}

// State carries line-tracking information across chunk boundaries
// within one source. The processor owns and resets it per source;
// the annotator advances it as lines are emitted. It is never shared
// between sources.
type State struct {
	// AtLineStart is true when the next record begins a new logical
	// line. It starts true: there is a virtual line start before the
	// first byte of every source. A non-terminated record clears it,
	// which is what prevents a line straddling a chunk boundary from
	// being numbered twice.
	AtLineStart bool

	// BlankRun counts the consecutive blank lines seen immediately
	// before the current position. Any non-empty line resets it.
	BlankRun int
}

// NewState returns the carried state for the start of a source.
func NewState() State {
	return State{AtLineStart: true}
}
