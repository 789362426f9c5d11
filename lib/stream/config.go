// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package stream

import "fmt"

const (
	// MinBufferSize is the smallest accepted read buffer. Smaller
	// buffers make per-chunk overhead dominate without any benefit.
	MinBufferSize = 1024

	// DefaultBufferSize is the read buffer size used when the caller
	// does not specify one. 256 KiB keeps syscall counts low on
	// large files while staying well inside L2 on current hardware.
	DefaultBufferSize = 256 * 1024
)

// Config is the immutable per-invocation rendering configuration.
// The CLI layer constructs one Config from the flag surface and the
// engine never mutates it.
type Config struct {
	// NumberAll numbers every output line.
	NumberAll bool

	// NumberNonblank numbers only non-empty output lines. When both
	// numbering flags are requested, NumberNonblank wins (the -b
	// flag overrides -n).
	NumberNonblank bool

	// ShowEnds appends a $ before each line's newline.
	ShowEnds bool

	// ShowTabs renders horizontal tabs as ^I.
	ShowTabs bool

	// ShowNonprinting renders control characters, DEL, and bytes
	// >= 0x80 in caret/M- notation. Tab and newline are exempt.
	ShowNonprinting bool

	// SqueezeBlank suppresses repeated blank lines: at most one
	// consecutive blank line reaches the output.
	SqueezeBlank bool

	// HexDump renders input as fixed-width offset/hex/ASCII rows.
	// It substitutes the entire line-oriented path rather than
	// combining with it.
	HexDump bool

	// BufferSize is the chunk size for reads, at least MinBufferSize.
	BufferSize int
}

// Validate checks the configuration for values the engine cannot
// operate with.
func (c Config) Validate() error {
	if c.BufferSize < MinBufferSize {
		return fmt.Errorf("buffer size must be at least %d bytes, got %d", MinBufferSize, c.BufferSize)
	}
	return nil
}

// numbering reports whether any line numbering is active, resolving
// the NumberNonblank-overrides-NumberAll precedence.
func (c Config) numbering() (all, nonblank bool) {
	if c.NumberNonblank {
		return false, true
	}
	return c.NumberAll, false
}

// Mode selects which of the three render paths a Config demands.
type Mode int

const (
	// ModeFastCopy is the transformation-free passthrough used when
	// no formatting flag is active.
	ModeFastCopy Mode = iota

	// ModeHexDump renders offset/hex/ASCII rows.
	ModeHexDump

	// ModeAnnotated is the line-oriented path: segmentation,
	// transcoding, numbering, end markers, squeezing.
	ModeAnnotated
)

// String returns the mode name for diagnostics.
func (m Mode) String() string {
	switch m {
	case ModeFastCopy:
		return "fast-copy"
	case ModeHexDump:
		return "hex-dump"
	case ModeAnnotated:
		return "annotated"
	default:
		return fmt.Sprintf("unknown(%d)", int(m))
	}
}

// Mode computes the render path for this configuration. Hex dump
// takes precedence over everything; any line-oriented flag selects
// the annotated path; otherwise the fast copy runs.
func (c Config) Mode() Mode {
	if c.HexDump {
		return ModeHexDump
	}
	if c.NumberAll || c.NumberNonblank || c.ShowEnds || c.ShowTabs ||
		c.ShowNonprinting || c.SqueezeBlank {
		return ModeAnnotated
	}
	return ModeFastCopy
}
