// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package stream

// Transcoder maps input bytes to their display representation under
// the active flags. The mapping is a pure function of the byte and
// the Config, precomputed into a 256-entry table so the annotation
// hot loop is a single indexed append per byte.
//
// The newline byte never reaches the transcoder: the segmenter strips
// it from line records and the annotator re-emits it as the line
// terminator.
type Transcoder struct {
	table    [256][]byte
	identity bool
}

// NewTranscoder builds the display table for cfg.
func NewTranscoder(cfg Config) *Transcoder {
	t := &Transcoder{identity: !cfg.ShowTabs && !cfg.ShowNonprinting}
	for i := range t.table {
		t.table[i] = transcodeByte(byte(i), cfg)
	}
	return t
}

// Append appends the display form of every byte of line to dst and
// returns the extended slice. With no transcoding flags active this
// is a plain append of line itself.
func (t *Transcoder) Append(dst, line []byte) []byte {
	if t.identity {
		return append(dst, line...)
	}
	for _, c := range line {
		dst = append(dst, t.table[c]...)
	}
	return dst
}

// transcodeByte returns the display form of a single byte under cfg.
// Rules, in priority order: ShowTabs turns tab into ^I; otherwise
// ShowNonprinting escapes control bytes, DEL, and high-bit bytes in
// caret/M- notation, with tab and newline exempt; everything else
// passes through unchanged.
func transcodeByte(c byte, cfg Config) []byte {
	if c == '\t' {
		if cfg.ShowTabs {
			return []byte{'^', 'I'}
		}
		return []byte{c}
	}
	if c == '\n' || !cfg.ShowNonprinting {
		return []byte{c}
	}
	if c >= 0x80 {
		return append([]byte{'M', '-'}, caretNotation(c-0x80)...)
	}
	return caretNotation(c)
}

// caretNotation escapes a 7-bit byte: control codes become ^ plus
// the byte shifted into the printable range, DEL becomes ^?, and
// printable bytes are returned as themselves.
func caretNotation(c byte) []byte {
	switch {
	case c < 0x20:
		return []byte{'^', c + 64}
	case c == 0x7F:
		return []byte{'^', '?'}
	default:
		return []byte{c}
	}
}
