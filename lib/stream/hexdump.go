// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package stream

import "io"

// hexRowBytes is the number of input bytes rendered per dump row.
const hexRowBytes = 16

const hexDigits = "0123456789abcdef"

// Dumper renders chunks as fixed-width hex rows: an 8-digit
// lowercase offset, sixteen 2-digit hex cells with an extra space
// after the eighth, and an ASCII gloss where printable bytes
// ([0x20,0x7E]) appear literally and everything else as a dot.
//
// Up to fifteen residual bytes carry across WriteChunk calls, so
// row boundaries depend only on the byte offset, never on how reads
// chunked the input; only the final row of a source, rendered by
// Flush, may have blank-padded cells. The offset accumulates across
// chunks within one source. A Dumper must not be reused across
// sources: the processor creates a fresh one per source so each
// file's dump starts at offset 0.
type Dumper struct {
	out     io.Writer
	offset  uint64
	pending [hexRowBytes]byte
	filled  int
	row     []byte
}

// NewDumper returns a dumper writing rows to out, starting at
// offset 0.
func NewDumper(out io.Writer) *Dumper {
	return &Dumper{out: out}
}

// WriteChunk renders the chunk as complete rows, holding back any
// trailing partial row until the bytes completing it arrive in a
// later chunk. Call Flush at the end of the source to render the
// residue.
func (d *Dumper) WriteChunk(chunk []byte) error {
	if d.filled > 0 {
		n := copy(d.pending[d.filled:], chunk)
		d.filled += n
		chunk = chunk[n:]
		if d.filled < hexRowBytes {
			return nil
		}
		if err := d.writeRow(d.pending[:]); err != nil {
			return err
		}
		d.filled = 0
	}
	for len(chunk) >= hexRowBytes {
		if err := d.writeRow(chunk[:hexRowBytes]); err != nil {
			return err
		}
		chunk = chunk[hexRowBytes:]
	}
	d.filled = copy(d.pending[:], chunk)
	return nil
}

// Flush renders the residual partial row, if any, padding the
// missing hex cells with blank columns.
func (d *Dumper) Flush() error {
	if d.filled == 0 {
		return nil
	}
	row := d.pending[:d.filled]
	d.filled = 0
	return d.writeRow(row)
}

func (d *Dumper) writeRow(row []byte) error {
	out := d.row[:0]

	value := d.offset
	var offset [8]byte
	for i := 7; i >= 0; i-- {
		offset[i] = hexDigits[value&0xF]
		value >>= 4
	}
	out = append(out, offset[:]...)
	out = append(out, ':', ' ')

	for i := 0; i < hexRowBytes; i++ {
		if i < len(row) {
			out = append(out, hexDigits[row[i]>>4], hexDigits[row[i]&0xF], ' ')
		} else {
			out = append(out, ' ', ' ', ' ')
		}
		// Extra space between the two 8-byte groups.
		if i == 7 {
			out = append(out, ' ')
		}
	}

	out = append(out, ' ')
	for i := 0; i < hexRowBytes; i++ {
		switch {
		case i >= len(row):
			out = append(out, ' ')
		case row[i] >= 0x20 && row[i] <= 0x7E:
			out = append(out, row[i])
		default:
			out = append(out, '.')
		}
	}
	out = append(out, '\n')

	d.row = out
	d.offset += uint64(len(row))
	_, err := d.out.Write(out)
	return err
}
