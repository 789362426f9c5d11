// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"fmt"
	"io"
	"os"
)

// Stdin is the conventional command-line name for standard input.
const Stdin = "-"

// Source is one named input in an invocation's source list.
type Source struct {
	// Name as given on the command line; Stdin means standard input.
	Name string

	// Decompress enables magic-byte sniffing on open: recognized
	// compressed streams are decompressed on the fly, everything
	// else passes through untouched.
	Decompress bool
}

// Open resolves the source to a reader. stdin is the reader used
// for the Stdin marker; it is not closed when the result is closed,
// so one stdin can back several "-" entries in the source list.
func (s Source) Open(stdin io.Reader) (io.ReadCloser, error) {
	var reader io.Reader
	var closers []io.Closer

	if s.Name == Stdin {
		reader = stdin
	} else {
		file, err := os.Open(s.Name)
		if err != nil {
			return nil, underlying(err)
		}
		reader = file
		closers = append(closers, file)
	}

	if s.Decompress {
		wrapped, wrapCloser, err := sniffDecompression(reader)
		if err != nil {
			closeAll(closers)
			return nil, fmt.Errorf("decompress: %w", err)
		}
		reader = wrapped
		if wrapCloser != nil {
			// Decompressor close runs before the file close.
			closers = append([]io.Closer{wrapCloser}, closers...)
		}
	}

	return &readCloser{reader: reader, closers: closers}, nil
}

// underlying strips the *os.PathError wrapper so diagnostics read
// "dcat: <name>: no such file or directory" rather than repeating
// the name inside the detail.
func underlying(err error) error {
	if pathErr, ok := err.(*os.PathError); ok {
		return pathErr.Err
	}
	return err
}

type readCloser struct {
	reader  io.Reader
	closers []io.Closer
}

func (rc *readCloser) Read(p []byte) (int, error) {
	return rc.reader.Read(p)
}

func (rc *readCloser) Close() error {
	var first error
	for _, c := range rc.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func closeAll(closers []io.Closer) {
	for _, c := range closers {
		c.Close()
	}
}
