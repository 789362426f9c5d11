// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"bufio"
	"bytes"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression frame magic bytes. Sniffing the stream rather than
// trusting file extensions means "dcat -z" works on pipes and on
// files with misleading names.
var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
	lz4Magic  = []byte{0x04, 0x22, 0x4d, 0x18}
)

// sniffDecompression peeks at the first bytes of r and wraps it in
// the matching decompressor. Streams with no recognized magic pass
// through unchanged (buffered, but byte-identical). The returned
// closer, when non-nil, finalizes the decompressor and must be
// closed before the underlying file.
func sniffDecompression(r io.Reader) (io.Reader, io.Closer, error) {
	buffered := bufio.NewReader(r)

	// Peek returns what it can on short input; fewer than four
	// bytes cannot carry any of the frames we recognize.
	magic, _ := buffered.Peek(4)

	switch {
	case bytes.HasPrefix(magic, gzipMagic):
		gz, err := gzip.NewReader(buffered)
		if err != nil {
			return nil, nil, err
		}
		return gz, gz, nil

	case bytes.HasPrefix(magic, zstdMagic):
		decoder, err := zstd.NewReader(buffered)
		if err != nil {
			return nil, nil, err
		}
		rc := decoder.IOReadCloser()
		return rc, rc, nil

	case bytes.HasPrefix(magic, lz4Magic):
		return lz4.NewReader(buffered), nil, nil

	default:
		return buffered, nil, nil
	}
}
