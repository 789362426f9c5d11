// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package source resolves the named byte sources a dcat invocation
// processes: real files, the conventional "-" standard input marker,
// and optionally a transparent decompression layer selected by
// sniffing the stream's magic bytes (gzip, zstd, and lz4 frames).
//
// The rendering engine in lib/stream never sees any of this; it
// consumes plain io.Reader chunks from whatever reader Open returns.
package source
