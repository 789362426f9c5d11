// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package stream implements the dcat rendering engine: chunked reads
// from a byte source, line segmentation across chunk boundaries, and
// the three mutually exclusive render paths (raw fast copy, annotated
// line output, hexadecimal dump).
//
// The engine is driven by a [Processor], which owns the read buffer
// and the running line counter. The CLI layer resolves sources and
// flags; the processor renders one source at a time to a single
// output sink, carrying the line counter between sources so that
// numbering is global to the invocation rather than per file.
//
// Render semantics are buffer-size-independent: a logical line that
// straddles two read chunks is recognized as one line for numbering
// and blank-line squeezing, because the [State] carried across chunks
// records whether the stream is mid-line, and a dump row split across
// chunks is held back by the [Dumper] until its bytes are complete.
// Output for a given input and [Config] is therefore byte-identical
// regardless of BufferSize or how the reader chunks its data.
package stream
