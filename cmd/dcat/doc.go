// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Command dcat concatenates byte streams to standard output.
//
// It is a cat-family tool with three render paths: a raw fast copy
// when no formatting is requested, an annotated line path (numbering,
// end-of-line markers, visible tabs and control characters,
// blank-line squeezing), and a hexadecimal dump mode. Sources are
// files or standard input ("-"), processed in order with numbering
// carried across them; per-source I/O failures are reported on
// standard error and reflected in a non-zero exit status without
// stopping the remaining sources.
package main
