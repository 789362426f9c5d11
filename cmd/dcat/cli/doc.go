// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the small command framework the dcat binary
// is built on: flag binding from struct tags onto pflag, structured
// help output, typo suggestions for unknown flags, exit-code
// signaling, and a diagnostic logger that adapts its format to
// whether standard error is a terminal.
package cli
