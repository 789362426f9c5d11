// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import "fmt"

// ExitError signals a non-zero exit code without printing an extra
// error message. When the command handler returns an ExitError, main
// exits with the code without printing the error string — the
// command is expected to have already written its own diagnostics.
//
// dcat uses this for the aggregate per-source status: each failed
// source prints its own "dcat: <source>: <detail>" line as it fails,
// and the run as a whole exits 1 without a redundant summary line.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// ExitCode returns the exit code. main checks for this interface on
// returned errors to distinguish "handled non-zero exit" from
// "unexpected error to display".
func (e *ExitError) ExitCode() int {
	return e.Code
}
