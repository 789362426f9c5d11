// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package stream

import "fmt"

// SourceError reports a failure reading a named source. The failure
// is confined to that source: the caller reports it, skips the rest
// of the source, and continues with the next one, turning the
// invocation's aggregate exit status non-zero.
type SourceError struct {
	// Name is the source name as given by the user ("-" for stdin).
	Name string

	// Op is the operation that failed, "open" or "read".
	Op string

	// Err is the underlying cause.
	Err error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Name, e.Op, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// SinkError reports a failure writing the primary output. Unlike a
// source failure it is fatal to the whole invocation: continuing
// would silently drop output bytes.
type SinkError struct {
	Err error
}

func (e *SinkError) Error() string {
	return "write output: " + e.Err.Error()
}

func (e *SinkError) Unwrap() error {
	return e.Err
}
