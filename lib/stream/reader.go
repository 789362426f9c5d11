// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package stream

import "io"

// ReadChunk fills buf with the next chunk from r. It returns the
// number of bytes read; (0, nil) signals a clean end of stream, and
// a non-nil error is a real read failure, never io.EOF.
//
// Data and a failure reported by the same Read call are both
// returned, as with io.Copy: the caller must consume the n bytes
// before acting on the error, since nothing guarantees a later Read
// would reproduce it. A reader that returns final data together
// with io.EOF has the data delivered with a nil error and the clean
// end signaled by the following call. ReadChunk does no buffering
// of its own, so chunk boundaries are exactly the boundaries the
// underlying reader produced.
func ReadChunk(r io.Reader, buf []byte) (int, error) {
	for {
		n, err := r.Read(buf)
		if err == io.EOF {
			return n, nil
		}
		if n > 0 || err != nil {
			return n, err
		}
		// Zero bytes with no error: permitted by the io.Reader
		// contract, try again.
	}
}
