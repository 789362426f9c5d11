// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package stream

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"testing/iotest"
)

func TestReadChunk(t *testing.T) {
	buf := make([]byte, 8)

	r := strings.NewReader("hello world")
	n, err := ReadChunk(r, buf)
	if err != nil || n != 8 {
		t.Fatalf("first chunk: n=%d err=%v, want 8 nil", n, err)
	}
	if string(buf[:n]) != "hello wo" {
		t.Fatalf("first chunk = %q", buf[:n])
	}

	n, err = ReadChunk(r, buf)
	if err != nil || n != 3 {
		t.Fatalf("second chunk: n=%d err=%v, want 3 nil", n, err)
	}

	// End of stream is (0, nil), repeatedly.
	for i := 0; i < 2; i++ {
		n, err = ReadChunk(r, buf)
		if err != nil || n != 0 {
			t.Fatalf("at end: n=%d err=%v, want 0 nil", n, err)
		}
	}
}

func TestReadChunkDataWithEOF(t *testing.T) {
	// Readers that return final data together with io.EOF must have
	// the data delivered first and the clean end signaled after.
	r := iotest.DataErrReader(strings.NewReader("abc"))
	buf := make([]byte, 16)

	n, err := ReadChunk(r, buf)
	if err != nil || string(buf[:n]) != "abc" {
		t.Fatalf("data chunk: n=%d err=%v", n, err)
	}
	n, err = ReadChunk(r, buf)
	if n != 0 || err != nil {
		t.Fatalf("end: n=%d err=%v, want 0 nil", n, err)
	}
}

func TestReadChunkError(t *testing.T) {
	readErr := errors.New("disk on fire")
	r := iotest.ErrReader(readErr)

	n, err := ReadChunk(r, make([]byte, 4))
	if n != 0 || !errors.Is(err, readErr) {
		t.Fatalf("n=%d err=%v, want 0 and the read error", n, err)
	}
}

func TestReadChunkDataWithError(t *testing.T) {
	// A failure reported in the same Read call as data is returned
	// with the data; deferring it to a re-read would lose it if the
	// reader reports io.EOF afterwards.
	readErr := errors.New("device failure")
	r := &joinedErrReader{data: []byte("partial"), err: readErr}
	buf := make([]byte, 16)

	n, err := ReadChunk(r, buf)
	if string(buf[:n]) != "partial" || !errors.Is(err, readErr) {
		t.Fatalf("n=%d err=%v, want the data and the read error together", n, err)
	}
	n, err = ReadChunk(r, buf)
	if n != 0 || err != nil {
		t.Fatalf("after failure: n=%d err=%v, want 0 nil", n, err)
	}
}

func TestReadChunkOneByteReader(t *testing.T) {
	// A reader dribbling one byte per call still terminates cleanly.
	r := iotest.OneByteReader(bytes.NewReader([]byte("xy")))
	buf := make([]byte, 4)

	var got []byte
	for {
		n, err := ReadChunk(r, buf)
		if err != nil {
			t.Fatalf("ReadChunk: %v", err)
		}
		if n == 0 {
			break
		}
		got = append(got, buf[:n]...)
	}
	if string(got) != "xy" {
		t.Fatalf("got %q, want %q", got, "xy")
	}
}
