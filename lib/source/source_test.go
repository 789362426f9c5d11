// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestOpenFile(t *testing.T) {
	path := writeFile(t, "plain.txt", []byte("file contents\n"))

	reader, err := Source{Name: path}.Open(strings.NewReader("unused stdin"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer reader.Close()

	got, err := io.ReadAll(reader)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(got) != "file contents\n" {
		t.Fatalf("read %q", got)
	}
}

func TestOpenStdinMarker(t *testing.T) {
	stdin := strings.NewReader("from stdin")

	reader, err := Source{Name: Stdin}.Open(stdin)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	got, err := io.ReadAll(reader)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(got) != "from stdin" {
		t.Fatalf("read %q", got)
	}

	// Closing the source must not affect the caller's stdin.
	if err := reader.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Source{Name: filepath.Join(t.TempDir(), "absent")}.Open(nil)
	if err == nil {
		t.Fatal("Open succeeded on a missing file")
	}
	// The *os.PathError wrapper is stripped so diagnostics don't
	// repeat the file name.
	if strings.Contains(err.Error(), "absent") {
		t.Fatalf("error repeats the file name: %v", err)
	}
}

func TestDecompressPassthrough(t *testing.T) {
	// Unrecognized content with Decompress on is passed through
	// byte-identically.
	data := []byte("not compressed at all \x00\xff\n")
	path := writeFile(t, "plain.bin", data)

	reader, err := Source{Name: path, Decompress: true}.Open(nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer reader.Close()

	got, err := io.ReadAll(reader)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Fatalf("passthrough altered data: %q", got)
	}
}

func TestDecompressShortInput(t *testing.T) {
	// Inputs shorter than any magic sequence pass through.
	path := writeFile(t, "tiny", []byte("x"))

	reader, err := Source{Name: path, Decompress: true}.Open(nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer reader.Close()

	got, err := io.ReadAll(reader)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(got) != "x" {
		t.Fatalf("read %q", got)
	}
}
