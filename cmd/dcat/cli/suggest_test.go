// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"testing"

	"github.com/spf13/pflag"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"abc", "abc", 0},
		{"abc", "abd", 1},
		{"abc", "acb", 2},
		{"number", "numbr", 1},
		{"squeeze", "sqeeze", 1},
		{"kitten", "sitting", 3},
	}

	for _, tt := range tests {
		if got := levenshtein(tt.a, tt.b); got != tt.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func testFlagSet() *pflag.FlagSet {
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flagSet.Bool("number", false, "")
	flagSet.Bool("squeeze-blank", false, "")
	flagSet.Bool("hex-dump", false, "")
	flagSet.BoolP("show-ends", "E", false, "")
	flagSet.BoolP("e", "e", false, "")
	return flagSet
}

func TestSuggestFlag(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "close long flag", args: []string{"--numbr"}, want: "--number"},
		{name: "transposition", args: []string{"--hex-dupm"}, want: "--hex-dump"},
		{name: "flag with value", args: []string{"--squeze-blank=true"}, want: "--squeeze-blank"},
		{name: "single letter suggestion", args: []string{"--ee"}, want: "-e"},
		{name: "too far to suggest", args: []string{"--completely-different"}, want: ""},
		{name: "defined flag not suggested", args: []string{"--number"}, want: ""},
		{name: "positional args ignored", args: []string{"file.txt"}, want: ""},
		{name: "no args", args: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := suggestFlag(tt.args, testFlagSet()); got != tt.want {
				t.Fatalf("suggestFlag(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}
