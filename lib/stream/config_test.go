// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package stream

import "testing"

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		wantErr bool
	}{
		{name: "default size", size: DefaultBufferSize},
		{name: "minimum size", size: MinBufferSize},
		{name: "below minimum", size: MinBufferSize - 1, wantErr: true},
		{name: "zero", size: 0, wantErr: true},
		{name: "negative", size: -1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Config{BufferSize: tt.size}.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() with BufferSize=%d: err=%v, wantErr=%v", tt.size, err, tt.wantErr)
			}
		})
	}
}

func TestConfigMode(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want Mode
	}{
		{name: "no flags", cfg: Config{}, want: ModeFastCopy},
		{name: "number all", cfg: Config{NumberAll: true}, want: ModeAnnotated},
		{name: "number nonblank", cfg: Config{NumberNonblank: true}, want: ModeAnnotated},
		{name: "show ends", cfg: Config{ShowEnds: true}, want: ModeAnnotated},
		{name: "show tabs", cfg: Config{ShowTabs: true}, want: ModeAnnotated},
		{name: "show nonprinting", cfg: Config{ShowNonprinting: true}, want: ModeAnnotated},
		{name: "squeeze blank", cfg: Config{SqueezeBlank: true}, want: ModeAnnotated},
		{name: "hex dump", cfg: Config{HexDump: true}, want: ModeHexDump},
		{
			name: "hex dump bypasses line flags",
			cfg:  Config{HexDump: true, NumberAll: true, ShowEnds: true},
			want: ModeHexDump,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.Mode(); got != tt.want {
				t.Fatalf("Mode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConfigNumberingPrecedence(t *testing.T) {
	// NumberNonblank overrides NumberAll when both are requested.
	all, nonblank := Config{NumberAll: true, NumberNonblank: true}.numbering()
	if all || !nonblank {
		t.Fatalf("numbering() with both flags = (all=%v, nonblank=%v), want (false, true)", all, nonblank)
	}

	all, nonblank = Config{NumberAll: true}.numbering()
	if !all || nonblank {
		t.Fatalf("numbering() with NumberAll = (all=%v, nonblank=%v), want (true, false)", all, nonblank)
	}
}

func TestModeString(t *testing.T) {
	if ModeFastCopy.String() != "fast-copy" {
		t.Errorf("ModeFastCopy.String() = %q", ModeFastCopy.String())
	}
	if ModeHexDump.String() != "hex-dump" {
		t.Errorf("ModeHexDump.String() = %q", ModeHexDump.String())
	}
	if ModeAnnotated.String() != "annotated" {
		t.Errorf("ModeAnnotated.String() = %q", ModeAnnotated.String())
	}
}
