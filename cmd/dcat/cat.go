// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/caarlos0/env/v10"
	"github.com/spf13/pflag"

	"github.com/bureau-foundation/dcat/cmd/dcat/cli"
	"github.com/bureau-foundation/dcat/lib/source"
	"github.com/bureau-foundation/dcat/lib/stream"
	"github.com/bureau-foundation/dcat/lib/version"
)

// catParams is the dcat flag surface. The single-letter combination
// flags (-A, -e, -t) are sugar resolved in streamConfig.
type catParams struct {
	ShowAll         bool `flag:"show-all,A"         desc:"equivalent to -vET"`
	NumberNonblank  bool `flag:"number-nonblank,b"  desc:"number nonempty output lines, overrides -n"`
	EndsNonprinting bool `flag:"e,e"                desc:"equivalent to -vE"`
	ShowEnds        bool `flag:"show-ends,E"        desc:"display $ at end of each line"`
	Number          bool `flag:"number,n"           desc:"number all output lines"`
	SqueezeBlank    bool `flag:"squeeze-blank,s"    desc:"suppress repeated empty output lines"`
	TabsNonprinting bool `flag:"t,t"                desc:"equivalent to -vT"`
	ShowTabs        bool `flag:"show-tabs,T"        desc:"display TAB characters as ^I"`
	ShowNonprinting bool `flag:"show-nonprinting,v" desc:"use ^ and M- notation, except for LFD and TAB"`
	BufferSize      int  `flag:"buffer-size"        default:"262144" desc:"read buffer size in bytes (minimum 1024)"`
	Progress        bool `flag:"progress"           desc:"report progress on standard error for large inputs"`
	HexDump         bool `flag:"hex-dump"           desc:"render input as a hexadecimal byte dump"`
	Decompress      bool `flag:"decompress,z"       desc:"transparently decompress gzip, zstd, and lz4 input"`
	Version         bool `flag:"version,V"          desc:"print version information and exit"`
}

// envDefaults are environment-variable defaults applied after flag
// binding and before parsing, so explicit flags always win.
type envDefaults struct {
	BufferSize int  `env:"DCAT_BUFFER_SIZE"`
	Progress   bool `env:"DCAT_PROGRESS"`
}

// streamConfig resolves the flag surface, including the -A/-e/-t
// combination sugar, into the engine configuration.
func (p catParams) streamConfig() stream.Config {
	return stream.Config{
		NumberAll:       p.Number,
		NumberNonblank:  p.NumberNonblank,
		ShowEnds:        p.ShowEnds || p.ShowAll || p.EndsNonprinting,
		ShowTabs:        p.ShowTabs || p.ShowAll || p.TabsNonprinting,
		ShowNonprinting: p.ShowNonprinting || p.ShowAll || p.EndsNonprinting || p.TabsNonprinting,
		SqueezeBlank:    p.SqueezeBlank,
		HexDump:         p.HexDump,
		BufferSize:      p.BufferSize,
	}
}

func rootCommand() *cli.Command {
	var params catParams

	return &cli.Command{
		Name:    "dcat",
		Summary: "Concatenate byte streams to standard output",
		Description: `Concatenate FILE(s) to standard output.

With no FILE, or when FILE is -, read standard input.

Output can be annotated with line numbers, end-of-line markers,
visible tab and control characters, and blank-line squeezing, or
rendered as a hexadecimal byte dump. Line numbering is global to the
invocation: the second file's first numbered line continues from the
first file's last.`,
		Usage: "dcat [flags] [file ...]",
		Flags: func() *pflag.FlagSet {
			flagSet := cli.FlagsFromParams("dcat", &params)
			applyEnvDefaults(&params)
			return flagSet
		},
		Run: func(args []string) error {
			return runCat(params, args, os.Stdin, os.Stdout, os.Stderr)
		},
		Examples: []cli.Example{
			{
				Description: "Copy standard input to standard output",
				Command:     "dcat",
			},
			{
				Description: "Output f's contents, then standard input, then g's contents",
				Command:     "dcat f - g",
			},
			{
				Description: "Number all lines across both files",
				Command:     "dcat -n first.txt second.txt",
			},
			{
				Description: "Make control characters and line ends visible",
				Command:     "dcat -A mystery.log",
			},
			{
				Description: "Hex dump a binary",
				Command:     "dcat --hex-dump firmware.bin",
			},
			{
				Description: "View a compressed log without decompressing to disk",
				Command:     "dcat -z access.log.zst",
			},
		},
	}
}

// applyEnvDefaults overlays environment-variable defaults onto
// params. Called after flag binding seeds the tag defaults and
// before parsing, so a flag given on the command line overwrites
// the environment value.
func applyEnvDefaults(params *catParams) {
	var defaults envDefaults
	if err := env.Parse(&defaults); err != nil {
		// Malformed environment values are ignored rather than
		// fatal; the tag defaults stand.
		return
	}
	if defaults.BufferSize > 0 {
		params.BufferSize = defaults.BufferSize
	}
	if defaults.Progress {
		params.Progress = true
	}
}

// runCat is the invocation body: it builds the processor, iterates
// the source list, aggregates per-source status, and flushes the
// buffered output sink.
func runCat(params catParams, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	if params.Version {
		fmt.Fprintf(stdout, "dcat %s\n", version.Info())
		return nil
	}

	output := bufio.NewWriterSize(stdout, 64*1024)
	logger := cli.NewDiagLogger(stderr)

	processor, err := stream.New(params.streamConfig(), output, stderr, logger)
	if err != nil {
		return err
	}
	processor.Progress = params.Progress

	names := args
	if len(names) == 0 {
		names = []string{source.Stdin}
	}

	failed := false
	for _, name := range names {
		src := source.Source{Name: name, Decompress: params.Decompress}
		reader, err := src.Open(stdin)
		if err != nil {
			fmt.Fprintf(stderr, "dcat: %s: %v\n", name, err)
			failed = true
			continue
		}

		err = processor.ProcessSource(name, reader)
		reader.Close()
		if err == nil {
			continue
		}

		var sinkErr *stream.SinkError
		if errors.As(err, &sinkErr) {
			// Output is unusable; abort the whole invocation.
			return err
		}
		fmt.Fprintf(stderr, "dcat: %v\n", err)
		failed = true
	}

	if err := output.Flush(); err != nil {
		return &stream.SinkError{Err: err}
	}
	if failed {
		return &cli.ExitError{Code: 1}
	}
	return nil
}
