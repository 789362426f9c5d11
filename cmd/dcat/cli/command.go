// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"
)

// Command describes a CLI command: its flag surface, help text, and
// run function.
type Command struct {
	// Name is the command name as typed by the user.
	Name string

	// Summary is a one-line description.
	Summary string

	// Description is a detailed multi-line description shown in the
	// command's help output.
	Description string

	// Usage is the usage line (e.g., "dcat [flags] [file ...]").
	// If empty, it is synthesized from Name.
	Usage string

	// Examples are shown in the help output after the flags.
	Examples []Example

	// Flags returns a configured *pflag.FlagSet for this command.
	// Called lazily on first use. If nil, the command accepts no
	// flags.
	Flags func() *pflag.FlagSet

	// Run executes the command with the remaining args (after flag
	// parsing).
	Run func(args []string) error
}

// Example is a usage example shown in help output.
type Example struct {
	// Description explains what the example does.
	Description string
	// Command is the literal command line.
	Command string
}

// Execute parses args and invokes Run. Help requests (-h, --help,
// anywhere on the line) print help and return nil. Unknown flags
// produce an error with a closest-match suggestion.
func (c *Command) Execute(args []string) error {
	if c.Flags == nil {
		return c.Run(args)
	}

	flagSet := c.Flags()

	// Suppress pflag's default error output and usage dump. We
	// format our own error messages with suggestions.
	flagSet.SetOutput(io.Discard)

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			c.PrintHelp(os.Stderr)
			return nil
		}

		errMsg := err.Error()
		if strings.Contains(errMsg, "unknown flag") || strings.Contains(errMsg, "unknown shorthand") {
			// Recreate the flagSet for suggestion lookup; the
			// failed parse may have consumed state.
			suggestion := suggestFlag(args, c.Flags())
			if suggestion != "" {
				return fmt.Errorf("%s (did you mean %s?)\n\nRun '%s --help' for usage.",
					errMsg, suggestion, c.Name)
			}
		}
		return fmt.Errorf("%s\n\nRun '%s --help' for usage.", errMsg, c.Name)
	}

	return c.Run(flagSet.Args())
}

// PrintHelp writes structured help output to w.
func (c *Command) PrintHelp(w io.Writer) {
	if c.Description != "" {
		fmt.Fprintf(w, "%s\n\n", c.Description)
	} else if c.Summary != "" {
		fmt.Fprintf(w, "%s\n\n", c.Summary)
	}

	if c.Usage != "" {
		fmt.Fprintf(w, "Usage:\n  %s\n", c.Usage)
	} else {
		fmt.Fprintf(w, "Usage:\n  %s [flags]\n", c.Name)
	}

	if c.Flags != nil {
		flagSet := c.Flags()
		var flagHelp strings.Builder
		flagSet.SetOutput(&flagHelp)
		flagSet.PrintDefaults()
		if flagHelp.Len() > 0 {
			fmt.Fprintf(w, "\nFlags:\n%s", flagHelp.String())
		}
	}

	if len(c.Examples) > 0 {
		fmt.Fprintf(w, "\nExamples:\n")
		for _, example := range c.Examples {
			if example.Description != "" {
				fmt.Fprintf(w, "  # %s\n", example.Description)
			}
			fmt.Fprintf(w, "  %s\n", example.Command)
			if example.Description != "" {
				fmt.Fprintln(w)
			}
		}
	}
}
