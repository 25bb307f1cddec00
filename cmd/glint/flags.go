package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"glint/internal/diag"
	"glint/internal/diagfmt"
	"glint/internal/source"
)

type globalOptions struct {
	color          string
	quiet          bool
	timings        bool
	maxDiagnostics int
	diagFormat     string
}

func readGlobalOptions(cmd *cobra.Command) (globalOptions, error) {
	flags := cmd.Root().PersistentFlags()
	var opts globalOptions
	var err error
	if opts.color, err = flags.GetString("color"); err != nil {
		return opts, fmt.Errorf("failed to get color flag: %w", err)
	}
	switch opts.color {
	case "auto", "on", "off":
	default:
		return opts, fmt.Errorf("invalid --color value %q (expected auto|on|off)", opts.color)
	}
	if opts.quiet, err = flags.GetBool("quiet"); err != nil {
		return opts, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if opts.timings, err = flags.GetBool("timings"); err != nil {
		return opts, fmt.Errorf("failed to get timings flag: %w", err)
	}
	if opts.maxDiagnostics, err = flags.GetInt("max-diagnostics"); err != nil {
		return opts, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	if opts.diagFormat, err = flags.GetString("diag-format"); err != nil {
		return opts, fmt.Errorf("failed to get diag-format flag: %w", err)
	}
	if opts.diagFormat != "pretty" && opts.diagFormat != "json" {
		return opts, fmt.Errorf("invalid --diag-format value %q (expected pretty|json)", opts.diagFormat)
	}
	return opts, nil
}

func (o globalOptions) useColor(w io.Writer) bool {
	return o.color == "on" || (o.color == "auto" && isTerminal(w))
}

func (o globalOptions) prettyOpts(w io.Writer) diagfmt.PrettyOpts {
	return diagfmt.PrettyOpts{
		Color:     o.useColor(w),
		PathMode:  diagfmt.PathModeAuto,
		ShowNotes: true,
		Max:       o.maxDiagnostics,
	}
}

// report writes the bag to w in the selected diagnostics format. Empty bags
// print nothing.
func (o globalOptions) report(w io.Writer, bag *diag.Bag, fs *source.FileSet) error {
	if bag == nil || bag.Len() == 0 {
		return nil
	}
	if o.diagFormat == "json" {
		return diagfmt.JSON(w, bag, fs, diagfmt.JSONOpts{
			PathMode:         diagfmt.PathModeRelative,
			IncludePositions: true,
			IncludeNotes:     true,
			Max:              o.maxDiagnostics,
		})
	}
	diagfmt.Pretty(w, bag, fs, o.prettyOpts(w))
	return nil
}
