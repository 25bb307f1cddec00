package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"glint/internal/diagfmt"
	"glint/internal/driver"
)

func newTokenizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokenize [flags] file.gl",
		Short: "Tokenize a glint source file",
		Long:  `Tokenize breaks down a glint source file into its constituent tokens`,
		Args:  cobra.ExactArgs(1),
		RunE:  runTokenize,
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	return cmd
}

func runTokenize(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}
	global, err := readGlobalOptions(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	result, err := driver.Tokenize(ctx, filePath, driver.Options{
		MaxDiagnostics: global.maxDiagnostics,
		Reporter:       diagReporter(ctx),
	})
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	if err := global.report(cmd.ErrOrStderr(), result.Bag, result.FileSet); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if format == "json" {
		err = diagfmt.FormatTokensJSON(out, result.Tokens)
	} else {
		err = diagfmt.FormatTokensPretty(out, result.Tokens, result.FileSet)
	}
	if err != nil {
		return err
	}
	if result.Err != nil {
		return errReported
	}
	return nil
}
