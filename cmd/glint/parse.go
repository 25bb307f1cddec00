package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"glint/internal/diagfmt"
	"glint/internal/driver"
	"glint/internal/source"
)

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [flags] <file.gl|directory>",
		Short: "Parse a glint source file or directory and output AST",
		Long:  `Parse analyzes a glint source file or all *.gl files in a directory and outputs their syntax trees`,
		Args:  cobra.ExactArgs(1),
		RunE:  runParse,
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json|tree)")
	cmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	return cmd
}

func runParse(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "pretty", "json", "tree":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	global, err := readGlobalOptions(cmd)
	if err != nil {
		return err
	}

	st, err := os.Stat(filePath)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}
	ctx := cmd.Context()
	opts := driver.Options{
		MaxDiagnostics: global.maxDiagnostics,
		Reporter:       diagReporter(ctx),
	}
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()

	if !st.IsDir() {
		result, err := driver.Parse(ctx, filePath, opts)
		if err != nil {
			return fmt.Errorf("parsing failed: %w", err)
		}
		if err := global.report(errOut, result.Bag, result.FileSet); err != nil {
			return err
		}
		if result.Err != nil {
			return errReported
		}
		switch format {
		case "json":
			return diagfmt.FormatASTJSON(out, result.Builder, result.FileID)
		case "tree":
			return diagfmt.FormatASTTree(out, result.Builder, result.FileID, result.FileSet)
		default:
			return diagfmt.FormatASTPretty(out, result.Builder, result.FileID, result.FileSet)
		}
	}

	// directory
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	fs, results, err := driver.ParseDir(ctx, filePath, driver.DirOptions{Options: opts, Jobs: jobs})
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	failed := false
	for i := range results {
		r := &results[i]
		if err := global.report(errOut, r.Bag, fs); err != nil {
			return err
		}
		failed = failed || r.Broken()
	}

	if format == "json" {
		output := make(map[string]*diagfmt.ASTNodeOutput, len(results))
		for i := range results {
			r := &results[i]
			if r.Err != nil || r.Builder == nil {
				output[displayPath(fs, r)] = nil
				continue
			}
			file := r.Builder.Files.Get(r.ASTFile)
			node := diagfmt.ASTNodeOutput{Type: "File", Span: file.Span}
			for _, id := range file.Nodes {
				node.Children = append(node.Children, diagfmt.BuildASTNodeOutput(r.Builder, id))
			}
			output[displayPath(fs, r)] = &node
		}
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(output); err != nil {
			return err
		}
	} else {
		for i := range results {
			if err := writeDirEntry(out, fs, &results[i], format, global.quiet, i < len(results)-1); err != nil {
				return err
			}
		}
	}
	if failed {
		return errReported
	}
	return nil
}

func writeDirEntry(out io.Writer, fs *source.FileSet, r *driver.ParseDirResult, format string, quiet, more bool) error {
	if !quiet {
		if _, err := fmt.Fprintf(out, "== %s ==\n", displayPath(fs, r)); err != nil {
			return err
		}
	}
	if r.Err == nil && r.Builder != nil {
		var err error
		if format == "tree" {
			err = diagfmt.FormatASTTree(out, r.Builder, r.ASTFile, fs)
		} else {
			err = diagfmt.FormatASTPretty(out, r.Builder, r.ASTFile, fs)
		}
		if err != nil {
			return err
		}
	}
	if !quiet && more {
		if _, err := fmt.Fprintln(out); err != nil {
			return err
		}
	}
	return nil
}

func displayPath(fs *source.FileSet, r *driver.ParseDirResult) string {
	return fs.Get(r.FileID).FormatPath("auto", fs.BaseDir())
}
