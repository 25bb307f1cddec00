package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"glint/internal/version"
)

type versionPayload struct {
	Tool      string `json:"tool"`
	Version   string `json:"version"`
	GitCommit string `json:"git_commit,omitempty"`
	BuildDate string `json:"build_date,omitempty"`
}

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show glint build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := cmd.Flags().GetString("format")
			if err != nil {
				return fmt.Errorf("failed to get format flag: %w", err)
			}
			global, err := readGlobalOptions(cmd)
			if err != nil {
				return err
			}
			switch strings.ToLower(format) {
			case "json":
				return renderVersionJSON(cmd.OutOrStdout())
			case "pretty":
				return renderVersionPretty(cmd.OutOrStdout(), global.useColor(cmd.OutOrStdout()))
			default:
				return fmt.Errorf("unsupported format %q (must be pretty or json)", format)
			}
		},
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	return cmd
}

func renderVersionPretty(out io.Writer, color bool) error {
	if _, err := fmt.Fprintf(out, "glint %s\n", version.Colorized(color)); err != nil {
		return err
	}
	if commit := strings.TrimSpace(version.GitCommit); commit != "" {
		if _, err := fmt.Fprintf(out, "commit: %s\n", commit); err != nil {
			return err
		}
	}
	if date := strings.TrimSpace(version.BuildDate); date != "" {
		if _, err := fmt.Fprintf(out, "built:  %s\n", date); err != nil {
			return err
		}
	}
	return nil
}

func renderVersionJSON(out io.Writer) error {
	payload := versionPayload{
		Tool:      "glint",
		Version:   version.Version,
		GitCommit: strings.TrimSpace(version.GitCommit),
		BuildDate: strings.TrimSpace(version.BuildDate),
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}
