package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"glint/internal/driver"
	"glint/internal/pipeline"
	"glint/internal/project"
)

// cacheApp names the cache directory under $XDG_CACHE_HOME.
const cacheApp = "glint"

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [flags] [directory]",
		Short: "Parse every glint source of a project and report diagnostics",
		Long: `Check parses all *.gl files of the project in parallel. Without an argument
the directories listed in glint.toml [build].sources are scanned.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCheck,
	}
	cmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	cmd.Flags().Bool("no-cache", false, "do not read or write the result cache")
	cmd.Flags().Bool("clear-cache", false, "drop the result cache before checking")
	cmd.Flags().String("ui", "auto", "progress UI (auto|on|off)")
	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	global, err := readGlobalOptions(cmd)
	if err != nil {
		return err
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return fmt.Errorf("failed to get no-cache flag: %w", err)
	}
	clearCache, err := cmd.Flags().GetBool("clear-cache")
	if err != nil {
		return fmt.Errorf("failed to get clear-cache flag: %w", err)
	}
	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(uiValue)
	if err != nil {
		return err
	}

	startDir := "."
	if len(args) == 1 {
		startDir = args[0]
	}
	manifest, found, err := project.LoadManifest(startDir)
	if err != nil {
		return err
	}

	dirs, baseDir := []string{startDir}, startDir
	cacheEnabled := !noCache
	if found {
		baseDir = manifest.Root
		if len(args) == 0 {
			dirs = manifest.SourceDirs()
		}
		// explicit flags win over the manifest
		if !cmd.Flag("max-diagnostics").Changed {
			global.maxDiagnostics = manifest.Config.Diagnostics.Max
		}
		if !cmd.Flag("color").Changed {
			global.color = manifest.Config.Diagnostics.Color
		}
		cacheEnabled = cacheEnabled && manifest.Config.Cache.Enabled
	}

	ctx := cmd.Context()
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
	logger := loggerFrom(ctx)

	var cache *driver.DiskCache
	if cacheEnabled || clearCache {
		cache, err = driver.OpenDiskCache(cacheApp)
		if err != nil {
			if !global.quiet {
				fmt.Fprintf(errOut, "warning: cache disabled: %v\n", err)
			}
			cache = nil
		}
	}
	if clearCache && cache != nil {
		if err := cache.DropAll(); err != nil {
			return fmt.Errorf("failed to clear cache: %w", err)
		}
	}
	if !cacheEnabled {
		cache = nil
	}

	opts := driver.CheckOptions{
		DirOptions: driver.DirOptions{
			Options: driver.Options{
				MaxDiagnostics: global.maxDiagnostics,
				Reporter:       diagReporter(ctx),
			},
			Jobs:  jobs,
			Cache: cache,
		},
		BaseDir: baseDir,
	}
	if logger != nil {
		opts.OnPhase = func(ev driver.PhaseEvent) {
			if ev.Status == driver.PhaseEnd {
				logger.Debug("phase done", slog.String("phase", ev.Name), slog.Duration("elapsed", ev.Elapsed))
			}
		}
	}

	var res *driver.CheckResult
	if !global.quiet && shouldUseTUI(mode, out) {
		files, listErr := listCheckFiles(dirs)
		if listErr != nil {
			return listErr
		}
		res, err = runCheckWithUI(ctx, out, "check", pipeline.DisplayFiles(files, baseDir), dirs, opts)
	} else {
		res, err = driver.Check(ctx, dirs, opts)
	}
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	if err := global.report(errOut, res.Bag, res.FileSet); err != nil {
		return err
	}
	if !global.quiet {
		fmt.Fprintf(out, "checked %d files (%d cached), %d failed\n", len(res.Files), res.CachedCount(), res.Failed())
	}
	if global.timings {
		if err := printStageTimings(out, res.Timings); err != nil {
			return err
		}
		if err := printPhaseReport(out, res.Report); err != nil {
			return err
		}
	}
	if res.Failed() > 0 {
		return errReported
	}
	return nil
}

func listCheckFiles(dirs []string) ([]string, error) {
	var files []string
	for _, dir := range dirs {
		if _, err := os.Stat(dir); err != nil {
			return nil, fmt.Errorf("scan %s: %w", dir, err)
		}
		found, err := driver.ListSourceFiles(dir)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", dir, err)
		}
		files = append(files, found...)
	}
	return files, nil
}
