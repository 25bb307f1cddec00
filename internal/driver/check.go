package driver

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"glint/internal/diag"
	"glint/internal/observ"
	"glint/internal/pipeline"
	"glint/internal/source"
	"glint/internal/trace"
)

// CheckOptions configures Check.
type CheckOptions struct {
	DirOptions
	// BaseDir is where displayed paths are relative to, usually the project root.
	BaseDir string
	OnPhase PhaseObserver
}

// CheckResult aggregates a multi-directory run.
type CheckResult struct {
	FileSet *source.FileSet
	Files   []ParseDirResult
	// Bag holds every file's diagnostics, merged, sorted and deduplicated.
	Bag     *diag.Bag
	Timings pipeline.Timings
	Report  observ.Report
}

// Failed counts files that failed to load or parse.
func (r *CheckResult) Failed() int {
	n := 0
	for i := range r.Files {
		if r.Files[i].Broken() {
			n++
		}
	}
	return n
}

// CachedCount counts files served from the disk cache.
func (r *CheckResult) CachedCount() int {
	n := 0
	for i := range r.Files {
		if r.Files[i].Cached {
			n++
		}
	}
	return n
}

// Check parses every .gl file under dirs, reusing cached outcomes for files
// whose content did not change.
func Check(ctx context.Context, dirs []string, opts CheckOptions) (*CheckResult, error) {
	span := trace.Begin(trace.FromContext(ctx), trace.ScopeDriver, "check", trace.CurrentSpan(ctx).SpanID)
	defer span.End("")
	ctx = trace.WithSpanContext(ctx, trace.SpanContext{SpanID: span.ID()})

	timer := observ.NewTimer()
	tracer := trace.FromContext(ctx)
	phase := func(name string, fn func(ctx context.Context) error) error {
		opts.OnPhase.start(name)
		ps := trace.Begin(tracer, trace.ScopePhase, name, span.ID())
		pctx := trace.WithSpanContext(ctx, trace.SpanContext{SpanID: ps.ID()})
		elapsed, err := timer.Measure(name, func() error { return fn(pctx) })
		ps.End("")
		opts.OnPhase.end(name, elapsed)
		return err
	}

	base := opts.BaseDir
	if base == "" && len(dirs) == 1 {
		base = dirs[0]
	}
	fileSet := source.NewFileSetWithBase(base)

	var files []string
	err := phase("discover", func(context.Context) error {
		seen := make(map[string]struct{})
		for _, dir := range dirs {
			found, err := ListSourceFiles(dir)
			if err != nil {
				return fmt.Errorf("scan %s: %w", dir, err)
			}
			for _, f := range found {
				key := filepath.Clean(f)
				if _, dup := seen[key]; dup {
					continue
				}
				seen[key] = struct{}{}
				files = append(files, f)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	var results []ParseDirResult
	err = phase("parse", func(pctx context.Context) error {
		var perr error
		results, perr = parseFiles(pctx, fileSet, files, opts.DirOptions)
		return perr
	})
	if err != nil {
		return nil, err
	}

	res := &CheckResult{FileSet: fileSet, Files: results, Bag: diag.NewBag(0)}
	_ = phase("merge", func(context.Context) error {
		for i := range results {
			r := &results[i]
			res.Bag.Merge(r.Bag)
			if r.Cached {
				res.Timings.Add(pipeline.StageCache, r.Elapsed)
			} else {
				res.Timings.Add(pipeline.StageParse, r.Elapsed)
			}
		}
		res.Bag.Dedup()
		res.Bag.Sort()
		return nil
	})
	res.Report = timer.Report()
	span.WithExtra("files", fmt.Sprint(len(results))).WithExtra("failed", fmt.Sprint(res.Failed()))
	return res, nil
}

// cachedFailure rebuilds the fail-fast error of a file whose broken outcome came from the cache.
func cachedFailure(file *source.File, bag *diag.Bag) error {
	for _, d := range bag.Items() {
		if d.Severity >= diag.SevError {
			return &diag.Error{Diag: d, Prefix: source.NewReader(file).DiagnosticPrefix(d.Primary.Start)}
		}
	}
	return errors.New(file.Path + ": cached as broken")
}
