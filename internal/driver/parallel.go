package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"glint/internal/ast"
	"glint/internal/diag"
	"glint/internal/pipeline"
	"glint/internal/source"
	"glint/internal/trace"
)

// SourceExt is the extension of glint source files.
const SourceExt = ".gl"

// DirOptions extends Options with the knobs of a multi-file run.
type DirOptions struct {
	Options
	// Jobs is the worker count; 0 means GOMAXPROCS.
	Jobs     int
	Progress pipeline.ProgressSink
	// Cache, when set, skips files whose content is unchanged.
	Cache *DiskCache
}

// ParseDirResult is the outcome for one file.
type ParseDirResult struct {
	Path    string
	FileID  source.FileID
	Builder *ast.Builder // nil when cached or unreadable
	ASTFile ast.FileID
	Bag     *diag.Bag
	Err     error
	Nodes   int
	Cached  bool
	Elapsed time.Duration
}

// Broken reports whether the file failed to load or parse.
func (r *ParseDirResult) Broken() bool {
	return r.Err != nil || r.Bag.HasErrors()
}

// ListSourceFiles returns every *.gl file under dir, sorted.
func ListSourceFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, SourceExt) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

// ParseDir parses every *.gl file under dir in parallel.
// Results follow the sorted file order regardless of scheduling.
func ParseDir(ctx context.Context, dir string, opts DirOptions) (*source.FileSet, []ParseDirResult, error) {
	files, err := ListSourceFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	fileSet := source.NewFileSetWithBase(dir)
	results, err := parseFiles(ctx, fileSet, files, opts)
	return fileSet, results, err
}

// parseFiles preloads every file into fileSet sequentially, then lexes and
// parses them on an errgroup bounded by opts.Jobs.
func parseFiles(ctx context.Context, fileSet *source.FileSet, files []string, opts DirOptions) ([]ParseDirResult, error) {
	if len(files) == 0 {
		return nil, nil
	}

	tracer := trace.FromContext(ctx)
	parent := trace.CurrentSpan(ctx).SpanID

	// FileSet is not safe for concurrent writes: load everything up front.
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))
	for _, path := range files {
		fileID, err := fileSet.Load(path)
		if err != nil {
			// empty placeholder so the IO diagnostic has a file
			fileID = fileSet.AddVirtual(path, nil)
			loadErrors[path] = err
		}
		fileIDs[path] = fileID
	}

	displayBase := fileSet.BaseDir()
	if abs, err := filepath.Abs(displayBase); err == nil && displayBase != "" {
		displayBase = abs
	}
	display := func(path string) string { return pipeline.DisplayPath(path, displayBase) }

	queued := make([]string, len(files))
	for i, path := range files {
		queued[i] = display(path)
	}
	pipeline.EmitQueued(opts.Progress, queued)

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// each goroutine owns its own index
	results := make([]ParseDirResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			started := time.Now()
			bag := diag.NewBag(opts.MaxDiagnostics)
			res := &results[i]
			res.Path = path
			res.Bag = bag

			res.FileID = fileIDs[path]
			if loadErr, hadError := loadErrors[path]; hadError {
				bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{File: res.FileID}, "failed to load file: "+loadErr.Error()))
				res.Err = loadErr
				pipeline.Emit(opts.Progress, pipeline.Event{File: display(path), Stage: pipeline.StageParse, Status: pipeline.StatusError, Err: loadErr})
				return nil
			}

			file := fileSet.Get(res.FileID)
			span := trace.Begin(tracer, trace.ScopeFile, "check "+display(path), parent)

			if opts.Cache != nil && lookupCached(opts, file, res) {
				res.Elapsed = time.Since(started)
				span.WithExtra("cached", "true").End("")
				pipeline.Emit(opts.Progress, pipeline.Event{File: display(path), Stage: pipeline.StageCache, Status: pipeline.StatusCached, Elapsed: res.Elapsed})
				return nil
			}

			pipeline.Emit(opts.Progress, pipeline.Event{File: display(path), Stage: pipeline.StageParse, Status: pipeline.StatusWorking})

			builder := ast.NewBuilder(ast.Hints{}, nil)
			fctx := trace.WithSpanContext(gctx, trace.SpanContext{SpanID: span.ID()})
			astFile, parseErr := parseSource(fctx, file, builder, opts.Options, opts.reporter(bag))
			if parseErr != nil && gctx.Err() != nil {
				span.End("cancelled")
				return gctx.Err()
			}
			res.Builder = builder
			res.ASTFile = astFile
			res.Err = parseErr
			if parseErr == nil {
				res.Nodes = len(builder.Files.Get(astFile).Nodes)
			}
			res.Elapsed = time.Since(started)

			status := pipeline.StatusDone
			if parseErr != nil {
				status = pipeline.StatusError
			}
			if opts.Cache != nil {
				if err := opts.Cache.Put(cacheKey(file, opts.Options), toDiskPayload(file, res.Nodes, parseErr != nil, bag)); err != nil {
					bag.Add(diag.New(diag.SevWarning, diag.IOCacheError, source.Span{File: file.ID}, "failed to write cache: "+err.Error()))
				}
			}
			span.End(string(status))
			pipeline.Emit(opts.Progress, pipeline.Event{File: display(path), Stage: pipeline.StageParse, Status: status, Err: parseErr, Elapsed: res.Elapsed})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

// lookupCached fills res from the disk cache; false on miss or unreadable entry.
func lookupCached(opts DirOptions, file *source.File, res *ParseDirResult) bool {
	var payload DiskPayload
	ok, err := opts.Cache.Get(cacheKey(file, opts.Options), &payload)
	if err != nil {
		res.Bag.Add(diag.New(diag.SevWarning, diag.IOCacheError, source.Span{File: file.ID}, "ignoring unreadable cache entry: "+err.Error()))
		return false
	}
	if !ok || payload.ContentHash != file.Hash {
		return false
	}
	restoreDiagnostics(&payload, file.ID, opts.reporter(res.Bag))
	res.Cached = true
	res.Nodes = payload.Nodes
	if payload.Broken {
		res.Err = cachedFailure(file, res.Bag)
	}
	return true
}
