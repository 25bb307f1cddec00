package source

import (
	"crypto/sha256"
	"fmt"
	"os"

	"fortio.org/safecast"
)

// FileSet owns the sources of one run. Files are appended, never removed;
// once loading is done the set is read-only and may be shared by goroutines.
type FileSet struct {
	files   []File
	byPath  map[string]FileID // newest version of each path
	baseDir string
}

// NewFileSet returns an empty set whose paths display relative to the working directory.
func NewFileSet() *FileSet {
	return NewFileSetWithBase("")
}

// NewFileSetWithBase returns an empty set displaying paths relative to baseDir.
func NewFileSetWithBase(baseDir string) *FileSet {
	return &FileSet{byPath: make(map[string]FileID), baseDir: baseDir}
}

// BaseDir returns the display base, falling back to the working directory.
func (fileSet *FileSet) BaseDir() string {
	if fileSet.baseDir != "" {
		return fileSet.baseDir
	}
	wd, err := os.Getwd()
	if err != nil {
		return ""
	}
	return wd
}

func (fileSet *FileSet) Len() int { return len(fileSet.files) }

// Add registers content under path and returns a fresh FileID, even when
// path was added before; Lookup then resolves to the newest one.
func (fileSet *FileSet) Add(path string, content []byte, flags FileFlags) FileID {
	path = normalizePath(path)
	if _, err := safecast.Conv[uint32](len(content)); err != nil {
		panic(fmt.Errorf("file %s is too large: %w", path, err))
	}
	n, err := safecast.Conv[uint32](len(fileSet.files))
	if err != nil {
		panic(fmt.Errorf("too many files: %w", err))
	}
	id := FileID(n)
	fileSet.files = append(fileSet.files, File{
		ID:      id,
		Path:    path,
		Content: content,
		LineIdx: buildLineIndex(content),
		Hash:    sha256.Sum256(content),
		Flags:   flags,
	})
	fileSet.byPath[path] = id
	return id
}

// Load reads path from disk, strips or transcodes a byte-order mark,
// folds CRLF to LF, and adds the result.
func (fileSet *FileSet) Load(path string) (FileID, error) {
	// #nosec G304 -- path is provided by the caller
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	content, flags, err := decodeBOM(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}
	content, folded := normalizeCRLF(content)
	if folded {
		flags |= FileNormalizedCRLF
	}
	return fileSet.Add(path, content, flags), nil
}

// AddVirtual adds in-memory content (tests, stdin, placeholders).
func (fileSet *FileSet) AddVirtual(name string, content []byte) FileID {
	return fileSet.Add(name, content, FileVirtual)
}

// Get returns the file for id; id must come from this set.
func (fileSet *FileSet) Get(id FileID) *File {
	return &fileSet.files[id]
}

// Lookup returns the newest FileID registered for path.
func (fileSet *FileSet) Lookup(path string) (FileID, bool) {
	id, ok := fileSet.byPath[normalizePath(path)]
	return id, ok
}

// Resolve converts both ends of span to line/column pairs.
func (fileSet *FileSet) Resolve(span Span) (start, end LineCol) {
	f := fileSet.Get(span.File)
	return f.Position(span.Start), f.Position(span.End)
}
