package project

import (
	"cmp"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ManifestName is the file that marks a project root.
const ManifestName = "glint.toml"

// FindManifest walks up from startDir to the nearest glint.toml. A missing
// manifest is not an error: ok is false and check falls back to plain directories.
func FindManifest(startDir string) (path string, ok bool, err error) {
	dir, err := filepath.Abs(cmp.Or(startDir, "."))
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for ; ; dir = filepath.Dir(dir) {
		path = filepath.Join(dir, ManifestName)
		_, statErr := os.Stat(path)
		switch {
		case statErr == nil:
			return path, true, nil
		case !errors.Is(statErr, os.ErrNotExist):
			return "", false, fmt.Errorf("failed to stat %q: %w", path, statErr)
		case filepath.Dir(dir) == dir:
			return "", false, nil
		}
	}
}
