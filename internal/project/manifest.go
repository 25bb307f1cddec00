package project

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Manifest is a decoded glint.toml together with its location.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

type Config struct {
	Package     PackageConfig     `toml:"package"`
	Build       BuildConfig       `toml:"build"`
	Diagnostics DiagnosticsConfig `toml:"diagnostics"`
	Cache       CacheConfig       `toml:"cache"`
}

type PackageConfig struct {
	Name string `toml:"name"`
}

type BuildConfig struct {
	// Sources lists directories, relative to the project root, that `glint check` scans.
	Sources []string `toml:"sources"`
}

type DiagnosticsConfig struct {
	Max   int    `toml:"max"`
	Color string `toml:"color"` // auto|on|off
}

type CacheConfig struct {
	Enabled bool `toml:"enabled"`
}

// DefaultConfig is what an empty [build]/[diagnostics]/[cache] decodes to.
func DefaultConfig() Config {
	return Config{
		Build:       BuildConfig{Sources: []string{"."}},
		Diagnostics: DiagnosticsConfig{Max: 100, Color: "auto"},
		Cache:       CacheConfig{Enabled: true},
	}
}

// LoadManifest finds glint.toml above startDir and decodes it.
// ok is false when there is no manifest at all.
func LoadManifest(startDir string) (*Manifest, bool, error) {
	manifestPath, ok, err := FindManifest(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := LoadConfig(manifestPath)
	if err != nil {
		return nil, true, err
	}
	return &Manifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: cfg,
	}, true, nil
}

// LoadConfig decodes one manifest file on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") {
		return Config{}, fmt.Errorf("%s: missing [package]", path)
	}
	if !meta.IsDefined("package", "name") || strings.TrimSpace(cfg.Package.Name) == "" {
		return Config{}, fmt.Errorf("%s: missing [package].name", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%s: unknown key %s", path, undecoded[0])
	}
	switch cfg.Diagnostics.Color {
	case "auto", "on", "off":
	default:
		return Config{}, fmt.Errorf("%s: [diagnostics].color must be auto|on|off, got %q", path, cfg.Diagnostics.Color)
	}
	if cfg.Diagnostics.Max < 0 {
		return Config{}, fmt.Errorf("%s: [diagnostics].max must not be negative", path)
	}
	if len(cfg.Build.Sources) == 0 {
		cfg.Build.Sources = []string{"."}
	}
	return cfg, nil
}

// SourceDirs resolves [build].sources against the project root.
func (m *Manifest) SourceDirs() []string {
	dirs := make([]string, 0, len(m.Config.Build.Sources))
	for _, rel := range m.Config.Build.Sources {
		dirs = append(dirs, filepath.Join(m.Root, filepath.FromSlash(rel)))
	}
	return dirs
}
