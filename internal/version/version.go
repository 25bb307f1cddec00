package version

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Version information for the glint CLI.
// These variables can be overridden at build time via -ldflags.
var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

var (
	versionMajorColor = color.New(color.FgYellow, color.Bold)
	versionMinorColor = color.New(color.FgGreen, color.Bold)
	versionPatchColor = color.New(color.FgBlue, color.Bold)
)

// Colorized renders Version with each numeric component in its own colour.
// Pre-release and build suffixes are left plain.
func Colorized(enabled bool) string {
	core, suffix := Version, ""
	if i := strings.IndexAny(core, "-+"); i >= 0 {
		core, suffix = core[:i], core[i:]
	}
	parts := strings.SplitN(core, ".", 3)
	if len(parts) != 3 {
		return Version
	}
	paint := func(c *color.Color, s string) string {
		if !enabled {
			return s
		}
		c.EnableColor()
		return c.Sprint(s)
	}
	return fmt.Sprintf("%s.%s.%s%s",
		paint(versionMajorColor, parts[0]),
		paint(versionMinorColor, parts[1]),
		paint(versionPatchColor, parts[2]),
		suffix)
}
