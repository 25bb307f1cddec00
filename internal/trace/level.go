package trace

import (
	"fmt"
	"strings"
)

// Level controls tracing verbosity.
type Level uint8

const (
	LevelOff    Level = iota // no tracing
	LevelError               // nothing is emitted live
	LevelPhase               // driver and phase boundaries
	LevelDetail              // plus per-file spans
	LevelDebug               // plus top-level nodes
)

var levelNames = [...]string{"off", "error", "phase", "detail", "debug"}

// finest scope each level lets through; 0 means none
var levelScopes = [...]Scope{LevelPhase: ScopePhase, LevelDetail: ScopeFile, LevelDebug: ScopeNode}

func (l Level) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}
	return "unknown"
}

// ParseLevel parses a --trace-level value, case-insensitively.
func ParseLevel(s string) (Level, error) {
	for i, name := range levelNames {
		if strings.EqualFold(s, name) {
			return Level(i), nil
		}
	}
	return LevelOff, fmt.Errorf("invalid trace level: %q (expected: %s)", s, strings.Join(levelNames[:], "|"))
}

// ShouldEmit reports whether events of scope are recorded at this level.
func (l Level) ShouldEmit(scope Scope) bool {
	if int(l) >= len(levelScopes) {
		return false
	}
	finest := levelScopes[l]
	return finest != 0 && scope <= finest
}
