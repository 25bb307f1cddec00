package trace

import "time"

// Kind is the type of a trace event.
type Kind uint8

const (
	KindSpanBegin Kind = iota + 1
	KindSpanEnd
	KindPoint
	// KindHeartbeat is a liveness tick; it passes every level filter.
	KindHeartbeat
)

var kindNames = [...]string{
	KindSpanBegin: "begin",
	KindSpanEnd:   "end",
	KindPoint:     "point",
	KindHeartbeat: "heartbeat",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "unknown"
}

// Scope is the granularity of an event; smaller values are coarser.
type Scope uint8

const (
	// ScopeDriver covers a whole CLI command (tokenize, parse, check).
	ScopeDriver Scope = iota + 1
	// ScopePhase covers one phase of check: discover, parse, merge.
	ScopePhase
	// ScopeFile covers the work on a single source file.
	ScopeFile
	// ScopeNode marks individual top-level nodes.
	ScopeNode
)

var scopeNames = [...]string{
	ScopeDriver: "driver",
	ScopePhase:  "phase",
	ScopeFile:   "file",
	ScopeNode:   "node",
}

func (s Scope) String() string {
	if int(s) < len(scopeNames) && scopeNames[s] != "" {
		return scopeNames[s]
	}
	return "unknown"
}

// Event is a single trace record.
type Event struct {
	Time     time.Time
	Seq      uint64 // assigned by the sink that stores or writes the event
	Kind     Kind
	Scope    Scope
	SpanID   uint64
	ParentID uint64 // 0 for roots
	Name     string // "check", "parse a.gl", "Call"
	Detail   string
	// Elapsed is set on KindSpanEnd only.
	Elapsed time.Duration
	Extra   map[string]string
}

// passes reports whether ev survives the level filter.
func (ev *Event) passes(l Level) bool {
	return ev.Kind == KindHeartbeat || l.ShouldEmit(ev.Scope)
}
