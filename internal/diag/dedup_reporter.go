package diag

import (
	"sync"

	"glint/internal/source"
)

type dedupKey struct {
	code Code
	sev  Severity
	span source.Span
	msg  string
}

func keyOf(code Code, sev Severity, span source.Span, msg string) dedupKey {
	return dedupKey{code: code, sev: sev, span: span, msg: msg}
}

// DedupReporter forwards each distinct diagnostic once. The parallel driver
// shares one across workers, so it is guarded by a mutex.
type DedupReporter struct {
	next Reporter

	mu   sync.Mutex
	seen map[dedupKey]struct{}
}

func NewDedupReporter(next Reporter) *DedupReporter {
	return &DedupReporter{next: next, seen: map[dedupKey]struct{}{}}
}

// firstSeen records k and reports whether it was new.
func (r *DedupReporter) firstSeen(k dedupKey) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.seen[k]; ok {
		return false
	}
	r.seen[k] = struct{}{}
	return true
}

func (r *DedupReporter) Report(code Code, sev Severity, primary source.Span, msg string, notes []Note) {
	if r == nil || r.next == nil {
		return
	}
	if r.firstSeen(keyOf(code, sev, primary, msg)) {
		r.next.Report(code, sev, primary, msg, notes)
	}
}
