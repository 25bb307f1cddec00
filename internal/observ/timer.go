package observ

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// Phase is one measured step of a run.
type Phase struct {
	Name    string
	Elapsed time.Duration
	Note    string
}

// Timer collects phase durations in completion order. Safe for concurrent use.
type Timer struct {
	now func() time.Time

	mu     sync.Mutex
	phases []Phase
}

func NewTimer() *Timer { return &Timer{now: time.Now} }

// Measure runs fn and records it under name. A failing phase keeps the error
// text as its note; the error itself is returned unchanged.
func (t *Timer) Measure(name string, fn func() error) (time.Duration, error) {
	start := t.now()
	err := fn()
	p := Phase{Name: name, Elapsed: t.now().Sub(start)}
	if err != nil {
		p.Note = err.Error()
	}
	t.mu.Lock()
	t.phases = append(t.phases, p)
	t.mu.Unlock()
	return p.Elapsed, err
}

// Phases returns a copy of the recorded phases.
func (t *Timer) Phases() []Phase {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]Phase(nil), t.phases...)
}

// PhaseReport is the JSON form of a phase.
type PhaseReport struct {
	Name       string  `json:"name"`
	DurationMS float64 `json:"duration_ms"`
	Note       string  `json:"note,omitempty"`
}

type Report struct {
	TotalMS float64       `json:"total_ms"`
	Phases  []PhaseReport `json:"phases"`
}

func (t *Timer) Report() Report {
	var r Report
	var total time.Duration
	for _, p := range t.Phases() {
		total += p.Elapsed
		r.Phases = append(r.Phases, PhaseReport{Name: p.Name, DurationMS: Millis(p.Elapsed), Note: p.Note})
	}
	r.TotalMS = Millis(total)
	return r
}

// Write prints one aligned line per phase followed by the total.
func (r Report) Write(w io.Writer) error {
	for _, p := range r.Phases {
		line := fmt.Sprintf("  %-10s %8.2f ms", p.Name, p.DurationMS)
		if p.Note != "" {
			line += " (" + p.Note + ")"
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "  %-10s %8.2f ms\n", "total", r.TotalMS)
	return err
}

func (t *Timer) Summary() string {
	var b strings.Builder
	_ = t.Report().Write(&b)
	return b.String()
}

// Millis converts d to fractional milliseconds.
func Millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
