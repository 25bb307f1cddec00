package trace

import (
	"io"
	"sync"
)

// RingTracer keeps the most recent events in memory. If constructed with a
// dump writer, Close writes the retained events there.
type RingTracer struct {
	mu     sync.Mutex
	buf    []Event
	next   int
	count  int
	level  Level
	dump   io.Writer
	format Format
}

// NewRingTracer keeps up to capacity events (4096 when capacity <= 0).
func NewRingTracer(capacity int, level Level) *RingTracer {
	if capacity <= 0 {
		capacity = 4096
	}
	return &RingTracer{buf: make([]Event, capacity), level: level}
}

// Emit stores a copy of ev, overwriting the oldest event when full.
func (t *RingTracer) Emit(ev *Event) {
	if !ev.passes(t.level) {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	stored := *ev
	stored.Seq = NextSeq()
	t.buf[t.next] = stored
	t.next = (t.next + 1) % len(t.buf)
	t.count = min(t.count+1, len(t.buf))
}

// Snapshot returns the retained events, oldest first.
func (t *RingTracer) Snapshot() []Event {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Event, 0, t.count)
	start := (t.next - t.count + len(t.buf)) % len(t.buf)
	for i := range t.count {
		out = append(out, t.buf[(start+i)%len(t.buf)])
	}
	return out
}

// Dump writes the retained events to w.
func (t *RingTracer) Dump(w io.Writer, format Format) error {
	for _, ev := range t.Snapshot() {
		if _, err := w.Write(FormatEvent(&ev, format)); err != nil {
			return err
		}
	}
	return nil
}

func (t *RingTracer) Flush() error { return nil }

// Close dumps to the configured writer, if any, and closes it when owned.
func (t *RingTracer) Close() error {
	if t.dump == nil {
		return nil
	}
	err := t.Dump(t.dump, t.format)
	if c, ok := t.dump.(io.Closer); ok && !isStdStream(t.dump) {
		if cerr := c.Close(); err == nil {
			err = cerr
		}
	}
	t.dump = nil
	return err
}

func (t *RingTracer) Level() Level { return t.level }

func (t *RingTracer) Enabled() bool { return t.level > LevelOff }
