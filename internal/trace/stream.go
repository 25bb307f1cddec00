package trace

import (
	"bufio"
	"io"
	"sync"
)

// StreamTracer writes each event as soon as it is emitted.
type StreamTracer struct {
	mu     sync.Mutex
	w      *bufio.Writer
	closer io.Closer // nil when the writer is not owned
	level  Level
	format Format
}

// NewStreamTracer writes to w; w is never closed by the tracer.
func NewStreamTracer(w io.Writer, level Level, format Format) *StreamTracer {
	return &StreamTracer{w: bufio.NewWriter(w), level: level, format: format}
}

// newOwnedStreamTracer closes w on Close.
func newOwnedStreamTracer(w io.WriteCloser, level Level, format Format) *StreamTracer {
	t := NewStreamTracer(w, level, format)
	t.closer = w
	return t
}

func (t *StreamTracer) Emit(ev *Event) {
	if !ev.passes(t.level) {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	ev.Seq = NextSeq()
	// write errors are dropped
	_, _ = t.w.Write(FormatEvent(ev, t.format)) //nolint:errcheck
	if ev.Kind != KindSpanBegin {
		_ = t.w.Flush() //nolint:errcheck
	}
}

func (t *StreamTracer) Flush() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.w.Flush()
}

func (t *StreamTracer) Close() error {
	err := t.Flush()
	if t.closer != nil {
		if cerr := t.closer.Close(); err == nil {
			err = cerr
		}
		t.closer = nil
	}
	return err
}

func (t *StreamTracer) Level() Level { return t.level }

func (t *StreamTracer) Enabled() bool { return t.level > LevelOff }
