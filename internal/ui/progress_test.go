package ui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"glint/internal/pipeline"
)

func TestApplyEventTracksFiles(t *testing.T) {
	m := newProgressModel("check", []string{"a.gl"}, nil)

	m.apply(pipeline.Event{File: "a.gl", Stage: pipeline.StageParse, Status: pipeline.StatusWorking})
	m.apply(pipeline.Event{File: "b.gl", Stage: pipeline.StageParse, Status: pipeline.StatusQueued})
	if len(m.rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(m.rows))
	}
	if got := m.rows[0].label(); got != "parsing" {
		t.Errorf("a.gl label = %q", got)
	}
	if got := m.percent(); got != 0.25 {
		t.Errorf("percent = %v, want 0.25", got)
	}

	m.apply(pipeline.Event{File: "a.gl", Stage: pipeline.StageParse, Status: pipeline.StatusError, Err: errors.New("a.gl:1:3: boom\nmore")})
	m.apply(pipeline.Event{File: "b.gl", Stage: pipeline.StageCache, Status: pipeline.StatusCached, Elapsed: time.Millisecond})
	finished, failed := m.counts()
	if finished != 2 || failed != 1 || m.percent() != 1.0 {
		t.Errorf("finished=%d failed=%d percent=%v", finished, failed, m.percent())
	}
	if m.rows[0].errText != "a.gl:1:3: boom" {
		t.Errorf("errText = %q", m.rows[0].errText)
	}

	view := m.View()
	for _, want := range []string{"2/2, 1 failed", "error", "boom", "cached", "1ms"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestViewAndDone(t *testing.T) {
	events := make(chan pipeline.Event)
	close(events)
	m := newProgressModel("check", []string{"x.gl"}, events)

	view := m.View()
	if !strings.Contains(view, "check 0/1") || !strings.Contains(view, "queued") {
		t.Errorf("view:\n%s", view)
	}

	msg := m.next()()
	if _, ok := msg.(doneMsg); !ok {
		t.Fatalf("closed channel must yield doneMsg, got %T", msg)
	}
	_, cmd := m.Update(msg)
	if cmd == nil || !m.done {
		t.Fatal("doneMsg must finish the model")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.Quit")
	}
	if !strings.Contains(m.View(), "done: check") {
		t.Errorf("done view:\n%s", m.View())
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short.gl", 20); got != "short.gl" {
		t.Errorf("got %q", got)
	}
	long := strings.Repeat("дир/", 10) + "файл.gl"
	got := truncate(long, 12)
	if runewidth.StringWidth(got) > 12 || !strings.HasSuffix(got, "...") {
		t.Errorf("truncate = %q (width %d)", got, runewidth.StringWidth(got))
	}
	if got := truncate("abcdef", 2); got != "ab" {
		t.Errorf("narrow truncate = %q", got)
	}
}
