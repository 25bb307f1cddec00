package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestParseLevelAndShouldEmit(t *testing.T) {
	lvl, err := ParseLevel("detail")
	if err != nil || lvl != LevelDetail {
		t.Fatalf("ParseLevel: %v, %v", lvl, err)
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
	if !LevelPhase.ShouldEmit(ScopePhase) || LevelPhase.ShouldEmit(ScopeFile) {
		t.Fatal("phase level must stop at phase scope")
	}
	if !LevelDebug.ShouldEmit(ScopeNode) {
		t.Fatal("debug level must emit node scope")
	}
	if LevelError.ShouldEmit(ScopeDriver) || LevelOff.ShouldEmit(ScopeDriver) {
		t.Fatal("error and off levels emit nothing live")
	}
	if lvl, err := ParseLevel("DEBUG"); err != nil || lvl != LevelDebug {
		t.Fatalf("ParseLevel is case-insensitive: %v, %v", lvl, err)
	}
}

func TestParseMode(t *testing.T) {
	for _, name := range []string{"stream", "Ring", "BOTH"} {
		if _, err := ParseMode(name); err != nil {
			t.Errorf("ParseMode(%q): %v", name, err)
		}
	}
	if _, err := ParseMode("disk"); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestNewRingDumpsOnClose(t *testing.T) {
	var out bytes.Buffer
	tr, err := New(Config{Level: LevelPhase, Mode: ModeRing, Output: &out, RingSize: 8})
	if err != nil {
		t.Fatal(err)
	}
	Begin(tr, ScopeDriver, "check", 0).End("")
	if out.Len() != 0 {
		t.Fatal("ring must not write before Close")
	}
	if err := tr.Close(); err != nil {
		t.Fatal(err)
	}
	if strings.Count(out.String(), "check") != 2 {
		t.Fatalf("dump:\n%s", out.String())
	}
}

func TestNewOffIsNop(t *testing.T) {
	tr, err := New(Config{Level: LevelOff, Mode: ModeStream})
	if err != nil || tr != Nop {
		t.Fatalf("New(off) = %v, %v", tr, err)
	}
}

func TestHeartbeat(t *testing.T) {
	r := NewRingTracer(16, LevelPhase)
	hb := StartHeartbeat(r, time.Millisecond)
	deadline := time.Now().Add(2 * time.Second)
	for len(r.Snapshot()) == 0 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	hb.Stop()
	hb.Stop()
	snap := r.Snapshot()
	if len(snap) == 0 || snap[0].Kind != KindHeartbeat || snap[0].Detail != "#1" {
		t.Fatalf("heartbeat events = %+v", snap)
	}
	if StartHeartbeat(Nop, time.Millisecond) != nil {
		t.Fatal("heartbeat on Nop must be nil")
	}
	var nilBeat *Heartbeat
	nilBeat.Stop()
}

func TestStreamTracerText(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelDetail, FormatText)
	span := Begin(tr, ScopeFile, "parse main.gl", 0)
	span.WithExtra("nodes", "3").End("ok")
	Begin(tr, ScopeNode, "too detailed", 0).End("")

	out := buf.String()
	if !strings.Contains(out, "[file] → parse main.gl") || !strings.Contains(out, "← parse main.gl (ok)") || !strings.Contains(out, "{nodes=3}") {
		t.Fatalf("unexpected text trace:\n%s", out)
	}
	if strings.Contains(out, "too detailed") {
		t.Fatal("node scope must be filtered at detail level")
	}
}

func TestStreamTracerNDJSON(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelPhase, FormatNDJSON)
	Point(tr, ScopePhase, "lex", "12 tokens", 0)

	var ev map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &ev); err != nil {
		t.Fatalf("invalid NDJSON %q: %v", buf.String(), err)
	}
	if ev["kind"] != "point" || ev["name"] != "lex" || ev["detail"] != "12 tokens" {
		t.Fatalf("unexpected event %v", ev)
	}
}

func TestRingTracerWraps(t *testing.T) {
	r := NewRingTracer(2, LevelDebug)
	for _, name := range []string{"a", "b", "c"} {
		Point(r, ScopeDriver, name, "", 0)
	}
	snap := r.Snapshot()
	if len(snap) != 2 || snap[0].Name != "b" || snap[1].Name != "c" {
		t.Fatalf("snapshot = %+v", snap)
	}
	var buf bytes.Buffer
	if err := r.Dump(&buf, FormatText); err != nil {
		t.Fatal(err)
	}
	if strings.Count(buf.String(), "\n") != 2 {
		t.Fatalf("dump:\n%s", buf.String())
	}
}

func TestContextPropagation(t *testing.T) {
	if FromContext(context.Background()) != Nop {
		t.Fatal("empty context must yield Nop")
	}
	r := NewRingTracer(4, LevelDebug)
	ctx := WithTracer(context.Background(), r)
	if FromContext(ctx) != Tracer(r) {
		t.Fatal("tracer not propagated")
	}
	if Begin(Nop, ScopeDriver, "x", 0).End("") != 0 {
		t.Fatal("nop span must report zero duration")
	}
}

func TestSlogTracerFanout(t *testing.T) {
	var console, file bytes.Buffer
	logger := NewLogger(&console, &file, slog.LevelDebug)
	tr := NewMultiTracer(LevelDetail, NewSlogTracer(logger, LevelDetail), NewRingTracer(8, LevelDetail))

	Begin(tr, ScopePhase, "parse", 0).End("done")

	if !strings.Contains(console.String(), "msg=parse") || !strings.Contains(console.String(), "detail=done") {
		t.Fatalf("console log:\n%s", console.String())
	}
	lines := strings.Split(strings.TrimSpace(file.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected begin+end JSON records, got:\n%s", file.String())
	}
	var rec map[string]any
	if err := json.Unmarshal([]byte(lines[1]), &rec); err != nil {
		t.Fatal(err)
	}
	if rec["level"] != "INFO" || rec["kind"] != "end" {
		t.Fatalf("unexpected record %v", rec)
	}
}
