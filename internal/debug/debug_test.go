package debug

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestDebugDisabled(t *testing.T) {
	// Ensure debug is disabled
	SetEnabled(false)
	defer SetEnabled(false)

	var buf bytes.Buffer
	sink := NewJSONSink(&buf)
	session := NewSession(sink)

	// Should return nil when disabled
	if session != nil {
		t.Error("NewSession should return nil when disabled")
	}

	// Emit should be no-op on nil session
	session.Emit("test", "Event", nil)

	if buf.Len() > 0 {
		t.Error("Events emitted when debug disabled")
	}
}

func TestDebugEnabled(t *testing.T) {
	SetEnabled(true)
	defer SetEnabled(false)

	var buf bytes.Buffer
	sink := NewJSONSink(&buf)
	session := NewSession(sink)

	if session == nil {
		t.Fatal("NewSession should return non-nil when enabled")
	}

	// Emit test event
	session.Emit("scan", "Escape", EscapeData{
		Row:     0,
		Col:     3,
		Digits:  "65",
		Code:    65,
		SpanLen: 3,
		Custom:  true,
	})

	if err := session.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	// Parse and verify JSON lines
	output := buf.String()
	lines := strings.Split(strings.TrimSpace(output), "\n")

	if len(lines) < 3 { // Start, Escape, End
		t.Fatalf("Expected at least 3 lines, got %d", len(lines))
	}

	// Verify first event is session start
	var startEvent Event
	if err := json.Unmarshal([]byte(lines[0]), &startEvent); err != nil {
		t.Fatalf("Failed to parse start event: %v", err)
	}
	if startEvent.Phase != "session" || startEvent.Event != "Start" {
		t.Errorf("Expected session/Start, got %s/%s", startEvent.Phase, startEvent.Event)
	}

	// Verify escape event
	var escEvent Event
	if err := json.Unmarshal([]byte(lines[1]), &escEvent); err != nil {
		t.Fatalf("Failed to parse escape event: %v", err)
	}
	if escEvent.Phase != "scan" || escEvent.Event != "Escape" {
		t.Errorf("Expected scan/Escape, got %s/%s", escEvent.Phase, escEvent.Event)
	}
	if escEvent.SessionID == "" {
		t.Error("Session ID should not be empty")
	}

	// Verify last event is session end
	var endEvent Event
	if err := json.Unmarshal([]byte(lines[len(lines)-1]), &endEvent); err != nil {
		t.Fatalf("Failed to parse end event: %v", err)
	}
	if endEvent.Phase != "session" || endEvent.Event != "End" {
		t.Errorf("Expected session/End, got %s/%s", endEvent.Phase, endEvent.Event)
	}
}

func TestPrettySink(t *testing.T) {
	SetEnabled(true)
	defer SetEnabled(false)

	var buf bytes.Buffer
	sink := NewPrettySink(&buf)
	session := NewSession(sink)
	if session == nil {
		t.Fatal("NewSession should return non-nil when enabled")
	}

	session.Emit("render", "Start", RenderStartData{
		Rows:       2,
		Cols:       16,
		LineCount:  1,
		FontGlyphs: 95,
	})
	if err := session.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "[render/Start]") {
		t.Errorf("Pretty output missing event header: %q", output)
	}
	if !strings.Contains(output, "grid: 2x16") {
		t.Errorf("Pretty output missing grid line: %q", output)
	}
}

func TestSessionIDUnique(t *testing.T) {
	SetEnabled(true)
	defer SetEnabled(false)

	var buf bytes.Buffer
	a := NewSession(NewJSONSink(&buf))
	b := NewSession(NewJSONSink(&buf))
	if a.SessionID() == b.SessionID() {
		t.Errorf("Session IDs should differ, both %q", a.SessionID())
	}
}

func TestNilSessionSafe(t *testing.T) {
	var s *Session
	if s.SessionID() != "" {
		t.Error("nil session should return empty ID")
	}
	s.Emit("x", "Y", nil)
	if err := s.Close(); err != nil {
		t.Errorf("nil session Close should be nil error, got %v", err)
	}
}
