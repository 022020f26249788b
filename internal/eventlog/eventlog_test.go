package eventlog

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestAppendWritesJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.jsonl")
	l, err := New(path)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	events := []Event{
		{Event: EventSessionCreated, SessionID: "s1"},
		{Event: EventStageAdvanced, SessionID: "s1", Stage: "request-validation"},
		{Event: EventChatFailed, SessionID: "s1", Error: "rate limit"},
	}
	for _, e := range events {
		if err := l.Append(e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open log: %v", err)
	}
	defer f.Close()

	var got []Event
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var e Event
		if err := json.Unmarshal(sc.Bytes(), &e); err != nil {
			t.Fatalf("malformed line %q: %v", sc.Text(), err)
		}
		got = append(got, e)
	}

	if len(got) != len(events) {
		t.Fatalf("line count = %d, want %d", len(got), len(events))
	}
	for i, e := range events {
		if got[i].Event != e.Event || got[i].SessionID != e.SessionID {
			t.Fatalf("line %d = %+v, want %+v", i, got[i], e)
		}
		if got[i].Time.IsZero() {
			t.Fatalf("line %d has no timestamp", i)
		}
	}
	if got[2].Error != "rate limit" {
		t.Fatalf("error field = %q", got[2].Error)
	}
}

func TestAppendPreservesExplicitTime(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.jsonl")
	l, err := New(path)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	if err := l.Append(Event{Time: at, Event: EventChatStarted}); err != nil {
		t.Fatalf("append: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	var e Event
	if err := json.Unmarshal(data, &e); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !e.Time.Equal(at) {
		t.Fatalf("time = %s, want %s", e.Time, at)
	}
}

func TestNewCreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "events.jsonl")
	l, err := New(path)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := l.Append(Event{Event: EventChatCompleted}); err != nil {
		t.Fatalf("append: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("log file missing: %v", err)
	}
}

func TestNilLoggerIsNoOp(t *testing.T) {
	var l *Logger
	if err := l.Append(Event{Event: EventChatStarted}); err != nil {
		t.Fatalf("nil logger returned error: %v", err)
	}
}
