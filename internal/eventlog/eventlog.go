// Package eventlog appends structured session events to a JSONL file.
package eventlog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Event type constants.
const (
	EventSessionCreated = "session_created"
	EventChatStarted    = "chat_started"
	EventStageAdvanced  = "stage_advanced"
	EventProviderSwitch = "provider_switch"
	EventChatCompleted  = "chat_completed"
	EventChatFailed     = "chat_failed"
)

// Event is a single structured event written to the log.
type Event struct {
	Time      time.Time `json:"time"`
	Event     string    `json:"event"`
	SessionID string    `json:"session,omitempty"`
	Stage     string    `json:"stage,omitempty"`
	Scenario  string    `json:"scenario,omitempty"`
	Provider  string    `json:"provider,omitempty"`
	Error     string    `json:"error,omitempty"`
}

// Logger writes append-only JSONL events to a file. A nil *Logger is a
// no-op, so wiring it is optional.
type Logger struct {
	path string
	mu   sync.Mutex
}

// New creates a Logger writing to path, creating parent directories as
// needed. An existing log file is never truncated.
func New(path string) (*Logger, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create event log directory: %w", err)
		}
	}
	return &Logger{path: path}, nil
}

// Append writes a single event as one JSON line. A zero event time is
// set to time.Now().UTC().
func (l *Logger) Append(event Event) error {
	if l == nil {
		return nil
	}
	if event.Time.IsZero() {
		event.Time = time.Now().UTC()
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open event log: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write event: %w", err)
	}
	return nil
}
