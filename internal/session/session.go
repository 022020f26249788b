// Package session holds the conversation model and the SessionStore
// capability the orchestrator persists through.
package session

import (
	"time"

	"github.com/google/uuid"
	"github.com/mptlab/mpt/internal/stage"
)

// Message is one turn of a conversation. Messages are append-only and
// never reordered or mutated after append.
type Message struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// NewMessage creates a message with a fresh id and the given timestamp.
func NewMessage(role, content string, at time.Time) Message {
	return Message{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		Timestamp: at,
	}
}

// Session is one end-to-end conversation instance. Session and its State
// share identical lifetime: created together, evicted together.
type Session struct {
	ID           string      `json:"id"`
	ScenarioID   string      `json:"scenarioId,omitempty"`
	ScenarioName string      `json:"scenarioName,omitempty"`
	ScriptID     string      `json:"scriptId,omitempty"`
	ScriptName   string      `json:"scriptName,omitempty"`
	Messages     []Message   `json:"messages"`
	Phase        string      `json:"phase"`
	CreatedAt    time.Time   `json:"createdAt"`
	State        stage.State `json:"state"`
}

// New creates a session with a fresh id, the initial stage state, and
// the phase label derived from it.
func New(at time.Time) *Session {
	st := stage.NewState()
	return &Session{
		ID:        uuid.NewString(),
		Messages:  []Message{},
		Phase:     stage.Name(st.CurrentStage),
		CreatedAt: at,
		State:     st,
	}
}

// Append adds a turn to the conversation history.
func (s *Session) Append(m Message) {
	s.Messages = append(s.Messages, m)
}
