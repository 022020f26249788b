package api

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/mptlab/mpt/internal/catalog"
	"github.com/mptlab/mpt/internal/classify"
	"github.com/mptlab/mpt/internal/eventlog"
	"github.com/mptlab/mpt/internal/prompt"
	"github.com/mptlab/mpt/internal/provider"
	"github.com/mptlab/mpt/internal/session"
	"github.com/mptlab/mpt/internal/stage"
	"github.com/mptlab/mpt/internal/stream"
)

// failureNotice is appended to the transcript when a model call fails,
// so the client always sees something at the done/error boundary.
const failureNotice = "Произошла ошибка. Пожалуйста, попробуй ещё раз."

// ChatRequest is the body of POST /api/chat.
type ChatRequest struct {
	Message    string `json:"message"`
	SessionID  string `json:"sessionId,omitempty"`
	ScenarioID string `json:"scenarioId,omitempty"`
}

// ChatService orchestrates one client turn: resolve the session, run the
// classifiers, accumulate context, decide the stage transition, compose
// the prompt, stream the model call through the think-tag filter, and
// persist the updated session.
type ChatService struct {
	Store   session.Store
	Gateway *provider.Gateway
	Base    string
	Events  *eventlog.Logger
	Clock   func() time.Time

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewChatService wires a service with the standard base prompt and clock.
func NewChatService(store session.Store, gateway *provider.Gateway, events *eventlog.Logger) *ChatService {
	return &ChatService{
		Store:   store,
		Gateway: gateway,
		Base:    catalog.BasePrompt,
		Events:  events,
		Clock:   time.Now,
		locks:   make(map[string]*sync.Mutex),
	}
}

// lockSession serializes concurrent requests for the same session id.
func (s *ChatService) lockSession(id string) func() {
	s.mu.Lock()
	l, ok := s.locks[id]
	if !ok {
		l = &sync.Mutex{}
		s.locks[id] = l
	}
	s.mu.Unlock()

	l.Lock()
	return l.Unlock
}

// NewSession creates and stores a fresh session, optionally bound to an
// explicit scenario.
func (s *ChatService) NewSession(scenarioID string) *session.Session {
	sess := s.buildSession("", scenarioID)
	s.Store.Put(sess)
	_ = s.Events.Append(eventlog.Event{
		Event:     eventlog.EventSessionCreated,
		SessionID: sess.ID,
		Scenario:  sess.ScenarioID,
	})
	return sess
}

func (s *ChatService) buildSession(message, scenarioID string) *session.Session {
	sess := session.New(s.Clock())

	if scenarioID != "" {
		if sc, ok := catalog.FindScenario(scenarioID); ok {
			sess.ScenarioID, sess.ScenarioName = sc.ID, sc.Name
		}
	} else if message != "" {
		if sc, ok := classify.DetectScenario(message); ok {
			sess.ScenarioID, sess.ScenarioName = sc.ID, sc.Name
		}
	}

	script := catalog.SelectScript(message, sess.ScenarioID)
	sess.ScriptID, sess.ScriptName = script.ID, script.Name

	if message != "" {
		sess.State.RequestType = classify.DetectRequestType(message)
		sess.State.Context.OriginalRequest = message
	}
	return sess
}

// Chat handles one client turn and emits the response as event frames on
// sink. A returned error means the stream must terminate with an error
// frame; any partial content has already been persisted.
func (s *ChatService) Chat(ctx context.Context, req ChatRequest, sink FrameSink) error {
	now := s.Clock()

	var sess *session.Session
	if req.SessionID != "" {
		if existing, ok := s.Store.Get(req.SessionID); ok {
			sess = existing
		}
	}
	if sess == nil {
		sess = s.buildSession(req.Message, req.ScenarioID)
		s.Store.Put(sess)
		_ = s.Events.Append(eventlog.Event{
			Event:     eventlog.EventSessionCreated,
			SessionID: sess.ID,
			Scenario:  sess.ScenarioID,
		})
	}

	unlock := s.lockSession(sess.ID)
	defer unlock()

	sess.Append(session.NewMessage("user", req.Message, now))

	// Scenario and script may still be undetected if the session was
	// created without a first message.
	if sess.ScenarioID == "" {
		if sc, ok := classify.DetectScenario(req.Message); ok {
			sess.ScenarioID, sess.ScenarioName = sc.ID, sc.Name
		}
	}
	if sess.ScriptID == "" {
		script := catalog.SelectScript(req.Message, sess.ScenarioID)
		sess.ScriptID, sess.ScriptName = script.ID, script.Name
	}

	st := &sess.State
	st.LastClientResponse = req.Message
	st.ClientSaysIDontKnow = classify.DetectIDontKnow(req.Message)
	st.StageResponseCount++

	st.Context.Criteria.Merge(classify.DetectRequestCriteria(req.Message))
	st.Context.Somatic.Merge(classify.DetectSomaticDescriptors(req.Message))

	history := make([]classify.Turn, 0, len(sess.Messages))
	for _, m := range sess.Messages {
		history = append(history, classify.Turn{Role: m.Role, Content: m.Content})
	}
	if name := classify.ExtractClientName(history); name != "" {
		st.Context.ClientName = name
	}

	if rating, ok := classify.ExtractImportanceRating(req.Message); ok {
		st.ImportanceRating = &rating
	}

	stage.CaptureContext(st, req.Message)

	authorship := classify.TransformToAuthorship(req.Message)

	if stage.ShouldAdvance(*st) {
		*st = stage.Advance(*st)
		_ = s.Events.Append(eventlog.Event{
			Event:     eventlog.EventStageAdvanced,
			SessionID: sess.ID,
			Stage:     string(st.CurrentStage),
		})
	}

	var scenario *catalog.Scenario
	if sess.ScenarioID != "" {
		if sc, ok := catalog.FindScenario(sess.ScenarioID); ok {
			scenario = &sc
		}
	}

	systemPrompt := prompt.Compose(prompt.Input{
		Base:       s.Base,
		State:      *st,
		Scenario:   scenario,
		Authorship: authorship,
	})

	messages := make([]provider.Message, 0, len(sess.Messages)+1)
	messages = append(messages, provider.Message{Role: "system", Content: systemPrompt})
	for _, m := range sess.Messages {
		messages = append(messages, provider.Message{Role: m.Role, Content: m.Content})
	}

	decision := s.Gateway.Decide(sess.ID)

	if err := sink.Send(metaFrame{
		Type:         frameMeta,
		SessionID:    sess.ID,
		ScenarioID:   sess.ScenarioID,
		ScenarioName: sess.ScenarioName,
		ScriptID:     sess.ScriptID,
		ScriptName:   sess.ScriptName,
		CurrentStage: st.CurrentStage,
		StageName:    stage.Name(st.CurrentStage),
		Provider:     decision.Provider(),
	}); err != nil {
		return err
	}
	_ = s.Events.Append(eventlog.Event{
		Event:     eventlog.EventChatStarted,
		SessionID: sess.ID,
		Stage:     string(st.CurrentStage),
		Provider:  decision.Provider(),
	})

	filter := stream.NewFilter()
	var visible strings.Builder

	streamErr := s.Gateway.Stream(ctx, sess.ID, decision, messages, provider.Events{
		OnDelta: func(delta string) error {
			out := filter.Feed(delta)
			if out == "" {
				return nil
			}
			visible.WriteString(out)
			return sink.Send(chunkFrame{Type: frameChunk, Content: out})
		},
		OnInfo: func(message string) {
			_ = sink.Send(infoFrame{Type: frameInfo, Message: message})
		},
		OnSwitch: func(p string) {
			_ = sink.Send(providerSwitchFrame{Type: frameProviderSwitch, Provider: p})
			_ = s.Events.Append(eventlog.Event{
				Event:     eventlog.EventProviderSwitch,
				SessionID: sess.ID,
				Provider:  p,
			})
		},
	})

	if tail := filter.Flush(); tail != "" {
		visible.WriteString(tail)
		if err := sink.Send(chunkFrame{Type: frameChunk, Content: tail}); err != nil && streamErr == nil {
			streamErr = err
		}
	}

	if streamErr != nil {
		_ = s.Events.Append(eventlog.Event{
			Event:     eventlog.EventChatFailed,
			SessionID: sess.ID,
			Error:     streamErr.Error(),
		})
		// Partial output already reached the client; persist it with the
		// failure notice so transcript and screen stay in sync.
		if visible.Len() > 0 {
			sess.Append(session.NewMessage("assistant", visible.String()+"\n\n"+failureNotice, s.Clock()))
			sess.Phase = stage.Name(st.CurrentStage)
			s.Store.Put(sess)
		}
		return streamErr
	}

	content := visible.String()
	if content == "" {
		content = failureNotice
	}
	sess.Append(session.NewMessage("assistant", content, s.Clock()))
	sess.Phase = stage.Name(st.CurrentStage)
	s.Store.Put(sess)

	_ = s.Events.Append(eventlog.Event{
		Event:     eventlog.EventChatCompleted,
		SessionID: sess.ID,
		Stage:     string(st.CurrentStage),
	})

	return sink.Send(doneFrame{
		Type:         frameDone,
		Phase:        sess.Phase,
		CurrentStage: st.CurrentStage,
		StageName:    stage.Name(st.CurrentStage),
	})
}
