package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/mptlab/mpt/internal/catalog"
	"github.com/mptlab/mpt/internal/stage"
)

// Handler exposes the HTTP surface of the session gateway.
type Handler struct {
	Service *ChatService
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Chat handles POST /api/chat: validates the request, switches the
// response to event streaming, and delegates to the chat service.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":   "invalid request",
			"details": []fieldError{{Field: "body", Message: "malformed JSON"}},
		})
		return
	}

	if errs := validateChatRequest(req); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":   "invalid request",
			"details": errs,
		})
		return
	}

	sink, ok := newEventWriter(w)
	if !ok {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "streaming unsupported"})
		return
	}

	if err := h.Service.Chat(r.Context(), req, sink); err != nil {
		log.Printf("chat %s: %v", req.SessionID, err)
		_ = sink.Send(errorFrame{Type: frameError, Message: err.Error()})
	}
}

func validateChatRequest(req ChatRequest) []fieldError {
	var errs []fieldError
	if strings.TrimSpace(req.Message) == "" {
		errs = append(errs, fieldError{Field: "message", Message: "message is required"})
	}
	if req.ScenarioID != "" {
		if _, ok := catalog.FindScenario(req.ScenarioID); !ok {
			errs = append(errs, fieldError{Field: "scenarioId", Message: "unknown scenario"})
		}
	}
	return errs
}

type newSessionRequest struct {
	ScenarioID string `json:"scenarioId,omitempty"`
}

// NewSession handles POST /api/sessions/new.
func (h *Handler) NewSession(w http.ResponseWriter, r *http.Request) {
	var req newSessionRequest
	if r.Body != nil {
		// An empty body means no scenario preselected.
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	sess := h.Service.NewSession(req.ScenarioID)

	writeJSON(w, http.StatusOK, map[string]any{
		"sessionId":    sess.ID,
		"scenarioId":   sess.ScenarioID,
		"scenarioName": sess.ScenarioName,
		"scriptId":     sess.ScriptID,
		"scriptName":   sess.ScriptName,
		"phase":        sess.Phase,
		"currentStage": sess.State.CurrentStage,
		"stageName":    stage.Name(sess.State.CurrentStage),
	})
}

// Scenarios handles GET /api/scenarios: the static catalog, verbatim.
func (h *Handler) Scenarios(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, catalog.Scenarios)
}

// Stages handles GET /api/stages: the stage catalog display metadata.
func (h *Handler) Stages(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, stage.Catalog())
}

// Health handles GET /health.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(payload)
}
