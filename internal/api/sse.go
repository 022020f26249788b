package api

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// FrameSink receives the JSON event frames of one chat stream.
type FrameSink interface {
	Send(v any) error
}

// eventWriter writes named JSON event frames in SSE format and flushes
// after every frame so increments reach the client immediately.
type eventWriter struct {
	w http.ResponseWriter
	f http.Flusher
}

// newEventWriter prepares the response for event streaming: headers
// disable caching and proxy buffering and declare the event-stream
// content type. Returns false when the writer cannot stream.
func newEventWriter(w http.ResponseWriter) (*eventWriter, bool) {
	f, ok := w.(http.Flusher)
	if !ok {
		return nil, false
	}

	h := w.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no")

	return &eventWriter{w: w, f: f}, true
}

func (e *eventWriter) Send(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal frame: %w", err)
	}
	if _, err := fmt.Fprintf(e.w, "data: %s\n\n", data); err != nil {
		return err
	}
	e.f.Flush()
	return nil
}
