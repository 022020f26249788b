package api

import (
	"net/http"
)

func NewRouter(handler *Handler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/chat", handler.Chat)
	mux.HandleFunc("POST /api/sessions/new", handler.NewSession)
	mux.HandleFunc("GET /api/scenarios", handler.Scenarios)
	mux.HandleFunc("GET /api/stages", handler.Stages)
	mux.HandleFunc("GET /health", handler.Health)

	return mux
}
