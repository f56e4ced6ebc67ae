package rest

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Router builds the API router with all endpoints and middleware
func (h *Handler) Router() http.Handler {
	r := mux.NewRouter()

	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware(h.logger))

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/init", h.Init).Methods(http.MethodGet)
	api.HandleFunc("/guess", h.Guess).Methods(http.MethodPost)
	api.HandleFunc("/leaderboard", h.Leaderboard).Methods(http.MethodGet)
	api.HandleFunc("/players", h.Players).Methods(http.MethodGet)

	// Non-production operation, absent unless debug mode is on
	if h.debug {
		api.HandleFunc("/debug/reset", h.Reset).Methods(http.MethodPost)
	}

	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)

	return r
}
