package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// NewRouter mounts the API routes. Everything except login requires a
// verified session.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/login", h.handleLogin)

	r.Group(func(r chi.Router) {
		r.Use(h.requireSession)
		r.Get("/protected", h.handleProtected)
		r.Get("/cat_lucky/get_status", h.handleGetStatus)
		r.Post("/cat_lucky/play_stage", h.handlePlayStage)
	})

	return r
}
