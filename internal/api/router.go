package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/starford/raido/internal/backlinks"
)

// NewRouter creates a chi router with all API routes mounted.
// authEnabled controls whether Bearer token auth is enforced.
// sseHandler, if non-nil, is mounted at GET /events inside the auth group.
func NewRouter(svc *backlinks.Service, authEnabled bool, token string, sseHandler http.Handler) chi.Router {
	h := NewHandler(svc)

	r := chi.NewRouter()
	r.Use(AuthMiddleware(authEnabled, token))

	// Backlink queries.
	r.Get("/backlinks/{target}", h.GetBacklinks)
	r.Get("/backlinks/{target}/hits", h.GetBacklinkHits)

	// Vault browsing.
	r.Get("/notes", h.ListNotes)
	r.Get("/notes/*", h.GetNote)

	// SSE change notifications (protected by same auth middleware).
	if sseHandler != nil {
		r.Get("/events", sseHandler.ServeHTTP)
	}

	return r
}
