package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/starford/laguz/internal/feed"
	"github.com/starford/laguz/internal/overlay"
)

// NewRouter creates a chi router with the feed session surface mounted.
// authEnabled controls whether Bearer token auth is enforced.
func NewRouter(ctrl *feed.Controller, effects overlay.Effects, authEnabled bool, token string) chi.Router {
	h := NewHandler(ctrl, effects)

	r := chi.NewRouter()
	r.Use(AuthMiddleware(authEnabled, token))

	// Feed surface.
	r.Get("/feed", h.GetFeed)
	r.Post("/feed/load", h.LoadFeed)
	r.Put("/feed/facets", h.SetFacets)
	r.Post("/feed/more", h.LoadMore)

	// Overlay lifecycle.
	r.Get("/overlay", h.GetOverlay)
	r.Post("/overlay/open", h.OpenOverlay)
	r.Post("/overlay/close", h.CloseOverlay)

	return r
}
