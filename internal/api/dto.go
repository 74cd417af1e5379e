package api

import (
	"github.com/starford/laguz/internal/feed"
	"github.com/starford/laguz/internal/models"
	"github.com/starford/laguz/internal/overlay"
)

// FeedSnapshot is the feed surface response (aliased from the domain layer).
type FeedSnapshot = feed.Snapshot

// FacetRequest is the request body for changing facets.
type FacetRequest = models.FacetState

// OpenOverlayRequest is the request body for a card activation.
type OpenOverlayRequest = models.CardActivation

// OverlayState reports which overlay, if any, is open.
type OverlayState struct {
	Open bool          `json:"open"`
	View *overlay.View `json:"view,omitempty"`
}
