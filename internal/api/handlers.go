package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"sync/atomic"

	"github.com/starford/laguz/internal/feed"
	"github.com/starford/laguz/internal/overlay"
)

// MobileBreakpoint is the viewport width below which text overlays open
// as a bottom sheet instead of a dialog.
const MobileBreakpoint = 768

// ViewportHeader carries the client viewport width on overlay commands.
const ViewportHeader = "X-Viewport-Width"

const defaultViewportWidth = 1024

// Handler holds the feed session surface: the controller with the cached
// note set and cursor, and the overlay dispatcher keyed to the last
// reported viewport width.
type Handler struct {
	ctrl  *feed.Controller
	disp  *overlay.Dispatcher
	width atomic.Int64
}

// NewHandler creates a Handler around the session controller. effects may
// be nil when the host has no scroll or focus to manage.
func NewHandler(ctrl *feed.Controller, effects overlay.Effects) *Handler {
	h := &Handler{ctrl: ctrl}
	h.width.Store(defaultViewportWidth)
	h.disp = overlay.NewDispatcher(effects, func() bool {
		return h.width.Load() < MobileBreakpoint
	})
	return h
}

// GetFeed handles GET /feed.
func (h *Handler) GetFeed(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.ctrl.Snapshot())
}

// LoadFeed handles POST /feed/load, the (re)load entry point. A fetch
// failure is not an HTTP error: the snapshot carries the retryable failed
// state for the UI to render.
func (h *Handler) LoadFeed(w http.ResponseWriter, r *http.Request) {
	if err := h.ctrl.Load(r.Context()); err != nil {
		slog.Error("feed load failed", slog.String("error", err.Error()))
	}
	writeJSON(w, http.StatusOK, h.ctrl.Snapshot())
}

// SetFacets handles PUT /feed/facets.
func (h *Handler) SetFacets(w http.ResponseWriter, r *http.Request) {
	var req FacetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	if err := h.ctrl.SetFacets(req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, h.ctrl.Snapshot())
}

// LoadMore handles POST /feed/more.
func (h *Handler) LoadMore(w http.ResponseWriter, _ *http.Request) {
	h.ctrl.LoadMore()
	writeJSON(w, http.StatusOK, h.ctrl.Snapshot())
}

// OpenOverlay handles POST /overlay/open. The client reports its viewport
// width per request so the dialog-vs-sheet choice is made at activation
// time, never cached.
func (h *Handler) OpenOverlay(w http.ResponseWriter, r *http.Request) {
	if raw := r.Header.Get(ViewportHeader); raw != "" {
		if width, err := strconv.Atoi(raw); err == nil && width > 0 {
			h.width.Store(int64(width))
		}
	}
	var req OpenOverlayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	view := h.disp.Activate(req)
	writeJSON(w, http.StatusOK, OverlayState{Open: true, View: &view})
}

// CloseOverlay handles POST /overlay/close.
func (h *Handler) CloseOverlay(w http.ResponseWriter, _ *http.Request) {
	h.disp.Close()
	writeJSON(w, http.StatusOK, OverlayState{Open: false})
}

// GetOverlay handles GET /overlay.
func (h *Handler) GetOverlay(w http.ResponseWriter, _ *http.Request) {
	view := h.disp.Current()
	writeJSON(w, http.StatusOK, OverlayState{Open: view != nil, View: view})
}

// Dispatcher exposes the overlay dispatcher for collaborators that route
// key and backdrop events directly.
func (h *Handler) Dispatcher() *overlay.Dispatcher {
	return h.disp
}
