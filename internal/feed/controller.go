package feed

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/starford/laguz/internal/cards"
	"github.com/starford/laguz/internal/models"
)

// DefaultPageSize is the number of cards revealed per page.
const DefaultPageSize = 12

// Snapshot statuses, one per user-visible feed state.
const (
	StatusLoading = "loading"
	StatusReady   = "ready"
	StatusEmpty   = "empty"    // no published notes at all
	StatusNoMatch = "no_match" // facets excluded every note
	StatusFailed  = "failed"
)

var statusMessages = map[string]string{
	StatusLoading: "Loading…",
	StatusEmpty:   "No field notes yet.",
	StatusNoMatch: "No field notes match the selected filters.",
	StatusFailed:  "Could not load field notes.",
}

// Footer is the load-more affordance below the grid.
type Footer struct {
	Visible bool   `json:"visible"`
	Label   string `json:"label,omitempty"`
}

// Snapshot is everything an adapter needs to render the feed surface.
type Snapshot struct {
	Status      string            `json:"status"`
	Message     string            `json:"message,omitempty"`
	Featured    *cards.Card       `json:"featured,omitempty"`
	Cards       []cards.Card      `json:"cards"`
	TypeOptions []string          `json:"type_options"`
	Facets      models.FacetState `json:"facets"`
	Shown       int               `json:"shown"`
	Total       int               `json:"total"`
	Footer      Footer            `json:"footer"`
}

// Controller owns all mutable session state behind one mutex: the facet
// selection, the pagination cursor, and the outcome of the last load.
// The feed and the featured preview share its cache, so startup requests
// from both surfaces collapse into a single upstream call.
type Controller struct {
	cache    *Cache
	pageSize int
	now      func() time.Time

	mu       sync.Mutex
	loading  bool
	loaded   bool
	failed   bool
	notes    []models.Note
	options  []string
	facets   models.FacetState
	active   []models.Note
	revealed int
}

// NewController creates a feed controller. pageSize <= 0 selects the
// default of 12.
func NewController(cache *Cache, pageSize int) *Controller {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Controller{
		cache:    cache,
		pageSize: pageSize,
		now:      time.Now,
		facets:   models.DefaultFacets(),
	}
}

// Load is the feed entry point: it fetches (or re-reads) the cached note
// set and recomputes the active list. It re-applies whatever facet state
// the user selected while the fetch was in flight, and it never rewinds a
// cursor the user has already advanced.
func (c *Controller) Load(ctx context.Context) error {
	c.mu.Lock()
	c.loading = true
	c.mu.Unlock()

	notes, err := c.cache.GetNotes(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false
	if err != nil {
		c.failed = true
		c.loaded = false
		c.notes = nil
		c.active = nil
		return fmt.Errorf("load field notes: %w", err)
	}
	c.failed = false
	c.loaded = true
	c.notes = notes
	c.options = TypeOptions(notes)
	c.recompute(false)
	return nil
}

// SetFacets replaces the facet selection and resets the cursor to the
// first page.
func (c *Controller) SetFacets(f models.FacetState) error {
	if err := f.Validate(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.facets = f
	c.recompute(true)
	return nil
}

// Facets returns the current facet selection.
func (c *Controller) Facets() models.FacetState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.facets
}

// LoadMore reveals one more page. The cursor grows monotonically within a
// facet selection and never passes the end of the active list, so two
// clicks in the same tick cannot over-advance it.
func (c *Controller) LoadMore() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.revealed >= len(c.active) {
		return
	}
	c.revealed += c.pageSize
	if c.revealed > len(c.active) {
		c.revealed = len(c.active)
	}
}

// Snapshot renders the current session state. It is the only read path
// adapters use, so every surface shows the same counts and messages.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := Snapshot{
		Status:      StatusReady,
		Facets:      c.facets,
		TypeOptions: append([]string(nil), c.options...),
		Cards:       []cards.Card{},
	}

	switch {
	case c.loading || (!c.loaded && !c.failed):
		s.Status = StatusLoading
	case c.failed:
		s.Status = StatusFailed
	case len(c.notes) == 0:
		s.Status = StatusEmpty
	case len(c.active) == 0:
		s.Status = StatusNoMatch
	}
	s.Message = statusMessages[s.Status]
	if s.Status != StatusReady {
		return s
	}

	shown := c.revealed
	if shown > len(c.active) {
		shown = len(c.active)
	}
	s.Shown = shown
	s.Total = len(c.active)

	featured := cards.Render(c.notes[0], 0, true)
	s.Featured = &featured

	s.Cards = make([]cards.Card, shown)
	for i, n := range c.active[:shown] {
		s.Cards[i] = cards.Render(n, i, false)
	}

	if shown < len(c.active) {
		s.Footer = Footer{
			Visible: true,
			Label:   fmt.Sprintf("Showing %d of %d", shown, len(c.active)),
		}
	}
	return s
}

// recompute rebuilds the active list from the cached set and the current
// facets. resetCursor pulls the cursor back to the first page; a load
// completion keeps an already-advanced cursor intact.
func (c *Controller) recompute(resetCursor bool) {
	c.active = ApplyFacets(c.notes, c.facets, c.now())
	if resetCursor || c.revealed == 0 {
		c.revealed = c.pageSize
	}
	if c.revealed > len(c.active) && len(c.active) >= c.pageSize {
		c.revealed = len(c.active)
	}
}
