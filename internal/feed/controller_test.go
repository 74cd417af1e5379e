package feed

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/starford/laguz/internal/models"
)

func publishedRows(n int) []models.RawRecord {
	rows := make([]models.RawRecord, n)
	for i := range rows {
		rows[i] = models.RawRecord{
			"Title":     fmt.Sprintf("note-%02d", i),
			"Public":    true,
			"Published": fmt.Sprintf("2024-01-%02d", i+1),
		}
	}
	return rows
}

func loadedController(t *testing.T, rows []models.RawRecord) *Controller {
	t.Helper()
	c := NewController(NewCache(&stubSource{records: rows}), 0)
	if err := c.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return c
}

func TestLoad_SortsAndFilters(t *testing.T) {
	c := loadedController(t, []models.RawRecord{
		{"Title": "A", "Public": true, "Published": "2024-01-01"},
		{"Title": "B", "Public": "yes", "Published": "2024-06-01"},
		{"Title": "C", "Public": false, "Published": "2024-12-01"},
	})

	s := c.Snapshot()
	if s.Status != StatusReady {
		t.Fatalf("status = %q", s.Status)
	}
	if s.Total != 2 {
		t.Fatalf("total = %d, want 2 (C is unpublished)", s.Total)
	}
	if s.Cards[0].Activation.Title != "B" || s.Cards[1].Activation.Title != "A" {
		t.Errorf("order = [%s %s], want [B A]", s.Cards[0].Activation.Title, s.Cards[1].Activation.Title)
	}
	if s.Featured == nil || s.Featured.Activation.Title != "B" {
		t.Errorf("featured = %+v, want most recent note", s.Featured)
	}
	if s.Featured.Size != "l" {
		t.Errorf("featured size = %q, want l", s.Featured.Size)
	}
}

func TestLoad_FailureThenRetry(t *testing.T) {
	src := &stubSource{err: errors.New("HTTP 500")}
	c := NewController(NewCache(src), 0)

	if err := c.Load(context.Background()); err == nil {
		t.Fatal("expected load error")
	}
	s := c.Snapshot()
	if s.Status != StatusFailed {
		t.Fatalf("status = %q, want failed", s.Status)
	}
	if s.Message == "" || len(s.Cards) != 0 {
		t.Errorf("failed snapshot = %+v", s)
	}

	src.err = nil
	src.records = publishedRows(3)
	if err := c.Load(context.Background()); err != nil {
		t.Fatalf("retry: %v", err)
	}
	s = c.Snapshot()
	if s.Status != StatusReady || s.Total != 3 {
		t.Fatalf("after retry: status=%q total=%d", s.Status, s.Total)
	}
}

func TestSnapshot_PaginationFooter(t *testing.T) {
	c := loadedController(t, publishedRows(15))

	s := c.Snapshot()
	if s.Shown != 12 || s.Total != 15 {
		t.Fatalf("shown/total = %d/%d, want 12/15", s.Shown, s.Total)
	}
	if !s.Footer.Visible || s.Footer.Label != "Showing 12 of 15" {
		t.Fatalf("footer = %+v", s.Footer)
	}

	c.LoadMore()
	s = c.Snapshot()
	if s.Shown != 15 {
		t.Fatalf("shown after load-more = %d, want 15", s.Shown)
	}
	if s.Footer.Visible {
		t.Error("footer must hide once everything is shown")
	}

	// Further clicks are no-ops.
	c.LoadMore()
	c.LoadMore()
	if got := c.Snapshot().Shown; got != 15 {
		t.Errorf("shown = %d after extra clicks, want 15", got)
	}
}

func TestSetFacets_ResetsCursor(t *testing.T) {
	c := loadedController(t, publishedRows(30))
	c.LoadMore()
	if got := c.Snapshot().Shown; got != 24 {
		t.Fatalf("shown = %d, want 24", got)
	}

	if err := c.SetFacets(models.FacetState{Type: models.TypeAll, DateRange: models.DateRangeAll}); err != nil {
		t.Fatal(err)
	}
	if got := c.Snapshot().Shown; got != 12 {
		t.Errorf("shown after facet change = %d, want page size", got)
	}
}

func TestSetFacets_TypeAndNoMatch(t *testing.T) {
	c := loadedController(t, []models.RawRecord{
		{"Title": "e", "Type": "Essay", "Public": true, "Published": "2024-01-01"},
		{"Title": "p", "Type": "Photo", "Public": true, "Published": "2024-01-02"},
	})

	if err := c.SetFacets(models.FacetState{Type: "Essay", DateRange: models.DateRangeAll}); err != nil {
		t.Fatal(err)
	}
	s := c.Snapshot()
	if s.Total != 1 || s.Cards[0].Activation.Title != "e" {
		t.Fatalf("essay facet snapshot = %+v", s)
	}

	if err := c.SetFacets(models.FacetState{Type: "Recipe", DateRange: models.DateRangeAll}); err != nil {
		t.Fatal(err)
	}
	s = c.Snapshot()
	if s.Status != StatusNoMatch {
		t.Fatalf("status = %q, want no_match", s.Status)
	}
	if s.Message == statusMessages[StatusEmpty] {
		t.Error("no-match message must differ from the empty-feed message")
	}
}

func TestSetFacets_Invalid(t *testing.T) {
	c := loadedController(t, publishedRows(1))
	if err := c.SetFacets(models.FacetState{Type: "all", DateRange: "decade"}); err == nil {
		t.Fatal("invalid date range accepted")
	}
}

func TestSnapshot_EmptyFeed(t *testing.T) {
	c := loadedController(t, []models.RawRecord{{"Title": "hidden", "Public": false}})
	s := c.Snapshot()
	if s.Status != StatusEmpty {
		t.Fatalf("status = %q, want empty", s.Status)
	}
	if s.Featured != nil {
		t.Error("empty feed must not carry a featured card")
	}
}

func TestSnapshot_BeforeLoadIsLoading(t *testing.T) {
	c := NewController(NewCache(&stubSource{}), 0)
	if s := c.Snapshot(); s.Status != StatusLoading {
		t.Fatalf("status = %q, want loading", s.Status)
	}
}

func TestTypeOptionsExposedInSnapshot(t *testing.T) {
	c := loadedController(t, []models.RawRecord{
		{"Title": "a", "Type": "Photo", "Public": true},
		{"Title": "b", "Type": "Essay", "Public": true},
	})
	s := c.Snapshot()
	if len(s.TypeOptions) != 2 || s.TypeOptions[0] != "Essay" || s.TypeOptions[1] != "Photo" {
		t.Errorf("type options = %v", s.TypeOptions)
	}
}

func TestLoadKeepsUserFacetsSelectedMidFlight(t *testing.T) {
	src := &stubSource{
		records: []models.RawRecord{
			{"Title": "e", "Type": "Essay", "Public": true, "Published": "2024-01-01"},
			{"Title": "p", "Type": "Photo", "Public": true, "Published": "2024-01-02"},
		},
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	c := NewController(NewCache(src), 0)

	done := make(chan error, 1)
	go func() { done <- c.Load(context.Background()) }()
	<-src.started

	// The user narrows the type facet while the fetch is still pending.
	if err := c.SetFacets(models.FacetState{Type: "Photo", DateRange: models.DateRangeAll}); err != nil {
		t.Fatal(err)
	}
	close(src.release)
	if err := <-done; err != nil {
		t.Fatal(err)
	}

	s := c.Snapshot()
	if s.Facets.Type != "Photo" {
		t.Fatalf("late fetch clobbered facets: %+v", s.Facets)
	}
	if s.Total != 1 || s.Cards[0].Activation.Title != "p" {
		t.Errorf("active list = %+v, want the Photo note only", s.Cards)
	}
}
