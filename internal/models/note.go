// Package models defines the domain types for Laguz.
package models

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// RawRecord is one row of the upstream table: an open, weakly-typed
// mapping from field name to string, number, boolean, nil, a URL-bearing
// object, or a list of such values.
type RawRecord map[string]any

// Note is the normalized, immutable representation of one published
// field-note entry.
type Note struct {
	Title     string    `json:"title"`
	Kind      string    `json:"kind"`
	Excerpt   string    `json:"excerpt,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	// RawDate keeps the upstream date value verbatim so an unparsable
	// timestamp can still be displayed as-is.
	RawDate  string `json:"raw_date,omitempty"`
	URL      string `json:"url,omitempty"`
	MediaURL string `json:"media_url,omitempty"`
	HasMedia bool   `json:"has_media"`
	IsVideo  bool   `json:"is_video"`
}

// Facet values accepted for the date-range dimension.
const (
	DateRangeAll     = "all"
	DateRangeMonth   = "month"
	DateRangeQuarter = "quarter"
	DateRangeYear    = "year"
)

// TypeAll selects every kind in the type dimension.
const TypeAll = "all"

// FacetState is the user-selected filter state applied to the cached
// note set. It is session-scoped and never persisted.
type FacetState struct {
	Type      string `json:"type"`
	DateRange string `json:"date_range"`
}

// DefaultFacets returns the unfiltered facet state.
func DefaultFacets() FacetState {
	return FacetState{Type: TypeAll, DateRange: DateRangeAll}
}

// Validate checks the facet state. The type dimension accepts any observed
// kind, so only presence is enforced; the date range has a fixed vocabulary.
func (f FacetState) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Type, validation.Required),
		validation.Field(&f.DateRange, validation.Required,
			validation.In(DateRangeAll, DateRangeMonth, DateRangeQuarter, DateRangeYear)),
	)
}

// Card activation variants.
const (
	VariantText  = "text"
	VariantMedia = "media"
)

// CardActivation is the payload a card emits when selected. It carries
// everything the overlay layer needs to rebuild the detail view without
// touching the feed again.
type CardActivation struct {
	Variant  string `json:"variant"`
	Title    string `json:"title"`
	Kind     string `json:"kind"`
	Date     string `json:"date"`
	Excerpt  string `json:"excerpt,omitempty"`
	URL      string `json:"url,omitempty"`
	MediaURL string `json:"media_url,omitempty"`
	IsVideo  bool   `json:"is_video"`
}
