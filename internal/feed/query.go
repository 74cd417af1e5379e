package feed

import (
	"sort"
	"time"

	"github.com/starford/laguz/internal/models"
)

// Date windows for the non-"all" date facets.
var dateWindows = map[string]time.Duration{
	models.DateRangeMonth:   30 * 24 * time.Hour,
	models.DateRangeQuarter: 90 * 24 * time.Hour,
	models.DateRangeYear:    365 * 24 * time.Hour,
}

// ApplyFacets filters the cached note set by the selected facets. Notes
// without a parseable timestamp are excluded from every non-"all" date
// window: with no date to rank them, they count as arbitrarily old.
func ApplyFacets(notes []models.Note, f models.FacetState, now time.Time) []models.Note {
	out := make([]models.Note, 0, len(notes))
	window, dated := dateWindows[f.DateRange]
	for _, n := range notes {
		if f.Type != models.TypeAll && n.Kind != f.Type {
			continue
		}
		if dated {
			if n.Timestamp.IsZero() || now.Sub(n.Timestamp) > window {
				continue
			}
		}
		out = append(out, n)
	}
	return out
}

// TypeOptions returns the distinct kinds observed in the note set, sorted
// so the facet options are deterministic.
func TypeOptions(notes []models.Note) []string {
	seen := make(map[string]struct{})
	for _, n := range notes {
		seen[n.Kind] = struct{}{}
	}
	opts := make([]string, 0, len(seen))
	for k := range seen {
		opts = append(opts, k)
	}
	sort.Strings(opts)
	return opts
}
