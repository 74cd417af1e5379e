package normalize

import (
	"sort"
	"strings"

	"github.com/starford/laguz/internal/models"
)

// visibilityField marks a row as publishable.
const visibilityField = "Public"

// affirmative is the full vocabulary of values that count as published.
// Table authors have used booleans, numbers, words, and checkmark glyphs
// interchangeably; everything outside this set fails closed.
var affirmative = map[string]struct{}{
	"true":    {},
	"yes":     {},
	"y":       {},
	"1":       {},
	"checked": {},
	"on":      {},
	"✅":       {},
	"✔":       {},
	"✔︎":      {},
}

// IsPublic reports whether a visibility value marks a row as published.
// Absent, empty, and ambiguous values are never public.
func IsPublic(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case float64:
		return t == 1
	case int:
		return t == 1
	case string:
		s := strings.ToLower(strings.TrimSpace(t))
		_, ok := affirmative[s]
		return ok
	}
	return false
}

// EligibleNotes filters rows to published entries, normalizes them, and
// sorts newest first. Rows without a parseable timestamp sort last, and
// ties keep their source order.
func EligibleNotes(rows []models.RawRecord) []models.Note {
	notes := make([]models.Note, 0, len(rows))
	for _, r := range rows {
		if r == nil || !IsPublic(r[visibilityField]) {
			continue
		}
		notes = append(notes, Normalize(r))
	}
	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].Timestamp.After(notes[j].Timestamp)
	})
	return notes
}
