// Package feed owns the session state of the field-notes pipeline: the
// fetched note cache, the facet selection, and the pagination cursor.
package feed

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/starford/laguz/internal/models"
	"github.com/starford/laguz/internal/normalize"
)

// Source abstracts the upstream table fetcher.
type Source interface {
	FetchRecords(ctx context.Context) ([]models.RawRecord, error)
}

// Cache memoizes the normalized, filtered, sorted note set for the
// lifetime of one session. The note set is populated at most once; a
// failed fetch leaves it unset so a later call can retry.
type Cache struct {
	src Source
	sf  singleflight.Group

	mu    sync.RWMutex
	notes []models.Note // nil until the first successful fetch
}

// NewCache creates a session cache over the given source.
func NewCache(src Source) *Cache {
	return &Cache{src: src}
}

// GetNotes returns the cached note set, performing exactly one upstream
// fetch across concurrent callers. On fetch failure it logs, returns an
// empty slice for this call, and keeps the cache unset.
func (c *Cache) GetNotes(ctx context.Context) ([]models.Note, error) {
	c.mu.RLock()
	if c.notes != nil {
		defer c.mu.RUnlock()
		return c.notes, nil
	}
	c.mu.RUnlock()

	v, err, _ := c.sf.Do("notes", func() (any, error) {
		// A flight that completed between the check above and here has
		// already populated the cache.
		c.mu.RLock()
		if c.notes != nil {
			defer c.mu.RUnlock()
			return c.notes, nil
		}
		c.mu.RUnlock()

		records, err := c.src.FetchRecords(ctx)
		if err != nil {
			return nil, err
		}
		notes := normalize.EligibleNotes(records)

		c.mu.Lock()
		c.notes = notes
		c.mu.Unlock()
		return notes, nil
	})
	if err != nil {
		slog.Error("field notes fetch failed", slog.String("error", err.Error()))
		return []models.Note{}, err
	}
	return v.([]models.Note), nil
}

// Loaded reports whether a successful fetch has populated the cache.
func (c *Cache) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.notes != nil
}
