package feed

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/starford/laguz/internal/models"
)

// stubSource counts fetches and can be made to block or fail.
type stubSource struct {
	records   []models.RawRecord
	err       error
	calls     atomic.Int32
	started   chan struct{} // if non-nil, closed when the first fetch begins
	release   chan struct{} // if non-nil, FetchRecords blocks until closed
	startOnce sync.Once
}

func (s *stubSource) FetchRecords(ctx context.Context) ([]models.RawRecord, error) {
	s.calls.Add(1)
	if s.started != nil {
		s.startOnce.Do(func() { close(s.started) })
	}
	if s.release != nil {
		<-s.release
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.records, nil
}

func TestGetNotes_SingleFlight(t *testing.T) {
	src := &stubSource{
		records: []models.RawRecord{{"Title": "A", "Public": true}},
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	c := NewCache(src)

	const callers = 8
	var wg sync.WaitGroup
	results := make([][]models.Note, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			notes, err := c.GetNotes(context.Background())
			if err != nil {
				t.Errorf("caller %d: %v", i, err)
			}
			results[i] = notes
		}(i)
	}
	// Let the callers pile onto the in-flight fetch, then let it finish.
	<-src.started
	close(src.release)
	wg.Wait()

	if got := src.calls.Load(); got != 1 {
		t.Fatalf("upstream calls = %d, want 1", got)
	}
	for i, notes := range results {
		if len(notes) != 1 || notes[0].Title != "A" {
			t.Errorf("caller %d saw %+v", i, notes)
		}
	}
}

func TestGetNotes_FailureStaysRetryable(t *testing.T) {
	src := &stubSource{err: errors.New("boom")}
	c := NewCache(src)

	notes, err := c.GetNotes(context.Background())
	if err == nil {
		t.Fatal("expected fetch error")
	}
	if len(notes) != 0 {
		t.Fatalf("failed fetch returned %d notes", len(notes))
	}
	if c.Loaded() {
		t.Fatal("cache must stay unset after a failure")
	}

	// A later attempt succeeds and populates the cache.
	src.err = nil
	src.records = []models.RawRecord{{"Title": "B", "Public": "yes"}}
	notes, err = c.GetNotes(context.Background())
	if err != nil {
		t.Fatalf("retry: %v", err)
	}
	if len(notes) != 1 || notes[0].Title != "B" {
		t.Fatalf("retry notes = %+v", notes)
	}
	if !c.Loaded() {
		t.Fatal("cache should be populated after the retry")
	}
}

func TestGetNotes_SecondCallUsesCache(t *testing.T) {
	src := &stubSource{records: []models.RawRecord{{"Title": "A", "Public": true}}}
	c := NewCache(src)

	if _, err := c.GetNotes(context.Background()); err != nil {
		t.Fatal(err)
	}
	if _, err := c.GetNotes(context.Background()); err != nil {
		t.Fatal(err)
	}
	if got := src.calls.Load(); got != 1 {
		t.Fatalf("upstream calls = %d, want 1", got)
	}
}
