// Package testutil provides shared fixtures: a fake upstream table server
// and canned record payloads.
package testutil

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/starford/laguz/internal/feed"
	"github.com/starford/laguz/internal/source"
)

// TableID is the fixed table id test clients fetch.
const TableID = "tbl-test"

// TableClient starts a fake upstream table endpoint serving the given
// JSON body with the given status, and returns a client pointed at it.
func TableClient(t *testing.T, status int, body string) *source.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return source.NewClient(srv.URL, TableID, 5*time.Second)
}

// Controller builds a feed controller over a fake upstream serving body.
func Controller(t *testing.T, status int, body string) *feed.Controller {
	t.Helper()
	return feed.NewController(feed.NewCache(TableClient(t, status, body)), 0)
}

// PublishedRowsJSON renders n published rows, dated one day apart so the
// sort order is deterministic.
func PublishedRowsJSON(n int) string {
	rows := make([]string, n)
	for i := range rows {
		rows[i] = fmt.Sprintf(`{"Title":"note-%02d","Public":true,"Published":"2024-01-%02d"}`, i, i+1)
	}
	return "[" + strings.Join(rows, ",") + "]"
}
