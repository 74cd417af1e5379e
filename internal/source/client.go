// Package source fetches raw field-note rows from the upstream table API.
package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/starford/laguz/internal/apperr"
	"github.com/starford/laguz/internal/models"
)

// Client reads one fixed table from the upstream API. The table is
// read-only from our side: one GET, no query parameters, no retries.
type Client struct {
	httpClient *http.Client
	baseURL    string
	tableID    string
}

// NewClient creates a client for the given API base URL and table id.
func NewClient(baseURL, tableID string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		tableID:    tableID,
	}
}

// FetchRecords retrieves the full table. Any non-2xx status or non-array
// body is a fetch failure. Non-object rows decode to nil records, which
// downstream filtering excludes.
func (c *Client) FetchRecords(ctx context.Context) ([]models.RawRecord, error) {
	url := fmt.Sprintf("%s/v1/table/%s", c.baseURL, c.tableID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-store")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: HTTP %d", apperr.ErrUnavailable, resp.StatusCode)
	}

	var rows []any
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrBadPayload, err)
	}

	records := make([]models.RawRecord, len(rows))
	for i, row := range rows {
		if obj, ok := row.(map[string]any); ok {
			records[i] = models.RawRecord(obj)
		}
	}
	return records, nil
}
