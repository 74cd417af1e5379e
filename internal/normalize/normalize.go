// Package normalize turns loosely-typed upstream table rows into typed notes.
//
// The upstream source is an externally authored table whose authors are not
// consistent about field names or value types, so every alias and fallback
// rule lives here and nowhere else.
package normalize

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/starford/laguz/internal/models"
)

// PlaceholderTitle is used when a row carries no usable title.
const PlaceholderTitle = "Field note"

// DefaultKind is used when a row carries no type.
const DefaultKind = "Note"

// Field aliases, first non-empty wins.
var (
	titleFields     = []string{"Title", "Name"}
	excerptFields   = []string{"Excerpt", "Text", "Content"}
	timestampFields = []string{"Published", "Date", "Created"}
	linkFields      = []string{"__url", "URL", "Url", "Link"}
	mediaFields     = []string{"Media", "Image", "Photo", "Video"}
)

var videoExtensions = []string{".mp4", ".mov", ".webm", ".avi"}

// Normalize builds a Note from one raw row. It never fails: missing or
// misshapen fields fall back to documented defaults.
func Normalize(r models.RawRecord) models.Note {
	title := firstString(r, titleFields)
	if title == "" {
		title = PlaceholderTitle
	}
	kind := stringValue(r["Type"])
	if kind == "" {
		kind = DefaultKind
	}

	ts, rawDate := ParseTimestamp(firstValue(r, timestampFields))

	media := MediaURL(r)
	return models.Note{
		Title:     title,
		Kind:      kind,
		Excerpt:   firstString(r, excerptFields),
		Timestamp: ts,
		RawDate:   rawDate,
		URL:       firstString(r, linkFields),
		MediaURL:  media,
		HasMedia:  media != "",
		IsVideo:   IsVideoURL(media),
	}
}

// MediaURL extracts the first media URL from a row. It accepts a bare
// string, a non-empty list whose first element is a string or a url-bearing
// object, or a url-bearing object. Anything else means no media.
func MediaURL(r models.RawRecord) string {
	m := firstValue(r, mediaFields)
	switch v := m.(type) {
	case string:
		return plausibleURL(v)
	case []any:
		if len(v) == 0 {
			return ""
		}
		switch first := v[0].(type) {
		case string:
			return plausibleURL(first)
		case map[string]any:
			return plausibleURL(stringValue(first["url"]))
		}
	case map[string]any:
		return plausibleURL(stringValue(v["url"]))
	}
	return ""
}

// IsVideoURL reports whether a media URL points at a video, by extension
// or by the substring "video". Meaningless for empty URLs.
func IsVideoURL(u string) bool {
	if u == "" {
		return false
	}
	lower := strings.ToLower(u)
	for _, ext := range videoExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return strings.Contains(lower, "video")
}

// ParseTimestamp best-effort parses an upstream date value. It returns the
// zero time when the value is absent or unparsable, plus the verbatim
// display form of the raw value.
func ParseTimestamp(v any) (time.Time, string) {
	switch d := v.(type) {
	case string:
		if d == "" {
			return time.Time{}, ""
		}
		t, err := dateparse.ParseAny(d)
		if err != nil {
			return time.Time{}, d
		}
		return t, d
	case float64:
		// Numeric timestamps are Unix milliseconds.
		return time.UnixMilli(int64(d)), strconv.FormatFloat(d, 'f', -1, 64)
	}
	return time.Time{}, ""
}

// FormatDate renders a parsed timestamp as "Jan 2, 2006". An unparsable
// but non-empty raw value passes through verbatim; an absent one renders
// as the empty string. Presentation-only, never fails.
func FormatDate(raw string, ts time.Time) string {
	if !ts.IsZero() {
		return ts.Format("Jan 2, 2006")
	}
	return raw
}

// firstValue returns the first present field among the given aliases.
func firstValue(r models.RawRecord, fields []string) any {
	for _, f := range fields {
		if v, ok := r[f]; ok && v != nil {
			return v
		}
	}
	return nil
}

// firstString returns the first non-empty string field among the aliases.
func firstString(r models.RawRecord, fields []string) string {
	for _, f := range fields {
		if s := stringValue(r[f]); s != "" {
			return s
		}
	}
	return ""
}

func stringValue(v any) string {
	s, _ := v.(string)
	return s
}

// plausibleURL keeps only strings that parse as a URL. Upstream media
// cells occasionally hold junk that would render as a broken element.
func plausibleURL(s string) string {
	if s == "" {
		return ""
	}
	if _, err := url.Parse(s); err != nil {
		return ""
	}
	return s
}
