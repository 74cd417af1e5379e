// Package cards maps notes to markup-agnostic card descriptors.
package cards

import (
	"html"

	"github.com/starford/laguz/internal/models"
	"github.com/starford/laguz/internal/normalize"
)

// Size is a card layout size class.
type Size string

// Layout size classes.
const (
	SizeSmall  Size = "s"
	SizeMedium Size = "m"
	SizeLarge  Size = "l"
)

// Five-step size cycles keyed by position within the active list.
var (
	mediaCycle = [5]Size{SizeLarge, SizeMedium, SizeMedium, SizeSmall, SizeMedium}
	textCycle  = [5]Size{SizeMedium, SizeSmall, SizeMedium, SizeSmall, SizeMedium}
)

// PickSize returns the layout size for the note at position i of the
// active list. Purely positional, so the mosaic is stable for a given
// filtered ordering.
func PickSize(i int, hasMedia bool) Size {
	if i < 0 {
		i = 0
	}
	if hasMedia {
		return mediaCycle[i%len(mediaCycle)]
	}
	return textCycle[i%len(textCycle)]
}

// Meta is the type/date strip shown on every card.
type Meta struct {
	Kind string `json:"kind"`
	Date string `json:"date"`
}

// Card is one presentational card descriptor. Display fields are
// HTML-escaped; note content comes from an uncontrolled external source,
// so escaping here is a security contract, not styling. Activation is the
// raw event payload a UI emits when the card is selected.
type Card struct {
	Variant  string `json:"variant"`
	Size     Size   `json:"size"`
	Featured bool   `json:"featured,omitempty"`

	Title string `json:"title"`
	Tag   string `json:"tag"`
	Meta  Meta   `json:"meta"`

	// Text variant: quote body plus the title as attribution line.
	Quote  string `json:"quote,omitempty"`
	Source string `json:"source,omitempty"`

	// Media variant.
	MediaURL string `json:"media_url,omitempty"`
	IsVideo  bool   `json:"is_video,omitempty"`

	Activation models.CardActivation `json:"activation"`
}

// Render maps a note at position idx of the active list to a card
// descriptor. A featured rendering is always large regardless of the
// positional cycle.
func Render(n models.Note, idx int, featured bool) Card {
	size := PickSize(idx, n.HasMedia)
	if featured {
		size = SizeLarge
	}

	date := normalize.FormatDate(n.RawDate, n.Timestamp)
	c := Card{
		Size:     size,
		Featured: featured,
		Title:    html.EscapeString(n.Title),
		Tag:      html.EscapeString(n.Kind),
		Meta: Meta{
			Kind: html.EscapeString(n.Kind),
			Date: html.EscapeString(date),
		},
		Activation: models.CardActivation{
			Title:    n.Title,
			Kind:     n.Kind,
			Date:     n.RawDate,
			Excerpt:  n.Excerpt,
			URL:      n.URL,
			MediaURL: n.MediaURL,
			IsVideo:  n.IsVideo,
		},
	}

	if n.HasMedia {
		c.Variant = models.VariantMedia
		c.MediaURL = html.EscapeString(n.MediaURL)
		c.IsVideo = n.IsVideo
		c.Activation.Variant = models.VariantMedia
		return c
	}

	c.Variant = models.VariantText
	quote := n.Excerpt
	if quote == "" {
		quote = n.Title
	}
	c.Quote = html.EscapeString(quote)
	c.Source = html.EscapeString(n.Title)
	c.Activation.Variant = models.VariantText
	return c
}
