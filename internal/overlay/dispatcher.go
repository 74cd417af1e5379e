// Package overlay drives the detail surfaces a card opens: a centered
// dialog, a bottom sheet, or a media lightbox. Exactly one surface can be
// open at a time; the dispatcher owns the open/close lifecycle and the
// scroll-lock and focus side effects around it.
package overlay

import (
	"html"
	"sync"

	"github.com/starford/laguz/internal/models"
	"github.com/starford/laguz/internal/normalize"
)

// Kind identifies a detail surface.
type Kind string

// Detail surfaces.
const (
	KindDialog   Kind = "dialog"
	KindSheet    Kind = "sheet"
	KindLightbox Kind = "lightbox"
)

// EscapeKey is the key that dismisses an open overlay.
const EscapeKey = "Escape"

// Effects is the side-effect sink the hosting surface provides. Scroll
// locking and focus management happen wherever the overlay is displayed,
// not here.
type Effects interface {
	LockScroll()
	UnlockScroll()
	FocusClose(kind Kind)
	RestoreFocus()
}

// NopEffects is an Effects sink that does nothing, for hosts with no
// scroll or focus to manage.
type NopEffects struct{}

func (NopEffects) LockScroll()     {}
func (NopEffects) UnlockScroll()   {}
func (NopEffects) FocusClose(Kind) {}
func (NopEffects) RestoreFocus()   {}

// View is the populated content of an open overlay. Text fields are
// HTML-escaped; URLs are carried verbatim for attribute assignment.
type View struct {
	Kind     Kind   `json:"kind"`
	Kicker   string `json:"kicker,omitempty"`
	Title    string `json:"title,omitempty"`
	Date     string `json:"date,omitempty"`
	Body     string `json:"body,omitempty"`
	LinkURL  string `json:"link_url,omitempty"` // empty hides the external link
	MediaURL string `json:"media_url,omitempty"`
	IsVideo  bool   `json:"is_video,omitempty"`
}

// Dispatcher is the single decision point for which surface a card
// activation opens. The viewport predicate is consulted at activation
// time, never cached, so a resize between activations changes the choice.
type Dispatcher struct {
	effects  Effects
	isMobile func() bool

	mu      sync.Mutex
	current *View
	// dismissArmed is set while an overlay is open; escape and backdrop
	// handling are inert otherwise, mirroring listeners that are
	// registered on open and removed on close.
	dismissArmed bool
}

// NewDispatcher creates a dispatcher. A nil isMobile predicate means a
// desktop viewport.
func NewDispatcher(effects Effects, isMobile func() bool) *Dispatcher {
	if effects == nil {
		effects = NopEffects{}
	}
	if isMobile == nil {
		isMobile = func() bool { return false }
	}
	return &Dispatcher{effects: effects, isMobile: isMobile}
}

// Activate opens the surface for a card activation: media cards always
// open the lightbox; text cards open the sheet on mobile viewports and
// the dialog otherwise. An overlay that is already open is closed first,
// so at most one is ever open.
func (d *Dispatcher) Activate(act models.CardActivation) View {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.current != nil {
		d.closeLocked()
	}

	v := View{}
	if act.Variant == models.VariantMedia {
		v.Kind = KindLightbox
		v.Title = html.EscapeString(act.Title)
		v.MediaURL = act.MediaURL
		v.IsVideo = act.IsVideo
	} else {
		if d.isMobile() {
			v.Kind = KindSheet
		} else {
			v.Kind = KindDialog
		}
		ts, raw := normalize.ParseTimestamp(act.Date)
		v.Kicker = html.EscapeString(act.Kind)
		v.Title = html.EscapeString(act.Title)
		v.Date = html.EscapeString(normalize.FormatDate(raw, ts))
		v.Body = html.EscapeString(act.Excerpt)
		v.LinkURL = act.URL
	}

	d.current = &v
	d.dismissArmed = true
	d.effects.LockScroll()
	d.effects.FocusClose(v.Kind)
	return v
}

// Current returns the open overlay view, or nil when everything is closed.
func (d *Dispatcher) Current() *View {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.current == nil {
		return nil
	}
	v := *d.current
	return &v
}

// Close dismisses the open overlay via its explicit close control.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closeLocked()
}

// HandleKey routes a key press. Escape dismisses the open overlay; the
// handler reports whether it consumed the key. Once the overlay closes
// the handler is disarmed, so repeated open/close cycles leak nothing.
func (d *Dispatcher) HandleKey(key string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.dismissArmed || key != EscapeKey {
		return false
	}
	d.closeLocked()
	return true
}

// HandleBackdropClick routes a click on an overlay backdrop. Only the
// open overlay's own backdrop dismisses it.
func (d *Dispatcher) HandleBackdropClick(kind Kind) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.dismissArmed || d.current == nil || d.current.Kind != kind {
		return false
	}
	d.closeLocked()
	return true
}

// HandleContentClick routes a click inside overlay content. Content
// clicks never dismiss.
func (d *Dispatcher) HandleContentClick(Kind) bool {
	return false
}

func (d *Dispatcher) closeLocked() {
	if d.current == nil {
		return
	}
	d.current = nil
	d.dismissArmed = false
	d.effects.UnlockScroll()
	d.effects.RestoreFocus()
}
