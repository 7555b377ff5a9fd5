// Package model holds the Bubble Tea models of the dumbhint terminal UI.
package model

import (
	"slices"
	"time"

	"github.com/bnema/dumbhint/internal/application/port"
	"github.com/bnema/dumbhint/internal/domain/entity"
)

// Presenter records what the hint controller asks to draw. The demo model
// renders it on every frame. It is only used from the UI goroutine.
type Presenter struct {
	overlays map[string]port.OverlayView
	order    []string
	status   string
	lastErr  string

	accepted    acceptedHint
	pendingTick time.Duration
	now         func() time.Time
}

type acceptedHint struct {
	code   string
	bounds entity.Rect
	until  time.Time
}

var _ port.OverlayPresenter = (*Presenter)(nil)

// NewPresenter creates an empty Presenter.
func NewPresenter() *Presenter {
	return &Presenter{overlays: make(map[string]port.OverlayView), now: time.Now}
}

// ShowOverlay implements port.OverlayPresenter.
func (p *Presenter) ShowOverlay(view port.OverlayView) {
	if _, ok := p.overlays[view.ID]; !ok {
		p.order = append(p.order, view.ID)
	}
	p.overlays[view.ID] = view
}

// HideOverlay implements port.OverlayPresenter.
func (p *Presenter) HideOverlay(id string) {
	delete(p.overlays, id)
	p.order = slices.DeleteFunc(p.order, func(o string) bool { return o == id })
}

// Highlight implements port.OverlayPresenter. The label keeps its last
// known position even after its overlay is hidden.
func (p *Presenter) Highlight(id, code string, d time.Duration) {
	view, ok := p.overlays[id]
	if !ok {
		return
	}
	for _, l := range view.Labels {
		if l.Code == code {
			p.accepted = acceptedHint{code: code, bounds: l.Bounds, until: p.now().Add(d)}
			p.pendingTick = d
			return
		}
	}
}

// ShowStatus implements port.OverlayPresenter.
func (p *Presenter) ShowStatus(_ port.Element, text string) { p.status = text }

// ShowError implements port.OverlayPresenter.
func (p *Presenter) ShowError(msg string) { p.lastErr = msg }

// Views returns the visible overlays, oldest first.
func (p *Presenter) Views() []port.OverlayView {
	out := make([]port.OverlayView, 0, len(p.order))
	for _, id := range p.order {
		out = append(out, p.overlays[id])
	}
	return out
}

// Status returns the last status text.
func (p *Presenter) Status() string { return p.status }

// Err returns the last error message.
func (p *Presenter) Err() string { return p.lastErr }

// ClearErr forgets the last error.
func (p *Presenter) ClearErr() { p.lastErr = "" }

// Accepted returns the highlighted hint while its highlight lasts.
func (p *Presenter) Accepted() (code string, bounds entity.Rect, ok bool) {
	if p.accepted.code == "" || !p.now().Before(p.accepted.until) {
		return "", entity.Rect{}, false
	}
	return p.accepted.code, p.accepted.bounds, true
}

// TakeTick returns and clears the duration after which the view must be
// redrawn to end a highlight.
func (p *Presenter) TakeTick() time.Duration {
	d := p.pendingTick
	p.pendingTick = 0
	return d
}
