package port

import (
	"time"

	"github.com/bnema/dumbhint/internal/domain/entity"
)

// HintLabel is one visible hint as the presenter draws it.
type HintLabel struct {
	Code     string
	Bounds   entity.Rect
	Selected bool
}

// OverlayView is the complete content of one overlay.
type OverlayView struct {
	ID     string
	Root   Element
	Labels []HintLabel
	Status string
}

// OverlayPresenter renders overlay content. The engine never draws;
// it only hands over layout data and show/hide signals.
type OverlayPresenter interface {
	ShowOverlay(view OverlayView)
	HideOverlay(id string)
	// Highlight marks an accepted hint for d.
	Highlight(id, code string, d time.Duration)
	// ShowStatus displays the hinting status of a window.
	ShowStatus(window Element, text string)
	// ShowError reports a user-facing error.
	ShowError(msg string)
}
