package cli

import (
	"context"
	"strings"
	"time"

	"github.com/bnema/dumbhint/internal/application/port"
	"github.com/bnema/dumbhint/internal/logging"
)

// LogPresenter draws nothing; it logs what a screen would show. It backs
// the headless serve command.
type LogPresenter struct {
	ctx context.Context
}

var _ port.OverlayPresenter = LogPresenter{}

// NewLogPresenter creates a LogPresenter logging through ctx.
func NewLogPresenter(ctx context.Context) LogPresenter {
	return LogPresenter{ctx: logging.WithComponent(ctx, "presenter")}
}

// ShowOverlay implements port.OverlayPresenter.
func (p LogPresenter) ShowOverlay(view port.OverlayView) {
	codes := make([]string, 0, len(view.Labels))
	for _, l := range view.Labels {
		codes = append(codes, l.Code)
	}
	logging.FromContext(p.ctx).Debug().
		Str("overlay", view.ID).
		Str("root", port.ElementName(view.Root)).
		Str("codes", strings.Join(codes, " ")).
		Msg("overlay shown")
}

// HideOverlay implements port.OverlayPresenter.
func (p LogPresenter) HideOverlay(id string) {
	logging.FromContext(p.ctx).Debug().Str("overlay", id).Msg("overlay hidden")
}

// Highlight implements port.OverlayPresenter.
func (p LogPresenter) Highlight(id, code string, d time.Duration) {
	logging.FromContext(p.ctx).Debug().Str("overlay", id).Str("code", code).Dur("for", d).Msg("hint accepted")
}

// ShowStatus implements port.OverlayPresenter.
func (p LogPresenter) ShowStatus(window port.Element, text string) {
	logging.FromContext(p.ctx).Info().Str("window", port.ElementName(window)).Msg(text)
}

// ShowError implements port.OverlayPresenter.
func (p LogPresenter) ShowError(msg string) {
	logging.FromContext(p.ctx).Warn().Msg(msg)
}
