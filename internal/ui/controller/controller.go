package controller

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/bnema/dumbhint/internal/application/port"
	"github.com/bnema/dumbhint/internal/domain/entity"
	"github.com/bnema/dumbhint/internal/logging"
	"github.com/bnema/dumbhint/internal/ui/hint"
)

const tracerName = "github.com/bnema/dumbhint/internal/ui/controller"

// ErrNoExecutor is returned by Create when Deps has no ActionExecutor.
var ErrNoExecutor = errors.New("controller: action executor is required")

// Deps are the host collaborators of a Controller.
type Deps struct {
	// Executor performs native actions. Required.
	Executor port.ActionExecutor
	// Clipboard receives yanked text. Yank is unsupported when nil.
	Clipboard port.Clipboard
	// Presenter renders overlays and status. Optional.
	Presenter port.OverlayPresenter
	// Windows lists the current top-level windows for Create and Reset. Optional.
	Windows port.WindowSource
	// Resolver overrides the default capability table. Optional.
	Resolver *hint.Resolver
	// Tracer overrides the global OpenTelemetry tracer. Optional.
	Tracer trace.Tracer
}

// Controller tracks one WindowController per top-level window and routes
// key events and popup notifications to them.
type Controller struct {
	ctx       context.Context
	settings  entity.Settings
	deps      Deps
	resolver  *hint.Resolver
	presenter port.OverlayPresenter
	tracer    trace.Tracer

	windows   []*WindowController
	lastKeyed *WindowController
	commands  *cobra.Command
	closed    bool
}

// Create builds a Controller and attaches it to every window reported by
// deps.Windows.
func Create(ctx context.Context, settings entity.Settings, deps Deps) (*Controller, error) {
	if deps.Executor == nil {
		return nil, ErrNoExecutor
	}
	if len(settings.Alphabet()) < 2 {
		return nil, fmt.Errorf("%w: empty alphabet", entity.ErrInvalidSettings)
	}

	ctx = logging.WithComponent(ctx, "controller")
	c := &Controller{
		ctx:       ctx,
		settings:  settings,
		deps:      deps,
		resolver:  deps.Resolver,
		presenter: deps.Presenter,
		tracer:    deps.Tracer,
	}
	if c.resolver == nil {
		c.resolver = hint.NewDefaultResolver(deps.Executor, deps.Clipboard)
	}
	if c.presenter == nil {
		c.presenter = nopPresenter{}
	}
	if c.tracer == nil {
		c.tracer = defaultTracer()
	}
	c.commands = c.newCommandTree()

	if deps.Windows != nil {
		for _, w := range deps.Windows.TopLevelWindows() {
			c.AttachToWindow(w)
		}
	}

	logging.FromContext(ctx).Info().
		Int("windows", len(c.windows)).
		Str("alphabet", string(settings.Alphabet())).
		Msg("hint controller created")
	return c, nil
}

// Settings returns the settings in effect.
func (c *Controller) Settings() entity.Settings { return c.settings }

// AttachToWindow starts hinting support for a top-level, non-popup window.
// It reports whether a WindowController was created; duplicates are ignored.
func (c *Controller) AttachToWindow(window port.Element) (attached bool) {
	defer c.recoverPanic("attach window", func() { attached = false })

	if c.closed || window == nil {
		return false
	}
	if !c.resolver.IsTopLevelWindow(window) {
		logging.FromContext(c.ctx).Debug().
			Str("window", port.ElementName(window)).
			Msg("not a top-level window, ignoring")
		return false
	}
	if c.find(window) >= 0 {
		return false
	}

	wc := NewWindowController(c.ctx, window, c.settings, c.resolver, c.presenter, c.tracer)
	c.windows = append(c.windows, wc)
	logging.FromContext(c.ctx).Debug().Str("window", port.ElementName(window)).Msg("window attached")
	return true
}

// DetachWindow destroys the WindowController of window. Unknown windows are ignored.
func (c *Controller) DetachWindow(window port.Element) {
	defer c.recoverPanic("detach window", nil)

	i := c.find(window)
	if i < 0 {
		return
	}
	wc := c.windows[i]
	wc.Destroy()
	c.windows = append(c.windows[:i], c.windows[i+1:]...)
	if c.lastKeyed == wc {
		c.lastKeyed = nil
	}
	logging.FromContext(c.ctx).Debug().Str("window", port.ElementName(window)).Msg("window detached")
}

// RouteKeyEvent runs key through the state machine of the window owning
// focused, before the host delivers it. It reports whether the key was consumed.
func (c *Controller) RouteKeyEvent(focused port.Element, key entity.Key) (handled bool) {
	defer c.recoverPanic("route key event", func() { handled = false })

	if c.closed || focused == nil {
		return false
	}
	wc := c.owner(focused)
	if wc == nil {
		return false
	}
	c.lastKeyed = wc
	return wc.HandleKey(c.ctx, focused, key)
}

// PopupShown hands a newly shown popup to the window it belongs to: the
// window it descends from, else the window waiting for a menu, else the
// window that last received a key.
func (c *Controller) PopupShown(popup port.Element) {
	defer c.recoverPanic("popup shown", nil)

	if c.closed || popup == nil {
		return
	}
	wc := c.windowOf(popup.Parent())
	if wc == nil {
		for _, w := range c.windows {
			if w.AwaitingPopup() {
				wc = w
				break
			}
		}
	}
	if wc == nil {
		wc = c.lastKeyed
	}
	if wc == nil {
		logging.FromContext(c.ctx).Debug().Str("popup", port.ElementName(popup)).Msg("popup without window, ignoring")
		return
	}
	wc.PopupShown(c.ctx, popup)
}

// PopupHidden removes popup from whichever window tracks it.
func (c *Controller) PopupHidden(popup port.Element) {
	defer c.recoverPanic("popup hidden", nil)

	if popup == nil {
		return
	}
	for _, wc := range c.windows {
		if wc.OwnsPopup(popup) {
			wc.PopupHidden(c.ctx, popup)
		}
	}
}

// Reset destroys every WindowController and attaches fresh ones to the
// current window set.
func (c *Controller) Reset() {
	defer c.recoverPanic("reset", nil)

	if c.closed {
		return
	}
	windows := make([]port.Element, 0, len(c.windows))
	for _, wc := range c.windows {
		windows = append(windows, wc.Window())
		wc.Destroy()
	}
	c.windows = nil
	c.lastKeyed = nil

	if c.deps.Windows != nil {
		windows = c.deps.Windows.TopLevelWindows()
	}
	for _, w := range windows {
		c.AttachToWindow(w)
	}
	logging.FromContext(c.ctx).Info().Int("windows", len(c.windows)).Msg("hint controller reset")
}

// Reconfigure swaps the settings and resets.
func (c *Controller) Reconfigure(settings entity.Settings) {
	if len(settings.Alphabet()) < 2 {
		logging.FromContext(c.ctx).Warn().Msg("ignoring settings without alphabet")
		return
	}
	c.settings = settings
	c.Reset()
}

// Shutdown destroys every WindowController. The Controller ignores all
// events afterwards.
func (c *Controller) Shutdown() {
	if c.closed {
		return
	}
	for _, wc := range c.windows {
		wc.Destroy()
	}
	c.windows = nil
	c.lastKeyed = nil
	c.closed = true
	logging.FromContext(c.ctx).Info().Msg("hint controller shut down")
}

// Windows returns the attached windows in attach order.
func (c *Controller) Windows() []port.Element {
	out := make([]port.Element, 0, len(c.windows))
	for _, wc := range c.windows {
		out = append(out, wc.Window())
	}
	return out
}

// WindowController returns the state machine of window.
func (c *Controller) WindowController(window port.Element) (*WindowController, bool) {
	i := c.find(window)
	if i < 0 {
		return nil, false
	}
	return c.windows[i], true
}

// ActiveWindow returns the window that last received a key, else the
// first attached one.
func (c *Controller) ActiveWindow() (*WindowController, bool) {
	if c.lastKeyed != nil {
		return c.lastKeyed, true
	}
	if len(c.windows) > 0 {
		return c.windows[0], true
	}
	return nil, false
}

func (c *Controller) find(window port.Element) int {
	for i, wc := range c.windows {
		if wc.Window() == window {
			return i
		}
	}
	return -1
}

// windowOf walks up from el to an attached window.
func (c *Controller) windowOf(el port.Element) *WindowController {
	for depth := 0; el != nil && depth < maxAncestry; depth++ {
		if i := c.find(el); i >= 0 {
			return c.windows[i]
		}
		el = el.Parent()
	}
	return nil
}

// owner finds the window of a focused element, through the popup it sits
// in when its ancestry does not reach a window.
func (c *Controller) owner(focused port.Element) *WindowController {
	if wc := c.windowOf(focused); wc != nil {
		return wc
	}
	root := focused
	for depth := 0; depth < maxAncestry; depth++ {
		p := root.Parent()
		if p == nil {
			break
		}
		root = p
	}
	for _, wc := range c.windows {
		if wc.OwnsPopup(root) {
			return wc
		}
	}
	return nil
}

// maxAncestry bounds parent walks over a host tree that may be inconsistent.
const maxAncestry = 256

func (c *Controller) recoverPanic(op string, onPanic func()) {
	r := recover()
	if r == nil {
		return
	}
	logging.FromContext(c.ctx).Error().
		Str("op", op).
		Interface("panic", r).
		Str("stack", string(debug.Stack())).
		Msg("recovered from panic")
	if onPanic != nil {
		onPanic()
	}
}

func defaultTracer() trace.Tracer {
	return otel.Tracer(tracerName)
}

// nopPresenter is used when the host renders nothing.
type nopPresenter struct{}

func (nopPresenter) ShowOverlay(port.OverlayView) {}
func (nopPresenter) HideOverlay(string) {}
func (nopPresenter) Highlight(string, string, time.Duration) {}
func (nopPresenter) ShowStatus(port.Element, string) {}
func (nopPresenter) ShowError(string) {}
