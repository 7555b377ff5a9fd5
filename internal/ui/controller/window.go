// Package controller runs the hint state machines: one WindowController
// per top-level window and a Controller coordinating them.
//
// Everything here runs on the host's UI thread. Notifications from other
// threads go through mainloop.Queue first.
package controller

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/bnema/dumbhint/internal/application/port"
	"github.com/bnema/dumbhint/internal/domain/entity"
	"github.com/bnema/dumbhint/internal/logging"
	"github.com/bnema/dumbhint/internal/ui/component"
	"github.com/bnema/dumbhint/internal/ui/hint"
)

// State is the keyboard state of a window.
type State int

const (
	// StateNormal lets keys through except for mode shortcuts.
	StateNormal State = iota
	// StateHint captures keys to narrow and accept hints.
	StateHint
	// StateInput passes keys through to an element being edited.
	StateInput
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateNormal:
		return "normal"
	case StateHint:
		return "hint"
	case StateInput:
		return "input"
	default:
		return "unknown"
	}
}

// frame is one level of the overlay stack: the window (plus open popups)
// at the bottom, one frame per nested menu above it.
type frame struct {
	mode     entity.HintMode
	overlays []*component.Overlay
	active   int
}

func (f *frame) activeOverlay() *component.Overlay {
	if f.active < 0 || f.active >= len(f.overlays) {
		return nil
	}
	return f.overlays[f.active]
}

// cycle moves the selection within the active overlay and crosses into
// the next overlay holding visible hints at either end.
func (f *frame) cycle(forward bool) {
	ov := f.activeOverlay()
	if ov == nil {
		return
	}
	if !ov.SelectionAtEdge(forward) {
		ov.CycleSelection(forward)
		return
	}
	n := len(f.overlays)
	step := 1
	if !forward {
		step = n - 1
	}
	for k, i := 0, f.active; k < n; k++ {
		i = (i + step) % n
		if f.overlays[i].VisibleCount() == 0 {
			continue
		}
		f.active = i
		f.overlays[i].SelectEdge(forward)
		return
	}
}

func (f *frame) removeOverlay(i int) {
	f.overlays[i].Clear()
	f.overlays = append(f.overlays[:i], f.overlays[i+1:]...)
	switch {
	case f.active > i:
		f.active--
	case f.active == i:
		f.active = 0
	}
}

// WindowController is the hint state machine of one top-level window.
type WindowController struct {
	window    port.Element
	settings  entity.Settings
	resolver  *hint.Resolver
	presenter port.OverlayPresenter
	tracer    trace.Tracer
	log       zerolog.Logger

	state  State
	mode   entity.HintMode
	buffer []rune
	frames []*frame

	// popups currently shown for this window, oldest first.
	popups        []port.Element
	awaitingPopup bool
	editing       port.Element
	destroyed     bool
}

// NewWindowController creates the state machine for window in StateNormal.
func NewWindowController(
	ctx context.Context,
	window port.Element,
	settings entity.Settings,
	resolver *hint.Resolver,
	presenter port.OverlayPresenter,
	tracer trace.Tracer,
) *WindowController {
	if presenter == nil {
		presenter = nopPresenter{}
	}
	if tracer == nil {
		tracer = defaultTracer()
	}
	ctx = logging.WithWindow(ctx, port.ElementName(window))
	return &WindowController{
		window:    window,
		settings:  settings,
		resolver:  resolver,
		presenter: presenter,
		tracer:    tracer,
		log:       *logging.FromContext(ctx),
	}
}

// Window returns the controlled top-level window.
func (w *WindowController) Window() port.Element { return w.window }

// State returns the current keyboard state.
func (w *WindowController) State() State { return w.state }

// Mode returns the hint mode of the current (or last) hinting session.
func (w *WindowController) Mode() entity.HintMode { return w.mode }

// Buffer returns the typed narrowing prefix.
func (w *WindowController) Buffer() string { return string(w.buffer) }

// AwaitingPopup reports whether an accepted menu is waiting for its popup.
func (w *WindowController) AwaitingPopup() bool { return w.awaitingPopup }

// Depth returns the number of overlay frames, 0 when not hinting.
func (w *WindowController) Depth() int { return len(w.frames) }

// ActiveOverlays returns the overlays of the top frame.
func (w *WindowController) ActiveOverlays() []*component.Overlay {
	f := w.top()
	if f == nil {
		return nil
	}
	out := make([]*component.Overlay, len(f.overlays))
	copy(out, f.overlays)
	return out
}

// Popups returns the popups currently shown for this window.
func (w *WindowController) Popups() []port.Element {
	out := make([]port.Element, len(w.popups))
	copy(out, w.popups)
	return out
}

// OwnsPopup reports whether popup is tracked by this window.
func (w *WindowController) OwnsPopup(popup port.Element) bool {
	return w.popupIndex(popup) >= 0
}

// Describe renders the state for status lines and the windows command.
func (w *WindowController) Describe() string {
	switch w.state {
	case StateHint:
		return fmt.Sprintf("hint(%s)", w.mode)
	default:
		return w.state.String()
	}
}

// EnterHintMode discovers the targets of mode in the window and its open
// popups and starts hinting. It returns false and stays in StateNormal
// when nothing can be hinted.
func (w *WindowController) EnterHintMode(ctx context.Context, mode entity.HintMode) bool {
	if w.destroyed {
		return false
	}
	if w.state != StateNormal {
		w.finish()
	}

	ctx, span := w.tracer.Start(ctx, "hint.enter", trace.WithAttributes(
		attribute.String("hint.mode", mode.String()),
		attribute.String("hint.window", port.ElementName(w.window)),
	))
	defer span.End()

	roots := append([]port.Element{w.window}, w.popups...)
	f := w.buildFrame(ctx, roots, mode)
	if f == nil {
		span.SetAttributes(attribute.Int("hint.targets", 0))
		w.log.Debug().Str("mode", mode.String()).Msg("no hint targets")
		w.presenter.ShowStatus(w.window, fmt.Sprintf("%s: no targets", mode))
		return false
	}

	w.mode = mode
	w.buffer = w.buffer[:0]
	w.frames = []*frame{f}
	w.setState(StateHint)
	w.narrow()

	total := 0
	for _, ov := range f.overlays {
		total += ov.Len()
	}
	span.SetAttributes(attribute.Int("hint.targets", total))
	w.log.Debug().
		Str("mode", mode.String()).
		Int("targets", total).
		Int("overlays", len(f.overlays)).
		Msg("entered hint mode")
	return true
}

// Cancel clears every overlay and returns to StateNormal.
func (w *WindowController) Cancel(_ context.Context) {
	if w.state == StateNormal && len(w.frames) == 0 && !w.awaitingPopup {
		return
	}
	w.log.Debug().Str("from", w.Describe()).Msg("hint cancelled")
	w.finish()
}

// HandleKey feeds a key press to the state machine and reports whether it
// was consumed. focused is the element that would receive the key.
func (w *WindowController) HandleKey(ctx context.Context, focused port.Element, key entity.Key) bool {
	if w.destroyed {
		return false
	}
	switch w.state {
	case StateInput:
		if w.handleInputKey(focused, key) {
			return false
		}
		return w.handleNormalKey(ctx, key)
	case StateHint:
		w.handleHintKey(ctx, key)
		return true
	default:
		return w.handleNormalKey(ctx, key)
	}
}

func (w *WindowController) handleNormalKey(ctx context.Context, key entity.Key) bool {
	mode, ok := w.settings.ModeForKey(key)
	if !ok {
		return false
	}
	w.EnterHintMode(ctx, mode)
	return true
}

// handleInputKey reports whether key stays with the edited element.
// Leaving StateInput returns false so the key is handled as in StateNormal.
func (w *WindowController) handleInputKey(focused port.Element, key entity.Key) bool {
	if key.Code == entity.KeyEscape && !key.HasCommandModifier() {
		w.log.Debug().Msg("left input mode")
		w.editing = nil
		w.setState(StateNormal)
		return true
	}
	if focused != nil && !w.resolver.IsEditable(focused) {
		w.log.Debug().Str("focused", port.ElementName(focused)).Msg("focus left editable element")
		w.editing = nil
		w.setState(StateNormal)
		return false
	}
	return true
}

func (w *WindowController) handleHintKey(ctx context.Context, key entity.Key) {
	if w.awaitingPopup {
		if key.Code == entity.KeyEscape {
			w.Cancel(ctx)
		}
		return
	}

	switch key.Code {
	case entity.KeyEscape:
		w.Cancel(ctx)
	case entity.KeyEnter:
		w.acceptSelected(ctx)
	case entity.KeyTab:
		w.cycle(key.Mods&entity.ModShift == 0)
	case entity.KeyBackspace:
		if len(w.buffer) == 0 {
			return
		}
		w.buffer = w.buffer[:len(w.buffer)-1]
		w.narrow()
	case entity.KeyRune:
		if key.HasCommandModifier() {
			return
		}
		r, ok := w.settings.AlphabetRune(key.Rune)
		if !ok {
			return
		}
		w.buffer = append(w.buffer, r)
		w.typed(ctx)
	}
}

// typed narrows after a new character and handles the unique and empty cases.
func (w *WindowController) typed(ctx context.Context) {
	visible := w.narrow()
	switch {
	case visible == 0:
		w.log.Debug().Str("buffer", w.Buffer()).Msg("no hint matches, cancelling")
		w.finish()
	case visible == 1 && w.settings.AutoAcceptUniqueHint():
		for _, ov := range w.top().overlays {
			if entry, ok := ov.FindVisible(); ok {
				w.accept(ctx, ov, entry)
				return
			}
		}
	}
}

func (w *WindowController) acceptSelected(ctx context.Context) {
	f := w.top()
	if f == nil {
		return
	}
	ov := f.activeOverlay()
	if ov == nil {
		return
	}
	entry, ok := ov.Selected()
	if !ok {
		return
	}
	w.accept(ctx, ov, entry)
}

func (w *WindowController) accept(ctx context.Context, ov *component.Overlay, entry component.HintEntry) {
	mode := w.mode
	ctx, span := w.tracer.Start(ctx, "hint.accept", trace.WithAttributes(
		attribute.String("hint.mode", mode.String()),
		attribute.String("hint.code", entry.Code),
		attribute.String("hint.target", port.ElementName(entry.Element)),
	))
	defer span.End()

	log := w.log.With().
		Str("mode", mode.String()).
		Str("code", entry.Code).
		Str("target", port.ElementName(entry.Element)).
		Logger()

	popupsBefore := len(w.popups)

	outcome, err := w.resolver.Accept(ctx, mode, entry.Target)
	switch {
	case errors.Is(err, hint.ErrUnsupportedAction):
		span.SetStatus(codes.Error, err.Error())
		log.Warn().Err(err).Msg("accepted hint has no action")
		return
	case err != nil:
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.Error().Err(err).Msg("hint action failed")
		w.presenter.ShowError(fmt.Sprintf("%s %s: %v", mode, port.ElementName(entry.Element), err))
		w.finish()
		return
	}

	ov.Highlight(entry.Code, w.settings.AcceptedHighlight())
	switch {
	case outcome.Submenu != nil:
		log.Debug().Str("submenu", port.ElementName(outcome.Submenu)).Msg("hint opened submenu")
		w.pushMenu(ctx, outcome.Submenu)
	case outcome.AwaitPopup:
		if len(w.popups) > popupsBefore {
			w.pushMenu(ctx, w.popups[len(w.popups)-1])
			return
		}
		log.Debug().Msg("hint awaiting popup")
		w.await()
	case outcome.EnterInput && w.settings.PassthroughKeyboardInput():
		log.Debug().Msg("hint accepted, entering input mode")
		w.finish()
		w.editing = entry.Element
		w.setState(StateInput)
	default:
		log.Debug().Msg("hint accepted")
		w.finish()
	}
}

// pushMenu hides the current frame and hints the menu rooted at root in
// HintMenuable. A menu without targets ends the session.
func (w *WindowController) pushMenu(ctx context.Context, root port.Element) {
	w.awaitingPopup = false
	f := w.buildFrame(ctx, []port.Element{root}, entity.HintMenuable)
	if f == nil {
		w.log.Debug().Str("menu", port.ElementName(root)).Msg("menu has no hint targets")
		w.finish()
		return
	}
	if top := w.top(); top != nil {
		for _, ov := range top.overlays {
			ov.Hide()
		}
	}
	if w.popupIndex(root) < 0 {
		w.popups = append(w.popups, root)
	}
	w.frames = append(w.frames, f)
	w.mode = entity.HintMenuable
	w.buffer = w.buffer[:0]
	w.setState(StateHint)
	w.narrow()
}

func (w *WindowController) await() {
	if top := w.top(); top != nil {
		for _, ov := range top.overlays {
			ov.Hide()
		}
	}
	w.awaitingPopup = true
	w.mode = entity.HintMenuable
	w.buffer = w.buffer[:0]
	w.setState(StateHint)
}

// PopupShown records a popup shown for this window. A popup arriving while
// a menu accept is pending becomes the next overlay frame.
func (w *WindowController) PopupShown(ctx context.Context, popup port.Element) {
	if popup == nil || w.destroyed {
		return
	}
	if w.popupIndex(popup) < 0 {
		w.popups = append(w.popups, popup)
	}
	if w.awaitingPopup {
		w.log.Debug().Str("popup", port.ElementName(popup)).Msg("deferred popup attached")
		w.pushMenu(ctx, popup)
	}
}

// PopupHidden forgets popup and drops the overlays hinting it. A frame
// left without overlays is popped together with every frame above it.
func (w *WindowController) PopupHidden(_ context.Context, popup port.Element) {
	i := w.popupIndex(popup)
	if i < 0 {
		return
	}
	w.popups = append(w.popups[:i], w.popups[i+1:]...)

	for depth, f := range w.frames {
		j := overlayIndex(f, popup)
		if j < 0 {
			continue
		}
		if len(f.overlays) > 1 {
			f.removeOverlay(j)
			if depth == len(w.frames)-1 {
				w.buffer = w.buffer[:0]
				w.narrow()
			}
			return
		}
		for _, above := range w.frames[depth:] {
			clearFrame(above)
		}
		w.frames = w.frames[:depth]
		if len(w.frames) == 0 {
			w.finish()
			return
		}
		top := w.top()
		for _, ov := range top.overlays {
			ov.Show()
		}
		w.mode = top.mode
		w.buffer = w.buffer[:0]
		w.narrow()
		return
	}
}

// Destroy clears every overlay. The controller ignores input afterwards.
func (w *WindowController) Destroy() {
	if w.destroyed {
		return
	}
	for _, f := range w.frames {
		clearFrame(f)
	}
	w.frames = nil
	w.popups = nil
	w.awaitingPopup = false
	w.editing = nil
	w.state = StateNormal
	w.destroyed = true
}

// buildFrame hints every visible root in mode. The codes of all overlays
// come from one batch so typing a code narrows to a single target.
func (w *WindowController) buildFrame(ctx context.Context, roots []port.Element, mode entity.HintMode) *frame {
	var (
		hinted []port.Element
		lists  [][]hint.Target
	)
	for _, root := range roots {
		if root == nil || !root.IsVisible() {
			continue
		}
		targets := hint.Discover(ctx, w.resolver, root, mode)
		if len(targets) == 0 {
			continue
		}
		hinted = append(hinted, root)
		lists = append(lists, targets)
	}
	if len(lists) == 0 {
		return nil
	}
	f := &frame{mode: mode}
	for i, entries := range component.AssignFrameCodes(lists, w.settings.Alphabet()) {
		ov := component.NewOverlay(hinted[i], w.presenter)
		ov.Populate(entries)
		f.overlays = append(f.overlays, ov)
	}
	return f
}

// narrow applies the buffer to the top frame and returns the number of
// visible hints across its overlays.
func (w *WindowController) narrow() int {
	f := w.top()
	if f == nil {
		return 0
	}
	status := fmt.Sprintf("%s: %s", w.mode, w.Buffer())
	total := 0
	for _, ov := range f.overlays {
		total += ov.Narrow(w.Buffer())
		ov.SetStatus(status)
	}
	if ov := f.activeOverlay(); ov == nil || ov.VisibleCount() == 0 {
		for i, ov := range f.overlays {
			if ov.VisibleCount() > 0 {
				f.active = i
				break
			}
		}
	}
	return total
}

// cycle moves the selection through the visible hints of the top frame.
func (w *WindowController) cycle(forward bool) {
	if f := w.top(); f != nil {
		f.cycle(forward)
	}
}

// finish clears the whole overlay stack and returns to StateNormal.
func (w *WindowController) finish() {
	for _, f := range w.frames {
		clearFrame(f)
	}
	w.frames = nil
	w.buffer = w.buffer[:0]
	w.awaitingPopup = false
	w.editing = nil
	w.setState(StateNormal)
}

func (w *WindowController) setState(s State) {
	changed := w.state != s
	w.state = s
	if changed || s == StateHint {
		w.presenter.ShowStatus(w.window, w.statusText())
	}
}

func (w *WindowController) statusText() string {
	switch w.state {
	case StateHint:
		if w.awaitingPopup {
			return fmt.Sprintf("%s: waiting for menu", w.mode)
		}
		return w.mode.String()
	case StateInput:
		return "input"
	default:
		return ""
	}
}

func (w *WindowController) top() *frame {
	if len(w.frames) == 0 {
		return nil
	}
	return w.frames[len(w.frames)-1]
}

func (w *WindowController) popupIndex(popup port.Element) int {
	for i, p := range w.popups {
		if p == popup {
			return i
		}
	}
	return -1
}

func overlayIndex(f *frame, root port.Element) int {
	for i, ov := range f.overlays {
		if ov.Root() == root {
			return i
		}
	}
	return -1
}

func clearFrame(f *frame) {
	for _, ov := range f.overlays {
		ov.Clear()
	}
}
