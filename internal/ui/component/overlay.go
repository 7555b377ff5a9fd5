package component

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bnema/dumbhint/internal/application/port"
	"github.com/bnema/dumbhint/internal/ui/hint"
)

// HintEntry is one hinted target and its code.
type HintEntry struct {
	hint.Target
	Code    string
	Visible bool
}

// AssignCodes pairs targets with the codes of one discovery batch,
// in discovery order.
func AssignCodes(targets []hint.Target, alphabet []rune) []HintEntry {
	return AssignFrameCodes([][]hint.Target{targets}, alphabet)[0]
}

// AssignFrameCodes draws the codes of several target lists from a single
// batch. Ordinals run on from one list to the next, so no code of one
// list is a prefix of a code in another.
func AssignFrameCodes(lists [][]hint.Target, alphabet []rune) [][]HintEntry {
	out := make([][]HintEntry, len(lists))
	total := 0
	for _, targets := range lists {
		total += len(targets)
	}
	if total == 0 {
		return out
	}
	gen := hint.NewCodeGenerator(alphabet, total)
	for i, targets := range lists {
		if len(targets) == 0 {
			continue
		}
		entries := make([]HintEntry, 0, len(targets))
		for _, t := range targets {
			code, _ := gen.Next()
			entries = append(entries, HintEntry{Target: t, Code: code, Visible: true})
		}
		out[i] = entries
	}
	return out
}

// Overlay holds the hints rendered over one root (a window or a popup).
// Whenever it holds a visible entry, exactly one visible entry is selected.
type Overlay struct {
	id        string
	root      port.Element
	hints     []HintEntry
	selected  int
	status    string
	shown     bool
	presenter port.OverlayPresenter
}

// NewOverlay creates an empty, hidden overlay for root.
// presenter may be nil.
func NewOverlay(root port.Element, presenter port.OverlayPresenter) *Overlay {
	return &Overlay{
		id:        uuid.NewString(),
		root:      root,
		selected:  -1,
		presenter: presenter,
	}
}

// ID returns the overlay's presenter identifier.
func (o *Overlay) ID() string { return o.id }

// Root returns the element the overlay covers.
func (o *Overlay) Root() port.Element { return o.root }

// Populate replaces the hints, marks them visible, selects the first one and shows the overlay.
func (o *Overlay) Populate(entries []HintEntry) {
	o.hints = make([]HintEntry, len(entries))
	copy(o.hints, entries)
	for i := range o.hints {
		o.hints[i].Visible = true
	}
	o.selected = -1
	if len(o.hints) > 0 {
		o.selected = 0
	}
	o.shown = true
	o.refresh()
}

// Narrow shows only the hints whose code starts with buffer and returns
// how many remain visible. A hidden selection moves to the first visible hint.
func (o *Overlay) Narrow(buffer string) int {
	visible := 0
	first := -1
	for i := range o.hints {
		o.hints[i].Visible = strings.HasPrefix(o.hints[i].Code, buffer)
		if o.hints[i].Visible {
			visible++
			if first < 0 {
				first = i
			}
		}
	}
	if o.selected < 0 || o.selected >= len(o.hints) || !o.hints[o.selected].Visible {
		o.selected = first
	}
	o.refresh()
	return visible
}

// CycleSelection moves the selection to the next (or previous) visible hint, wrapping around.
func (o *Overlay) CycleSelection(forward bool) {
	n := len(o.hints)
	if n == 0 || o.VisibleCount() == 0 {
		return
	}
	step := 1
	if !forward {
		step = n - 1
	}
	i := o.selected
	if i < 0 {
		i = 0
		if !forward {
			i = n - 1
		}
		if o.hints[i].Visible {
			o.selected = i
			o.refresh()
			return
		}
	}
	for k := 0; k < n; k++ {
		i = (i + step) % n
		if o.hints[i].Visible {
			o.selected = i
			break
		}
	}
	o.refresh()
}

// SelectionAtEdge reports whether the selection is the last visible hint
// (the first one when forward is false), so cycling further would wrap.
func (o *Overlay) SelectionAtEdge(forward bool) bool {
	edge := o.visibleEdge(!forward)
	return edge < 0 || o.selected == edge
}

// SelectEdge selects the first visible hint, or the last one when first is false.
func (o *Overlay) SelectEdge(first bool) {
	i := o.visibleEdge(first)
	if i < 0 {
		return
	}
	o.selected = i
	o.refresh()
}

func (o *Overlay) visibleEdge(first bool) int {
	if first {
		for i := range o.hints {
			if o.hints[i].Visible {
				return i
			}
		}
		return -1
	}
	for i := len(o.hints) - 1; i >= 0; i-- {
		if o.hints[i].Visible {
			return i
		}
	}
	return -1
}

// Clear removes every hint, deselects and hides the overlay.
func (o *Overlay) Clear() {
	o.hints = nil
	o.selected = -1
	o.Hide()
}

// Hide stops rendering the overlay but keeps its hints.
func (o *Overlay) Hide() {
	wasShown := o.shown
	o.shown = false
	if wasShown && o.presenter != nil {
		o.presenter.HideOverlay(o.id)
	}
}

// Show renders the overlay again after Hide.
func (o *Overlay) Show() {
	o.shown = true
	o.refresh()
}

// IsShown reports whether the overlay is rendered.
func (o *Overlay) IsShown() bool { return o.shown }

// SetStatus updates the status line shown with the overlay.
func (o *Overlay) SetStatus(text string) {
	if o.status == text {
		return
	}
	o.status = text
	o.refresh()
}

// Status returns the current status line.
func (o *Overlay) Status() string { return o.status }

// Len returns the number of hints, visible or not.
func (o *Overlay) Len() int { return len(o.hints) }

// Entries returns a copy of every hint in code order.
func (o *Overlay) Entries() []HintEntry {
	out := make([]HintEntry, len(o.hints))
	copy(out, o.hints)
	return out
}

// VisibleCount returns the number of hints matching the current narrowing.
func (o *Overlay) VisibleCount() int {
	n := 0
	for _, h := range o.hints {
		if h.Visible {
			n++
		}
	}
	return n
}

// Selected returns the selected hint.
func (o *Overlay) Selected() (HintEntry, bool) {
	if o.selected < 0 || o.selected >= len(o.hints) {
		return HintEntry{}, false
	}
	return o.hints[o.selected], true
}

// View returns the presenter content: visible hints only, in code order.
func (o *Overlay) View() port.OverlayView {
	view := port.OverlayView{ID: o.id, Root: o.root, Status: o.status}
	for i, h := range o.hints {
		if !h.Visible {
			continue
		}
		view.Labels = append(view.Labels, port.HintLabel{
			Code:     h.Code,
			Bounds:   h.Bounds(),
			Selected: i == o.selected,
		})
	}
	return view
}

// FindVisible returns the only visible hint, if exactly one is visible.
func (o *Overlay) FindVisible() (HintEntry, bool) {
	var found HintEntry
	n := 0
	for _, h := range o.hints {
		if h.Visible {
			found = h
			n++
		}
	}
	return found, n == 1
}

// Highlight asks the presenter to flag the hint labelled code as accepted for d.
func (o *Overlay) Highlight(code string, d time.Duration) {
	if code == "" || o.presenter == nil || d <= 0 {
		return
	}
	o.presenter.Highlight(o.id, code, d)
}

func (o *Overlay) refresh() {
	if !o.shown || o.presenter == nil {
		return
	}
	o.presenter.ShowOverlay(o.View())
}
