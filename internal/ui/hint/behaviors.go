package hint

import (
	"context"
	"fmt"

	"github.com/bnema/dumbhint/internal/application/port"
	"github.com/bnema/dumbhint/internal/domain/entity"
)

var classification = []struct {
	tag, parent entity.TypeTag
}{
	{entity.TagContainer, entity.TagWidget},
	{entity.TagWindow, entity.TagContainer},
	{entity.TagDialog, entity.TagWindow},
	{entity.TagPopup, entity.TagContainer},
	{entity.TagMenu, entity.TagPopup},
	{entity.TagPopover, entity.TagPopup},
	{entity.TagTooltip, entity.TagPopup},
	{entity.TagMenuBar, entity.TagContainer},

	{entity.TagButton, entity.TagWidget},
	{entity.TagToggleButton, entity.TagButton},
	{entity.TagCheckButton, entity.TagToggleButton},
	{entity.TagRadioButton, entity.TagToggleButton},
	{entity.TagLink, entity.TagButton},
	{entity.TagTab, entity.TagButton},
	{entity.TagMenuButton, entity.TagButton},
	{entity.TagComboBox, entity.TagWidget},
	{entity.TagMenuItem, entity.TagWidget},
	{entity.TagSubmenuItem, entity.TagMenuItem},
	{entity.TagSlider, entity.TagWidget},

	{entity.TagEntry, entity.TagWidget},
	{entity.TagSpinButton, entity.TagEntry},
	{entity.TagTextView, entity.TagWidget},

	{entity.TagLabel, entity.TagWidget},

	{entity.TagList, entity.TagWidget},
	{entity.TagTable, entity.TagList},
	{entity.TagTree, entity.TagList},
}

func always(port.Element) bool { return true }

func never(port.Element) bool { return false }

func visibleItems(el port.Element) []entity.Point {
	if c, ok := el.(port.ItemContainer); ok {
		return c.VisibleItems()
	}
	return nil
}

// NewDefaultResolver returns the standard capability table, executing
// actions through exec and yanking into clip.
func NewDefaultResolver(exec port.ActionExecutor, clip port.Clipboard) *Resolver {
	r := NewResolver()
	for _, c := range classification {
		r.Classify(c.tag, c.parent)
	}

	a := &actions{exec: exec, clip: clip}
	registerActivatable(r, a)
	registerEditable(r, a)
	registerFocusable(r, a)
	registerYankable(r, a)
	registerMenuable(r, a)
	registerContextable(r, a)
	return r
}

func registerActivatable(r *Resolver, a *actions) {
	m := entity.HintActivatable
	for _, tag := range []entity.TypeTag{entity.TagButton, entity.TagMenuItem} {
		r.Register(tag, m, Behavior{Eligible: always, Accept: a.activate})
	}
	// Clicking these opens their menu.
	for _, tag := range []entity.TypeTag{entity.TagMenuButton, entity.TagSubmenuItem, entity.TagComboBox} {
		r.Register(tag, m, Behavior{Eligible: always, Accept: a.openMenu})
	}
	r.Register(entity.TagList, m, Behavior{SubTargets: visibleItems, Recurse: never, Accept: a.activateItem})
}

func registerEditable(r *Resolver, a *actions) {
	m := entity.HintEditable
	for _, tag := range []entity.TypeTag{entity.TagEntry, entity.TagTextView, entity.TagComboBox} {
		r.Register(tag, m, Behavior{Eligible: always, Accept: a.edit})
	}
}

func registerFocusable(r *Resolver, a *actions) {
	m := entity.HintFocusable
	r.Register(entity.TagWidget, m, Behavior{Eligible: always, Accept: a.focus})
	for _, tag := range []entity.TypeTag{entity.TagContainer, entity.TagLabel} {
		r.Register(tag, m, Behavior{Eligible: never})
	}
	r.Register(entity.TagList, m, Behavior{SubTargets: visibleItems, Recurse: never})
}

func registerYankable(r *Resolver, a *actions) {
	m := entity.HintYankable
	r.Register(entity.TagWidget, m, Behavior{Accept: a.yank})
	for _, tag := range []entity.TypeTag{
		entity.TagLabel, entity.TagButton, entity.TagEntry, entity.TagTextView,
		entity.TagMenuItem, entity.TagComboBox,
	} {
		r.Register(tag, m, Behavior{Eligible: always})
	}
	r.Register(entity.TagList, m, Behavior{SubTargets: visibleItems, Recurse: never})
}

func registerMenuable(r *Resolver, a *actions) {
	m := entity.HintMenuable
	r.Register(entity.TagMenuItem, m, Behavior{Eligible: always, Accept: a.activate})
	for _, tag := range []entity.TypeTag{entity.TagMenuButton, entity.TagComboBox, entity.TagSubmenuItem} {
		r.Register(tag, m, Behavior{Eligible: always, Accept: a.openMenu})
	}
}

func registerContextable(r *Resolver, a *actions) {
	m := entity.HintContextable
	for _, tag := range []entity.TypeTag{entity.TagEntry, entity.TagTextView, entity.TagLabel, entity.TagLink} {
		r.Register(tag, m, Behavior{Eligible: always, Accept: a.openContextMenu})
	}
	r.Register(entity.TagList, m, Behavior{SubTargets: visibleItems, Recurse: never, Accept: a.openContextMenu})
}

// actions binds accept behaviors to the host collaborators.
type actions struct {
	exec port.ActionExecutor
	clip port.Clipboard
}

func (a *actions) activate(_ context.Context, t Target) (Outcome, error) {
	return Outcome{}, a.exec.Activate(t.Element)
}

func (a *actions) activateItem(_ context.Context, t Target) (Outcome, error) {
	if err := a.exec.SetFocus(t.Element, t.SubPosition); err != nil {
		return Outcome{}, err
	}
	return Outcome{}, a.exec.Activate(t.Element)
}

func (a *actions) focus(_ context.Context, t Target) (Outcome, error) {
	return Outcome{}, a.exec.SetFocus(t.Element, t.SubPosition)
}

func (a *actions) edit(_ context.Context, t Target) (Outcome, error) {
	if err := a.exec.SetFocus(t.Element, t.SubPosition); err != nil {
		return Outcome{}, err
	}
	if err := a.exec.BeginEdit(t.Element, t.SubPosition); err != nil {
		return Outcome{}, err
	}
	return Outcome{EnterInput: true}, nil
}

func (a *actions) yank(ctx context.Context, t Target) (Outcome, error) {
	if a.clip == nil {
		return Outcome{}, fmt.Errorf("yank: %w: no clipboard", ErrUnsupportedAction)
	}
	text, err := a.exec.DisplayText(t.Element, t.SubPosition)
	if err != nil {
		return Outcome{}, fmt.Errorf("read display text: %w", err)
	}
	if err := a.clip.WriteText(ctx, text); err != nil {
		return Outcome{}, fmt.Errorf("copy to clipboard: %w", err)
	}
	return Outcome{Text: text}, nil
}

func (a *actions) openMenu(_ context.Context, t Target) (Outcome, error) {
	root, err := a.exec.OpenMenu(t.Element)
	if err != nil {
		return Outcome{}, err
	}
	return menuOutcome(root), nil
}

func (a *actions) openContextMenu(_ context.Context, t Target) (Outcome, error) {
	root, err := a.exec.OpenContextMenu(t.Element, t.SubPosition)
	if err != nil {
		return Outcome{}, err
	}
	return menuOutcome(root), nil
}

func menuOutcome(root port.Element) Outcome {
	if root == nil {
		return Outcome{AwaitPopup: true}
	}
	return Outcome{Submenu: root}
}
