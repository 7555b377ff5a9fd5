package fixture

import (
	"errors"
	"fmt"

	"github.com/bnema/dumbhint/internal/application/port"
	"github.com/bnema/dumbhint/internal/domain/entity"
)

// ErrNoMenu is returned when opening a menu on a node without one.
var ErrNoMenu = errors.New("element has no menu")

// Executor implements port.ActionExecutor against a fixture tree.
// It records every action so tests and the demo can show what happened.
type Executor struct {
	Focused     *Node
	FocusedItem *entity.Point
	Editing     *Node
	Log         []string
	OpenPopups  []*Node

	// DeferPopups makes OpenMenu return a nil root; the popup is only
	// announced through OnPopupShown.
	DeferPopups bool
	// FailOn makes actions on the named node return the error.
	FailOn map[string]error

	OnPopupShown  func(popup *Node)
	OnPopupHidden func(popup *Node)
}

// NewExecutor creates an executor with no focus and no open popups.
func NewExecutor() *Executor {
	return &Executor{FailOn: make(map[string]error)}
}

func (e *Executor) node(el port.Element) (*Node, error) {
	n, ok := el.(*Node)
	if !ok || n == nil {
		return nil, fmt.Errorf("not a fixture element: %T", el)
	}
	if n.destroyed {
		return nil, fmt.Errorf("%s: %w", n.Name, ErrDestroyed)
	}
	if err := e.FailOn[n.Name]; err != nil {
		return nil, err
	}
	return n, nil
}

func (e *Executor) record(action string, n *Node, pos *entity.Point) {
	entry := action + " " + n.Name
	if pos != nil {
		entry += pos.String()
	}
	e.Log = append(e.Log, entry)
}

// Activate implements port.ActionExecutor.
func (e *Executor) Activate(el port.Element) error {
	n, err := e.node(el)
	if err != nil {
		return err
	}
	e.record("activate", n, nil)
	switch n.TypeTag() {
	case entity.TagCheckButton, entity.TagToggleButton, entity.TagRadioButton:
		n.Checked = !n.Checked
	case entity.TagMenuItem:
		e.ClosePopups()
	}
	return nil
}

// SetFocus implements port.ActionExecutor.
func (e *Executor) SetFocus(el port.Element, pos *entity.Point) error {
	n, err := e.node(el)
	if err != nil {
		return err
	}
	e.record("focus", n, pos)
	e.Focused = n
	e.FocusedItem = pos
	if e.Editing != n {
		e.Editing = nil
	}
	return nil
}

// BeginEdit implements port.ActionExecutor.
func (e *Executor) BeginEdit(el port.Element, pos *entity.Point) error {
	n, err := e.node(el)
	if err != nil {
		return err
	}
	e.record("edit", n, pos)
	e.Editing = n
	return nil
}

// DisplayText implements port.ActionExecutor.
func (e *Executor) DisplayText(el port.Element, pos *entity.Point) (string, error) {
	n, err := e.node(el)
	if err != nil {
		return "", err
	}
	if pos != nil {
		return n.ItemText(*pos), nil
	}
	return label(n), nil
}

// OpenMenu implements port.ActionExecutor.
func (e *Executor) OpenMenu(el port.Element) (port.Element, error) {
	n, err := e.node(el)
	if err != nil {
		return nil, err
	}
	if n.Submenu == nil {
		return nil, fmt.Errorf("%s: %w", n.Name, ErrNoMenu)
	}
	e.record("menu", n, nil)
	return e.show(n.Submenu), nil
}

// OpenContextMenu implements port.ActionExecutor.
func (e *Executor) OpenContextMenu(el port.Element, pos *entity.Point) (port.Element, error) {
	n, err := e.node(el)
	if err != nil {
		return nil, err
	}
	if n.ContextMenu == nil {
		return nil, fmt.Errorf("%s: %w", n.Name, ErrNoMenu)
	}
	e.record("context", n, pos)
	return e.show(n.ContextMenu), nil
}

func (e *Executor) show(popup *Node) port.Element {
	popup.Hidden = false
	e.OpenPopups = append(e.OpenPopups, popup)
	if e.OnPopupShown != nil {
		e.OnPopupShown(popup)
	}
	if e.DeferPopups {
		return nil
	}
	return popup
}

// ClosePopups hides every open popup, innermost first.
func (e *Executor) ClosePopups() {
	for i := len(e.OpenPopups) - 1; i >= 0; i-- {
		popup := e.OpenPopups[i]
		popup.Hidden = true
		if e.OnPopupHidden != nil {
			e.OnPopupHidden(popup)
		}
	}
	e.OpenPopups = nil
}
