package port

import "github.com/bnema/dumbhint/internal/domain/entity"

// ActionExecutor performs native actions on host elements.
// A nil sub-position addresses the element as a whole.
type ActionExecutor interface {
	// Activate performs the click-equivalent action.
	Activate(el Element) error
	// SetFocus moves keyboard focus to the element (or one of its items).
	SetFocus(el Element, pos *entity.Point) error
	// BeginEdit puts a focused editable element into editing state.
	BeginEdit(el Element, pos *entity.Point) error
	// DisplayText returns the text the element shows to the user.
	DisplayText(el Element, pos *entity.Point) (string, error)
	// OpenMenu opens the element's menu and returns its root.
	// A nil root with a nil error means the menu was requested but is not
	// resolvable yet; it is announced later as a shown popup.
	OpenMenu(el Element) (Element, error)
	// OpenContextMenu opens the element's context menu, with the same
	// deferred-root contract as OpenMenu.
	OpenContextMenu(el Element, pos *entity.Point) (Element, error)
}
