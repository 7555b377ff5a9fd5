package port

import "github.com/bnema/dumbhint/internal/domain/entity"

// Element is a read-only handle to a node of the host's live element tree.
// The engine never owns elements. Implementations must be comparable
// (typically a pointer) so handles can be used as map keys.
type Element interface {
	// TypeTag classifies the element for capability lookup.
	TypeTag() entity.TypeTag
	// Bounds returns the element's rectangle in window coordinates.
	Bounds() entity.Rect
	IsVisible() bool
	IsEnabled() bool
	// Children returns the ordered children. An error means the node
	// became inconsistent (e.g. destroyed) and should be skipped.
	Children() ([]Element, error)
	// Parent returns the parent element, or nil for a root.
	Parent() Element
}

// ItemContainer is implemented by composite elements (lists, tables, trees)
// whose items are hinted individually.
type ItemContainer interface {
	// VisibleItems returns the (column, row) positions currently scrolled into view,
	// in display order.
	VisibleItems() []entity.Point
	// ItemBounds returns the rectangle of one item in window coordinates.
	ItemBounds(pos entity.Point) entity.Rect
}

// Identified is implemented by elements that carry a stable, human-readable
// identifier used in logs and status output.
type Identified interface {
	ID() string
}

// ElementName returns a printable name for el.
func ElementName(el Element) string {
	if el == nil {
		return "<nil>"
	}
	if n, ok := el.(Identified); ok && n.ID() != "" {
		return n.ID()
	}
	return string(el.TypeTag())
}

// WindowSource lists the host's current top-level windows.
type WindowSource interface {
	TopLevelWindows() []Element
}
