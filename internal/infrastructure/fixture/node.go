// Package fixture provides an in-memory host element tree.
// It backs the demo presenter, the D-Bus server and the engine's tests.
package fixture

import (
	"errors"
	"fmt"

	"github.com/bnema/dumbhint/internal/application/port"
	"github.com/bnema/dumbhint/internal/domain/entity"
)

// ErrDestroyed is returned when walking a node that was destroyed.
var ErrDestroyed = errors.New("element destroyed")

const itemWidth = 12

// Node is one element of a fixture tree.
type Node struct {
	Name     string  `toml:"name"`
	Type     string  `toml:"type"`
	Text     string  `toml:"text"`
	X        int     `toml:"x"`
	Y        int     `toml:"y"`
	W        int     `toml:"w"`
	H        int     `toml:"h"`
	Hidden   bool    `toml:"hidden"`
	Disabled bool    `toml:"disabled"`
	Checked  bool    `toml:"checked"`
	Nodes    []*Node `toml:"children"`

	// Composite content: Rows x Cols cells, of which VisibleRows rows
	// starting at FirstRow are scrolled into view.
	Rows        int `toml:"rows"`
	Cols        int `toml:"cols"`
	FirstRow    int `toml:"first_row"`
	VisibleRows int `toml:"visible_rows"`

	// Popups opened by OpenMenu / OpenContextMenu. They are roots of their own.
	Submenu     *Node `toml:"submenu"`
	ContextMenu *Node `toml:"context_menu"`

	parent    *Node
	destroyed bool
}

// El creates a node and adopts the given children.
func El(tag entity.TypeTag, name string, children ...*Node) *Node {
	n := &Node{Name: name, Type: string(tag)}
	n.Append(children...)
	return n
}

// Window creates a top-level window node.
func Window(name string, children ...*Node) *Node {
	return El(entity.TagWindow, name, children...)
}

// Append adopts children at the end of n's child list.
func (n *Node) Append(children ...*Node) *Node {
	for _, c := range children {
		if c == nil {
			continue
		}
		c.parent = n
		n.Nodes = append(n.Nodes, c)
	}
	return n
}

// Disable marks the node disabled.
func (n *Node) Disable() *Node { n.Disabled = true; return n }

// Hide marks the node invisible.
func (n *Node) Hide() *Node { n.Hidden = true; return n }

// WithText sets the display text.
func (n *Node) WithText(text string) *Node { n.Text = text; return n }

// At sets explicit bounds.
func (n *Node) At(x, y, w, h int) *Node {
	n.X, n.Y, n.W, n.H = x, y, w, h
	return n
}

// WithItems makes the node a grid of rows x cols with a scrolled window of rows.
func (n *Node) WithItems(rows, cols, firstRow, visibleRows int) *Node {
	n.Rows, n.Cols, n.FirstRow, n.VisibleRows = rows, cols, firstRow, visibleRows
	return n
}

// WithSubmenu attaches the popup opened by OpenMenu. The popup starts hidden.
func (n *Node) WithSubmenu(menu *Node) *Node {
	menu.Hidden = true
	n.Submenu = menu
	return n
}

// WithContextMenu attaches the popup opened by OpenContextMenu.
func (n *Node) WithContextMenu(menu *Node) *Node {
	menu.Hidden = true
	n.ContextMenu = menu
	return n
}

// Destroy marks the node destroyed; walking its children fails afterwards.
func (n *Node) Destroy() { n.destroyed = true }

// Destroyed reports whether Destroy was called.
func (n *Node) Destroyed() bool { return n.destroyed }

// TypeTag implements port.Element.
func (n *Node) TypeTag() entity.TypeTag {
	if n.Type == "" {
		return entity.TagContainer
	}
	return entity.TypeTag(n.Type)
}

// ID implements port.Identified.
func (n *Node) ID() string { return n.Name }

// Bounds implements port.Element.
func (n *Node) Bounds() entity.Rect {
	return entity.Rect{X: n.X, Y: n.Y, W: n.W, H: n.H}
}

// IsVisible implements port.Element.
func (n *Node) IsVisible() bool { return !n.Hidden && !n.destroyed }

// IsEnabled implements port.Element.
func (n *Node) IsEnabled() bool { return !n.Disabled }

// Children implements port.Element.
func (n *Node) Children() ([]port.Element, error) {
	if n.destroyed {
		return nil, fmt.Errorf("%s: %w", n.Name, ErrDestroyed)
	}
	out := make([]port.Element, 0, len(n.Nodes))
	for _, c := range n.Nodes {
		out = append(out, c)
	}
	return out, nil
}

// Parent implements port.Element.
func (n *Node) Parent() port.Element {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

// VisibleItems implements port.ItemContainer.
func (n *Node) VisibleItems() []entity.Point {
	if n.Rows <= 0 || n.Cols <= 0 {
		return nil
	}
	last := n.FirstRow + n.VisibleRows
	if n.VisibleRows <= 0 || last > n.Rows {
		last = n.Rows
	}
	var items []entity.Point
	for row := max(n.FirstRow, 0); row < last; row++ {
		for col := 0; col < n.Cols; col++ {
			items = append(items, entity.Point{X: col, Y: row})
		}
	}
	return items
}

// ItemBounds implements port.ItemContainer.
func (n *Node) ItemBounds(pos entity.Point) entity.Rect {
	return entity.Rect{
		X: n.X + 2 + pos.X*itemWidth,
		Y: n.Y + 1 + pos.Y - n.FirstRow,
		W: itemWidth - 1,
		H: 1,
	}
}

// ItemText returns the display text of one item.
func (n *Node) ItemText(pos entity.Point) string {
	return fmt.Sprintf("%s[%d,%d]", n.Name, pos.Y, pos.X)
}

// Walk visits n and its descendants in pre-order until fn returns false.
func (n *Node) Walk(fn func(*Node) bool) bool {
	if !fn(n) {
		return false
	}
	for _, c := range n.Nodes {
		if !c.Walk(fn) {
			return false
		}
	}
	return true
}

// Find returns the first node named name in n's subtree, including popups.
func (n *Node) Find(name string) *Node {
	var found *Node
	n.Walk(func(c *Node) bool {
		if c.Name == name {
			found = c
			return false
		}
		for _, popup := range []*Node{c.Submenu, c.ContextMenu} {
			if popup == nil {
				continue
			}
			if f := popup.Find(name); f != nil {
				found = f
				return false
			}
		}
		return true
	})
	return found
}

// link restores parent pointers after decoding. Popups start closed.
func (n *Node) link() {
	for _, c := range n.Nodes {
		c.parent = n
		c.link()
	}
	for _, popup := range []*Node{n.Submenu, n.ContextMenu} {
		if popup != nil {
			popup.parent = nil
			popup.Hidden = true
			popup.link()
		}
	}
}
