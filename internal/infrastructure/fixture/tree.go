package fixture

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/bnema/dumbhint/internal/application/port"
)

// Tree is a set of top-level windows.
type Tree struct {
	Windows []*Node `toml:"windows"`
}

// NewTree builds a tree from already linked windows and lays it out.
func NewTree(windows ...*Node) *Tree {
	t := &Tree{Windows: windows}
	t.Layout()
	return t
}

// Load decodes a TOML fixture file.
func Load(path string) (*Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	t, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return t, nil
}

// Parse decodes a TOML fixture document.
func Parse(doc string) (*Tree, error) {
	var t Tree
	md, err := toml.Decode(doc, &t)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown fixture keys: %v", undecoded)
	}
	if len(t.Windows) == 0 {
		return nil, fmt.Errorf("fixture defines no windows")
	}
	for _, w := range t.Windows {
		if w.Type == "" {
			w.Type = "window"
		}
		w.parent = nil
		w.link()
	}
	t.Layout()
	return &t, nil
}

// TopLevelWindows implements port.WindowSource.
func (t *Tree) TopLevelWindows() []port.Element {
	out := make([]port.Element, 0, len(t.Windows))
	for _, w := range t.Windows {
		if !w.Destroyed() {
			out = append(out, w)
		}
	}
	return out
}

// Window returns the top-level window named name.
func (t *Tree) Window(name string) *Node {
	for _, w := range t.Windows {
		if w.Name == name {
			return w
		}
	}
	return nil
}

// Find searches every window for a node named name.
func (t *Tree) Find(name string) *Node {
	for _, w := range t.Windows {
		if n := w.Find(name); n != nil {
			return n
		}
	}
	return nil
}

// Layout assigns line-based bounds to nodes that have none: one line per
// element, two columns of indentation per depth, one line per visible
// composite row. Popups are placed to the right of their invoker.
func (t *Tree) Layout() {
	for _, w := range t.Windows {
		line := 0
		layoutNode(w, 0, &line)
	}
}

func layoutNode(n *Node, depth int, line *int) {
	if n.W == 0 && n.H == 0 {
		n.X = depth * 2
		n.Y = *line
		n.W = max(len(label(n)), 1)
		n.H = 1
	}
	*line = n.Y + 1
	if n.Rows > 0 && n.Cols > 0 {
		*line += len(n.VisibleItems()) / n.Cols
	}
	for _, c := range n.Nodes {
		layoutNode(c, depth+1, line)
	}
	for _, popup := range []*Node{n.Submenu, n.ContextMenu} {
		if popup == nil {
			continue
		}
		popupLine := n.Y
		layoutPopup(popup, n.X+n.W+4, &popupLine)
	}
}

func layoutPopup(n *Node, x int, line *int) {
	if n.W == 0 && n.H == 0 {
		n.X, n.Y = x, *line
		n.W, n.H = max(len(label(n)), 1), 1
	}
	*line = n.Y + 1
	for _, c := range n.Nodes {
		layoutPopup(c, n.X+2, line)
	}
	for _, popup := range []*Node{n.Submenu, n.ContextMenu} {
		if popup != nil {
			popupLine := n.Y
			layoutPopup(popup, n.X+n.W+4, &popupLine)
		}
	}
}

// Label returns the text the node displays: its Text, else its Name.
func (n *Node) Label() string { return label(n) }

func label(n *Node) string {
	if n.Text != "" {
		return n.Text
	}
	return n.Name
}
