package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Paint selects the style of a canvas cell.
type Paint int

const (
	PaintNone Paint = iota
	PaintText
	PaintMuted
	PaintDisabled
	PaintPopup
	PaintFocused
	PaintEditing
	PaintHint
	PaintHintSelected
	PaintHintAccepted
)

// Canvas is a fixed grid of styled cells the demo draws element trees on.
type Canvas struct {
	width, height int
	cells         [][]rune
	paint         [][]Paint
}

// NewCanvas creates a blank canvas.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{width: max(width, 0), height: max(height, 0)}
	c.cells = make([][]rune, c.height)
	c.paint = make([][]Paint, c.height)
	for y := range c.cells {
		c.cells[y] = []rune(strings.Repeat(" ", c.width))
		c.paint[y] = make([]Paint, c.width)
	}
	return c
}

// Put writes s at (x, y). Cells outside the canvas are dropped.
func (c *Canvas) Put(x, y int, s string, p Paint) {
	if y < 0 || y >= c.height {
		return
	}
	for i, r := range []rune(s) {
		col := x + i
		if col < 0 || col >= c.width {
			continue
		}
		c.cells[y][col] = r
		c.paint[y][col] = p
	}
}

// Fill paints a w-wide run of blanks at (x, y).
func (c *Canvas) Fill(x, y, w int, p Paint) {
	c.Put(x, y, strings.Repeat(" ", max(w, 0)), p)
}

// Plain returns the canvas text without styles, trailing blanks trimmed.
func (c *Canvas) Plain() string {
	lines := make([]string, c.height)
	for y, row := range c.cells {
		lines[y] = strings.TrimRight(string(row), " ")
	}
	return strings.Join(lines, "\n")
}

// Render returns the canvas with each run of equal paint styled by t.
func (c *Canvas) Render(t *Theme) string {
	lines := make([]string, c.height)
	for y := range c.cells {
		var sb strings.Builder
		start := 0
		for x := 1; x <= c.width; x++ {
			if x < c.width && c.paint[y][x] == c.paint[y][start] {
				continue
			}
			sb.WriteString(t.paintStyle(c.paint[y][start]).Render(string(c.cells[y][start:x])))
			start = x
		}
		lines[y] = sb.String()
	}
	return strings.Join(lines, "\n")
}

func (t *Theme) paintStyle(p Paint) lipgloss.Style {
	switch p {
	case PaintText:
		return t.Normal
	case PaintMuted:
		return t.Subtle
	case PaintDisabled:
		return t.Disabled
	case PaintPopup:
		return t.Popup
	case PaintFocused:
		return t.Focused
	case PaintEditing:
		return t.Editing
	case PaintHint:
		return t.HintLabel
	case PaintHintSelected:
		return t.HintSelected
	case PaintHintAccepted:
		return t.HintAccepted
	default:
		return lipgloss.NewStyle()
	}
}
