// Package entity defines domain entities for the hinting engine.
// These entities are pure Go types with no toolkit dependencies.
package entity

import "fmt"

// Rect is an element's position and size in window coordinates.
type Rect struct {
	X, Y int // Top-left position relative to the window
	W, H int // Width and height
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (cx, cy int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Point is a position. Composite elements use it as a (column, row) item index.
type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
