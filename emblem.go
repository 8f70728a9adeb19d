package emblem

import "image/color"

// Vec2 is a 2D vector used for positions, offsets, sizes, and deltas
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Center returns the rectangle's center point.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	x0 := min(r.X, other.X)
	y0 := min(r.Y, other.Y)
	x1 := max(r.X+r.Width, other.X+other.Width)
	y1 := max(r.Y+r.Height, other.Y+other.Height)
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Inset returns the rectangle shrunk by the given amount on all four sides.
// A negative amount grows the rectangle.
func (r Rect) Inset(amount float64) Rect {
	return Rect{
		X:      r.X + amount,
		Y:      r.Y + amount,
		Width:  r.Width - 2*amount,
		Height: r.Height - 2*amount,
	}
}

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default fill (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// toRGBA converts a Color to a premultiplied color.RGBA for rendering.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(c.R * c.A * 255),
		G: uint8(c.G * c.A * 255),
		B: uint8(c.B * c.A * 255),
		A: uint8(c.A * 255),
	}
}

// ElementKind distinguishes rendering and serialization behavior for an Element.
type ElementKind uint8

const (
	KindGroup  ElementKind = iota // container with no visual output of its own
	KindRect                      // filled rectangle over the element's base box
	KindCircle                    // filled circle inscribed in the base box
	KindPath                      // stroked path from the element's "d" attribute
)

// Breakpoint identifies the active responsive layout mode.
type Breakpoint uint8

const (
	BreakpointMobile  Breakpoint = iota // narrow viewport, flush margins
	BreakpointDesktop                   // wide viewport, corner anchors
)

// GroupID identifies one of the three fixed logo groups.
type GroupID uint8

const (
	GroupV1 GroupID = iota
	GroupV2
	GroupV3
)

// groupCount is fixed: groups are never added or removed at runtime.
const groupCount = 3

// Group is one animated visual unit of the logo: a root container that
// carries the transform, an invisible drag/anchor handle, and a label.
type Group struct {
	ID     GroupID
	Root   *Element
	Body   *Element
	Handle *Element
	Label  *Element
}
