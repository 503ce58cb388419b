// Package core provides fundamental types and utilities shared by the
// simulation and the terminal platform. It contains no Bubble Tea imports to
// keep game logic pure and testable.
package core

import "golang.org/x/exp/constraints"

// Rect represents an integer rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Point is an integer grid coordinate.
type Point struct {
	X, Y int
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Scale converts a grid point into world units for the given cell size.
func (p Point) Scale(cell float64) Vec {
	return Vec{X: float64(p.X) * cell, Y: float64(p.Y) * cell}
}

// Vec is a 2D vector in world units. Y grows upwards.
type Vec struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Mul returns v scaled by k.
func (v Vec) Mul(k float64) Vec {
	return Vec{X: v.X * k, Y: v.Y * k}
}

// Box is an axis-aligned bounding box in world units.
// Min is the bottom-left corner, Size its extent on both axes.
type Box struct {
	Min  Vec
	Size Vec
}

// SquareAt returns a square box of side size anchored at pos.
func SquareAt(pos Vec, size float64) Box {
	return Box{Min: pos, Size: Vec{X: size, Y: size}}
}

// Max returns the top-right corner.
func (b Box) Max() Vec {
	return b.Min.Add(b.Size)
}

// Overlaps reports whether the boxes share a region of strictly positive
// area. Boxes that only touch along an edge or a corner do not overlap.
func (b Box) Overlaps(o Box) bool {
	bMax, oMax := b.Max(), o.Max()
	if b.Min.X >= oMax.X || o.Min.X >= bMax.X {
		return false
	}
	if b.Min.Y >= oMax.Y || o.Min.Y >= bMax.Y {
		return false
	}
	return true
}

// Clamp restricts a value to be within [lo, hi].
func Clamp[T constraints.Integer | constraints.Float](val, lo, hi T) T {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Wrap maps v into [lo, hi) by modular arithmetic.
func Wrap[T constraints.Integer](v, lo, hi T) T {
	span := hi - lo
	if span <= 0 {
		return lo
	}
	r := (v - lo) % span
	if r < 0 {
		r += span
	}
	return lo + r
}
