package snake

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/snek/internal/core"
)

// ErrInvalidBounds is returned when the play area has no usable size.
var ErrInvalidBounds = errors.New("snake: play area must have positive finite size")

// Bounds is the play area size in world units, centered on the origin.
// It covers x in [-W/2, W/2) and y in [-H/2, H/2).
type Bounds struct {
	W, H float64
}

// BoundsProvider supplies the current play area. It is queried on every use,
// so the size may change between frames.
type BoundsProvider interface {
	PlayBounds() Bounds
}

// FixedBounds is a BoundsProvider that never changes.
type FixedBounds Bounds

// PlayBounds implements BoundsProvider.
func (f FixedBounds) PlayBounds() Bounds { return Bounds(f) }

// Validate reports ErrInvalidBounds for zero, negative or non-finite sizes.
func (b Bounds) Validate() error {
	if !(b.W > 0) || !(b.H > 0) || math.IsInf(b.W, 0) || math.IsInf(b.H, 0) {
		return fmt.Errorf("%w: got %vx%v", ErrInvalidBounds, b.W, b.H)
	}
	return nil
}

// MinX returns the left edge.
func (b Bounds) MinX() float64 { return -b.W / 2 }

// MinY returns the bottom edge.
func (b Bounds) MinY() float64 { return -b.H / 2 }

// ContainsPoint reports whether p lies within the bounds, edges included.
func (b Bounds) ContainsPoint(p core.Vec) bool {
	return math.Abs(p.X) <= b.W/2 && math.Abs(p.Y) <= b.H/2
}

// CellRange returns the lowest and highest grid cells that lie entirely
// inside the bounds for the given cell size.
func (b Bounds) CellRange(cell float64) (lo, hi core.Point) {
	lo = core.Point{
		X: int(math.Ceil(b.MinX() / cell)),
		Y: int(math.Ceil(b.MinY() / cell)),
	}
	hi = core.Point{
		X: int(math.Floor(b.W/2/cell)) - 1,
		Y: int(math.Floor(b.H/2/cell)) - 1,
	}
	// A play area narrower than one cell still gets the origin cell.
	hi.X = max(hi.X, lo.X)
	hi.Y = max(hi.Y, lo.Y)
	return lo, hi
}

// ContainsCell reports whether cell lies entirely inside the bounds.
func (b Bounds) ContainsCell(cell core.Point, size float64) bool {
	lo, hi := b.CellRange(size)
	return cell.X >= lo.X && cell.X <= hi.X && cell.Y >= lo.Y && cell.Y <= hi.Y
}

// WrapCell maps a cell that left the bounds back in from the opposite side.
func (b Bounds) WrapCell(cell core.Point, size float64) core.Point {
	lo, hi := b.CellRange(size)
	return core.Point{
		X: core.Wrap(cell.X, lo.X, hi.X+1),
		Y: core.Wrap(cell.Y, lo.Y, hi.Y+1),
	}
}
