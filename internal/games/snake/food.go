package snake

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/snek/internal/core"
)

// Food is the single edible item.
type Food struct {
	Cell core.Point
}

// Spawner owns the food item and replaces it when eaten.
//
// Placement does not avoid the snake's own cells: food can appear under the
// trail or the head, in which case the head eats it on its next visit.
type Spawner struct {
	food     Food
	alive    bool
	cellSize float64
}

// NewSpawner creates an empty spawner for the given grid cell size.
func NewSpawner(cellSize float64) *Spawner {
	return &Spawner{cellSize: cellSize}
}

// EnsureSpawned places a new food item when none is alive.
// Calling it while food exists is a no-op. It reports whether food was placed.
func (s *Spawner) EnsureSpawned(b Bounds, rng *rand.Rand) (bool, error) {
	if s.alive {
		return false, nil
	}
	if err := b.Validate(); err != nil {
		return false, err
	}

	// Uniform point in the play area, floor-aligned to the grid. Clamping
	// only matters when the area is not a whole number of cells wide.
	x := b.MinX() + rng.Float64()*b.W
	y := b.MinY() + rng.Float64()*b.H
	lo, hi := b.CellRange(s.cellSize)
	cell := core.Point{
		X: core.Clamp(int(math.Floor(x/s.cellSize)), lo.X, hi.X),
		Y: core.Clamp(int(math.Floor(y/s.cellSize)), lo.Y, hi.Y),
	}

	s.food = Food{Cell: cell}
	s.alive = true
	return true, nil
}

// place puts food at cell, replacing any existing item.
func (s *Spawner) place(cell core.Point) {
	s.food = Food{Cell: cell}
	s.alive = true
}

// Food returns the current food item and whether one is alive.
func (s *Spawner) Food() (Food, bool) {
	return s.food, s.alive
}

// Eat destroys the current food item.
func (s *Spawner) Eat() {
	s.alive = false
}
