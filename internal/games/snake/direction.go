package snake

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/snek/internal/core"
)

// Direction represents the snake's movement direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// Step returns the grid offset for one cell of movement. Y grows upwards.
func (d Direction) Step() core.Point {
	switch d {
	case DirUp:
		return core.Point{Y: 1}
	case DirDown:
		return core.Point{Y: -1}
	case DirLeft:
		return core.Point{X: -1}
	default:
		return core.Point{X: 1}
	}
}

// Unit returns the unit vector of the direction in world space.
func (d Direction) Unit() core.Vec {
	s := d.Step()
	return core.Vec{X: float64(s.X), Y: float64(s.Y)}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDirection converts a config string into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(s) {
	case "up":
		return DirUp, nil
	case "down":
		return DirDown, nil
	case "left":
		return DirLeft, nil
	case "right":
		return DirRight, nil
	}
	return DirLeft, fmt.Errorf("snake: unknown direction %q", s)
}

// directionFor maps an input action to a direction.
func directionFor(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	}
	return 0, false
}

// Controller buffers directional input between ticks.
//
// Requests are not validated when they arrive: the last one wins. The check
// against the committed facing happens in Resolve, once per tick, so a
// reversal can never commit. A rejected reversal is discarded rather than
// kept around for later ticks.
type Controller struct {
	next Direction
	has  bool
}

// Request records dir as the pending direction.
func (c *Controller) Request(dir Direction) {
	c.next = dir
	c.has = true
}

// pending returns the pending direction, if any.
func (c *Controller) pending() (Direction, bool) {
	return c.next, c.has
}

// Resolve returns the facing to commit for this tick given the current one.
func (c *Controller) Resolve(current Direction) Direction {
	if !c.has {
		return current
	}
	if c.next == current.Opposite() {
		c.next = current
		return current
	}
	return c.next
}

// Reset clears pending input.
func (c *Controller) Reset() {
	c.next = 0
	c.has = false
}
