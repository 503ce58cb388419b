package snake

import "github.com/vovakirdan/snek/internal/core"

// Body is anything that occupies space in the world. Collision checks work
// on Bodies so heads, segments, food and shots share one overlap rule.
type Body interface {
	Box() core.Box
}

// cellBody is a grid-aligned body covering exactly one cell.
type cellBody struct {
	cell core.Point
	size float64
}

func (c cellBody) Box() core.Box {
	return core.SquareAt(c.cell.Scale(c.size), c.size)
}

// shotBody is a projectile with a one-cell extent anchored at its position.
type shotBody struct {
	pos  core.Vec
	size float64
}

func (s shotBody) Box() core.Box {
	return core.SquareAt(s.pos, s.size)
}

// Overlaps reports whether two bodies share a region of positive area.
func Overlaps(a, b Body) bool {
	return a.Box().Overlaps(b.Box())
}

// DeathCause records why a run ended.
type DeathCause int

const (
	CauseNone DeathCause = iota
	CauseSelf
	CauseProjectile
	CauseWall
)

func (c DeathCause) String() string {
	switch c {
	case CauseSelf:
		return "self"
	case CauseProjectile:
		return "projectile"
	case CauseWall:
		return "wall"
	default:
		return "none"
	}
}

// EventKind identifies something that happened during a frame.
type EventKind int

const (
	EventFoodEaten EventKind = iota
	EventFoodShot
	EventFoodSpawned
	EventFired
	EventDeath
)

func (k EventKind) String() string {
	switch k {
	case EventFoodEaten:
		return "food_eaten"
	case EventFoodShot:
		return "food_shot"
	case EventFoodSpawned:
		return "food_spawned"
	case EventFired:
		return "fired"
	case EventDeath:
		return "death"
	default:
		return "unknown"
	}
}

// Event is one gameplay event, reported by World.Frame.
type Event struct {
	Kind  EventKind
	Tick  uint64
	Cell  core.Point
	Cause DeathCause
}
