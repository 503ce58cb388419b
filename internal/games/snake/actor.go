package snake

import "github.com/vovakirdan/snek/internal/core"

// ActorState is the movement state of the snake.
type ActorState int

const (
	ActorActive ActorState = iota
	ActorHalted
)

// Actor is the snake head: the single controllable entity of a world.
type Actor struct {
	Length int
	Facing Direction
	Cell   core.Point
	State  ActorState
}

// NewActor creates an active actor at cell.
func NewActor(length int, facing Direction, cell core.Point) Actor {
	return Actor{
		Length: max(length, 1),
		Facing: facing,
		Cell:   cell,
		State:  ActorActive,
	}
}

// Advance commits facing and moves one cell along it.
// It returns the pre-move cell, where the trail segment for this tick goes.
func (a *Actor) Advance(facing Direction) core.Point {
	prev := a.Cell
	a.Facing = facing
	a.Cell = a.Cell.Add(facing.Step())
	return prev
}

// Grow adds one to the actor length.
func (a *Actor) Grow() {
	a.Length++
}

// Halt moves the actor into its terminal state.
func (a *Actor) Halt() {
	a.State = ActorHalted
}

// Active reports whether the actor still moves on ticks.
func (a *Actor) Active() bool {
	return a.State == ActorActive
}
