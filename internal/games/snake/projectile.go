package snake

import "github.com/vovakirdan/snek/internal/core"

// Projectile is a shot moving in a straight line, one velocity step per frame.
type Projectile struct {
	Pos core.Vec
	Vel core.Vec

	// fresh is set during the frame the shot was fired in; such a shot
	// cannot hit the head that fired it.
	fresh bool
}

// Projectiles manages live shots. Motion is frame driven, not tick driven.
type Projectiles struct {
	live     []Projectile
	speed    float64
	cellSize float64
}

// NewProjectiles creates an empty set of shots with the given speed (world
// units per frame) and grid cell size.
func NewProjectiles(speed, cellSize float64) *Projectiles {
	return &Projectiles{speed: speed, cellSize: cellSize}
}

// Fire spawns a shot one cell beyond origin along facing.
func (p *Projectiles) Fire(origin core.Vec, facing Direction) Projectile {
	dir := facing.Unit()
	shot := Projectile{
		Pos:   origin.Add(dir.Mul(p.cellSize)),
		Vel:   dir.Mul(p.speed),
		fresh: true,
	}
	p.spawn(shot)
	return shot
}

func (p *Projectiles) spawn(shot Projectile) {
	p.live = append(p.live, shot)
}

// settle ends the grace frame of shots fired in the previous frame.
func (p *Projectiles) settle() {
	for i := range p.live {
		p.live[i].fresh = false
	}
}

// Advance moves every shot by its velocity.
func (p *Projectiles) Advance() {
	for i := range p.live {
		p.live[i].Pos = p.live[i].Pos.Add(p.live[i].Vel)
	}
}

// Cull removes shots that left the bounds on any axis and returns how many
// were removed.
func (p *Projectiles) Cull(b Bounds) int {
	return p.removeIf(func(s Projectile) bool {
		return !b.ContainsPoint(s.Pos)
	})
}

// removeIf drops every shot matching fn, preserving order.
func (p *Projectiles) removeIf(fn func(Projectile) bool) int {
	kept := p.live[:0]
	for _, s := range p.live {
		if !fn(s) {
			kept = append(kept, s)
		}
	}
	removed := len(p.live) - len(kept)
	clear(p.live[len(kept):])
	p.live = kept
	return removed
}

// Len returns the number of live shots.
func (p *Projectiles) Len() int {
	return len(p.live)
}

// All returns a copy of the live shots.
func (p *Projectiles) All() []Projectile {
	return append([]Projectile(nil), p.live...)
}
