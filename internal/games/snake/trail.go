package snake

import "github.com/vovakirdan/snek/internal/core"

// Segment is one body piece left behind by the head.
// TTL is the number of ticks it has left; 0 means it expires this tick.
type Segment struct {
	Cell core.Point
	TTL  int
}

// Trail holds the body segments in creation order (oldest first).
//
// Each tick the world calls Age, then collision checks, then Sweep. Segments
// whose TTL reached 0 in Age stay in the slice until Sweep so they still
// collide during that tick.
type Trail struct {
	segments []Segment
}

// Emit appends a segment created this tick.
func (t *Trail) Emit(cell core.Point, ttl int) {
	t.segments = append(t.segments, Segment{Cell: cell, TTL: ttl})
}

// Age decrements every segment's TTL by one.
func (t *Trail) Age() {
	for i := range t.segments {
		if t.segments[i].TTL > 0 {
			t.segments[i].TTL--
		}
	}
}

// Extend gives every live segment n more ticks of life.
// Expiring segments are not revived.
func (t *Trail) Extend(n int) {
	for i := range t.segments {
		if t.segments[i].TTL > 0 {
			t.segments[i].TTL += n
		}
	}
}

// Sweep drops expired segments, preserving order. It returns how many were removed.
func (t *Trail) Sweep() int {
	kept := t.segments[:0]
	for _, s := range t.segments {
		if s.TTL > 0 {
			kept = append(kept, s)
		}
	}
	removed := len(t.segments) - len(kept)
	clear(t.segments[len(kept):])
	t.segments = kept
	return removed
}

// Len returns the number of segments currently held.
func (t *Trail) Len() int {
	return len(t.segments)
}

// Segments returns a copy of the segments, oldest first.
func (t *Trail) Segments() []Segment {
	return append([]Segment(nil), t.segments...)
}

// each calls fn for every held segment, expiring ones included.
func (t *Trail) each(fn func(Segment) bool) {
	for _, s := range t.segments {
		if !fn(s) {
			return
		}
	}
}
