package snake

import "testing"

func TestDirectionOpposite(t *testing.T) {
	tests := []struct {
		d, opposite Direction
	}{
		{DirUp, DirDown},
		{DirDown, DirUp},
		{DirLeft, DirRight},
		{DirRight, DirLeft},
	}
	for _, tc := range tests {
		if got := tc.d.Opposite(); got != tc.opposite {
			t.Errorf("%v.Opposite() = %v, expected %v", tc.d, got, tc.opposite)
		}
		step, back := tc.d.Step(), tc.opposite.Step()
		if step.X+back.X != 0 || step.Y+back.Y != 0 {
			t.Errorf("steps of %v and %v should cancel out", tc.d, tc.opposite)
		}
	}
}

func TestDirectionStepIsYUp(t *testing.T) {
	if DirUp.Step().Y != 1 || DirDown.Step().Y != -1 {
		t.Error("up should increase y, down should decrease it")
	}
	if DirLeft.Unit().X != -1 || DirRight.Unit().X != 1 {
		t.Error("unexpected horizontal unit vectors")
	}
}

func TestParseDirection(t *testing.T) {
	for _, d := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
		got, err := ParseDirection(d.String())
		if err != nil || got != d {
			t.Errorf("ParseDirection(%q) = %v, %v", d.String(), got, err)
		}
	}
	if got, err := ParseDirection("LEFT"); err != nil || got != DirLeft {
		t.Errorf("ParseDirection should be case-insensitive, got %v, %v", got, err)
	}
	if _, err := ParseDirection("north"); err == nil {
		t.Error("expected error for unknown direction")
	}
}

func TestControllerResolve(t *testing.T) {
	var c Controller

	if got := c.Resolve(DirLeft); got != DirLeft {
		t.Errorf("no input should keep facing, got %v", got)
	}

	c.Request(DirUp)
	if got := c.Resolve(DirLeft); got != DirUp {
		t.Errorf("valid turn should commit, got %v", got)
	}

	// Reversal is accepted into the pending slot but never commits.
	c.Request(DirDown)
	if p, ok := c.pending(); !ok || p != DirDown {
		t.Errorf("pending() = %v, %v; expected down", p, ok)
	}
	if got := c.Resolve(DirUp); got != DirUp {
		t.Errorf("reversal should keep facing, got %v", got)
	}
	// And it is discarded, so it does not come back on the next tick.
	if p, _ := c.pending(); p != DirUp {
		t.Errorf("rejected reversal should be discarded, pending = %v", p)
	}

	// Last press wins within one tick.
	c.Request(DirLeft)
	c.Request(DirRight)
	if got := c.Resolve(DirUp); got != DirRight {
		t.Errorf("last press should win, got %v", got)
	}

	c.Reset()
	if _, ok := c.pending(); ok {
		t.Error("Reset() should clear pending input")
	}
}
