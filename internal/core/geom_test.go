package core

import "testing"

func TestBoxOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{
			name:     "same cell",
			a:        SquareAt(Vec{0, 0}, 25),
			b:        SquareAt(Vec{0, 0}, 25),
			expected: true,
		},
		{
			name:     "partial overlap",
			a:        SquareAt(Vec{0, 0}, 25),
			b:        SquareAt(Vec{10, 10}, 25),
			expected: true,
		},
		{
			name:     "adjacent horizontal (edge touch)",
			a:        SquareAt(Vec{0, 0}, 25),
			b:        SquareAt(Vec{25, 0}, 25),
			expected: false,
		},
		{
			name:     "adjacent vertical (edge touch)",
			a:        SquareAt(Vec{0, 0}, 25),
			b:        SquareAt(Vec{0, -25}, 25),
			expected: false,
		},
		{
			name:     "corner touch",
			a:        SquareAt(Vec{0, 0}, 25),
			b:        SquareAt(Vec{25, 25}, 25),
			expected: false,
		},
		{
			name:     "overlap on one axis only",
			a:        SquareAt(Vec{0, 0}, 25),
			b:        SquareAt(Vec{5, 40}, 25),
			expected: false,
		},
		{
			name:     "contained",
			a:        SquareAt(Vec{0, 0}, 25),
			b:        SquareAt(Vec{5, 5}, 5),
			expected: true,
		},
		{
			name:     "sliver overlap",
			a:        SquareAt(Vec{0, 0}, 25),
			b:        SquareAt(Vec{24.5, 0}, 25),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Overlaps(tc.a); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestPointScale(t *testing.T) {
	p := Point{X: -2, Y: 3}.Add(Point{X: 1, Y: 0})
	v := p.Scale(25)
	if v != (Vec{X: -25, Y: 75}) {
		t.Errorf("Scale() = %+v, expected (-25, 75)", v)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}

	if got := Clamp(0.01, 0.05, 1.0); got != 0.05 {
		t.Errorf("Clamp(float) = %f, expected 0.05", got)
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		v, lo, hi, expected int
	}{
		{0, -5, 5, 0},
		{5, -5, 5, -5},
		{-6, -5, 5, 4},
		{14, -5, 5, 4},
		{3, 3, 3, 3},
	}

	for _, tc := range tests {
		if got := Wrap(tc.v, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Wrap(%d, %d, %d) = %d, expected %d", tc.v, tc.lo, tc.hi, got, tc.expected)
		}
	}
}
