package internal

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSegmentsIntersect(t *testing.T) {
	cases := []struct {
		name       string
		a, b, c, d Point
		expected   bool
	}{
		{"proper crossing", xz(0, 0), xz(10, 10), xz(10, 0), xz(0, 10), true},
		{"disjoint", xz(0, 0), xz(1, 1), xz(5, 0), xz(6, 1), false},
		{"t-junction", xz(0, 0), xz(10, 0), xz(5, 0), xz(5, 5), true},
		{"shared endpoint", xz(0, 0), xz(10, 0), xz(10, 0), xz(10, 10), true},
		{"would cross if extended", xz(0, 0), xz(4, 4), xz(10, 0), xz(0, 10), false},
		{"parallel", xz(0, 0), xz(10, 0), xz(0, 1), xz(10, 1), false},
		{"collinear overlapping", xz(0, 0), xz(10, 0), xz(5, 0), xz(15, 0), true},
		// The documented approximation: collinear but apart still counts.
		{"collinear apart", xz(0, 0), xz(1, 0), xz(5, 0), xz(6, 0), true},
		{"zero length on segment", xz(5, 0), xz(5, 0), xz(0, 0), xz(10, 0), true},
		{"zero length off segment", xz(5, 1), xz(5, 1), xz(0, 0), xz(10, 0), false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.expected, SegmentsIntersect(c.a, c.b, c.c, c.d))
		})
	}
}

func TestSegmentsIntersect_IgnoresHeight(t *testing.T) {
	a := Point{X: 0, Y: 1000, Z: 0}
	b := Point{X: 10, Y: -1000, Z: 10}
	c := Point{X: 10, Y: 3, Z: 0}
	d := Point{X: 0, Y: 99, Z: 10}
	assert.True(t, SegmentsIntersect(a, b, c, d))

	c.X, d.X = 20, 20
	assert.False(t, SegmentsIntersect(a, b, c, d))
}

// Swapping the segments, or the ends of either segment, never changes the
// answer. Integer coordinates keep every intermediate value exact, so this holds
// even in the collinear branch.
func TestSegmentsIntersect_Symmetric(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	randomPoint := func() Point {
		return xz(float32(rng.Intn(11)), float32(rng.Intn(11)))
	}

	for i := 0; i < 5000; i++ {
		a, b, c, d := randomPoint(), randomPoint(), randomPoint(), randomPoint()
		expected := SegmentsIntersect(a, b, c, d)
		assert.Equal(t, expected, SegmentsIntersect(c, d, a, b), "swap %v-%v / %v-%v", a, b, c, d)
		assert.Equal(t, expected, SegmentsIntersect(b, a, c, d), "reverse first %v-%v / %v-%v", a, b, c, d)
		assert.Equal(t, expected, SegmentsIntersect(a, b, d, c), "reverse second %v-%v / %v-%v", a, b, c, d)
	}
}

func TestSegmentIntersects(t *testing.T) {
	s := Segment{xz(0, 0), xz(10, 10)}
	assert.True(t, s.Intersects(Segment{xz(0, 10), xz(10, 0)}))
	assert.False(t, s.Intersects(Segment{xz(0, 10), xz(1, 20)}))
}
