package internal

import "fmt"

// A boundary vertex. Only X and Z take part in any geometry. Y is the height of
// the point (usually following the terrain) and is carried along untouched.
//
// Coordinates are single precision on purpose. The guards compare intermediate
// values against zero exactly, so changing the precision changes which edits
// get accepted.
type Point struct {
	X float32 `yaml:"x" json:"x"`
	Y float32 `yaml:"y" json:"y"`
	Z float32 `yaml:"z" json:"z"`
}

// An edge is identified by the index of its first point. Edge i always runs from
// point i to point (i+1) mod n.
type Edge struct {
	Start, End int
}

// A pair of edges which cross each other.
type EdgePair struct {
	A, B Edge
}

// An edit that is being considered but hasn't been applied.
type Segment struct {
	Start, End Point
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g, %g)", p.X, p.Y, p.Z)
}

func (e Edge) String() string {
	return fmt.Sprintf("%d-%d", e.Start, e.End)
}

// Does the edge have the given point index as an endpoint?
func (e Edge) Touches(index int) bool {
	return e.Start == index || e.End == index
}

// Adjacent edges share an endpoint index. An edge is considered adjacent to
// itself.
func (e Edge) AdjacentTo(other Edge) bool {
	return e.Touches(other.Start) || e.Touches(other.End)
}
