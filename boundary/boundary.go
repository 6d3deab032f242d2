// Package boundary holds the editable outlines of the world: regions and roads.
// Every edit goes through the self-intersection guards, and an edit that would
// make the outline cross itself is rejected, leaving the points as they were.
package boundary

import (
	"fmt"
	"log/slog"

	"github.com/chewxy/math32"
	"github.com/osuushi/boundguard"
	"github.com/osuushi/boundguard/internal/dbg"
	"github.com/pkg/errors"
)

type Point = boundguard.Point

type Kind string

const (
	Region Kind = "region"
	Road   Kind = "road"
)

var (
	ErrSelfIntersection = errors.New("boundary would cross itself")
	ErrIndexOutOfRange  = errors.New("point index out of range")
	ErrTooFewPoints     = errors.New("too few points")
	ErrUnknownKind      = errors.New("unknown boundary kind")
)

// The fewest points each kind needs to mean anything. A region with two points
// has no area.
func (k Kind) MinPoints() int {
	if k == Road {
		return 2
	}
	return 3
}

func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case Region, Road:
		return Kind(s), nil
	case "":
		return Region, nil
	}
	return "", errors.Wrapf(ErrUnknownKind, "%q", s)
}

type Boundary struct {
	Name   string  `yaml:"name"`
	Kind   Kind    `yaml:"kind"`
	Points []Point `yaml:"points"`

	log *slog.Logger
}

type Option func(*Boundary)

// Log rejected edits to the given logger, at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Boundary) {
		b.log = logger
	}
}

func New(name string, kind Kind, points []Point, opts ...Option) *Boundary {
	b := &Boundary{Name: name, Kind: kind, Points: points}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Apply options after the fact, for boundaries that came out of a decoder.
func (b *Boundary) Configure(opts ...Option) {
	for _, opt := range opts {
		opt(b)
	}
}

func (b *Boundary) String() string {
	return fmt.Sprintf("%s %q (%d points)", b.Kind, b.Name, len(b.Points))
}

// A deep copy, sharing the logger.
func (b *Boundary) Clone() *Boundary {
	clone := *b
	clone.Points = append([]Point(nil), b.Points...)
	return &clone
}

// Insert p so that it ends up at index, between the points currently at
// index-1 and index. Index len(Points) appends.
func (b *Boundary) InsertPoint(index int, p Point) error {
	if index < 0 || index > len(b.Points) {
		return errors.Wrapf(ErrIndexOutOfRange, "insert at %d into %d points", index, len(b.Points))
	}
	crosses, err := boundguard.CheckInsertOrMove(b.Points, p, index)
	if err != nil {
		return errors.Wrap(err, "insert")
	}
	if crosses {
		b.reject("insert", index, p)
		return errors.Wrapf(ErrSelfIntersection, "insert %v at %d", p, index)
	}

	b.Points = append(b.Points, Point{})
	copy(b.Points[index+1:], b.Points[index:])
	b.Points[index] = p
	return nil
}

func (b *Boundary) AppendPoint(p Point) error {
	return b.InsertPoint(len(b.Points), p)
}

func (b *Boundary) DeletePoint(index int) error {
	if index < 0 || index >= len(b.Points) {
		return errors.Wrapf(ErrIndexOutOfRange, "delete %d of %d points", index, len(b.Points))
	}
	if len(b.Points) <= b.Kind.MinPoints() {
		return errors.Wrapf(ErrTooFewPoints, "delete from %s with %d points", b.Kind, len(b.Points))
	}
	crosses, err := boundguard.CheckDelete(b.Points, index)
	if err != nil {
		return errors.Wrap(err, "delete")
	}
	if crosses {
		b.reject("delete", index, b.Points[index])
		return errors.Wrapf(ErrSelfIntersection, "delete %d", index)
	}

	b.Points = append(b.Points[:index], b.Points[index+1:]...)
	return nil
}

// Move the point at index to p. The new position is written first and checked
// in place, then put back if the guard rejects it.
func (b *Boundary) MovePoint(index int, p Point) error {
	if index < 0 || index >= len(b.Points) {
		return errors.Wrapf(ErrIndexOutOfRange, "move %d of %d points", index, len(b.Points))
	}
	old := b.Points[index]
	b.Points[index] = p
	crosses, err := boundguard.CheckMove(index, b.Points)
	if err != nil || crosses {
		b.Points[index] = old
	}
	if err != nil {
		return errors.Wrap(err, "move")
	}
	if crosses {
		b.reject("move", index, p)
		return errors.Wrapf(ErrSelfIntersection, "move %d to %v", index, p)
	}
	return nil
}

// Check the boundary as a whole. This is what to run after loading from a file
// or after a bulk edit, since the edit guards assume they start from a valid
// boundary.
func (b *Boundary) Validate() error {
	if _, err := ParseKind(string(b.Kind)); err != nil {
		return err
	}
	if len(b.Points) < b.Kind.MinPoints() {
		return errors.Wrapf(ErrTooFewPoints, "%s needs %d, has %d", b.Kind, b.Kind.MinPoints(), len(b.Points))
	}
	if !boundguard.CheckAllPoints(b.Points) {
		return nil
	}
	if crossings := boundguard.Crossings(b.Points); len(crossings) > 0 {
		c := crossings[0]
		return errors.Wrapf(ErrSelfIntersection, "edges %v and %v cross", c.A, c.B)
	}
	return ErrSelfIntersection
}

// Enclosed area on the X/Z plane. Only meaningful for a boundary that passes
// Validate.
func (b *Boundary) Area() float32 {
	return boundguard.Area(b.Points)
}

func (b *Boundary) Clockwise() bool {
	return boundguard.IsClockwise(b.Points)
}

// Reverse the point order if the boundary winds clockwise. Reports whether it
// did. Indexes change when it does, so do this before handing out indexes for
// edits.
func (b *Boundary) WindCounterclockwise() bool {
	if !b.Clockwise() {
		return false
	}
	b.Points = boundguard.Reverse(b.Points)
	return true
}

func (b *Boundary) Crossings() []boundguard.EdgePair {
	return boundguard.Crossings(b.Points)
}

func (b *Boundary) Contains(p Point) bool {
	return boundguard.Contains(b.Points, p)
}

// Bounding box on all three axes. Both corners are zero for an empty boundary.
func (b *Boundary) Bounds() (min, max Point) {
	if len(b.Points) == 0 {
		return
	}
	min = Point{X: math32.Inf(1), Y: math32.Inf(1), Z: math32.Inf(1)}
	max = Point{X: math32.Inf(-1), Y: math32.Inf(-1), Z: math32.Inf(-1)}
	for _, p := range b.Points {
		min.X = math32.Min(min.X, p.X)
		min.Y = math32.Min(min.Y, p.Y)
		min.Z = math32.Min(min.Z, p.Z)
		max.X = math32.Max(max.X, p.X)
		max.Y = math32.Max(max.Y, p.Y)
		max.Z = math32.Max(max.Z, p.Z)
	}
	return
}

func (b *Boundary) reject(op string, index int, p Point) {
	if b.log == nil {
		return
	}
	n := len(b.Points)
	prev := b.Points[(index-1+n)%n]
	next := b.Points[index%n]
	if op != "insert" {
		next = b.Points[(index+1)%n]
	}
	b.log.Debug("rejected edit",
		"boundary", b.Name,
		"op", op,
		"index", index,
		"point", dbg.Name(p),
		"between", dbg.EdgeLabel(prev, next, true),
	)
}
