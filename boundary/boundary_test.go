package boundary

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square() *Boundary {
	return New("plaza", Region, []Point{
		{X: 0, Z: 0},
		{X: 10, Z: 0},
		{X: 10, Z: 10},
		{X: 0, Z: 10},
	})
}

func TestInsertPoint(t *testing.T) {
	b := square()
	require.NoError(t, b.InsertPoint(1, Point{X: 5, Y: 2, Z: -5}))
	assert.Equal(t, []Point{
		{X: 0, Z: 0},
		{X: 5, Y: 2, Z: -5},
		{X: 10, Z: 0},
		{X: 10, Z: 10},
		{X: 0, Z: 10},
	}, b.Points)

	require.NoError(t, b.AppendPoint(Point{X: -5, Z: 5}))
	assert.Len(t, b.Points, 6)
	assert.Equal(t, Point{X: -5, Z: 5}, b.Points[5])
	assert.NoError(t, b.Validate())
}

func TestInsertPoint_Rejected(t *testing.T) {
	b := square()
	before := b.Clone()
	err := b.InsertPoint(1, Point{X: 5, Z: 20})
	assert.True(t, errors.Is(err, ErrSelfIntersection))
	assert.Equal(t, before.Points, b.Points)

	err = b.InsertPoint(5, Point{})
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))
	assert.Equal(t, before.Points, b.Points)
}

func TestDeletePoint(t *testing.T) {
	b := square()
	require.NoError(t, b.DeletePoint(0))
	assert.Equal(t, []Point{{X: 10, Z: 0}, {X: 10, Z: 10}, {X: 0, Z: 10}}, b.Points)

	err := b.DeletePoint(3)
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))
}

func TestDeletePoint_TooFewPoints(t *testing.T) {
	tri := New("tri", Region, []Point{{X: 0, Z: 0}, {X: 10, Z: 0}, {X: 0, Z: 10}})
	err := tri.DeletePoint(0)
	assert.True(t, errors.Is(err, ErrTooFewPoints))
	assert.Len(t, tri.Points, 3)
	assert.NoError(t, tri.Validate())

	lane := New("lane", Road, []Point{{X: 0, Z: 0}, {X: 10, Z: 0}, {X: 10, Z: 10}})
	require.NoError(t, lane.DeletePoint(2))
	err = lane.DeletePoint(1)
	assert.True(t, errors.Is(err, ErrTooFewPoints))
	assert.Len(t, lane.Points, 2)
	assert.NoError(t, lane.Validate())

	// A bad index is still reported as such
	assert.True(t, errors.Is(tri.DeletePoint(5), ErrIndexOutOfRange))
}

func TestDeletePoint_Rejected(t *testing.T) {
	// A square with a slot cut into its left side
	b := New("harbor", Region, []Point{
		{X: 0, Z: 0},
		{X: 10, Z: 0},
		{X: 10, Z: 10},
		{X: 0, Z: 10},
		{X: 1, Z: 6},
		{X: 7, Z: 6},
		{X: 7, Z: 4},
		{X: 0, Z: 4},
	})
	before := b.Clone()
	err := b.DeletePoint(1)
	assert.True(t, errors.Is(err, ErrSelfIntersection))
	assert.Equal(t, before.Points, b.Points)
	assert.NoError(t, b.DeletePoint(3))
	assert.Len(t, b.Points, 7)
}

func TestMovePoint(t *testing.T) {
	b := square()
	require.NoError(t, b.MovePoint(1, Point{X: 5, Z: -5}))
	assert.Equal(t, Point{X: 5, Z: -5}, b.Points[1])

	err := b.MovePoint(1, Point{X: 5, Z: 15})
	assert.True(t, errors.Is(err, ErrSelfIntersection))
	// Put back where it was
	assert.Equal(t, Point{X: 5, Z: -5}, b.Points[1])

	err = b.MovePoint(-1, Point{})
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))
}

func TestRejectedEditIsLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	b := square()
	b.Configure(WithLogger(logger))

	assert.Error(t, b.MovePoint(1, Point{X: 5, Z: 15}))
	assert.Contains(t, buf.String(), "rejected edit")
	assert.Contains(t, buf.String(), "boundary=plaza")
	assert.Contains(t, buf.String(), "op=move")

	buf.Reset()
	assert.NoError(t, b.MovePoint(1, Point{X: 5, Z: -1}))
	assert.Empty(t, buf.String())
}

func TestValidate(t *testing.T) {
	assert.NoError(t, square().Validate())

	bowtie := New("knot", Region, []Point{{X: 0, Z: 0}, {X: 10, Z: 10}, {X: 10, Z: 0}, {X: 0, Z: 10}})
	err := bowtie.Validate()
	assert.True(t, errors.Is(err, ErrSelfIntersection))
	assert.Contains(t, err.Error(), "edges 0-1 and 2-3 cross")

	sliver := New("sliver", Region, []Point{{X: 0, Z: 0}, {X: 1, Z: 1}})
	assert.True(t, errors.Is(sliver.Validate(), ErrTooFewPoints))

	road := New("lane", Road, []Point{{X: 0, Z: 0}, {X: 1, Z: 1}})
	assert.NoError(t, road.Validate())

	odd := New("odd", Kind("river"), []Point{{X: 0, Z: 0}, {X: 1, Z: 1}, {X: 2, Z: 0}})
	assert.True(t, errors.Is(odd.Validate(), ErrUnknownKind))
}

func TestAreaAndWinding(t *testing.T) {
	b := square()
	assert.Equal(t, float32(100), b.Area())
	assert.False(t, b.Clockwise())
	assert.False(t, b.WindCounterclockwise())

	b.Points = []Point{{X: 0, Z: 10}, {X: 10, Z: 10}, {X: 10, Z: 0}, {X: 0, Z: 0}}
	assert.True(t, b.Clockwise())
	assert.Equal(t, float32(100), b.Area())
	assert.True(t, b.WindCounterclockwise())
	assert.Equal(t, []Point{{X: 0, Z: 0}, {X: 10, Z: 0}, {X: 10, Z: 10}, {X: 0, Z: 10}}, b.Points)
	assert.False(t, b.Clockwise())
	assert.NoError(t, b.Validate())
}

func TestContainsAndBounds(t *testing.T) {
	b := square()
	b.Points[2].Y = 7
	b.Points[0].Y = -3
	assert.True(t, b.Contains(Point{X: 5, Y: 100, Z: 5}))
	assert.False(t, b.Contains(Point{X: 50, Z: 5}))

	min, max := b.Bounds()
	assert.Equal(t, Point{X: 0, Y: -3, Z: 0}, min)
	assert.Equal(t, Point{X: 10, Y: 7, Z: 10}, max)

	min, max = New("empty", Road, nil).Bounds()
	assert.Equal(t, Point{}, min)
	assert.Equal(t, Point{}, max)
}

func TestClone(t *testing.T) {
	b := square()
	clone := b.Clone()
	clone.Points[0].X = 99
	assert.Equal(t, float32(0), b.Points[0].X)
	assert.Equal(t, "region \"plaza\" (4 points)", b.String())
}

func TestParseKind(t *testing.T) {
	kind, err := ParseKind("road")
	assert.NoError(t, err)
	assert.Equal(t, Road, kind)
	kind, err = ParseKind("")
	assert.NoError(t, err)
	assert.Equal(t, Region, kind)
	_, err = ParseKind("lake")
	assert.Error(t, err)
}
