// Self-intersection guards for editable boundaries.
//
// A boundary is a closed loop of points, such as the outline of a region or
// the path of a road. Before applying an edit (inserting, deleting or moving a
// point), ask the matching guard whether the edit would make the loop cross
// itself. The guards never modify the points they are given.
//
// Only the X and Z coordinates take part. Y is the height of the point, and is
// carried along untouched.
package boundguard

import (
	"github.com/chewxy/math32"
	"github.com/osuushi/boundguard/internal"
)

type Point = internal.Point
type Edge = internal.Edge
type EdgePair = internal.EdgePair

// Would inserting candidate at targetIndex make the boundary cross itself?
// targetIndex may range from 0 to len(points) inclusive; the candidate goes
// between the points currently at targetIndex-1 and targetIndex, wrapping
// around the ends.
//
// A bad index is reported as an error. Boundaries with two points or fewer
// never cross themselves, and their indexes are not checked.
func CheckInsertOrMove(points []Point, candidate Point, targetIndex int) (crosses bool, err error) {
	defer recoverGuard(&crosses, &err)
	return internal.CheckInsertOrMove(points, candidate, targetIndex), nil
}

// Would deleting the point at deleteIndex make the boundary cross itself?
// Boundaries with fewer than four points always pass.
func CheckDelete(points []Point, deleteIndex int) (crosses bool, err error) {
	defer recoverGuard(&crosses, &err)
	return internal.CheckDelete(points, deleteIndex), nil
}

// Would the point at moveIndex make the boundary cross itself? The points must
// already hold the new position.
func CheckMove(moveIndex int, points []Point) (crosses bool, err error) {
	defer recoverGuard(&crosses, &err)
	return internal.CheckMove(moveIndex, points), nil
}

// Does the boundary cross itself anywhere?
func CheckAllPoints(points []Point) bool {
	return internal.CheckAllPoints(points)
}

// Do segments a-b and c-d intersect on the X/Z plane? Touching counts.
// Collinear segments are always reported as intersecting, even when they don't
// overlap.
func SegmentsIntersect(a, b, c, d Point) bool {
	return internal.SegmentsIntersect(a, b, c, d)
}

// Every pair of non-adjacent edges that cross.
func Crossings(points []Point) []EdgePair {
	return internal.Crossings(points)
}

// Is p inside the boundary, by the even-odd rule?
func Contains(points []Point, p Point) bool {
	return internal.Contains(points, p)
}

// Enclosed area on the X/Z plane, whichever way the points wind.
func Area(points []Point) float32 {
	return math32.Abs(internal.SignedArea2(points)) / 2
}

// Do the points wind clockwise, with X to the right and Z up?
func IsClockwise(points []Point) bool {
	return internal.IsCW(points)
}

// A reversed copy of the points.
func Reverse(points []Point) []Point {
	return internal.Reverse(points)
}

func recoverGuard(crosses *bool, err *error) {
	recoveredErr := internal.HandleGuardPanicRecover(recover())
	if recoveredErr != nil {
		*crosses = false
		*err = recoveredErr
	}
}
