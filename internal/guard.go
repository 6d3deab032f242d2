package internal

// The guards answer one question: would a single edit to a boundary introduce a
// self-intersection? None of them mutate the point list, and none of them try to
// repair a polygon which already crosses itself. They only look at the edges the
// edit would create, and test those against every existing edge which isn't
// adjacent to them.

// Would inserting candidate at targetIndex make the polygon cross itself?
//
// The candidate lands between the points currently at targetIndex-1 and
// targetIndex (wrapping), so targetIndex may be anything from 0 to len(points).
// The edge between those two neighbors goes away and is replaced by two new
// edges through the candidate.
//
// Moving a point can be checked the same way by removing it first, and asking
// whether it could be inserted back at its new position.
func CheckInsertOrMove(points []Point, candidate Point, targetIndex int) bool {
	n := len(points)
	if n <= 2 {
		return false
	}
	checkIndex("insert index", targetIndex, 0, n)

	prevIndex := targetIndex - 1
	nextIndex := targetIndex
	if targetIndex == 0 {
		prevIndex = n - 1
	}
	if targetIndex == n {
		nextIndex = 0
	}

	toPrev := Segment{candidate, points[prevIndex]}
	toNext := Segment{candidate, points[nextIndex]}

	for i := 0; i < n; i++ {
		edge := EdgeAt(i, n)
		// This also skips the edge being split, since it touches both neighbors
		if !edge.Touches(prevIndex) && toPrev.Intersects(segmentOf(points, edge)) {
			return true
		}
		if !edge.Touches(nextIndex) && toNext.Intersects(segmentOf(points, edge)) {
			return true
		}
	}
	return false
}

// Would deleting the point at deleteIndex make the polygon cross itself?
//
// Removing a point joins its two neighbors with a new closing edge. The scan runs
// over the polygon as it would be after the deletion, using RemainingIndexes to
// get from the smaller polygon's indexes back to the original list.
func CheckDelete(points []Point, deleteIndex int) bool {
	n := len(points)
	// Taking a point away from a triangle leaves a segment, which can't cross
	// itself.
	if n < 4 {
		return false
	}
	checkIndex("delete index", deleteIndex, 0, n-1)

	prevIndex := CircularIndex(deleteIndex-1, n)
	nextIndex := CircularIndex(deleteIndex+1, n)
	closing := Segment{points[prevIndex], points[nextIndex]}

	remaining := RemainingIndexes(n, deleteIndex)
	m := len(remaining)
	for j := 0; j < m; j++ {
		local := EdgeAt(j, m)
		edge := Edge{remaining[local.Start], remaining[local.End]}
		// The closing edge itself, and both edges hanging off of it
		if edge.Touches(prevIndex) || edge.Touches(nextIndex) {
			continue
		}
		if closing.Intersects(segmentOf(points, edge)) {
			return true
		}
	}
	return false
}

// Would the point at moveIndex, already written to its new position, make the
// polygon cross itself?
//
// Only the two edges which meet at the moved point have changed, so those are
// tested against every edge that doesn't share an endpoint with them.
func CheckMove(moveIndex int, points []Point) bool {
	n := len(points)
	if n <= 2 {
		return false
	}
	checkIndex("move index", moveIndex, 0, n-1)

	prevIndex := CircularIndex(moveIndex-1, n)
	nextIndex := CircularIndex(moveIndex+1, n)
	moved := points[moveIndex]
	toPrev := Segment{moved, points[prevIndex]}
	toNext := Segment{moved, points[nextIndex]}

	for i := 0; i < n; i++ {
		edge := EdgeAt(i, n)
		// The moved edges themselves
		if edge.Touches(moveIndex) {
			continue
		}
		if !edge.Touches(prevIndex) && toPrev.Intersects(segmentOf(points, edge)) {
			return true
		}
		if !edge.Touches(nextIndex) && toNext.Intersects(segmentOf(points, edge)) {
			return true
		}
	}
	return false
}

// Check every point as if it had just been moved to where it is. This catches
// any crossing in the polygon, since every edge is incident to some point.
func CheckAllPoints(points []Point) bool {
	for i := range points {
		if CheckMove(i, points) {
			return true
		}
	}
	return false
}
