package internal

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// The edge starting at point i of an n point polygon, wrapping the last point
// back to the first.
func EdgeAt(i, n int) Edge {
	return Edge{CircularIndex(i, n), CircularIndex(i+1, n)}
}

func segmentOf(points []Point, e Edge) Segment {
	return Segment{points[e.Start], points[e.End]}
}

// Index bookkeeping for the polygon that would remain after deleting a point.
// The result maps each index of the smaller polygon to the index that point has
// in the original list. The order of the remaining points is unchanged.
func RemainingIndexes(n, deleteIndex int) []int {
	if n == 0 {
		return nil
	}
	remaining := make([]int, 0, n-1)
	for i := 0; i < n; i++ {
		if i == deleteIndex {
			continue
		}
		remaining = append(remaining, i)
	}
	return remaining
}
