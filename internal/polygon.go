package internal

// Every pair of non-adjacent edges which intersect, each pair reported once
// with the lower edge first. For a polygon that passes CheckAllPoints this is
// empty.
func Crossings(points []Point) []EdgePair {
	n := len(points)
	if n <= 2 {
		return nil
	}
	var result []EdgePair
	for i := 0; i < n; i++ {
		a := EdgeAt(i, n)
		for j := i + 1; j < n; j++ {
			b := EdgeAt(j, n)
			if a.AdjacentTo(b) {
				continue
			}
			if segmentOf(points, a).Intersects(segmentOf(points, b)) {
				result = append(result, EdgePair{a, b})
			}
		}
	}
	return result
}

// Even-odd point-in-polygon on the X/Z plane. Regions use this to decide whether
// something placed in the world falls inside them.
func Contains(points []Point, p Point) bool {
	return CrossingCount(points, p)%2 == 1
}

// Crossing count helper for even odd rule. Counts the edges that a ray cast
// from p in the +X direction passes through.
func CrossingCount(points []Point, p Point) int {
	crossingCount := 0
	for i, vertex := range points {
		nextVertex := points[CircularIndex(i+1, len(points))]
		if (vertex.Z > p.Z) == (nextVertex.Z > p.Z) {
			continue
		}
		// X position where the edge crosses the ray's line
		x := vertex.X + (p.Z-vertex.Z)*(nextVertex.X-vertex.X)/(nextVertex.Z-vertex.Z)
		if x > p.X {
			crossingCount++
		}
	}
	return crossingCount
}

func Reverse(points []Point) []Point {
	reversed := make([]Point, 0, len(points))
	for i := len(points) - 1; i >= 0; i-- {
		reversed = append(reversed, points[i])
	}
	return reversed
}

// Twice the signed area on the X/Z plane. Positive when the points wind
// counterclockwise with X to the right and Z up.
func SignedArea2(points []Point) float32 {
	var sum float32
	for i, p := range points {
		q := points[CircularIndex(i+1, len(points))]
		sum += p.X*q.Z - q.X*p.Z
	}
	return sum
}

func IsCW(points []Point) bool {
	return SignedArea2(points) < 0
}
