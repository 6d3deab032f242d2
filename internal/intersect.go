package internal

// Do segments a-b and c-d intersect? Only the X/Z plane is considered.
//
// This is the parametric form: t1 is the position of the crossing along a-b and
// t2 its position along c-d. Touching at an endpoint counts as intersecting.
//
// The zero tests are exact. When the denominator is zero the segments are
// parallel, and we report an intersection only when both numerators are zero as
// well, meaning the segments are collinear. That is a known approximation:
// collinear segments which don't actually overlap are still reported as
// intersecting. Swapping in an epsilon here would change which boundary edits
// are accepted, so don't.
func SegmentsIntersect(a, b, c, d Point) bool {
	den := (d.Z-c.Z)*(b.X-a.X) - (d.X-c.X)*(b.Z-a.Z)
	t1num := (d.X-c.X)*(a.Z-c.Z) - (d.Z-c.Z)*(a.X-c.X)
	t2num := (b.X-a.X)*(a.Z-c.Z) - (b.Z-a.Z)*(a.X-c.X)

	if den == 0 {
		return t1num == 0 && t2num == 0
	}

	t1 := t1num / den
	t2 := t2num / den
	return t1 >= 0 && t1 <= 1 && t2 >= 0 && t2 <= 1
}

func (s Segment) Intersects(other Segment) bool {
	return SegmentsIntersect(s.Start, s.End, other.Start, other.End)
}
