package geometry

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// coincidenceTolerance bounds how close two points' coordinates must be to
// count as the same point in dedup — guards against float noise from
// upstream measurement/estimation without masking genuinely distinct
// configurations.
const coincidenceTolerance = 1e-9

// ConvexHull runs a Graham scan over points and returns the full hull ring
// (both upper and lower arcs) in counter-clockwise order, starting at the
// pivot (the point with smallest Y, ties broken by smallest X).
//
// Fewer than three points are returned unchanged, pivot-angle sorted.
// Duplicate points (by value, not identity) are removed before the scan;
// callers that need to keep duplicated measurements distinct should
// deduplicate some other attribute (e.g. codec handle) beforehand.
//
// Complexity: O(n log n).
func ConvexHull[T Point](points []T) []T {
	unique := dedup(points)
	if len(unique) < 3 {
		return sortByPivotAngle(unique)
	}

	sorted := sortByPivotAngle(unique)

	stack := make([]T, 0, len(sorted))
	for _, p := range sorted {
		for len(stack) > 1 && cross(stack[len(stack)-2], stack[len(stack)-1], p) < 0 {
			stack = stack[:len(stack)-1]
		}
		stack = append(stack, p)
	}

	return stack
}

// LowerHull returns the lower arc of points' convex hull: the contiguous
// run from the minimum-X hull point to the maximum-X hull point, walked in
// the ring's counter-clockwise order. This is the Pareto-optimal frontier
// of "cheapest in X" against "best in Y" that the planner packages consume.
func LowerHull[T Point](points []T) []T {
	ring := ConvexHull(points)
	if len(ring) <= 2 {
		if len(ring) == 2 && ring[0].X() > ring[1].X() {
			ring[0], ring[1] = ring[1], ring[0]
		}
		return ring
	}

	minIdx, maxIdx := 0, 0
	for i, p := range ring {
		if p.X() < ring[minIdx].X() {
			minIdx = i
		}
		if p.X() > ring[maxIdx].X() {
			maxIdx = i
		}
	}

	lower := make([]T, 0, len(ring))
	n := len(ring)
	for i := minIdx; ; i = (i + 1) % n {
		lower = append(lower, ring[i])
		if i == maxIdx {
			break
		}
	}

	return lower
}

// dedup removes points that are componentwise identical (within
// coincidenceTolerance), preserving the first occurrence's order. Points
// are compared by value, not identity: distinct configurations that happen
// to coincide in (X, Y) are deliberately collapsed, since the hull cannot
// distinguish them anyway.
func dedup[T Point](points []T) []T {
	out := make([]T, 0, len(points))
	for _, p := range points {
		seen := false
		for _, q := range out {
			if floats.EqualWithinAbs(p.X(), q.X(), coincidenceTolerance) &&
				floats.EqualWithinAbs(p.Y(), q.Y(), coincidenceTolerance) {
				seen = true
				break
			}
		}
		if !seen {
			out = append(out, p)
		}
	}
	return out
}

// sortByPivotAngle selects the pivot (smallest Y, ties broken by smallest
// X) and returns the remaining points sorted by ascending polar angle from
// the pivot, ties broken by ascending distance (closer first), except on
// the last ray, where farther points come first so that collinear points
// on the edge closing the ring back to the pivot stay on the hull. The
// pivot is returned first.
func sortByPivotAngle[T Point](points []T) []T {
	if len(points) == 0 {
		return points
	}

	pivotIdx := 0
	for i, p := range points {
		if p.Y() < points[pivotIdx].Y() || (p.Y() == points[pivotIdx].Y() && p.X() < points[pivotIdx].X()) {
			pivotIdx = i
		}
	}
	pivot := points[pivotIdx]

	rest := make([]T, 0, len(points)-1)
	for i, p := range points {
		if i != pivotIdx {
			rest = append(rest, p)
		}
	}

	type polar struct {
		angle float64
		dist  float64
		point T
	}
	polars := make([]polar, len(rest))
	for i, p := range rest {
		dx, dy := p.X()-pivot.X(), p.Y()-pivot.Y()
		polars[i] = polar{
			angle: math.Atan2(dy, dx),
			dist:  math.Hypot(dx, dy),
			point: p,
		}
	}
	sort.SliceStable(polars, func(i, j int) bool {
		if polars[i].angle != polars[j].angle {
			return polars[i].angle < polars[j].angle
		}
		return polars[i].dist < polars[j].dist
	})
	if len(polars) > 1 {
		lastAngle := polars[len(polars)-1].angle
		k := len(polars) - 1
		for k > 0 && polars[k-1].angle == lastAngle {
			k--
		}
		for i, j := k, len(polars)-1; i < j; i, j = i+1, j-1 {
			polars[i], polars[j] = polars[j], polars[i]
		}
	}

	out := make([]T, 0, len(points))
	out = append(out, pivot)
	for _, pl := range polars {
		out = append(out, pl.point)
	}
	return out
}

// cross computes the Z-coordinate of the cross product of vectors a->b and
// b->c. A negative result means the turn at b is clockwise (a right
// turn); this is the condition the Graham scan pops the stack on.
func cross[T Point](a, b, c T) float64 {
	return (b.X()-a.X())*(c.Y()-a.Y()) - (c.X()-a.X())*(b.Y()-a.Y())
}
