// Package geometry computes the lower convex hull of a set of 2-D points
// using a Graham scan with a stable angular comparator.
//
// # What & Why
//
// The planner packages built on top of geometry only ever need the lower
// arc of a convex hull over (duration, size) points: the Pareto-optimal
// frontier of "faster" against "smaller". geometry implements the classic
// Graham scan once, generically over anything satisfying Point, and leaves
// the lower-arc extraction to the caller via LowerHull.
//
// # Algorithm
//
//   - Select the pivot: smallest y, ties broken by smallest x.
//   - Sort the remaining points by polar angle from the pivot (ascending),
//     ties broken by ascending distance from the pivot (closer first);
//     on the last ray the order is reversed (farther first) so collinear
//     points on the edge that closes the ring are kept.
//   - Scan left to right, popping the stack while the last three points
//     make a strict right turn (cross product < 0); collinear triples are
//     kept.
//   - The resulting ring is the full hull in counter-clockwise order,
//     starting at the pivot. LowerHull walks the ring from its min-x point
//     to its max-x point to recover the lower arc alone.
//
// # Complexity
//
//	Time:  O(n log n), dominated by the angular sort.
//	Space: O(n).
//
// # Numeric policy
//
//   - Angle comparison uses math.Atan2; the pivot itself sorts first.
//   - The turn test uses strict inequality: a zero cross product
//     (collinear) never pops the stack.
//   - ConvexHull returns fewer than three points as-is, pivot-sorted;
//     LowerHull returns them in ascending X.
package geometry
