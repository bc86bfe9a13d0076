// Package measurement defines the immutable (duration, size, codec-handle)
// triple the planner packages sort and compose.
//
// # What & Why
//
// A Measurement is the atom every planner query is built from: one
// observed or estimated (wall-clock duration, compressed size) pair for
// one codec configuration on one document. Once constructed it never
// changes — hulls and joint configurations borrow Measurements by value,
// never mutate them.
//
// # Ordering
//
// Measurements have a total order: ascending by Duration, ties broken by
// descending Size (i.e. the worse compressor sorts first among
// equal-duration candidates, so it is the one a hull or pre-filter pass
// discards as dominated). Equality is componentwise on Size and Duration;
// the codec handle is not part of equality, since two codec handles
// reporting identical metrics are, for planning purposes, interchangeable.
//
// Measurement also satisfies geometry.Point, treating Duration as X and
// Size as Y, so a slice of Measurement can be handed directly to
// geometry.LowerHull.
package measurement
