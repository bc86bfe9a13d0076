// Package planner implements the single-document mixing policy: reducing a
// set of (time, size) measurements to a lower convex hull of useful codec
// configurations, annotating it with marginal benefit, and answering
// budget queries against it.
//
// # What & Why
//
// Given every candidate configuration's measured (duration, size) for one
// document, Build keeps only the configurations that are ever worth
// choosing — the lower convex hull — and records, for each hull point past
// the first, how many bytes an additional second of compression buys
// relative to the previous point (its benefit). Query then answers "given
// budget T, what should I run?" by walking the hull: below its first
// point the budget is infeasible, at or past its last point the best
// compressor runs outright, and in between the two bracketing
// configurations are blended by linear interpolation (a Split mix).
//
// # Algorithm (spec.md §4.2-§4.3)
//
//  1. Sort measurements by the total order (ascending duration, descending
//     size on ties).
//  2. Pre-filter with two local passes over consecutive triples/pairs:
//     drop a middle measurement that doesn't improve on its predecessor or
//     that shares its successor's duration (a vertical, strictly
//     dominated step); always keep the first measurement; keep the last
//     only if it strictly improves on its predecessor.
//  3. Run geometry.LowerHull over the survivors.
//  4. Annotate: the first hull point gets benefit 0; each subsequent point
//     p_i gets (p_{i-1}.Size - p_i.Size) / (p_i.Duration - p_{i-1}.Duration).
//
// # Complexity
//
//	Time:  O(n log n) (sort + hull).
//	Space: O(n).
package planner
