package planner

import (
	"time"

	"mixplan/measurement"
)

// HullPoint is a measurement plus its marginal benefit: bytes saved per
// additional second relative to the previous point on the hull. The first
// point of any Hull has Benefit 0 by convention.
type HullPoint struct {
	Measurement measurement.Measurement
	Benefit     float64
}

// Duration is a convenience accessor for Measurement.Duration().
func (p HullPoint) Duration() time.Duration { return p.Measurement.Duration() }

// Size is a convenience accessor for Measurement.Size().
func (p HullPoint) Size() int64 { return p.Measurement.Size() }

// Hull is a single document's lower convex hull: ascending in duration,
// strictly descending in size, each successive segment no steeper than the
// last (diminishing returns; collinear hull points share a slope and so an
// equal Benefit). Hull is borrowed by queries and by the
// multiplan package; it is never mutated after Build returns it.
type Hull []HullPoint

// MixKind distinguishes the two shapes an OptimalMix can take.
type MixKind int

const (
	// MixSingle applies one hull point's configuration to the whole
	// input.
	MixSingle MixKind = iota
	// MixSplit applies two adjacent hull points to disjoint byte ranges
	// of the same input.
	MixSplit
)

// OptimalMix is the result of a budget query: either a single
// configuration applied to the whole document, or a split between two
// adjacent hull points plus the fraction of the input the cheaper one
// handles.
//
// Lifetime: constructed by a query, consumed by the executor, discarded.
type OptimalMix struct {
	Kind MixKind

	// Point is populated when Kind == MixSingle.
	Point HullPoint

	// Cheap and Expensive are populated when Kind == MixSplit: Cheap
	// handles the first Fraction of the input, Expensive the remainder.
	Cheap, Expensive HullPoint
	// Fraction is rounded to hundredths (spec.md §4.3) so the two
	// sub-fractions sum to exactly 1.0 when materializing byte offsets.
	Fraction float64
}
