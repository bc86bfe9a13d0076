package planner

import (
	"fmt"
	"math"
	"time"

	"mixplan/geometry"
	"mixplan/measurement"
)

// Build reduces measurements to their lower convex hull, annotated with
// per-segment marginal benefit, per spec.md §4.2. It fails with
// ErrEmptyMeasurements if measurements is empty.
func Build(measurements []measurement.Measurement) (Hull, error) {
	if len(measurements) == 0 {
		return nil, ErrEmptyMeasurements
	}

	sorted := make([]measurement.Measurement, len(measurements))
	copy(sorted, measurements)
	measurement.Sort(sorted)

	survivors := preFilter(sorted)
	lower := geometry.LowerHull(survivors)

	return annotateBenefit(lower), nil
}

// annotateBenefit walks hull points in ascending duration, attaching to
// each (after the first) the bytes-saved-per-second relative to the
// previous point.
func annotateBenefit(points []measurement.Measurement) Hull {
	hull := make(Hull, len(points))
	for i, m := range points {
		var benefit float64
		if i > 0 {
			prev := points[i-1]
			dt := m.Duration().Seconds() - prev.Duration().Seconds()
			benefit = float64(prev.Size()-m.Size()) / dt
		}
		hull[i] = HullPoint{Measurement: m, Benefit: benefit}
	}
	return hull
}

// Query answers "given budget, what configuration minimizes size?" per
// spec.md §4.3. A budget below the hull's fastest point is infeasible
// (wrapping ErrInfeasibleBudget with the minimum feasible duration); a
// budget at or past the hull's slowest point selects that point outright;
// otherwise the budget lies at or after one hull point and before the next,
// and the result is a Split mix between those two with the fraction rounded
// to hundredths (a budget equal to an interior hull point gives fraction 1).
func (h Hull) Query(budget time.Duration) (OptimalMix, error) {
	if len(h) == 0 {
		return OptimalMix{}, ErrEmptyMeasurements
	}

	if budget < h[0].Duration() {
		return OptimalMix{}, fmt.Errorf("%w: minimum feasible duration is %s", ErrInfeasibleBudget, h[0].Duration())
	}

	last := h[len(h)-1]
	if budget >= last.Duration() {
		return OptimalMix{Kind: MixSingle, Point: last}, nil
	}

	for i := 0; i < len(h)-1; i++ {
		cheap, expensive := h[i], h[i+1]
		if budget >= cheap.Duration() && budget < expensive.Duration() {
			fraction := RoundToHundredths(
				(expensive.Duration() - budget).Seconds() / (expensive.Duration() - cheap.Duration()).Seconds(),
			)
			return OptimalMix{
				Kind:      MixSplit,
				Cheap:     cheap,
				Expensive: expensive,
				Fraction:  fraction,
			}, nil
		}
	}

	return OptimalMix{}, fmt.Errorf("%w: budget %s within hull range but no bracketing segment found", ErrInvariantViolation, budget)
}

// RoundToHundredths snaps f to the nearest 1/100th, guaranteeing the two
// halves of a split plan sum to exactly 1.0 when materialized as byte
// offsets (spec.md §4.3's rationale). Shared with multiplan, whose global
// budget query rounds a fraction the same way.
func RoundToHundredths(f float64) float64 {
	return math.Round(f*100) / 100
}
