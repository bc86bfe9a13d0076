package planner

import "mixplan/measurement"

// preFilter eliminates obviously dominated configurations with two local
// passes over the duration-sorted sequence, per spec.md §4.2. sorted must
// already be ordered by measurement.Sort.
//
// This is a pre-filter whose result feeds the hull, not a replacement for
// it (spec.md §9(ii)): a noisy measurement set can still over-prune here,
// but the hull computed over the survivors remains correct because
// anything this pass drops is, by construction, weakly dominated.
func preFilter(sorted []measurement.Measurement) []measurement.Measurement {
	n := len(sorted)
	if n <= 1 {
		out := make([]measurement.Measurement, n)
		copy(out, sorted)
		return out
	}

	keep := make([]bool, n)
	keep[0] = true // the first measurement is always kept

	for i := 1; i < n-1; i++ {
		a, b, c := sorted[i-1], sorted[i], sorted[i+1]
		nonImproving := b.Size() >= a.Size()
		verticalStep := b.Duration() == c.Duration()
		keep[i] = !(nonImproving || verticalStep)
	}

	// The final measurement is kept iff strictly smaller than its
	// predecessor.
	keep[n-1] = sorted[n-1].Size() < sorted[n-2].Size()

	survivors := make([]measurement.Measurement, 0, n)
	for i, k := range keep {
		if k {
			survivors = append(survivors, sorted[i])
		}
	}
	return survivors
}
