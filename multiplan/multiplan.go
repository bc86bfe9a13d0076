package multiplan

import (
	"container/heap"
	"fmt"
	"time"

	"gonum.org/v1/gonum/floats"

	"mixplan/planner"
)

// Build performs the benefit-greedy merge of spec.md §4.4: every document
// starts at its fastest hull point; repeatedly, whichever document's next
// hull step currently has the highest benefit advances by exactly one
// step, until every document has reached its slowest configuration.
//
// Each document's own hull is already benefit-descending (hull convexity),
// so "the front of document d's remaining queue" is simply its next hull
// index — Build only needs a max-heap keyed on each document's pending
// next-step benefit to pick the global maximum in O(log D) per step.
func Build(hulls []planner.Hull) (MultiPlan, error) {
	if len(hulls) == 0 {
		return nil, ErrNoHulls
	}
	for i, h := range hulls {
		if len(h) == 0 {
			return nil, fmt.Errorf("%w: document %d", ErrEmptyHull, i)
		}
	}

	current := make([]planner.HullPoint, len(hulls))
	for i, h := range hulls {
		current[i] = h[0]
	}

	plan := make(MultiPlan, 0, len(hulls)+1)
	plan = append(plan, snapshotJoint(current, 0, "initial"))

	pq := make(stepPQ, 0, len(hulls))
	heap.Init(&pq)
	for i, h := range hulls {
		if len(h) > 1 {
			heap.Push(&pq, stepItem{doc: i, nextIdx: 1, benefit: h[1].Benefit})
		}
	}

	prevDuration := plan[0].AggregateDuration
	prevSize := plan[0].AggregateSize

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(stepItem)
		d := item.doc
		h := hulls[d]

		current[d] = h[item.nextIdx]

		joint := snapshotJoint(current, 0, "")
		dt := (joint.AggregateDuration - prevDuration).Seconds()
		benefit := float64(prevSize-joint.AggregateSize) / dt
		joint.Benefit = benefit
		joint.Label = fmt.Sprintf("doc %d: %s", d, h[item.nextIdx].Measurement.Codec().Name())

		plan = append(plan, joint)
		prevDuration, prevSize = joint.AggregateDuration, joint.AggregateSize

		if item.nextIdx+1 < len(h) {
			heap.Push(&pq, stepItem{doc: d, nextIdx: item.nextIdx + 1, benefit: h[item.nextIdx+1].Benefit})
		}
	}

	return plan, nil
}

// Query answers a global budget against a built MultiPlan, mirroring
// planner.Hull.Query at the joint-plan level per spec.md §4.4.
//
// If totalBudget is below the first joint configuration's aggregate
// duration, the budget is infeasible. If it is at or beyond the last joint
// configuration's aggregate duration, every document runs its slowest
// (best-compressing) configuration. Otherwise Query locates the
// consecutive pair of joint configurations that bracket totalBudget; by
// construction they differ in exactly one document d, so every other
// document gets a MixSingle result at its shared configuration, and
// document d gets a MixSplit between its two bracketing configurations.
// Its Fraction (the share of document d the cheaper configuration handles)
// is the part of the joint step's duration that totalBudget leaves short
// of the upper joint configuration, divided by the step's duration.
func (mp MultiPlan) Query(totalBudget time.Duration) ([]planner.OptimalMix, error) {
	if len(mp) == 0 {
		return nil, ErrEmptyHull
	}
	first := mp[0]
	if totalBudget < first.AggregateDuration {
		return nil, ErrInfeasibleBudget
	}

	last := mp[len(mp)-1]
	if totalBudget >= last.AggregateDuration {
		return singleEverywhere(last), nil
	}

	for i := 0; i+1 < len(mp); i++ {
		lo, hi := mp[i], mp[i+1]
		if totalBudget < lo.AggregateDuration || totalBudget >= hi.AggregateDuration {
			continue
		}

		d, err := diffDocument(lo, hi)
		if err != nil {
			return nil, err
		}

		stepDuration := (hi.AggregateDuration - lo.AggregateDuration).Seconds()
		remaining := (hi.AggregateDuration - totalBudget).Seconds()
		fraction := planner.RoundToHundredths(remaining / stepDuration)

		mixes := singleEverywhere(lo)
		mixes[d] = planner.OptimalMix{
			Kind:      planner.MixSplit,
			Cheap:     lo.Slots[d],
			Expensive: hi.Slots[d],
			Fraction:  fraction,
		}
		return mixes, nil
	}

	return nil, ErrInvariantViolation
}

// singleEverywhere returns a MixSingle result for every document at joint's
// slots.
func singleEverywhere(joint JointConfig) []planner.OptimalMix {
	out := make([]planner.OptimalMix, len(joint.Slots))
	for i, p := range joint.Slots {
		out[i] = planner.OptimalMix{Kind: planner.MixSingle, Point: p}
	}
	return out
}

// diffDocument returns the single document index whose slot differs
// between two consecutive joint configurations.
func diffDocument(lo, hi JointConfig) (int, error) {
	if len(lo.Slots) != len(hi.Slots) {
		return 0, ErrInvariantViolation
	}
	found := -1
	for i := range lo.Slots {
		if !lo.Slots[i].Measurement.Equal(hi.Slots[i].Measurement) {
			if found != -1 {
				return 0, ErrInvariantViolation
			}
			found = i
		}
	}
	if found == -1 {
		return 0, ErrInvariantViolation
	}
	return found, nil
}

// snapshotJoint copies current into a fresh JointConfig with computed
// aggregates.
func snapshotJoint(current []planner.HullPoint, benefit float64, label string) JointConfig {
	slots := make([]planner.HullPoint, len(current))
	copy(slots, current)

	durations := make([]float64, len(slots))
	sizes := make([]float64, len(slots))
	for i, p := range slots {
		durations[i] = p.Duration().Seconds()
		sizes[i] = float64(p.Size())
	}

	duration := time.Duration(floats.Sum(durations) * float64(time.Second))
	size := int64(floats.Sum(sizes))

	return JointConfig{
		Slots:             slots,
		AggregateDuration: duration,
		AggregateSize:     size,
		Benefit:           benefit,
		Label:             label,
	}
}

// stepItem is a candidate next advancement for one document, keyed by the
// benefit its hull reports for that step (already computed by the
// per-document planner).
type stepItem struct {
	doc     int
	nextIdx int
	benefit float64
}

// stepPQ is a max-heap over stepItem.benefit: the highest-benefit pending
// step across all documents pops first.
type stepPQ []stepItem

func (pq stepPQ) Len() int            { return len(pq) }
func (pq stepPQ) Less(i, j int) bool  { return pq[i].benefit > pq[j].benefit }
func (pq stepPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *stepPQ) Push(x interface{}) { *pq = append(*pq, x.(stepItem)) }
func (pq *stepPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
