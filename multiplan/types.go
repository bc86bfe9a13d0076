package multiplan

import (
	"time"

	"mixplan/planner"
)

// JointConfig is one hull point per document: the configuration applied
// to each document at this step of the merge. Its aggregates are sums
// over documents.
type JointConfig struct {
	// Slots holds one planner.HullPoint per document, indexed the same
	// way the input to Build was.
	Slots []planner.HullPoint

	// AggregateDuration and AggregateSize sum Slots' durations and sizes.
	AggregateDuration time.Duration
	AggregateSize     int64

	// Benefit is this step's aggregate marginal benefit: bytes saved per
	// additional second relative to the previous joint configuration. The
	// first joint configuration (label "initial") has benefit 0.
	Benefit float64

	// Label identifies which document advanced and to which
	// configuration, e.g. "doc 1: gzip-9". The initial configuration is
	// labeled "initial".
	Label string
}

// MultiPlan is the ordered sequence of joint configurations produced by
// Build: ascending in aggregate duration, strictly descending in
// aggregate size, each differing from its predecessor in exactly one
// document's slot.
type MultiPlan []JointConfig
