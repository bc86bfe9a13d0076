package planner

import "errors"

// Sentinel errors returned by the planner package.
var (
	// ErrEmptyMeasurements indicates Build was called with no measurements.
	ErrEmptyMeasurements = errors.New("planner: at least one measurement is required")

	// ErrInfeasibleBudget indicates every hull point exceeds the queried
	// budget. Wrapped with the minimum feasible duration; not fatal — the
	// caller decides what to do with an infeasible query.
	ErrInfeasibleBudget = errors.New("planner: budget is infeasible")

	// ErrInvariantViolation indicates an internal defect: a non-monotone
	// hull, or a query that failed to locate its bracketing segment
	// despite the budget being within range.
	ErrInvariantViolation = errors.New("planner: internal invariant violated")
)
