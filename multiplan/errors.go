package multiplan

import "errors"

// Sentinel errors returned by the multiplan package.
var (
	// ErrNoHulls indicates Build was called with zero documents.
	ErrNoHulls = errors.New("multiplan: at least one document hull is required")

	// ErrEmptyHull indicates one of the supplied hulls has no points.
	ErrEmptyHull = errors.New("multiplan: document hull must be non-empty")

	// ErrInfeasibleBudget indicates every joint configuration exceeds the
	// queried total budget.
	ErrInfeasibleBudget = errors.New("multiplan: total budget is infeasible")

	// ErrInvariantViolation indicates an internal defect: a joint plan
	// that is not aggregate-duration-monotone, or a query that failed to
	// locate its bracketing pair despite the budget being in range.
	ErrInvariantViolation = errors.New("multiplan: internal invariant violated")
)
