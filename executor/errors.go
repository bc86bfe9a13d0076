package executor

import "errors"

// Sentinel errors returned by the executor package.
var (
	// ErrUnknownMixKind indicates an OptimalMix with a Kind the executor
	// does not recognize — a defect upstream, never a runtime condition.
	ErrUnknownMixKind = errors.New("executor: unrecognized mix kind")

	// ErrCompressionFailed wraps a codec's own error; no partial output is
	// retained in the caller's sink when this is returned.
	ErrCompressionFailed = errors.New("executor: compression failed")

	// ErrEmptyInput indicates Execute was called with a zero-length
	// document.
	ErrEmptyInput = errors.New("executor: input must be non-empty")
)
