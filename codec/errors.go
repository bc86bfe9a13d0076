package codec

import "errors"

// Sentinel errors surfaced by codec operations and adapters.
var (
	// ErrCodecFailure wraps an underlying compression/measurement failure.
	// Callers add document/configuration context via %w.
	ErrCodecFailure = errors.New("codec: operation failed")

	// ErrBadEstimator indicates an EstimatorDescriptor outside its valid
	// domain (BlockRatio must be in (0,1], BlockCount must be >= 1).
	ErrBadEstimator = errors.New("codec: invalid estimator descriptor")

	// ErrBadByteRange indicates a ByteRange with Lo > Hi or Hi beyond the
	// input length.
	ErrBadByteRange = errors.New("codec: invalid byte range")

	// ErrNotMixedContainer indicates ParseContainerHeader was called on
	// data that does not start with the MIXPNG signature.
	ErrNotMixedContainer = errors.New("codec: not a mixed-output container")
)
