package executor

import "time"

// ImageDims carries the original image's dimensions for split mixes whose
// codec is an image format — the only case spec.md §4.5 requires the
// mixed-output container header. nil for byte-oriented codecs (gzip,
// bzip2, xz/lzma), whose compressed streams are self-delimited and may be
// concatenated bare.
type ImageDims struct {
	Width, Height uint32
}

// Result reports what Execute actually did, for logging and for the
// wall-clock divergence warning spec.md §5 calls for.
type Result struct {
	// BytesWritten is the total size of the stream written to the sink,
	// including any container header.
	BytesWritten int64

	// PlannedDuration is the mix's own estimate from planning time. For a
	// Split mix this is the fraction-weighted blend of the two points'
	// durations.
	PlannedDuration time.Duration

	// Elapsed is the wall-clock time this Execute call took.
	Elapsed time.Duration

	// DivergenceWarning is non-empty when Elapsed meaningfully exceeds
	// PlannedDuration (see divergenceTolerance).
	DivergenceWarning string
}
