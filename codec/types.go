package codec

// ByteRange is a half-open range [Lo, Hi) of byte offsets into a document,
// the unit CompressRange operates on.
type ByteRange struct {
	Lo, Hi int64
}

// Len returns the number of bytes the range spans.
func (r ByteRange) Len() int64 { return r.Hi - r.Lo }

// EstimatorDescriptor configures sample-based measurement: draw BlockCount
// non-overlapping random ranges of size round(total * BlockRatio), measure
// compression on each, and average+scale the results to estimate
// full-workload metrics (see Estimate).
type EstimatorDescriptor struct {
	// BlockRatio is the fraction of the input each sampled block covers.
	// Must be in (0, 1].
	BlockRatio float64
	// BlockCount is how many blocks to sample and average over. Must be >= 1.
	BlockCount int
}

// Valid reports whether the descriptor is within its domain.
func (e EstimatorDescriptor) Valid() bool {
	return e.BlockRatio > 0 && e.BlockRatio <= 1 && e.BlockCount >= 1
}
