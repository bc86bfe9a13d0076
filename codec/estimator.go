package codec

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"
)

// Estimate implements sample-based measurement for codecs whose Measure
// wants a cheaper-than-full-compression estimate: draw descriptor.BlockCount
// non-overlapping random ranges of size round(len(input) * descriptor.BlockRatio),
// measure c's CompressRange on each via a throwaway sink, average the
// durations and sizes, and scale both by 1/BlockRatio to project
// full-workload metrics.
//
// Non-overlap is enforced by dividing the input into BlockCount equal-width
// contiguous segments and drawing each block's offset within its own
// segment, rather than drawing BlockCount independent offsets over the
// whole input — which could otherwise sample the same bytes twice. Estimate
// rejects a descriptor whose blocks don't fit one per segment.
//
// The scale factor is rounded for size (bytes are integral) but left
// unrounded for duration (a wall-clock estimate has no reason to snap to
// an integer multiple) — this resolves the ambiguity spec.md §9(i) flags,
// following the source implementation's own scaling of compressed size
// versus time.
//
// rng seeds the block-position draws; callers that need determinism
// across runs should pass a rand.Rand built from a fixed seed.
func Estimate(ctx context.Context, c Codec, input []byte, descriptor EstimatorDescriptor, rng *rand.Rand) (time.Duration, int64, error) {
	if !descriptor.Valid() {
		return 0, 0, ErrBadEstimator
	}

	total := int64(len(input))
	blockSize := int64(math.Round(float64(total) * descriptor.BlockRatio))
	if blockSize <= 0 || blockSize > total {
		return 0, 0, fmt.Errorf("%w: block size %d out of [1,%d]", ErrBadEstimator, blockSize, total)
	}

	segWidth := total / int64(descriptor.BlockCount)
	if segWidth < blockSize {
		return 0, 0, fmt.Errorf("%w: %d non-overlapping blocks of size %d do not fit in %d bytes", ErrBadEstimator, descriptor.BlockCount, blockSize, total)
	}

	var sumDuration time.Duration
	var sumSize int64
	for i := 0; i < descriptor.BlockCount; i++ {
		segStart := int64(i) * segWidth
		lo := segStart
		if slack := segWidth - blockSize; slack > 0 {
			lo += rng.Int63n(slack + 1)
		}
		r := ByteRange{Lo: lo, Hi: lo + blockSize}

		sink := &discardCounter{}
		start := time.Now()
		if err := c.CompressRange(ctx, input, r, sink); err != nil {
			return 0, 0, fmt.Errorf("%s: estimate block %d: %w", c.Name(), i, err)
		}
		sumDuration += time.Since(start)
		sumSize += sink.n
	}

	scale := 1.0 / descriptor.BlockRatio
	avgDuration := time.Duration(float64(sumDuration) / float64(descriptor.BlockCount) * scale)
	avgSize := int64(math.Round(float64(sumSize) / float64(descriptor.BlockCount) * math.Round(scale)))

	return avgDuration, avgSize, nil
}

// discardCounter is an io.Writer that counts bytes written without storing
// them, the same role a tempfile's length plays in the source algorithm
// adapters.
type discardCounter struct{ n int64 }

func (d *discardCounter) Write(p []byte) (int, error) {
	d.n += int64(len(p))
	return len(p), nil
}
