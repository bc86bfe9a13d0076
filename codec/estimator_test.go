package codec_test

import (
	"context"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mixplan/codec"
)

func TestEstimate_RejectsInvalidDescriptor(t *testing.T) {
	c := stubCodec{name: "stub"}
	rng := rand.New(rand.NewSource(1))

	_, _, err := codec.Estimate(context.Background(), c, make([]byte, 100), codec.EstimatorDescriptor{BlockRatio: 0, BlockCount: 1}, rng)
	require.ErrorIs(t, err, codec.ErrBadEstimator)

	_, _, err = codec.Estimate(context.Background(), c, make([]byte, 100), codec.EstimatorDescriptor{BlockRatio: 0.5, BlockCount: 0}, rng)
	require.ErrorIs(t, err, codec.ErrBadEstimator)
}

func TestEstimate_ScalesSizeByInverseBlockRatio(t *testing.T) {
	c := stubCodec{name: "stub"}
	rng := rand.New(rand.NewSource(42))
	input := make([]byte, 1000)

	_, size, err := codec.Estimate(context.Background(), c, input, codec.EstimatorDescriptor{BlockRatio: 0.1, BlockCount: 4}, rng)
	require.NoError(t, err)

	// stubCodec's compressed size equals the block length (100 bytes);
	// scaling by round(1/0.1)=10 must recover ~the full input size.
	assert.Equal(t, int64(1000), size)
}

func TestEstimate_BlocksDoNotOverlap(t *testing.T) {
	c := &recordingCodec{stubCodec: stubCodec{name: "stub"}}
	rng := rand.New(rand.NewSource(99))
	input := make([]byte, 997) // prime length: exercises the segment-remainder case

	_, _, err := codec.Estimate(context.Background(), c, input, codec.EstimatorDescriptor{BlockRatio: 0.1, BlockCount: 5}, rng)
	require.NoError(t, err)
	require.Len(t, c.ranges, 5)

	sorted := append([]codec.ByteRange(nil), c.ranges...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Lo < sorted[j].Lo })
	for i := 1; i < len(sorted); i++ {
		assert.LessOrEqual(t, sorted[i-1].Hi, sorted[i].Lo, "blocks %d and %d overlap", i-1, i)
	}
}

func TestEstimate_RejectsBlocksThatCannotFitNonOverlapping(t *testing.T) {
	c := stubCodec{name: "stub"}
	rng := rand.New(rand.NewSource(1))

	_, _, err := codec.Estimate(context.Background(), c, make([]byte, 100), codec.EstimatorDescriptor{BlockRatio: 0.5, BlockCount: 4}, rng)
	require.ErrorIs(t, err, codec.ErrBadEstimator)
}

func TestEstimate_WholeInputWhenBlockRatioIsOne(t *testing.T) {
	c := stubCodec{name: "stub"}
	rng := rand.New(rand.NewSource(7))
	input := make([]byte, 256)

	duration, size, err := codec.Estimate(context.Background(), c, input, codec.EstimatorDescriptor{BlockRatio: 1, BlockCount: 1}, rng)
	require.NoError(t, err)
	assert.Equal(t, int64(256), size)
	assert.Greater(t, duration.Seconds(), -1.0) // duration is well-defined (zero is fine for a stub)
}
