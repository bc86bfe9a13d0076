package multiplan_test

import (
	"context"
	"io"
	"time"

	"mixplan/codec"
	"mixplan/measurement"
	"mixplan/planner"
)

// stubCodec is a codec.Codec that never actually compresses anything; it
// only carries a stable Name for plan labels, since Measure/CompressFull/
// CompressRange are never exercised by multiplan's own tests.
type stubCodec struct{ name string }

func (s stubCodec) Measure(context.Context, []byte, *codec.EstimatorDescriptor) (time.Duration, int64, error) {
	return 0, 0, nil
}
func (s stubCodec) CompressFull(context.Context, []byte, io.Writer) error { return nil }
func (s stubCodec) CompressRange(context.Context, []byte, codec.ByteRange, io.Writer) error {
	return nil
}
func (s stubCodec) Name() string { return s.name }

// docAMeasurements is a strictly convex (non-collinear) scenario so its
// hull retains every point with unambiguous, strictly decreasing benefit.
func docAMeasurements() []measurement.Measurement {
	return []measurement.Measurement{
		measurement.New(1*time.Second, 1_000_000, stubCodec{"a-1"}),
		measurement.New(2*time.Second, 700_000, stubCodec{"a-2"}),
		measurement.New(4*time.Second, 500_000, stubCodec{"a-3"}),
		measurement.New(8*time.Second, 400_000, stubCodec{"a-4"}),
	}
}

// docBMeasurements is a second, smaller-scale document so joint-plan tests
// exercise the multi-document merge with differing per-step benefits.
func docBMeasurements() []measurement.Measurement {
	return []measurement.Measurement{
		measurement.New(1*time.Second, 300_000, stubCodec{"b-1"}),
		measurement.New(3*time.Second, 200_000, stubCodec{"b-2"}),
		measurement.New(6*time.Second, 150_000, stubCodec{"b-3"}),
	}
}

func buildTwoDocHulls() []planner.Hull {
	hullA, err := planner.Build(docAMeasurements())
	if err != nil {
		panic(err)
	}
	hullB, err := planner.Build(docBMeasurements())
	if err != nil {
		panic(err)
	}
	return []planner.Hull{hullA, hullB}
}
