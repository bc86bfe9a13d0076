package executor_test

import (
	"context"
	"io"
	"time"

	"mixplan/codec"
	"mixplan/measurement"
	"mixplan/planner"
)

// echoCodec is a deterministic Codec double whose compressed output is
// simply the input bytes it was given, letting tests assert on exact
// stream contents and offsets.
type echoCodec struct{ name string }

func (e echoCodec) Measure(context.Context, []byte, *codec.EstimatorDescriptor) (time.Duration, int64, error) {
	return 0, 0, nil
}
func (e echoCodec) CompressFull(_ context.Context, input []byte, sink io.Writer) error {
	_, err := sink.Write(input)
	return err
}
func (e echoCodec) CompressRange(_ context.Context, input []byte, r codec.ByteRange, sink io.Writer) error {
	_, err := sink.Write(input[r.Lo:r.Hi])
	return err
}
func (e echoCodec) Name() string { return e.name }

// failingCodec always errors, for atomicity tests.
type failingCodec struct{ name string }

func (f failingCodec) Measure(context.Context, []byte, *codec.EstimatorDescriptor) (time.Duration, int64, error) {
	return 0, 0, nil
}
func (f failingCodec) CompressFull(context.Context, []byte, io.Writer) error {
	return errFail
}
func (f failingCodec) CompressRange(context.Context, []byte, codec.ByteRange, io.Writer) error {
	return errFail
}
func (f failingCodec) Name() string { return f.name }

var errFail = io.ErrClosedPipe

func singlePoint(d time.Duration, size int64, name string) planner.HullPoint {
	return planner.HullPoint{Measurement: measurement.New(d, size, echoCodec{name})}
}
