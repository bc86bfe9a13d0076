package codec_test

import (
	"context"
	"io"
	"time"

	"mixplan/codec"
)

// stubCodec is a deterministic Codec double: CompressRange writes one byte
// per input byte in the range (a trivial "codec" whose output size equals
// the range length), letting tests assert on exact scaled sizes.
type stubCodec struct {
	name string
}

func (s stubCodec) Measure(ctx context.Context, input []byte, estimator *codec.EstimatorDescriptor) (time.Duration, int64, error) {
	return time.Second, int64(len(input)), nil
}

func (s stubCodec) CompressFull(ctx context.Context, input []byte, sink io.Writer) error {
	_, err := sink.Write(input)
	return err
}

func (s stubCodec) CompressRange(ctx context.Context, input []byte, r codec.ByteRange, sink io.Writer) error {
	_, err := sink.Write(input[r.Lo:r.Hi])
	return err
}

func (s stubCodec) Name() string { return s.name }

// recordingCodec wraps stubCodec and remembers every range CompressRange
// was called with, so a test can assert on block placement.
type recordingCodec struct {
	stubCodec
	ranges []codec.ByteRange
}

func (r *recordingCodec) CompressRange(ctx context.Context, input []byte, rg codec.ByteRange, sink io.Writer) error {
	r.ranges = append(r.ranges, rg)
	return r.stubCodec.CompressRange(ctx, input, rg, sink)
}
