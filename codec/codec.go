package codec

import (
	"context"
	"io"
	"time"
)

// Codec is the narrow interface the planner and executor consume to drive
// a compression backend. Implementations (gzip, bzip2, lzma, PNG, ...)
// live outside the core packages (the one this module ships is
// internal/gzipcodec); spec.md §6 defines their contract.
type Codec interface {
	// Measure produces a definitive (duration, size) pair for compressing
	// input. If estimator is non-nil, Measure samples via Estimate instead
	// of compressing the whole input. The result is authoritative: callers
	// never re-measure.
	Measure(ctx context.Context, input []byte, estimator *EstimatorDescriptor) (time.Duration, int64, error)

	// CompressFull compresses the entire input to sink. It either
	// succeeds and flushes, or fails cleanly with no partial output
	// retained by the caller.
	CompressFull(ctx context.Context, input []byte, sink io.Writer) error

	// CompressRange compresses input[r.Lo:r.Hi] to sink under the same
	// atomicity guarantee as CompressFull.
	CompressRange(ctx context.Context, input []byte, r ByteRange, sink io.Writer) error

	// Name is a stable identifier used in plan labels and container tags.
	Name() string
}
