package executor

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"math"
	"time"

	"mixplan/codec"
	"mixplan/planner"
)

// divergenceTolerance bounds how far Result.Elapsed may exceed
// PlannedDuration before Execute reports a DivergenceWarning.
const divergenceTolerance = 1.25

// Execute drives the codec(s) an optimal mix names against input and
// writes the compressed stream to sink, per spec.md §4.5. dims is nil for
// byte-oriented codecs; for image codecs it triggers the mixed-output
// container header on Split mixes. The whole stream is assembled in memory
// and written to sink only after every codec call has succeeded, so a
// failed call leaves sink untouched.
func Execute(ctx context.Context, input []byte, mix planner.OptimalMix, sink io.Writer, dims *ImageDims) (Result, error) {
	if len(input) == 0 {
		return Result{}, ErrEmptyInput
	}

	var out bytes.Buffer
	var result Result
	var err error
	switch mix.Kind {
	case planner.MixSingle:
		result, err = executeSingle(ctx, input, mix.Point, &out)
	case planner.MixSplit:
		result, err = executeSplit(ctx, input, mix, &out, dims)
	default:
		return Result{}, fmt.Errorf("%w: %d", ErrUnknownMixKind, mix.Kind)
	}
	if err != nil {
		return Result{}, err
	}
	if _, err := sink.Write(out.Bytes()); err != nil {
		return Result{}, fmt.Errorf("%w: write output: %v", ErrCompressionFailed, err)
	}
	return result, nil
}

func executeSingle(ctx context.Context, input []byte, point planner.HullPoint, sink io.Writer) (Result, error) {
	counter := &countingWriter{w: sink}
	start := time.Now()
	if err := point.Measurement.Codec().CompressFull(ctx, input, counter); err != nil {
		return Result{}, fmt.Errorf("%w: %s: %v", ErrCompressionFailed, point.Measurement.Codec().Name(), err)
	}
	elapsed := time.Since(start)

	return Result{
		BytesWritten:      counter.n,
		PlannedDuration:   point.Duration(),
		Elapsed:           elapsed,
		DivergenceWarning: divergenceWarning(point.Duration(), elapsed),
	}, nil
}

// executeSplit computes the fraction-to-offset byte partition, compresses
// each half with its own codec, and writes them back-to-back. When dims is
// non-nil, the cheap segment is compressed into a buffer first so its
// length is known before the container header — which must precede it —
// is written.
func executeSplit(ctx context.Context, input []byte, mix planner.OptimalMix, sink io.Writer, dims *ImageDims) (Result, error) {
	offset := SplitOffset(int64(len(input)), mix.Fraction)
	cheapRange := codec.ByteRange{Lo: 0, Hi: offset}
	expensiveRange := codec.ByteRange{Lo: offset, Hi: int64(len(input))}

	planned := time.Duration(mix.Fraction*float64(mix.Cheap.Duration()) +
		(1-mix.Fraction)*float64(mix.Expensive.Duration()))

	start := time.Now()

	var written int64
	if dims != nil {
		var cheapBuf bytes.Buffer
		if err := mix.Cheap.Measurement.Codec().CompressRange(ctx, input, cheapRange, &cheapBuf); err != nil {
			return Result{}, fmt.Errorf("%w: %s: %v", ErrCompressionFailed, mix.Cheap.Measurement.Codec().Name(), err)
		}

		header := codec.ContainerHeader{
			SecondStreamOffset: uint64(codec.ContainerHeaderLen + cheapBuf.Len()),
			Width:              dims.Width,
			Height:             dims.Height,
		}
		if err := codec.WriteContainerHeader(sink, header); err != nil {
			return Result{}, fmt.Errorf("%w: %v", ErrCompressionFailed, err)
		}
		written += int64(codec.ContainerHeaderLen)

		n, err := sink.Write(cheapBuf.Bytes())
		if err != nil {
			return Result{}, fmt.Errorf("%w: write cheap segment: %v", ErrCompressionFailed, err)
		}
		written += int64(n)
	} else {
		counter := &countingWriter{w: sink}
		if err := mix.Cheap.Measurement.Codec().CompressRange(ctx, input, cheapRange, counter); err != nil {
			return Result{}, fmt.Errorf("%w: %s: %v", ErrCompressionFailed, mix.Cheap.Measurement.Codec().Name(), err)
		}
		written += counter.n
	}

	counter := &countingWriter{w: sink}
	if err := mix.Expensive.Measurement.Codec().CompressRange(ctx, input, expensiveRange, counter); err != nil {
		return Result{}, fmt.Errorf("%w: %s: %v", ErrCompressionFailed, mix.Expensive.Measurement.Codec().Name(), err)
	}
	written += counter.n

	elapsed := time.Since(start)
	return Result{
		BytesWritten:      written,
		PlannedDuration:   planned,
		Elapsed:           elapsed,
		DivergenceWarning: divergenceWarning(planned, elapsed),
	}, nil
}

// SplitOffset computes the byte boundary a split fraction implies, via
// standard round-half-to-even on the product, clamped to the valid range
// (spec.md §4.5's "Fraction-to-offset rounding").
func SplitOffset(inputLen int64, fraction float64) int64 {
	b := int64(math.RoundToEven(float64(inputLen) * fraction))
	if b < 0 {
		return 0
	}
	if b > inputLen {
		return inputLen
	}
	return b
}

// divergenceWarning returns a non-empty message when elapsed exceeds
// planned by more than divergenceTolerance, the wall-clock check
// spec.md §5 calls a warning rather than a failure.
func divergenceWarning(planned, elapsed time.Duration) string {
	if planned <= 0 {
		return ""
	}
	if float64(elapsed) > float64(planned)*divergenceTolerance {
		return fmt.Sprintf("execution took %s, planned for %s", elapsed, planned)
	}
	return ""
}

// countingWriter forwards writes to w while counting the bytes that pass
// through, so Execute can report the real stream length it produced.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
