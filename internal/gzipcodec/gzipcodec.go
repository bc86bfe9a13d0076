// Package gzipcodec is the one concrete codec.Codec this repo ships: a
// thin adapter over the standard library's compress/gzip, named by
// compression level ("gzip-1".."gzip-9") the way config.Config's codec
// ladder expects. The planner and executor never import this package
// directly — cmd/mixplan wires it in behind the codec.Codec interface,
// which spec.md §6 leaves to external implementations.
package gzipcodec

import (
	"bytes"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"

	"mixplan/codec"
)

// Codec compresses with a fixed compress/gzip level.
type Codec struct {
	level int
	name  string
}

// New returns a Codec at level, which must be in [gzip.BestSpeed,
// gzip.BestCompression] (1..9).
func New(level int) (Codec, error) {
	if level < gzip.BestSpeed || level > gzip.BestCompression {
		return Codec{}, fmt.Errorf("gzipcodec: level %d out of [%d,%d]", level, gzip.BestSpeed, gzip.BestCompression)
	}
	return Codec{level: level, name: fmt.Sprintf("gzip-%d", level)}, nil
}

// Name returns "gzip-<level>".
func (c Codec) Name() string { return c.name }

// CompressFull writes all of input to sink as a gzip stream at c's level.
func (c Codec) CompressFull(ctx context.Context, input []byte, sink io.Writer) error {
	return c.compress(ctx, input, sink)
}

// CompressRange writes input[r.Lo:r.Hi] to sink as a gzip stream.
func (c Codec) CompressRange(ctx context.Context, input []byte, r codec.ByteRange, sink io.Writer) error {
	if r.Lo < 0 || r.Hi > int64(len(input)) || r.Lo > r.Hi {
		return codec.ErrBadByteRange
	}
	return c.compress(ctx, input[r.Lo:r.Hi], sink)
}

func (c Codec) compress(ctx context.Context, input []byte, sink io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	w, err := gzip.NewWriterLevel(sink, c.level)
	if err != nil {
		return fmt.Errorf("%w: %v", codec.ErrCodecFailure, err)
	}
	if _, err := w.Write(input); err != nil {
		return fmt.Errorf("%w: %v", codec.ErrCodecFailure, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("%w: %v", codec.ErrCodecFailure, err)
	}
	return nil
}

// Measure times a full compression when estimator is nil, or defers to
// codec.Estimate for sample-based measurement otherwise.
func (c Codec) Measure(ctx context.Context, input []byte, estimator *codec.EstimatorDescriptor) (time.Duration, int64, error) {
	if estimator != nil {
		rng := rand.New(rand.NewSource(int64(c.level)))
		return codec.Estimate(ctx, c, input, *estimator, rng)
	}

	var buf bytes.Buffer
	start := time.Now()
	if err := c.compress(ctx, input, &buf); err != nil {
		return 0, 0, err
	}
	return time.Since(start), int64(buf.Len()), nil
}

// Ladder resolves names like "gzip-1".."gzip-9" to Codec values, in order.
// Unknown or out-of-range names fail the whole ladder.
func Ladder(names []string) ([]codec.Codec, error) {
	out := make([]codec.Codec, 0, len(names))
	for _, name := range names {
		var level int
		if _, err := fmt.Sscanf(name, "gzip-%d", &level); err != nil {
			return nil, fmt.Errorf("gzipcodec: unrecognized ladder entry %q", name)
		}
		c, err := New(level)
		if err != nil {
			return nil, fmt.Errorf("gzipcodec: ladder entry %q: %w", name, err)
		}
		out = append(out, c)
	}
	return out, nil
}
