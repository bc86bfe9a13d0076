package measurement

import (
	"time"

	"mixplan/codec"
)

// Measurement is the immutable (duration, size, codec-handle) triple
// observed or estimated for one codec configuration on one document.
//
// Measurement satisfies geometry.Point: X is Duration in seconds, Y is
// Size.
type Measurement struct {
	duration time.Duration
	size     int64
	c        codec.Codec
}

// New constructs a Measurement. size must be non-negative; duration must
// be non-negative. c is the codec configuration that produced these
// numbers.
func New(duration time.Duration, size int64, c codec.Codec) Measurement {
	return Measurement{duration: duration, size: size, c: c}
}

// Duration returns the wall-clock time this configuration took.
func (m Measurement) Duration() time.Duration { return m.duration }

// Size returns the compressed byte count this configuration produced.
func (m Measurement) Size() int64 { return m.size }

// Codec returns the codec handle that produced this measurement.
func (m Measurement) Codec() codec.Codec { return m.c }

// X implements geometry.Point: duration, in seconds.
func (m Measurement) X() float64 { return m.duration.Seconds() }

// Y implements geometry.Point: compressed size.
func (m Measurement) Y() float64 { return float64(m.size) }

// Equal reports componentwise equality on Size and Duration. The codec
// handle does not participate: two configurations reporting identical
// metrics are interchangeable for planning purposes.
func (m Measurement) Equal(other Measurement) bool {
	return m.duration == other.duration && m.size == other.size
}

// Less implements the total ordering of spec.md §3: ascending by
// Duration, ties broken by descending Size (the worse compressor sorts
// first among equal-duration candidates).
func (m Measurement) Less(other Measurement) bool {
	if m.duration != other.duration {
		return m.duration < other.duration
	}
	return m.size > other.size
}
