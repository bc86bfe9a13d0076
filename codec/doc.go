// Package codec defines the narrow interface the planner and executor
// consume to drive compression backends, plus two small domain adapters:
// sample-based estimation and the mixed-output container header used when
// two codecs' streams are concatenated over an image format.
//
// # What & Why
//
// Per spec.md §1, the specific compression backends (gzip, bzip2, lzma,
// PNG, ...) are out of scope: codec is the seam. Anything satisfying Codec
// can be measured, planned over, and executed against — concrete adapters
// live outside the core packages (this module ships one,
// internal/gzipcodec), the same way lvlath keeps
// its Graph generic over vertex/edge data and leaves specific traversal
// policies to the caller.
//
// # Codec contract
//
//	Measure        — produce a definitive (duration, size) pair, either by
//	                  actually compressing or via an Estimator.
//	CompressFull    — compress the whole input to a sink, atomically.
//	CompressRange   — compress a half-open byte range [lo, hi) to a sink.
//	Name            — a stable identifier used in labels and container tags.
//
// Measure's result is definitive to the planner: the planner never
// re-measures (spec.md §4.2).
package codec
