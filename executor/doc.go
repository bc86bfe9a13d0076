// Package executor drives the codec(s) named by an optimal mix against one
// document's bytes and produces the final compressed stream, per
// spec.md §4.5.
//
// # What & Why
//
// A planner query answers "which configuration(s)?"; executor answers
// "now make it so." A Single mix is one CompressFull call. A Split mix
// computes the byte offset the fraction implies, compresses the two
// halves with their respective codecs, and writes them back-to-back —
// prepending a container header first when the document is the kind
// (image codecs) where bare concatenation would be ambiguous.
//
// # Ordering & atomicity
//
// Bytes are written strictly cheap-segment-then-expensive-segment.
// Execute either completes with the full stream written, or returns an
// error with no partial output retained in the caller's sink — the whole
// stream (header, cheap segment, expensive segment) is assembled in memory
// and handed to the sink only once every codec call has succeeded. When a
// container header is required, the cheap segment is compressed first so
// its length is known before the header is written.
//
// # Divergence reporting
//
// The planned duration an Execute call's mix carries came from planning
// time; Result.Elapsed is whatever the codec takes right now. Execute
// never treats a divergence as failure — it reports it on Result so a
// caller can log or alert, mirroring spec.md §5's "exceeding the planned
// budget at runtime is a warning, not a failure."
package executor
