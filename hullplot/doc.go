// Package hullplot renders a document's hull curve (duration on the
// x-axis, compressed size on the y-axis) to a PNG file, the "plot
// rendering" collaborator spec.md §1 names as out of scope for the core
// but useful as an optional caller-side tool. Modeled on gonum/plot's
// XYs-plus-Save usage pattern.
package hullplot
