package geometry_test

import (
	"fmt"

	"mixplan/geometry"
)

// ExampleLowerHull demonstrates extracting the Pareto-optimal
// (duration, size) frontier from a set of measurements, reproducing the
// worked example from the source paper.
func ExampleLowerHull() {
	points := pts(
		2, 1_000_000,
		4, 800_000,
		6, 600_000,
		7, 580_000, // dominated: strictly worse than the (6,600_000)->(8,400_000) segment
		8, 400_000,
		10, 300_000,
	)

	for _, p := range geometry.LowerHull(points) {
		fmt.Printf("%.0fs -> %.0f bytes\n", p.X(), p.Y())
	}
	// Output:
	// 2s -> 1000000 bytes
	// 4s -> 800000 bytes
	// 6s -> 600000 bytes
	// 8s -> 400000 bytes
	// 10s -> 300000 bytes
}
