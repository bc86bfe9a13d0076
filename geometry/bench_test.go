package geometry_test

import (
	"math/rand"
	"strconv"
	"testing"

	"mixplan/geometry"
)

// randomPoints generates n points with a deterministic seed for
// reproducible benchmark runs.
func randomPoints(n int, seed int64) []point2D {
	r := rand.New(rand.NewSource(seed))
	out := make([]point2D, n)
	for i := range out {
		out[i] = point2D{x: r.Float64() * 100, y: r.Float64() * 1e6}
	}
	return out
}

func BenchmarkLowerHull(b *testing.B) {
	for _, n := range []int{8, 64, 512, 4096} {
		points := randomPoints(n, 1)
		b.Run("n="+strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = geometry.LowerHull(points)
			}
		})
	}
}
