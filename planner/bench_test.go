package planner_test

import (
	"math/rand"
	"strconv"
	"testing"
	"time"

	"mixplan/measurement"
	"mixplan/planner"
)

func randomMeasurements(n int, seed int64) []measurement.Measurement {
	r := rand.New(rand.NewSource(seed))
	out := make([]measurement.Measurement, n)
	for i := range out {
		out[i] = measurement.New(time.Duration(r.Int63n(1000))*time.Millisecond, r.Int63n(10_000_000), nil)
	}
	return out
}

func BenchmarkBuild(b *testing.B) {
	for _, n := range []int{8, 64, 512} {
		ms := randomMeasurements(n, 1)
		b.Run("n="+strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = planner.Build(ms)
			}
		})
	}
}

func BenchmarkQuery(b *testing.B) {
	hull, _ := planner.Build(paperMeasurements())
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = hull.Query(7 * time.Second)
	}
}
