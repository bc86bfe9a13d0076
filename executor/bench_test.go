package executor_test

import (
	"context"
	"io"
	"strconv"
	"testing"
	"time"

	"mixplan/executor"
	"mixplan/planner"
)

func BenchmarkExecute_Single(b *testing.B) {
	for _, n := range []int{1 << 10, 1 << 16, 1 << 20} {
		input := make([]byte, n)
		point := singlePoint(time.Second, int64(n), "echo")
		mix := planner.OptimalMix{Kind: planner.MixSingle, Point: point}

		b.Run("bytes="+strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = executor.Execute(context.Background(), input, mix, io.Discard, nil)
			}
		})
	}
}

func BenchmarkExecute_Split(b *testing.B) {
	input := make([]byte, 1<<16)
	cheap := singlePoint(time.Second, int64(len(input))/2, "cheap")
	expensive := singlePoint(2*time.Second, int64(len(input))/2, "expensive")
	mix := planner.OptimalMix{Kind: planner.MixSplit, Cheap: cheap, Expensive: expensive, Fraction: 0.5}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = executor.Execute(context.Background(), input, mix, io.Discard, nil)
	}
}
