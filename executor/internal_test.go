package executor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDivergenceWarning_WithinTolerance(t *testing.T) {
	assert.Equal(t, "", divergenceWarning(10*time.Second, 11*time.Second))
}

func TestDivergenceWarning_ExceedsTolerance(t *testing.T) {
	assert.NotEmpty(t, divergenceWarning(10*time.Second, 20*time.Second))
}

func TestDivergenceWarning_ZeroPlanned(t *testing.T) {
	assert.Equal(t, "", divergenceWarning(0, time.Second))
}

func TestSplitOffset_RoundsHalfToEven(t *testing.T) {
	cases := []struct {
		inputLen int64
		fraction float64
		want     int64
	}{
		{inputLen: 10, fraction: 0.5, want: 5},
		{inputLen: 5, fraction: 0.5, want: 2},  // 2.5 -> 2 (even)
		{inputLen: 7, fraction: 0.5, want: 4},  // 3.5 -> 4 (even)
		{inputLen: 100, fraction: 0, want: 0},
		{inputLen: 100, fraction: 1, want: 100},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, SplitOffset(c.inputLen, c.fraction))
	}
}

func TestSplitOffset_ClampsToInputBounds(t *testing.T) {
	assert.Equal(t, int64(0), SplitOffset(10, -0.5))
	assert.Equal(t, int64(10), SplitOffset(10, 1.5))
}
