package hullplot_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mixplan/hullplot"
	"mixplan/measurement"
	"mixplan/planner"
)

func TestSavePNG_WritesNonEmptyFile(t *testing.T) {
	ms := []measurement.Measurement{
		measurement.New(2*time.Second, 1_000_000, nil),
		measurement.New(4*time.Second, 800_000, nil),
		measurement.New(6*time.Second, 600_000, nil),
	}
	hull, err := planner.Build(ms)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "hull.png")
	require.NoError(t, hullplot.SavePNG(hull, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestSavePNG_RejectsEmptyHull(t *testing.T) {
	err := hullplot.SavePNG(nil, filepath.Join(t.TempDir(), "hull.png"))
	assert.ErrorIs(t, err, hullplot.ErrEmptyHull)
}
