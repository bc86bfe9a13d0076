package report_test

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mixplan/codec"
	"mixplan/measurement"
	"mixplan/multiplan"
	"mixplan/planner"
	"mixplan/report"
)

// stubCodec is a named Codec double; report only ever reads its Name.
type stubCodec struct{ name string }

func (s stubCodec) Measure(context.Context, []byte, *codec.EstimatorDescriptor) (time.Duration, int64, error) {
	return 0, 0, nil
}
func (s stubCodec) CompressFull(context.Context, []byte, io.Writer) error             { return nil }
func (s stubCodec) CompressRange(context.Context, []byte, codec.ByteRange, io.Writer) error {
	return nil
}
func (s stubCodec) Name() string { return s.name }

func samplePaperHull(t *testing.T) planner.Hull {
	t.Helper()
	ms := []measurement.Measurement{
		measurement.New(2*time.Second, 1_000_000, stubCodec{"gzip-1"}),
		measurement.New(4*time.Second, 800_000, stubCodec{"gzip-3"}),
		measurement.New(6*time.Second, 600_000, stubCodec{"gzip-5"}),
		measurement.New(8*time.Second, 400_000, stubCodec{"gzip-7"}),
		measurement.New(10*time.Second, 300_000, stubCodec{"gzip-9"}),
	}
	hull, err := planner.Build(ms)
	require.NoError(t, err)
	return hull
}

func TestRenderHull_ListsEveryPoint(t *testing.T) {
	hull := samplePaperHull(t)
	out := report.RenderHull(hull, nil)

	assert.Contains(t, out, "Document hull")
	for _, p := range hull {
		assert.Contains(t, out, p.Duration().String())
	}
}

func TestRenderMix_Single(t *testing.T) {
	hull := samplePaperHull(t)
	mix, err := hull.Query(10 * time.Second)
	require.NoError(t, err)

	out := report.RenderMix([]planner.OptimalMix{mix})
	assert.Contains(t, out, "single")
}

func TestRenderMix_Split(t *testing.T) {
	hull := samplePaperHull(t)
	mix, err := hull.Query(7 * time.Second)
	require.NoError(t, err)

	out := report.RenderMix([]planner.OptimalMix{mix})
	assert.Contains(t, out, "split")
	assert.Contains(t, out, "0.50")
}

func TestRenderMultiPlan_ListsEveryStep(t *testing.T) {
	hullA := samplePaperHull(t)
	plan, err := multiplan.Build([]planner.Hull{hullA})
	require.NoError(t, err)

	out := report.RenderMultiPlan(plan)
	for _, j := range plan {
		if j.Label != "" {
			assert.Contains(t, out, j.Label)
		}
	}
}

func TestRenderDivergenceWarning_EmptyWhenNoWarning(t *testing.T) {
	assert.Equal(t, "", report.RenderDivergenceWarning(""))
}

func TestRenderDivergenceWarning_ContainsMessage(t *testing.T) {
	out := report.RenderDivergenceWarning("execution took 10s, planned for 5s")
	assert.True(t, strings.Contains(out, "10s"))
}
