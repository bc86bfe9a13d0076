package report

import (
	"fmt"
	"strings"

	"mixplan/multiplan"
	"mixplan/planner"
)

// RenderHull renders one document's hull as a table, highlighting any
// point that participates in selected (pass nil to render without a
// selection).
func RenderHull(hull planner.Hull, selected *planner.OptimalMix) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Document hull") + "\n\n")

	header := fmt.Sprintf("%-3s %-12s %-14s %-10s", "#", "Duration", "Size", "Benefit")
	b.WriteString(headerStyle.Render(header) + "\n")

	for i, p := range hull {
		line := fmt.Sprintf("%-3d %-12s %-14d %-10.0f", i, p.Duration(), p.Size(), p.Benefit)
		if pointSelected(p, selected) {
			b.WriteString(selectedRowStyle.Render(line) + "\n")
		} else {
			b.WriteString(rowStyle.Render(line) + "\n")
		}
	}
	return b.String()
}

// pointSelected reports whether p is the point (Single) or one of the two
// endpoints (Split) mix names.
func pointSelected(p planner.HullPoint, mix *planner.OptimalMix) bool {
	if mix == nil {
		return false
	}
	switch mix.Kind {
	case planner.MixSingle:
		return p.Measurement.Equal(mix.Point.Measurement)
	case planner.MixSplit:
		return p.Measurement.Equal(mix.Cheap.Measurement) || p.Measurement.Equal(mix.Expensive.Measurement)
	default:
		return false
	}
}

// RenderMix renders the per-document query results a planner or multiplan
// query produced.
func RenderMix(mixes []planner.OptimalMix) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Selected mix") + "\n\n")

	header := fmt.Sprintf("%-4s %-8s %-30s", "Doc", "Kind", "Detail")
	b.WriteString(headerStyle.Render(header) + "\n")

	for i, mix := range mixes {
		var kind, detail string
		switch mix.Kind {
		case planner.MixSingle:
			kind = "single"
			detail = fmt.Sprintf("%s @ %s", mix.Point.Measurement.Codec().Name(), mix.Point.Duration())
		case planner.MixSplit:
			kind = "split"
			detail = fmt.Sprintf("%s/%s fraction=%.2f",
				mix.Cheap.Measurement.Codec().Name(), mix.Expensive.Measurement.Codec().Name(), mix.Fraction)
		}
		line := fmt.Sprintf("%-4d %-8s %-30s", i, kind, detail)
		b.WriteString(rowStyle.Render(line) + "\n")
	}
	return b.String()
}

// RenderMultiPlan renders the joint-plan sequence a multiplan.Build call
// produced.
func RenderMultiPlan(plan multiplan.MultiPlan) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Joint plan") + "\n\n")

	header := fmt.Sprintf("%-3s %-12s %-14s %-10s %-20s", "#", "Duration", "Size", "Benefit", "Step")
	b.WriteString(headerStyle.Render(header) + "\n")

	for i, j := range plan {
		line := fmt.Sprintf("%-3d %-12s %-14d %-10.0f %-20s", i, j.AggregateDuration, j.AggregateSize, j.Benefit, j.Label)
		b.WriteString(rowStyle.Render(line) + "\n")
	}
	return b.String()
}

// RenderDivergenceWarning renders a non-empty divergence message with the
// warning style, or an empty string if there is nothing to report.
func RenderDivergenceWarning(warning string) string {
	if warning == "" {
		return ""
	}
	return warnStyle.Render("warning: "+warning) + "\n"
}
