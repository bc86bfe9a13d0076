package hullplot

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"mixplan/planner"
)

// SavePNG renders hull's duration/size curve to filename as a PNG: a line
// through the hull points in order (dominated candidates are already
// excluded by Build). No marker is drawn at the individual points.
func SavePNG(hull planner.Hull, filename string) error {
	if len(hull) == 0 {
		return ErrEmptyHull
	}

	xy := make(plotter.XYs, len(hull))
	for i, p := range hull {
		xy[i].X = p.Duration().Seconds()
		xy[i].Y = float64(p.Size())
	}

	p, err := plot.New()
	if err != nil {
		return fmt.Errorf("hullplot: new plot: %w", err)
	}
	p.Title.Text = "compression hull"
	p.X.Label.Text = "duration (s)"
	p.Y.Label.Text = "compressed size (bytes)"

	if err := plotutil.AddLines(p, xy); err != nil {
		return fmt.Errorf("hullplot: add hull curve: %w", err)
	}

	if err := p.Save(8*vg.Inch, 4*vg.Inch, filename); err != nil {
		return fmt.Errorf("hullplot: save %s: %w", filename, err)
	}
	return nil
}
