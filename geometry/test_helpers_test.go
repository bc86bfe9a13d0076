package geometry_test

// point2D is a minimal Point implementation used across geometry's tests.
type point2D struct {
	x, y float64
}

func (p point2D) X() float64 { return p.x }
func (p point2D) Y() float64 { return p.y }

func pts(xy ...float64) []point2D {
	out := make([]point2D, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		out = append(out, point2D{x: xy[i], y: xy[i+1]})
	}
	return out
}
