package geometry

// Point is anything that can be projected onto the 2-D plane the hull is
// computed over. Measurements satisfy this by treating duration as X and
// compressed size as Y (see the measurement package).
type Point interface {
	X() float64
	Y() float64
}
