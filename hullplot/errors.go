package hullplot

import "errors"

// ErrEmptyHull indicates SavePNG was called with zero hull points.
var ErrEmptyHull = errors.New("hullplot: hull must have at least one point")
