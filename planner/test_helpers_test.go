package planner_test

import (
	"time"

	"mixplan/measurement"
)

// paperMeasurements reproduces the reference scenario from spec.md §8.
func paperMeasurements() []measurement.Measurement {
	return []measurement.Measurement{
		measurement.New(2*time.Second, 1_000_000, nil),
		measurement.New(4*time.Second, 800_000, nil),
		measurement.New(6*time.Second, 600_000, nil),
		measurement.New(7*time.Second, 580_000, nil), // dominated
		measurement.New(8*time.Second, 400_000, nil),
		measurement.New(10*time.Second, 300_000, nil),
	}
}
