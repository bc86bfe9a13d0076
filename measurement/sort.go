package measurement

import "sort"

// Sort orders measurements in place per the total ordering defined by
// Less: ascending duration, ties broken by descending size.
func Sort(measurements []Measurement) {
	sort.SliceStable(measurements, func(i, j int) bool {
		return measurements[i].Less(measurements[j])
	})
}
