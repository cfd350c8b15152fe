package psd

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Aggregation selects how per-window power values are collapsed into a
// single estimate per frequency bin.
type Aggregation int

const (
	// AggregateMedian takes the per-bin median across windows. Transient
	// artifacts confined to a few windows barely move the estimate.
	AggregateMedian Aggregation = iota
	// AggregateMean takes the per-bin arithmetic mean across windows,
	// matching the classic Welch estimator.
	AggregateMean
)

// aggregate collapses values in place; the slice is reordered for the
// median path.
func aggregate(a Aggregation, values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	if a == AggregateMean {
		return stat.Mean(values, nil)
	}

	return median(values)
}

// median sorts values and returns the standard median: the central element
// for odd counts, the mean of the two central elements for even counts.
func median(values []float64) float64 {
	sort.Float64s(values)

	mid := len(values) / 2
	if len(values)%2 == 1 {
		return values[mid]
	}

	return (values[mid-1] + values[mid]) / 2
}
