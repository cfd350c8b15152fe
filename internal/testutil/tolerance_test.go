package testutil

import "testing"

func TestRequireSliceNearlyEqual(t *testing.T) {
	RequireSliceNearlyEqual(t, []float64{1, 2, 3}, []float64{1, 2, 3.0000001}, 1e-6)
}

func TestRequireNearlyEqual(t *testing.T) {
	RequireNearlyEqual(t, 1.25, 1.2500001, 1e-6)
}

func TestRequireFinite(t *testing.T) {
	RequireFinite(t, []float64{0, -1, 1e300})
}
