package testutil

import "testing"

func TestRequireNearSettledEstimate(t *testing.T) {
	// A converged filter estimate a few hundredths off its target.
	RequireNear(t, 50.039, 50, 0.1)
}

func TestRequireNearExact(t *testing.T) {
	RequireNear(t, 113.4, 113.4, 0)
}

func TestRequireSliceNearlyEqualReadings(t *testing.T) {
	got := []float64{10.1, 10.0, 10.05, 10.02, 10.0}
	want := []float64{10.1, 10.0, 10.05, 10.02, 10.0}

	RequireSliceNearlyEqual(t, got, want, 1e-12)
}

func TestRequireSliceNearlyEqualWithinTolerance(t *testing.T) {
	got := RampReadings(10, 25, 4)
	want := []float64{10.0000001, 15, 20, 24.9999999}

	RequireSliceNearlyEqual(t, got, want, 1e-6)
}

func TestRequireFiniteReadings(t *testing.T) {
	RequireFinite(t, ConstantReadings(50, 8))
	RequireFinite(t, NoisyReadings(42, 100, 1, 8))
}
