package testutil

import (
	"math"
	"testing"
)

// RequireNear fails t if got and want differ by more than eps.
func RequireNear(t *testing.T, got, want, eps float64) {
	t.Helper()
	if diff := math.Abs(got - want); diff > eps {
		t.Fatalf("got %v, want %v (diff %v > eps %v)", got, want, diff, eps)
	}
}

// RequireSliceNearlyEqual fails t if the reading windows differ in
// length or any pair of readings differs by more than eps.
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("reading count mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if diff := math.Abs(got[i] - want[i]); diff > eps {
			t.Fatalf("reading %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any reading is NaN or Inf, which would mean
// a filter or analysis step diverged.
func RequireFinite(t *testing.T, readings []float64) {
	t.Helper()
	for i, v := range readings {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("reading %d: non-finite value %v", i, v)
		}
	}
}
