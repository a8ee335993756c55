package testutil

import (
	"math"
	"testing"
)

// RequireNearlyEqual fails t if got and want differ by more than eps
// (absolute tolerance). NaN never compares equal.
func RequireNearlyEqual(t *testing.T, got, want, eps float64) {
	t.Helper()

	if !(math.Abs(got-want) <= eps) {
		t.Fatalf("got %v, want %v (diff %v > eps %v)", got, want, math.Abs(got-want), eps)
	}
}

// RequireRelClose fails t if got and want differ by more than relTol in
// relative terms. want must be nonzero.
func RequireRelClose(t *testing.T, got, want, relTol float64) {
	t.Helper()

	rel := math.Abs(got-want) / math.Abs(want)
	if !(rel <= relTol) {
		t.Fatalf("got %v, want %v (relative diff %v > %v)", got, want, rel, relTol)
	}
}

// RequireSliceNearlyEqual fails t if got and want differ in length or if any
// element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}

	for i := range got {
		if !(math.Abs(got[i]-want[i]) <= eps) {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)",
				i, got[i], want[i], math.Abs(got[i]-want[i]), eps)
		}
	}
}

// RequireFinite fails t if v is NaN or Inf.
func RequireFinite(t *testing.T, v float64) {
	t.Helper()

	if math.IsNaN(v) || math.IsInf(v, 0) {
		t.Fatalf("non-finite value %v", v)
	}
}
