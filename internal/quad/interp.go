package quad

import "sort"

// Interp evaluates piecewise-linear interpolation of the samples (xs, ys) at
// x. Outside the grid the nearest edge value is returned. xs must be strictly
// increasing and the same length as ys; both are untouched.
func Interp(x float64, xs, ys []float64) float64 {
	n := len(xs)
	if n == 0 {
		return 0
	}

	if x <= xs[0] {
		return ys[0]
	}

	if x >= xs[n-1] {
		return ys[n-1]
	}

	return interpInterior(x, xs, ys)
}

// InterpZero is like [Interp] but returns 0 for query points outside the grid
// instead of the edge values. This matches the convention for spectra: a
// source emits nothing outside its tabulated wavelength range.
func InterpZero(x float64, xs, ys []float64) float64 {
	n := len(xs)
	if n == 0 || x < xs[0] || x > xs[n-1] {
		return 0
	}

	if x == xs[0] {
		return ys[0]
	}

	if x == xs[n-1] {
		return ys[n-1]
	}

	return interpInterior(x, xs, ys)
}

// InterpZeroSlice fills dst[i] with InterpZero(xq[i], xs, ys). dst and xq must
// have equal length.
//
// The query grid is walked with a running cursor, so a sorted xq costs O(n+m)
// rather than O(m log n).
func InterpZeroSlice(dst, xq, xs, ys []float64) {
	n := len(xs)

	j := 0 // cursor into xs, valid while xq is non-decreasing

	for i, x := range xq {
		if n == 0 || x < xs[0] || x > xs[n-1] {
			dst[i] = 0
			continue
		}

		// Reset the cursor if the query grid stepped backwards.
		if j > 0 && x < xs[j] {
			j = 0
		}

		for j < n-1 && xs[j+1] < x {
			j++
		}

		if x == xs[j] {
			dst[i] = ys[j]
			continue
		}

		t := (x - xs[j]) / (xs[j+1] - xs[j])
		dst[i] = ys[j] + t*(ys[j+1]-ys[j])
	}
}

// interpInterior assumes xs[0] < x < xs[n-1].
func interpInterior(x float64, xs, ys []float64) float64 {
	// Index of the first grid point >= x; the bracketing interval is [i-1, i].
	i := sort.SearchFloat64s(xs, x)
	if xs[i] == x {
		return ys[i]
	}

	t := (x - xs[i-1]) / (xs[i] - xs[i-1])

	return ys[i-1] + t*(ys[i]-ys[i-1])
}
