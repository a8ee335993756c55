package testutil

import "math"

// Deterministic spectral fixtures shared by the photometry and dust tests.
// Wavelengths are in Angstrom.

// Linspace returns n evenly spaced values from start to stop inclusive.
func Linspace(start, stop float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}

	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}

	return out
}

// FlatSpectrum returns a constant-luminosity spectrum over [lo, hi].
func FlatSpectrum(lo, hi, lum float64, n int) (wave, lums []float64) {
	wave = Linspace(lo, hi, n)
	lums = make([]float64, n)

	for i := range lums {
		lums[i] = lum
	}

	return wave, lums
}

// PowerLawSpectrum returns a spectrum with L(λ) = norm·(λ/λ0)^index over
// [lo, hi], pivoting at the grid midpoint.
func PowerLawSpectrum(lo, hi, norm, index float64, n int) (wave, lums []float64) {
	wave = Linspace(lo, hi, n)
	lums = make([]float64, n)

	pivot := 0.5 * (lo + hi)
	for i, w := range wave {
		lums[i] = norm * math.Pow(w/pivot, index)
	}

	return wave, lums
}

// BoxcarFilter returns a filter with unit transmission over [lo, hi].
func BoxcarFilter(lo, hi float64, n int) (wave, trans []float64) {
	wave = Linspace(lo, hi, n)
	trans = make([]float64, n)

	for i := range trans {
		trans[i] = 1
	}

	return wave, trans
}

// GaussianFilter returns a filter with a Gaussian transmission profile of
// the given center and width, sampled over ±4 sigma.
func GaussianFilter(center, sigma float64, n int) (wave, trans []float64) {
	wave = Linspace(center-4*sigma, center+4*sigma, n)
	trans = make([]float64, n)

	for i, w := range wave {
		d := (w - center) / sigma
		trans[i] = math.Exp(-0.5 * d * d)
	}

	return wave, trans
}
