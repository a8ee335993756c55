package photometry

import (
	"errors"
	"fmt"

	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/gbeltzmo/dsps/cosmology"
	"github.com/gbeltzmo/dsps/internal/quad"
)

var (
	// ErrCurveTooShort reports a wavelength grid with fewer than two samples.
	ErrCurveTooShort = errors.New("photometry: curve needs at least 2 samples")

	// ErrLengthMismatch reports paired wavelength/value slices of different length.
	ErrLengthMismatch = errors.New("photometry: wavelength and value lengths differ")

	// ErrNotIncreasing reports a wavelength grid that is not strictly increasing.
	ErrNotIncreasing = errors.New("photometry: wavelengths must be strictly increasing")
)

// Spectrum is a rest-frame spectral energy distribution sampled on a strictly
// increasing wavelength grid. Wavelengths are in Angstrom, luminosity
// densities in Lsun/Hz.
type Spectrum struct {
	Wave []float64
	Lum  []float64
}

// NewSpectrum validates the sample pair and returns it as a Spectrum.
func NewSpectrum(wave, lum []float64) (Spectrum, error) {
	if err := checkCurve(wave, lum); err != nil {
		return Spectrum{}, fmt.Errorf("spectrum: %w", err)
	}

	return Spectrum{Wave: wave, Lum: lum}, nil
}

// Filter is a bandpass transmission curve with precomputed per-filter
// quantities: trapezoid kernel weights, the AB zero-point flux, and the
// transmission-weighted effective wavelength. Construct with [NewFilter];
// the zero value is not usable.
type Filter struct {
	wave  []float64
	trans []float64

	// kernel[i] folds the quadrature weight, transmission, and 1/λ factor,
	// so a filter integration is a single dot product with the interpolated
	// source values.
	kernel []float64

	fluxAB0   float64
	lambdaEff float64
}

// NewFilter validates the transmission curve and precomputes the cached
// filter quantities. The input slices are retained; callers must not modify
// them afterwards.
func NewFilter(wave, trans []float64) (*Filter, error) {
	if err := checkCurve(wave, trans); err != nil {
		return nil, fmt.Errorf("filter: %w", err)
	}

	w := quad.TrapzWeights(wave)

	kernel := make([]float64, len(wave))
	for i := range kernel {
		kernel[i] = w[i] * trans[i] / wave[i]
	}

	norm := vecmath.DotProduct(trans, w)
	lambdaEff := vecmath.DotProduct(trans, mulWeights(wave, w)) / norm

	return &Filter{
		wave:      wave,
		trans:     trans,
		kernel:    kernel,
		fluxAB0:   AB0 * vecmath.Sum(kernel),
		lambdaEff: lambdaEff,
	}, nil
}

// Wave returns the filter wavelength grid. Read-only.
func (f *Filter) Wave() []float64 { return f.wave }

// Trans returns the filter transmission values. Read-only.
func (f *Filter) Trans() []float64 { return f.trans }

// FluxAB0 returns the cached filter-integrated flux of the AB reference
// source at 10 pc.
func (f *Filter) FluxAB0() float64 { return f.fluxAB0 }

// EffectiveWavelength returns the transmission-weighted mean wavelength of
// the filter, mapped to the rest frame of a source at redshift z.
func (f *Filter) EffectiveWavelength(z float64) float64 {
	return f.lambdaEff / (1 + z)
}

// RestFlux integrates the rest-frame spectrum through the filter.
func (f *Filter) RestFlux(s Spectrum) float64 {
	buf := make([]float64, len(f.wave))
	return f.restFluxInto(buf, s)
}

// ObsFlux integrates the spectrum through the filter as observed at
// redshift z.
func (f *Filter) ObsFlux(s Spectrum, z float64) float64 {
	buf := make([]float64, len(f.wave))
	return f.obsFluxInto(buf, s, z)
}

// RestMag returns the rest-frame AB magnitude of the spectrum.
func (f *Filter) RestMag(s Spectrum) float64 {
	return fluxToMag(f.RestFlux(s), f.fluxAB0)
}

// ObsMagNoDimming returns the observer-frame AB magnitude at redshift z
// without cosmological dimming.
func (f *Filter) ObsMagNoDimming(s Spectrum, z float64) float64 {
	return fluxToMag(f.ObsFlux(s, z), f.fluxAB0)
}

// ObsMag returns the apparent AB magnitude at redshift z including
// cosmological dimming.
func (f *Filter) ObsMag(s Spectrum, z float64, p cosmology.Params, dm cosmology.DistanceModulusFunc) float64 {
	return f.ObsMagNoDimming(s, z) + CosmologicalDimming(z, p, dm)
}

// restFluxInto evaluates the filter integral using buf (len(f.wave)) as
// interpolation scratch.
func (f *Filter) restFluxInto(buf []float64, s Spectrum) float64 {
	quad.InterpZeroSlice(buf, f.wave, s.Wave, s.Lum)
	return vecmath.DotProduct(buf, f.kernel)
}

// obsFluxInto is restFluxInto with the source wavelength axis stretched
// by (1+z).
func (f *Filter) obsFluxInto(buf []float64, s Spectrum, z float64) float64 {
	obsInterp(buf, f.wave, s.Wave, s.Lum, z)
	return vecmath.DotProduct(buf, f.kernel)
}

func checkCurve(wave, values []float64) error {
	if len(wave) < 2 {
		return ErrCurveTooShort
	}

	if len(wave) != len(values) {
		return fmt.Errorf("%w: %d wavelengths, %d values", ErrLengthMismatch, len(wave), len(values))
	}

	for i := 1; i < len(wave); i++ {
		if !(wave[i] > wave[i-1]) {
			return fmt.Errorf("%w: index %d", ErrNotIncreasing, i)
		}
	}

	return nil
}

func mulWeights(a, b []float64) []float64 {
	out := make([]float64, len(a))
	vecmath.MulBlock(out, a, b)

	return out
}
