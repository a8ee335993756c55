package photometry

import (
	"math"

	"github.com/gbeltzmo/dsps/cosmology"
	"github.com/gbeltzmo/dsps/internal/quad"
)

// AB0 is the filter-independent flux density of the AB reference source:
// 3631 Jansky placed at 10 pc, expressed in Lsun/Hz.
const AB0 = 1.13492e-13

// FluxAB0At10pc returns the filter-integrated flux of the AB reference
// source, the trapezoidal integral of trans(λ)·AB0/λ over the filter grid.
// The value depends only on the filter; callers evaluating many sources
// through one filter should cache it (see [Filter]).
func FluxAB0At10pc(filterWave, filterTrans []float64) float64 {
	integrand := make([]float64, len(filterWave))
	for i := range integrand {
		integrand[i] = filterTrans[i] * AB0 / filterWave[i]
	}

	return quad.Trapz(integrand, filterWave)
}

// RestFlux integrates a rest-frame spectrum through a filter. The spectrum is
// linearly interpolated onto the filter wavelength grid, with zero luminosity
// outside its tabulated range, then trans·L/λ is integrated trapezoidally.
// waveRest/lumRest and filterWave/filterTrans must be equal-length pairs.
func RestFlux(waveRest, lumRest, filterWave, filterTrans []float64) float64 {
	buf := make([]float64, len(filterWave))
	quad.InterpZeroSlice(buf, filterWave, waveRest, lumRest)

	for i := range buf {
		buf[i] *= filterTrans[i] / filterWave[i]
	}

	return quad.Trapz(buf, filterWave)
}

// ObsFlux is [RestFlux] for a source observed at redshift z: the source
// wavelength axis is stretched by (1+z) before interpolation onto the filter
// grid. Luminosity density values are not rescaled by the redshift Jacobian;
// this matches the adopted convention for the dimming term, so changing it
// here would double-count.
func ObsFlux(waveRest, lumRest, filterWave, filterTrans []float64, z float64) float64 {
	buf := make([]float64, len(filterWave))
	obsInterp(buf, filterWave, waveRest, lumRest, z)

	for i := range buf {
		buf[i] *= filterTrans[i] / filterWave[i]
	}

	return quad.Trapz(buf, filterWave)
}

// obsInterp fills dst with the source interpolated at filterWave against the
// redshifted wavelength axis waveRest·(1+z). The query points are divided by
// (1+z) instead of scaling the source grid, which keeps the source arrays
// untouched. At z=0 the scale factor is exactly 1 and the result is
// bit-identical to the rest-frame interpolation.
func obsInterp(dst, filterWave, waveRest, lumRest []float64, z float64) {
	inv := 1 / (1 + z)
	for i, w := range filterWave {
		dst[i] = w * inv
	}

	// Each element of dst is read before it is overwritten, so aliasing the
	// query grid with the destination is safe.
	quad.InterpZeroSlice(dst, dst, waveRest, lumRest)
}

// RestMag returns the rest-frame AB magnitude of the source through the
// filter. A non-positive flux ratio propagates as +Inf or NaN.
func RestMag(waveRest, lumRest, filterWave, filterTrans []float64) float64 {
	flux := RestFlux(waveRest, lumRest, filterWave, filterTrans)
	return fluxToMag(flux, FluxAB0At10pc(filterWave, filterTrans))
}

// ObsMagNoDimming returns the observer-frame AB magnitude at redshift z
// without the cosmological dimming term.
func ObsMagNoDimming(waveRest, lumRest, filterWave, filterTrans []float64, z float64) float64 {
	flux := ObsFlux(waveRest, lumRest, filterWave, filterTrans, z)
	return fluxToMag(flux, FluxAB0At10pc(filterWave, filterTrans))
}

// ObsMag returns the apparent AB magnitude at redshift z, including
// cosmological dimming from the supplied distance-modulus collaborator.
func ObsMag(waveRest, lumRest, filterWave, filterTrans []float64, z float64,
	p cosmology.Params, dm cosmology.DistanceModulusFunc,
) float64 {
	return ObsMagNoDimming(waveRest, lumRest, filterWave, filterTrans, z) +
		CosmologicalDimming(z, p, dm)
}

// CosmologicalDimming returns the magnitude offset between the rest-frame and
// observed photometry: distance modulus minus 2.5·log10(1+z).
func CosmologicalDimming(z float64, p cosmology.Params, dm cosmology.DistanceModulusFunc) float64 {
	return dm(z, p) - 2.5*math.Log10(1+z)
}

// CosmologicalDimmingFromTable is [CosmologicalDimming] backed by a
// precomputed distance-modulus table, linearly interpolated at z.
func CosmologicalDimmingFromTable(z float64, zTable, dmTable []float64) (float64, error) {
	dmod, err := cosmology.DistanceModulusFromTable(z, zTable, dmTable)
	if err != nil {
		return 0, err
	}

	return dmod - 2.5*math.Log10(1+z), nil
}

// fluxToMag converts a source flux and zero-point flux to an AB magnitude.
// Non-positive ratios follow math.Log10 semantics (+Inf for zero flux, NaN
// for negative ratios).
func fluxToMag(flux, fluxAB0 float64) float64 {
	return -2.5 * math.Log10(flux/fluxAB0)
}
