// Package photometry computes synthetic broadband photometry for stellar
// population spectra: filter-integrated fluxes, AB magnitudes, and the
// cosmological dimming term.
//
// Two API levels are provided:
//
//   - Raw-slice kernels ([RestFlux], [ObsFlux], [RestMag], [ObsMag], ...)
//     operating directly on wavelength/value pairs.
//   - The [Filter] and [Spectrum] value types, which validate their inputs
//     once and cache the per-filter quantities (quadrature weights, AB
//     zero-point flux, effective wavelength) that are reused across sources.
//
// Conventions:
//
//   - Wavelengths are in Angstrom, luminosity densities in Lsun/Hz.
//   - Source values outside a spectrum's tabulated wavelength range are
//     treated as zero, never extrapolated.
//   - Redshifting stretches the wavelength axis by (1+z) and leaves the
//     luminosity density values untouched. The (1+z) Jacobian on the density
//     is intentionally omitted; downstream magnitudes absorb the convention
//     through the dimming term.
//   - Degenerate inputs follow IEEE float semantics: a non-positive flux
//     ratio yields +Inf or NaN magnitudes rather than an error.
//
// Batched population-level evaluation over (metallicity, age, galaxy) axes
// lives in grid.go; see [ObsMagGrid].
package photometry
