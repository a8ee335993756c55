// Package quad provides the shared 1-D numeric primitives used by the
// photometry and cosmology packages: linear interpolation on strictly
// increasing grids and trapezoid quadrature.
//
// Quadrature is expressed as a set of per-node weights so that an integral
// reduces to a dot product:
//
//	w := quad.TrapzWeights(x)
//	integral := vecmath.DotProduct(y, w)
//
// This keeps the repeated filter integrations on a SIMD-friendly path and
// lets callers precompute the weights once per wavelength grid.
//
// All functions are pure and safe for concurrent use. Degenerate numeric
// inputs (NaN, Inf, zero-length grids) propagate through the arithmetic
// rather than triggering errors.
package quad
