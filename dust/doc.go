// Package dust evaluates empirical dust-attenuation curves for stellar
// population spectra and derives broadband attenuation factors.
//
// The reddening curve k(λ) = A(λ)/E(B-V) is built from the Calzetti (2000)
// starburst law above 0.15 µm and the Leitherer (2002) far-UV extension
// below it. Two parameterized variants decorate that base curve with a Drude
// UV bump and a V-band-normalized power-law tilt:
//
//   - [Noll09KLambda]: bump added first, power law applied after.
//   - [Sbl18KLambda] (Salim 2018): power law applied first, bump added after.
//
// The operation ordering is the defining difference between the two models;
// they coincide exactly when the power-law slope is zero.
//
// [TriweightKLambda] provides a smooth log-log sigmoid-slope approximation
// to the Noll (2009) curve for callers that need well-behaved asymptotics.
//
// All wavelength arguments to the curve kernels are in microns. Functions
// are pure; singular inputs (x=0, bump center on the evaluation point)
// propagate as Inf/NaN per IEEE semantics rather than erroring.
package dust
