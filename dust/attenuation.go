package dust

import (
	"math"

	"github.com/gbeltzmo/dsps/internal/quad"
)

const (
	// RVC00 is the fixed total-to-selective extinction ratio of the
	// Calzetti (2000) law.
	RVC00 = 4.05

	// UVBumpW0 is the central wavelength of the 2175 Å UV bump, in Angstrom.
	UVBumpW0 = 2175.0

	// UVBumpDW is the width of the UV bump, in Angstrom.
	UVBumpDW = 350.0

	// Conventional parameter bounds for the Noll (2009) family.
	N09X0Min    = 0.0
	N09GammaMin = 0.0
	N09SlopeMin = -3.0
	N09SlopeMax = 3.0
)

// xcL02C00 is the wavelength (microns) where the Leitherer (2002) curve
// hands over to Calzetti (2000).
const xcL02C00 = 0.15

// Params holds the per-galaxy dust free parameters.
type Params struct {
	Eb    float64 // UV bump amplitude, >= 0
	Delta float64 // power-law slope offset from the Calzetti shape
	Av    float64 // V-band attenuation in magnitudes, >= 0
}

// Calzetti00KLambda evaluates the Calzetti (2000) reddening curve
// k(λ) = A(λ)/E(B-V) at wavelength x in microns, piecewise at 0.63 µm.
func Calzetti00KLambda(x, rv float64) float64 {
	if x < 0.63 {
		return 2.659*(-2.156+1.509/x-0.198/(x*x)+0.011/(x*x*x)) + rv
	}

	return 2.659*(-1.857+1.040/x) + rv
}

// Leitherer02KLambda evaluates the Leitherer (2002) far-UV reddening curve
// at wavelength x in microns.
func Leitherer02KLambda(x float64) float64 {
	return 5.472 + 0.671/x - 9.218e-3/(x*x) + 2.620e-3/(x*x*x)
}

// baseKLambda is the Leitherer/Calzetti blend: Calzetti (2000) above the
// handover wavelength, Leitherer (2002) at and below it.
func baseKLambda(x float64) float64 {
	if x > xcL02C00 {
		return Calzetti00KLambda(x, RVC00)
	}

	return Leitherer02KLambda(x)
}

// DrudeBump evaluates a Drude profile centered on x0 with width gamma and
// amplitude ampl, all in microns.
func DrudeBump(x, x0, gamma, ampl float64) float64 {
	x2 := x * x
	d := x2 - x0*x0

	return ampl * x2 * gamma * gamma / (d*d + x2*gamma*gamma)
}

// PowerLawVBandNorm evaluates the power law (x/0.55)^slope normalized to
// unity at the V band (0.55 µm).
func PowerLawVBandNorm(x, slope float64) float64 {
	return math.Pow(x/0.55, slope)
}

// Noll09KLambda evaluates the Noll (2009) attenuation curve at x microns:
// the Leitherer/Calzetti base plus a Drude UV bump, then tilted by the
// V-band-normalized power law, clipped at zero.
func Noll09KLambda(x, x0, gamma, ampl, slope float64) float64 {
	axEbv := baseKLambda(x) + DrudeBump(x, x0, gamma, ampl)
	axEbv *= PowerLawVBandNorm(x, slope)

	return clipZero(axEbv)
}

// Sbl18KLambda evaluates the Salim (2018) attenuation curve at x microns:
// the Leitherer/Calzetti base tilted by the power law first, with the Drude
// UV bump added after, clipped at zero. The bump-vs-tilt ordering is the
// defining difference from [Noll09KLambda].
func Sbl18KLambda(x, x0, gamma, ampl, slope float64) float64 {
	axEbv := baseKLambda(x) * PowerLawVBandNorm(x, slope)
	axEbv += DrudeBump(x, x0, gamma, ampl)

	return clipZero(axEbv)
}

// Noll09KLambdaSlice fills dst with [Noll09KLambda] over the wavelengths x.
// dst and x must have equal length.
func Noll09KLambdaSlice(dst, x []float64, x0, gamma, ampl, slope float64) {
	for i, xi := range x {
		dst[i] = Noll09KLambda(xi, x0, gamma, ampl, slope)
	}
}

// Sbl18KLambdaSlice fills dst with [Sbl18KLambda] over the wavelengths x.
// dst and x must have equal length.
func Sbl18KLambdaSlice(dst, x []float64, x0, gamma, ampl, slope float64) {
	for i, xi := range x {
		dst[i] = Sbl18KLambda(xi, x0, gamma, ampl, slope)
	}
}

// AttenuationCurve converts a reddening value axEbv into magnitudes of
// attenuation, av·axEbv/rv, clipped at zero.
func AttenuationCurve(axEbv, rv, av float64) float64 {
	return clipZero(av * axEbv / rv)
}

// FluxRatio returns the fraction of flux transmitted through dust with
// reddening axEbv: fracUnobscured plus the obscured remainder dimmed by
// 10^(-0.4·A). Zero reddening or zero av gives 1.
func FluxRatio(axEbv, rv, av, fracUnobscured float64) float64 {
	fracObs := math.Pow(10, -0.4*AttenuationCurve(axEbv, rv, av))
	return fracUnobscured + (1-fracUnobscured)*fracObs
}

// FilterEffectiveWavelength returns the transmission-weighted mean
// wavelength of the filter, divided by (1+z) to map it to the rest frame of
// a source at redshift z. Units follow the filter grid (Angstrom).
func FilterEffectiveWavelength(filterWave, filterTrans []float64, z float64) float64 {
	norm := quad.Trapz(filterTrans, filterWave)

	weighted := make([]float64, len(filterWave))
	for i := range weighted {
		weighted[i] = filterTrans[i] * filterWave[i]
	}

	lambdaEffRest := quad.Trapz(weighted, filterWave) / norm

	return lambdaEffRest / (1 + z)
}

// EffectiveAttenuation returns the attenuation factor at the filter's
// rest-frame effective wavelength: the Salim (2018) curve with the standard
// 2175 Å bump, evaluated through [FluxRatio] at Rv = [RVC00]. Callers
// multiply the result into an unattenuated flux.
func EffectiveAttenuation(filterWave, filterTrans []float64, z float64, p Params) float64 {
	lambdaEffMicron := FilterEffectiveWavelength(filterWave, filterTrans, z) / 1e4

	axEbv := Sbl18KLambda(lambdaEffMicron, UVBumpW0/1e4, UVBumpDW/1e4, p.Eb, p.Delta)

	return FluxRatio(axEbv, RVC00, p.Av, 0)
}

func clipZero(v float64) float64 {
	if v < 0 {
		return 0
	}

	return v
}
