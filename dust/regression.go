package dust

import "math"

// Empirical regressions expressing the dust free parameters as functions of
// galaxy properties. The coefficients and pivot points (logM* = 10,
// log sSFR = -10) are reproduced verbatim from the calibrated relations,
// not derived.

// OpticalDepthV returns the V-band optical depth as a linear function of
// stellar mass and specific star-formation rate (both log10).
func OpticalDepthV(logsm, logssfr, tauMstar, tauSsfr, tauNorm float64) float64 {
	return tauMstar*(logsm-10) + tauSsfr*(logssfr+10) + tauNorm
}

// AttenuationAmplitude returns the V-band attenuation Av for a disk seen at
// inclination cos(i), from the slab relation
// Av = -2.5·log10((1 - e^(-τ/cosi)) / (τ/cosi)).
// An edge-on disk (cosi → 0) drives the attenuation to its saturated limit;
// cosi = 0 itself propagates NaN.
func AttenuationAmplitude(logsm, logssfr, tauMstar, tauSsfr, tauNorm, cosi float64) float64 {
	tauV := OpticalDepthV(logsm, logssfr, tauMstar, tauSsfr, tauNorm)
	x := tauV / cosi
	logarg := (1 - math.Exp(-x)) / x

	return -2.5 * math.Log10(logarg)
}

// EbFromDelta returns the UV bump amplitude implied by the power-law slope
// delta via the observed anticorrelation Eb = -1.9·δ + 0.85.
func EbFromDelta(delta float64) float64 {
	return -1.9*delta + 0.85
}

// DeltaFromLogsmLogssfr returns the power-law slope delta as a linear
// function of stellar mass and specific star-formation rate (both log10).
func DeltaFromLogsmLogssfr(logsm, logssfr, deltaMstar, deltaSsfr, deltaNorm float64) float64 {
	return deltaMstar*(logsm-10) + deltaSsfr*(logssfr+10) + deltaNorm
}
