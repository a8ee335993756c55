package dust

import "math"

// TriweightParams parameterizes the smooth log-log approximation to the
// Noll (2009) curve: a sigmoid transition between two asymptotic slopes
// around a turning point.
type TriweightParams struct {
	Xtp float64 // log10 wavelength of the turning point
	Ytp float64 // log10 k(λ) at the turning point
	X0  float64 // log10 wavelength of the slope transition
	TwH float64 // transition half-width in log10 wavelength
	Lo  float64 // asymptotic slope blueward of the transition
	Hi  float64 // asymptotic slope redward of the transition
}

// DefaultTriweightParams returns the fiducial fit to the Noll (2009) curve.
func DefaultTriweightParams() TriweightParams {
	return TriweightParams{Xtp: -1.0, Ytp: 1.15, X0: 0.5, TwH: 0.5, Lo: -0.65, Hi: -1.95}
}

// TriweightKLambda evaluates the smooth sigmoid-slope approximation to the
// Noll (2009) k(λ) at wavelength xMicron. Unlike the piecewise curves it is
// differentiable everywhere and has controlled asymptotic behavior.
func TriweightKLambda(xMicron float64, p TriweightParams) float64 {
	lgx := math.Log10(xMicron)
	lgk := twSigSlope(lgx, p.Xtp, p.Ytp, p.X0, p.TwH, p.Lo, p.Hi)

	return math.Pow(10, lgk)
}

// twCumlKern is the cumulative triweight kernel, a compactly supported
// polynomial analog of the error function: exactly 0 below z=-3 and
// exactly 1 above z=3.
func twCumlKern(x, m, h float64) float64 {
	z := (x - m) / h
	if z < -3 {
		return 0
	}

	if z > 3 {
		return 1
	}

	z2 := z * z

	return ((-5*z2/69984+7.0/2592)*z2-35.0/864)*z2*z + 35.0*z/96 + 0.5
}

// twSigmoid transitions smoothly from ymin to ymax around x0 with
// half-width h.
func twSigmoid(x, x0, h, ymin, ymax float64) float64 {
	return ymin + (ymax-ymin)*twCumlKern(x, x0, h)
}

// twSigSlope evaluates a line through (xtp, ytp) whose slope itself
// transitions from lo to hi across x0.
func twSigSlope(x, xtp, ytp, x0, h, lo, hi float64) float64 {
	slope := twSigmoid(x, x0, h, lo, hi)
	return ytp + slope*(x-xtp)
}
