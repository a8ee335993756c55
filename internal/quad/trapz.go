package quad

import vecmath "github.com/cwbudde/algo-vecmath"

// TrapzWeights returns per-node trapezoid quadrature weights for the grid x,
// such that the trapezoidal integral of any sampled function y over x equals
// DotProduct(y, w). For fewer than two nodes all weights are zero.
func TrapzWeights(x []float64) []float64 {
	n := len(x)
	w := make([]float64, n)

	if n < 2 {
		return w
	}

	for i := 0; i < n-1; i++ {
		half := 0.5 * (x[i+1] - x[i])
		w[i] += half
		w[i+1] += half
	}

	return w
}

// Trapz computes the trapezoidal integral of y sampled on the grid x.
// y and x must have equal length.
func Trapz(y, x []float64) float64 {
	if len(y) < 2 {
		return 0
	}

	return vecmath.DotProduct(y, TrapzWeights(x))
}
