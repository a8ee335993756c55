// Package cosmology defines the cosmology collaborator surface consumed by
// the photometry package: a parameter set for flat/non-flat dark-energy
// cosmologies and the distance-modulus contract.
//
// The package deliberately does not ship a distance integrator. Callers
// either plug in their own [DistanceModulusFunc] or precompute a redshift
// table once and use [DistanceModulusFromTable].
package cosmology

import (
	"errors"

	"github.com/gbeltzmo/dsps/internal/quad"
)

// ErrTableMismatch reports distance-modulus tables whose redshift and
// modulus axes differ in length.
var ErrTableMismatch = errors.New("cosmology: z table and distance modulus table lengths differ")

// Params holds w0-wa dark-energy cosmology parameters. Values are immutable
// inputs, validated by the caller.
type Params struct {
	Om0  float64 // matter density at z=0
	Ode0 float64 // dark energy density at z=0
	W0   float64 // dark energy equation of state at z=0
	Wa   float64 // evolution of the equation of state
	H    float64 // dimensionless Hubble parameter h
}

// PlanckParams returns a Planck-like parameter set, convenient as a default
// in examples and tools.
func PlanckParams() Params {
	return Params{Om0: 0.3075, Ode0: 0.6925, W0: -1, Wa: 0, H: 0.6774}
}

// DistanceModulusFunc computes the distance modulus at redshift z for the
// given cosmology. Implementations are supplied externally, typically backed
// by a flat-wCDM luminosity-distance calculation.
type DistanceModulusFunc func(z float64, p Params) float64

// DistanceModulusFromTable linearly interpolates a precomputed distance
// modulus table at z. zTable must be strictly increasing; queries outside the
// table clamp to the edge values.
func DistanceModulusFromTable(z float64, zTable, dmTable []float64) (float64, error) {
	if len(zTable) != len(dmTable) {
		return 0, ErrTableMismatch
	}

	return quad.Interp(z, zTable, dmTable), nil
}
