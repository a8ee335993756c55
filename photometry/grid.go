package photometry

import (
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/gbeltzmo/dsps/cosmology"
)

// ErrAxisMismatch reports batched inputs whose axis sizes are incompatible.
var ErrAxisMismatch = errors.New("photometry: axis size mismatch")

// GridOption configures batched grid evaluation.
type GridOption func(*gridConfig)

type gridConfig struct {
	workers int
}

// WithWorkers sets the number of metallicity rows evaluated concurrently.
// Values below 2 keep evaluation sequential. Results are identical either
// way; rows are written to disjoint output slices.
func WithWorkers(n int) GridOption {
	return func(cfg *gridConfig) {
		if n > 0 {
			cfg.workers = n
		}
	}
}

func applyGridOptions(opts []GridOption) gridConfig {
	cfg := gridConfig{workers: 1}

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// Grid evaluation semantics
//
// The luminosity cube lum is indexed [metallicity][age][wavelength] and z
// holds one redshift per galaxy. A batched call is defined as the nested
// scalar evaluation
//
//	for im := range lum {
//	    for ia := range lum[im] {
//	        for ig := range z {
//	            out[im][ia][ig] = scalarOp(lum[im][ia], z[ig])
//	        }
//	    }
//	}
//
// and produces element-for-element identical results. The axis order
// (metallicity outermost, then age, then galaxy, with the filter-wavelength
// integration innermost) is part of the contract: transposing it would
// produce same-shaped but wrong answers.

// ObsFluxGrid evaluates [Filter.ObsFlux] over a (metallicity, age, galaxy)
// grid. lum is indexed [metallicity][age][wavelength] on the shared rest
// wavelength grid waveRest; z holds one redshift per galaxy.
func ObsFluxGrid(waveRest []float64, lum [][][]float64, f *Filter, z []float64, opts ...GridOption) ([][][]float64, error) {
	return evalGrid(waveRest, lum, z, opts, func(f *Filter, buf []float64, s Spectrum, zg float64) float64 {
		return f.obsFluxInto(buf, s, zg)
	}, f)
}

// ObsMagNoDimmingGrid evaluates [Filter.ObsMagNoDimming] over a
// (metallicity, age, galaxy) grid.
func ObsMagNoDimmingGrid(waveRest []float64, lum [][][]float64, f *Filter, z []float64, opts ...GridOption) ([][][]float64, error) {
	return evalGrid(waveRest, lum, z, opts, func(f *Filter, buf []float64, s Spectrum, zg float64) float64 {
		return fluxToMag(f.obsFluxInto(buf, s, zg), f.fluxAB0)
	}, f)
}

// ObsMagGrid evaluates [Filter.ObsMag] over a (metallicity, age, galaxy)
// grid, adding per-galaxy cosmological dimming.
func ObsMagGrid(waveRest []float64, lum [][][]float64, f *Filter, z []float64,
	p cosmology.Params, dm cosmology.DistanceModulusFunc, opts ...GridOption,
) ([][][]float64, error) {
	// Dimming depends only on the galaxy axis; hoist it out of the cube.
	dimming := make([]float64, len(z))
	for ig, zg := range z {
		dimming[ig] = CosmologicalDimming(zg, p, dm)
	}

	out, err := ObsMagNoDimmingGrid(waveRest, lum, f, z, opts...)
	if err != nil {
		return nil, err
	}

	for _, plane := range out {
		for _, row := range plane {
			for ig := range row {
				row[ig] += dimming[ig]
			}
		}
	}

	return out, nil
}

// ObsMagNoDimmingGridSingleMet is [ObsMagNoDimmingGrid] for a single
// metallicity bin: lum is indexed [age][wavelength] and the result [age][galaxy].
func ObsMagNoDimmingGridSingleMet(waveRest []float64, lum [][]float64, f *Filter, z []float64, opts ...GridOption) ([][]float64, error) {
	res, err := ObsMagNoDimmingGrid(waveRest, [][][]float64{lum}, f, z, opts...)
	if err != nil {
		return nil, err
	}

	return res[0], nil
}

// RestMagGrid evaluates [Filter.RestMag] over a (metallicity, age) grid.
// Rest-frame magnitudes carry no galaxy axis.
func RestMagGrid(waveRest []float64, lum [][][]float64, f *Filter) ([][]float64, error) {
	if err := checkCube(waveRest, lum); err != nil {
		return nil, err
	}

	out := make([][]float64, len(lum))
	buf := make([]float64, len(f.wave))

	for im, plane := range lum {
		out[im] = make([]float64, len(plane))

		for ia, row := range plane {
			s := Spectrum{Wave: waveRest, Lum: row}
			out[im][ia] = fluxToMag(f.restFluxInto(buf, s), f.fluxAB0)
		}
	}

	return out, nil
}

// evalGrid runs op over the (metallicity, age, galaxy) cube. Metallicity
// planes are independent and may be evaluated concurrently; each worker owns
// one interpolation scratch buffer.
func evalGrid(waveRest []float64, lum [][][]float64, z []float64, opts []GridOption,
	op func(f *Filter, buf []float64, s Spectrum, zg float64) float64, f *Filter,
) ([][][]float64, error) {
	if err := checkCube(waveRest, lum); err != nil {
		return nil, err
	}

	cfg := applyGridOptions(opts)

	out := make([][][]float64, len(lum))

	evalPlane := func(im int, buf []float64) {
		plane := lum[im]
		out[im] = make([][]float64, len(plane))

		for ia, row := range plane {
			s := Spectrum{Wave: waveRest, Lum: row}
			dst := make([]float64, len(z))

			for ig, zg := range z {
				dst[ig] = op(f, buf, s, zg)
			}

			out[im][ia] = dst
		}
	}

	if cfg.workers < 2 || len(lum) < 2 {
		buf := make([]float64, len(f.wave))
		for im := range lum {
			evalPlane(im, buf)
		}

		return out, nil
	}

	var g errgroup.Group

	g.SetLimit(cfg.workers)

	for im := range lum {
		g.Go(func() error {
			evalPlane(im, make([]float64, len(f.wave)))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// checkCube verifies every wavelength row of the cube matches the shared
// rest wavelength grid. Mismatches indicate a caller contract violation and
// fail fast rather than propagating through the float pipeline.
func checkCube(waveRest []float64, lum [][][]float64) error {
	for im, plane := range lum {
		for ia, row := range plane {
			if len(row) != len(waveRest) {
				return fmt.Errorf("%w: lum[%d][%d] has %d samples, wavelength grid has %d",
					ErrAxisMismatch, im, ia, len(row), len(waveRest))
			}
		}
	}

	return nil
}
