package dust

import (
	"math"
	"testing"

	"github.com/gbeltzmo/dsps/internal/testutil"
)

// Curve-evaluation wavelengths in microns spanning far-UV to near-IR.
func curveGrid() []float64 {
	return testutil.Linspace(0.08, 2.2, 400)
}

func TestCalzetti00_ContinuousAtBranchPoint(t *testing.T) {
	// The two polynomial branches meet near 0.63 microns; the published
	// coefficients leave a small residual mismatch, well under 1% of k.
	below := Calzetti00KLambda(0.63-1e-9, RVC00)
	at := Calzetti00KLambda(0.63, RVC00)

	testutil.RequireNearlyEqual(t, below, at, 0.05)
}

func TestBlend_ContinuousAtHandover(t *testing.T) {
	l02 := Leitherer02KLambda(xcL02C00)
	c00 := Calzetti00KLambda(xcL02C00, RVC00)

	testutil.RequireNearlyEqual(t, l02, c00, 0.05)

	// The blend itself switches curves exactly at the handover wavelength.
	if got := baseKLambda(xcL02C00); got != l02 {
		t.Fatalf("at handover: got %v, want Leitherer value %v", got, l02)
	}

	if got := baseKLambda(xcL02C00 + 1e-12); got != Calzetti00KLambda(xcL02C00+1e-12, RVC00) {
		t.Fatalf("above handover: got %v, want Calzetti value", got)
	}
}

func TestNoll09EqualsSbl18_WhenSlopeZero(t *testing.T) {
	// With slope=0 the power law is identically 1, so the order of bump
	// addition vs power-law multiplication cannot matter.
	const (
		x0    = UVBumpW0 / 1e4
		gamma = UVBumpDW / 1e4
		ampl  = 1.7
	)

	for _, x := range curveGrid() {
		n09 := Noll09KLambda(x, x0, gamma, ampl, 0)
		s18 := Sbl18KLambda(x, x0, gamma, ampl, 0)

		if n09 != s18 {
			t.Fatalf("x=%v: Noll09 %v != Sbl18 %v", x, n09, s18)
		}
	}
}

func TestNoll09AndSbl18_DifferWhenSloped(t *testing.T) {
	const (
		x0    = UVBumpW0 / 1e4
		gamma = UVBumpDW / 1e4
		ampl  = 2.0
		slope = -0.4
	)

	// At the bump center the power law is far from 1, so the ordering of
	// the two operations must show up in the result.
	x := x0
	n09 := Noll09KLambda(x, x0, gamma, ampl, slope)
	s18 := Sbl18KLambda(x, x0, gamma, ampl, slope)

	if n09 == s18 {
		t.Fatalf("curves coincide at x=%v despite slope=%v", x, slope)
	}
}

func TestCurves_NonNegative(t *testing.T) {
	// Strongly negative slopes can push the tilted curve below zero in the
	// red; both models clip there.
	for _, x := range curveGrid() {
		n09 := Noll09KLambda(x, UVBumpW0/1e4, UVBumpDW/1e4, 0.5, -2.8)
		s18 := Sbl18KLambda(x, UVBumpW0/1e4, UVBumpDW/1e4, 0.5, -2.8)

		if n09 < 0 || s18 < 0 {
			t.Fatalf("x=%v: negative curve value (noll09=%v, sbl18=%v)", x, n09, s18)
		}
	}
}

func TestDrudeBump_PeaksAtCenter(t *testing.T) {
	const (
		x0    = 0.2175
		gamma = 0.035
		ampl  = 3.0
	)

	peak := DrudeBump(x0, x0, gamma, ampl)
	testutil.RequireNearlyEqual(t, peak, ampl, 1e-12)

	if off := DrudeBump(x0+0.05, x0, gamma, ampl); !(off < peak) {
		t.Fatalf("off-center %v not below peak %v", off, peak)
	}
}

func TestPowerLawVBandNorm_UnityAtVBand(t *testing.T) {
	for _, slope := range []float64{-2, -0.5, 0, 0.5, 2} {
		got := PowerLawVBandNorm(0.55, slope)
		testutil.RequireNearlyEqual(t, got, 1, 1e-12)
	}
}

func TestAttenuationCurve_ClippedAtZero(t *testing.T) {
	cases := []struct {
		axEbv, rv, av float64
	}{
		{-1, 4.05, 1},
		{1, 4.05, -1},
		{-3, -4.05, -2},
	}

	for _, tc := range cases {
		if got := AttenuationCurve(tc.axEbv, tc.rv, tc.av); got < 0 {
			t.Fatalf("AttenuationCurve(%v, %v, %v) = %v, want >= 0", tc.axEbv, tc.rv, tc.av, got)
		}
	}
}

func TestFluxRatio_UnityAtZeroReddening(t *testing.T) {
	for _, rv := range []float64{1, 4.05, 10} {
		for _, av := range []float64{0, 0.5, 3} {
			got := FluxRatio(0, rv, av, 0)
			if got != 1 {
				t.Fatalf("FluxRatio(0, %v, %v) = %v, want 1", rv, av, got)
			}
		}
	}
}

func TestFluxRatio_MonotoneNonIncreasingInAv(t *testing.T) {
	const (
		axEbv = 2.5
		rv    = RVC00
	)

	prev := math.Inf(1)
	for _, av := range testutil.Linspace(0, 5, 51) {
		got := FluxRatio(axEbv, rv, av, 0)
		if got > prev {
			t.Fatalf("av=%v: flux ratio %v exceeds previous %v", av, got, prev)
		}

		prev = got
	}
}

func TestFluxRatio_UnobscuredFloor(t *testing.T) {
	// With 30% of the light unobscured, even infinite attenuation
	// transmits at least that fraction.
	got := FluxRatio(10, RVC00, 50, 0.3)
	if !(got >= 0.3) {
		t.Fatalf("flux ratio %v below unobscured fraction", got)
	}
}

func TestFilterEffectiveWavelength_SymmetricBoxcar(t *testing.T) {
	wave, trans := testutil.BoxcarFilter(4000, 5000, 501)

	testutil.RequireRelClose(t, FilterEffectiveWavelength(wave, trans, 0), 4500, 1e-12)
	testutil.RequireRelClose(t, FilterEffectiveWavelength(wave, trans, 1), 2250, 1e-12)
}

func TestEffectiveAttenuation_Bounds(t *testing.T) {
	wave, trans := testutil.BoxcarFilter(4000, 5000, 201)

	// No attenuation at Av=0.
	if got := EffectiveAttenuation(wave, trans, 0.1, Params{Eb: 1, Delta: -0.2, Av: 0}); got != 1 {
		t.Fatalf("Av=0: got %v, want 1", got)
	}

	// Dusty case transmits a fraction in (0, 1).
	got := EffectiveAttenuation(wave, trans, 0.1, Params{Eb: 1, Delta: -0.2, Av: 1.5})
	if !(got > 0 && got < 1) {
		t.Fatalf("got %v, want in (0, 1)", got)
	}
}

func TestEffectiveAttenuation_MoreDustLessFlux(t *testing.T) {
	wave, trans := testutil.GaussianFilter(4500, 400, 201)

	weak := EffectiveAttenuation(wave, trans, 0.5, Params{Eb: 0.85, Delta: 0, Av: 0.3})
	strong := EffectiveAttenuation(wave, trans, 0.5, Params{Eb: 0.85, Delta: 0, Av: 2.0})

	if !(strong < weak) {
		t.Fatalf("Av=2 factor %v not below Av=0.3 factor %v", strong, weak)
	}
}

func TestSliceVariants_MatchScalar(t *testing.T) {
	x := curveGrid()

	n09 := make([]float64, len(x))
	s18 := make([]float64, len(x))
	Noll09KLambdaSlice(n09, x, UVBumpW0/1e4, UVBumpDW/1e4, 1.2, -0.3)
	Sbl18KLambdaSlice(s18, x, UVBumpW0/1e4, UVBumpDW/1e4, 1.2, -0.3)

	for i, xi := range x {
		if n09[i] != Noll09KLambda(xi, UVBumpW0/1e4, UVBumpDW/1e4, 1.2, -0.3) {
			t.Fatalf("noll09 slice mismatch at %v", xi)
		}

		if s18[i] != Sbl18KLambda(xi, UVBumpW0/1e4, UVBumpDW/1e4, 1.2, -0.3) {
			t.Fatalf("sbl18 slice mismatch at %v", xi)
		}
	}
}
