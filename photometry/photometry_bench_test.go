package photometry

import (
	"testing"

	"github.com/gbeltzmo/dsps/internal/testutil"
)

func BenchmarkFilterObsMagNoDimming(b *testing.B) {
	fwave, ftrans := testutil.GaussianFilter(6000, 600, 501)

	f, err := NewFilter(fwave, ftrans)
	if err != nil {
		b.Fatalf("NewFilter: %v", err)
	}

	swave, slum := testutil.PowerLawSpectrum(1000, 20000, 1e-14, -1.0, 2000)
	s := Spectrum{Wave: swave, Lum: slum}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = f.ObsMagNoDimming(s, 0.5)
	}
}

func BenchmarkObsMagNoDimmingGrid(b *testing.B) {
	fwave, ftrans := testutil.GaussianFilter(6000, 600, 301)

	f, err := NewFilter(fwave, ftrans)
	if err != nil {
		b.Fatalf("NewFilter: %v", err)
	}

	waveRest := testutil.Linspace(1000, 20000, 1000)
	cube := testCube(waveRest, 11, 20)
	z := testutil.Linspace(0.05, 1.5, 30)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := ObsMagNoDimmingGrid(waveRest, cube, f, z, WithWorkers(4)); err != nil {
			b.Fatal(err)
		}
	}
}
