package noise

import (
	"math"
	"testing"

	"github.com/dipampaul17/chefscale/internal/testutil"
)

func TestAnalyzeEmpty(t *testing.T) {
	p := Analyze(nil)

	if p != (Profile{}) {
		t.Fatalf("Analyze(nil) = %+v, want zero Profile", p)
	}
}

func TestAnalyzeConstant(t *testing.T) {
	p := Analyze(testutil.ConstantReadings(50, 16))

	if p.Count != 16 {
		t.Fatalf("Count = %d, want 16", p.Count)
	}

	testutil.RequireNear(t, p.Mean, 50, 1e-12)
	testutil.RequireNear(t, p.Variance, 0, 1e-12)
	testutil.RequireNear(t, p.RMSNoise, 0, 1e-12)
	testutil.RequireNear(t, p.PeakDeviation, 0, 1e-12)

	// A dead-flat window has a zero deviation spectrum.
	if p.Flatness != 0 {
		t.Fatalf("Flatness = %v, want 0", p.Flatness)
	}
}

func TestAnalyzeNoisy(t *testing.T) {
	readings := testutil.NoisyReadings(7, 100, 0.5, 64)
	p := Analyze(readings)

	testutil.RequireNear(t, p.Mean, 100, 0.5)

	if p.Variance <= 0 {
		t.Fatalf("Variance = %v, want > 0", p.Variance)
	}

	testutil.RequireNear(t, p.StdDev, math.Sqrt(p.Variance), 1e-12)

	// For a full window, RMS of deviations equals the population
	// standard deviation.
	testutil.RequireNear(t, p.RMSNoise, p.StdDev, 1e-9)

	if p.PeakDeviation < p.StdDev {
		t.Fatalf("PeakDeviation = %v below StdDev = %v", p.PeakDeviation, p.StdDev)
	}

	if p.Flatness < 0 || p.Flatness > 1 {
		t.Fatalf("Flatness = %v outside [0, 1]", p.Flatness)
	}
}

func TestAnalyzeSingleReading(t *testing.T) {
	p := Analyze([]float64{50})

	if p.Count != 1 {
		t.Fatalf("Count = %d, want 1", p.Count)
	}

	testutil.RequireNear(t, p.Mean, 50, 1e-12)
	testutil.RequireNear(t, p.Variance, 0, 1e-12)

	// Too short for a spectrum: flatness degrades to 0, indistinguishable
	// from tonal noise.
	if p.Flatness != 0 {
		t.Fatalf("Flatness = %v, want 0 for a single reading", p.Flatness)
	}
}

func TestAnalyzeKnownMoments(t *testing.T) {
	p := Analyze([]float64{48, 52, 49, 51, 50})

	testutil.RequireNear(t, p.Mean, 50, 1e-12)
	testutil.RequireNear(t, p.Variance, 2, 1e-12)
	testutil.RequireNear(t, p.PeakDeviation, 2, 1e-12)
}

func TestSuggestFallbacks(t *testing.T) {
	// Degenerate windows fall back to the reference filter defaults.
	for _, readings := range [][]float64{nil, {50}, testutil.ConstantReadings(50, 10)} {
		p := Analyze(readings)

		if got := p.SuggestMeasurementNoise(); got != 0.1 {
			t.Fatalf("SuggestMeasurementNoise = %v, want 0.1", got)
		}

		if got := p.SuggestProcessNoise(); got != 0.01 {
			t.Fatalf("SuggestProcessNoise = %v, want 0.01", got)
		}
	}
}

func TestSuggestFromVariance(t *testing.T) {
	p := Analyze([]float64{48, 52, 49, 51, 50})

	testutil.RequireNear(t, p.SuggestMeasurementNoise(), 2, 1e-12)
	testutil.RequireNear(t, p.SuggestProcessNoise(), 0.2, 1e-12)
}

func TestSpectrumTooShort(t *testing.T) {
	if _, err := Spectrum([]float64{50}); err == nil {
		t.Fatal("expected error for a single reading")
	}
}

func TestSpectrumShape(t *testing.T) {
	readings := testutil.NoisyReadings(3, 100, 0.5, 50)

	mag, err := Spectrum(readings)
	if err != nil {
		t.Fatalf("Spectrum error: %v", err)
	}

	// 50 readings pad to a 64-point FFT: 33 one-sided bins.
	if len(mag) != 33 {
		t.Fatalf("bin count = %d, want 33", len(mag))
	}

	testutil.RequireFinite(t, mag)

	for i, v := range mag {
		if v < 0 {
			t.Fatalf("mag[%d] = %v, want >= 0", i, v)
		}
	}
}

func TestSpectrumConstantIsZero(t *testing.T) {
	mag, err := Spectrum(testutil.ConstantReadings(123, 32))
	if err != nil {
		t.Fatalf("Spectrum error: %v", err)
	}

	for i, v := range mag {
		if v > 1e-9 {
			t.Fatalf("mag[%d] = %v, want ~0 for constant input", i, v)
		}
	}
}
