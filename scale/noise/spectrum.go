package noise

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// Spectrum returns the one-sided magnitude spectrum of the deviations
// of the readings about their mean: bins 0 (DC) through Nyquist.
//
// The deviations are Hann-windowed and zero-padded to a power of two
// before the forward FFT. At least two readings are required.
func Spectrum(readings []float64) ([]float64, error) {
	n := len(readings)
	if n < 2 {
		return nil, fmt.Errorf("noise: spectrum requires at least 2 readings, got %d", n)
	}

	var mean float64
	for _, x := range readings {
		mean += x
	}
	mean /= float64(n)

	fftSize := nextPowerOf2(n)

	in := make([]complex128, fftSize)
	for i, x := range readings {
		in[i] = complex((x-mean)*hann(i, n), 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("noise: failed to create FFT plan: %w", err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("noise: forward FFT failed: %w", err)
	}

	// Unpack the non-negative-frequency bins and convert to magnitudes.
	binCount := fftSize/2 + 1

	re := make([]float64, binCount)
	im := make([]float64, binCount)

	for i := 0; i < binCount; i++ {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}

	mag := make([]float64, binCount)
	vecmath.Magnitude(mag, re, im)

	return mag, nil
}

// hann returns the Hann window coefficient for sample i of n.
func hann(i, n int) float64 {
	if n <= 1 {
		return 1
	}

	return 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(n-1))
}

// nextPowerOf2 returns the smallest power of two >= n.
func nextPowerOf2(n int) int {
	size := 1
	for size < n {
		size <<= 1
	}

	return size
}
