// Package noise characterizes the sensor noise of a window of raw
// scale readings: moments of the deviation about the mean and the
// spectral flatness of the deviation spectrum. The resulting profile
// suggests tuning parameters for the weight filter.
package noise

import "math"

// Fallback filter tuning when a window is too short or degenerate to
// measure; these match the reference filter defaults.
const (
	fallbackMeasurementNoise = 0.1
	fallbackProcessNoise     = 0.01
)

// Profile holds noise statistics of a reading window.
type Profile struct {
	Count         int
	Mean          float64
	Variance      float64 // population variance
	StdDev        float64
	RMSNoise      float64 // RMS of deviations about the mean
	PeakDeviation float64 // largest absolute deviation about the mean
	Flatness      float64 // spectral flatness of the deviations, 0..1
}

// Analyze computes a noise profile from raw readings. An empty window
// yields a zero Profile. Moments use Welford's online algorithm for
// numerical stability.
//
// Flatness comes from [Spectrum]; a window too short to produce a
// spectrum (fewer than two readings) reports zero flatness, the same
// value as strongly tonal noise, so callers gating on Flatness should
// also check Count.
func Analyze(readings []float64) Profile {
	n := len(readings)
	if n == 0 {
		return Profile{}
	}

	var mean, m2 float64
	for i, x := range readings {
		delta := x - mean
		mean += delta / float64(i+1)
		m2 += delta * (x - mean)
	}

	variance := m2 / float64(n)

	var sumSq, peak float64
	for _, x := range readings {
		d := x - mean

		sumSq += d * d
		if a := math.Abs(d); a > peak {
			peak = a
		}
	}

	p := Profile{
		Count:         n,
		Mean:          mean,
		Variance:      variance,
		StdDev:        math.Sqrt(variance),
		RMSNoise:      math.Sqrt(sumSq / float64(n)),
		PeakDeviation: peak,
	}

	if mag, err := Spectrum(readings); err == nil {
		p.Flatness = flatness(mag)
	}

	return p
}

// SuggestMeasurementNoise returns a measurement-noise tuning for the
// weight filter: the sample variance of the window, or the reference
// default for degenerate windows.
func (p Profile) SuggestMeasurementNoise() float64 {
	if p.Count < 2 || p.Variance <= 0 {
		return fallbackMeasurementNoise
	}

	return p.Variance
}

// SuggestProcessNoise returns a process-noise tuning for the weight
// filter, an order of magnitude below the measurement noise, or the
// reference default for degenerate windows.
func (p Profile) SuggestProcessNoise() float64 {
	if p.Count < 2 || p.Variance <= 0 {
		return fallbackProcessNoise
	}

	return p.Variance / 10
}

// flatness returns the spectral flatness (Wiener entropy) of a
// magnitude spectrum, skipping the DC bin: the ratio of geometric to
// arithmetic mean, 0..1. White sensor noise approaches 1; periodic
// interference (a wobbling table, mains hum coupling) pushes it toward
// 0. Any zero bin forces the geometric mean, and the flatness, to 0.
func flatness(magnitude []float64) float64 {
	if len(magnitude) < 2 {
		return 0
	}

	bins := magnitude[1:]

	var logSum, sum float64
	for _, v := range bins {
		if v <= 0 {
			return 0
		}

		logSum += math.Log(v)
		sum += v
	}

	if sum == 0 {
		return 0
	}

	n := float64(len(bins))

	return math.Exp(logSum/n) / (sum / n)
}
