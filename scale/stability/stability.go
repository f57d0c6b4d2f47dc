// Package stability detects when a windowed stream of scale readings
// has settled: every reading in the window sits within a tolerance of
// the window mean.
package stability

import "math"

// Reference window of readings at the sensor sample rate, and the
// default settle tolerance in grams.
const (
	DefaultWindowSize = 5
	DefaultTolerance  = 0.1
)

// Detector accumulates readings into a sliding window and reports
// whether the signal has settled. The window must fill before Stable
// can report true.
type Detector struct {
	window    []float64
	size      int
	tolerance float64
}

// New creates a Detector. Window sizes below 2 and non-positive
// tolerances fall back to the defaults.
func New(windowSize int, tolerance float64) *Detector {
	if windowSize < 2 {
		windowSize = DefaultWindowSize
	}

	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}

	return &Detector{
		window:    make([]float64, 0, windowSize),
		size:      windowSize,
		tolerance: tolerance,
	}
}

// Add appends a reading, dropping the oldest once the window is full.
func (d *Detector) Add(reading float64) {
	if len(d.window) < d.size {
		d.window = append(d.window, reading)
		return
	}

	copy(d.window, d.window[1:])
	d.window[len(d.window)-1] = reading
}

// Full reports whether the window holds windowSize readings.
func (d *Detector) Full() bool {
	return len(d.window) == d.size
}

// Mean returns the mean of the current window, or 0 when empty.
func (d *Detector) Mean() float64 {
	return mean(d.window)
}

// Stable reports whether the window is full and every reading lies
// within the tolerance of the window mean.
func (d *Detector) Stable() bool {
	if !d.Full() {
		return false
	}

	return IsStable(d.window, d.tolerance)
}

// Reset empties the window.
func (d *Detector) Reset() {
	d.window = d.window[:0]
}

// IsStable reports whether every reading lies within tolerance of the
// mean of the readings. An empty slice is not stable.
func IsStable(readings []float64, tolerance float64) bool {
	if len(readings) == 0 {
		return false
	}

	m := mean(readings)

	for _, r := range readings {
		if math.Abs(r-m) > tolerance {
			return false
		}
	}

	return true
}

// mean computes the average with Kahan summation for numerical
// stability on long windows.
func mean(readings []float64) float64 {
	if len(readings) == 0 {
		return 0
	}

	var sum, c float64
	for _, r := range readings {
		y := r - c
		t := sum + y
		c = (t - sum) - y
		sum = t
	}

	return sum / float64(len(readings))
}
