// Package pour estimates the pour rate from a window of timestamped
// weight readings and predicts the final weight, for overshoot and
// container-capacity warnings while the user is still pouring.
package pour

import "time"

// DefaultWindowSize bounds the sample window; at the sensor sample
// rate this spans roughly the last half second of readings.
const DefaultWindowSize = 8

// DefaultWarnFraction is the fill level at which a container capacity
// warning is raised.
const DefaultWarnFraction = 0.9

// Sample is one weight reading with its time relative to the start of
// the measurement session.
type Sample struct {
	Weight float64
	At     time.Duration
}

// Detector holds a bounded window of recent samples.
type Detector struct {
	samples []Sample
	size    int
}

// NewDetector creates a Detector. Window sizes below 2 fall back to
// [DefaultWindowSize].
func NewDetector(windowSize int) *Detector {
	if windowSize < 2 {
		windowSize = DefaultWindowSize
	}

	return &Detector{
		samples: make([]Sample, 0, windowSize),
		size:    windowSize,
	}
}

// Add appends a sample, dropping the oldest once the window is full.
// Samples are expected in non-decreasing time order.
func (d *Detector) Add(weight float64, at time.Duration) {
	s := Sample{Weight: weight, At: at}

	if len(d.samples) < d.size {
		d.samples = append(d.samples, s)
		return
	}

	copy(d.samples, d.samples[1:])
	d.samples[len(d.samples)-1] = s
}

// Rate returns the pour rate in grams per second across the window,
// measured from the oldest to the newest sample. It is 0 with fewer
// than two samples or when no time has elapsed between them.
func (d *Detector) Rate() float64 {
	if len(d.samples) < 2 {
		return 0
	}

	first := d.samples[0]
	last := d.samples[len(d.samples)-1]

	dt := (last.At - first.At).Seconds()
	if dt <= 0 {
		return 0
	}

	return (last.Weight - first.Weight) / dt
}

// Active reports whether weight is accruing at or above minRate grams
// per second. A non-positive minRate treats any positive rate as an
// active pour.
func (d *Detector) Active(minRate float64) bool {
	if minRate <= 0 {
		return d.Rate() > 0
	}

	return d.Rate() >= minRate
}

// Latest returns the newest sample and whether one exists.
func (d *Detector) Latest() (Sample, bool) {
	if len(d.samples) == 0 {
		return Sample{}, false
	}

	return d.samples[len(d.samples)-1], true
}

// PredictFinal extrapolates the current rate over the lookahead and
// returns the predicted weight. With no samples it returns 0; with a
// zero rate it returns the latest weight.
func (d *Detector) PredictFinal(lookahead time.Duration) float64 {
	latest, ok := d.Latest()
	if !ok {
		return 0
	}

	return latest.Weight + d.Rate()*lookahead.Seconds()
}

// Reset empties the sample window.
func (d *Detector) Reset() {
	d.samples = d.samples[:0]
}

// FillFraction returns weight/capacity, or 0 for a non-positive
// capacity.
func FillFraction(weight, capacity float64) float64 {
	if capacity <= 0 {
		return 0
	}

	return weight / capacity
}

// CapacityWarning reports whether the predicted weight fills the
// container to [DefaultWarnFraction] or beyond.
func CapacityWarning(predictedWeight, capacity float64) bool {
	return FillFraction(predictedWeight, capacity) >= DefaultWarnFraction
}
