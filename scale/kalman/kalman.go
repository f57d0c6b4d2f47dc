// Package kalman implements a one-dimensional recursive Bayesian filter
// for smoothing noisy scalar measurement streams, such as load-cell
// weight readings sampled at a constant rate.
//
// The filter is the minimal Kalman form for a static or slowly varying
// scalar signal: a single state value and a single covariance, updated
// in O(1) time and memory per measurement.
package kalman

// Estimator smooths a noisy scalar measurement stream into a stable
// estimate. Each caller must own a distinct Estimator; no state is
// shared between instances.
type Estimator struct {
	value            float64
	errorCovariance  float64
	processNoise     float64
	measurementNoise float64
	gain             float64
}

// New creates an Estimator with value 0 and error covariance 1.
// Noise parameters default to [DefaultConfig] and can be overridden
// with [WithProcessNoise] and [WithMeasurementNoise].
func New(opts ...Option) *Estimator {
	cfg := ApplyOptions(opts...)

	return &Estimator{
		errorCovariance:  1,
		processNoise:     cfg.ProcessNoise,
		measurementNoise: cfg.MeasurementNoise,
	}
}

// Update incorporates a new measurement and returns the updated estimate.
//
// The recursion predicts the covariance, blends the measurement into the
// estimate weighted by the Kalman gain, and contracts the covariance:
//
//	P' = P + Q
//	K  = P' / (P' + R)
//	x  = x + K * (z - x)
//	P  = (1 - K) * P'
//
// After any update the covariance stays in (0, P+Q]. There are no error
// conditions; the measurement noise must be positive (a construction
// invariant, not checked here).
func (e *Estimator) Update(measurement float64) float64 {
	predicted := e.errorCovariance + e.processNoise
	gain := predicted / (predicted + e.measurementNoise)

	e.value += gain * (measurement - e.value)
	e.errorCovariance = (1 - gain) * predicted
	e.gain = gain

	return e.value
}

// Reset restores the estimate to 0 and the error covariance to 1,
// leaving the noise parameters untouched.
func (e *Estimator) Reset() {
	e.value = 0
	e.errorCovariance = 1
}

// Value returns the current best estimate.
func (e *Estimator) Value() float64 {
	return e.value
}

// Covariance returns the current error covariance of the estimate.
func (e *Estimator) Covariance() float64 {
	return e.errorCovariance
}

// Gain returns the blending weight applied by the most recent Update.
// It is 0 before the first update.
func (e *Estimator) Gain() float64 {
	return e.gain
}

// ProcessNoise returns the configured process noise.
func (e *Estimator) ProcessNoise() float64 {
	return e.processNoise
}

// MeasurementNoise returns the configured measurement noise.
func (e *Estimator) MeasurementNoise() float64 {
	return e.measurementNoise
}
