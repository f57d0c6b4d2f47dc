package kalman

// Config defines the filter tuning parameters.
type Config struct {
	// ProcessNoise models drift of the true value between samples.
	// Higher values make the filter more agile, lower values smoother.
	ProcessNoise float64

	// MeasurementNoise models sensor noise. Higher values trust
	// individual measurements less. Must be positive.
	MeasurementNoise float64
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the reference tuning for a kitchen-scale
// load cell sampled at a constant rate.
func DefaultConfig() Config {
	return Config{
		ProcessNoise:     0.01,
		MeasurementNoise: 0.1,
	}
}

// WithProcessNoise sets the process noise. Negative values are ignored.
func WithProcessNoise(q float64) Option {
	return func(cfg *Config) {
		if q >= 0 {
			cfg.ProcessNoise = q
		}
	}
}

// WithMeasurementNoise sets the measurement noise. Values that are not
// strictly positive are ignored, since a zero measurement noise would
// divide by zero in the gain computation.
func WithMeasurementNoise(r float64) Option {
	return func(cfg *Config) {
		if r > 0 {
			cfg.MeasurementNoise = r
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
