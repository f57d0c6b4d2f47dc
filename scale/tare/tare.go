// Package tare tracks the zero offset of a scale, including a history
// of nested tares and auto-tare suggestion for container placement.
package tare

// Config defines auto-tare thresholds.
type Config struct {
	// AutoTareThreshold is the minimum raw weight, in grams, a new
	// reading must exceed to suggest taring a just-placed container.
	AutoTareThreshold float64

	// AutoTareBaseline is the maximum raw weight, in grams, the
	// previous reading may have had for the jump to count as a
	// container placement rather than a pour.
	AutoTareBaseline float64
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the reference auto-tare thresholds.
func DefaultConfig() Config {
	return Config{
		AutoTareThreshold: 50,
		AutoTareBaseline:  5,
	}
}

// WithAutoTareThreshold sets the placement threshold. Values that are
// not strictly positive are ignored.
func WithAutoTareThreshold(grams float64) Option {
	return func(cfg *Config) {
		if grams > 0 {
			cfg.AutoTareThreshold = grams
		}
	}
}

// WithAutoTareBaseline sets the empty-scale baseline. Negative values
// are ignored.
func WithAutoTareBaseline(grams float64) Option {
	return func(cfg *Config) {
		if grams >= 0 {
			cfg.AutoTareBaseline = grams
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

// Tracker holds the current tare offset and the history of offsets set
// since the last reset.
type Tracker struct {
	cfg     Config
	offset  float64
	history []float64
}

// NewTracker creates a Tracker with a zero offset.
func NewTracker(opts ...Option) *Tracker {
	return &Tracker{cfg: ApplyOptions(opts...)}
}

// Set makes rawWeight the new zero and records it in the history, so a
// bowl plus its accumulating contents can be tared repeatedly.
func (t *Tracker) Set(rawWeight float64) {
	t.offset = rawWeight
	t.history = append(t.history, rawWeight)
}

// Display returns the weight shown to the user for a raw reading.
func (t *Tracker) Display(rawWeight float64) float64 {
	return rawWeight - t.offset
}

// Offset returns the current tare offset.
func (t *Tracker) Offset() float64 {
	return t.offset
}

// History returns a copy of the offsets set since the last reset, in
// the order they were applied.
func (t *Tracker) History() []float64 {
	out := make([]float64, len(t.history))
	copy(out, t.history)

	return out
}

// Undo removes the most recent tare and restores the previous offset
// (or zero when the history empties). It reports whether a tare was
// undone.
func (t *Tracker) Undo() bool {
	if len(t.history) == 0 {
		return false
	}

	t.history = t.history[:len(t.history)-1]

	if len(t.history) == 0 {
		t.offset = 0
	} else {
		t.offset = t.history[len(t.history)-1]
	}

	return true
}

// Reset clears the offset and history, keeping the configured
// thresholds.
func (t *Tracker) Reset() {
	t.offset = 0
	t.history = t.history[:0]
}

// ShouldAutoTare reports whether a jump from old to new raw weight
// looks like a container being placed on an empty scale: the new
// reading exceeds the placement threshold while the old one was at or
// below the empty baseline.
func (t *Tracker) ShouldAutoTare(old, new float64) bool {
	return new > t.cfg.AutoTareThreshold && old <= t.cfg.AutoTareBaseline
}
