package testutil

import "math/rand"

// ConstantReadings generates a constant-valued reading window.
func ConstantReadings(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// NoisyReadings generates readings around base with uniform noise in
// [-amplitude, amplitude], seeded for reproducibility.
func NoisyReadings(seed int64, base, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = base + (rng.Float64()*2-1)*amplitude
	}
	return out
}

// RampReadings generates readings rising linearly from start to end
// (inclusive), modeling a steady pour.
func RampReadings(start, end float64, length int) []float64 {
	out := make([]float64, length)
	if length == 1 {
		out[0] = start
		return out
	}
	for i := range out {
		out[i] = start + (end-start)*float64(i)/float64(length-1)
	}
	return out
}
