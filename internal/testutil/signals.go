package testutil

import (
	"math"
	"math/cmplx"
	"math/rand"
)

// DeterministicSine generates amplitude*sin(2*pi*freqHz*t) sampled at
// sampleRate for length samples.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// NaiveRealDFT evaluates the one-sided DFT of x directly in O(N^2).
// It returns len(x)/2+1 bins and is the reference the FFT backends are
// checked against.
func NaiveRealDFT(x []float64) []complex128 {
	n := len(x)
	if n == 0 {
		return nil
	}
	out := make([]complex128, n/2+1)
	for k := range out {
		var sum complex128
		for i, v := range x {
			angle := -2 * math.Pi * float64(k) * float64(i) / float64(n)
			sum += complex(v, 0) * cmplx.Exp(complex(0, angle))
		}
		out[k] = sum
	}
	return out
}
