package spectrum

import "github.com/cwbudde/accel-fft/dsp/core"

const opFrequencyStep = "frequency step"

// FrequencyStep returns the frequency increment between output rows for n
// samples recorded over durationMs milliseconds:
//
//	step = (n / (durationMs/1000)) / n / 2
//
// The n terms cancel (step == 500/durationMs) but the expression is evaluated
// in this order so the result is bit-for-bit stable across releases.
func FrequencyStep(n, durationMs int) (float64, error) {
	if n <= 0 {
		return 0, core.Computef(opFrequencyStep, "sample count must be > 0: %d", n)
	}
	if durationMs <= 0 {
		return 0, core.Computef(opFrequencyStep, "duration must be > 0: %d ms", durationMs)
	}

	samples := float64(n)
	seconds := float64(durationMs) / 1000
	return (samples / seconds) / samples / 2, nil
}

// FrequencyAt returns the frequency written for output row i. Both operands
// are narrowed to float32 before multiplying, matching the precision of the
// magnitude columns.
func FrequencyAt(i int, step float64) float32 {
	return float32(i) * float32(step)
}
