package frequency

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/accel-fft/dsp/core"
)

// Summary describes an amplitude spectrum whose row i sits at frequency
// i*step, the layout written to the output file (DC already removed).
//
//nolint:revive
type Summary struct {
	Bins          int
	PeakIndex     int
	PeakMagnitude float64
	PeakFrequency float64
	Peak_dB       float64
	Sum           float64
	Energy        float64 // sum of squared magnitudes
	Centroid      float64 // magnitude-weighted mean frequency
	Spread        float64 // magnitude-weighted standard deviation around Centroid
	Flatness      float64 // geometric / arithmetic mean, 0..1
	Rolloff       float64 // frequency below which 85% of the energy lies
	Bandwidth     float64 // -3 dB width around the peak
}

// RolloffFraction is the energy fraction used for [Summary.Rolloff].
const RolloffFraction = 0.85

func rowFreq(i int, step float64) float64 {
	return float64(i) * step
}

// Summarize computes a [Summary] for mag, whose rows are step apart.
func Summarize(mag []float64, step float64) Summary {
	n := len(mag)
	if n == 0 {
		return Summary{Peak_dB: math.Inf(-1)}
	}

	var s Summary
	s.Bins = n
	s.PeakIndex = floats.MaxIdx(mag)
	s.PeakMagnitude = mag[s.PeakIndex]
	s.PeakFrequency = rowFreq(s.PeakIndex, step)
	s.Peak_dB = core.AmplitudeToDB(s.PeakMagnitude)
	s.Sum = floats.Sum(mag)
	s.Energy = floats.Dot(mag, mag)

	s.Centroid = centroid(mag, step, s.Sum)
	s.Spread = spread(mag, step, s.Centroid, s.Sum)
	s.Flatness = Flatness(mag)
	s.Rolloff = rolloff(mag, step, RolloffFraction, s.Energy)
	s.Bandwidth = bandwidth(mag, step, s.PeakIndex)

	return s
}

// Centroid returns the magnitude-weighted mean frequency of mag.
//
//	centroid = sum(f_i * m_i) / sum(m_i),  f_i = i*step
func Centroid(mag []float64, step float64) float64 {
	return centroid(mag, step, floats.Sum(mag))
}

func centroid(mag []float64, step, sum float64) float64 {
	if len(mag) == 0 || sum == 0 {
		return 0
	}
	weighted := 0.0
	for i, v := range mag {
		weighted += rowFreq(i, step) * v
	}
	return weighted / sum
}

func spread(mag []float64, step, cent, sum float64) float64 {
	if len(mag) == 0 || sum == 0 {
		return 0
	}
	acc := 0.0
	for i, v := range mag {
		d := rowFreq(i, step) - cent
		acc += d * d * v
	}
	return math.Sqrt(acc / sum)
}

// Flatness returns the spectral flatness (Wiener entropy) of mag in 0..1.
// A spectrum with any zero bin has flatness 0.
func Flatness(mag []float64) float64 {
	if len(mag) == 0 {
		return 0
	}
	sumLog := 0.0
	for _, v := range mag {
		if v <= 0 {
			return 0
		}
		sumLog += math.Log(v)
	}
	n := float64(len(mag))
	return math.Exp(sumLog/n) / (floats.Sum(mag) / n)
}

// Rolloff returns the frequency below which fraction (0..1) of the energy
// of mag lies.
func Rolloff(mag []float64, step, fraction float64) float64 {
	return rolloff(mag, step, fraction, floats.Dot(mag, mag))
}

func rolloff(mag []float64, step, fraction, energy float64) float64 {
	if len(mag) == 0 || energy == 0 {
		return 0
	}
	threshold := fraction * energy
	cum := 0.0
	for i, v := range mag {
		cum += v * v
		if cum >= threshold {
			return rowFreq(i, step)
		}
	}
	return rowFreq(len(mag)-1, step)
}

// bandwidth returns the distance between the -3 dB crossings on either side
// of the peak, interpolating linearly between rows.
func bandwidth(mag []float64, step float64, peak int) float64 {
	n := len(mag)
	if n < 2 || mag[peak] == 0 {
		return 0
	}
	threshold := mag[peak] / math.Sqrt2

	lower := rowFreq(0, step)
	for i := peak; i >= 1; i-- {
		if mag[i-1] <= threshold && mag[i] > threshold {
			lower = crossing(i-1, mag[i-1], mag[i], threshold, step)
			break
		}
	}

	upper := rowFreq(n-1, step)
	for i := peak; i < n-1; i++ {
		if mag[i+1] <= threshold && mag[i] > threshold {
			upper = crossing(i, mag[i], mag[i+1], threshold, step)
			break
		}
	}

	if upper < lower {
		return 0
	}
	return upper - lower
}

// crossing interpolates the frequency between rows i and i+1 where the
// magnitude passes threshold.
func crossing(i int, m0, m1, threshold, step float64) float64 {
	f0 := rowFreq(i, step)
	if m1 == m0 {
		return f0 + step/2
	}
	return f0 + (threshold-m0)/(m1-m0)*step
}
