package time

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary holds time-domain statistics of one axis.
//
// Mean is the DC offset that the spectrum output discards; StdDev is the RMS
// of what remains (the vibration component).
type Summary struct {
	Length        int
	Mean          float64
	StdDev        float64 // population standard deviation (AC RMS)
	RMS           float64
	Min           float64
	Max           float64
	Peak          float64 // max(|min|, |max|)
	CrestFactor   float64 // peak / RMS, 0 for silence
	ZeroCrossings int     // sign changes around Mean
}

// Summarize computes a [Summary] of signal.
func Summarize(signal []float64) Summary {
	n := len(signal)
	if n == 0 {
		return Summary{}
	}

	mean, std := stat.PopMeanStdDev(signal, nil)
	lo, hi := floats.Min(signal), floats.Max(signal)
	rms := RMS(signal)
	peak := math.Max(math.Abs(lo), math.Abs(hi))

	var crest float64
	if rms > 0 {
		crest = peak / rms
	}

	return Summary{
		Length:        n,
		Mean:          mean,
		StdDev:        std,
		RMS:           rms,
		Min:           lo,
		Max:           hi,
		Peak:          peak,
		CrestFactor:   crest,
		ZeroCrossings: ZeroCrossings(signal, mean),
	}
}

// RMS returns the root-mean-square of the signal.
func RMS(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}
	return math.Sqrt(floats.Dot(signal, signal) / float64(len(signal)))
}

// ZeroCrossings counts sign changes of signal-level. Samples exactly at
// level do not count as a crossing on their own.
func ZeroCrossings(signal []float64, level float64) int {
	count := 0
	prev := 0.0
	for _, x := range signal {
		d := x - level
		if d == 0 {
			continue
		}
		if prev*d < 0 {
			count++
		}
		prev = d
	}
	return count
}
