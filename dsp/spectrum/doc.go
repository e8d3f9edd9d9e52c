// Package spectrum turns FFT output into the amplitude spectrum written for
// a recording.
//
// The package does not implement the FFT itself (see package fft). It scales
// complex bins to amplitudes, drops the DC bin and computes the frequency
// column that accompanies each output row.
package spectrum
