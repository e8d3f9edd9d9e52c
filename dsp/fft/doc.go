// Package fft computes the real-to-complex discrete Fourier transform of a
// sample sequence.
//
// The transform itself is delegated to an external backend. All backends
// produce the same one-sided, unnormalized spectrum of N/2+1 bins:
//
//	X[k] = sum_{n=0}^{N-1} x[n] * exp(-2*pi*i*k*n/N),  k = 0..N/2
//
// Every backend accepts any N >= 1. The algo-fft backend is fastest for
// power-of-two sizes; [BackendAuto] picks it for those and uses gonum for
// the rest.
//
// Transformers cache plans between calls and are not safe for concurrent use.
package fft
