package spectrum

import (
	"sync"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/accel-fft/dsp/core"
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

func split(in []complex128, re, im []float64) {
	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}
}

// Magnitude returns |X[k]| for each complex spectrum bin.
//
// Uses the SIMD kernels of algo-vecmath when available. Scratch buffers are
// pooled, so in steady state this allocates only the output slice.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))
	split(in, re, im)
	vecmath.Magnitude(out, re, im)
	putScratch(buf)
	return out
}

// Scaled returns the amplitude spectrum 2*|X[k]|/n of a one-sided spectrum
// computed from n real samples.
//
// The factor 2 folds the discarded negative-frequency half back in, so a
// sinusoid of amplitude A shows up as A in its bin. The DC and Nyquist bins
// are scaled the same way as every other bin.
func Scaled(bins []complex128, n int) ([]float64, error) {
	if n <= 0 {
		return nil, core.Computef("scale spectrum", "sample count must be > 0: %d", n)
	}
	if len(bins) == 0 {
		return nil, nil
	}

	mag := Magnitude(bins)
	vecmath.ScaleBlock(mag, mag, 2/float64(n))
	return mag, nil
}

// DropDC returns mag without its first (zero-frequency) bin. The result
// shares mag's backing array.
func DropDC(mag []float64) []float64 {
	if len(mag) == 0 {
		return mag
	}
	return mag[1:]
}
