package fft

import dspfft "github.com/mjibson/go-dsp/fft"

// goDSPTransformer uses go-dsp, which returns the full two-sided spectrum
// (Bluestein for non-power-of-two sizes). Only the first N/2+1 bins are kept.
type goDSPTransformer struct{}

func (goDSPTransformer) Forward(dst []complex128, src []float64) ([]complex128, error) {
	if err := checkInput(src); err != nil {
		return nil, err
	}

	if len(src) == 1 {
		return singleBin(dst, src), nil
	}

	full := dspfft.FFTReal(src)

	dst = resize(dst, BinCount(len(src)))
	copy(dst, full)
	return dst, nil
}

func (goDSPTransformer) Name() string { return string(BackendGoDSP) }
