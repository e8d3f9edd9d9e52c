package fft

import "gonum.org/v1/gonum/dsp/fourier"

// gonumTransformer wraps gonum's FFTPACK port, which has a native real
// transform for any length.
type gonumTransformer struct {
	plan *fourier.FFT
}

func (t *gonumTransformer) Forward(dst []complex128, src []float64) ([]complex128, error) {
	if err := checkInput(src); err != nil {
		return nil, err
	}

	n := len(src)
	if n == 1 {
		return singleBin(dst, src), nil
	}
	if t.plan == nil {
		t.plan = fourier.NewFFT(n)
	} else if t.plan.Len() != n {
		t.plan.Reset(n)
	}

	dst = resize(dst, BinCount(n))
	return t.plan.Coefficients(dst, src), nil
}

func (t *gonumTransformer) Name() string { return string(BackendGonum) }
