package fft

import (
	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/accel-fft/dsp/core"
)

// algoTransformer runs a complex algo-fft plan on the real input promoted to
// complex and keeps the non-negative bins.
type algoTransformer struct {
	n    int
	plan *algofft.Plan[complex128]
	in   []complex128
	out  []complex128
}

func (t *algoTransformer) Forward(dst []complex128, src []float64) ([]complex128, error) {
	if err := checkInput(src); err != nil {
		return nil, err
	}

	n := len(src)
	if n == 1 {
		return singleBin(dst, src), nil
	}
	if t.plan == nil || t.n != n {
		plan, err := algofft.NewPlan64(n)
		if err != nil {
			return nil, core.ComputationError("fft plan", err)
		}
		t.n = n
		t.plan = plan
		t.in = make([]complex128, n)
		t.out = make([]complex128, n)
	}

	for i, v := range src {
		t.in[i] = complex(v, 0)
	}

	if err := t.plan.Forward(t.out, t.in); err != nil {
		return nil, core.ComputationError(opForward, err)
	}

	dst = resize(dst, BinCount(n))
	copy(dst, t.out)
	return dst, nil
}

func (t *algoTransformer) Name() string { return string(BackendAlgoFFT) }
