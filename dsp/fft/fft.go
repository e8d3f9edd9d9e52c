package fft

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/cwbudde/accel-fft/dsp/core"
)

const opForward = "fft forward"

// Backend names an FFT implementation.
type Backend string

const (
	BackendGonum   Backend = "gonum"
	BackendGoDSP   Backend = "godsp"
	BackendAlgoFFT Backend = "algofft"
	BackendAuto    Backend = "auto"
)

// DefaultBackend is used when no backend is configured.
const DefaultBackend = BackendGonum

// Backends lists the accepted backend names.
func Backends() []Backend {
	return []Backend{BackendGonum, BackendGoDSP, BackendAlgoFFT, BackendAuto}
}

// ParseBackend resolves a backend name, case-insensitively. The empty string
// selects [DefaultBackend].
func ParseBackend(name string) (Backend, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return DefaultBackend, nil
	}
	for _, b := range Backends() {
		if string(b) == name {
			return b, nil
		}
	}
	return "", fmt.Errorf("unknown fft backend %q (want one of %v)", name, Backends())
}

// Transformer computes the one-sided spectrum of a real sequence.
type Transformer interface {
	// Forward writes the N/2+1 spectrum bins of src into dst and returns
	// it. dst is reallocated when its capacity is too small; nil is fine.
	Forward(dst []complex128, src []float64) ([]complex128, error)

	// Name reports the backend in use.
	Name() string
}

// New returns a Transformer for backend b.
func New(b Backend) (Transformer, error) {
	switch b {
	case BackendGonum, "":
		return &gonumTransformer{}, nil
	case BackendGoDSP:
		return goDSPTransformer{}, nil
	case BackendAlgoFFT:
		return &algoTransformer{}, nil
	case BackendAuto:
		return &autoTransformer{pow2: &algoTransformer{}, any: &gonumTransformer{}}, nil
	default:
		return nil, fmt.Errorf("unknown fft backend %q", string(b))
	}
}

// Real transforms src with t into a newly allocated spectrum.
func Real(t Transformer, src []float64) ([]complex128, error) {
	return t.Forward(nil, src)
}

// BinCount returns the number of one-sided bins for a transform of size n.
func BinCount(n int) int {
	if n <= 0 {
		return 0
	}
	return n/2 + 1
}

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && bits.OnesCount(uint(n)) == 1
}

func checkInput(src []float64) error {
	if len(src) == 0 {
		return core.Computef(opForward, "input must not be empty")
	}
	return nil
}

// singleBin handles N = 1, where the spectrum is the sample itself. Not every
// backend accepts a plan of size 1.
func singleBin(dst []complex128, src []float64) []complex128 {
	dst = resize(dst, 1)
	dst[0] = complex(src[0], 0)
	return dst
}

func resize(dst []complex128, n int) []complex128 {
	if cap(dst) < n {
		return make([]complex128, n)
	}
	return dst[:n]
}

type autoTransformer struct {
	pow2 Transformer
	any  Transformer
}

func (t *autoTransformer) Forward(dst []complex128, src []float64) ([]complex128, error) {
	if IsPowerOfTwo(len(src)) {
		return t.pow2.Forward(dst, src)
	}
	return t.any.Forward(dst, src)
}

func (t *autoTransformer) Name() string { return string(BackendAuto) }
