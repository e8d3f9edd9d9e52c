package spectrum

import (
	"strconv"
	"testing"
)

// benchBins returns a one-sided spectrum shaped like the transform output for
// n samples.
func benchBins(n int) []complex128 {
	bins := make([]complex128, n/2+1)
	for i := range bins {
		bins[i] = complex(float64(i)/10.0, float64(n-i)/10.0)
	}
	return bins
}

func BenchmarkMagnitude(b *testing.B) {
	for _, n := range []int{1024, 2715, 4096} {
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			bins := benchBins(n)

			b.SetBytes(int64(len(bins) * 16))
			b.ReportAllocs()
			b.ResetTimer()
			for range b.N {
				_ = Magnitude(bins)
			}
		})
	}
}

func BenchmarkScaledDropDC(b *testing.B) {
	for _, n := range []int{1024, 2715, 4096} {
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			bins := benchBins(n)

			b.SetBytes(int64(len(bins) * 16))
			b.ReportAllocs()
			b.ResetTimer()
			for range b.N {
				mag, err := Scaled(bins, n)
				if err != nil {
					b.Fatal(err)
				}
				if len(DropDC(mag)) != n/2 {
					b.Fatalf("unexpected row count for n=%d", n)
				}
			}
		})
	}
}
