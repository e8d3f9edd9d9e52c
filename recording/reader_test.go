package recording

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cwbudde/accel-fft/dsp/core"
	"github.com/cwbudde/accel-fft/internal/testutil"
)

func TestReadSkipsHeader(t *testing.T) {
	in := "x,y,z\n0,0,0\n1,0.5,-2\n0,0,0\n-1,1e-3,4\n"

	s, err := Read(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, s.X, []float64{0, 1, 0, -1}, 0)
	testutil.RequireSliceNearlyEqual(t, s.Y, []float64{0, 0.5, 0, 1e-3}, 0)
	testutil.RequireSliceNearlyEqual(t, s.Z, []float64{0, -2, 0, 4}, 0)
}

func TestReadLengthMatchesRows(t *testing.T) {
	for _, n := range []int{0, 1, 2, 7, 128, 1000} {
		var b strings.Builder
		b.WriteString("x,y,z\n")
		for i := 0; i < n; i++ {
			b.WriteString("1.5,2.5,3.5\n")
		}

		s, err := Read(strings.NewReader(b.String()))
		if err != nil {
			t.Fatalf("n=%d: Read error: %v", n, err)
		}
		if s.Len() != n || len(s.Y) != n || len(s.Z) != n {
			t.Fatalf("n=%d: got lengths x=%d y=%d z=%d", n, len(s.X), len(s.Y), len(s.Z))
		}
	}
}

func TestReadIgnoresExtraFieldsAndBlankLines(t *testing.T) {
	in := "x,y,z,t\r\n1, 2 ,3,100\r\n\r\n4,5,6,200,extra\r\n\n"

	s, err := Read(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, s.X, []float64{1, 4}, 0)
	testutil.RequireSliceNearlyEqual(t, s.Y, []float64{2, 5}, 0)
	testutil.RequireSliceNearlyEqual(t, s.Z, []float64{3, 6}, 0)
}

func TestReadStrictErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{name: "empty input", in: ""},
		{name: "too few fields", in: "x,y,z\n1,2\n"},
		{name: "non-numeric", in: "x,y,z\n1,2,abc\n"},
		{name: "empty cell", in: "x,y,z\n1,,3\n"},
		{name: "bad quoting", in: "x,y,z\n1,\"2,3\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.in))
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, core.ErrParse) {
				t.Fatalf("error %v is not a parse error", err)
			}
		})
	}
}

func TestReadStrictReportsLine(t *testing.T) {
	_, err := Read(strings.NewReader("x,y,z\n1,2,3\n4,5,six\n"))
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "line 3") {
		t.Fatalf("error %q does not name line 3", err)
	}
}

func TestReadLenient(t *testing.T) {
	in := "x,y,z\n1,2\n4,five,6\n7,8,9\n"

	s, err := Read(strings.NewReader(in), WithLenient(true))
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, s.X, []float64{1, 4, 7}, 0)
	testutil.RequireSliceNearlyEqual(t, s.Y, []float64{2, 0, 8}, 0)
	testutil.RequireSliceNearlyEqual(t, s.Z, []float64{0, 6, 9}, 0)
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "1000-2000-ModelA.txt")
	if err := os.WriteFile(path, []byte("x,y,z\n0,0,0\n1,0,0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.txt"))
	if !errors.Is(err, core.ErrIO) {
		t.Fatalf("error %v is not an io error", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("error %v does not wrap os.ErrNotExist", err)
	}
}

func TestSamplesValidate(t *testing.T) {
	ok := Samples{X: []float64{1}, Y: []float64{2}, Z: []float64{3}}
	if err := ok.Validate(); err != nil {
		t.Fatalf("Validate error: %v", err)
	}

	bad := Samples{X: []float64{1, 2}, Y: []float64{2}, Z: []float64{3}}
	if err := bad.Validate(); !errors.Is(err, core.ErrParse) {
		t.Fatalf("Validate() = %v, want parse error", err)
	}
}
