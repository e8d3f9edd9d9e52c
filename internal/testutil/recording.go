package testutil

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

// WriteRecording writes a recording file named name into dir with an
// "x,y,z" header followed by one row per sample, and returns its path.
// All three axes must have the same length.
func WriteRecording(t *testing.T, dir, name string, x, y, z []float64) string {
	t.Helper()
	if len(x) != len(y) || len(x) != len(z) {
		t.Fatalf("WriteRecording: axis length mismatch x=%d y=%d z=%d", len(x), len(y), len(z))
	}

	var b strings.Builder
	b.WriteString("x,y,z\n")
	for i := range x {
		b.WriteString(strconv.FormatFloat(x[i], 'g', -1, 64))
		b.WriteByte(',')
		b.WriteString(strconv.FormatFloat(y[i], 'g', -1, 64))
		b.WriteByte(',')
		b.WriteString(strconv.FormatFloat(z[i], 'g', -1, 64))
		b.WriteByte('\n')
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		t.Fatalf("WriteRecording: %v", err)
	}
	return path
}
