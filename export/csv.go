// Package export writes amplitude spectra as CSV.
//
// Each row holds the x, y and z amplitudes of one frequency bin followed by
// the bin's frequency. There is no header row.
package export

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/cwbudde/accel-fft/dsp/core"
	"github.com/cwbudde/accel-fft/dsp/spectrum"
)

const opWrite = "write spectrum"

// DefaultPrecision formats every value with the fewest digits that read back
// as the same float32.
const DefaultPrecision = -1

type config struct {
	precision int
	bufSize   int
}

// Option configures [Write] and [WriteFile].
type Option func(*config)

// WithPrecision sets the number of significant digits per value. Zero or a
// negative value selects [DefaultPrecision].
func WithPrecision(digits int) Option {
	return func(cfg *config) {
		if digits > 0 {
			cfg.precision = digits
		} else {
			cfg.precision = DefaultPrecision
		}
	}
}

// MinBufferSize is the smallest write buffer; encoding/csv adds its own
// buffer of this size in front of anything smaller.
const MinBufferSize = 4096

// WithBufferSize sets the write buffer size in bytes. Sizes below
// [MinBufferSize] are raised to it.
func WithBufferSize(size int) Option {
	return func(cfg *config) {
		cfg.bufSize = max(size, MinBufferSize)
	}
}

func applyOptions(opts []Option) config {
	cfg := config{precision: DefaultPrecision, bufSize: 64 * 1024}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// FormatValue renders v as written to the output: narrowed to float32 and
// printed in %g style with the given number of significant digits.
func FormatValue(v float32, precision int) string {
	return strconv.FormatFloat(float64(v), 'g', precision, 32)
}

// WriteFile creates or truncates path and writes the spectra to it with
// [Write].
func WriteFile(path string, x, y, z []float64, step float64, opts ...Option) (err error) {
	if err := checkLengths(x, y, z); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return core.IOError(opWrite, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = core.IOError(opWrite, cerr)
		}
	}()

	return Write(f, x, y, z, step, opts...)
}

// Write emits one row per bin: x[i], y[i], z[i] and the frequency of row i
// for the given frequency step. The three spectra must have equal length.
func Write(w io.Writer, x, y, z []float64, step float64, opts ...Option) error {
	if err := checkLengths(x, y, z); err != nil {
		return err
	}
	cfg := applyOptions(opts)

	bw := bufio.NewWriterSize(w, cfg.bufSize)
	cw := csv.NewWriter(bw)

	row := make([]string, 4)
	for i := range x {
		row[0] = FormatValue(float32(x[i]), cfg.precision)
		row[1] = FormatValue(float32(y[i]), cfg.precision)
		row[2] = FormatValue(float32(z[i]), cfg.precision)
		row[3] = FormatValue(spectrum.FrequencyAt(i, step), cfg.precision)
		if err := cw.Write(row); err != nil {
			return core.IOError(opWrite, fmt.Errorf("row %d: %w", i, err))
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return core.IOError(opWrite, err)
	}
	if err := bw.Flush(); err != nil {
		return core.IOError(opWrite, err)
	}
	return nil
}

func checkLengths(x, y, z []float64) error {
	if len(x) != len(y) || len(x) != len(z) {
		return core.Parsef(opWrite, "axis length mismatch: x=%d y=%d z=%d", len(x), len(y), len(z))
	}
	return nil
}
