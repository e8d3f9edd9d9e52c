package recording

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cwbudde/accel-fft/dsp/core"
)

const opRead = "read samples"

// Samples holds the three axis sequences of one recording.
type Samples struct {
	X []float64
	Y []float64
	Z []float64
}

// Len returns the number of samples per axis.
func (s Samples) Len() int { return len(s.X) }

// Axes returns the sequences in X, Y, Z order.
func (s Samples) Axes() [3][]float64 { return [3][]float64{s.X, s.Y, s.Z} }

// Validate reports a parse error if the axes differ in length.
func (s Samples) Validate() error {
	if len(s.X) != len(s.Y) || len(s.X) != len(s.Z) {
		return core.Parsef(opRead, "axis length mismatch: x=%d y=%d z=%d", len(s.X), len(s.Y), len(s.Z))
	}
	return nil
}

type readConfig struct {
	lenient bool
}

// ReadOption configures [Read] and [ReadFile].
type ReadOption func(*readConfig)

// WithLenient selects lenient parsing: missing or non-numeric cells read as 0
// instead of failing the whole read.
func WithLenient(lenient bool) ReadOption {
	return func(cfg *readConfig) {
		cfg.lenient = lenient
	}
}

// ReadFile opens path and reads its samples with [Read].
func ReadFile(path string, opts ...ReadOption) (Samples, error) {
	f, err := os.Open(path)
	if err != nil {
		return Samples{}, core.IOError(opRead, err)
	}
	defer f.Close()

	return Read(f, opts...)
}

// Read parses comma-separated rows from r. The first row is the axis header
// and is skipped; the first three fields of every following row become one
// sample per axis. Fields past the third are ignored.
func Read(r io.Reader, opts ...ReadOption) (Samples, error) {
	var cfg readConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true
	cr.TrimLeadingSpace = true

	if _, err := cr.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return Samples{}, core.Parsef(opRead, "missing header row")
		}
		return Samples{}, readError(err)
	}

	var s Samples
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Samples{}, readError(err)
		}

		line, _ := cr.FieldPos(0)

		var row [3]float64
		for i := range row {
			v, err := parseCell(record, i)
			if err != nil {
				if !cfg.lenient {
					return Samples{}, core.ParseError(opRead, fmt.Errorf("line %d: %w", line, err))
				}
				v = 0
			}
			row[i] = v
		}

		s.X = append(s.X, row[0])
		s.Y = append(s.Y, row[1])
		s.Z = append(s.Z, row[2])
	}

	if err := s.Validate(); err != nil {
		return Samples{}, err
	}
	return s, nil
}

func parseCell(record []string, i int) (float64, error) {
	if i >= len(record) {
		return 0, fmt.Errorf("want at least 3 fields, got %d", len(record))
	}
	cell := strings.TrimSpace(record[i])
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0, fmt.Errorf("field %d: %q is not a number", i+1, cell)
	}
	return v, nil
}

// readError classifies errors surfaced by the CSV reader: malformed quoting
// is a parse error, anything else comes from the underlying reader.
func readError(err error) error {
	var perr *csv.ParseError
	if errors.As(err, &perr) {
		return core.ParseError(opRead, err)
	}
	return core.IOError(opRead, err)
}
