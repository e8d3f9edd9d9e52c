// Package pipeline runs the recording-to-spectrum conversion: decode the
// filename, read the samples, transform and scale each axis, and write the
// spectrum CSV.
//
// Stages run strictly in sequence and the first failure aborts the run.
// Nothing is shared between calls to [Run].
package pipeline

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cwbudde/accel-fft/dsp/fft"
	"github.com/cwbudde/accel-fft/dsp/spectrum"
	"github.com/cwbudde/accel-fft/export"
	"github.com/cwbudde/accel-fft/internal/logging"
	"github.com/cwbudde/accel-fft/recording"
	frequencystats "github.com/cwbudde/accel-fft/stats/frequency"
	timestats "github.com/cwbudde/accel-fft/stats/time"
)

// Axis identifies one accelerometer axis.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

var axisNames = [...]string{"x", "y", "z"}

func (a Axis) String() string {
	if a >= 0 && int(a) < len(axisNames) {
		return axisNames[a]
	}
	return "unknown"
}

// Config selects the files and processing settings of one run.
type Config struct {
	Input     string
	Output    string
	Backend   fft.Backend
	Lenient   bool
	Precision int // significant digits per output value; <= 0 is shortest float32
}

type runOptions struct {
	log         *zap.Logger
	transformer fft.Transformer
}

// Option configures [Run] and [Compute].
type Option func(*runOptions)

// WithLogger sets the logger for stage progress and the final summary.
func WithLogger(l *zap.Logger) Option {
	return func(o *runOptions) {
		o.log = l
	}
}

// WithTransformer overrides the transformer built from Config.Backend.
func WithTransformer(t fft.Transformer) Option {
	return func(o *runOptions) {
		o.transformer = t
	}
}

func applyOptions(opts []Option) runOptions {
	var o runOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	o.log = logging.OrNop(o.log)
	return o
}

// AxisResult is the processed spectrum of one axis.
type AxisResult struct {
	// Magnitude holds 2*|X[k]|/N for k = 1..N/2 (DC removed).
	Magnitude []float64
	Time      timestats.Summary
	Spectrum  frequencystats.Summary
}

// Result is the outcome of a run.
type Result struct {
	Metadata recording.Metadata
	Samples  int     // samples per axis
	Step     float64 // frequency step between output rows
	Backend  string
	Axes     [3]AxisResult
}

// Rows returns the number of spectrum rows.
func (r Result) Rows() int { return len(r.Axes[AxisX].Magnitude) }

// Run executes the whole conversion for cfg and writes cfg.Output.
func Run(cfg Config, opts ...Option) (Result, error) {
	o := applyOptions(opts)
	log := o.log.With(zap.String("input", cfg.Input))

	meta, err := recording.ParseName(cfg.Input)
	if err != nil {
		return Result{}, err
	}
	log.Debug("decoded recording name",
		zap.Int64("epoch", meta.Epoch),
		zap.Int("duration_ms", meta.SampleDurationMs),
		zap.String("sensor", meta.SensorModel))

	samples, err := recording.ReadFile(cfg.Input, recording.WithLenient(cfg.Lenient))
	if err != nil {
		return Result{}, err
	}
	log.Debug("read samples", zap.Int("n", samples.Len()), zap.Bool("lenient", cfg.Lenient))

	if o.transformer == nil {
		o.transformer, err = fft.New(cfg.Backend)
		if err != nil {
			return Result{}, err
		}
	}

	res, err := compute(meta, samples, o.transformer, log)
	if err != nil {
		return Result{}, err
	}

	x, y, z := res.Axes[AxisX].Magnitude, res.Axes[AxisY].Magnitude, res.Axes[AxisZ].Magnitude
	if err := export.WriteFile(cfg.Output, x, y, z, res.Step, export.WithPrecision(cfg.Precision)); err != nil {
		return Result{}, err
	}

	log.Info("spectrum written",
		zap.String("output", cfg.Output),
		zap.String("sensor", meta.SensorModel),
		zap.Int("samples", res.Samples),
		zap.Int("rows", res.Rows()),
		zap.Float64("step_hz", res.Step),
		zap.String("backend", res.Backend))
	for i, ax := range res.Axes {
		log.Info("axis summary",
			zap.Stringer("axis", Axis(i)),
			zap.Float64("mean", ax.Time.Mean),
			zap.Float64("ac_rms", ax.Time.StdDev),
			zap.Float64("peak_hz", ax.Spectrum.PeakFrequency),
			zap.Float64("peak_amplitude", ax.Spectrum.PeakMagnitude),
			zap.Float64("peak_db", ax.Spectrum.Peak_dB),
			zap.Float64("centroid_hz", ax.Spectrum.Centroid))
	}

	return res, nil
}

// Compute runs the transform stages on already-loaded samples without
// touching the filesystem.
func Compute(meta recording.Metadata, samples recording.Samples, opts ...Option) (Result, error) {
	o := applyOptions(opts)
	if o.transformer == nil {
		var err error
		o.transformer, err = fft.New(fft.DefaultBackend)
		if err != nil {
			return Result{}, err
		}
	}
	return compute(meta, samples, o.transformer, o.log)
}

func compute(meta recording.Metadata, samples recording.Samples, tr fft.Transformer, log *zap.Logger) (Result, error) {
	if err := samples.Validate(); err != nil {
		return Result{}, err
	}

	n := samples.Len()
	res := Result{
		Metadata: meta,
		Samples:  n,
		Backend:  tr.Name(),
	}

	step, err := spectrum.FrequencyStep(n, meta.SampleDurationMs)
	if err != nil {
		return Result{}, err
	}
	res.Step = step

	var bins []complex128
	for i, x := range samples.Axes() {
		axis := Axis(i)

		bins, err = tr.Forward(bins, x)
		if err != nil {
			return Result{}, fmt.Errorf("%s axis: %w", axis, err)
		}
		scaled, err := spectrum.Scaled(bins, n)
		if err != nil {
			return Result{}, fmt.Errorf("%s axis: %w", axis, err)
		}
		mag := spectrum.DropDC(scaled)

		res.Axes[i] = AxisResult{
			Magnitude: mag,
			Time:      timestats.Summarize(x),
			Spectrum:  frequencystats.Summarize(mag, step),
		}
		log.Debug("transformed axis", zap.Stringer("axis", axis), zap.Int("bins", len(bins)))
	}

	return res, nil
}
