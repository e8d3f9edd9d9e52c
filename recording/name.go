package recording

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cwbudde/accel-fft/dsp/core"
)

const opParseName = "decode recording name"

// Metadata is the information encoded in a recording's filename:
//
//	<epoch>-<durationMs>-<sensorModel>.<ext>
type Metadata struct {
	Epoch            int64
	SampleDurationMs int
	SensorModel      string
	Extension        string // without the leading dot; may be empty
}

// Name rebuilds the canonical filename for m.
func (m Metadata) Name() string {
	name := strconv.FormatInt(m.Epoch, 10) + "-" + strconv.Itoa(m.SampleDurationMs) + "-" + m.SensorModel
	if m.Extension != "" {
		name += "." + m.Extension
	}
	return name
}

// ParseName decodes the metadata from the basename of path.
//
// The duration must be a positive integer; every other failure to match the
// pattern is reported as a parse error naming the offending field.
func ParseName(path string) (Metadata, error) {
	base := filepath.Base(path)

	parts := strings.SplitN(base, "-", 3)
	if len(parts) != 3 {
		return Metadata{}, core.Parsef(opParseName, "%q: want <epoch>-<durationMs>-<model>.<ext>", base)
	}

	epoch, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return Metadata{}, core.Parsef(opParseName, "%q: epoch %q is not an integer", base, parts[0])
	}

	duration, err := strconv.Atoi(parts[1])
	if err != nil {
		return Metadata{}, core.Parsef(opParseName, "%q: duration %q is not an integer", base, parts[1])
	}
	if duration <= 0 {
		return Metadata{}, core.Parsef(opParseName, "%q: duration must be > 0: %d", base, duration)
	}

	model, ext, _ := strings.Cut(parts[2], ".")
	if model == "" {
		return Metadata{}, core.Parsef(opParseName, "%q: sensor model is empty", base)
	}

	return Metadata{
		Epoch:            epoch,
		SampleDurationMs: duration,
		SensorModel:      model,
		Extension:        ext,
	}, nil
}
