package recording

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/cwbudde/accel-fft/dsp/core"
)

func TestParseName(t *testing.T) {
	tests := []struct {
		name string
		path string
		want Metadata
	}{
		{
			name: "reference recording",
			path: "1602245833-2715-NAO7856.txt",
			want: Metadata{Epoch: 1602245833, SampleDurationMs: 2715, SensorModel: "NAO7856", Extension: "txt"},
		},
		{
			name: "directory is ignored",
			path: filepath.Join("data", "2020", "1000-2000-ModelA.csv"),
			want: Metadata{Epoch: 1000, SampleDurationMs: 2000, SensorModel: "ModelA", Extension: "csv"},
		},
		{
			name: "no extension",
			path: "1-5-X",
			want: Metadata{Epoch: 1, SampleDurationMs: 5, SensorModel: "X"},
		},
		{
			name: "model keeps dashes",
			path: "7-10-ADXL-345.txt",
			want: Metadata{Epoch: 7, SampleDurationMs: 10, SensorModel: "ADXL-345", Extension: "txt"},
		},
		{
			name: "double extension",
			path: "7-10-M.tar.gz",
			want: Metadata{Epoch: 7, SampleDurationMs: 10, SensorModel: "M", Extension: "tar.gz"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseName(tt.path)
			if err != nil {
				t.Fatalf("ParseName(%q) error: %v", tt.path, err)
			}
			if got != tt.want {
				t.Fatalf("ParseName(%q) = %+v, want %+v", tt.path, got, tt.want)
			}
		})
	}
}

func TestParseNameRoundTrip(t *testing.T) {
	cases := []Metadata{
		{Epoch: 0, SampleDurationMs: 1, SensorModel: "a", Extension: "txt"},
		{Epoch: 1602245833, SampleDurationMs: 2715, SensorModel: "NAO7856", Extension: "txt"},
		{Epoch: 9999999999, SampleDurationMs: 60000, SensorModel: "MPU6050", Extension: "csv"},
		{Epoch: 42, SampleDurationMs: 3, SensorModel: "noext"},
	}

	for _, want := range cases {
		got, err := ParseName(want.Name())
		if err != nil {
			t.Fatalf("ParseName(%q) error: %v", want.Name(), err)
		}
		if got != want {
			t.Fatalf("round trip %q: got %+v, want %+v", want.Name(), got, want)
		}
	}
}

func TestParseNameErrors(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{name: "missing fields", path: "1602245833.txt"},
		{name: "missing model", path: "1602245833-2715.txt"},
		{name: "non-numeric epoch", path: "abc-2715-NAO7856.txt"},
		{name: "non-numeric duration", path: "1602245833-2.5-NAO7856.txt"},
		{name: "empty duration", path: "1602245833--NAO7856.txt"},
		{name: "zero duration", path: "1602245833-0-NAO7856.txt"},
		{name: "empty model", path: "1602245833-2715-.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseName(tt.path)
			if err == nil {
				t.Fatalf("ParseName(%q) expected error", tt.path)
			}
			if !errors.Is(err, core.ErrParse) {
				t.Fatalf("ParseName(%q) error %v is not a parse error", tt.path, err)
			}
		})
	}
}
