// Package config loads the YAML configuration for accelfft.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/accel-fft/dsp/fft"
	"github.com/cwbudde/accel-fft/internal/logging"
)

const (
	DefaultInput  = "1602245833-2715-NAO7856.txt"
	DefaultOutput = "output.txt"
)

// LogConfig selects logger verbosity and encoding.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // console or json; empty means console
}

// Config is the top-level structure of the configuration file.
type Config struct {
	Input     string    `yaml:"input"`
	Output    string    `yaml:"output"`
	Backend   string    `yaml:"backend"`
	Lenient   bool      `yaml:"lenient"`
	Precision int       `yaml:"precision"`
	Log       LogConfig `yaml:"log"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Input:     DefaultInput,
		Output:    DefaultOutput,
		Backend:   string(fft.DefaultBackend),
		Precision: -1,
		Log: LogConfig{
			Level:  "info",
			Format: logging.FormatConsole,
		},
	}
}

// Load reads path on top of [Default]. Keys missing from the file keep their
// default values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Input) == "" {
		return errors.New("input path must not be empty")
	}
	if strings.TrimSpace(c.Output) == "" {
		return errors.New("output path must not be empty")
	}
	if _, err := fft.ParseBackend(c.Backend); err != nil {
		return err
	}
	if c.Precision < -1 {
		return fmt.Errorf("precision must be >= -1: %d", c.Precision)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	switch c.Log.Format {
	case logging.FormatConsole, logging.FormatJSON, "":
	default:
		return fmt.Errorf("unknown log format %q (want %s or %s)", c.Log.Format, logging.FormatConsole, logging.FormatJSON)
	}
	return nil
}
