// Command accelfft converts a three-axis accelerometer recording into its
// amplitude spectrum.
//
// Usage:
//
//	accelfft [flags] [recording]
//
// The recording must be named <epoch>-<durationMs>-<sensorModel>.<ext> and
// hold an x,y,z header followed by one comma-separated sample per line. The
// output CSV has one row per frequency bin (DC removed):
//
//	amplitudeX,amplitudeY,amplitudeZ,frequency
//
// Examples:
//
//	accelfft 1602245833-2715-NAO7856.txt
//	accelfft -o spectrum.csv -backend auto data/1602245833-2715-NAO7856.txt
//	accelfft -config accelfft.yaml
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/cwbudde/accel-fft/dsp/fft"
	"github.com/cwbudde/accel-fft/internal/config"
	"github.com/cwbudde/accel-fft/internal/logging"
	"github.com/cwbudde/accel-fft/pipeline"
)

const (
	exitOK    = 0
	exitRun   = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("accelfft", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configPath := fs.String("config", "", "YAML configuration file")
	output := fs.String("o", config.DefaultOutput, "output CSV file (overwritten)")
	backend := fs.String("backend", string(fft.DefaultBackend), "FFT backend: "+backendList())
	lenient := fs.Bool("lenient", false, "read unparseable sample cells as 0 instead of failing")
	precision := fs.Int("precision", -1, "significant digits per output value (-1: shortest)")
	logLevel := fs.String("log-level", "info", "log level: debug, info, warn, error")
	logFormat := fs.String("log-format", logging.FormatConsole, "log format: console or json")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: accelfft [flags] [recording]\n\n")
		fmt.Fprintf(stderr, "Writes the amplitude spectrum of a three-axis accelerometer recording.\n")
		fmt.Fprintf(stderr, "Without a recording argument, %s is used.\n\n", config.DefaultInput)
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return exitOK
		}
		return exitUsage
	}
	if fs.NArg() > 1 {
		fmt.Fprintf(stderr, "error: at most one recording may be given, got %d\n", fs.NArg())
		fs.Usage()
		return exitUsage
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return exitUsage
		}
		cfg = loaded
	}

	// Flags given on the command line win over the configuration file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "o":
			cfg.Output = *output
		case "backend":
			cfg.Backend = *backend
		case "lenient":
			cfg.Lenient = *lenient
		case "precision":
			cfg.Precision = *precision
		case "log-level":
			cfg.Log.Level = *logLevel
		case "log-format":
			cfg.Log.Format = *logFormat
		}
	})
	if fs.NArg() == 1 {
		cfg.Input = fs.Arg(0)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitUsage
	}

	log, err := logging.New(stderr, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitUsage
	}
	defer func() { _ = log.Sync() }()

	b, err := fft.ParseBackend(cfg.Backend)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitUsage
	}

	_, err = pipeline.Run(pipeline.Config{
		Input:     cfg.Input,
		Output:    cfg.Output,
		Backend:   b,
		Lenient:   cfg.Lenient,
		Precision: cfg.Precision,
	}, pipeline.WithLogger(log))
	if err != nil {
		log.Error("conversion failed", zap.Error(err))
		return exitRun
	}
	return exitOK
}

func backendList() string {
	names := make([]string, 0, len(fft.Backends()))
	for _, b := range fft.Backends() {
		names = append(names, string(b))
	}
	return strings.Join(names, ", ")
}
