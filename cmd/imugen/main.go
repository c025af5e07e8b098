// Command imugen drives the IMU simulator and the feature extractor.
//
// Usage:
//
//	imugen [flags]
//
// Modes:
//
//	stream    print one corrupted sample per step
//	features  print the feature vector once the window is full
//	dataset   write a labelled feature dataset as CSV
//
// Examples:
//
//	imugen -activity walking -steps 200
//	imugen -mode features -activity running -seed 7
//	imugen -mode features -taper hann -transform fft
//	imugen -mode dataset -samples 500 -standardize > train.csv
//	imugen -config profile.yaml -mode features
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-imu/config"
	"github.com/cwbudde/algo-imu/dataset"
	"github.com/cwbudde/algo-imu/features"
	"github.com/cwbudde/algo-imu/imu"
	"github.com/cwbudde/algo-imu/internal/monitoring"
)

var errUsage = errors.New("usage")

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	configPath  string
	mode        string
	steps       int
	standardize bool
	quiet       bool
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("imugen", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var opts options
	fs.StringVar(&opts.configPath, "config", "", "YAML profile; flags override its values")
	fs.StringVar(&opts.mode, "mode", "stream", "output mode: stream, features or dataset")
	fs.IntVar(&opts.steps, "steps", 100, "simulation steps for stream and features mode")
	fs.BoolVar(&opts.standardize, "standardize", false, "z-score dataset features before writing")
	fs.BoolVar(&opts.quiet, "quiet", false, "suppress diagnostic logging")
	rate := fs.Float64("rate", 0, "sample rate in Hz")
	windowSize := fs.Int("window", 0, "feature window length in samples")
	activity := fs.String("activity", "", "activity label: "+activityNames())
	seed := fs.Uint64("seed", 0, "noise generator seed")
	transform := fs.String("transform", "", "spectrum backend: dft or fft")
	taper := fs.String("taper", "", "window applied before the spectrum: rectangular, hann, hamming or blackman")
	samples := fs.Int("samples", 0, "dataset rows per activity")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: imugen [flags]\n\n")
		fmt.Fprintf(stderr, "Simulates IMU samples and extracts windowed features.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return errUsage
	}

	if opts.quiet {
		monitoring.SetLogger(nil)
	}

	profile, err := loadProfile(opts.configPath)
	if err != nil {
		return err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "rate":
			profile.SampleRateHz = *rate
		case "window":
			profile.WindowSize = *windowSize
		case "activity":
			profile.Activity = *activity
		case "seed":
			s := *seed
			profile.Seed = &s
		case "transform":
			profile.Transform = *transform
		case "taper":
			profile.Taper = *taper
		case "samples":
			profile.Dataset.SamplesPerClass = *samples
		}
	})
	if err := profile.Validate(); err != nil {
		return err
	}

	switch strings.ToLower(opts.mode) {
	case "stream":
		return stream(stdout, profile, opts.steps)
	case "features":
		return extract(stdout, profile, opts.steps)
	case "dataset":
		return generate(stdout, profile, opts.standardize)
	default:
		fmt.Fprintf(stderr, "error: unknown mode %q\n", opts.mode)
		return errUsage
	}
}

func activityNames() string {
	acts := imu.Activities()
	names := make([]string, len(acts))
	for i, a := range acts {
		names[i] = a.String()
	}
	return strings.Join(names, ", ")
}

func loadProfile(path string) (config.Profile, error) {
	if path == "" {
		return config.Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return config.Profile{}, err
	}
	defer f.Close()
	return config.Parse(f)
}

func stream(w io.Writer, p config.Profile, steps int) error {
	sim, err := p.NewSimulator()
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "t [s]\tax\tay\taz\tgx\tgy\tgz\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for range steps {
		sim.Advance()
		a, g := sim.Acceleration(), sim.Gyroscope()
		if _, err := fmt.Fprintf(tw, "%.3f\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\n",
			sim.Time(), a.X(), a.Y(), a.Z(), g.X(), g.Y(), g.Z()); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	return tw.Flush()
}

func extract(w io.Writer, p config.Profile, steps int) error {
	sim, err := p.NewSimulator()
	if err != nil {
		return err
	}
	ext, err := p.NewExtractor()
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "t [s]\t%s\n", strings.Join(features.Names[:], "\t")); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for range steps {
		sim.Advance()
		ext.AddSample(sim.Acceleration(), sim.Gyroscope())
		if !ext.Window().Full() {
			continue
		}
		v := ext.ComputeFeatures()
		if _, err := fmt.Fprintf(tw, "%.3f\t%.4f\t%.4f\t%.4f\t%.4f\n",
			sim.Time(), v[features.Mean], v[features.Variance], v[features.DominantFrequency], v[features.SpectralEnergy]); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	if !ext.Window().Full() {
		monitoring.Logf("imugen: %d steps never filled the %d-sample window", steps, ext.Window().Cap())
	}
	return tw.Flush()
}

func generate(w io.Writer, p config.Profile, standardize bool) error {
	cfg, err := p.DatasetConfig()
	if err != nil {
		return err
	}
	rows, err := dataset.Generate(cfg)
	if err != nil {
		return err
	}
	if standardize {
		s, err := dataset.Fit(rows)
		if err != nil {
			return err
		}
		for i := range rows {
			rows[i].Features = s.Transform(rows[i].Features)
		}
	}
	counts := dataset.ClassCounts(rows)
	for _, a := range cfg.Activities {
		monitoring.Logf("imugen: %s: %d rows", a, counts[a])
	}
	return dataset.WriteCSV(w, rows)
}
