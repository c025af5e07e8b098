// Package config decodes simulation profiles.
//
// A profile is YAML. Every field is optional; omitted fields keep their
// defaults, so partial profiles are safe:
//
//	sample_rate_hz: 100
//	window_size: 64
//	activity: walking
//	seed: 42
//	transform: dft
//	taper: hann
//	noise:
//	  accel_noise_density: 0.002
//	  gyro_bias_instability: 0.005
//	dataset:
//	  samples_per_class: 1000
//	  activities: [sitting, walking]
//
// Reading the profile from disk is left to the caller.
package config

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-imu/dataset"
	"github.com/cwbudde/algo-imu/dsp/core"
	"github.com/cwbudde/algo-imu/dsp/window"
	"github.com/cwbudde/algo-imu/features"
	"github.com/cwbudde/algo-imu/imu"
	frequencystats "github.com/cwbudde/algo-imu/stats/frequency"
)

// Profile is the root configuration document.
type Profile struct {
	SampleRateHz   float64        `yaml:"sample_rate_hz"`
	WindowSize     int            `yaml:"window_size"`
	Activity       string         `yaml:"activity"`
	StrictActivity bool           `yaml:"strict_activity,omitempty"`
	Seed           *uint64        `yaml:"seed,omitempty"`
	Transform      string         `yaml:"transform,omitempty"`
	Taper          string         `yaml:"taper,omitempty"`
	Noise          NoiseProfile   `yaml:"noise,omitempty"`
	Dataset        DatasetProfile `yaml:"dataset,omitempty"`
}

// NoiseProfile overrides individual noise parameters. Nil fields keep the
// simulator defaults.
type NoiseProfile struct {
	AccelNoiseDensity    *float64 `yaml:"accel_noise_density,omitempty"`
	GyroNoiseDensity     *float64 `yaml:"gyro_noise_density,omitempty"`
	AccelBiasInstability *float64 `yaml:"accel_bias_instability,omitempty"`
	GyroBiasInstability  *float64 `yaml:"gyro_bias_instability,omitempty"`
}

// DatasetProfile configures dataset generation.
type DatasetProfile struct {
	SamplesPerClass int            `yaml:"samples_per_class,omitempty"`
	Activities      []imu.Activity `yaml:"activities,omitempty"`
}

// Default returns the profile used when no document is given.
func Default() Profile {
	proc := core.DefaultProcessorConfig()
	ds := dataset.DefaultConfig()
	return Profile{
		SampleRateHz: proc.SampleRate,
		WindowSize:   proc.WindowSize,
		Activity:     imu.Sitting.String(),
		Transform:    frequencystats.TransformDFT.String(),
		Taper:        window.TypeRectangular.String(),
		Dataset: DatasetProfile{
			SamplesPerClass: ds.SamplesPerClass,
			Activities:      ds.Activities,
		},
	}
}

// Parse decodes a YAML profile from r on top of Default and validates it.
// Unknown keys are rejected. An empty document yields the defaults.
func Parse(r io.Reader) (Profile, error) {
	p := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return Profile{}, fmt.Errorf("config: decode profile: %w", err)
	}

	if err := p.Validate(); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// Validate checks the profile without building anything.
func (p Profile) Validate() error {
	if err := p.Processor().Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if p.StrictActivity {
		if _, err := imu.ParseActivity(p.Activity); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	if _, err := p.ExtractorOptions(); err != nil {
		return err
	}
	if err := p.noiseConfig().Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if p.Dataset.SamplesPerClass < 0 {
		return fmt.Errorf("config: dataset samples per class must be >= 0: %d", p.Dataset.SamplesPerClass)
	}
	return nil
}

// Processor returns the shared sampling configuration.
func (p Profile) Processor() core.ProcessorConfig {
	return core.ProcessorConfig{SampleRate: p.SampleRateHz, WindowSize: p.WindowSize}
}

func (p Profile) noiseConfig() imu.NoiseConfig {
	cfg := imu.DefaultNoiseConfig()
	override := func(dst *float64, v *float64) {
		if v != nil {
			*dst = *v
		}
	}
	override(&cfg.AccelNoiseDensity, p.Noise.AccelNoiseDensity)
	override(&cfg.GyroNoiseDensity, p.Noise.GyroNoiseDensity)
	override(&cfg.AccelBiasInstability, p.Noise.AccelBiasInstability)
	override(&cfg.GyroBiasInstability, p.Noise.GyroBiasInstability)
	return cfg
}

// SimulatorOptions returns the imu options described by the profile.
func (p Profile) SimulatorOptions() []imu.Option {
	opts := []imu.Option{imu.WithNoise(p.noiseConfig())}
	if p.Seed != nil {
		opts = append(opts, imu.WithSeed(*p.Seed))
	}
	if p.StrictActivity {
		opts = append(opts, imu.WithStrictActivity())
	}
	return opts
}

// ExtractorOptions returns the features options described by the profile.
func (p Profile) ExtractorOptions() ([]features.Option, error) {
	t, err := frequencystats.ParseTransform(p.Transform)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	taper, err := window.ParseType(p.Taper)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return []features.Option{features.WithTransform(t), features.WithTaper(taper)}, nil
}

// NewSimulator builds the simulator described by the profile.
func (p Profile) NewSimulator() (*imu.Simulator, error) {
	return imu.New(p.SampleRateHz, p.Activity, p.SimulatorOptions()...)
}

// NewExtractor builds the feature extractor described by the profile.
func (p Profile) NewExtractor() (*features.Extractor, error) {
	opts, err := p.ExtractorOptions()
	if err != nil {
		return nil, err
	}
	return features.NewExtractor(p.WindowSize, p.SampleRateHz, opts...)
}

// DatasetConfig returns the dataset generation settings.
func (p Profile) DatasetConfig() (dataset.Config, error) {
	extOpts, err := p.ExtractorOptions()
	if err != nil {
		return dataset.Config{}, err
	}
	cfg := dataset.DefaultConfig()
	cfg.Processor = p.Processor()
	if p.Dataset.SamplesPerClass > 0 {
		cfg.SamplesPerClass = p.Dataset.SamplesPerClass
	}
	if len(p.Dataset.Activities) > 0 {
		cfg.Activities = p.Dataset.Activities
	}
	cfg.SimulatorOptions = p.SimulatorOptions()
	cfg.ExtractorOptions = extOpts
	return cfg, cfg.Validate()
}
