package imu

import (
	"math/rand/v2"

	"github.com/cwbudde/algo-imu/internal/monitoring"
)

type settings struct {
	noise  NoiseConfig
	src    rand.Source
	logf   func(format string, v ...any)
	strict bool
}

func defaultSettings() settings {
	return settings{
		noise: DefaultNoiseConfig(),
		logf: func(format string, v ...any) {
			monitoring.Logf(format, v...)
		},
	}
}

// Option configures a Simulator.
type Option func(*settings)

// WithSeed seeds the noise generator deterministically. Without WithSeed or
// WithSource the generator is seeded from the runtime's entropy source.
func WithSeed(seed uint64) Option {
	return func(s *settings) {
		s.src = rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
	}
}

// WithSource uses src for every noise and bias draw. A nil src is ignored.
func WithSource(src rand.Source) Option {
	return func(s *settings) {
		if src != nil {
			s.src = src
		}
	}
}

// WithNoise replaces the whole noise model.
func WithNoise(cfg NoiseConfig) Option {
	return func(s *settings) {
		s.noise = cfg
	}
}

// WithAccelNoiseDensity sets the accelerometer white-noise density in
// m/s^2/sqrt(Hz).
func WithAccelNoiseDensity(density float64) Option {
	return func(s *settings) {
		s.noise.AccelNoiseDensity = density
	}
}

// WithGyroNoiseDensity sets the gyroscope white-noise density in
// deg/s/sqrt(Hz).
func WithGyroNoiseDensity(density float64) Option {
	return func(s *settings) {
		s.noise.GyroNoiseDensity = density
	}
}

// WithAccelBiasInstability sets the accelerometer bias random-walk scale.
func WithAccelBiasInstability(instability float64) Option {
	return func(s *settings) {
		s.noise.AccelBiasInstability = instability
	}
}

// WithGyroBiasInstability sets the gyroscope bias random-walk scale.
func WithGyroBiasInstability(instability float64) Option {
	return func(s *settings) {
		s.noise.GyroBiasInstability = instability
	}
}

// WithLogf routes diagnostics, such as unknown activity labels, to f.
// A nil f mutes them.
func WithLogf(f func(format string, v ...any)) Option {
	return func(s *settings) {
		if f == nil {
			f = func(string, ...any) {}
		}
		s.logf = f
	}
}

// WithStrictActivity makes New reject unknown activity labels with
// ErrUnknownActivity instead of falling back to Sitting.
func WithStrictActivity() Option {
	return func(s *settings) {
		s.strict = true
	}
}
