package imu

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/cwbudde/algo-imu/dsp/core"
)

// Simulator produces a stream of noisy IMU samples at a fixed rate.
//
// A Simulator is not safe for concurrent use; its clock, biases and random
// generator are mutated by every Advance.
type Simulator struct {
	rate float64
	dt   float64
	t    float64

	activity Activity
	noise    NoiseConfig
	model    noiseModel
	logf     func(format string, v ...any)

	accelBias Vec3
	gyroBias  Vec3

	ideal  Sample
	latest Sample
}

// New returns a Simulator sampling at sampleRateHz with the activity named
// label. Time starts at 0 with zero bias and a zero latest sample.
//
// Unknown labels fall back to Sitting with a logged warning, unless
// WithStrictActivity is given.
func New(sampleRateHz float64, label string, opts ...Option) (*Simulator, error) {
	if err := core.ValidateSampleRate(sampleRateHz); err != nil {
		return nil, fmt.Errorf("imu: %w", err)
	}

	cfg := defaultSettings()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if err := cfg.noise.Validate(); err != nil {
		return nil, fmt.Errorf("imu: %w", err)
	}

	activity, err := ParseActivity(label)
	if err != nil && cfg.strict {
		return nil, fmt.Errorf("imu: %w", err)
	}

	src := cfg.src
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}

	s := &Simulator{
		rate:     sampleRateHz,
		dt:       1 / sampleRateHz,
		activity: activity,
		noise:    cfg.noise,
		logf:     cfg.logf,
	}
	s.model = newNoiseModel(cfg.noise, s.dt, distuv.Normal{Mu: 0, Sigma: 1, Src: src})
	if err != nil {
		s.logf("imu: %v, using %s", err, Sitting)
	}

	return s, nil
}

// Advance moves the clock forward one step and computes the next sample.
func (s *Simulator) Advance() {
	s.t += s.dt
	s.model.walk(&s.accelBias, &s.gyroBias)
	s.ideal = s.activity.Motion(s.t)
	s.latest = s.model.corrupt(s.ideal, s.accelBias, s.gyroBias)
}

// Time returns the simulated time in seconds.
func (s *Simulator) Time() float64 {
	return s.t
}

// SampleRate returns the sampling rate in Hz.
func (s *Simulator) SampleRate() float64 {
	return s.rate
}

// TimeStep returns the sampling interval in seconds.
func (s *Simulator) TimeStep() float64 {
	return s.dt
}

// Acceleration returns the latest noisy acceleration in m/s^2.
func (s *Simulator) Acceleration() Vec3 {
	return s.latest.Accel
}

// Gyroscope returns the latest noisy angular rate in deg/s.
func (s *Simulator) Gyroscope() Vec3 {
	return s.latest.Gyro
}

// Sample returns the latest noisy sample.
func (s *Simulator) Sample() Sample {
	return s.latest
}

// Ideal returns the noise-free motion that produced the latest sample.
func (s *Simulator) Ideal() Sample {
	return s.ideal
}

// AccelBias returns the current accelerometer bias.
func (s *Simulator) AccelBias() Vec3 {
	return s.accelBias
}

// GyroBias returns the current gyroscope bias.
func (s *Simulator) GyroBias() Vec3 {
	return s.gyroBias
}

// Noise returns the noise parameters in use.
func (s *Simulator) Noise() NoiseConfig {
	return s.noise
}

// Activity returns the current activity.
func (s *Simulator) Activity() Activity {
	return s.activity
}

// SetActivity switches the motion law from the next Advance on. Invalid
// values select Sitting.
func (s *Simulator) SetActivity(a Activity) {
	if !a.Valid() {
		s.logf("imu: %v, using %s", fmt.Errorf("%w: %d", ErrUnknownActivity, int(a)), Sitting)
		a = Sitting
	}
	s.activity = a
}

// SetActivityLabel is SetActivity by label. Unknown labels select Sitting
// and are logged.
func (s *Simulator) SetActivityLabel(label string) {
	a, err := ParseActivity(label)
	if err != nil {
		s.logf("imu: %v, using %s", err, Sitting)
	}
	s.activity = a
}
