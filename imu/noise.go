package imu

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/cwbudde/algo-imu/dsp/core"
)

// ErrInvalidNoise is returned for negative or non-finite noise parameters.
var ErrInvalidNoise = errors.New("invalid noise parameter")

// NoiseConfig describes the sensor error model.
//
// Densities are white-noise spectral densities in units/sqrt(Hz); the
// per-sample standard deviation is density/sqrt(dt). Instabilities scale the
// per-step bias random walk by sqrt(dt).
type NoiseConfig struct {
	AccelNoiseDensity    float64 // m/s^2/sqrt(Hz)
	GyroNoiseDensity     float64 // deg/s/sqrt(Hz)
	AccelBiasInstability float64 // m/s^2 per sqrt(s)
	GyroBiasInstability  float64 // deg/s per sqrt(s)
}

// DefaultNoiseConfig returns parameters typical of a consumer MEMS IMU.
func DefaultNoiseConfig() NoiseConfig {
	return NoiseConfig{
		AccelNoiseDensity:    0.002,
		GyroNoiseDensity:     0.01,
		AccelBiasInstability: 0.0005,
		GyroBiasInstability:  0.005,
	}
}

// Validate reports whether every parameter is finite and >= 0.
func (c NoiseConfig) Validate() error {
	params := []struct {
		name string
		v    float64
	}{
		{"accel noise density", c.AccelNoiseDensity},
		{"gyro noise density", c.GyroNoiseDensity},
		{"accel bias instability", c.AccelBiasInstability},
		{"gyro bias instability", c.GyroBiasInstability},
	}
	for _, p := range params {
		if p.v < 0 || !core.IsFinite(p.v) {
			return fmt.Errorf("%w: %s = %v", ErrInvalidNoise, p.name, p.v)
		}
	}
	return nil
}

// noiseModel turns one standard normal stream into white noise and bias
// random-walk increments for a fixed time step.
type noiseModel struct {
	gauss distuv.Normal

	accelStd, gyroStd   float64
	accelWalk, gyroWalk float64
}

func newNoiseModel(cfg NoiseConfig, dt float64, gauss distuv.Normal) noiseModel {
	sqrtDt := math.Sqrt(dt)
	return noiseModel{
		gauss:     gauss,
		accelStd:  cfg.AccelNoiseDensity / sqrtDt,
		gyroStd:   cfg.GyroNoiseDensity / sqrtDt,
		accelWalk: cfg.AccelBiasInstability * sqrtDt,
		gyroWalk:  cfg.GyroBiasInstability * sqrtDt,
	}
}

// draw returns three independent N(0,1) variates scaled by scale. The
// generator is consumed even for a zero scale so the stream position does
// not depend on the noise parameters.
func (m *noiseModel) draw(scale float64) Vec3 {
	return Vec3{
		m.gauss.Rand() * scale,
		m.gauss.Rand() * scale,
		m.gauss.Rand() * scale,
	}
}

// walk advances both biases by one random-walk step.
func (m *noiseModel) walk(accelBias, gyroBias *Vec3) {
	*accelBias = accelBias.Add(m.draw(m.accelWalk))
	*gyroBias = gyroBias.Add(m.draw(m.gyroWalk))
}

// corrupt adds bias and fresh white noise to the ideal sample.
func (m *noiseModel) corrupt(ideal Sample, accelBias, gyroBias Vec3) Sample {
	return Sample{
		Accel: ideal.Accel.Add(accelBias).Add(m.draw(m.accelStd)),
		Gyro:  ideal.Gyro.Add(gyroBias).Add(m.draw(m.gyroStd)),
	}
}
