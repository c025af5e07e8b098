// Package imu synthesizes inertial-measurement-unit samples for a chosen
// activity.
//
// A [Simulator] advances a fixed-step clock. Each [Simulator.Advance] walks
// the accelerometer and gyroscope biases, evaluates the noise-free motion law
// of the current [Activity], and adds bias plus white Gaussian noise:
//
//	sample = motion(t) + bias + N(0,1) * density / sqrt(dt)
//	bias  += N(0,1) * instability * sqrt(dt)
//
// Acceleration is in m/s^2, angular rate in deg/s. All draws come from one
// standard normal generator, so two simulators built with the same
// [WithSeed] value produce identical streams.
package imu
