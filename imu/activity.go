package imu

import (
	"errors"
	"fmt"
	"math"
)

// Gravity is the standard gravitational acceleration in m/s^2 seen on the
// z axis of a level sensor at rest.
const Gravity = 9.81

// ErrUnknownActivity is returned by ParseActivity for labels outside the
// supported set.
var ErrUnknownActivity = errors.New("unknown activity")

// Activity identifies the motion law that drives the ideal signal.
type Activity int

const (
	// Sitting is a level sensor at rest. It is also the fallback for
	// unrecognized labels.
	Sitting Activity = iota
	// Walking bounces the z axis and swings the pitch axis at a 2 Hz gait.
	Walking
	// Running is a faster, harder gait at 2.8 Hz.
	Running

	numActivities
)

type activityInfo struct {
	name   string
	motion func(t float64) Sample
}

var activities = [numActivities]activityInfo{
	Sitting: {name: "sitting", motion: restMotion},
	Walking: {name: "walking", motion: gaitMotion(2.0, 0.5, 20.0)},
	Running: {name: "running", motion: gaitMotion(2.8, 2.0, 45.0)},
}

func restMotion(float64) Sample {
	return Sample{Accel: Vec3{0, 0, Gravity}}
}

// gaitMotion returns a periodic gait: vertical acceleration oscillates around
// gravity with accelAmp (m/s^2) and the y-axis angular rate with gyroAmp
// (deg/s), both at freqHz and in phase.
func gaitMotion(freqHz, accelAmp, gyroAmp float64) func(float64) Sample {
	return func(t float64) Sample {
		phase := math.Sin(2 * math.Pi * freqHz * t)
		return Sample{
			Accel: Vec3{0, 0, Gravity + accelAmp*phase},
			Gyro:  Vec3{0, gyroAmp * phase, 0},
		}
	}
}

// Activities returns every supported activity in label order.
func Activities() []Activity {
	out := make([]Activity, numActivities)
	for i := range out {
		out[i] = Activity(i)
	}
	return out
}

// Valid reports whether a is one of the supported activities.
func (a Activity) Valid() bool {
	return a >= 0 && a < numActivities
}

// String returns the activity label.
func (a Activity) String() string {
	if !a.Valid() {
		return fmt.Sprintf("Activity(%d)", int(a))
	}
	return activities[a].name
}

// Motion returns the noise-free sample of a at time t seconds. Invalid
// activities move like Sitting.
func (a Activity) Motion(t float64) Sample {
	if !a.Valid() {
		return restMotion(t)
	}
	return activities[a].motion(t)
}

// ParseActivity returns the activity named label, or ErrUnknownActivity.
func ParseActivity(label string) (Activity, error) {
	for i, info := range activities {
		if info.name == label {
			return Activity(i), nil
		}
	}
	return Sitting, fmt.Errorf("%w: %q", ErrUnknownActivity, label)
}

// MarshalText implements encoding.TextMarshaler.
func (a Activity) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownActivity, int(a))
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unlike
// Simulator.SetActivityLabel it rejects unknown labels.
func (a *Activity) UnmarshalText(text []byte) error {
	parsed, err := ParseActivity(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
