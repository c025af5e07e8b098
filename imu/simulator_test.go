package imu

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-imu/dsp/core"
)

func mustNew(t *testing.T, rate float64, label string, opts ...Option) *Simulator {
	t.Helper()
	s, err := New(rate, label, opts...)
	if err != nil {
		t.Fatalf("New(%v, %q): %v", rate, label, err)
	}
	return s
}

func run(s *Simulator, steps int) []Sample {
	out := make([]Sample, steps)
	for i := range out {
		s.Advance()
		out[i] = s.Sample()
	}
	return out
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		rate float64
		opts []Option
		want error
	}{
		{name: "zero rate", rate: 0, want: core.ErrInvalidSampleRate},
		{name: "negative rate", rate: -100, want: core.ErrInvalidSampleRate},
		{name: "nan rate", rate: math.NaN(), want: core.ErrInvalidSampleRate},
		{name: "negative density", rate: 100, opts: []Option{WithAccelNoiseDensity(-1)}, want: ErrInvalidNoise},
		{name: "inf instability", rate: 100, opts: []Option{WithGyroBiasInstability(math.Inf(1))}, want: ErrInvalidNoise},
		{name: "strict unknown", rate: 100, opts: []Option{WithStrictActivity()}, want: ErrUnknownActivity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.rate, "jogging", tt.opts...)
			if !errors.Is(err, tt.want) {
				t.Fatalf("New() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestInitialState(t *testing.T) {
	s := mustNew(t, 100, "walking", WithSeed(1))
	if s.Time() != 0 {
		t.Fatalf("Time() = %v, want 0", s.Time())
	}
	if s.TimeStep() != 0.01 || s.SampleRate() != 100 {
		t.Fatalf("TimeStep/SampleRate = %v/%v", s.TimeStep(), s.SampleRate())
	}
	if s.AccelBias() != (Vec3{}) || s.GyroBias() != (Vec3{}) {
		t.Fatal("bias should start at zero")
	}
	if s.Sample() != (Sample{}) {
		t.Fatal("latest sample should start at zero")
	}
	if s.Activity() != Walking {
		t.Fatalf("Activity() = %v, want walking", s.Activity())
	}
	if s.Noise() != DefaultNoiseConfig() {
		t.Fatalf("Noise() = %+v, want defaults", s.Noise())
	}
}

func TestAdvanceMovesClock(t *testing.T) {
	s := mustNew(t, 100, "sitting", WithSeed(1))
	for i := 1; i <= 250; i++ {
		s.Advance()
		if math.Abs(s.Time()-float64(i)*0.01) > 1e-9 {
			t.Fatalf("step %d: Time() = %v", i, s.Time())
		}
	}
}

func TestSittingIdealIndependentOfTime(t *testing.T) {
	s := mustNew(t, 50, "sitting", WithSeed(3))
	want := Sample{Accel: Vec3{0, 0, 9.81}}
	for range 500 {
		s.Advance()
		if s.Ideal() != want {
			t.Fatalf("t=%v: Ideal() = %+v, want %+v", s.Time(), s.Ideal(), want)
		}
	}
}

func TestNoiselessSimulatorFollowsMotionLaw(t *testing.T) {
	s := mustNew(t, 100, "walking", WithNoise(NoiseConfig{}), WithSeed(5))
	for range 100 {
		s.Advance()
		want := Walking.Motion(s.Time())
		if s.Sample() != want {
			t.Fatalf("t=%v: Sample() = %+v, want %+v", s.Time(), s.Sample(), want)
		}
		if s.Acceleration() != want.Accel || s.Gyroscope() != want.Gyro {
			t.Fatal("accessors disagree with Sample()")
		}
	}
}

func TestSameSeedSameStream(t *testing.T) {
	a := run(mustNew(t, 100, "walking", WithSeed(99)), 300)
	b := run(mustNew(t, 100, "walking", WithSeed(99)), 300)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("streams differ (-a +b):\n%s", diff)
	}

	c := run(mustNew(t, 100, "walking", WithSeed(100)), 300)
	if cmp.Equal(a, c) {
		t.Fatal("different seeds produced identical streams")
	}
}

func TestUnknownLabelBehavesLikeSitting(t *testing.T) {
	var logged []string
	logf := func(format string, v ...any) { logged = append(logged, fmt.Sprintf(format, v...)) }

	unknown := mustNew(t, 100, "jogging", WithSeed(7), WithLogf(logf))
	sitting := mustNew(t, 100, "sitting", WithSeed(7), WithLogf(logf))

	if unknown.Activity() != Sitting {
		t.Fatalf("Activity() = %v, want sitting", unknown.Activity())
	}
	if diff := cmp.Diff(run(sitting, 200), run(unknown, 200)); diff != "" {
		t.Fatalf("unknown label diverged from sitting (-sitting +unknown):\n%s", diff)
	}
	if len(logged) != 1 {
		t.Fatalf("logged %d messages, want 1: %q", len(logged), logged)
	}
}

func TestSetActivityTakesEffectOnNextAdvance(t *testing.T) {
	s := mustNew(t, 100, "sitting", WithNoise(NoiseConfig{}), WithSeed(1), WithLogf(nil))
	for range 12 {
		s.Advance()
	}

	s.SetActivityLabel("walking")
	if s.Ideal() != Sitting.Motion(s.Time()) {
		t.Fatal("switching activity must not change the latest sample")
	}

	s.Advance()
	if s.Ideal() != Walking.Motion(s.Time()) {
		t.Fatalf("Ideal() = %+v, want walking motion", s.Ideal())
	}

	s.SetActivity(Activity(9))
	if s.Activity() != Sitting {
		t.Fatalf("invalid SetActivity selected %v, want sitting", s.Activity())
	}

	s.SetActivityLabel("nope")
	if s.Activity() != Sitting {
		t.Fatalf("unknown label selected %v, want sitting", s.Activity())
	}

	s.SetActivity(Running)
	if s.Activity() != Running {
		t.Fatalf("Activity() = %v, want running", s.Activity())
	}
}

func TestWhiteNoiseStandardDeviation(t *testing.T) {
	const rate = 100.0
	s := mustNew(t, rate, "sitting",
		WithSeed(11),
		WithNoise(NoiseConfig{AccelNoiseDensity: 0.002, GyroNoiseDensity: 0.01}),
	)

	const steps = 5000
	az := make([]float64, steps)
	gx := make([]float64, steps)
	for i := range az {
		s.Advance()
		az[i] = s.Acceleration().Z()
		gx[i] = s.Gyroscope().X()
	}

	// density / sqrt(dt) = density * sqrt(rate)
	wantAccel := 0.002 * math.Sqrt(rate)
	wantGyro := 0.01 * math.Sqrt(rate)

	mean, std := stat.MeanStdDev(az, nil)
	if math.Abs(mean-Gravity) > 5*wantAccel/math.Sqrt(steps) {
		t.Fatalf("accel z mean = %v, want %v", mean, Gravity)
	}
	if math.Abs(std-wantAccel)/wantAccel > 0.05 {
		t.Fatalf("accel z std = %v, want %v", std, wantAccel)
	}

	if std := stat.StdDev(gx, nil); math.Abs(std-wantGyro)/wantGyro > 0.05 {
		t.Fatalf("gyro x std = %v, want %v", std, wantGyro)
	}
}

func TestBiasRandomWalkVarianceGrowsLinearly(t *testing.T) {
	const (
		rate        = 100.0
		runs        = 400
		instability = 0.1
	)
	dt := 1 / rate

	for _, steps := range []int{25, 100} {
		t.Run(fmt.Sprintf("T=%d", steps), func(t *testing.T) {
			biases := make([]float64, 0, 3*runs)
			for r := range runs {
				s := mustNew(t, rate, "sitting",
					WithSeed(uint64(1000+r)),
					WithNoise(NoiseConfig{AccelBiasInstability: instability}),
				)
				for range steps {
					s.Advance()
				}
				b := s.AccelBias()
				biases = append(biases, b[0], b[1], b[2])
			}

			want := float64(steps) * dt * instability * instability
			got := stat.Variance(biases, nil)
			if math.Abs(got-want)/want > 0.2 {
				t.Fatalf("bias variance = %v, want %v ± 20%%", got, want)
			}
		})
	}
}

func TestUnseededSimulatorsDiffer(t *testing.T) {
	a := run(mustNew(t, 100, "sitting"), 10)
	b := run(mustNew(t, 100, "sitting"), 10)
	if cmp.Equal(a, b) {
		t.Fatal("entropy-seeded simulators produced identical streams")
	}
}
