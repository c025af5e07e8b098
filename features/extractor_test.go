package features

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/cwbudde/algo-imu/dsp/core"
	"github.com/cwbudde/algo-imu/dsp/window"
	"github.com/cwbudde/algo-imu/imu"
	"github.com/cwbudde/algo-imu/internal/testutil"
	frequencystats "github.com/cwbudde/algo-imu/stats/frequency"
)

func mustExtractor(t *testing.T, size int, rate float64, opts ...Option) *Extractor {
	t.Helper()
	e, err := NewExtractor(size, rate, opts...)
	if err != nil {
		t.Fatalf("NewExtractor(%d, %v): %v", size, rate, err)
	}
	return e
}

func addAccelZ(e *Extractor, values ...float64) {
	for _, v := range values {
		e.AddSample(imu.Vec3{0, 0, v}, imu.Vec3{})
	}
}

func TestNewExtractorValidation(t *testing.T) {
	if _, err := NewExtractor(0, 100); !errors.Is(err, core.ErrInvalidWindowSize) {
		t.Fatalf("window 0: err = %v", err)
	}
	if _, err := NewExtractor(4, 0); !errors.Is(err, core.ErrInvalidSampleRate) {
		t.Fatalf("rate 0: err = %v", err)
	}
	if _, err := NewExtractor(4, math.Inf(1)); !errors.Is(err, core.ErrInvalidSampleRate) {
		t.Fatalf("rate inf: err = %v", err)
	}
}

func TestComputeFeaturesEmptyWindow(t *testing.T) {
	e := mustExtractor(t, 8, 100)
	if got := e.ComputeFeatures(); got != (Vector{}) {
		t.Fatalf("ComputeFeatures() = %v, want zeros", got)
	}

	addAccelZ(e, 9.81)
	got := e.ComputeFeatures()
	want := Vector{Mean: 9.81}
	if got != want {
		t.Fatalf("one sample: ComputeFeatures() = %v, want %v", got, want)
	}
}

func TestComputeFeaturesSlidingStatistics(t *testing.T) {
	e := mustExtractor(t, 4, 100)
	addAccelZ(e, 9.0, 9.2, 9.4, 9.6, 9.8)

	testutil.RequireSliceNearlyEqual(t, e.Window().Channel(AccelZ), []float64{9.2, 9.4, 9.6, 9.8}, 1e-12)

	got := e.ComputeFeatures()
	testutil.RequireNear(t, "mean", got[Mean], 9.5, 1e-12)
	testutil.RequireNear(t, "variance", got[Variance], 0.05, 1e-12)

	// Demeaned [-0.3 -0.1 0.1 0.3]: bin 1 = -0.4+0.4i, the only analyzed bin.
	testutil.RequireNear(t, "dominant", got[DominantFrequency], 25, 1e-12)
	testutil.RequireNear(t, "energy", got[SpectralEnergy], 0.32, 1e-12)
}

func TestComputeFeaturesConstantSignal(t *testing.T) {
	e := mustExtractor(t, 32, 100)
	addAccelZ(e, testutil.DC(imu.Gravity, 40)...)

	got := e.ComputeFeatures()
	if got[Variance] != 0 {
		t.Fatalf("variance = %v, want 0", got[Variance])
	}
	if got[SpectralEnergy] > 1e-20 {
		t.Fatalf("energy = %v, want ~0", got[SpectralEnergy])
	}
}

func TestComputeFeaturesDetectsSineFrequency(t *testing.T) {
	const (
		rate = 64.0
		size = 64
	)
	for _, freq := range []float64{1, 3, 8, 13, 31} {
		e := mustExtractor(t, size, rate)
		for _, v := range testutil.DeterministicSine(freq, rate, 1, 3*size) {
			e.AddSample(imu.Vec3{0, 0, imu.Gravity + v}, imu.Vec3{})
		}

		got := e.ComputeFeatures()[DominantFrequency]
		if math.Abs(got-freq) > e.Resolution() {
			t.Fatalf("freq %v: dominant = %v (resolution %v)", freq, got, e.Resolution())
		}
	}
}

func TestComputeFeaturesIgnoresOtherChannels(t *testing.T) {
	a := mustExtractor(t, 16, 100)
	b := mustExtractor(t, 16, 100)
	noise := testutil.DeterministicNoise(5, 3, 16*6)

	for i := range 16 {
		z := 9.81 + noise[i]
		a.AddSample(imu.Vec3{0, 0, z}, imu.Vec3{})
		b.AddSample(imu.Vec3{noise[16+i], noise[32+i], z}, imu.Vec3{noise[48+i], noise[64+i], noise[80+i]})
	}

	if a.ComputeFeatures() != b.ComputeFeatures() {
		t.Fatal("features depend on channels other than accel z")
	}
}

func TestChannelFeaturesGyro(t *testing.T) {
	sim, err := imu.New(100, "walking", imu.WithNoise(imu.NoiseConfig{}))
	if err != nil {
		t.Fatal(err)
	}
	e := mustExtractor(t, 50, sim.SampleRate())
	for range 120 {
		sim.Advance()
		e.AddSample(sim.Acceleration(), sim.Gyroscope())
	}

	gy := e.ChannelFeatures(GyroY)
	testutil.RequireNear(t, "gyro y mean", gy[Mean], 0, 1e-9)
	// 20 deg/s amplitude sine: variance A^2/2.
	testutil.RequireNear(t, "gyro y variance", gy[Variance], 200, 1e-6)
	testutil.RequireNear(t, "gyro y dominant", gy[DominantFrequency], 2, 1e-12)

	az := e.ComputeFeatures()
	testutil.RequireNear(t, "accel z mean", az[Mean], imu.Gravity, 1e-9)
	testutil.RequireNear(t, "accel z dominant", az[DominantFrequency], 2, 1e-12)
	// |X[1]| = A*N/2 = 12.5.
	testutil.RequireNear(t, "accel z energy", az[SpectralEnergy], 156.25, 1e-6)

	gx := e.ChannelFeatures(GyroX)
	if gx != (Vector{}) {
		t.Fatalf("gyro x features = %v, want zeros", gx)
	}
}

func TestTransformsAgree(t *testing.T) {
	dft := mustExtractor(t, 64, 100)
	fft := mustExtractor(t, 64, 100, WithTransform(frequencystats.TransformFFT))

	sim, err := imu.New(100, "running", imu.WithSeed(21))
	if err != nil {
		t.Fatal(err)
	}
	for range 200 {
		sim.Advance()
		dft.AddSample(sim.Acceleration(), sim.Gyroscope())
		fft.AddSample(sim.Acceleration(), sim.Gyroscope())
	}

	opt := cmpopts.EquateApprox(1e-9, 1e-9)
	for c := range NumChannels {
		if diff := cmp.Diff(dft.ChannelFeatures(c), fft.ChannelFeatures(c), opt); diff != "" {
			t.Fatalf("channel %v (-dft +fft):\n%s", c, diff)
		}
	}
}

func TestVectorSliceAndNames(t *testing.T) {
	v := Vector{1, 2, 3, 4}
	s := v.Slice()
	s[0] = 99
	if v[0] != 1 {
		t.Fatal("Slice must copy")
	}
	if diff := cmp.Diff([]string{"Mean_Az", "Var_Az", "Dom_Freq", "Energy"}, Names[:]); diff != "" {
		t.Fatalf("Names (-want +got):\n%s", diff)
	}
}

func TestTaperKeepsDominantFrequency(t *testing.T) {
	plain := mustExtractor(t, 64, 64)
	hann := mustExtractor(t, 64, 64, WithTaper(window.TypeHann))

	x := testutil.DeterministicSine(8, 64, 1, 64)
	for _, v := range x {
		s := imu.Vec3{0, 0, imu.Gravity + v}
		plain.AddSample(s, imu.Vec3{})
		hann.AddSample(s, imu.Vec3{})
	}

	p, h := plain.ComputeFeatures(), hann.ComputeFeatures()
	testutil.RequireNear(t, "plain dominant", p[DominantFrequency], 8, 1e-9)
	testutil.RequireNear(t, "hann dominant", h[DominantFrequency], 8, 1e-9)
	testutil.RequireNear(t, "mean", h[Mean], p[Mean], 1e-12)
	testutil.RequireNear(t, "variance", h[Variance], p[Variance], 1e-12)
	if h[SpectralEnergy] >= p[SpectralEnergy] {
		t.Fatalf("hann energy %v should be below rectangular %v", h[SpectralEnergy], p[SpectralEnergy])
	}
}
