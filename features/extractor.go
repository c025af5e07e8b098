package features

import (
	"fmt"

	"github.com/cwbudde/algo-imu/dsp/core"
	"github.com/cwbudde/algo-imu/dsp/window"
	"github.com/cwbudde/algo-imu/imu"
	frequencystats "github.com/cwbudde/algo-imu/stats/frequency"
	timestats "github.com/cwbudde/algo-imu/stats/time"
)

// Feature positions within a Vector.
const (
	Mean = iota
	Variance
	DominantFrequency
	SpectralEnergy

	NumFeatures
)

// Names are the column names of the features in Vector order.
var Names = [NumFeatures]string{"Mean_Az", "Var_Az", "Dom_Freq", "Energy"}

// Vector is one feature vector: mean, population variance, dominant
// frequency in Hz and spectral energy, in that order.
type Vector [NumFeatures]float64

// Slice returns the features as a new slice.
func (v Vector) Slice() []float64 {
	out := make([]float64, NumFeatures)
	copy(out, v[:])
	return out
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithTransform selects the spectrum backend. The direct DFT is the
// default; the FFT yields the same bins for long windows.
func WithTransform(t frequencystats.Transform) Option {
	return func(e *Extractor) {
		e.transform = t
	}
}

// WithTaper windows each channel before its spectrum is taken. Tapering
// lowers leakage between bins but scales the spectral energy, so the
// default is rectangular.
func WithTaper(t window.Type) Option {
	return func(e *Extractor) {
		e.taper = t
	}
}

// Extractor computes feature vectors over a sliding window. It is not safe
// for concurrent use.
type Extractor struct {
	window     *Window
	sampleRate float64
	transform  frequencystats.Transform
	taper      window.Type
	analyzer   *frequencystats.Analyzer
	scratch    []float64
}

// NewExtractor returns an Extractor keeping windowSize samples recorded at
// sampleRateHz.
func NewExtractor(windowSize int, sampleRateHz float64, opts ...Option) (*Extractor, error) {
	if err := core.ValidateSampleRate(sampleRateHz); err != nil {
		return nil, fmt.Errorf("features: %w", err)
	}
	w, err := NewWindow(windowSize)
	if err != nil {
		return nil, err
	}

	e := &Extractor{
		window:     w,
		sampleRate: sampleRateHz,
		scratch:    make([]float64, 0, windowSize),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	e.analyzer = frequencystats.NewAnalyzer(e.transform, frequencystats.WithTaper(e.taper))
	return e, nil
}

// AddSample records one accelerometer and gyroscope reading.
func (e *Extractor) AddSample(accel, gyro imu.Vec3) {
	e.window.Add(accel, gyro)
}

// ComputeFeatures returns the features of the vertical acceleration
// channel over the current window.
func (e *Extractor) ComputeFeatures() Vector {
	return e.ChannelFeatures(AccelZ)
}

// ChannelFeatures returns the features of channel c over the current
// window. It panics for an invalid channel.
func (e *Extractor) ChannelFeatures(c Channel) Vector {
	e.scratch = e.window.copyChannel(e.scratch, c)
	x := e.scratch

	mean := timestats.DC(x)
	freq := e.analyzer.Analyze(x, e.sampleRate)

	return Vector{
		Mean:              mean,
		Variance:          timestats.VarianceAround(x, mean),
		DominantFrequency: freq.DominantFrequency,
		SpectralEnergy:    freq.Energy,
	}
}

// Window returns the underlying sample window.
func (e *Extractor) Window() *Window {
	return e.window
}

// SampleRate returns the sampling rate used for frequency conversion.
func (e *Extractor) SampleRate() float64 {
	return e.sampleRate
}

// Resolution returns the frequency resolution in Hz of a full window.
func (e *Extractor) Resolution() float64 {
	return e.sampleRate / float64(e.window.Cap())
}
