// Package frequency extracts frequency-domain features from short windows of
// a single sensor channel.
package frequency

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-imu/dsp/buffer"
	"github.com/cwbudde/algo-imu/dsp/spectrum"
	"github.com/cwbudde/algo-imu/dsp/window"
	timestats "github.com/cwbudde/algo-imu/stats/time"
)

// Features holds the frequency-domain features of one window.
type Features struct {
	DominantFrequency float64 // Hz, bin index * sampleRate / N
	DominantBin       int
	Energy            float64 // sum of |X[k]|^2 over the analyzed bins
}

// Transform selects how the spectrum is computed.
type Transform int

const (
	// TransformDFT evaluates each bin by direct summation, O(N^2).
	TransformDFT Transform = iota
	// TransformFFT uses an FFT plan cached per window length.
	TransformFFT
)

// String returns the configuration name of t.
func (t Transform) String() string {
	switch t {
	case TransformDFT:
		return "dft"
	case TransformFFT:
		return "fft"
	default:
		return fmt.Sprintf("Transform(%d)", int(t))
	}
}

// ParseTransform maps "dft" or "fft" to a Transform.
func ParseTransform(name string) (Transform, error) {
	switch name {
	case "dft", "":
		return TransformDFT, nil
	case "fft":
		return TransformFFT, nil
	default:
		return TransformDFT, fmt.Errorf("frequency: unknown transform %q", name)
	}
}

// Analyze computes the dominant frequency and spectral energy of signal
// sampled at sampleRate using the direct DFT.
func Analyze(signal []float64, sampleRate float64) Features {
	return NewAnalyzer(TransformDFT).Analyze(signal, sampleRate)
}

// FromParts applies the feature rules to bins 0..n/2 of a length-n
// transform given as real and imaginary parts.
//
// Bin 0 (DC) and everything from n/2 upward are skipped, so bins
// 1..n/2-1 are analyzed. The dominant bin is the first bin holding the
// strictly largest magnitude; when every analyzed magnitude is zero the
// dominant bin is 0 and the dominant frequency is 0 Hz.
func FromParts(re, im []float64, n int, sampleRate float64) Features {
	var mag, pow []float64
	return fromParts(re, im, n, sampleRate, &mag, &pow)
}

func fromParts(re, im []float64, n int, sampleRate float64, magBuf, powBuf *[]float64) Features {
	last := n / 2 // exclusive
	if n < 2 || last <= 1 || len(re) < last || len(im) < last {
		return Features{}
	}

	bins := last - 1
	mag := grow(*magBuf, bins)
	pow := grow(*powBuf, bins)
	*magBuf, *powBuf = mag, pow

	spectrum.MagnitudeFromParts(mag, re[1:last], im[1:last])
	spectrum.PowerFromParts(pow, re[1:last], im[1:last])

	var f Features
	maxMag := 0.0
	for i := range bins {
		f.Energy += pow[i]
		if mag[i] > maxMag {
			maxMag = mag[i]
			f.DominantBin = i + 1
		}
	}
	f.DominantFrequency = spectrum.BinFrequency(f.DominantBin, n, sampleRate)

	return f
}

func grow(s []float64, n int) []float64 {
	if cap(s) < n {
		return make([]float64, n)
	}
	return s[:n]
}

// Analyzer computes [Features] repeatedly while reusing its scratch memory
// and, for [TransformFFT], its FFT plan. An Analyzer is not safe for
// concurrent use.
type Analyzer struct {
	transform Transform
	taper     window.Type
	coeffs    []float64
	pool      *buffer.Pool
	fft       *spectrum.FFT
	re, im    []float64
	mag, pow  []float64
}

// AnalyzerOption configures an Analyzer.
type AnalyzerOption func(*Analyzer)

// WithTaper multiplies the demeaned signal by a periodic window before the
// transform. The default rectangular taper leaves the signal untouched.
func WithTaper(t window.Type) AnalyzerOption {
	return func(a *Analyzer) {
		a.taper = t
	}
}

// NewAnalyzer returns an Analyzer using the given transform.
func NewAnalyzer(t Transform, opts ...AnalyzerOption) *Analyzer {
	a := &Analyzer{
		transform: t,
		pool:      buffer.NewPool(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(a)
		}
	}
	return a
}

// Taper returns the configured window type.
func (a *Analyzer) Taper() window.Type {
	return a.taper
}

// Transform returns the configured transform.
func (a *Analyzer) Transform() Transform {
	return a.transform
}

// Analyze computes the features of signal sampled at sampleRate. The signal
// is demeaned, then tapered, before the transform. Fewer than two samples yield zero
// features.
func (a *Analyzer) Analyze(signal []float64, sampleRate float64) Features {
	n := len(signal)
	if n < 2 {
		return Features{}
	}

	scratch := a.pool.Get(n)
	defer a.pool.Put(scratch)

	x, _ := timestats.Demean(scratch.Samples(), signal)
	if a.taper != window.TypeRectangular {
		if len(a.coeffs) != n {
			a.coeffs = window.Generate(a.taper, n, window.WithPeriodic())
		}
		vecmath.MulBlockInPlace(x, a.coeffs)
	}

	switch a.transform {
	case TransformFFT:
		if a.fft == nil || a.fft.Len() != n {
			plan, err := spectrum.NewFFT(n)
			if err != nil {
				return Features{}
			}
			a.fft = plan
		}
		var err error
		a.re, a.im, err = a.fft.Parts(a.re, a.im, x)
		if err != nil {
			return Features{}
		}
	default:
		a.re, a.im = spectrum.DFTParts(a.re, a.im, x)
	}

	return fromParts(a.re, a.im, n, sampleRate, &a.mag, &a.pow)
}
