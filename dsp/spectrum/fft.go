package spectrum

import (
	"fmt"

	"gonum.org/v1/gonum/dsp/fourier"
)

// FFT computes the same one-sided bins as [DFTParts] for a fixed sequence
// length using gonum's FFT. An FFT is not safe for concurrent use.
type FFT struct {
	n     int
	plan  *fourier.FFT
	coeff []complex128
}

// NewFFT returns an FFT for sequences of length n.
func NewFFT(n int) (*FFT, error) {
	if n <= 0 {
		return nil, fmt.Errorf("fft length must be > 0: %d", n)
	}
	return &FFT{
		n:     n,
		plan:  fourier.NewFFT(n),
		coeff: make([]complex128, BinCount(n)),
	}, nil
}

// Len returns the sequence length the plan was built for.
func (f *FFT) Len() int {
	return f.n
}

// Coefficients returns bins 0..n/2 of the transform of x. The returned slice
// is owned by f and overwritten by the next call.
func (f *FFT) Coefficients(x []float64) ([]complex128, error) {
	if len(x) != f.n {
		return nil, fmt.Errorf("fft input length %d does not match plan length %d", len(x), f.n)
	}
	return f.plan.Coefficients(f.coeff, x), nil
}

// Parts is like [FFT.Coefficients] but splits the bins into re and im,
// reusing their capacity when possible.
func (f *FFT) Parts(re, im, x []float64) ([]float64, []float64, error) {
	coeff, err := f.Coefficients(x)
	if err != nil {
		return re, im, err
	}
	bins := len(coeff)
	if cap(re) < bins {
		re = make([]float64, bins)
	}
	if cap(im) < bins {
		im = make([]float64, bins)
	}
	re, im = re[:bins], im[:bins]
	for k, c := range coeff {
		re[k] = real(c)
		im[k] = imag(c)
	}
	return re, im, nil
}
