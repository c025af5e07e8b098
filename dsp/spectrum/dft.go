package spectrum

import (
	"math"

	"github.com/cwbudde/algo-imu/dsp/core"
)

// DFT returns bins 0..len(x)/2 of the discrete Fourier transform of x,
// computed by direct summation.
func DFT(x []float64) []complex128 {
	re, im := DFTParts(nil, nil, x)
	out := make([]complex128, len(re))
	for k := range out {
		out[k] = complex(re[k], im[k])
	}
	return out
}

// DFTParts computes bins 0..len(x)/2 of the discrete Fourier transform of x
// by direct summation, writing real and imaginary parts into re and im
// (reused when their capacity allows). Cost is O(N^2).
func DFTParts(re, im, x []float64) ([]float64, []float64) {
	n := len(x)
	bins := BinCount(n)
	re = core.EnsureLen(re, bins)
	im = core.EnsureLen(im, bins)

	w := -2 * math.Pi / float64(n)
	for k := range bins {
		var sr, si float64
		for i, v := range x {
			// k*i mod n keeps the phase argument small for large indices.
			s, c := math.Sincos(w * float64((k*i)%n))
			sr += v * c
			si += v * s
		}
		re[k] = sr
		im[k] = si
	}
	return re, im
}
