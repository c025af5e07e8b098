// Package time provides the time-domain statistics applied to each buffered
// sensor channel.
package time

// DC returns the mean (DC offset) of the signal, or 0 for an empty signal.
func DC(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}
	// Use Kahan summation for numerical stability.
	var sum, c float64
	for _, x := range signal {
		y := x - c
		t := sum + y
		c = (t - sum) - y
		sum = t
	}

	return sum / float64(len(signal))
}

// Variance returns the population variance sum((x-mean)^2)/N of the signal
// around its own mean. The divisor is N, not N-1, so values from equally
// sized sliding windows are directly comparable. Fewer than two samples
// yield 0.
func Variance(signal []float64) float64 {
	if len(signal) < 2 {
		return 0
	}
	return VarianceAround(signal, DC(signal))
}

// VarianceAround is [Variance] with a precomputed mean, for callers that
// already need the mean as a feature of its own.
func VarianceAround(signal []float64, mean float64) float64 {
	if len(signal) < 2 {
		return 0
	}

	var sumSq float64
	for _, x := range signal {
		d := x - mean
		sumSq += d * d
	}

	return sumSq / float64(len(signal))
}

// Demean writes signal minus its mean into dst, growing dst if needed, and
// returns dst and the removed mean.
func Demean(dst, signal []float64) ([]float64, float64) {
	if cap(dst) < len(signal) {
		dst = make([]float64, len(signal))
	}
	dst = dst[:len(signal)]

	mean := DC(signal)
	for i, x := range signal {
		dst[i] = x - mean
	}

	return dst, mean
}
