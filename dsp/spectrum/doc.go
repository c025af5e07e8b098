// Package spectrum computes one-sided spectra of short real sequences.
//
// [DFTParts] evaluates the discrete Fourier transform by direct summation,
// which is exact enough and cheap enough for the analysis windows used in
// activity recognition (tens to a few hundred samples). [FFT] produces the
// same bins through gonum's mixed-radix FFT for longer windows. Both use the
// unnormalized forward convention
//
//	X[k] = sum_n x[n] * exp(-2*pi*i*k*n/N),  k = 0..N/2
//
// so their outputs are interchangeable.
package spectrum
