package core

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSampleRate is returned for sample rates that are not finite and > 0.
	ErrInvalidSampleRate = errors.New("sample rate must be finite and > 0")
	// ErrInvalidWindowSize is returned for window sizes < 1.
	ErrInvalidWindowSize = errors.New("window size must be > 0")
)

// ValidateSampleRate returns an error wrapping [ErrInvalidSampleRate] if
// rate cannot be used to derive a time step.
func ValidateSampleRate(rate float64) error {
	if rate <= 0 || !IsFinite(rate) {
		return fmt.Errorf("%w: %v", ErrInvalidSampleRate, rate)
	}
	return nil
}

// ValidateWindowSize returns an error wrapping [ErrInvalidWindowSize] if
// size is not positive.
func ValidateWindowSize(size int) error {
	if size <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWindowSize, size)
	}
	return nil
}
