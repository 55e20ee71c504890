package vdbscan

import "errors"

var (
	// ErrConfiguration reports invalid clustering parameters: a non-positive
	// epsilon, MinPoints < 1, an invalid distance matrix, or a decay policy
	// that does not strictly reduce epsilon.
	ErrConfiguration = errors.New("invalid configuration")

	// ErrDimensionMismatch reports inputs whose dimensions disagree: a
	// non-square matrix or points of differing dimensionality.
	ErrDimensionMismatch = errors.New("dimension mismatch")
)
