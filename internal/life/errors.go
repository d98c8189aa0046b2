package life

import "errors"

// Domain errors for grid configuration.
var (
	// ErrUnknownBoundary indicates a boundary policy name that is not recognised.
	ErrUnknownBoundary = errors.New("life: unknown boundary policy")
)
