package life

import "errors"

// Sentinel errors returned by Grid and Engine operations. Callers match them
// with errors.Is; the values carry coordinate/dimension context when wrapped.
var (
	// ErrInvalidDimension reports a non-positive width or height at construction.
	ErrInvalidDimension = errors.New("life: width and height must be positive")
	// ErrOutOfBounds reports a coordinate outside the grid extent. It is never
	// clamped away: an out-of-range access is a caller bug.
	ErrOutOfBounds = errors.New("life: coordinate out of bounds")
	// ErrInvalidProbability reports a randomize probability outside [0, 1].
	ErrInvalidProbability = errors.New("life: probability must be within [0, 1]")
)
