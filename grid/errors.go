// Package grid defines sentinel errors for construction and access
// failures. Match them with errors.Is; both indicate caller error, not a
// transient condition, so there is no retry path.
package grid

import "errors"

var (
	// ErrInvalidShape indicates construction input that cannot be arranged
	// into a rectangular grid of the requested or inferred width: a flat
	// slice whose length is not divisible by the width (width 0 with
	// nonempty data included), or matrix rows of differing lengths.
	ErrInvalidShape = errors.New("grid: data does not form a rectangular grid")

	// ErrOutOfBounds indicates an access whose linear index — given
	// directly or projected from a Point — falls outside [0, Area()).
	// Accessors panic with an error wrapping this sentinel.
	ErrOutOfBounds = errors.New("grid: index out of bounds")
)
