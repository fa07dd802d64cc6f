package jubjub

import "errors"

var (
	// ErrInvalidLength is returned when an encoding has the wrong size.
	ErrInvalidLength = errors.New("jubjub: invalid encoding length")

	// ErrNotInField is returned when a decoded coordinate is not below the
	// base field modulus.
	ErrNotInField = errors.New("jubjub: coordinate is not in the field")

	// ErrNotOnCurve is returned when no curve point has the decoded coordinate.
	ErrNotOnCurve = errors.New("jubjub: point is not on the curve")

	// ErrNotPrimeOrder is returned when a decoded point is outside the
	// prime-order subgroup.
	ErrNotPrimeOrder = errors.New("jubjub: point is not in the prime-order subgroup")

	// ErrNonCanonicalScalar is returned when a scalar encoding is not below r_J.
	ErrNonCanonicalScalar = errors.New("jubjub: scalar is not canonical")

	// ErrDuplicateGenerator is returned by NewParams when two generators collide.
	ErrDuplicateGenerator = errors.New("jubjub: duplicate generator")
)
