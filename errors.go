package fixed

import "errors"

// Errors returned by the package and by the packages built on top of it.
// Callers match them with [errors.Is]; the returned errors carry context
// such as the operation and the offending value.
var (
	// ErrOutOfRange is returned when an input lies outside a supported interval.
	ErrOutOfRange = errors.New("out of range")
	// ErrDomain is returned when an input is outside the mathematical domain,
	// e.g. ln of a non-positive number, or when a constructor argument is invalid.
	ErrDomain = errors.New("outside of domain")
	// ErrDivisionByZero is returned when a divisor is zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrOverflow is returned when a result does not fit the representation.
	ErrOverflow = errors.New("overflow")
)

var (
	errInvalidFixed   = errors.New("invalid fixed-point number")
	errPrecisionRange = errors.New("precision out of range")
)
