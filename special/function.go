// Package special implements deterministic approximations of special
// functions over [fixed.Fixed] numbers: the exponential, the natural logarithm,
// the square root, and the standard normal distribution functions.
//
// Every function is evaluated with a fixed number of iterations chosen at
// construction, with no convergence test, so the cost of an evaluation is
// bounded and the result is the same on every platform.
//
// Each function also has a table-backed variant, see [Tabulated], that trades
// a one-time sampling pass and memory for constant-time evaluation.
package special

import (
	"fmt"

	"github.com/govalues/fixed"
)

// Function is implemented by every evaluator in this package.
//
// Eval returns an error wrapping [fixed.ErrDomain], [fixed.ErrOutOfRange],
// [fixed.ErrOverflow] or [fixed.ErrDivisionByZero] instead of a result when
// the input cannot be evaluated.
// MustEval returns the same result as Eval for valid inputs and panics
// otherwise; it is intended for inputs the caller has already validated.
type Function[P fixed.Precision] interface {
	Eval(x fixed.Fixed[P]) (fixed.Fixed[P], error)
	MustEval(x fixed.Fixed[P]) fixed.Fixed[P]
}

// MaxIterations is the maximum series order or iteration depth.
const MaxIterations = 1000

func validateIterations(name string, n int) error {
	if n < 1 || n > MaxIterations {
		return fmt.Errorf("%v %v is outside of [1, %v]: %w", name, n, MaxIterations, fixed.ErrDomain)
	}
	return nil
}

func mustEval[P fixed.Precision](name string, f func(fixed.Fixed[P]) (fixed.Fixed[P], error), x fixed.Fixed[P]) fixed.Fixed[P] {
	y, err := f(x)
	if err != nil {
		panic(fmt.Sprintf("%v.MustEval(%v) failed: %v", name, x, err))
	}
	return y
}
