package special

import (
	"fmt"

	"github.com/govalues/fixed"
)

// DefaultSqrtDepth is the default number of Newton iterations used by [Sqrt].
const DefaultSqrtDepth = 12

// Sqrt evaluates the square root with a fixed number of Newton iterations
//
//	y = (y + x / y) / 2
//
// starting from x / 2, or from x when x / 2 is truncated to 0.
// Far from the root each iteration only about halves the error,
// so inputs far from 1 lose digits at the default depth:
// at P18 with depth 12, √1000000 = 1000.000153299151163754 and
// √0.000000000000000001 = 0.000244140625001364.
// Use depth 20 for inputs up to 10^6 and depth 40 for inputs down to 10^-18.
type Sqrt[P fixed.Precision] struct {
	depth int
}

// NewSqrt returns a square root evaluated with the given number of iterations.
// NewSqrt returns a domain error if depth is outside of [1, [MaxIterations]].
func NewSqrt[P fixed.Precision](depth int) (*Sqrt[P], error) {
	if err := validateIterations("depth", depth); err != nil {
		return nil, err
	}
	return &Sqrt[P]{depth: depth}, nil
}

// DefaultSqrt returns a square root with [DefaultSqrtDepth].
func DefaultSqrt[P fixed.Precision]() *Sqrt[P] {
	return &Sqrt[P]{depth: DefaultSqrtDepth}
}

// Depth returns the number of Newton iterations.
func (f *Sqrt[P]) Depth() int {
	return f.depth
}

// Eval returns √x.
//
// Eval returns a domain error if x < 0.
func (f *Sqrt[P]) Eval(x fixed.Fixed[P]) (fixed.Fixed[P], error) {
	return sqrt(x, f.depth)
}

// MustEval is like [Sqrt.Eval] but panics if computing error.
func (f *Sqrt[P]) MustEval(x fixed.Fixed[P]) fixed.Fixed[P] {
	return mustEval("Sqrt", f.Eval, x)
}

func sqrt[P fixed.Precision](x fixed.Fixed[P], depth int) (fixed.Fixed[P], error) {
	// Special cases
	switch {
	case x.IsNeg():
		return fixed.Fixed[P]{}, fmt.Errorf("computing sqrt(%v): %w", x, fixed.ErrDomain)
	case x.IsZero():
		return fixed.Zero[P](), nil
	}

	// Initial guess
	y := x.Rsh(1)
	if y.IsZero() {
		y = x
	}

	// Newton's method
	for i := 0; i < depth; i++ {
		q, err := x.Quo(y)
		if err != nil {
			return fixed.Fixed[P]{}, fmt.Errorf("computing sqrt(%v): %w", x, err)
		}
		y, err = y.Add(q)
		if err != nil {
			return fixed.Fixed[P]{}, fmt.Errorf("computing sqrt(%v): %w", x, err)
		}
		y = y.Rsh(1)
	}
	return y, nil
}
