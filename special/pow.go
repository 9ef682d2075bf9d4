package special

import (
	"fmt"

	"github.com/govalues/fixed"
)

// Pow evaluates x^y = e^(y * ln(x)) for x > 0, with [Ln] and [Exp].
type Pow[P fixed.Precision] struct {
	lnDepth  int
	expOrder int
}

// NewPow returns a power function that evaluates the logarithm with
// a series of depth lnDepth and the exponential with a Taylor series
// of order expOrder.
// NewPow returns a domain error if either argument is outside of [1, [MaxIterations]].
func NewPow[P fixed.Precision](lnDepth, expOrder int) (*Pow[P], error) {
	if err := validateIterations("depth", lnDepth); err != nil {
		return nil, err
	}
	if err := validateIterations("order", expOrder); err != nil {
		return nil, err
	}
	return &Pow[P]{lnDepth: lnDepth, expOrder: expOrder}, nil
}

// Eval returns x^y.
//
// Eval returns an error if:
//   - x < 0, or x = 0 and y < 0, see [fixed.ErrDomain];
//   - the result does not fit, see [fixed.ErrOverflow].
func (f *Pow[P]) Eval(x, y fixed.Fixed[P]) (fixed.Fixed[P], error) {
	// Special cases
	switch {
	case y.IsZero():
		return fixed.One[P](), nil
	case x.IsZero() && y.IsPos():
		return fixed.Zero[P](), nil
	case !x.IsPos():
		return fixed.Fixed[P]{}, fmt.Errorf("computing %v^%v: %w", x, y, fixed.ErrDomain)
	}
	// General case
	l, err := ln(x, f.lnDepth)
	if err != nil {
		return fixed.Fixed[P]{}, fmt.Errorf("computing %v^%v: %w", x, y, err)
	}
	p, err := l.Mul(y)
	if err != nil {
		return fixed.Fixed[P]{}, fmt.Errorf("computing %v^%v: %w", x, y, err)
	}
	z, err := exp(p, f.expOrder)
	if err != nil {
		return fixed.Fixed[P]{}, fmt.Errorf("computing %v^%v: %w", x, y, err)
	}
	return z, nil
}

// MustEval is like [Pow.Eval] but panics if computing error.
func (f *Pow[P]) MustEval(x, y fixed.Fixed[P]) fixed.Fixed[P] {
	z, err := f.Eval(x, y)
	if err != nil {
		panic(fmt.Sprintf("Pow.MustEval(%v, %v) failed: %v", x, y, err))
	}
	return z
}

// WithExponent returns the function x ↦ x^y.
func (f *Pow[P]) WithExponent(y fixed.Fixed[P]) Function[P] {
	return power[P]{pow: f, y: y}
}

type power[P fixed.Precision] struct {
	pow *Pow[P]
	y   fixed.Fixed[P]
}

func (f power[P]) Eval(x fixed.Fixed[P]) (fixed.Fixed[P], error) {
	return f.pow.Eval(x, f.y)
}

func (f power[P]) MustEval(x fixed.Fixed[P]) fixed.Fixed[P] {
	return f.pow.MustEval(x, f.y)
}
