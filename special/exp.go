package special

import (
	"fmt"

	"github.com/govalues/fixed"
)

// DefaultExpOrder is the default order of the Taylor series used by [Exp].
const DefaultExpOrder = 10

// expUnderflow is the argument below which e^x is 0 for every precision.
const expUnderflow = -400

// Exp evaluates e^x.
//
// The argument is reduced to x = k * ln(2) + r, where k = ⌊x / ln(2)⌋ and
// 0 <= r < ln(2), then e^r is computed with a Taylor series of a fixed order,
// and the result is multiplied by 2^k with an exact shift of the coefficient.
type Exp[P fixed.Precision] struct {
	order int
}

// NewExp returns an exponential evaluated with a Taylor series of the given order.
// NewExp returns a domain error if order is outside of [1, [MaxIterations]].
func NewExp[P fixed.Precision](order int) (*Exp[P], error) {
	if err := validateIterations("order", order); err != nil {
		return nil, err
	}
	return &Exp[P]{order: order}, nil
}

// DefaultExp returns an exponential with [DefaultExpOrder].
func DefaultExp[P fixed.Precision]() *Exp[P] {
	return &Exp[P]{order: DefaultExpOrder}
}

// Order returns the order of the Taylor series.
func (f *Exp[P]) Order() int {
	return f.order
}

// Eval returns e^x.
//
// Eval returns an overflow error if the result does not fit,
// and a domain error for [fixed.P0], which cannot represent ln(2).
// Results smaller than 10^-P are truncated to 0.
func (f *Exp[P]) Eval(x fixed.Fixed[P]) (fixed.Fixed[P], error) {
	return exp(x, f.order)
}

// MustEval is like [Exp.Eval] but panics if computing error.
func (f *Exp[P]) MustEval(x fixed.Fixed[P]) fixed.Fixed[P] {
	return mustEval("Exp", f.Eval, x)
}

func exp[P fixed.Precision](x fixed.Fixed[P], order int) (fixed.Fixed[P], error) {
	// Special cases
	switch {
	case x.IsZero():
		return fixed.One[P](), nil
	case x.Cmp(fixed.NewFromInt64[P](expUnderflow)) < 0:
		return fixed.Zero[P](), nil
	}

	ln2 := fixed.Ln2[P]()
	if ln2.IsZero() {
		return fixed.Fixed[P]{}, fmt.Errorf("computing exp(%v): precision %v is too low: %w", x, x.Prec(), fixed.ErrDomain)
	}

	// Range reduction
	q, r, err := x.QuoRem(ln2)
	if err != nil {
		return fixed.Fixed[P]{}, fmt.Errorf("computing exp(%v): %w", x, err)
	}
	if r.IsNeg() {
		q = q.MustSub(fixed.One[P]())
		r = r.MustAdd(ln2)
	}
	k, ok := q.Int64()
	if !ok {
		return fixed.Fixed[P]{}, fmt.Errorf("computing exp(%v): %w", x, fixed.ErrOverflow)
	}

	// Taylor series
	term := fixed.One[P]()
	sum := term
	for i := 1; i <= order; i++ {
		term, err = term.Mul(r)
		if err != nil {
			return fixed.Fixed[P]{}, fmt.Errorf("computing exp(%v): %w", x, err)
		}
		term, err = term.QuoInt64(int64(i))
		if err != nil {
			return fixed.Fixed[P]{}, fmt.Errorf("computing exp(%v): %w", x, err)
		}
		sum, err = sum.Add(term)
		if err != nil {
			return fixed.Fixed[P]{}, fmt.Errorf("computing exp(%v): %w", x, err)
		}
	}

	// Reconstruction
	if k < 0 {
		if k < -1<<16 {
			return fixed.Zero[P](), nil
		}
		return sum.Rsh(uint(-k)), nil
	}
	if k > 1<<16 {
		return fixed.Fixed[P]{}, fmt.Errorf("computing exp(%v): %w", x, fixed.ErrOverflow)
	}
	y, err := sum.Lsh(uint(k))
	if err != nil {
		return fixed.Fixed[P]{}, fmt.Errorf("computing exp(%v): %w", x, err)
	}
	return y, nil
}
