package special

import (
	"fmt"

	"github.com/govalues/fixed"
)

// DefaultLnDepth is the default number of terms, after the first one,
// of the series used by [Ln].
const DefaultLnDepth = 12

// Ln evaluates the natural logarithm.
//
// The argument is reduced to [1, 2] by exact halvings and doublings,
// counted by s, and then
//
//	ln(x) = 2 * artanh(t) + s * ln(2), where t = (x - 1) / (x + 1)
//	artanh(t) = t + t^3/3 + t^5/5 + ... + t^(2n+1)/(2n+1)
//
// with n equal to the depth.
type Ln[P fixed.Precision] struct {
	depth int
}

// NewLn returns a logarithm evaluated with a series of the given depth.
// NewLn returns a domain error if depth is outside of [1, [MaxIterations]].
func NewLn[P fixed.Precision](depth int) (*Ln[P], error) {
	if err := validateIterations("depth", depth); err != nil {
		return nil, err
	}
	return &Ln[P]{depth: depth}, nil
}

// DefaultLn returns a logarithm with [DefaultLnDepth].
func DefaultLn[P fixed.Precision]() *Ln[P] {
	return &Ln[P]{depth: DefaultLnDepth}
}

// Depth returns the number of series terms after the first one.
func (f *Ln[P]) Depth() int {
	return f.depth
}

// Eval returns ln(x).
//
// Eval returns a domain error if x <= 0.
func (f *Ln[P]) Eval(x fixed.Fixed[P]) (fixed.Fixed[P], error) {
	return ln(x, f.depth)
}

// MustEval is like [Ln.Eval] but panics if computing error.
func (f *Ln[P]) MustEval(x fixed.Fixed[P]) fixed.Fixed[P] {
	return mustEval("Ln", f.Eval, x)
}

func ln[P fixed.Precision](x fixed.Fixed[P], depth int) (fixed.Fixed[P], error) {
	// Special cases
	switch {
	case !x.IsPos():
		return fixed.Fixed[P]{}, fmt.Errorf("computing ln(%v): %w", x, fixed.ErrDomain)
	case x.IsOne():
		return fixed.Zero[P](), nil
	}

	// Range reduction
	one := fixed.One[P]()
	two := fixed.NewFromInt64[P](2)
	y, s := x, int64(0)
	for y.Cmp(two) > 0 {
		y = y.Rsh(1)
		s++
	}
	for y.Cmp(one) < 0 {
		y = y.MustLsh(1)
		s--
	}

	// Series
	num := y.MustSub(one)
	den := y.MustAdd(one)
	t, err := num.Quo(den)
	if err != nil {
		return fixed.Fixed[P]{}, fmt.Errorf("computing ln(%v): %w", x, err)
	}
	t2 := t.MustMul(t)
	term, sum := t, t
	for n := 1; n <= depth; n++ {
		term = term.MustMul(t2)
		a, err := term.QuoInt64(int64(2*n + 1))
		if err != nil {
			return fixed.Fixed[P]{}, fmt.Errorf("computing ln(%v): %w", x, err)
		}
		sum = sum.MustAdd(a)
	}

	// Reconstruction
	z, err := sum.MulInt64(2)
	if err != nil {
		return fixed.Fixed[P]{}, fmt.Errorf("computing ln(%v): %w", x, err)
	}
	shift, err := fixed.Ln2[P]().MulInt64(s)
	if err != nil {
		return fixed.Fixed[P]{}, fmt.Errorf("computing ln(%v): %w", x, err)
	}
	z, err = z.Add(shift)
	if err != nil {
		return fixed.Fixed[P]{}, fmt.Errorf("computing ln(%v): %w", x, err)
	}
	return z, nil
}
