package special

import (
	"fmt"

	"github.com/govalues/fixed"
)

const (
	// DefaultPDFSqrtDepth is the default number of Newton iterations used by [PDF] for √(2π).
	DefaultPDFSqrtDepth = 20
	// DefaultPDFExpOrder is the default order of the exponential used by [PDF].
	DefaultPDFExpOrder = 20
	// pdfCutoff is the argument beyond which the density is 0 for every precision.
	pdfCutoff = 40
)

// PDF evaluates the standard normal probability density function
//
//	φ(x) = e^(-x^2/2) / √(2π)
//
// The normalization constant is computed once, at construction.
type PDF[P fixed.Precision] struct {
	order  int
	coef   fixed.Fixed[P] // 1 / √(2π)
	cutoff fixed.Fixed[P]
}

// NewPDF returns a density that computes √(2π) with sqrtDepth Newton
// iterations and the exponential with a Taylor series of order expOrder.
// NewPDF returns a domain error if either argument is outside of [1, [MaxIterations]].
func NewPDF[P fixed.Precision](sqrtDepth, expOrder int) (*PDF[P], error) {
	if err := validateIterations("depth", sqrtDepth); err != nil {
		return nil, err
	}
	if err := validateIterations("order", expOrder); err != nil {
		return nil, err
	}
	twoPi, err := fixed.Pi[P]().MulInt64(2)
	if err != nil {
		return nil, fmt.Errorf("computing 2π: %w", err)
	}
	root, err := sqrt(twoPi, sqrtDepth)
	if err != nil {
		return nil, fmt.Errorf("computing √(2π): %w", err)
	}
	coef, err := fixed.One[P]().Quo(root)
	if err != nil {
		return nil, fmt.Errorf("computing 1 / √(2π): %w", err)
	}
	f := &PDF[P]{
		order:  expOrder,
		coef:   coef,
		cutoff: fixed.NewFromInt64[P](pdfCutoff),
	}
	return f, nil
}

// Eval returns φ(x).
func (f *PDF[P]) Eval(x fixed.Fixed[P]) (fixed.Fixed[P], error) {
	if x.Abs().Cmp(f.cutoff) > 0 {
		return fixed.Zero[P](), nil
	}
	x2, err := x.Squared()
	if err != nil {
		return fixed.Fixed[P]{}, fmt.Errorf("computing pdf(%v): %w", x, err)
	}
	h, err := x2.QuoInt64(2)
	if err != nil {
		return fixed.Fixed[P]{}, fmt.Errorf("computing pdf(%v): %w", x, err)
	}
	e, err := exp(h.Neg(), f.order)
	if err != nil {
		return fixed.Fixed[P]{}, fmt.Errorf("computing pdf(%v): %w", x, err)
	}
	y, err := f.coef.Mul(e)
	if err != nil {
		return fixed.Fixed[P]{}, fmt.Errorf("computing pdf(%v): %w", x, err)
	}
	return y, nil
}

// MustEval is like [PDF.Eval] but panics if computing error.
func (f *PDF[P]) MustEval(x fixed.Fixed[P]) fixed.Fixed[P] {
	return mustEval("PDF", f.Eval, x)
}
