package special

import (
	"context"
	"fmt"

	"github.com/govalues/fixed"
	"github.com/govalues/fixed/table"
)

// Tabulated is a table-backed variant of a [Function].
//
// Eval is strict: it interpolates inside the table domain [start, end)
// and returns an error wrapping [fixed.ErrOutOfRange] outside of it.
// MustEval is lenient: outside of the domain it returns the value chosen
// by the bounds of the table and never panics on such inputs.
type Tabulated[P fixed.Precision] struct {
	table  *table.Table[P]
	bounds table.Bounds[P]
}

// NewTabulated samples f over [start, end) with the given step.
// See [table.New] for the errors returned.
func NewTabulated[P fixed.Precision](f Function[P], start, end, step fixed.Fixed[P], bounds table.Bounds[P]) (*Tabulated[P], error) {
	t, err := table.New(start, end, step, f.Eval)
	if err != nil {
		return nil, err
	}
	return FromTable(t, bounds), nil
}

// NewTabulatedConcurrent is like [NewTabulated] but samples f on up to
// workers goroutines, see [table.NewConcurrent].
func NewTabulatedConcurrent[P fixed.Precision](ctx context.Context, f Function[P], start, end, step fixed.Fixed[P], bounds table.Bounds[P], workers int) (*Tabulated[P], error) {
	t, err := table.NewConcurrent(ctx, start, end, step, f.Eval, workers)
	if err != nil {
		return nil, err
	}
	return FromTable(t, bounds), nil
}

// FromTable wraps an existing table, for example one restored with [table.FromSnapshot].
func FromTable[P fixed.Precision](t *table.Table[P], bounds table.Bounds[P]) *Tabulated[P] {
	return &Tabulated[P]{table: t, bounds: bounds}
}

// Table returns the underlying table.
func (f *Tabulated[P]) Table() *table.Table[P] {
	return f.table
}

// Bounds returns the values used by MustEval outside of the table domain.
func (f *Tabulated[P]) Bounds() table.Bounds[P] {
	return f.bounds
}

// Eval returns the interpolated value at x.
func (f *Tabulated[P]) Eval(x fixed.Fixed[P]) (fixed.Fixed[P], error) {
	return f.table.Lookup(x)
}

// MustEval returns the interpolated value at x, or the bound value if x is
// outside of the table domain.
func (f *Tabulated[P]) MustEval(x fixed.Fixed[P]) fixed.Fixed[P] {
	y, err := f.table.LookupBounded(x, f.bounds)
	if err != nil {
		panic(fmt.Sprintf("Tabulated.MustEval(%v) failed: %v", x, err))
	}
	return y
}

// ExpBounds clamps to the edge samples, e^x has no limiting value.
func ExpBounds[P fixed.Precision]() table.Bounds[P] { return table.EdgeSamples[P]() }

// LnBounds clamps to the edge samples.
func LnBounds[P fixed.Precision]() table.Bounds[P] { return table.EdgeSamples[P]() }

// SqrtBounds clamps to the edge samples.
func SqrtBounds[P fixed.Precision]() table.Bounds[P] { return table.EdgeSamples[P]() }

// CDFBounds saturates to 0 below the table domain and to 1 above it.
func CDFBounds[P fixed.Precision]() table.Bounds[P] {
	return table.Saturate(fixed.Zero[P](), fixed.One[P]())
}

// PDFBounds saturates to 0 on both sides of the table domain.
func PDFBounds[P fixed.Precision]() table.Bounds[P] {
	return table.Saturate(fixed.Zero[P](), fixed.Zero[P]())
}

// NewExpTable returns a table of [Exp] with [DefaultExpOrder].
func NewExpTable[P fixed.Precision](start, end, step fixed.Fixed[P]) (*Tabulated[P], error) {
	return NewTabulated[P](DefaultExp[P](), start, end, step, ExpBounds[P]())
}

// NewLnTable returns a table of [Ln] with [DefaultLnDepth].
// The domain must not contain non-positive numbers.
func NewLnTable[P fixed.Precision](start, end, step fixed.Fixed[P]) (*Tabulated[P], error) {
	return NewTabulated[P](DefaultLn[P](), start, end, step, LnBounds[P]())
}

// NewSqrtTable returns a table of [Sqrt] with [DefaultSqrtDepth].
// The domain must not contain negative numbers.
func NewSqrtTable[P fixed.Precision](start, end, step fixed.Fixed[P]) (*Tabulated[P], error) {
	return NewTabulated[P](DefaultSqrt[P](), start, end, step, SqrtBounds[P]())
}

// NewRationalCDFTable returns a table of [RationalCDF] with [DefaultExpOrder].
func NewRationalCDFTable[P fixed.Precision](start, end, step fixed.Fixed[P]) (*Tabulated[P], error) {
	return NewTabulated[P](DefaultRationalCDF[P](), start, end, step, CDFBounds[P]())
}

// NewPolynomialCDFTable returns a table of [PolynomialCDF] with [DefaultPolynomialCDFExpOrder].
func NewPolynomialCDFTable[P fixed.Precision](start, end, step fixed.Fixed[P]) (*Tabulated[P], error) {
	return NewTabulated[P](DefaultPolynomialCDF[P](), start, end, step, CDFBounds[P]())
}

// NewPDFTable returns a table of [PDF] with [DefaultPDFSqrtDepth] and [DefaultPDFExpOrder].
func NewPDFTable[P fixed.Precision](start, end, step fixed.Fixed[P]) (*Tabulated[P], error) {
	f, err := NewPDF[P](DefaultPDFSqrtDepth, DefaultPDFExpOrder)
	if err != nil {
		return nil, err
	}
	return NewTabulated[P](f, start, end, step, PDFBounds[P]())
}
