// Package table implements lookup tables of precomputed function samples
// evaluated by linear interpolation between adjacent samples.
//
// A [Table] is built once, by one eager pass over its grid, and is read-only
// afterwards, so it can be shared by any number of goroutines.
package table

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/govalues/fixed"
)

// MaxLen is the maximum number of samples in a table.
const MaxLen = 1 << 25

// Func is a function sampled by a table.
type Func[P fixed.Precision] func(x fixed.Fixed[P]) (fixed.Fixed[P], error)

// Table holds samples f(start + i*step) for i = 0, 1, ..., n-1,
// where n = ⌊(end - start) / step⌋.
type Table[P fixed.Precision] struct {
	start   fixed.Fixed[P]
	end     fixed.Fixed[P]
	step    fixed.Fixed[P]
	samples []fixed.Fixed[P]
}

// sampleCount validates the grid and returns its number of samples.
func sampleCount[P fixed.Precision](start, end, step fixed.Fixed[P]) (int, error) {
	switch {
	case !step.IsPos():
		return 0, fmt.Errorf("step %v is not positive: %w", step, fixed.ErrDomain)
	case end.Cmp(start) <= 0:
		return 0, fmt.Errorf("end %v is not greater than start %v: %w", end, start, fixed.ErrDomain)
	}
	span, err := end.Sub(start)
	if err != nil {
		return 0, fmt.Errorf("computing span of [%v, %v): %w", start, end, err)
	}
	q, err := span.Quo(step)
	if err != nil {
		return 0, fmt.Errorf("computing number of samples: %w", err)
	}
	n, ok := q.Int64()
	switch {
	case !ok || n > MaxLen:
		return 0, fmt.Errorf("[%v, %v) with step %v has more than %v samples: %w", start, end, step, MaxLen, fixed.ErrDomain)
	case n < 2:
		return 0, fmt.Errorf("[%v, %v) with step %v has %v sample(s), at least 2 required: %w", start, end, step, n, fixed.ErrDomain)
	}
	return int(n), nil
}

func newTable[P fixed.Precision](start, end, step fixed.Fixed[P]) (*Table[P], error) {
	n, err := sampleCount(start, end, step)
	if err != nil {
		return nil, err
	}
	t := &Table[P]{
		start:   start,
		end:     end,
		step:    step,
		samples: make([]fixed.Fixed[P], n),
	}
	return t, nil
}

// New samples f over [start, end) with the given step.
//
// New returns an error if:
//   - step is not positive, end is not greater than start, or the grid
//     has less than 2 or more than [MaxLen] samples, see [fixed.ErrDomain];
//   - f fails at any grid point, in which case its error is wrapped.
func New[P fixed.Precision](start, end, step fixed.Fixed[P], f Func[P]) (*Table[P], error) {
	t, err := newTable(start, end, step)
	if err != nil {
		return nil, err
	}
	for i := range t.samples {
		if err := t.fill(i, f); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// MustNew is like [New] but panics if the table cannot be built.
func MustNew[P fixed.Precision](start, end, step fixed.Fixed[P], f Func[P]) *Table[P] {
	t, err := New(start, end, step, f)
	if err != nil {
		panic(fmt.Sprintf("MustNew(%v, %v, %v) failed: %v", start, end, step, err))
	}
	return t
}

// NewConcurrent is like [New] but evaluates f on up to workers goroutines.
// The result is identical to the one of [New], since every sample depends
// only on its own grid point.
// f must be safe for concurrent use.
// NewConcurrent stops early and returns the context error if ctx is done.
func NewConcurrent[P fixed.Precision](ctx context.Context, start, end, step fixed.Fixed[P], f Func[P], workers int) (*Table[P], error) {
	t, err := newTable(start, end, step)
	if err != nil {
		return nil, err
	}
	n := len(t.samples)
	workers = max(1, min(workers, n))
	chunk := (n + workers - 1) / workers
	g, ctx := errgroup.WithContext(ctx)
	for lo := 0; lo < n; lo += chunk {
		lo, hi := lo, min(lo+chunk, n)
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if (i-lo)%1024 == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				if err := t.fill(i, f); err != nil {
					return err
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Table[P]) fill(i int, f Func[P]) error {
	x, err := t.abscissa(i)
	if err != nil {
		return err
	}
	y, err := f(x)
	if err != nil {
		return fmt.Errorf("sampling at %v: %w", x, err)
	}
	t.samples[i] = y
	return nil
}

// abscissa returns start + i*step.
// Each point is computed from start directly, so there is no accumulated drift.
func (t *Table[P]) abscissa(i int) (fixed.Fixed[P], error) {
	d, err := t.step.MulInt64(int64(i))
	if err != nil {
		return fixed.Fixed[P]{}, fmt.Errorf("computing grid point %v: %w", i, err)
	}
	x, err := t.start.Add(d)
	if err != nil {
		return fixed.Fixed[P]{}, fmt.Errorf("computing grid point %v: %w", i, err)
	}
	return x, nil
}

// Len returns the number of samples.
func (t *Table[P]) Len() int {
	return len(t.samples)
}

// Start returns the inclusive lower bound of the domain.
func (t *Table[P]) Start() fixed.Fixed[P] {
	return t.start
}

// End returns the exclusive upper bound of the domain.
func (t *Table[P]) End() fixed.Fixed[P] {
	return t.end
}

// Step returns the distance between adjacent grid points.
func (t *Table[P]) Step() fixed.Fixed[P] {
	return t.step
}

// Sample returns the i-th grid point and the value sampled there.
// Sample panics if i is out of range.
func (t *Table[P]) Sample(i int) (x, y fixed.Fixed[P]) {
	x, err := t.abscissa(i)
	if err != nil {
		panic(fmt.Sprintf("Sample(%v) failed: %v", i, err))
	}
	return x, t.samples[i]
}

// Contains returns true if start <= x < end.
func (t *Table[P]) Contains(x fixed.Fixed[P]) bool {
	return t.start.Cmp(x) <= 0 && x.Cmp(t.end) < 0
}

// Index returns i such that samples i and i+1 are used to interpolate at x,
// that is ⌊(x - start) / step⌋ limited to n-2.
// Inputs between the last grid point and end use the last interval.
//
// Index returns an out-of-range error if x is outside [start, end).
func (t *Table[P]) Index(x fixed.Fixed[P]) (int, error) {
	if !t.Contains(x) {
		return 0, fmt.Errorf("%v is outside of [%v, %v): %w", x, t.start, t.end, fixed.ErrOutOfRange)
	}
	d, err := x.Sub(t.start)
	if err != nil {
		return 0, fmt.Errorf("computing index of %v: %w", x, err)
	}
	q, err := d.Quo(t.step)
	if err != nil {
		return 0, fmt.Errorf("computing index of %v: %w", x, err)
	}
	i, ok := q.Int64()
	if !ok || i > int64(len(t.samples)-2) {
		i = int64(len(t.samples) - 2)
	}
	return int(i), nil
}

// Lookup returns the value at x interpolated between the two bracketing samples.
//
// Lookup returns an out-of-range error if x is outside [start, end).
func (t *Table[P]) Lookup(x fixed.Fixed[P]) (fixed.Fixed[P], error) {
	i, err := t.Index(x)
	if err != nil {
		return fixed.Fixed[P]{}, err
	}
	x1, err := t.abscissa(i)
	if err != nil {
		return fixed.Fixed[P]{}, err
	}
	x2, err := x1.Add(t.step)
	if err != nil {
		return fixed.Fixed[P]{}, fmt.Errorf("computing grid point %v: %w", i+1, err)
	}
	return Interpolate(x, x1, x2, t.samples[i], t.samples[i+1])
}

// LookupBounded is like [Table.Lookup] but returns a value chosen by b
// instead of an out-of-range error when x is outside [start, end).
func (t *Table[P]) LookupBounded(x fixed.Fixed[P], b Bounds[P]) (fixed.Fixed[P], error) {
	switch {
	case x.Cmp(t.start) < 0:
		if b.edge {
			return t.samples[0], nil
		}
		return b.below, nil
	case x.Cmp(t.end) >= 0:
		if b.edge {
			return t.samples[len(t.samples)-1], nil
		}
		return b.above, nil
	}
	return t.Lookup(x)
}

// Bounds selects the values returned by [Table.LookupBounded] outside
// of the table domain.
// The zero value saturates to 0 on both sides.
type Bounds[P fixed.Precision] struct {
	edge  bool
	below fixed.Fixed[P]
	above fixed.Fixed[P]
}

// EdgeSamples returns bounds that clamp inputs to the nearest edge sample:
// the first sample below start, and the last sample at or above end.
func EdgeSamples[P fixed.Precision]() Bounds[P] {
	return Bounds[P]{edge: true}
}

// Saturate returns bounds that map inputs below start to below, and inputs
// at or above end to above.
func Saturate[P fixed.Precision](below, above fixed.Fixed[P]) Bounds[P] {
	return Bounds[P]{below: below, above: above}
}

// String implements the [fmt.Stringer] interface.
func (b Bounds[P]) String() string {
	if b.edge {
		return "edge"
	}
	return fmt.Sprintf("saturate(%v, %v)", b.below, b.above)
}
