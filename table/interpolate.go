package table

import (
	"fmt"

	"github.com/govalues/fixed"
)

// Interpolate returns the value at x of the straight line through (x1, y1) and (x2, y2):
//
//	y1 + (x - x1) * (y2 - y1) / (x2 - x1)
//
// The product is divided without intermediate truncation, so the only
// rounding is a single truncation towards zero.
// x may lie outside [x1, x2], in which case the line is extrapolated.
//
// Interpolate returns an error if:
//   - x1 and x2 are equal, see [fixed.ErrDivisionByZero];
//   - the result does not fit, see [fixed.ErrOverflow].
func Interpolate[P fixed.Precision](x, x1, x2, y1, y2 fixed.Fixed[P]) (fixed.Fixed[P], error) {
	dx, err := x.Sub(x1)
	if err != nil {
		return fixed.Fixed[P]{}, fmt.Errorf("interpolating at %v: %w", x, err)
	}
	dy, err := y2.Sub(y1)
	if err != nil {
		return fixed.Fixed[P]{}, fmt.Errorf("interpolating at %v: %w", x, err)
	}
	w, err := x2.Sub(x1)
	if err != nil {
		return fixed.Fixed[P]{}, fmt.Errorf("interpolating at %v: %w", x, err)
	}
	if w.IsZero() {
		return fixed.Fixed[P]{}, fmt.Errorf("interpolating at %v: x1 = x2 = %v: %w", x, x1, fixed.ErrDivisionByZero)
	}
	d, err := dx.MulQuo(dy, w)
	if err != nil {
		return fixed.Fixed[P]{}, fmt.Errorf("interpolating at %v: %w", x, err)
	}
	y, err := y1.Add(d)
	if err != nil {
		return fixed.Fixed[P]{}, fmt.Errorf("interpolating at %v: %w", x, err)
	}
	return y, nil
}
