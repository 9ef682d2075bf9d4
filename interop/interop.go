// Package interop converts fixed-point numbers to and from the decimal types
// of [github.com/shopspring/decimal] and [github.com/robaho/fixed].
//
// Conversions into a type with fewer fractional digits truncate towards zero,
// the same way arithmetic in package fixed does.
package interop

import (
	"fmt"
	"math"

	"github.com/holiman/uint256"
	rfixed "github.com/robaho/fixed"
	"github.com/shopspring/decimal"

	"github.com/govalues/fixed"
)

// Fixed7Digits is the number of fractional digits of [rfixed.Fixed].
const Fixed7Digits = 7

// ToDecimal returns the exact decimal value of x.
func ToDecimal[P fixed.Precision](x fixed.Fixed[P]) decimal.Decimal {
	neg, coef := x.Raw()
	b := coef.ToBig()
	if neg {
		b.Neg(b)
	}
	return decimal.NewFromBigInt(b, -int32(x.Prec()))
}

// FromDecimal converts d to a fixed-point number, truncating digits beyond P.
//
// FromDecimal returns an overflow error if the integer part of d does not fit.
func FromDecimal[P fixed.Precision](d decimal.Decimal) (fixed.Fixed[P], error) {
	x, err := fixed.Parse[P](d.String())
	if err != nil {
		return fixed.Fixed[P]{}, fmt.Errorf("converting %v: %w", d, err)
	}
	return x, nil
}

// ToFixed7 converts x to a 7-digit [rfixed.Fixed], truncating digits beyond 7.
//
// ToFixed7 returns an overflow error if the scaled value does not fit in int64.
func ToFixed7[P fixed.Precision](x fixed.Fixed[P]) (rfixed.Fixed, error) {
	neg, c := x.Raw()
	switch p := x.Prec(); {
	case p > Fixed7Digits:
		c.Div(c, pow10(p-Fixed7Digits))
	case p < Fixed7Digits:
		if _, overflow := c.MulOverflow(c, pow10(Fixed7Digits-p)); overflow {
			return rfixed.Fixed{}, fmt.Errorf("converting %v: %w", x, fixed.ErrOverflow)
		}
	}
	if !c.IsUint64() || c.Uint64() > math.MaxInt64 {
		return rfixed.Fixed{}, fmt.Errorf("converting %v: %w", x, fixed.ErrOverflow)
	}
	v := int64(c.Uint64())
	if neg {
		v = -v
	}
	return rfixed.NewI(v, Fixed7Digits), nil
}

// FromFixed7 converts f to a fixed-point number, truncating digits beyond P.
//
// FromFixed7 returns an error if:
//   - f is NaN, see [fixed.ErrDomain];
//   - the integer part of f does not fit, see [fixed.ErrOverflow].
func FromFixed7[P fixed.Precision](f rfixed.Fixed) (fixed.Fixed[P], error) {
	if f.IsNaN() {
		return fixed.Fixed[P]{}, fmt.Errorf("converting %v: %w", f, fixed.ErrDomain)
	}
	x, err := fixed.Parse[P](f.String())
	if err != nil {
		return fixed.Fixed[P]{}, fmt.Errorf("converting %v: %w", f, err)
	}
	return x, nil
}

// pow10 returns 10^n.
func pow10(n int) *uint256.Int {
	return new(uint256.Int).Exp(uint256.NewInt(10), uint256.NewInt(uint64(n)))
}
