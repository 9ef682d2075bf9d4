package fixed

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/holiman/uint256"
)

// Fixed type is a representation of a fixed-point decimal number with
// exactly P.Digits() digits after the decimal point.
// The zero value is the numeric value of 0.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// A fixed-point number is a struct with two fields:
//
//   - Sign: a boolean indicating whether the number is negative.
//   - Coefficient: a 256-bit unsigned integer equal to the absolute value
//     scaled by 10^P.
//
// For example, a Fixed[P2] with a coefficient of 12345 represents 123.45.
// Unlike floating-point decimals, every value of a given type has the same
// scale, so each numeric value has exactly one representation and values
// can be compared with ==.
//
// Fixed does not support special values such as NaN, Infinity, or signed zeros.
type Fixed[P Precision] struct {
	neg  bool // indicates whether the number is negative
	coef wint // the absolute value scaled by 10^P
}

func newFixed[P Precision](neg bool, coef wint) Fixed[P] {
	if coef.isZero() {
		neg = false
	}
	return Fixed[P]{neg: neg, coef: coef}
}

// New returns a number equal to coef / 10^P.
func New[P Precision](coef int64) Fixed[P] {
	digits[P]()
	neg := coef < 0
	abs := uint64(coef)
	if neg {
		abs = -abs
	}
	return newFixed[P](neg, newWint(abs))
}

// NewFromInt64 returns a number equal to v.
// Since [MaxPrecision] is small enough, the result always fits.
func NewFromInt64[P Precision](v int64) Fixed[P] {
	scale := digits[P]()
	d := New[P](v)
	d.coef, _ = d.coef.lsh(scale)
	return d
}

// NewFromRaw returns a number equal to -coef / 10^P if neg is true,
// and coef / 10^P otherwise.
// The argument is copied.
func NewFromRaw[P Precision](neg bool, coef *uint256.Int) Fixed[P] {
	digits[P]()
	return newFixed[P](neg, wint(*coef))
}

// Zero returns 0.
func Zero[P Precision]() Fixed[P] {
	return Fixed[P]{}
}

// One returns 1.
func One[P Precision]() Fixed[P] {
	return newFixed[P](false, pow10[digits[P]()])
}

// ULP (Unit in the Last Place) returns the smallest representable positive value 10^-P.
func ULP[P Precision]() Fixed[P] {
	return New[P](1)
}

// Parse converts a string to a fixed-point number.
// The input string must be in one of the following formats:
//
//	1.234
//	-1234
//	+0.000001234
//	.5
//
// The formal EBNF grammar for the supported format is as follows:
//
//	sign           ::= '+' | '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	significand    ::= digits '.' digits | '.' digits | digits '.' | digits
//	numeric-string ::= [sign] significand
//
// Digits after the decimal point beyond P are truncated, not rounded.
//
// Parse returns error:
//   - if string does not represent a valid number;
//   - if the integer part does not fit into 256 bits after scaling, see [ErrOverflow].
func Parse[P Precision](s string) (Fixed[P], error) {
	var (
		pos     int
		width   int
		neg     bool
		coef    wint
		frac    int
		scale   int
		hascoef bool
		ok      bool
	)

	width = len(s)
	scale = digits[P]()

	// Sign
	switch {
	case pos == width:
		// skip
	case s[pos] == '-':
		neg = true
		pos++
	case s[pos] == '+':
		pos++
	}

	// Integer
	for pos < width && s[pos] >= '0' && s[pos] <= '9' {
		hascoef = true
		coef, ok = coef.fsa(1, s[pos]-'0')
		if !ok {
			return Fixed[P]{}, fmt.Errorf("parsing %q: %w", s, ErrOverflow)
		}
		pos++
	}

	// Fraction
	if pos < width && s[pos] == '.' {
		pos++
		for pos < width && s[pos] >= '0' && s[pos] <= '9' {
			hascoef = true
			// Truncation
			if frac < scale {
				coef, ok = coef.fsa(1, s[pos]-'0')
				if !ok {
					return Fixed[P]{}, fmt.Errorf("parsing %q: %w", s, ErrOverflow)
				}
				frac++
			}
			pos++
		}
	}

	if pos != width {
		return Fixed[P]{}, fmt.Errorf("parsing %q: invalid character %q: %w", s, s[pos], errInvalidFixed)
	}
	if !hascoef {
		return Fixed[P]{}, fmt.Errorf("parsing %q: no digits: %w", s, errInvalidFixed)
	}

	// Scale
	coef, ok = coef.lsh(scale - frac)
	if !ok {
		return Fixed[P]{}, fmt.Errorf("parsing %q: %w", s, ErrOverflow)
	}

	return newFixed[P](neg, coef), nil
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding numbers.
func MustParse[P Precision](s string) Fixed[P] {
	d, err := Parse[P](s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return d
}

// String method implements the [fmt.Stringer] interface and returns
// a string representation of the number.
// Trailing zeros of the fractional part are removed, and the decimal point
// is omitted when the fractional part is zero.
// The returned string is formatted according to the following formal EBNF grammar:
//
//	sign           ::= '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	significand    ::= digits '.' digits | digits
//	numeric-string ::= [sign] significand
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (d Fixed[P]) String() string {
	var (
		buf   strings.Builder
		coef  string
		scale int
	)

	coef = d.coef.string()
	scale = digits[P]()

	// Leading zeros
	if len(coef) <= scale {
		coef = strings.Repeat("0", scale-len(coef)+1) + coef
	}

	// Sign
	if d.neg {
		buf.WriteByte('-')
	}

	// Integer
	buf.WriteString(coef[:len(coef)-scale])

	// Fraction
	if frac := strings.TrimRight(coef[len(coef)-scale:], "0"); frac != "" {
		buf.WriteByte('.')
		buf.WriteString(frac)
	}

	return buf.String()
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// Also see function [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (d *Fixed[P]) UnmarshalText(text []byte) error {
	var err error
	*d, err = Parse[P](string(text))
	return err
}

// MarshalText implements [encoding.TextMarshaler] interface.
// Also see method [Fixed.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (d Fixed[P]) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Float64 returns the nearest binary floating-point number rounded
// using "half to even" rule.
// It is intended for display and diagnostics only, no computation
// in this module goes through float64.
func (d Fixed[P]) Float64() (f float64, ok bool) {
	f, err := strconv.ParseFloat(d.String(), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Int64 returns the integer part of d truncated towards zero.
// If the result cannot be represented as int64, ok is false.
func (d Fixed[P]) Int64() (i int64, ok bool) {
	u, ok := d.coef.rshDown(digits[P]()).uint64()
	if !ok {
		return 0, false
	}
	if d.neg {
		switch {
		case u > 1<<63:
			return 0, false
		case u == 1<<63:
			return math.MinInt64, true
		}
		return -int64(u), true
	}
	if u > 1<<63-1 {
		return 0, false
	}
	return int64(u), true
}

// Prec returns the number of digits after the decimal point.
func (d Fixed[P]) Prec() int {
	return digits[P]()
}

// Raw returns the sign and a copy of the coefficient, so that
// d = -coef / 10^P if neg is true, and d = coef / 10^P otherwise.
func (d Fixed[P]) Raw() (neg bool, coef *uint256.Int) {
	c := d.coef
	return d.neg, new(uint256.Int).Set(c.u256())
}

// IsInt returns true if the fractional part of d is equal to zero.
func (d Fixed[P]) IsInt() bool {
	_, r, _ := d.coef.quoRem(pow10[digits[P]()])
	return r.isZero()
}

// IsOne returns true if d == -1 or d == 1.
func (d Fixed[P]) IsOne() bool {
	return d.coef == pow10[digits[P]()]
}

// Sign returns:
//
//	-1 if d < 0
//	 0 if d == 0
//	+1 if d > 0
func (d Fixed[P]) Sign() int {
	switch {
	case d.neg:
		return -1
	case d.coef.isZero():
		return 0
	}
	return 1
}

// IsPos returns true if d > 0.
func (d Fixed[P]) IsPos() bool {
	return d.Sign() > 0
}

// IsNeg returns true if d < 0.
func (d Fixed[P]) IsNeg() bool {
	return d.neg
}

// IsZero returns true if d == 0.
func (d Fixed[P]) IsZero() bool {
	return d.coef.isZero()
}

// Neg returns d with the opposite sign.
func (d Fixed[P]) Neg() Fixed[P] {
	return newFixed[P](!d.neg, d.coef)
}

// Abs returns the absolute value of d.
func (d Fixed[P]) Abs() Fixed[P] {
	return newFixed[P](false, d.coef)
}

// Trunc returns d truncated towards zero to an integer value.
func (d Fixed[P]) Trunc() Fixed[P] {
	scale := digits[P]()
	coef, _ := d.coef.rshDown(scale).lsh(scale)
	return newFixed[P](d.neg, coef)
}

// Floor returns the largest integer value less than or equal to d.
//
// Floor returns an overflow error if the result does not fit.
func (d Fixed[P]) Floor() (Fixed[P], error) {
	t := d.Trunc()
	if !d.neg || t == d {
		return t, nil
	}
	f, err := t.Sub(One[P]())
	if err != nil {
		return Fixed[P]{}, fmt.Errorf("computing floor(%v): %w", d, err)
	}
	return f, nil
}

// Add returns the sum of d and e.
//
// Add returns an overflow error if the result does not fit.
func (d Fixed[P]) Add(e Fixed[P]) (Fixed[P], error) {
	// Same signs
	if d.neg == e.neg {
		coef, ok := d.coef.add(e.coef)
		if !ok {
			return Fixed[P]{}, fmt.Errorf("computing [%v + %v]: %w", d, e, ErrOverflow)
		}
		return newFixed[P](d.neg, coef), nil
	}
	// Different signs
	neg := d.neg
	if d.coef.cmp(e.coef) < 0 {
		neg = e.neg
	}
	return newFixed[P](neg, d.coef.dist(e.coef)), nil
}

// Sub returns the difference of d and e.
//
// Sub returns an overflow error if the result does not fit.
func (d Fixed[P]) Sub(e Fixed[P]) (Fixed[P], error) {
	f, err := d.Add(e.Neg())
	if err != nil {
		return Fixed[P]{}, fmt.Errorf("computing [%v - %v]: %w", d, e, ErrOverflow)
	}
	return f, nil
}

// Mul returns the product of d and e truncated towards zero.
// The raw product is divided by 10^P, so the digits beyond P are discarded.
//
// Mul returns an overflow error if the result does not fit.
func (d Fixed[P]) Mul(e Fixed[P]) (Fixed[P], error) {
	coef, ok := d.coef.mulQuo(e.coef, pow10[digits[P]()])
	if !ok {
		return Fixed[P]{}, fmt.Errorf("computing [%v * %v]: %w", d, e, ErrOverflow)
	}
	return newFixed[P](d.neg != e.neg, coef), nil
}

// Quo returns the quotient of d and e truncated towards zero.
// The raw dividend is multiplied by 10^P before the integer division.
//
// Quo returns an error if:
//   - the divisor is 0, see [ErrDivisionByZero];
//   - the result does not fit, see [ErrOverflow].
func (d Fixed[P]) Quo(e Fixed[P]) (Fixed[P], error) {
	if e.IsZero() {
		return Fixed[P]{}, fmt.Errorf("computing [%v / %v]: %w", d, e, ErrDivisionByZero)
	}
	coef, ok := d.coef.mulQuo(pow10[digits[P]()], e.coef)
	if !ok {
		return Fixed[P]{}, fmt.Errorf("computing [%v / %v]: %w", d, e, ErrOverflow)
	}
	return newFixed[P](d.neg != e.neg, coef), nil
}

// MulQuo returns d * e / f truncated towards zero.
// Unlike d.Mul(e).Quo(f), the product is not truncated before the division.
//
// MulQuo returns an error if:
//   - the divisor is 0, see [ErrDivisionByZero];
//   - the result does not fit, see [ErrOverflow].
func (d Fixed[P]) MulQuo(e, f Fixed[P]) (Fixed[P], error) {
	if f.IsZero() {
		return Fixed[P]{}, fmt.Errorf("computing [%v * %v / %v]: %w", d, e, f, ErrDivisionByZero)
	}
	coef, ok := d.coef.mulQuo(e.coef, f.coef)
	if !ok {
		return Fixed[P]{}, fmt.Errorf("computing [%v * %v / %v]: %w", d, e, f, ErrOverflow)
	}
	return newFixed[P](d.neg != e.neg != f.neg, coef), nil
}

// MulInt64 returns the exact product of d and n.
//
// MulInt64 returns an overflow error if the result does not fit.
func (d Fixed[P]) MulInt64(n int64) (Fixed[P], error) {
	m := New[P](n)
	coef, ok := d.coef.mul(m.coef)
	if !ok {
		return Fixed[P]{}, fmt.Errorf("computing [%v * %v]: %w", d, n, ErrOverflow)
	}
	return newFixed[P](d.neg != m.neg, coef), nil
}

// QuoInt64 returns the quotient of d and n truncated towards zero.
//
// QuoInt64 returns a division by zero error if n is 0.
func (d Fixed[P]) QuoInt64(n int64) (Fixed[P], error) {
	m := New[P](n)
	coef, _, ok := d.coef.quoRem(m.coef)
	if !ok {
		return Fixed[P]{}, fmt.Errorf("computing [%v / %v]: %w", d, n, ErrDivisionByZero)
	}
	return newFixed[P](d.neg != m.neg, coef), nil
}

// QuoRem returns the quotient q and remainder r of d and e such that
// d = q * e + r, where q is an integer truncated towards zero and r has
// the same sign as d.
//
// QuoRem returns an error if:
//   - the divisor is 0, see [ErrDivisionByZero];
//   - the integer quotient does not fit, see [ErrOverflow].
func (d Fixed[P]) QuoRem(e Fixed[P]) (q, r Fixed[P], err error) {
	qcoef, rcoef, ok := d.coef.quoRem(e.coef)
	if !ok {
		return Fixed[P]{}, Fixed[P]{}, fmt.Errorf("computing [%v div %v]: %w", d, e, ErrDivisionByZero)
	}
	qcoef, ok = qcoef.lsh(digits[P]())
	if !ok {
		return Fixed[P]{}, Fixed[P]{}, fmt.Errorf("computing [%v div %v]: %w", d, e, ErrOverflow)
	}
	return newFixed[P](d.neg != e.neg, qcoef), newFixed[P](d.neg, rcoef), nil
}

// Lsh (Left Shift) returns d * 2^k.
// The shift is applied to the coefficient, so the result is exact.
//
// Lsh returns an overflow error if the result does not fit.
func (d Fixed[P]) Lsh(k uint) (Fixed[P], error) {
	coef, ok := d.coef.shl(k)
	if !ok {
		return Fixed[P]{}, fmt.Errorf("computing [%v << %v]: %w", d, k, ErrOverflow)
	}
	return newFixed[P](d.neg, coef), nil
}

// Rsh (Right Shift) returns d / 2^k.
// The shift is applied to the coefficient, so the result is truncated
// towards zero to P digits.
func (d Fixed[P]) Rsh(k uint) Fixed[P] {
	return newFixed[P](d.neg, d.coef.shr(k))
}

// Squared returns d * d truncated towards zero.
func (d Fixed[P]) Squared() (Fixed[P], error) {
	return d.Mul(d)
}

// Cubed returns d * d * d, where each product is truncated towards zero.
func (d Fixed[P]) Cubed() (Fixed[P], error) {
	f, err := d.Mul(d)
	if err != nil {
		return Fixed[P]{}, err
	}
	return f.Mul(d)
}

// Cmp compares d and e numerically and returns:
//
//	-1 if d < e
//	 0 if d == e
//	+1 if d > e
func (d Fixed[P]) Cmp(e Fixed[P]) int {
	// Special case: different signs
	switch {
	case e.Sign() < d.Sign():
		return 1
	case d.Sign() < e.Sign():
		return -1
	}
	// General case
	r := d.coef.cmp(e.coef)
	if d.neg {
		return -r
	}
	return r
}

// Less returns true if d < e.
func (d Fixed[P]) Less(e Fixed[P]) bool {
	return d.Cmp(e) < 0
}

// Max returns maximum of d and e.
func (d Fixed[P]) Max(e Fixed[P]) Fixed[P] {
	if d.Cmp(e) >= 0 {
		return d
	}
	return e
}

// Min returns minimum of d and e.
func (d Fixed[P]) Min(e Fixed[P]) Fixed[P] {
	if d.Cmp(e) <= 0 {
		return d
	}
	return e
}

// Clamp compares d with min and max and returns:
//
//	min if d < min
//	max if d > max
//	  d otherwise
//
// The result is undefined if min > max.
func (d Fixed[P]) Clamp(min, max Fixed[P]) Fixed[P] {
	return d.Max(min).Min(max)
}
