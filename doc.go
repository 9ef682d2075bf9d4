/*
Package fixed implements immutable fixed-point decimal numbers with
compile-time precision, and deterministic arithmetic on them.
It is specifically designed for settings where results must be reproducible
bit for bit across machines, such as risk, pricing or on-chain calculations.
No floating-point arithmetic is used internally.

# Representation

[Fixed] is a generic struct with two fields:

  - Sign: a boolean indicating whether the number is negative.
  - Coefficient: a 256-bit unsigned integer representing the absolute value
    of the number scaled by 10^P.

The precision P is a type parameter, a zero-sized marker implementing
[Precision], such as [P10] or [P18].
For example, a Fixed[P2] with a coefficient of 12345 represents the value 123.45.
Since the precision is part of the type, values of different precisions
cannot be combined accidentally: mixing them is a compile-time error.

The numerical value of a number is calculated as:

  - -Coefficient / 10^P, if Sign is true.
  - Coefficient / 10^P, if Sign is false.

Every value of a given type has exactly one representation, so values
can be compared with the == operator.

# Constraints

The range of a number is determined by its precision.
Here are the ranges for frequently used precisions:

	| Type       | Digits | Maximum integer part |
	| ---------- | ------ | -------------------- |
	| Fixed[P0]  | 0      | about 1.15 * 10^77   |
	| Fixed[P10] | 10     | about 1.15 * 10^67   |
	| Fixed[P18] | 18     | about 1.15 * 10^59   |
	| Fixed[P38] | 38     | about 1.15 * 10^39   |

Special values such as NaN, Infinity, or negative zeros are not supported.

# Conversions

The package provides functions for converting numbers:

  - from/to string:
    [Parse], [Fixed.String], [Fixed.MarshalText], [Fixed.UnmarshalText].
  - from/to int64:
    [New], [NewFromInt64], [Fixed.Int64].
  - from/to raw coefficient:
    [NewFromRaw], [Fixed.Raw].
  - to float64, for display only:
    [Fixed.Float64].

# Operations

Addition and subtraction are exact.
Multiplication divides the raw product by 10^P and division multiplies
the raw dividend by 10^P, both truncating towards zero.

Each multiply-divide keeps the full 512-bit intermediate product
and divides it by a 256-bit divisor in one step.
If the quotient does not fit into 256 bits, an overflow error is returned.

[Fixed.Lsh] and [Fixed.Rsh] shift the coefficient, which multiplies or
divides the value by an exact power of two.

# Errors

All methods are pure.
Checked methods return an error wrapping one of the sentinels:

  - [ErrOverflow]: the result does not fit into 256 bits.
  - [ErrDivisionByZero]: the divisor is zero.
  - [ErrDomain] and [ErrOutOfRange]: used by packages built on top of this one.

Methods with the Must prefix panic instead of returning an error.
Underflow is not an error: results smaller than 10^-P are truncated to 0.
*/
package fixed
