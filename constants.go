package fixed

import "github.com/holiman/uint256"

// constScale is the number of digits after the decimal point in the constant literals.
// It must not be less than [MaxPrecision].
const constScale = 60

// Coefficients of mathematical constants scaled by 10^constScale and truncated.
var (
	ln2Coef = mustParseWint("693147180559945309417232121458176568075500134360255254120680")
	eCoef   = mustParseWint("2718281828459045235360287471352662497757247093699959574966967")
	piCoef  = mustParseWint("3141592653589793238462643383279502884197169399375105820974944")
)

// Use only for package variable initialization and test code!
func mustParseWint(s string) wint {
	z, err := uint256.FromDecimal(s)
	if err != nil {
		panic(err)
	}
	return wint(*z)
}

func newConst[P Precision](coef wint) Fixed[P] {
	return newFixed[P](false, coef.rshDown(constScale-digits[P]()))
}

// Ln2 returns natural logarithm of 2 truncated to P digits.
func Ln2[P Precision]() Fixed[P] {
	return newConst[P](ln2Coef)
}

// E returns Euler's number truncated to P digits.
func E[P Precision]() Fixed[P] {
	return newConst[P](eCoef)
}

// Pi returns the ratio of a circle's circumference to its diameter truncated to P digits.
func Pi[P Precision]() Fixed[P] {
	return newConst[P](piCoef)
}
