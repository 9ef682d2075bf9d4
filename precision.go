package fixed

// Precision is implemented by zero-sized marker types that fix the number
// of digits after the decimal point at compile time.
// A [Fixed] of one precision cannot be mixed with a [Fixed] of another.
type Precision interface {
	Digits() int
}

// MaxPrecision is the largest number of fractional digits a [Precision] may report.
// With 256-bit coefficients it leaves room for integer parts of at least 26 digits.
const MaxPrecision = 50

type (
	P0  struct{} // integers
	P2  struct{} // cents
	P4  struct{}
	P6  struct{} // micro
	P8  struct{}
	P9  struct{} // nano
	P10 struct{}
	P12 struct{} // pico
	P14 struct{}
	P16 struct{}
	P18 struct{} // atto, the common on-chain scale
	P24 struct{}
	P30 struct{}
	P38 struct{}
)

func (P0) Digits() int  { return 0 }
func (P2) Digits() int  { return 2 }
func (P4) Digits() int  { return 4 }
func (P6) Digits() int  { return 6 }
func (P8) Digits() int  { return 8 }
func (P9) Digits() int  { return 9 }
func (P10) Digits() int { return 10 }
func (P12) Digits() int { return 12 }
func (P14) Digits() int { return 14 }
func (P16) Digits() int { return 16 }
func (P18) Digits() int { return 18 }
func (P24) Digits() int { return 24 }
func (P30) Digits() int { return 30 }
func (P38) Digits() int { return 38 }

// digits returns the validated number of fractional digits of P.
func digits[P Precision]() int {
	var p P
	n := p.Digits()
	if n < 0 || n > MaxPrecision {
		panic(errPrecisionRange)
	}
	return n
}
