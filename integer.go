package fixed

import "github.com/holiman/uint256"

// wint (Wide INTeger) is a wrapper around uint256.Int.
// All methods treat it as a value and never modify the receiver.
type wint uint256.Int

// maxBits is a maximum length of wint in bits.
const maxBits = 256

// pow10 is a cache of powers of 10, where pow10[x] = 10^x.
// 10^77 is the largest power of 10 that fits into 256 bits.
var pow10 = func() [78]wint {
	var p [78]wint
	ten := uint256.NewInt(10)
	p[0].u256().SetOne()
	for i := 1; i < len(p); i++ {
		p[i].u256().Mul(p[i-1].u256(), ten)
	}
	return p
}()

func newWint(v uint64) wint {
	var z wint
	z.u256().SetUint64(v)
	return z
}

func (x *wint) u256() *uint256.Int {
	return (*uint256.Int)(x)
}

func (x wint) isZero() bool {
	return x.u256().IsZero()
}

func (x wint) cmp(y wint) int {
	return x.u256().Cmp(y.u256())
}

func (x wint) bitLen() int {
	return x.u256().BitLen()
}

// uint64 returns x as uint64 and reports whether it fits.
func (x wint) uint64() (uint64, bool) {
	return x.u256().Uint64(), x.u256().IsUint64()
}

func (x wint) isOdd() bool {
	return x.u256().Uint64()&1 != 0
}

// add calculates x + y and checks overflow.
func (x wint) add(y wint) (z wint, ok bool) {
	_, overflow := z.u256().AddOverflow(x.u256(), y.u256())
	if overflow {
		return wint{}, false
	}
	return z, true
}

// sub calculates x - y and checks underflow.
func (x wint) sub(y wint) (z wint, ok bool) {
	_, underflow := z.u256().SubOverflow(x.u256(), y.u256())
	if underflow {
		return wint{}, false
	}
	return z, true
}

// dist calculates |x - y|.
func (x wint) dist(y wint) wint {
	var z wint
	if x.cmp(y) > 0 {
		z.u256().Sub(x.u256(), y.u256())
	} else {
		z.u256().Sub(y.u256(), x.u256())
	}
	return z
}

// mul calculates x * y and checks overflow.
func (x wint) mul(y wint) (z wint, ok bool) {
	_, overflow := z.u256().MulOverflow(x.u256(), y.u256())
	if overflow {
		return wint{}, false
	}
	return z, true
}

// quoRem calculates q = ⌊x / y⌋, r = x - y * q.
func (x wint) quoRem(y wint) (q, r wint, ok bool) {
	if y.isZero() {
		return wint{}, wint{}, false
	}
	q.u256().DivMod(x.u256(), y.u256(), r.u256())
	return q, r, true
}

// mulQuo calculates ⌊x * y / f⌋ and checks overflow of the quotient.
// The intermediate product is kept in full even if it exceeds 256 bits.
func (x wint) mulQuo(y, f wint) (z wint, ok bool) {
	if f.isZero() {
		return wint{}, false
	}
	_, overflow := z.u256().MulDivOverflow(x.u256(), y.u256(), f.u256())
	if overflow {
		return wint{}, false
	}
	return z, true
}

// lsh (Left Shift) calculates x * 10^shift and checks overflow.
func (x wint) lsh(shift int) (z wint, ok bool) {
	// Special cases
	switch {
	case shift <= 0 || x.isZero():
		return x, true
	case shift >= len(pow10):
		return wint{}, false
	}
	// General case
	return x.mul(pow10[shift])
}

// rshDown (Right Shift) calculates ⌊x / 10^shift⌋.
func (x wint) rshDown(shift int) wint {
	// Special cases
	switch {
	case shift <= 0:
		return x
	case shift >= len(pow10):
		return wint{}
	}
	// General case
	var z wint
	z.u256().Div(x.u256(), pow10[shift].u256())
	return z
}

// fsa (Fused Shift and Addition) calculates x * 10^shift + b and checks overflow.
func (x wint) fsa(shift int, b byte) (z wint, ok bool) {
	z, ok = x.lsh(shift)
	if !ok {
		return wint{}, false
	}
	return z.add(newWint(uint64(b)))
}

// shl (Binary Shift Left) calculates x * 2^n and checks overflow.
func (x wint) shl(n uint) (z wint, ok bool) {
	switch {
	case x.isZero() || n == 0:
		return x, true
	case uint(x.bitLen())+n > maxBits:
		return wint{}, false
	}
	z.u256().Lsh(x.u256(), n)
	return z, true
}

// shr (Binary Shift Right) calculates ⌊x / 2^n⌋.
func (x wint) shr(n uint) wint {
	if n >= maxBits {
		return wint{}
	}
	var z wint
	z.u256().Rsh(x.u256(), n)
	return z
}

// string returns the decimal digits of x.
func (x wint) string() string {
	return x.u256().Dec()
}
