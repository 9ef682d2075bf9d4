package fixed

import "fmt"

// MustAdd is like [Fixed.Add] but panics if computing error.
func (d Fixed[P]) MustAdd(e Fixed[P]) Fixed[P] {
	f, err := d.Add(e)
	if err != nil {
		panic(fmt.Sprintf("MustAdd(%v) failed: %v", d, err))
	}
	return f
}

// MustSub is like [Fixed.Sub] but panics if computing error.
func (d Fixed[P]) MustSub(e Fixed[P]) Fixed[P] {
	f, err := d.Sub(e)
	if err != nil {
		panic(fmt.Sprintf("MustSub(%v) failed: %v", d, err))
	}
	return f
}

// MustMul is like [Fixed.Mul] but panics if computing error.
func (d Fixed[P]) MustMul(e Fixed[P]) Fixed[P] {
	f, err := d.Mul(e)
	if err != nil {
		panic(fmt.Sprintf("MustMul(%v) failed: %v", d, err))
	}
	return f
}

// MustQuo is like [Fixed.Quo] but panics if computing error.
func (d Fixed[P]) MustQuo(e Fixed[P]) Fixed[P] {
	f, err := d.Quo(e)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v) failed: %v", d, err))
	}
	return f
}

// MustMulQuo is like [Fixed.MulQuo] but panics if computing error.
func (d Fixed[P]) MustMulQuo(e, f Fixed[P]) Fixed[P] {
	g, err := d.MulQuo(e, f)
	if err != nil {
		panic(fmt.Sprintf("MustMulQuo(%v) failed: %v", d, err))
	}
	return g
}

// MustLsh is like [Fixed.Lsh] but panics if computing error.
func (d Fixed[P]) MustLsh(k uint) Fixed[P] {
	f, err := d.Lsh(k)
	if err != nil {
		panic(fmt.Sprintf("MustLsh(%v) failed: %v", d, err))
	}
	return f
}
