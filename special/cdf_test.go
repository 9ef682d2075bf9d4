package special

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/govalues/fixed"
)

func TestRationalCDF(t *testing.T) {
	tests := []struct {
		x, want string
	}{
		{"0", "0.5"},
		{"-1.12313512", "0.1307564188"},
		{"1.12313512", "0.8692435812"},
		{"1.96", "0.9749760627"},
		{"100", "1"},
		{"-100", "0"},
		{"-1000000000000", "0"},
	}
	f := DefaultRationalCDF[fixed.P10]()
	for _, tt := range tests {
		got := evalBoth[fixed.P10](t, f, parse10(tt.x))
		require.Equal(t, parse10(tt.want), got, "cdf(%v)", tt.x)
	}
}

func TestPolynomialCDF(t *testing.T) {
	tests := []struct {
		x, want string
	}{
		{"0", "0.5"},
		{"-1.12313512", "0.1306900568"},
		{"1.96", "0.9750021038"},
		{"5.9", "0.9999999979"},
		{"6", "0.9999999988"},
		{"-6", "0.0000000012"},
		{"7", "1"},
		{"-7", "0"},
		{"6.0000000001", "1"},
	}
	f := DefaultPolynomialCDF[fixed.P10]()
	for _, tt := range tests {
		got := evalBoth[fixed.P10](t, f, parse10(tt.x))
		require.Equal(t, parse10(tt.want), got, "cdf(%v)", tt.x)
	}

	got := DefaultPolynomialCDF[fixed.P18]().MustEval(parse18("1"))
	require.Equal(t, parse18("0.841344746877793098"), got)
}

func TestCDF_Symmetry(t *testing.T) {
	one := fixed.One[fixed.P18]()
	fs := map[string]Function[fixed.P18]{
		"rational":   DefaultRationalCDF[fixed.P18](),
		"polynomial": DefaultPolynomialCDF[fixed.P18](),
	}
	step := parse18("0.0731")
	for name, f := range fs {
		for x := fixed.Zero[fixed.P18](); x.Cmp(parse18("8")) < 0; x = x.MustAdd(step) {
			sum := f.MustEval(x).MustAdd(f.MustEval(x.Neg()))
			require.Equal(t, one, sum, "%v: cdf(%v) + cdf(-%v)", name, x, x)
		}
	}
}

func TestCDF_Monotonic(t *testing.T) {
	zero, one := fixed.Zero[fixed.P10](), fixed.One[fixed.P10]()
	fs := map[string]Function[fixed.P10]{
		"rational":   DefaultRationalCDF[fixed.P10](),
		"polynomial": DefaultPolynomialCDF[fixed.P10](),
	}
	step := parse10("0.05")
	for name, f := range fs {
		prev := f.MustEval(parse10("-7"))
		for x := parse10("-6.95"); x.Cmp(parse10("7")) <= 0; x = x.MustAdd(step) {
			y := f.MustEval(x)
			require.True(t, prev.Cmp(y) <= 0, "%v: cdf is decreasing at %v: %v > %v", name, x, prev, y)
			require.True(t, y.Cmp(zero) >= 0 && y.Cmp(one) <= 0, "%v: cdf(%v) = %v", name, x, y)
			prev = y
		}
	}
}

func TestCDF_Agreement(t *testing.T) {
	r := DefaultRationalCDF[fixed.P10]()
	p := DefaultPolynomialCDF[fixed.P10]()
	tol := parse10("0.0002")
	step := parse10("0.0917")
	for x := parse10("-5"); x.Cmp(parse10("5")) < 0; x = x.MustAdd(step) {
		requireWithin(t, p.MustEval(x), r.MustEval(x), tol)
	}
}

func BenchmarkPolynomialCDF_Eval(b *testing.B) {
	f := DefaultPolynomialCDF[fixed.P18]()
	x := parse18("-1.12313512")
	for i := 0; i < b.N; i++ {
		_, _ = f.Eval(x)
	}
}
