package special

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/govalues/fixed"
)

func TestExp(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			x     string
			order int
			want  string
		}{
			{"0", 10, "1"},
			{"1", 10, "2.7182818278"},
			{"2", 10, "7.3890560972"},
			{"0.5", 10, "1.6487212701"},
			{"-0.5", 10, "0.6065306595"},
			{"-1.12313512", 10, "0.3252584699"},
			{"20", 10, "485165196.0777998336"},
			{"-1.231231", 20, "0.2919329867"},
			{"10", 20, "22026.4658075648"},
			{"-30", 20, "0"},
			{"-400", 20, "0"},
			{"-1000000", 20, "0"},
		}
		for _, tt := range tests {
			f, err := NewExp[fixed.P10](tt.order)
			require.NoError(t, err)
			got := evalBoth[fixed.P10](t, f, parse10(tt.x))
			require.Equal(t, parse10(tt.want), got, "exp(%v), order %v", tt.x, tt.order)
		}
	})

	t.Run("18 digits", func(t *testing.T) {
		tests := []struct {
			x, want string
		}{
			{"1", "2.718281828459045222"},
			{"-1", "0.367879441171442318"},
			{"10", "22026.465794806716563456"},
			{"0.5", "1.648721270700128139"},
		}
		f, err := NewExp[fixed.P18](20)
		require.NoError(t, err)
		for _, tt := range tests {
			got := evalBoth[fixed.P18](t, f, parse18(tt.x))
			require.Equal(t, parse18(tt.want), got, "exp(%v)", tt.x)
		}
	})

	t.Run("error", func(t *testing.T) {
		f := DefaultExp[fixed.P18]()
		for _, x := range []string{"200", "1000", "100000000000000000000000000000"} {
			_, err := f.Eval(parse18(x))
			require.ErrorIs(t, err, fixed.ErrOverflow, "exp(%v)", x)
			require.Panics(t, func() { f.MustEval(parse18(x)) }, "exp(%v)", x)
		}
		_, err := DefaultExp[fixed.P0]().Eval(fixed.NewFromInt64[fixed.P0](1))
		require.ErrorIs(t, err, fixed.ErrDomain)
	})
}

func TestExp_Monotonic(t *testing.T) {
	f := DefaultExp[fixed.P10]()
	step := parse10("0.0173")
	prev := f.MustEval(parse10("-10"))
	for x := parse10("-10").MustAdd(step); x.Cmp(parse10("10")) < 0; x = x.MustAdd(step) {
		y := f.MustEval(x)
		require.True(t, prev.Less(y), "exp is not increasing at %v: %v >= %v", x, prev, y)
		prev = y
	}
}

func TestExp_Oracle(t *testing.T) {
	f, err := NewExp[fixed.P18](20)
	require.NoError(t, err)
	step := parse18("0.0371")
	for x := parse18("-5"); x.Cmp(parse18("5")) < 0; x = x.MustAdd(step) {
		got := f.MustEval(x)
		want, err := oracle(x).ExpTaylor(30)
		require.NoError(t, err)
		diff := oracle(got).Sub(want).Abs()
		require.True(t, diff.LessThan(want.Mul(oracle(parse18("0.00000000000001")))), "exp(%v) = %v, want %v", x, got, want)
	}
}

func BenchmarkExp_Eval(b *testing.B) {
	f := DefaultExp[fixed.P18]()
	x := parse18("-1.12313512")
	for i := 0; i < b.N; i++ {
		_, _ = f.Eval(x)
	}
}
