package special

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/govalues/fixed"
	"github.com/govalues/fixed/table"
)

type tableCase struct {
	name             string
	build            func(start, end, step num10) (*Tabulated[fixed.P10], error)
	direct           Function[fixed.P10]
	start, end, step string
	n                int
	lookups          [][2]string
}

func pdf10() Function[fixed.P10] {
	f, err := NewPDF[fixed.P10](DefaultPDFSqrtDepth, DefaultPDFExpOrder)
	if err != nil {
		panic(err)
	}
	return f
}

var tableCases = []tableCase{
	{
		name:    "rational cdf",
		build:   NewRationalCDFTable[fixed.P10],
		direct:  DefaultRationalCDF[fixed.P10](),
		start:   "-5",
		end:     "5",
		step:    "0.01",
		n:       1000,
		lookups: [][2]string{
			{"-1.12313512", "0.1307589768"},
			{"0", "0.5"},
			{"4.999", "0.9999999497"},
			{"-5", "0.0000000501"},
		},
	},
	{
		name:    "polynomial cdf",
		build:   NewPolynomialCDFTable[fixed.P10],
		direct:  DefaultPolynomialCDF[fixed.P10](),
		start:   "-6",
		end:     "6",
		step:    "0.01",
		n:       1200,
		lookups: [][2]string{
			{"1.96", "0.9750021038"},
			{"-1.12313512", "0.1306926221"},
			{"0", "0.5"},
		},
	},
	{
		name:    "pdf",
		build:   NewPDFTable[fixed.P10],
		direct:  pdf10(),
		start:   "-5",
		end:     "5",
		step:    "0.01",
		n:       1000,
		lookups: [][2]string{
			{"0", "0.3989422804"},
			{"1", "0.2419707244"},
			{"-1.12313512", "0.212321861"},
		},
	},
	{
		name:    "exp",
		build:   NewExpTable[fixed.P10],
		direct:  DefaultExp[fixed.P10](),
		start:   "-2",
		end:     "2",
		step:    "0.001",
		n:       4000,
		lookups: [][2]string{
			{"1", "2.7182818278"},
			{"-1.12313512", "0.3252584889"},
			{"0", "1"},
		},
	},
	{
		name:    "ln",
		build:   NewLnTable[fixed.P10],
		direct:  DefaultLn[fixed.P10](),
		start:   "0.5",
		end:     "4",
		step:    "0.001",
		n:       3500,
		lookups: [][2]string{
			{"1.4", "0.336472236"},
			{"1", "0"},
			{"2.5", "0.9162907313"},
		},
	},
	{
		name:    "sqrt",
		build:   NewSqrtTable[fixed.P10],
		direct:  DefaultSqrt[fixed.P10](),
		start:   "0",
		end:     "10",
		step:    "0.01",
		n:       1000,
		lookups: [][2]string{
			{"2", "1.4142135623"},
			{"0.005", "0.05"},
			{"9.999", "3.1621202192"},
		},
	},
}

func TestTabulated_Lookup(t *testing.T) {
	for _, tc := range tableCases {
		t.Run(tc.name, func(t *testing.T) {
			f, err := tc.build(parse10(tc.start), parse10(tc.end), parse10(tc.step))
			require.NoError(t, err)
			require.Equal(t, tc.n, f.Table().Len())
			for _, l := range tc.lookups {
				got := evalBoth[fixed.P10](t, f, parse10(l[0]))
				require.Equal(t, parse10(l[1]), got, "lookup(%v)", l[0])
			}
		})
	}
}

func TestTabulated_Samples(t *testing.T) {
	for _, tc := range tableCases {
		t.Run(tc.name, func(t *testing.T) {
			f, err := tc.build(parse10(tc.start), parse10(tc.end), parse10(tc.step))
			require.NoError(t, err)
			for i := 0; i < f.Table().Len(); i += 97 {
				x, y := f.Table().Sample(i)
				require.Equal(t, tc.direct.MustEval(x), y, "sample %v", i)
				require.Equal(t, y, f.MustEval(x), "lookup(%v)", x)
			}
		})
	}
}

func TestTabulated_Accuracy(t *testing.T) {
	tests := []struct {
		name             string
		start, end, step string
		tol              string
	}{
		{"rational cdf", "-5", "5", "0.01", "0.000005"},
		{"polynomial cdf", "-6", "6", "0.01", "0.000005"},
		{"pdf", "-5", "5", "0.01", "0.000006"},
		{"exp", "-2", "2", "0.001", "0.000001"},
		{"ln", "0.5", "4", "0.001", "0.000001"},
		{"sqrt", "1", "10", "0.01", "0.000004"},
	}
	for i, tt := range tests {
		tc := tableCases[i]
		require.Equal(t, tc.name, tt.name)
		t.Run(tt.name, func(t *testing.T) {
			start, end := parse10(tt.start), parse10(tt.end)
			f, err := tc.build(start, end, parse10(tt.step))
			require.NoError(t, err)
			tol := parse10(tt.tol)
			step := parse10("0.0137")
			for x := start; x.Less(end); x = x.MustAdd(step) {
				requireWithin(t, tc.direct.MustEval(x), f.MustEval(x), tol)
			}
		})
	}
}

func TestTabulated_Bounds(t *testing.T) {
	t.Run("saturate", func(t *testing.T) {
		cdf, err := NewRationalCDFTable(parse10("-5"), parse10("5"), parse10("0.01"))
		require.NoError(t, err)
		pdf, err := NewPDFTable(parse10("-5"), parse10("5"), parse10("0.01"))
		require.NoError(t, err)

		tests := []struct {
			f       *Tabulated[fixed.P10]
			x, want string
		}{
			{cdf, "5", "1"},
			{cdf, "100", "1"},
			{cdf, "-5.0000000001", "0"},
			{cdf, "-100", "0"},
			{pdf, "5", "0"},
			{pdf, "-6", "0"},
			{pdf, "7", "0"},
		}
		for _, tt := range tests {
			x := parse10(tt.x)
			_, err := tt.f.Eval(x)
			require.ErrorIs(t, err, fixed.ErrOutOfRange, "Eval(%v)", x)
			require.Equal(t, parse10(tt.want), tt.f.MustEval(x), "MustEval(%v)", x)
		}
	})

	t.Run("edge samples", func(t *testing.T) {
		fs := map[string]func(start, end, step num10) (*Tabulated[fixed.P10], error){
			"exp":  NewExpTable[fixed.P10],
			"ln":   NewLnTable[fixed.P10],
			"sqrt": NewSqrtTable[fixed.P10],
		}
		for name, build := range fs {
			f, err := build(parse10("1"), parse10("3"), parse10("0.25"))
			require.NoError(t, err, name)
			n := f.Table().Len()
			_, first := f.Table().Sample(0)
			_, last := f.Table().Sample(n - 1)

			_, err = f.Eval(parse10("3"))
			require.ErrorIs(t, err, fixed.ErrOutOfRange, name)
			require.Equal(t, last, f.MustEval(parse10("3")), name)
			require.Equal(t, last, f.MustEval(parse10("1000")), name)

			_, err = f.Eval(parse10("0.5"))
			require.ErrorIs(t, err, fixed.ErrOutOfRange, name)
			require.Equal(t, first, f.MustEval(parse10("0.5")), name)
		}
	})
}

func TestTabulated_Error(t *testing.T) {
	_, err := NewLnTable(parse10("-1"), parse10("1"), parse10("0.1"))
	require.ErrorIs(t, err, fixed.ErrDomain)
	_, err = NewSqrtTable(parse10("-1"), parse10("1"), parse10("0.1"))
	require.ErrorIs(t, err, fixed.ErrDomain)
	_, err = NewExpTable(parse10("1"), parse10("1"), parse10("0.1"))
	require.ErrorIs(t, err, fixed.ErrDomain)
	_, err = NewExpTable(parse10("0"), parse10("1"), parse10("0"))
	require.ErrorIs(t, err, fixed.ErrDomain)
}

func TestTabulatedConcurrent(t *testing.T) {
	start, end, step := parse10("-5"), parse10("5"), parse10("0.01")
	want, err := NewRationalCDFTable(start, end, step)
	require.NoError(t, err)
	for _, workers := range []int{0, 1, 4, 16} {
		got, err := NewTabulatedConcurrent[fixed.P10](context.Background(), DefaultRationalCDF[fixed.P10](), start, end, step, CDFBounds[fixed.P10](), workers)
		require.NoError(t, err)
		require.Equal(t, want.Table().Snapshot(), got.Table().Snapshot(), "workers %v", workers)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = NewTabulatedConcurrent[fixed.P10](ctx, DefaultExp[fixed.P10](), start, end, step, ExpBounds[fixed.P10](), 4)
	require.ErrorIs(t, err, context.Canceled)
}

func TestFromTable(t *testing.T) {
	src, err := NewPolynomialCDFTable(parse10("-6"), parse10("6"), parse10("0.05"))
	require.NoError(t, err)
	restored, err := table.FromSnapshot(src.Table().Snapshot())
	require.NoError(t, err)
	f := FromTable(restored, src.Bounds())
	for _, s := range []string{"-7", "-1.12313512", "0", "0.3", "5.99", "6", "8"} {
		x := parse10(s)
		require.Equal(t, src.MustEval(x), f.MustEval(x), "lookup(%v)", x)
	}
}

func BenchmarkTabulated_MustEval(b *testing.B) {
	f, err := NewPolynomialCDFTable(parse10("-6"), parse10("6"), parse10("0.01"))
	require.NoError(b, err)
	x := parse10("-1.12313512")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = f.MustEval(x)
	}
}
