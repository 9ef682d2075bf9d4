package fixed_test

import (
	"encoding/json"
	"fmt"

	"github.com/govalues/fixed"
)

// This example accrues simple interest for 90 days of a 365-day year.
// Each step truncates to 4 digits.
func Example_simpleInterest() {
	principal := fixed.MustParse[fixed.P4]("1000")
	rate := fixed.MustParse[fixed.P4]("0.0525")
	days := fixed.NewFromInt64[fixed.P4](90)
	year := fixed.NewFromInt64[fixed.P4](365)

	interest := principal.MustMul(rate)
	fmt.Println(interest)
	interest = interest.MustMulQuo(days, year)
	fmt.Println(interest)
	fmt.Println(principal.MustAdd(interest))
	// Output:
	// 52.5
	// 12.9452
	// 1012.9452
}

func ExampleNew() {
	fmt.Println(fixed.New[fixed.P0](-123))
	fmt.Println(fixed.New[fixed.P2](-123))
	fmt.Println(fixed.New[fixed.P4](-123))
	// Output:
	// -123
	// -1.23
	// -0.0123
}

func ExampleNewFromInt64() {
	fmt.Println(fixed.NewFromInt64[fixed.P0](-123))
	fmt.Println(fixed.NewFromInt64[fixed.P18](-123))
	// Output:
	// -123
	// -123
}

func ExampleParse() {
	fmt.Println(fixed.Parse[fixed.P4]("-1.23"))
	fmt.Println(fixed.Parse[fixed.P4]("0.123456789"))
	fmt.Println(fixed.Parse[fixed.P4]("+.5"))
	fmt.Println(fixed.Parse[fixed.P4]("1e5"))
	// Output:
	// -1.23 <nil>
	// 0.1234 <nil>
	// 0.5 <nil>
	// 0 parsing "1e5": invalid character 'e': invalid fixed-point number
}

func ExampleFixed_String() {
	fmt.Println(fixed.MustParse[fixed.P6]("1.230000").String())
	fmt.Println(fixed.MustParse[fixed.P6]("-0.000100").String())
	fmt.Println(fixed.MustParse[fixed.P6]("100").String())
	// Output:
	// 1.23
	// -0.0001
	// 100
}

func ExampleFixed_MarshalText() {
	type Quote struct {
		Bid fixed.Fixed[fixed.P4] `json:"bid"`
		Ask fixed.Fixed[fixed.P4] `json:"ask"`
	}
	q := Quote{
		Bid: fixed.MustParse[fixed.P4]("1.0721"),
		Ask: fixed.MustParse[fixed.P4]("1.0723"),
	}
	b, err := json.Marshal(q)
	if err != nil {
		panic(err)
	}
	fmt.Println(string(b))
	// Output:
	// {"bid":"1.0721","ask":"1.0723"}
}

func ExampleFixed_Mul() {
	d := fixed.MustParse[fixed.P6]("1.5")
	e := fixed.MustParse[fixed.P6]("-0.0333333")
	fmt.Println(d.Mul(e))
	// Output:
	// -0.049999 <nil>
}

func ExampleFixed_Quo() {
	d := fixed.MustParse[fixed.P6]("-2")
	e := fixed.MustParse[fixed.P6]("3")
	fmt.Println(d.Quo(e))
	fmt.Println(d.Quo(fixed.Zero[fixed.P6]()))
	// Output:
	// -0.666666 <nil>
	// 0 computing [-2 / 0]: division by zero
}

func ExampleFixed_MulQuo() {
	d := fixed.MustParse[fixed.P6]("1")
	e := fixed.MustParse[fixed.P6]("2")
	f := fixed.MustParse[fixed.P6]("3")
	fmt.Println(d.MulQuo(e, f))
	// Output:
	// 0.666666 <nil>
}

func ExampleFixed_QuoRem() {
	d := fixed.MustParse[fixed.P2]("-7.5")
	e := fixed.MustParse[fixed.P2]("2")
	fmt.Println(d.QuoRem(e))
	// Output:
	// -3 -1.5 <nil>
}

func ExampleFixed_Lsh() {
	d := fixed.MustParse[fixed.P6]("1.5")
	fmt.Println(d.Lsh(3))
	// Output:
	// 12 <nil>
}

func ExampleFixed_Rsh() {
	fmt.Println(fixed.MustParse[fixed.P6]("1").Rsh(3))
	fmt.Println(fixed.MustParse[fixed.P6]("0.000001").Rsh(1))
	// Output:
	// 0.125
	// 0
}

func ExampleFixed_Floor() {
	fmt.Println(fixed.MustParse[fixed.P2]("-1.5").Floor())
	fmt.Println(fixed.MustParse[fixed.P2]("1.5").Floor())
	// Output:
	// -2 <nil>
	// 1 <nil>
}

func ExampleFixed_Cmp() {
	d := fixed.MustParse[fixed.P2]("-23")
	e := fixed.MustParse[fixed.P2]("5.67")
	fmt.Println(d.Cmp(e))
	fmt.Println(d.Cmp(d))
	fmt.Println(e.Cmp(d))
	// Output:
	// -1
	// 0
	// 1
}

func ExampleLn2() {
	fmt.Println(fixed.Ln2[fixed.P10]())
	fmt.Println(fixed.E[fixed.P10]())
	fmt.Println(fixed.Pi[fixed.P10]())
	// Output:
	// 0.6931471805
	// 2.7182818284
	// 3.1415926535
}
