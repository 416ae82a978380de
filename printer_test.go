// printer_test.go
package vlad

import "testing"

func Test_Printer_Numbers(t *testing.T) {
	cases := []struct {
		n    Number
		want string
	}{
		{NaturalNumber(42), "42"},
		{IntegerNumber(-7), "-7"},
		{RationalNumber(2, 3), "2 / 3"},
		{RationalNumber(1, -4), "-1 / 4"},
		{RealNumber(1.33), "1.33"},
		{RealNumber(3), "3"},
		{RealNumber(0.4387912809451864), "0.438791281"},
		{RealNumber(-0.25), "-0.25"},
		{ComplexNumber(complex(0, 3)), "0 + 3i"},
		{ComplexNumber(complex(13, 0)), "13 + 0i"},
		{ComplexNumber(complex(1, -2)), "1 - 2i"},
		{ComplexNumber(complex(-1.5, 2.5)), "-1.5 + 2.5i"},
	}
	for _, tc := range cases {
		if got := FormatNumber(tc.n); got != tc.want {
			t.Fatalf("want %q, got %q", tc.want, got)
		}
	}
}

func Test_Printer_NegativeZeroReal(t *testing.T) {
	if got := FormatNumber(RealNumber(-0.0000000001)); got != "0" {
		t.Fatalf("tiny negatives round to 0, got %q", got)
	}
}

func Test_Printer_Values(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{BoolValue(true), "true"},
		{BoolValue(false), "false"},
		{NumberValue(NaturalNumber(7)), "7"},
		{ListValue([]Value{
			NumberValue(NaturalNumber(1)),
			NumberValue(NaturalNumber(2)),
		}), "[1, 2]"},
		{ListValue([]Value{
			ListValue([]Value{NumberValue(NaturalNumber(1))}),
			ListValue([]Value{NumberValue(NaturalNumber(2))}),
		}), "[[1], [2]]"},
	}
	for _, tc := range cases {
		if got := FormatValue(tc.v); got != tc.want {
			t.Fatalf("want %q, got %q", tc.want, got)
		}
	}
}

func Test_Printer_SignatureRoundTrip(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"fn x_cos(x: real) -> real { x * cos(x) }", "function x_cos: (real) -> real"},
		{"fn pick(a: integer, b: rational) -> complex { b + 0i }", "function pick: (integer, rational) -> complex"},
		{"fn total(xs: list<real>) -> real { 0 }", "function total: (list<real>) -> real"},
	}
	for _, tc := range cases {
		def := parseDef(t, tc.src)
		if got := FormatSignature(def.Name, def.Signature()); got != tc.want {
			t.Fatalf("want %q, got %q", tc.want, got)
		}
	}
}
