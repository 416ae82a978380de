// number_test.go
package vlad

import "testing"

func Test_Number_RationalNormalization(t *testing.T) {
	cases := []struct {
		num, den int64
		wantN    int64
		wantD    int64
	}{
		{2, 4, 1, 2},
		{6, 3, 2, 1},
		{1, -4, -1, 4},
		{-2, -4, 1, 2},
		{0, 5, 0, 1},
	}
	for _, tc := range cases {
		r := RationalNumber(tc.num, tc.den).Rat
		if r.Num != tc.wantN || r.Den != tc.wantD {
			t.Fatalf("%d//%d: want %d/%d, got %d/%d", tc.num, tc.den, tc.wantN, tc.wantD, r.Num, r.Den)
		}
	}
}

func Test_Number_JoinKinds(t *testing.T) {
	cases := []struct {
		a, b Number
		want Kind
	}{
		{NaturalNumber(1), IntegerNumber(-1), KindInteger},
		{NaturalNumber(1), RationalNumber(1, 2), KindRational},
		{RationalNumber(1, 2), RealNumber(0.5), KindReal},
		{RealNumber(0.5), ComplexNumber(1i), KindComplex},
		{NaturalNumber(1), NaturalNumber(2), KindNatural},
	}
	for _, tc := range cases {
		if got := tc.a.Add(tc.b).Kind; got != tc.want {
			t.Fatalf("join of %s and %s: want %s, got %s", tc.a.Kind, tc.b.Kind, tc.want, got)
		}
	}
}

func Test_Number_TruncatingDivision(t *testing.T) {
	got := NaturalNumber(7).Div(NaturalNumber(2))
	if got.Kind != KindNatural || got.Int != 3 {
		t.Fatalf("7/2: want natural 3, got %s %d", got.Kind, got.Int)
	}
	got = IntegerNumber(-7).Div(IntegerNumber(2))
	if got.Kind != KindInteger || got.Int != -3 {
		t.Fatalf("-7/2: want integer -3, got %s %d", got.Kind, got.Int)
	}
}

func Test_Number_RationalDivision(t *testing.T) {
	got := RationalNumber(1, 2).Div(RationalNumber(2, 1))
	if got.Rat.Num != 1 || got.Rat.Den != 4 {
		t.Fatalf("(1/2)/(2/1): want 1/4, got %d/%d", got.Rat.Num, got.Rat.Den)
	}
	// sign normalizes onto the numerator
	got = RationalNumber(1, 2).Div(RationalNumber(-2, 1))
	if got.Rat.Num != -1 || got.Rat.Den != 4 {
		t.Fatalf("(1/2)/(-2): want -1/4, got %d/%d", got.Rat.Num, got.Rat.Den)
	}
}

func Test_Number_SubtractionLeavesNaturals(t *testing.T) {
	got := NaturalNumber(2).Sub(NaturalNumber(5))
	if got.Kind != KindInteger || got.Int != -3 {
		t.Fatalf("2-5: want integer -3, got %s %d", got.Kind, got.Int)
	}
	got = NaturalNumber(5).Sub(NaturalNumber(2))
	if got.Kind != KindNatural || got.Int != 3 {
		t.Fatalf("5-2: want natural 3, got %s %d", got.Kind, got.Int)
	}
}

func Test_Number_NegationOfNatural(t *testing.T) {
	got := NaturalNumber(3).Neg()
	if got.Kind != KindInteger || got.Int != -3 {
		t.Fatalf("-3: want integer, got %s %d", got.Kind, got.Int)
	}
}

func Test_Number_RealEpsilonEquality(t *testing.T) {
	a := RealNumber(0.1).Add(RealNumber(0.2))
	b := RealNumber(0.3)
	if !a.Equal(b) {
		t.Fatalf("0.1+0.2 should equal 0.3 within EPS")
	}
	if !RationalNumber(1, 2).Equal(RealNumber(0.5)) {
		t.Fatalf("1/2 should equal 0.5")
	}
}

func Test_Number_ComplexPartialOrder(t *testing.T) {
	// comparable: equal real parts order on the imaginary parts
	ord, ok := ComplexNumber(complex(1, 2)).Compare(ComplexNumber(complex(1, 3)))
	if !ok || ord != -1 {
		t.Fatalf("1+2i vs 1+3i: want -1/true, got %d/%v", ord, ok)
	}
	// comparable: equal imaginary parts order on the real parts
	ord, ok = ComplexNumber(complex(5, 2)).Compare(ComplexNumber(complex(1, 2)))
	if !ok || ord != 1 {
		t.Fatalf("5+2i vs 1+2i: want 1/true, got %d/%v", ord, ok)
	}
	// incomparable: both parts differ
	if _, ok := ComplexNumber(complex(1, 2)).Compare(ComplexNumber(complex(2, 3))); ok {
		t.Fatalf("1+2i vs 2+3i should be incomparable")
	}
}

func Test_Number_IsZero(t *testing.T) {
	for _, n := range []Number{
		NaturalNumber(0),
		IntegerNumber(0),
		RationalNumber(0, 7),
		RealNumber(0),
		RealNumber(1e-15),
		ComplexNumber(0),
	} {
		if !n.IsZero() {
			t.Fatalf("%s should be zero", FormatNumber(n))
		}
	}
	if NaturalNumber(1).IsZero() || RealNumber(0.1).IsZero() {
		t.Fatalf("non-zero values reported as zero")
	}
}
