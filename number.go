// number.go — the Vlad numeric tower.
//
// Numbers live on a total promotion order
//
//	natural < integer < rational < real < complex
//
// and every binary operation is performed after promoting both operands to
// their join (the least kind both promote to). Naturals and integers are
// exact 64-bit; rationals are pairs of 64-bit integers kept in lowest terms
// with a positive denominator; reals are float64; complex values are
// complex128.
//
// Real equality is epsilon-based (EPS) so that values arriving via different
// promotion paths still compare equal. Complex values are only partially
// ordered: two values compare when their real or imaginary parts agree.
package vlad

import "math"

// EPS is the tolerance for real (and complex component) equality.
const EPS = 1e-14

// Rat is a rational number in lowest terms, Den > 0.
type Rat struct {
	Num int64
	Den int64
}

// Number is a value of one of the five numeric kinds. Which payload field is
// valid depends on Kind.
type Number struct {
	Kind Kind
	Int  int64      // KindNatural, KindInteger
	Rat  Rat        // KindRational
	Real float64    // KindReal
	Cplx complex128 // KindComplex
}

// NaturalNumber builds a natural. Negative input is an integer in disguise;
// callers that may produce one should go through Neg instead.
func NaturalNumber(n int64) Number {
	if n < 0 {
		return IntegerNumber(n)
	}
	return Number{Kind: KindNatural, Int: n}
}

func IntegerNumber(n int64) Number { return Number{Kind: KindInteger, Int: n} }

// RationalNumber builds a rational reduced to lowest terms with a positive
// denominator. Den must be non-zero.
func RationalNumber(num, den int64) Number {
	if den < 0 {
		num, den = -num, -den
	}
	g := gcd(abs64(num), den)
	if g > 1 {
		num /= g
		den /= g
	}
	return Number{Kind: KindRational, Rat: Rat{Num: num, Den: den}}
}

func RealNumber(f float64) Number       { return Number{Kind: KindReal, Real: f} }
func ComplexNumber(c complex128) Number { return Number{Kind: KindComplex, Cplx: c} }

func abs64(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}

// gcd over non-negative inputs; gcd(0, n) = n.
func gcd(a, b int64) int64 {
	for a > 0 && b > 0 {
		if a > b {
			a = a % b
		} else {
			b = b % a
		}
	}
	return a + b
}

// Promote converts n to kind k, which must be ≥ n.Kind on the promotion
// order. Promoting to the same kind is the identity.
func (n Number) Promote(k Kind) Number {
	if n.Kind == k {
		return n
	}
	switch k {
	case KindInteger:
		return IntegerNumber(n.Int)
	case KindRational:
		return Number{Kind: KindRational, Rat: Rat{Num: n.Int, Den: 1}}
	case KindReal:
		switch n.Kind {
		case KindNatural, KindInteger:
			return RealNumber(float64(n.Int))
		case KindRational:
			return RealNumber(float64(n.Rat.Num) / float64(n.Rat.Den))
		}
	case KindComplex:
		switch n.Kind {
		case KindNatural, KindInteger:
			return ComplexNumber(complex(float64(n.Int), 0))
		case KindRational:
			return ComplexNumber(complex(float64(n.Rat.Num)/float64(n.Rat.Den), 0))
		case KindReal:
			return ComplexNumber(complex(n.Real, 0))
		}
	}
	return n
}

// promotePair lifts both operands to their join kind.
func promotePair(a, b Number) (Number, Number, Kind) {
	k := joinKind(a.Kind, b.Kind)
	return a.Promote(k), b.Promote(k), k
}

// IsZero reports whether n is exactly zero (EPS-close for real/complex).
func (n Number) IsZero() bool {
	switch n.Kind {
	case KindNatural, KindInteger:
		return n.Int == 0
	case KindRational:
		return n.Rat.Num == 0
	case KindReal:
		return math.Abs(n.Real) < EPS
	case KindComplex:
		return math.Abs(real(n.Cplx)) < EPS && math.Abs(imag(n.Cplx)) < EPS
	}
	return false
}

// Neg negates. Negating a natural yields an integer; every other kind stays
// put.
func (n Number) Neg() Number {
	switch n.Kind {
	case KindNatural:
		return IntegerNumber(-n.Int)
	case KindInteger:
		return IntegerNumber(-n.Int)
	case KindRational:
		return RationalNumber(-n.Rat.Num, n.Rat.Den)
	case KindReal:
		return RealNumber(-n.Real)
	case KindComplex:
		return ComplexNumber(-n.Cplx)
	}
	return n
}

// Add returns a + b at the join kind.
func (a Number) Add(b Number) Number {
	x, y, k := promotePair(a, b)
	switch k {
	case KindNatural, KindInteger:
		return Number{Kind: k, Int: x.Int + y.Int}
	case KindRational:
		return RationalNumber(
			x.Rat.Num*y.Rat.Den+x.Rat.Den*y.Rat.Num,
			x.Rat.Den*y.Rat.Den,
		)
	case KindReal:
		return RealNumber(x.Real + y.Real)
	case KindComplex:
		return ComplexNumber(x.Cplx + y.Cplx)
	}
	return a
}

// Sub returns a - b at the join kind. Subtraction can leave the naturals, so
// a natural result below zero moves to integer.
func (a Number) Sub(b Number) Number {
	x, y, k := promotePair(a, b)
	switch k {
	case KindNatural:
		d := x.Int - y.Int
		if d < 0 {
			return IntegerNumber(d)
		}
		return Number{Kind: KindNatural, Int: d}
	case KindInteger:
		return IntegerNumber(x.Int - y.Int)
	case KindRational:
		return RationalNumber(
			x.Rat.Num*y.Rat.Den-x.Rat.Den*y.Rat.Num,
			x.Rat.Den*y.Rat.Den,
		)
	case KindReal:
		return RealNumber(x.Real - y.Real)
	case KindComplex:
		return ComplexNumber(x.Cplx - y.Cplx)
	}
	return a
}

// Mul returns a * b at the join kind.
func (a Number) Mul(b Number) Number {
	x, y, k := promotePair(a, b)
	switch k {
	case KindNatural, KindInteger:
		return Number{Kind: k, Int: x.Int * y.Int}
	case KindRational:
		return RationalNumber(x.Rat.Num*y.Rat.Num, x.Rat.Den*y.Rat.Den)
	case KindReal:
		return RealNumber(x.Real * y.Real)
	case KindComplex:
		return ComplexNumber(x.Cplx * y.Cplx)
	}
	return a
}

// Div returns a / b at the join kind. The caller must reject a zero divisor
// first (IsZero); natural and integer division truncate.
func (a Number) Div(b Number) Number {
	x, y, k := promotePair(a, b)
	switch k {
	case KindNatural, KindInteger:
		return Number{Kind: k, Int: x.Int / y.Int}
	case KindRational:
		return RationalNumber(x.Rat.Num*y.Rat.Den, x.Rat.Den*y.Rat.Num)
	case KindReal:
		return RealNumber(x.Real / y.Real)
	case KindComplex:
		return ComplexNumber(x.Cplx / y.Cplx)
	}
	return a
}

func realEq(a, b float64) bool { return math.Abs(a-b) < EPS }

// Equal reports numeric equality at the join kind.
func (a Number) Equal(b Number) bool {
	x, y, k := promotePair(a, b)
	switch k {
	case KindNatural, KindInteger:
		return x.Int == y.Int
	case KindRational:
		return x.Rat == y.Rat
	case KindReal:
		return realEq(x.Real, y.Real)
	case KindComplex:
		return realEq(real(x.Cplx), real(y.Cplx)) && realEq(imag(x.Cplx), imag(y.Cplx))
	}
	return false
}

// Compare orders a against b at the join kind. The second result is false
// when the pair is incomparable, which only happens for complex values whose
// real and imaginary parts both differ.
func (a Number) Compare(b Number) (int, bool) {
	x, y, k := promotePair(a, b)
	switch k {
	case KindNatural, KindInteger:
		return cmp64(x.Int, y.Int), true
	case KindRational:
		return cmp64(x.Rat.Num*y.Rat.Den, x.Rat.Den*y.Rat.Num), true
	case KindReal:
		if realEq(x.Real, y.Real) {
			return 0, true
		}
		if x.Real < y.Real {
			return -1, true
		}
		return 1, true
	case KindComplex:
		xr, xi := real(x.Cplx), imag(x.Cplx)
		yr, yi := real(y.Cplx), imag(y.Cplx)
		if realEq(xr, yr) {
			return cmpReal(xi, yi), true
		}
		if realEq(xi, yi) {
			return cmpReal(xr, yr), true
		}
		return 0, false
	}
	return 0, false
}

func cmp64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpReal(a, b float64) int {
	if realEq(a, b) {
		return 0
	}
	if a < b {
		return -1
	}
	return 1
}

// Float64 flattens n into a float64 (real part only for complex). Built-ins
// with real parameters use this after promotion.
func (n Number) Float64() float64 {
	switch n.Kind {
	case KindNatural, KindInteger:
		return float64(n.Int)
	case KindRational:
		return float64(n.Rat.Num) / float64(n.Rat.Den)
	case KindReal:
		return n.Real
	case KindComplex:
		return real(n.Cplx)
	}
	return 0
}
