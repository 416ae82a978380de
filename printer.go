// printer.go — deterministic rendering of values and signatures.
//
// The renderings here are the transcript surface, so they are stable:
//
//	natural/integer  decimal                      42, -7
//	rational         spaced fraction              2 / 3, -1 / 4
//	real             9 fractional digits, trimmed 0.438791281, 1.33, 3
//	complex          both parts, always an 'i'    0 + 3i, 13 + 0i, 1 - 2i
//	bool             true, false
//	list             bracketed, comma separated   [1, 2, 3]
//
// Signatures render as `function name: (t1, t2) -> ret`.
package vlad

import (
	"strconv"
	"strings"
)

// FormatValue renders a runtime value for transcript and REPL output.
func FormatValue(v Value) string {
	switch v.Tag {
	case VTBool:
		return strconv.FormatBool(v.Bool)
	case VTList:
		parts := make([]string, len(v.List))
		for i, el := range v.List {
			parts[i] = FormatValue(el)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return FormatNumber(v.Num)
	}
}

// FormatNumber renders one number per the table above.
func FormatNumber(n Number) string {
	switch n.Kind {
	case KindNatural, KindInteger:
		return strconv.FormatInt(n.Int, 10)
	case KindRational:
		return strconv.FormatInt(n.Rat.Num, 10) + " / " + strconv.FormatInt(n.Rat.Den, 10)
	case KindReal:
		return formatReal(n.Real)
	case KindComplex:
		re, im := real(n.Cplx), imag(n.Cplx)
		sign := " + "
		if im < 0 {
			sign = " - "
			im = -im
		}
		return formatReal(re) + sign + formatReal(im) + "i"
	}
	return "?"
}

// formatReal prints nine fractional digits, then trims trailing zeros and
// a bare trailing point, so 3.0 prints as "3" and 1.33 as "1.33".
func formatReal(f float64) string {
	s := strconv.FormatFloat(f, 'f', 9, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}

// FormatSignature renders a function's callable shape, as reported when a
// definition is accepted.
func FormatSignature(name string, sig Signature) string {
	params := make([]string, len(sig.Params))
	for i, t := range sig.Params {
		params[i] = t.String()
	}
	return "function " + name + ": (" + strings.Join(params, ", ") + ") -> " + sig.Return.String()
}
