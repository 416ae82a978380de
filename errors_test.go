// errors_test.go
package vlad

import (
	"errors"
	"strings"
	"testing"
)

func Test_Errors_StableRenderings(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{&LexError{Msg: `unexpected character: "@"`}, `LexError: unexpected character: "@"`},
		{&ParseError{Msg: "expected ')'"}, "ParseError: expected ')'"},
		{&NameError{Msg: "undefined variable: y"}, "NameError: undefined variable: y"},
		{&TypeError{Msg: "return type mismatch"}, "TypeError: return type mismatch"},
		{&ArithmeticError{Msg: "division by zero"}, "ArithmeticError: division by zero"},
	}
	for _, tc := range cases {
		if got := tc.err.Error(); got != tc.want {
			t.Fatalf("want %q, got %q", tc.want, got)
		}
	}
}

func Test_Errors_IsIncomplete(t *testing.T) {
	if !IsIncomplete(&ParseError{Msg: "expected '}'", Incomplete: true}) {
		t.Fatalf("incomplete parse error not recognized")
	}
	if IsIncomplete(&ParseError{Msg: "expected '}'"}) {
		t.Fatalf("complete parse error misreported")
	}
	if IsIncomplete(&LexError{Msg: "x"}) {
		t.Fatalf("lex error misreported")
	}
}

func Test_Errors_SnippetWrapping(t *testing.T) {
	src := "fn f(x: real) -> real {\n    (x + 1 }\n}"
	err := &ParseError{Line: 2, Col: 11, Msg: "expected ')'"}
	wrapped := WrapErrorWithSource(err, src)
	out := wrapped.Error()

	for _, sub := range []string{
		"ParseError at 2:12: expected ')'",
		"   1 | fn f(x: real) -> real {",
		"   2 |     (x + 1 }",
		"^",
		"   3 | }",
	} {
		if !strings.Contains(out, sub) {
			t.Fatalf("missing %q in:\n%s", sub, out)
		}
	}

	// the caret sits under the offending column
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "^") {
			if got := strings.Index(line, "^"); got != len("     | ")+11 {
				t.Fatalf("caret at %d in %q", got, line)
			}
		}
	}
}

func Test_Errors_SnippetClampsOutOfRange(t *testing.T) {
	err := &TypeError{Line: 99, Col: 99, Msg: "return type mismatch"}
	out := WrapErrorWithSource(err, "1 + 1").Error()
	if !strings.Contains(out, "TypeError at 1:100: return type mismatch") {
		t.Fatalf("unexpected clamp result:\n%s", out)
	}
}

func Test_Errors_WrapLeavesForeignErrorsAlone(t *testing.T) {
	foreign := errors.New("boom")
	if WrapErrorWithSource(foreign, "src") != foreign {
		t.Fatalf("foreign errors must pass through untouched")
	}
	taxonomy := &ParseError{Line: 1, Col: 0, Msg: "x"}
	if WrapErrorWithSource(taxonomy, "src") == error(taxonomy) {
		t.Fatalf("taxonomy errors should be wrapped")
	}
}
