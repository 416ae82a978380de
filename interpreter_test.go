// interpreter_test.go
package vlad

import (
	"errors"
	"strings"
	"testing"
)

// --- helpers ---------------------------------------------------------------

func mustDefine(t *testing.T, ip *Interpreter, src string) {
	t.Helper()
	def := parseDef(t, src)
	if err := ip.Define(def); err != nil {
		t.Fatalf("Define error for %q: %v", src, err)
	}
}

func mustEval(t *testing.T, ip *Interpreter, src string) Value {
	t.Helper()
	v, err := ip.EvalStatement(parseStmt(t, src))
	if err != nil {
		t.Fatalf("eval error for %q: %v", src, err)
	}
	return v
}

func evalText(t *testing.T, ip *Interpreter, src string) string {
	t.Helper()
	return FormatValue(mustEval(t, ip, src))
}

func wantEvalError(t *testing.T, ip *Interpreter, src, sub string) error {
	t.Helper()
	_, err := ip.EvalStatement(parseStmt(t, src))
	if err == nil {
		t.Fatalf("want error for %q", src)
	}
	if !strings.Contains(err.Error(), sub) {
		t.Fatalf("%q: want %q in %q", src, sub, err.Error())
	}
	return err
}

// --- tests -----------------------------------------------------------------

func Test_Interpreter_Arithmetic(t *testing.T) {
	ip := NewInterpreter()
	cases := []struct {
		src  string
		want string
	}{
		{"1 + 2 * 3", "7"},
		{"2 - 5", "-3"},
		{"7 / 2", "3"},
		{"2 / 2", "1"},
		{"1 + 2//3", "5 / 3"},
		{"1//2 / 2", "1 / 4"},
		{"1 + 1.33", "2.33"},
		{"2 * 3i", "0 + 6i"},
		{"(1 + 2) * 3", "9"},
		{"-3", "-3"},
	}
	for _, tc := range cases {
		if got := evalText(t, ip, tc.src); got != tc.want {
			t.Fatalf("%q: want %q, got %q", tc.src, tc.want, got)
		}
	}
}

func Test_Interpreter_Comparisons(t *testing.T) {
	ip := NewInterpreter()
	cases := []struct {
		src  string
		want string
	}{
		{"1 < 2", "true"},
		{"2 <= 2", "true"},
		{"1 = 1.0", "true"},
		{"1//2 == 0.5", "true"},
		{"1 != 2", "true"},
		{"3 > 4", "false"},
		{"1 < 2 & 2 < 3", "true"},
		{"1 < 2 ^ 2 < 3", "false"},
		{"!(1 < 2) | true", "true"},
		// incomparable complex pairs are false under every ordering
		{"1 + 2i < 2 + 3i", "false"},
		{"1 + 2i < 1 + 3i", "true"},
	}
	for _, tc := range cases {
		if got := evalText(t, ip, tc.src); got != tc.want {
			t.Fatalf("%q: want %q, got %q", tc.src, tc.want, got)
		}
	}
}

func Test_Interpreter_DivisionByZero(t *testing.T) {
	ip := NewInterpreter()
	err := wantEvalError(t, ip, "5 / 0", "ArithmeticError: division by zero")
	var ae *ArithmeticError
	if !errors.As(err, &ae) {
		t.Fatalf("want *ArithmeticError, got %T", err)
	}
	// zero of every kind divides out
	wantEvalError(t, ip, "1 / 0.0", "division by zero")
	wantEvalError(t, ip, "1 / (1 - 1)", "division by zero")
}

func Test_Interpreter_ShortCircuitBranches(t *testing.T) {
	ip := NewInterpreter()
	if got := evalText(t, ip, "if true { 1 } else { 1 / 0 }"); got != "1" {
		t.Fatalf("want 1, got %q", got)
	}
	if got := evalText(t, ip, "if false { 1 / 0 } else { 2 }"); got != "2" {
		t.Fatalf("want 2, got %q", got)
	}
}

func Test_Interpreter_UserFunctions(t *testing.T) {
	ip := NewInterpreter()
	mustDefine(t, ip, "fn x_cos(x: real) -> real { x * cos(x) }")
	if got := evalText(t, ip, "x_cos(0.5)"); got != "0.438791281" {
		t.Fatalf("want 0.438791281, got %q", got)
	}
}

func Test_Interpreter_Recursion(t *testing.T) {
	ip := NewInterpreter()
	mustDefine(t, ip, "fn fact(n: integer) -> integer { if n < 1 { 1 } else { n * fact(n - 1) } }")
	if got := evalText(t, ip, "fact(10)"); got != "3628800" {
		t.Fatalf("want 3628800, got %q", got)
	}
}

func Test_Interpreter_NestedCalls(t *testing.T) {
	ip := NewInterpreter()
	mustDefine(t, ip, "fn double(x: real) -> real { x + x }")
	mustDefine(t, ip, "fn quad(x: real) -> real { double(double(x)) }")
	if got := evalText(t, ip, "quad(3)"); got != "12" {
		t.Fatalf("want 12, got %q", got)
	}
}

func Test_Interpreter_UserFunctionShadowsBuiltin(t *testing.T) {
	ip := NewInterpreter()
	mustDefine(t, ip, "fn abs(x: real) -> real { if x < 0 { -x } else { x } }")
	for _, tc := range []struct{ src, want string }{
		{"abs(-3)", "3"},
		{"abs(3)", "3"},
	} {
		if got := evalText(t, ip, tc.src); got != tc.want {
			t.Fatalf("%q: want %q, got %q", tc.src, tc.want, got)
		}
	}
}

func Test_Interpreter_DuplicateDefinitionRejected(t *testing.T) {
	ip := NewInterpreter()
	mustDefine(t, ip, "fn f(x: real) -> real { x }")
	err := ip.Define(parseDef(t, "fn f(x: real) -> real { x + 1 }"))
	if err == nil || !strings.Contains(err.Error(), "NameError: duplicate definition: f") {
		t.Fatalf("got %v", err)
	}
	// the original definition is untouched
	if got := evalText(t, ip, "f(2)"); got != "2" {
		t.Fatalf("want 2, got %q", got)
	}
}

func Test_Interpreter_RejectedDefinitionLeavesNoTrace(t *testing.T) {
	ip := NewInterpreter()
	err := ip.Define(parseDef(t, "fn g(x: real) -> real { y }"))
	if err == nil {
		t.Fatalf("want check error")
	}
	if ip.Defined("g") {
		t.Fatalf("failed definition must not register")
	}
}

func Test_Interpreter_ArgumentPromotionAtCallBoundary(t *testing.T) {
	ip := NewInterpreter()
	mustDefine(t, ip, "fn ident(x: real) -> real { x }")
	// a natural argument arrives as a real
	if got := evalText(t, ip, "ident(2)"); got != "2" {
		t.Fatalf("want 2, got %q", got)
	}
	v := mustEval(t, ip, "ident(2)")
	if v.Num.Kind != KindReal {
		t.Fatalf("want real, got %s", v.Num.Kind)
	}
}

func Test_Interpreter_DefensiveArityCheck(t *testing.T) {
	ip := NewInterpreter()
	mustDefine(t, ip, "fn half(x: real) -> real { x / 2 }")

	// Calls built by hand bypass the checker, so evalCall has to guard the
	// argument count itself before indexing into the parameter list.
	two := []Expr{
		&NumberLit{Value: RealNumber(1)},
		&NumberLit{Value: RealNumber(2)},
	}
	for _, name := range []string{"cos", "half"} {
		_, err := ip.eval(&Call{Name: name, Args: two}, nil)
		if err == nil {
			t.Fatalf("%s: want error for a two-argument call", name)
		}
		var te *TypeError
		if !errors.As(err, &te) {
			t.Fatalf("%s: want TypeError, got %v", name, err)
		}
		if !strings.Contains(err.Error(), "wrong number of arguments") {
			t.Fatalf("%s: unexpected message: %v", name, err)
		}
	}
}

func Test_Interpreter_Lists(t *testing.T) {
	ip := NewInterpreter()
	cases := []struct {
		src  string
		want string
	}{
		{"[1, 2, 3]", "[1, 2, 3]"},
		{"[1, 2] + [3, 4]", "[4, 6]"},
		{"[1, 2] * [3, 4]", "[3, 8]"},
		{"-[1, 2]", "[-1, -2]"},
		// mixed element kinds promote to their join
		{"[1, 1//2]", "[1 / 1, 1 / 2]"},
	}
	for _, tc := range cases {
		if got := evalText(t, ip, tc.src); got != tc.want {
			t.Fatalf("%q: want %q, got %q", tc.src, tc.want, got)
		}
	}

	wantEvalError(t, ip, "[1] + [1, 2]", "ArithmeticError: element count mismatch: 1 vs 2")
	wantEvalError(t, ip, "[1, 2] / [1, 0]", "division by zero")
}

func Test_Interpreter_Determinism(t *testing.T) {
	ip := NewInterpreter()
	mustDefine(t, ip, "fn x_cos(x: real) -> real { x * cos(x) }")
	s := parseStmt(t, "x_cos(0.5)")
	a, err := ip.EvalStatement(s)
	if err != nil {
		t.Fatalf("first eval: %v", err)
	}
	b, err := ip.EvalStatement(s)
	if err != nil {
		t.Fatalf("second eval: %v", err)
	}
	if FormatValue(a) != FormatValue(b) {
		t.Fatalf("same statement, different values: %q vs %q", FormatValue(a), FormatValue(b))
	}
}

func Test_Interpreter_LeftOperandFaultsFirst(t *testing.T) {
	ip := NewInterpreter()
	mustDefine(t, ip, "fn sq(x: real) -> real { sqrt(x) }")
	// both operands fault; the left one reports
	err := wantEvalError(t, ip, "sq(-1) + 1 / 0", "sqrt of a negative number")
	if strings.Contains(err.Error(), "division") {
		t.Fatalf("right operand fault leaked: %v", err)
	}
}
