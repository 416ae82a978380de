// checker.go — static checking of units before they are admitted.
//
// Checking happens at definition time: a function body is verified against
// its declared signature before the definition is recorded, so a rejected
// definition leaves no trace. The rules are:
//
//   - every variable reference must name a parameter of the enclosing
//     function (NameError otherwise);
//   - every call must name a known function with matching arity, and each
//     argument type must promote to the declared parameter type
//     (NameError / TypeError);
//   - arithmetic needs numeric operands and yields their join; logic and
//     '!' need bool; ordering comparisons need numerics and yield bool;
//   - both branches of a conditional must yield joinable types, and the
//     statement's type is the join;
//   - the body's type must promote to the declared return type.
//
// Subtraction and unary minus widen natural operands to integer, since the
// result can be negative. A function's own signature is visible inside its
// body, so direct recursion checks without special cases.
package vlad

import "fmt"

// Signature is the callable shape of a function: ordered parameter types
// and a return type.
type Signature struct {
	Params []Type
	Return Type
}

// SignatureLookup resolves a function name to its signature. The session
// driver supplies a lookup over the registry and the built-in library.
type SignatureLookup func(name string) (Signature, bool)

// Signature returns the callable shape of a definition.
func (f *FunctionDef) Signature() Signature {
	params := make([]Type, len(f.Params))
	for i, p := range f.Params {
		params[i] = p.Type
	}
	return Signature{Params: params, Return: f.Return}
}

// CheckFunction verifies a definition against its declared signature.
func CheckFunction(def *FunctionDef, lookup SignatureLookup) error {
	env := make(map[string]Type, len(def.Params))
	for _, p := range def.Params {
		if _, dup := env[p.Name]; dup {
			return &NameError{Line: p.P.Line, Col: p.P.Col,
				Msg: fmt.Sprintf("duplicate parameter: %s", p.Name)}
		}
		env[p.Name] = p.Type
	}
	self := def.Signature()
	c := &checker{env: env, lookup: func(name string) (Signature, bool) {
		if name == def.Name {
			return self, true
		}
		return lookup(name)
	}}
	got, err := c.checkBlock(def.Body)
	if err != nil {
		return err
	}
	if !got.PromotesTo(def.Return) {
		return &TypeError{Line: def.P.Line, Col: def.P.Col,
			Msg: fmt.Sprintf("return type mismatch: %s is not %s", got, def.Return)}
	}
	return nil
}

// CheckStatement verifies a top-level statement, where no variables are in
// scope, and returns its type.
func CheckStatement(s Stmt, lookup SignatureLookup) (Type, error) {
	c := &checker{env: map[string]Type{}, lookup: lookup}
	return c.checkStmt(s)
}

type checker struct {
	env    map[string]Type
	lookup SignatureLookup
}

// checkBlock types a statement sequence; the block's type is the type of
// its last statement.
func (c *checker) checkBlock(stmts []Stmt) (Type, error) {
	var t Type
	for _, s := range stmts {
		var err error
		t, err = c.checkStmt(s)
		if err != nil {
			return Type{}, err
		}
	}
	return t, nil
}

func (c *checker) checkStmt(s Stmt) (Type, error) {
	switch s := s.(type) {
	case *ExprStmt:
		return c.checkExpr(s.X)
	case *If:
		cond, err := c.checkExpr(s.Cond)
		if err != nil {
			return Type{}, err
		}
		if !cond.IsBool() {
			return Type{}, &TypeError{Line: s.Cond.Pos().Line, Col: s.Cond.Pos().Col,
				Msg: fmt.Sprintf("condition must be bool, got %s", cond)}
		}
		then, err := c.checkBlock(s.Then)
		if err != nil {
			return Type{}, err
		}
		alt, err := c.checkBlock(s.Else)
		if err != nil {
			return Type{}, err
		}
		joined, ok := then.Join(alt)
		if !ok {
			return Type{}, &TypeError{Line: s.P.Line, Col: s.P.Col,
				Msg: fmt.Sprintf("if branches disagree: %s vs %s", then, alt)}
		}
		return joined, nil
	}
	return Type{}, &TypeError{Msg: "unsupported statement"}
}

func (c *checker) checkExpr(e Expr) (Type, error) {
	switch e := e.(type) {
	case *NumberLit:
		return ScalarType(e.Value.Kind), nil

	case *BoolLit:
		return ScalarType(KindBool), nil

	case *VarRef:
		t, ok := c.env[e.Name]
		if !ok {
			return Type{}, &NameError{Line: e.P.Line, Col: e.P.Col,
				Msg: fmt.Sprintf("undefined variable: %s", e.Name)}
		}
		return t, nil

	case *Unary:
		return c.checkUnary(e)

	case *Binary:
		return c.checkBinary(e)

	case *Compare:
		return c.checkCompare(e)

	case *Logic:
		x, err := c.checkExpr(e.X)
		if err != nil {
			return Type{}, err
		}
		y, err := c.checkExpr(e.Y)
		if err != nil {
			return Type{}, err
		}
		if !x.IsBool() || !y.IsBool() {
			return Type{}, &TypeError{Line: e.P.Line, Col: e.P.Col,
				Msg: fmt.Sprintf("operator %s needs bool operands, got %s and %s", e.Op, x, y)}
		}
		return ScalarType(KindBool), nil

	case *Call:
		return c.checkCall(e)

	case *ListLit:
		return c.checkList(e)
	}
	return Type{}, &TypeError{Msg: "unsupported expression"}
}

func (c *checker) checkUnary(e *Unary) (Type, error) {
	x, err := c.checkExpr(e.X)
	if err != nil {
		return Type{}, err
	}
	switch e.Op {
	case NOT:
		if !x.IsBool() {
			return Type{}, &TypeError{Line: e.P.Line, Col: e.P.Col,
				Msg: fmt.Sprintf("operator %s needs a bool operand, got %s", e.Op, x)}
		}
		return ScalarType(KindBool), nil
	case PLUS, MINUS:
		t, ok := signType(e.Op, x)
		if !ok {
			return Type{}, &TypeError{Line: e.P.Line, Col: e.P.Col,
				Msg: fmt.Sprintf("invalid operand to %s: %s", e.Op, x)}
		}
		return t, nil
	}
	return Type{}, &TypeError{Line: e.P.Line, Col: e.P.Col, Msg: "unsupported unary operator"}
}

// signType types a unary sign over a scalar or, element-wise, over a list
// of numerics. Minus widens natural to integer like arithType does.
func signType(op TokenType, x Type) (Type, bool) {
	if x.IsList() {
		elem, ok := signType(op, *x.Elem)
		if !ok {
			return Type{}, false
		}
		return ListType(elem), true
	}
	if !x.IsNumeric() {
		return Type{}, false
	}
	if op == MINUS && x.Kind == KindNatural {
		return ScalarType(KindInteger), true
	}
	return x, true
}

func (c *checker) checkBinary(e *Binary) (Type, error) {
	x, err := c.checkExpr(e.X)
	if err != nil {
		return Type{}, err
	}
	y, err := c.checkExpr(e.Y)
	if err != nil {
		return Type{}, err
	}
	t, ok := arithType(e.Op, x, y)
	if !ok {
		return Type{}, &TypeError{Line: e.P.Line, Col: e.P.Col,
			Msg: fmt.Sprintf("invalid operands to %s: %s and %s", e.Op, x, y)}
	}
	return t, nil
}

// arithType types an arithmetic operator over scalars or, element-wise,
// over two lists of the same shape.
func arithType(op TokenType, x, y Type) (Type, bool) {
	if x.IsList() && y.IsList() {
		elem, ok := arithType(op, *x.Elem, *y.Elem)
		if !ok {
			return Type{}, false
		}
		return ListType(elem), true
	}
	if !x.IsNumeric() || !y.IsNumeric() {
		return Type{}, false
	}
	k := joinKind(x.Kind, y.Kind)
	if op == MINUS && k == KindNatural {
		k = KindInteger
	}
	return ScalarType(k), true
}

func (c *checker) checkCompare(e *Compare) (Type, error) {
	x, err := c.checkExpr(e.X)
	if err != nil {
		return Type{}, err
	}
	y, err := c.checkExpr(e.Y)
	if err != nil {
		return Type{}, err
	}
	ok := x.IsNumeric() && y.IsNumeric()
	if !ok && (e.Op == EQUAL || e.Op == NEQUAL) {
		ok = x.IsBool() && y.IsBool()
	}
	if !ok {
		return Type{}, &TypeError{Line: e.P.Line, Col: e.P.Col,
			Msg: fmt.Sprintf("invalid operands to %s: %s and %s", e.Op, x, y)}
	}
	return ScalarType(KindBool), nil
}

func (c *checker) checkCall(e *Call) (Type, error) {
	sig, ok := c.lookup(e.Name)
	if !ok {
		return Type{}, &NameError{Line: e.P.Line, Col: e.P.Col,
			Msg: fmt.Sprintf("undefined function: %s", e.Name)}
	}
	if len(e.Args) != len(sig.Params) {
		return Type{}, &TypeError{Line: e.P.Line, Col: e.P.Col,
			Msg: fmt.Sprintf("wrong number of arguments to %s: expected %d, got %d",
				e.Name, len(sig.Params), len(e.Args))}
	}
	for i, a := range e.Args {
		got, err := c.checkExpr(a)
		if err != nil {
			return Type{}, err
		}
		if !got.PromotesTo(sig.Params[i]) {
			return Type{}, &TypeError{Line: a.Pos().Line, Col: a.Pos().Col,
				Msg: fmt.Sprintf("argument type mismatch at position %d: %s is not %s",
					i+1, got, sig.Params[i])}
		}
	}
	return sig.Return, nil
}

func (c *checker) checkList(e *ListLit) (Type, error) {
	if len(e.Elems) == 0 {
		return Type{}, &TypeError{Line: e.P.Line, Col: e.P.Col,
			Msg: "cannot infer the type of an empty list"}
	}
	elem, err := c.checkExpr(e.Elems[0])
	if err != nil {
		return Type{}, err
	}
	for _, x := range e.Elems[1:] {
		t, err := c.checkExpr(x)
		if err != nil {
			return Type{}, err
		}
		joined, ok := elem.Join(t)
		if !ok {
			return Type{}, &TypeError{Line: x.Pos().Line, Col: x.Pos().Col,
				Msg: fmt.Sprintf("list elements disagree: %s vs %s", elem, t)}
		}
		elem = joined
	}
	return ListType(elem), nil
}
