// interpreter.go — runtime values and the tree-walking evaluator.
//
// The Interpreter owns the function registry and the built-in library.
// Definitions are checked before they are recorded, so everything the
// evaluator touches has already passed the checker; the remaining runtime
// failures are arithmetic ones (division by zero, domain errors from
// built-ins, element count mismatches) plus defensive NameErrors that
// indicate a checker bug rather than a user mistake.
//
// Name resolution is late and registry-first: a call site is resolved when
// it executes, user definitions shadow built-ins of the same name, and a
// function body may call functions defined after it as long as they exist
// by the time the body runs. Arguments evaluate left to right and are
// promoted to the declared parameter types at the call boundary; the
// result is promoted to the declared return type.
package vlad

import "fmt"

// ValueTag discriminates runtime values.
type ValueTag int

const (
	VTNumber ValueTag = iota
	VTBool
	VTList
)

// Value is a runtime value: a number of some kind, a bool, or a
// homogeneous list.
type Value struct {
	Tag  ValueTag
	Num  Number
	Bool bool
	List []Value
}

func NumberValue(n Number) Value { return Value{Tag: VTNumber, Num: n} }
func BoolValue(b bool) Value     { return Value{Tag: VTBool, Bool: b} }
func ListValue(xs []Value) Value { return Value{Tag: VTList, List: xs} }

// Type reports the runtime type of a value. Lists are never empty, so the
// element type is read off the first element.
func (v Value) Type() Type {
	switch v.Tag {
	case VTNumber:
		return ScalarType(v.Num.Kind)
	case VTBool:
		return ScalarType(KindBool)
	default:
		return ListType(v.List[0].Type())
	}
}

// Builtin is a native function with a fixed signature.
type Builtin struct {
	Name string
	Sig  Signature
	Impl func(args []Value) (Value, error)
}

// Interpreter holds the session state: user definitions and built-ins.
type Interpreter struct {
	registry map[string]*FunctionDef
	builtins map[string]*Builtin
}

// NewInterpreter returns an interpreter with the built-in library
// installed and an empty registry.
func NewInterpreter() *Interpreter {
	ip := &Interpreter{
		registry: make(map[string]*FunctionDef),
		builtins: make(map[string]*Builtin),
	}
	registerMathBuiltins(ip)
	return ip
}

// RegisterBuiltin installs a native function. User definitions of the same
// name shadow it.
func (ip *Interpreter) RegisterBuiltin(b *Builtin) { ip.builtins[b.Name] = b }

// Lookup resolves a callable name to its signature, registry first.
func (ip *Interpreter) Lookup(name string) (Signature, bool) {
	if def, ok := ip.registry[name]; ok {
		return def.Signature(), true
	}
	if b, ok := ip.builtins[name]; ok {
		return b.Sig, true
	}
	return Signature{}, false
}

// Defined reports whether name is in the user registry.
func (ip *Interpreter) Defined(name string) bool {
	_, ok := ip.registry[name]
	return ok
}

// Define checks a function definition and records it. Redefining a name
// already in the registry is rejected; the failed attempt leaves the
// registry untouched.
func (ip *Interpreter) Define(def *FunctionDef) error {
	if _, dup := ip.registry[def.Name]; dup {
		return &NameError{Line: def.P.Line, Col: def.P.Col,
			Msg: fmt.Sprintf("duplicate definition: %s", def.Name)}
	}
	if err := CheckFunction(def, ip.Lookup); err != nil {
		return err
	}
	ip.registry[def.Name] = def
	return nil
}

// EvalStatement checks and evaluates a top-level statement.
func (ip *Interpreter) EvalStatement(s Stmt) (Value, error) {
	if _, err := CheckStatement(s, ip.Lookup); err != nil {
		return Value{}, err
	}
	return ip.evalStmt(s, nil)
}

// ─────────────────────────────── evaluation ─────────────────────────────

type env map[string]Value

func (ip *Interpreter) evalBlock(stmts []Stmt, e env) (Value, error) {
	var v Value
	for _, s := range stmts {
		var err error
		v, err = ip.evalStmt(s, e)
		if err != nil {
			return Value{}, err
		}
	}
	return v, nil
}

func (ip *Interpreter) evalStmt(s Stmt, e env) (Value, error) {
	switch s := s.(type) {
	case *ExprStmt:
		return ip.eval(s.X, e)
	case *If:
		cond, err := ip.eval(s.Cond, e)
		if err != nil {
			return Value{}, err
		}
		// only the taken branch evaluates
		if cond.Bool {
			return ip.evalBlock(s.Then, e)
		}
		return ip.evalBlock(s.Else, e)
	}
	return Value{}, fmt.Errorf("unsupported statement")
}

func (ip *Interpreter) eval(x Expr, e env) (Value, error) {
	switch x := x.(type) {
	case *NumberLit:
		return NumberValue(x.Value), nil

	case *BoolLit:
		return BoolValue(x.Value), nil

	case *VarRef:
		v, ok := e[x.Name]
		if !ok {
			return Value{}, &NameError{Line: x.P.Line, Col: x.P.Col,
				Msg: fmt.Sprintf("undefined variable: %s", x.Name)}
		}
		return v, nil

	case *Unary:
		return ip.evalUnary(x, e)

	case *Binary:
		return ip.evalBinary(x, e)

	case *Compare:
		return ip.evalCompare(x, e)

	case *Logic:
		return ip.evalLogic(x, e)

	case *Call:
		return ip.evalCall(x, e)

	case *ListLit:
		return ip.evalList(x, e)
	}
	return Value{}, fmt.Errorf("unsupported expression")
}

func (ip *Interpreter) evalUnary(x *Unary, e env) (Value, error) {
	v, err := ip.eval(x.X, e)
	if err != nil {
		return Value{}, err
	}
	switch x.Op {
	case NOT:
		return BoolValue(!v.Bool), nil
	case PLUS:
		return v, nil
	case MINUS:
		return negValue(v), nil
	}
	return Value{}, fmt.Errorf("unsupported unary operator")
}

func negValue(v Value) Value {
	if v.Tag == VTList {
		out := make([]Value, len(v.List))
		for i, el := range v.List {
			out[i] = negValue(el)
		}
		return ListValue(out)
	}
	return NumberValue(v.Num.Neg())
}

func (ip *Interpreter) evalBinary(x *Binary, e env) (Value, error) {
	a, err := ip.eval(x.X, e)
	if err != nil {
		return Value{}, err
	}
	b, err := ip.eval(x.Y, e)
	if err != nil {
		return Value{}, err
	}
	return applyArith(x.Op, a, b, x.P)
}

// applyArith applies an arithmetic operator to two values, recursing
// element-wise over lists.
func applyArith(op TokenType, a, b Value, at Pos) (Value, error) {
	if a.Tag == VTList && b.Tag == VTList {
		if len(a.List) != len(b.List) {
			return Value{}, &ArithmeticError{Line: at.Line, Col: at.Col,
				Msg: fmt.Sprintf("element count mismatch: %d vs %d", len(a.List), len(b.List))}
		}
		out := make([]Value, len(a.List))
		for i := range a.List {
			v, err := applyArith(op, a.List[i], b.List[i], at)
			if err != nil {
				return Value{}, err
			}
			out[i] = v
		}
		return ListValue(out), nil
	}
	switch op {
	case PLUS:
		return NumberValue(a.Num.Add(b.Num)), nil
	case MINUS:
		return NumberValue(a.Num.Sub(b.Num)), nil
	case MUL:
		return NumberValue(a.Num.Mul(b.Num)), nil
	case DIV:
		if b.Num.IsZero() {
			return Value{}, &ArithmeticError{Line: at.Line, Col: at.Col,
				Msg: "division by zero"}
		}
		return NumberValue(a.Num.Div(b.Num)), nil
	}
	return Value{}, fmt.Errorf("unsupported binary operator")
}

func (ip *Interpreter) evalCompare(x *Compare, e env) (Value, error) {
	a, err := ip.eval(x.X, e)
	if err != nil {
		return Value{}, err
	}
	b, err := ip.eval(x.Y, e)
	if err != nil {
		return Value{}, err
	}
	if a.Tag == VTBool {
		switch x.Op {
		case EQUAL:
			return BoolValue(a.Bool == b.Bool), nil
		case NEQUAL:
			return BoolValue(a.Bool != b.Bool), nil
		}
	}
	switch x.Op {
	case EQUAL:
		return BoolValue(a.Num.Equal(b.Num)), nil
	case NEQUAL:
		return BoolValue(!a.Num.Equal(b.Num)), nil
	}
	// ordering on complex numbers is partial; incomparable pairs compare
	// false under every ordering operator
	ord, ok := a.Num.Compare(b.Num)
	if !ok {
		return BoolValue(false), nil
	}
	switch x.Op {
	case LESS:
		return BoolValue(ord < 0), nil
	case GREATER:
		return BoolValue(ord > 0), nil
	case LEQUAL:
		return BoolValue(ord <= 0), nil
	case GEQUAL:
		return BoolValue(ord >= 0), nil
	}
	return Value{}, fmt.Errorf("unsupported comparison operator")
}

func (ip *Interpreter) evalLogic(x *Logic, e env) (Value, error) {
	a, err := ip.eval(x.X, e)
	if err != nil {
		return Value{}, err
	}
	b, err := ip.eval(x.Y, e)
	if err != nil {
		return Value{}, err
	}
	switch x.Op {
	case AND:
		return BoolValue(a.Bool && b.Bool), nil
	case OR:
		return BoolValue(a.Bool || b.Bool), nil
	case XOR:
		return BoolValue(a.Bool != b.Bool), nil
	}
	return Value{}, fmt.Errorf("unsupported logic operator")
}

func (ip *Interpreter) evalCall(x *Call, e env) (Value, error) {
	args := make([]Value, len(x.Args))
	for i, a := range x.Args {
		v, err := ip.eval(a, e)
		if err != nil {
			return Value{}, err
		}
		args[i] = v
	}
	if def, ok := ip.registry[x.Name]; ok {
		if len(args) != len(def.Params) {
			return Value{}, arityError(x, len(def.Params), len(args))
		}
		return ip.callFunction(def, args)
	}
	if b, ok := ip.builtins[x.Name]; ok {
		if len(args) != len(b.Sig.Params) {
			return Value{}, arityError(x, len(b.Sig.Params), len(args))
		}
		for i := range args {
			args[i] = promoteValue(args[i], b.Sig.Params[i])
		}
		return b.Impl(args)
	}
	return Value{}, &NameError{Line: x.P.Line, Col: x.P.Col,
		Msg: fmt.Sprintf("undefined function: %s", x.Name)}
}

// arityError is the defensive counterpart of the checker's arity rule; the
// checker guarantees it never fires for checked statements.
func arityError(x *Call, want, got int) error {
	return &TypeError{Line: x.P.Line, Col: x.P.Col,
		Msg: fmt.Sprintf("wrong number of arguments to %s: expected %d, got %d",
			x.Name, want, got)}
}

func (ip *Interpreter) callFunction(def *FunctionDef, args []Value) (Value, error) {
	frame := make(env, len(def.Params))
	for i, p := range def.Params {
		frame[p.Name] = promoteValue(args[i], p.Type)
	}
	v, err := ip.evalBlock(def.Body, frame)
	if err != nil {
		return Value{}, err
	}
	return promoteValue(v, def.Return), nil
}

func (ip *Interpreter) evalList(x *ListLit, e env) (Value, error) {
	elems := make([]Value, len(x.Elems))
	kind := KindNatural
	for i, el := range x.Elems {
		v, err := ip.eval(el, e)
		if err != nil {
			return Value{}, err
		}
		elems[i] = v
		if v.Tag == VTNumber {
			kind = joinKind(kind, v.Num.Kind)
		}
	}
	// numeric elements are promoted to their join so the list stays
	// homogeneous
	if elems[0].Tag == VTNumber {
		for i := range elems {
			elems[i] = NumberValue(elems[i].Num.Promote(kind))
		}
	}
	return ListValue(elems), nil
}

// promoteValue widens a value so its type matches t exactly where t is
// wider; values already at or above t are returned unchanged.
func promoteValue(v Value, t Type) Value {
	switch {
	case v.Tag == VTNumber && t.IsNumeric() && v.Num.Kind < t.Kind:
		return NumberValue(v.Num.Promote(t.Kind))
	case v.Tag == VTList && t.IsList():
		out := make([]Value, len(v.List))
		for i, el := range v.List {
			out[i] = promoteValue(el, *t.Elem)
		}
		return ListValue(out)
	}
	return v
}
