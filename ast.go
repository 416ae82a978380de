// ast.go — syntax tree for Vlad units.
//
// A unit is either a function definition or a top-level statement. Trees
// are immutable once the parser returns them; the checker and evaluator
// only read.
package vlad

// Node is anything with a source position.
type Node interface {
	Pos() Pos
}

// Unit is a top-level parse result: a *FunctionDef or a statement.
type Unit interface {
	Node
	unitNode()
}

// Expr is an expression node.
type Expr interface {
	Node
	exprNode()
}

// Stmt is a statement node: an expression statement or a conditional whose
// branches are statement sequences. Every statement is also a valid
// top-level unit.
type Stmt interface {
	Unit
	stmtNode()
}

// NumberLit is a numeric literal of any kind in the tower.
type NumberLit struct {
	Value Number
	P     Pos
}

// BoolLit is `true` or `false`.
type BoolLit struct {
	Value bool
	P     Pos
}

// VarRef references a bound argument by name.
type VarRef struct {
	Name string
	P    Pos
}

// Unary applies a prefix operator: PLUS, MINUS or NOT.
type Unary struct {
	Op TokenType
	X  Expr
	P  Pos
}

// Binary applies an arithmetic operator: PLUS, MINUS, MUL or DIV.
type Binary struct {
	Op TokenType
	X  Expr
	Y  Expr
	P  Pos
}

// Compare applies a comparison operator and yields bool.
type Compare struct {
	Op TokenType // EQUAL NEQUAL LESS GREATER LEQUAL GEQUAL
	X  Expr
	Y  Expr
	P  Pos
}

// Logic joins two boolean operands with AND, OR or XOR.
type Logic struct {
	Op TokenType
	X  Expr
	Y  Expr
	P  Pos
}

// Call invokes a user function or a built-in with ordered arguments.
type Call struct {
	Name string
	Args []Expr
	P    Pos
}

// ListLit is a bracketed, non-empty, homogeneous list literal.
type ListLit struct {
	Elems []Expr
	P     Pos
}

func (n *NumberLit) Pos() Pos { return n.P }
func (n *BoolLit) Pos() Pos   { return n.P }
func (n *VarRef) Pos() Pos    { return n.P }
func (n *Unary) Pos() Pos     { return n.P }
func (n *Binary) Pos() Pos    { return n.P }
func (n *Compare) Pos() Pos   { return n.P }
func (n *Logic) Pos() Pos     { return n.P }
func (n *Call) Pos() Pos      { return n.P }
func (n *ListLit) Pos() Pos   { return n.P }

func (*NumberLit) exprNode() {}
func (*BoolLit) exprNode()   {}
func (*VarRef) exprNode()    {}
func (*Unary) exprNode()     {}
func (*Binary) exprNode()    {}
func (*Compare) exprNode()   {}
func (*Logic) exprNode()     {}
func (*Call) exprNode()      {}
func (*ListLit) exprNode()   {}

// ExprStmt wraps an expression used as a statement.
type ExprStmt struct {
	X Expr
}

// If is a conditional statement. The else branch is mandatory, and each
// branch is a non-empty statement sequence whose value is the value of its
// last statement.
type If struct {
	Cond Expr
	Then []Stmt
	Else []Stmt
	P    Pos
}

func (s *ExprStmt) Pos() Pos { return s.X.Pos() }
func (s *If) Pos() Pos       { return s.P }

func (*ExprStmt) stmtNode() {}
func (*If) stmtNode()       {}

func (*ExprStmt) unitNode() {}
func (*If) unitNode()       {}

// Param is one argument declaration in a function signature.
type Param struct {
	Name string
	Type Type
	P    Pos
}

// FunctionDef is a named, typed function definition.
type FunctionDef struct {
	Name   string
	Params []Param
	Return Type
	Body   []Stmt
	P      Pos
}

func (f *FunctionDef) Pos() Pos { return f.P }

func (*FunctionDef) unitNode() {}
