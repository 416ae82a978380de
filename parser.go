// parser.go — recursive-descent parser for Vlad units.
//
// A unit is a function definition or a top-level statement. The grammar
// layers are, from loosest to tightest binding:
//
//	statement := 'if' compound block 'else' block | compound
//	compound  := condition (('&' | '|' | '^') condition)*
//	condition := '!' condition | expr (cmpOp expr)?
//	expr      := term (('+' | '-') term)*
//	term      := factor (('*' | '/') factor)*
//	factor    := NUMBER | BOOL | IDENT | IDENT '(' args ')'
//	           | '(' compound ')' | '[' elems ']' | ('+' | '-') factor
//
// Comparison operators do not chain: `a < b < c` is a parse error at the
// second operator. Blocks are brace-delimited, non-empty statement
// sequences with optional ';' separators, and the else branch of a
// conditional is mandatory.
//
// Two entry points exist: ParseUnit for scripts and transcripts, and
// ParseUnitInteractive for the REPL, where an unterminated construct at
// end of input yields a *ParseError with Incomplete set so the caller can
// prompt for a continuation line instead of reporting a failure.
package vlad

import "fmt"

// ParseUnit parses a complete source string holding exactly one unit.
func ParseUnit(src string) (Unit, error) {
	toks, err := Tokenize(src)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	return p.unit()
}

// ParseUnitInteractive parses like ParseUnit but marks errors caused by
// truncated input as Incomplete.
func ParseUnitInteractive(src string) (Unit, error) {
	toks, err := Tokenize(src)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks, interactive: true}
	return p.unit()
}

// ParseProgram parses a source string holding any number of units in
// sequence, as found in a script file.
func ParseProgram(src string) ([]Unit, error) {
	toks, err := Tokenize(src)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	var units []Unit
	for {
		p.skipSemis()
		if p.atEnd() {
			return units, nil
		}
		u, err := p.parseOne()
		if err != nil {
			return nil, err
		}
		units = append(units, u)
	}
}

type parser struct {
	toks        []Token
	i           int
	interactive bool
}

func (p *parser) atEnd() bool { return p.peek().Type == EOF }

func (p *parser) peek() Token {
	if p.i >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[p.i]
}

func (p *parser) prev() Token { return p.toks[p.i-1] }

func (p *parser) match(tt ...TokenType) bool {
	if p.atEnd() {
		return false
	}
	for _, t := range tt {
		if p.peek().Type == t {
			p.i++
			return true
		}
	}
	return false
}

func (p *parser) need(t TokenType, msg string) (Token, error) {
	if p.match(t) {
		return p.prev(), nil
	}
	return Token{}, p.errAt(p.peek(), msg)
}

// errAt builds a ParseError at the given token. At EOF in interactive mode
// the error is marked Incomplete.
func (p *parser) errAt(tok Token, msg string) error {
	e := &ParseError{Line: tok.Line, Col: tok.Col, Msg: msg}
	if tok.Type == EOF && p.interactive {
		e.Incomplete = true
	}
	return e
}

func (p *parser) skipSemis() {
	for p.match(SEMI) {
	}
}

// unit parses one unit and requires it to consume all input.
func (p *parser) unit() (Unit, error) {
	p.skipSemis()
	u, err := p.parseOne()
	if err != nil {
		return nil, err
	}
	p.skipSemis()
	if !p.atEnd() {
		g := p.peek()
		return nil, p.errAt(g, fmt.Sprintf("unexpected %s after statement", g.Type))
	}
	return u, nil
}

func (p *parser) parseOne() (Unit, error) {
	if p.peek().Type == FN {
		return p.function()
	}
	return p.statement()
}

// ─────────────────────────────── functions ──────────────────────────────

func (p *parser) function() (*FunctionDef, error) {
	fnTok, err := p.need(FN, "expected 'fn'")
	if err != nil {
		return nil, err
	}
	name, err := p.need(IDENT, "expected function name after 'fn'")
	if err != nil {
		return nil, err
	}
	if _, err := p.need(LPAREN, "expected '(' after function name"); err != nil {
		return nil, err
	}
	var params []Param
	if p.peek().Type != RPAREN {
		for {
			pname, err := p.need(IDENT, "expected parameter name")
			if err != nil {
				return nil, err
			}
			if _, err := p.need(COLON, "expected ':' after parameter name"); err != nil {
				return nil, err
			}
			ptype, err := p.parseType()
			if err != nil {
				return nil, err
			}
			params = append(params, Param{Name: pname.Lexeme, Type: ptype, P: pname.Pos()})
			if !p.match(COMMA) {
				break
			}
		}
	}
	if _, err := p.need(RPAREN, "expected ')' after parameters"); err != nil {
		return nil, err
	}
	if _, err := p.need(ARROW, "expected '->' before return type"); err != nil {
		return nil, err
	}
	ret, err := p.parseType()
	if err != nil {
		return nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	return &FunctionDef{
		Name:   name.Lexeme,
		Params: params,
		Return: ret,
		Body:   body,
		P:      fnTok.Pos(),
	}, nil
}

// parseType parses a scalar type name or list<...> with arbitrary nesting.
func (p *parser) parseType() (Type, error) {
	tok, err := p.need(IDENT, "expected type name")
	if err != nil {
		return Type{}, err
	}
	if tok.Lexeme == "list" {
		if _, err := p.need(LESS, "expected '<' after 'list'"); err != nil {
			return Type{}, err
		}
		elem, err := p.parseType()
		if err != nil {
			return Type{}, err
		}
		if _, err := p.need(GREATER, "expected '>' after list element type"); err != nil {
			return Type{}, err
		}
		return ListType(elem), nil
	}
	t, ok := TypeByName(tok.Lexeme)
	if !ok {
		return Type{}, p.errAt(tok, fmt.Sprintf("unknown type: %s", tok.Lexeme))
	}
	return t, nil
}

// ─────────────────────────────── statements ─────────────────────────────

// block parses a brace-delimited, non-empty statement sequence.
func (p *parser) block() ([]Stmt, error) {
	if _, err := p.need(BEGIN, "expected '{'"); err != nil {
		return nil, err
	}
	var stmts []Stmt
	for {
		p.skipSemis()
		if p.match(END) {
			if len(stmts) == 0 {
				return nil, p.errAt(p.prev(), "empty block")
			}
			return stmts, nil
		}
		if p.atEnd() {
			return nil, p.errAt(p.peek(), "expected '}'")
		}
		s, err := p.statement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
	}
}

func (p *parser) statement() (Stmt, error) {
	if p.peek().Type == IF {
		return p.ifStatement()
	}
	e, err := p.compound()
	if err != nil {
		return nil, err
	}
	return &ExprStmt{X: e}, nil
}

func (p *parser) ifStatement() (Stmt, error) {
	ifTok, err := p.need(IF, "expected 'if'")
	if err != nil {
		return nil, err
	}
	cond, err := p.compound()
	if err != nil {
		return nil, err
	}
	then, err := p.block()
	if err != nil {
		return nil, err
	}
	if _, err := p.need(ELSE, "expected 'else' after if branch"); err != nil {
		return nil, err
	}
	var alt []Stmt
	if p.peek().Type == IF {
		// else-if chains nest as a single-statement else block
		nested, err := p.ifStatement()
		if err != nil {
			return nil, err
		}
		alt = []Stmt{nested}
	} else {
		alt, err = p.block()
		if err != nil {
			return nil, err
		}
	}
	return &If{Cond: cond, Then: then, Else: alt, P: ifTok.Pos()}, nil
}

// ────────────────────────────── expressions ─────────────────────────────

func (p *parser) compound() (Expr, error) {
	left, err := p.condition()
	if err != nil {
		return nil, err
	}
	for p.match(AND, OR, XOR) {
		op := p.prev()
		right, err := p.condition()
		if err != nil {
			return nil, err
		}
		left = &Logic{Op: op.Type, X: left, Y: right, P: op.Pos()}
	}
	return left, nil
}

func (p *parser) condition() (Expr, error) {
	if p.match(NOT) {
		op := p.prev()
		x, err := p.condition()
		if err != nil {
			return nil, err
		}
		return &Unary{Op: NOT, X: x, P: op.Pos()}, nil
	}
	left, err := p.expr()
	if err != nil {
		return nil, err
	}
	if p.match(EQUAL, NEQUAL, LESS, GREATER, LEQUAL, GEQUAL) {
		op := p.prev()
		right, err := p.expr()
		if err != nil {
			return nil, err
		}
		return &Compare{Op: op.Type, X: left, Y: right, P: op.Pos()}, nil
	}
	return left, nil
}

func (p *parser) expr() (Expr, error) {
	left, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.match(PLUS, MINUS) {
		op := p.prev()
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		left = &Binary{Op: op.Type, X: left, Y: right, P: op.Pos()}
	}
	return left, nil
}

func (p *parser) term() (Expr, error) {
	left, err := p.factor()
	if err != nil {
		return nil, err
	}
	for p.match(MUL, DIV) {
		op := p.prev()
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		left = &Binary{Op: op.Type, X: left, Y: right, P: op.Pos()}
	}
	return left, nil
}

func (p *parser) factor() (Expr, error) {
	switch {
	case p.match(NUMBER):
		t := p.prev()
		return &NumberLit{Value: t.Number, P: t.Pos()}, nil

	case p.match(BOOL):
		t := p.prev()
		return &BoolLit{Value: t.Bool, P: t.Pos()}, nil

	case p.match(PLUS, MINUS):
		op := p.prev()
		x, err := p.factor()
		if err != nil {
			return nil, err
		}
		return &Unary{Op: op.Type, X: x, P: op.Pos()}, nil

	case p.match(IDENT):
		t := p.prev()
		if p.match(LPAREN) {
			return p.finishCall(t)
		}
		return &VarRef{Name: t.Lexeme, P: t.Pos()}, nil

	case p.match(LPAREN):
		e, err := p.compound()
		if err != nil {
			return nil, err
		}
		if _, err := p.need(RPAREN, "expected ')'"); err != nil {
			return nil, err
		}
		return e, nil

	case p.match(LBRACKET):
		return p.listLiteral(p.prev())
	}

	g := p.peek()
	return nil, p.errAt(g, fmt.Sprintf("expected expression, found %s", g.Type))
}

func (p *parser) finishCall(name Token) (Expr, error) {
	var args []Expr
	if p.peek().Type != RPAREN {
		for {
			a, err := p.compound()
			if err != nil {
				return nil, err
			}
			args = append(args, a)
			if !p.match(COMMA) {
				break
			}
		}
	}
	if _, err := p.need(RPAREN, "expected ')' after arguments"); err != nil {
		return nil, err
	}
	return &Call{Name: name.Lexeme, Args: args, P: name.Pos()}, nil
}

// listLiteral parses the elements after an opening '['. The literal may be
// empty at this level; the checker rejects it since no element type can be
// inferred.
func (p *parser) listLiteral(open Token) (Expr, error) {
	var elems []Expr
	if p.peek().Type != RBRACKET {
		for {
			e, err := p.compound()
			if err != nil {
				return nil, err
			}
			elems = append(elems, e)
			if !p.match(COMMA) {
				break
			}
		}
	}
	if _, err := p.need(RBRACKET, "expected ']' after list elements"); err != nil {
		return nil, err
	}
	return &ListLit{Elems: elems, P: open.Pos()}, nil
}
