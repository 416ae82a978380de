// lexer.go — scanner for Vlad source text.
//
// The lexer turns a source string into a flat token stream. It is
// byte-oriented with a small unicode escape hatch for the comparison
// operators ≠ ≤ ≥, which the language accepts alongside their ASCII
// spellings != <= >=.
//
// Numeric literals cover the whole tower (see number.go):
//
//	2        NUMBER carrying a natural
//	1.33     NUMBER carrying a real
//	2//3     NUMBER carrying a rational (contiguous, no spaces)
//	3i 2.5i  NUMBER carrying a complex with zero real part
//
// Lines whose first non-blank character is '#' are comments and are
// discarded here; the transcript prefixes (#>>, #/>, #<#, #<<) are stripped
// by the session driver before source ever reaches the lexer.
package vlad

import (
	"strconv"
	"unicode/utf8"
)

// TokenType represents the kind of token.
type TokenType int

const (
	// Special
	EOF TokenType = iota
	ILLEGAL

	// Literals & identifiers
	NUMBER
	BOOL
	IDENT

	// Keywords
	FN
	IF
	ELSE

	// Operators
	PLUS
	MINUS
	MUL
	DIV

	// Comparisons
	EQUAL   // "=" or "=="
	NEQUAL  // "!=" or "≠"
	LESS    // "<"
	GREATER // ">"
	LEQUAL  // "<=" or "≤"
	GEQUAL  // ">=" or "≥"

	// Condition operators
	AND // "&"
	OR  // "|"
	XOR // "^"
	NOT // "!"

	// Punctuation
	LPAREN
	RPAREN
	LBRACKET
	RBRACKET
	COMMA
	COLON
	SEMI
	ARROW // "->"
	BEGIN // "{"
	END   // "}"
)

var tokenNames = map[TokenType]string{
	EOF:      "end of input",
	ILLEGAL:  "illegal token",
	NUMBER:   "NUMBER",
	BOOL:     "BOOL",
	IDENT:    "IDENT",
	FN:       "'fn'",
	IF:       "'if'",
	ELSE:     "'else'",
	PLUS:     "'+'",
	MINUS:    "'-'",
	MUL:      "'*'",
	DIV:      "'/'",
	EQUAL:    "'='",
	NEQUAL:   "'≠'",
	LESS:     "'<'",
	GREATER:  "'>'",
	LEQUAL:   "'≤'",
	GEQUAL:   "'≥'",
	AND:      "'&'",
	OR:       "'|'",
	XOR:      "'^'",
	NOT:      "'!'",
	LPAREN:   "'('",
	RPAREN:   "')'",
	LBRACKET: "'['",
	RBRACKET: "']'",
	COMMA:    "','",
	COLON:    "':'",
	SEMI:     "';'",
	ARROW:    "'->'",
	BEGIN:    "'{'",
	END:      "'}'",
}

func (tt TokenType) String() string {
	if s, ok := tokenNames[tt]; ok {
		return s
	}
	return "unknown token"
}

// Token is a lexical token with an optional literal value.
type Token struct {
	Type   TokenType
	Lexeme string // raw text slice
	Number Number // parsed value for NUMBER tokens
	Bool   bool   // parsed value for BOOL tokens
	Line   int    // 1-based
	Col    int    // 0-based column of the first byte
}

// Pos is a source position carried by tokens and AST nodes.
type Pos struct {
	Line int
	Col  int
}

func (t Token) Pos() Pos { return Pos{Line: t.Line, Col: t.Col} }

var keywords = map[string]TokenType{
	"fn":    FN,
	"if":    IF,
	"else":  ELSE,
	"true":  BOOL,
	"false": BOOL,
}

// Lexer scans a Vlad source string into tokens.
type Lexer struct {
	src    string
	start  int // start index of current token
	cur    int // current index
	line   int // 1-based
	col    int // 0-based column within line
	tokens []Token

	// precise token start position
	tokStartLine int
	tokStartCol  int
}

// NewLexer creates a new lexer for the given source.
func NewLexer(src string) *Lexer {
	return &Lexer{src: src, line: 1}
}

// Tokenize scans the whole source in one call. The returned slice includes
// the trailing EOF token.
func Tokenize(src string) ([]Token, error) {
	return NewLexer(src).Scan()
}

func (l *Lexer) isAtEnd() bool { return l.cur >= len(l.src) }

func (l *Lexer) peek() (byte, bool) {
	if l.isAtEnd() {
		return 0, false
	}
	return l.src[l.cur], true
}

func (l *Lexer) peekN(n int) (byte, bool) {
	idx := l.cur + n
	if idx >= len(l.src) {
		return 0, false
	}
	return l.src[idx], true
}

func (l *Lexer) advance() (byte, bool) {
	if l.isAtEnd() {
		return 0, false
	}
	ch := l.src[l.cur]
	l.cur++
	if ch == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}
	return ch, true
}

func (l *Lexer) addToken(tt TokenType) Token {
	tok := Token{
		Type:   tt,
		Lexeme: l.src[l.start:l.cur],
		Line:   l.tokStartLine,
		Col:    l.tokStartCol,
	}
	l.tokens = append(l.tokens, tok)
	l.start = l.cur
	return tok
}

func (l *Lexer) addNumber(n Number) Token {
	tok := Token{
		Type:   NUMBER,
		Lexeme: l.src[l.start:l.cur],
		Number: n,
		Line:   l.tokStartLine,
		Col:    l.tokStartCol,
	}
	l.tokens = append(l.tokens, tok)
	l.start = l.cur
	return tok
}

func (l *Lexer) addBool(b bool) Token {
	tok := Token{
		Type:   BOOL,
		Lexeme: l.src[l.start:l.cur],
		Bool:   b,
		Line:   l.tokStartLine,
		Col:    l.tokStartCol,
	}
	l.tokens = append(l.tokens, tok)
	l.start = l.cur
	return tok
}

func (l *Lexer) skipWhitespace() {
	for !l.isAtEnd() {
		ch, _ := l.peek()
		switch ch {
		case ' ', '\r', '\n', '\t':
			l.advance()
			l.start = l.cur
		case '#':
			// comment: only when '#' opens the line content
			if !l.lineBlankBefore() {
				return
			}
			for {
				b, ok := l.peek()
				if !ok || b == '\n' {
					break
				}
				l.advance()
			}
			l.start = l.cur
		default:
			return
		}
	}
}

// lineBlankBefore reports whether everything on the current line before the
// cursor is blank, i.e. the upcoming character opens the line.
func (l *Lexer) lineBlankBefore() bool {
	for i := l.cur - 1; i >= 0; i-- {
		switch l.src[i] {
		case '\n':
			return true
		case ' ', '\t', '\r':
			continue
		default:
			return false
		}
	}
	return true
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
func isAlpha(b byte) bool { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_' }
func isAlphaNum(b byte) bool {
	return isAlpha(b) || isDigit(b)
}

func (l *Lexer) err(msg string) error {
	return &LexError{Line: l.line, Col: l.col, Msg: msg}
}

// scanIdentifier parses [A-Za-z_][A-Za-z0-9_]*, first byte already consumed.
func (l *Lexer) scanIdentifier() string {
	for {
		b, ok := l.peek()
		if !ok || !isAlphaNum(b) {
			break
		}
		l.advance()
	}
	return l.src[l.start:l.cur]
}

// scanNumber parses one numeric literal; the cursor sits on the first digit.
//
// Forms, in the order they are disambiguated:
//
//	digits '//' digits   rational
//	digits '.' digits    real (optionally suffixed 'i')
//	digits 'i'           complex (imaginary)
//	digits               natural
func (l *Lexer) scanNumber() (Number, error) {
	digits := func() string {
		from := l.cur
		for {
			b, ok := l.peek()
			if !ok || !isDigit(b) {
				break
			}
			l.advance()
		}
		return l.src[from:l.cur]
	}

	whole := digits()

	if b, ok := l.peek(); ok && b == '/' {
		if b2, ok2 := l.peekN(1); ok2 && b2 == '/' {
			l.advance()
			l.advance()
			den := digits()
			if den == "" {
				return Number{}, l.err("expected digits after '//'")
			}
			if l.numberRunsOn() {
				return Number{}, l.err("malformed rational literal")
			}
			num, err := strconv.ParseInt(whole, 10, 64)
			if err != nil {
				return Number{}, l.err("rational numerator out of range")
			}
			d, err := strconv.ParseInt(den, 10, 64)
			if err != nil {
				return Number{}, l.err("rational denominator out of range")
			}
			if d == 0 {
				return Number{}, l.err("rational literal with zero denominator")
			}
			return RationalNumber(num, d), nil
		}
	}

	real := false
	if b, ok := l.peek(); ok && b == '.' {
		if b2, ok2 := l.peekN(1); ok2 && isDigit(b2) {
			l.advance()
			digits()
			real = true
		}
	}

	imag := false
	if b, ok := l.peek(); ok && b == 'i' {
		// 'i' must end the literal: "3in" is malformed, not "3i" + "n"
		if b2, ok2 := l.peekN(1); !ok2 || !isAlphaNum(b2) {
			l.advance()
			imag = true
		}
	}

	if l.numberRunsOn() {
		return Number{}, l.err("malformed number literal")
	}

	lex := l.src[l.start:l.cur]
	if imag {
		f, err := strconv.ParseFloat(lex[:len(lex)-1], 64)
		if err != nil {
			return Number{}, l.err("invalid complex literal")
		}
		return ComplexNumber(complex(0, f)), nil
	}
	if real {
		f, err := strconv.ParseFloat(lex, 64)
		if err != nil {
			return Number{}, l.err("invalid real literal")
		}
		return RealNumber(f), nil
	}
	n, err := strconv.ParseInt(lex, 10, 64)
	if err != nil {
		return Number{}, l.err("integer literal out of range")
	}
	return NaturalNumber(n), nil
}

// numberRunsOn reports a letter or digit glued to the literal just scanned,
// e.g. "12x".
func (l *Lexer) numberRunsOn() bool {
	b, ok := l.peek()
	return ok && isAlphaNum(b)
}

// scanToken produces the next token, skipping whitespace and comments.
func (l *Lexer) scanToken() (Token, error) {
	l.skipWhitespace()
	l.tokStartLine = l.line
	l.tokStartCol = l.col
	l.start = l.cur

	if l.isAtEnd() {
		return l.addToken(EOF), nil
	}

	// Unicode comparison operators first; everything else is single-byte.
	if r, size := utf8.DecodeRuneInString(l.src[l.cur:]); size > 1 {
		switch r {
		case '≠':
			l.advanceRune(size)
			return l.addToken(NEQUAL), nil
		case '≤':
			l.advanceRune(size)
			return l.addToken(LEQUAL), nil
		case '≥':
			l.advanceRune(size)
			return l.addToken(GEQUAL), nil
		default:
			return Token{}, l.err("unexpected character: " + strconv.QuoteRune(r))
		}
	}

	ch, _ := l.advance()

	switch ch {
	case '{':
		return l.addToken(BEGIN), nil
	case '}':
		return l.addToken(END), nil
	case '(':
		return l.addToken(LPAREN), nil
	case ')':
		return l.addToken(RPAREN), nil
	case '[':
		return l.addToken(LBRACKET), nil
	case ']':
		return l.addToken(RBRACKET), nil
	case ',':
		return l.addToken(COMMA), nil
	case ':':
		return l.addToken(COLON), nil
	case ';':
		return l.addToken(SEMI), nil
	case '+':
		return l.addToken(PLUS), nil
	case '*':
		return l.addToken(MUL), nil
	case '/':
		return l.addToken(DIV), nil
	case '&':
		return l.addToken(AND), nil
	case '|':
		return l.addToken(OR), nil
	case '^':
		return l.addToken(XOR), nil
	case '-':
		if b, ok := l.peek(); ok && b == '>' {
			l.advance()
			return l.addToken(ARROW), nil
		}
		return l.addToken(MINUS), nil
	case '=':
		if b, ok := l.peek(); ok && b == '=' {
			l.advance()
		}
		return l.addToken(EQUAL), nil
	case '!':
		if b, ok := l.peek(); ok && b == '=' {
			l.advance()
			return l.addToken(NEQUAL), nil
		}
		return l.addToken(NOT), nil
	case '<':
		if b, ok := l.peek(); ok && b == '=' {
			l.advance()
			return l.addToken(LEQUAL), nil
		}
		return l.addToken(LESS), nil
	case '>':
		if b, ok := l.peek(); ok && b == '=' {
			l.advance()
			return l.addToken(GEQUAL), nil
		}
		return l.addToken(GREATER), nil
	}

	if isDigit(ch) {
		l.cur = l.start // rewind; scanNumber consumes from the first digit
		l.col = l.tokStartCol
		n, err := l.scanNumber()
		if err != nil {
			return Token{}, err
		}
		return l.addNumber(n), nil
	}

	if isAlpha(ch) {
		lex := l.scanIdentifier()
		if tt, ok := keywords[lex]; ok {
			if tt == BOOL {
				return l.addBool(lex == "true"), nil
			}
			return l.addToken(tt), nil
		}
		return l.addToken(IDENT), nil
	}

	return Token{}, l.err("unexpected character: " + strconv.Quote(string(ch)))
}

func (l *Lexer) advanceRune(size int) {
	l.cur += size
	l.col++
}

// Scan tokenizes the entire source and returns tokens (EOF included).
func (l *Lexer) Scan() ([]Token, error) {
	for {
		tok, err := l.scanToken()
		if err != nil {
			return nil, err
		}
		if tok.Type == EOF {
			return l.tokens, nil
		}
	}
}
