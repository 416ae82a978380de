// errors.go — error taxonomy and caret-snippet rendering.
//
// Every stage fails with a typed error carrying a 1-based Line and 0-based
// Col. The Error() string is the stable rendering used verbatim by the
// session driver for failing transcript units:
//
//	LexError: unexpected character: "@"
//	ParseError: expected ')', found '}'
//	NameError: undefined variable: y
//	TypeError: argument type mismatch at position 1: bool is not real
//	ArithmeticError: division by zero
//
// WrapErrorWithSource recognizes these types and returns an error whose
// message is a multi-line snippet with one line of context on each side and
// a caret under the offending column:
//
//	ParseError at 3:12: expected ')', found '}'
//
//	   2 | fn f(x: real) -> real {
//	   3 |     (x + 1 }
//	       |            ^
//	   4 | }
//
// The snippet form is for terminals (CLI, REPL); transcripts always use the
// single-line Error() form.
package vlad

import (
	"errors"
	"fmt"
	"strings"
)

type LexError struct {
	Line int
	Col  int
	Msg  string
}

func (e *LexError) Error() string { return "LexError: " + e.Msg }

type ParseError struct {
	Line int
	Col  int
	Msg  string

	// Incomplete marks errors caused purely by running out of input while a
	// construct is open; the REPL uses it to prompt for continuation lines.
	Incomplete bool
}

func (e *ParseError) Error() string { return "ParseError: " + e.Msg }

type NameError struct {
	Line int
	Col  int
	Msg  string
}

func (e *NameError) Error() string { return "NameError: " + e.Msg }

type TypeError struct {
	Line int
	Col  int
	Msg  string
}

func (e *TypeError) Error() string { return "TypeError: " + e.Msg }

type ArithmeticError struct {
	Line int
	Col  int
	Msg  string
}

func (e *ArithmeticError) Error() string { return "ArithmeticError: " + e.Msg }

// IsIncomplete reports whether err is a ParseError caused by truncated
// input (an unclosed block or parenthesis at end of input).
func IsIncomplete(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe) && pe.Incomplete
}

// WrapErrorWithSource returns an error augmented with a caret-annotated
// snippet of the provided source. It recognizes the taxonomy above and
// leaves other errors untouched.
func WrapErrorWithSource(err error, src string) error {
	header, line, col := "", 0, 0
	switch e := err.(type) {
	case *LexError:
		header, line, col = "LexError", e.Line, e.Col+1
	case *ParseError:
		header, line, col = "ParseError", e.Line, e.Col+1
	case *NameError:
		header, line, col = "NameError", e.Line, e.Col+1
	case *TypeError:
		header, line, col = "TypeError", e.Line, e.Col+1
	case *ArithmeticError:
		header, line, col = "ArithmeticError", e.Line, e.Col+1
	default:
		return err
	}
	msg := strings.TrimPrefix(err.Error(), header+": ")
	return fmt.Errorf("%s", prettyErrorString(src, header, line, col, msg))
}

// prettyErrorString builds a snippet with a header and a caret. It shows at
// most one previous and one next line. Coordinates are 1-based and clamped
// to the source bounds.
func prettyErrorString(src, header string, line, col int, msg string) string {
	lines := strings.Split(src, "\n")
	if line < 1 {
		line = 1
	}
	if col < 1 {
		col = 1
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	if line > len(lines) {
		line = len(lines)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s at %d:%d: %s\n\n", header, line, col, msg)
	if line > 1 {
		fmt.Fprintf(&b, "%4d | %s\n", line-1, lines[line-2])
	}
	fmt.Fprintf(&b, "%4d | %s\n", line, lines[line-1])
	fmt.Fprintf(&b, "     | %s^\n", strings.Repeat(" ", col-1))
	if line < len(lines) {
		fmt.Fprintf(&b, "%4d | %s\n", line+1, lines[line])
	}
	return b.String()
}
