// session.go — the transcript-oriented session driver.
//
// A session processes units one at a time against a single interpreter.
// Each unit is the source of one function definition or one top-level
// statement, and produces exactly one output:
//
//	#>> fn x_cos(x: real) -> real { x * cos(x) }
//	#<# function x_cos: (real) -> real
//	#>> x_cos(0.5)
//	#<< 0.438791281
//
// Multi-line inputs continue with the `#/> ` prefix. A failing unit
// reports the error's message on the value channel and leaves the registry
// exactly as it was:
//
//	#>> 5 / 0
//	#<< ArithmeticError: division by zero
package vlad

import "strings"

// Transcript line prefixes.
const (
	PromptPrefix = "#>> "
	ContPrefix   = "#/> "
	TypePrefix   = "#<# "
	ValuePrefix  = "#<< "
)

// ResultKind says which output channel a unit's result belongs to.
type ResultKind int

const (
	ResultSignature ResultKind = iota // a definition was accepted
	ResultValue                       // a statement evaluated
	ResultError                       // the unit failed at any stage
)

// Result is the single output of one processed unit.
type Result struct {
	Kind ResultKind
	Text string
}

// Prefix returns the transcript prefix for the result's channel. Errors
// report on the value channel.
func (r Result) Prefix() string {
	if r.Kind == ResultSignature {
		return TypePrefix
	}
	return ValuePrefix
}

// Session drives an interpreter through a sequence of units.
type Session struct {
	ip *Interpreter
}

// NewSession returns a session with a fresh interpreter.
func NewSession() *Session { return &Session{ip: NewInterpreter()} }

// Interpreter exposes the underlying interpreter, mainly for the REPL's
// parse probing.
func (s *Session) Interpreter() *Interpreter { return s.ip }

// Submit processes the source of one unit. A definition yields its
// signature, a statement yields its printed value, and any failure yields
// the error's message; a failed unit has no effect on the registry.
func (s *Session) Submit(src string) Result {
	r, err := s.Eval(src)
	if err != nil {
		return Result{Kind: ResultError, Text: err.Error()}
	}
	return r
}

// Eval is Submit with the raw error exposed, for callers that render
// their own diagnostics (the REPL shows caret snippets).
func (s *Session) Eval(src string) (Result, error) {
	u, err := ParseUnit(src)
	if err != nil {
		return Result{}, err
	}
	return s.applyUnit(u)
}

func (s *Session) apply(u Unit) Result {
	r, err := s.applyUnit(u)
	if err != nil {
		return Result{Kind: ResultError, Text: err.Error()}
	}
	return r
}

func (s *Session) applyUnit(u Unit) (Result, error) {
	switch u := u.(type) {
	case *FunctionDef:
		if err := s.ip.Define(u); err != nil {
			return Result{}, err
		}
		return Result{Kind: ResultSignature, Text: FormatSignature(u.Name, u.Signature())}, nil
	case Stmt:
		v, err := s.ip.EvalStatement(u)
		if err != nil {
			return Result{}, err
		}
		return Result{Kind: ResultValue, Text: FormatValue(v)}, nil
	}
	return Result{}, &ParseError{Msg: "empty unit"}
}

// RunProgram processes a bare script: a sequence of units with no
// transcript framing. Parsing is whole-file, so a syntax error yields no
// results; after that each unit is processed independently and failures do
// not stop later units.
func (s *Session) RunProgram(src string) ([]Result, error) {
	units, err := ParseProgram(src)
	if err != nil {
		return nil, err
	}
	results := make([]Result, 0, len(units))
	for _, u := range units {
		results = append(results, s.apply(u))
	}
	return results, nil
}

// RunTranscript re-plays a transcript: `#>> `/`#/> ` lines are gathered
// into units and echoed, each followed by its freshly computed output
// line. Stale output lines in the input are dropped, blank lines are kept,
// and anything else passes through untouched.
func (s *Session) RunTranscript(input string) string {
	var out strings.Builder
	var unit []string
	var echo []string

	flush := func() {
		if len(unit) == 0 {
			return
		}
		for _, l := range echo {
			out.WriteString(l)
			out.WriteByte('\n')
		}
		r := s.Submit(strings.Join(unit, "\n"))
		out.WriteString(r.Prefix())
		out.WriteString(r.Text)
		out.WriteByte('\n')
		unit, echo = nil, nil
	}

	lines := strings.Split(input, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, PromptPrefix):
			flush()
			unit = []string{strings.TrimPrefix(line, PromptPrefix)}
			echo = []string{line}
		case strings.HasPrefix(line, ContPrefix) && len(unit) > 0:
			unit = append(unit, strings.TrimPrefix(line, ContPrefix))
			echo = append(echo, line)
		case strings.HasPrefix(line, TypePrefix) || strings.HasPrefix(line, ValuePrefix):
			// stale output from a previous run
		case strings.TrimSpace(line) == "":
			flush()
			out.WriteByte('\n')
		default:
			flush()
			out.WriteString(line)
			out.WriteByte('\n')
		}
	}
	flush()

	res := out.String()
	return strings.TrimSuffix(res, "\n") + "\n"
}
