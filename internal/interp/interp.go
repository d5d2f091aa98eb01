// Package interp wires the parser and the evaluator into a pipeline and
// keeps interactive session state.
package interp

import (
	"github.com/nojima/toylang/internal/ast"
	"github.com/nojima/toylang/internal/eval"
	"github.com/nojima/toylang/internal/parser"
	"github.com/nojima/toylang/internal/value"
)

// Parser defines the interface for parsing toylang source code.
type Parser interface {
	Parse(src string) (ast.Program, error)
}

// ParserFunc adapts a function to the Parser interface.
type ParserFunc func(src string) (ast.Program, error)

// Parse implements the Parser interface.
func (f ParserFunc) Parse(src string) (ast.Program, error) {
	return f(src)
}

// Interpreter orchestrates parsing and evaluation.
type Interpreter struct {
	parser Parser
}

// New creates an Interpreter with the given parser.
func New(p Parser) *Interpreter {
	return &Interpreter{parser: p}
}

// NewDefault creates an Interpreter backed by the recursive-descent parser.
func NewDefault() *Interpreter {
	return New(ParserFunc(parser.Parse))
}

// Run parses src and evaluates it against env, returning the value of the
// last statement and the resulting environment.
func (i *Interpreter) Run(env eval.Env, src string) (value.Value, eval.Env, error) {
	prog, err := i.parser.Parse(src)
	if err != nil {
		return nil, env, err
	}
	return eval.Program(env, prog)
}

// RunAll is like Run but returns the value of every statement.
func (i *Interpreter) RunAll(env eval.Env, src string) ([]value.Value, eval.Env, error) {
	prog, err := i.parser.Parse(src)
	if err != nil {
		return nil, env, err
	}
	return eval.ProgramValues(env, prog)
}

// Session evaluates a sequence of inputs, each seeing the bindings made by
// the previous successful ones. A failed input leaves the session as it was.
type Session struct {
	interp *Interpreter
	env    eval.Env
}

// NewSession starts a session with an empty environment.
func NewSession(i *Interpreter) *Session {
	return &Session{interp: i, env: eval.NewEnv()}
}

// Eval runs src and returns the value of each of its statements.
func (s *Session) Eval(src string) ([]value.Value, error) {
	values, env, err := s.interp.RunAll(s.env, src)
	if err != nil {
		return nil, err
	}
	s.env = env
	return values, nil
}

// Env returns the current environment.
func (s *Session) Env() eval.Env {
	return s.env
}

// Reset drops every binding.
func (s *Session) Reset() {
	s.env = eval.NewEnv()
}
