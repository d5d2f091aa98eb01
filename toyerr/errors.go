// Package toyerr defines the error taxonomy shared by the toylang lexer,
// parser and evaluator.
package toyerr

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType defines the category of the error.
type ErrorType string

const (
	TypeLexical ErrorType = "LexicalError"
	TypeSyntax  ErrorType = "SyntaxError"
	TypeEval    ErrorType = "EvalError"
)

// Lexical error kinds.
var (
	ErrUnexpectedCharacter = errors.New("unexpected character")
	ErrUnexpectedEOF       = errors.New("unexpected end of file")
	ErrUndefinedEscape     = errors.New("undefined escape")
)

// Evaluation error kinds.
var (
	ErrUndefinedVariable      = errors.New("undefined variable")
	ErrBadOperandType         = errors.New("bad operand type")
	ErrUncallableObject       = errors.New("uncallable object")
	ErrWrongNumberOfArguments = errors.New("wrong number of arguments")
)

// ToyError is the interface for all toylang errors.
type ToyError interface {
	error
	Type() ErrorType
}

// BaseError provides common fields for toylang errors.
type BaseError struct {
	Msg     string
	ErrType ErrorType
}

func (e *BaseError) Error() string {
	return fmt.Sprintf("[%s] %s", e.ErrType, e.Msg)
}

func (e *BaseError) Type() ErrorType {
	return e.ErrType
}

// LexicalError is raised while scanning. It is terminal for the token stream.
type LexicalError struct {
	BaseError
	Kind error
	// Char is the offending character for ErrUnexpectedCharacter and
	// ErrUndefinedEscape.
	Char rune
	// Offset is the byte offset where the failing token started.
	Offset int
}

func (e *LexicalError) Unwrap() error {
	return e.Kind
}

// SyntaxError represents an error during the parsing phase.
type SyntaxError struct {
	BaseError
	Line   int
	Column int
	// AtEOF reports that the parser ran out of input, i.e. the source is a
	// prefix of a possibly valid program.
	AtEOF bool
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("[%s] line %d:%d %s", e.ErrType, e.Line, e.Column, e.Msg)
}

// EvalError is raised while walking the AST.
type EvalError struct {
	BaseError
	Kind error
	// Name is the unresolved identifier for ErrUndefinedVariable.
	Name string
}

func (e *EvalError) Unwrap() error {
	return e.Kind
}

// MultiError collects multiple toylang errors.
type MultiError struct {
	Errors []error
}

func (m *MultiError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d error(s) occurred:\n", len(m.Errors)))
	for _, err := range m.Errors {
		sb.WriteString(fmt.Sprintf("- %v\n", err))
	}
	return sb.String()
}

func (m *MultiError) Type() ErrorType {
	if len(m.Errors) > 0 {
		var te ToyError
		if errors.As(m.Errors[0], &te) {
			return te.Type()
		}
	}
	return "MultiError"
}

// Unwrap exposes the collected errors to errors.Is and errors.As.
func (m *MultiError) Unwrap() []error {
	return m.Errors
}

// NewUnexpectedCharacter creates a LexicalError for a character that starts no token.
func NewUnexpectedCharacter(offset int, c rune) *LexicalError {
	return newLexical(offset, ErrUnexpectedCharacter, c, fmt.Sprintf("unexpected character: '%c'", c))
}

// NewUnexpectedEOF creates a LexicalError for input that ends inside a token.
func NewUnexpectedEOF(offset int) *LexicalError {
	return newLexical(offset, ErrUnexpectedEOF, 0, ErrUnexpectedEOF.Error())
}

// NewUndefinedEscape creates a LexicalError for an unknown backslash escape.
func NewUndefinedEscape(offset int, c rune) *LexicalError {
	return newLexical(offset, ErrUndefinedEscape, c, fmt.Sprintf("undefined escape: '\\%c'", c))
}

func newLexical(offset int, kind error, c rune, msg string) *LexicalError {
	return &LexicalError{
		BaseError: BaseError{
			Msg:     msg,
			ErrType: TypeLexical,
		},
		Kind:   kind,
		Char:   c,
		Offset: offset,
	}
}

// NewSyntaxError creates a new SyntaxError.
func NewSyntaxError(line, column int, msg string) *SyntaxError {
	return &SyntaxError{
		BaseError: BaseError{
			Msg:     msg,
			ErrType: TypeSyntax,
		},
		Line:   line,
		Column: column,
	}
}

// NewIncompleteError creates a SyntaxError for input that ended too early.
func NewIncompleteError(line, column int, msg string) *SyntaxError {
	e := NewSyntaxError(line, column, msg)
	e.AtEOF = true
	return e
}

// NewUndefinedVariable creates an EvalError for an unbound name.
func NewUndefinedVariable(name string) *EvalError {
	e := newEval(ErrUndefinedVariable, fmt.Sprintf("undefined variable: %s", name))
	e.Name = name
	return e
}

// NewBadOperandType creates an EvalError for an operator applied to the wrong kinds of value.
func NewBadOperandType() *EvalError {
	return newEval(ErrBadOperandType, ErrBadOperandType.Error())
}

// NewUncallableObject creates an EvalError for applying a non-function.
func NewUncallableObject() *EvalError {
	return newEval(ErrUncallableObject, ErrUncallableObject.Error())
}

// NewWrongNumberOfArguments creates an EvalError for an arity mismatch.
func NewWrongNumberOfArguments() *EvalError {
	return newEval(ErrWrongNumberOfArguments, ErrWrongNumberOfArguments.Error())
}

func newEval(kind error, msg string) *EvalError {
	return &EvalError{
		BaseError: BaseError{
			Msg:     msg,
			ErrType: TypeEval,
		},
		Kind: kind,
	}
}

// IsIncomplete reports whether err means the source ended before a complete
// program was read. Interactive front ends use it to ask for more input.
func IsIncomplete(err error) bool {
	var se *SyntaxError
	if errors.As(err, &se) {
		return se.AtEOF
	}
	return errors.Is(err, ErrUnexpectedEOF)
}
