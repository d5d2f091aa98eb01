// Package ast defines the toylang syntax tree.
//
// Every node owns its children; the evaluator never mutates a tree once the
// parser has built it.
package ast

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Expr is an expression node.
type Expr interface {
	fmt.Stringer
	exprNode()
}

// Stmt is a statement node.
type Stmt interface {
	fmt.Stringer
	stmtNode()
}

// UnaryOp is a prefix operator.
type UnaryOp int

const (
	Neg UnaryOp = iota
)

func (op UnaryOp) String() string {
	switch op {
	case Neg:
		return "-"
	}
	panic(fmt.Sprintf("ast: unknown unary operator %d", int(op)))
}

// BinaryOp is an infix operator.
type BinaryOp int

const (
	Add BinaryOp = iota
	Sub
	Mul
	Div
)

func (op BinaryOp) String() string {
	switch op {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	}
	panic(fmt.Sprintf("ast: unknown binary operator %d", int(op)))
}

// Number is a numeric literal.
type Number struct {
	Value float64
}

// String is a string literal holding decoded text.
type String struct {
	Value string
}

// Unary applies a prefix operator.
type Unary struct {
	Op      UnaryOp
	Operand Expr
}

// Binary applies an infix operator.
type Binary struct {
	Op    BinaryOp
	Left  Expr
	Right Expr
}

// Variable references a binding by name.
type Variable struct {
	Name string
}

// Apply calls Func with Args.
type Apply struct {
	Func Expr
	Args []Expr
}

// Let evaluates Body with Name bound to Bound. The binding does not escape
// the expression.
type Let struct {
	Name  string
	Bound Expr
	Body  Expr
}

// If evaluates Then or Else depending on Cond.
type If struct {
	Cond Expr
	Then Expr
	Else Expr
}

func (*Number) exprNode()   {}
func (*String) exprNode()   {}
func (*Unary) exprNode()    {}
func (*Binary) exprNode()   {}
func (*Variable) exprNode() {}
func (*Apply) exprNode()    {}
func (*Let) exprNode()      {}
func (*If) exprNode()       {}

func (e *Number) String() string { return FormatNumber(e.Value) }
func (e *String) String() string { return strconv.Quote(e.Value) }
func (e *Unary) String() string  { return e.Op.String() + e.Operand.String() }
func (e *Variable) String() string {
	return e.Name
}

func (e *Binary) String() string {
	return fmt.Sprintf("(%s %s %s)", e.Left, e.Op, e.Right)
}

func (e *Apply) String() string {
	args := make([]string, len(e.Args))
	for i, a := range e.Args {
		args[i] = a.String()
	}
	return fmt.Sprintf("%s[%s]", e.Func, strings.Join(args, ", "))
}

func (e *Let) String() string {
	return fmt.Sprintf("(let %s = %s in %s)", e.Name, e.Bound, e.Body)
}

func (e *If) String() string {
	return fmt.Sprintf("(if %s then %s else %s)", e.Cond, e.Then, e.Else)
}

// ExprStmt evaluates an expression for its value.
type ExprStmt struct {
	X Expr
}

// Def binds Name to a function of Params. The body is not evaluated until
// the function is applied.
type Def struct {
	Name   string
	Params []string
	Body   Expr
}

// LetStmt binds Name for the rest of the program.
type LetStmt struct {
	Name  string
	Value Expr
}

func (*ExprStmt) stmtNode() {}
func (*Def) stmtNode()      {}
func (*LetStmt) stmtNode()  {}

func (s *ExprStmt) String() string { return s.X.String() + ";" }

func (s *Def) String() string {
	return fmt.Sprintf("def %s(%s) = %s", s.Name, strings.Join(s.Params, ", "), s.Body)
}

func (s *LetStmt) String() string {
	return fmt.Sprintf("%s = %s;", s.Name, s.Value)
}

// Program is a statement sequence evaluated left to right.
type Program []Stmt

func (p Program) String() string {
	var sb strings.Builder
	for _, s := range p {
		sb.WriteString(s.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// FormatNumber renders a float so that integral values keep a trailing
// ".0" and very large or small magnitudes use exponent notation.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		mant, exp, _ := strings.Cut(strconv.FormatFloat(f, 'e', -1, 64), "e")
		n, _ := strconv.Atoi(exp)
		return fmt.Sprintf("%se%d", mant, n)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}
