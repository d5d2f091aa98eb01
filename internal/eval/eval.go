// Package eval implements the tree-walking evaluator.
//
// Evaluation is a pure function of an Env and an AST node. Statements
// produce a new Env instead of mutating the one they were given, so a
// failed evaluation leaves no partial bindings behind.
package eval

import (
	"fmt"
	"math"
	"strings"

	"github.com/nojima/toylang/internal/ast"
	"github.com/nojima/toylang/internal/value"
	"github.com/nojima/toylang/toyerr"
)

// maxStringLen bounds the result of string repetition.
const maxStringLen = 1 << 30

// Program evaluates the statements of prog in order, threading the
// environment through them. It returns the value of the last statement and
// the final environment. An empty program yields Unit and env. On error the
// starting env is returned unchanged.
func Program(env Env, prog ast.Program) (value.Value, Env, error) {
	var last value.Value = value.Unit{}
	cur := env
	for _, s := range prog {
		v, next, err := Stmt(cur, s)
		if err != nil {
			return nil, env, err
		}
		last, cur = v, next
	}
	return last, cur, nil
}

// ProgramValues is like Program but returns the value of every statement.
func ProgramValues(env Env, prog ast.Program) ([]value.Value, Env, error) {
	values := make([]value.Value, 0, len(prog))
	cur := env
	for _, s := range prog {
		v, next, err := Stmt(cur, s)
		if err != nil {
			return nil, env, err
		}
		values = append(values, v)
		cur = next
	}
	return values, cur, nil
}

// Stmt evaluates a single statement.
func Stmt(env Env, s ast.Stmt) (value.Value, Env, error) {
	switch s := s.(type) {
	case *ast.ExprStmt:
		v, err := Expr(env, s.X)
		if err != nil {
			return nil, env, err
		}
		return v, env, nil

	case *ast.Def:
		fn := &value.Function{Name: s.Name, Params: s.Params, Body: s.Body}
		return value.Unit{}, env.WithVariable(s.Name, fn), nil

	case *ast.LetStmt:
		v, err := Expr(env, s.Value)
		if err != nil {
			return nil, env, err
		}
		return value.Unit{}, env.WithVariable(s.Name, v), nil
	}
	panic(fmt.Sprintf("eval: unknown statement %T", s))
}

// Expr evaluates an expression.
func Expr(env Env, e ast.Expr) (value.Value, error) {
	switch e := e.(type) {
	case *ast.Number:
		return value.Number(e.Value), nil

	case *ast.String:
		return value.String(e.Value), nil

	case *ast.Unary:
		v, err := Expr(env, e.Operand)
		if err != nil {
			return nil, err
		}
		return unaryOp(e.Op, v)

	case *ast.Binary:
		l, err := Expr(env, e.Left)
		if err != nil {
			return nil, err
		}
		r, err := Expr(env, e.Right)
		if err != nil {
			return nil, err
		}
		return binaryOp(e.Op, l, r)

	case *ast.Variable:
		v, ok := env.Lookup(e.Name)
		if !ok {
			return nil, toyerr.NewUndefinedVariable(e.Name)
		}
		return v, nil

	case *ast.Let:
		v, err := Expr(env, e.Bound)
		if err != nil {
			return nil, err
		}
		return Expr(env.WithVariable(e.Name, v), e.Body)

	case *ast.If:
		c, err := Expr(env, e.Cond)
		if err != nil {
			return nil, err
		}
		n, ok := c.(value.Number)
		if !ok {
			return nil, toyerr.NewBadOperandType()
		}
		if n != 0 {
			return Expr(env, e.Then)
		}
		return Expr(env, e.Else)

	case *ast.Apply:
		return apply(env, e)
	}
	panic(fmt.Sprintf("eval: unknown expression %T", e))
}

// apply calls a function. Arguments are evaluated in the caller's env and
// the parameters extend that same env, so the body sees the call site's
// bindings rather than the definition site's.
func apply(env Env, e *ast.Apply) (value.Value, error) {
	callee, err := Expr(env, e.Func)
	if err != nil {
		return nil, err
	}
	fn, ok := callee.(*value.Function)
	if !ok {
		return nil, toyerr.NewUncallableObject()
	}
	if len(e.Args) != len(fn.Params) {
		return nil, toyerr.NewWrongNumberOfArguments()
	}

	callEnv := env
	for i, arg := range e.Args {
		v, err := Expr(env, arg)
		if err != nil {
			return nil, err
		}
		callEnv = callEnv.WithVariable(fn.Params[i], v)
	}
	return Expr(callEnv, fn.Body)
}

func unaryOp(op ast.UnaryOp, v value.Value) (value.Value, error) {
	switch op {
	case ast.Neg:
		n, ok := v.(value.Number)
		if !ok {
			return nil, toyerr.NewBadOperandType()
		}
		return -n, nil
	}
	panic(fmt.Sprintf("eval: unknown unary operator %d", int(op)))
}

func binaryOp(op ast.BinaryOp, l, r value.Value) (value.Value, error) {
	switch op {
	case ast.Add:
		return add(l, r)
	case ast.Sub:
		return arith(l, r, func(a, b value.Number) value.Number { return a - b })
	case ast.Mul:
		return mul(l, r)
	case ast.Div:
		return arith(l, r, func(a, b value.Number) value.Number { return a / b })
	}
	panic(fmt.Sprintf("eval: unknown binary operator %d", int(op)))
}

func arith(l, r value.Value, f func(a, b value.Number) value.Number) (value.Value, error) {
	a, ok1 := l.(value.Number)
	b, ok2 := r.(value.Number)
	if !ok1 || !ok2 {
		return nil, toyerr.NewBadOperandType()
	}
	return f(a, b), nil
}

func add(l, r value.Value) (value.Value, error) {
	switch l := l.(type) {
	case value.Number:
		if r, ok := r.(value.Number); ok {
			return l + r, nil
		}
	case value.String:
		if r, ok := r.(value.String); ok {
			return l + r, nil
		}
	}
	return nil, toyerr.NewBadOperandType()
}

func mul(l, r value.Value) (value.Value, error) {
	switch l := l.(type) {
	case value.Number:
		if r, ok := r.(value.Number); ok {
			return l * r, nil
		}
	case value.String:
		if r, ok := r.(value.Number); ok {
			return repeat(l, r)
		}
	}
	return nil, toyerr.NewBadOperandType()
}

// repeat truncates the count toward zero. Negative and NaN counts give the
// empty string.
func repeat(s value.String, n value.Number) (value.Value, error) {
	count := math.Trunc(float64(n))
	if !(count > 0) || len(s) == 0 {
		return value.String(""), nil
	}
	if count > float64(maxStringLen/len(s)) {
		return nil, toyerr.NewBadOperandType()
	}
	return value.String(strings.Repeat(string(s), int(count))), nil
}
