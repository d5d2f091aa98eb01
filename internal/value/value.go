// Package value defines the runtime values produced by evaluation.
package value

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nojima/toylang/internal/ast"
)

// Value is a runtime datum: Unit, Number, String or *Function.
type Value interface {
	fmt.Stringer
	value()
}

// Unit is the result of a statement with no meaningful value.
type Unit struct{}

// Number is a double-precision float.
type Number float64

// String is immutable text. Copies of a String share the same backing
// bytes.
type String string

// Function is a user-defined function. It captures no environment: free
// names in Body resolve against the caller's environment at call time.
type Function struct {
	Name   string
	Params []string
	Body   ast.Expr
}

func (Unit) value()      {}
func (Number) value()    {}
func (String) value()    {}
func (*Function) value() {}

func (Unit) String() string     { return "()" }
func (n Number) String() string { return ast.FormatNumber(float64(n)) }
func (s String) String() string { return strconv.Quote(string(s)) }

func (f *Function) String() string {
	return fmt.Sprintf("<function %s(%s)>", f.Name, strings.Join(f.Params, ", "))
}

// TypeName returns a short name for the kind of v.
func TypeName(v Value) string {
	switch v.(type) {
	case Unit:
		return "unit"
	case Number:
		return "number"
	case String:
		return "string"
	case *Function:
		return "function"
	}
	panic(fmt.Sprintf("value: unknown value type %T", v))
}
