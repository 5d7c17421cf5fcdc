package skeem

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// ValType is the type of a Val.
type ValType uint

// Possible ValType values.
const (
	VInvalid ValType = iota
	VInt
	VFloat
	VSymbol
	VExpr
	VFun
)

var valTypeStrings = []string{
	VInvalid: "INVALID",
	VInt:     "int",
	VFloat:   "float",
	VSymbol:  "symbol",
	VExpr:    "expression",
	VFun:     "function",
}

func (t ValType) String() string {
	if int(t) >= len(valTypeStrings) {
		return valTypeStrings[VInvalid]
	}
	return valTypeStrings[t]
}

// BuiltinFunc is a native operation invoked with a list of already evaluated
// argument values.
type BuiltinFunc func(args []*Val) (*Val, error)

// Val is a scheme value.  Expression trees produced by the parser and runtime
// values produced by evaluation share this one representation, tagged by Type.
type Val struct {
	Type  ValType
	Int   int
	Float float64
	Str   string // symbol name
	Cells []*Val // combination elements

	// Fields used by function values.
	Builtin BuiltinFunc
	Name    string   // builtin name
	Formals []string // closure parameter names
	Body    *Val     // closure body, unevaluated
	Env     *Frame   // closure defining frame, fixed at creation
}

// Int returns a Val representing the integer x.
func Int(x int) *Val {
	return &Val{Type: VInt, Int: x}
}

// Float returns a Val representing the floating point number x.
func Float(x float64) *Val {
	return &Val{Type: VFloat, Float: x}
}

// Symbol returns a Val representing the symbol s.
func Symbol(s string) *Val {
	return &Val{Type: VSymbol, Str: s}
}

// Expr returns a Val representing a combination with the given elements.
func Expr(cells []*Val) *Val {
	return &Val{Type: VExpr, Cells: cells}
}

// Lambda returns a function value closing over the frame env, which must be
// the frame active where the lambda expression was evaluated.
func Lambda(formals []string, body *Val, env *Frame) *Val {
	return &Val{Type: VFun, Formals: formals, Body: body, Env: env}
}

// Fun returns a function value backed by the native function fn.
func Fun(name string, fn BuiltinFunc) *Val {
	return &Val{Type: VFun, Name: name, Builtin: fn}
}

// IsNumeric returns true if v is an int or a float.
func (v *Val) IsNumeric() bool {
	return v.Type == VInt || v.Type == VFloat
}

func (v *Val) String() string {
	switch v.Type {
	case VInt:
		return strconv.Itoa(v.Int)
	case VFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case VSymbol:
		return v.Str
	case VExpr:
		return exprString(v, "(", ")")
	case VFun:
		if v.Builtin != nil {
			return fmt.Sprintf("<builtin-function ``%s''>", v.Name)
		}
		return fmt.Sprintf("(lambda (%s) %v)", strings.Join(v.Formals, " "), v.Body)
	default:
		return fmt.Sprintf("%#v", v)
	}
}

func exprString(v *Val, left string, right string) string {
	if len(v.Cells) == 0 {
		return left + right
	}
	var buf bytes.Buffer
	buf.WriteString(left)
	for i, c := range v.Cells {
		if i > 0 {
			buf.WriteString(" ")
		}
		buf.WriteString(c.String())
	}
	buf.WriteString(right)
	return buf.String()
}
