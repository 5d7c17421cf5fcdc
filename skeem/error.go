package skeem

import (
	"errors"
	"fmt"
)

// ErrKind discriminates the interpreter's failure taxonomy.  Errors are only
// ever raised through one of the three concrete kinds.
type ErrKind uint

// Possible ErrKind values.
const (
	ErrSyntax ErrKind = iota + 1
	ErrName
	ErrEval
)

var errKindStrings = []string{
	ErrSyntax: "syntax error",
	ErrName:   "name error",
	ErrEval:   "evaluation error",
}

func (k ErrKind) String() string {
	if k == 0 || int(k) >= len(errKindStrings) {
		return "INVALID"
	}
	return errKindStrings[k]
}

// Error is a failure raised by the tokenizer, parser, or evaluator.  Every
// Error aborts the current top-level evaluation; the interactive shell is the
// only recovery boundary.
type Error struct {
	Kind ErrKind
	Msg  string
}

func (e *Error) Error() string {
	return e.Kind.String() + ": " + e.Msg
}

// SyntaxErrorf returns an Error reporting a malformed token stream.
func SyntaxErrorf(format string, v ...interface{}) error {
	return &Error{Kind: ErrSyntax, Msg: fmt.Sprintf(format, v...)}
}

// NameErrorf returns an Error reporting a failed symbol lookup.
func NameErrorf(format string, v ...interface{}) error {
	return &Error{Kind: ErrName, Msg: fmt.Sprintf(format, v...)}
}

// EvalErrorf returns an Error reporting a failure during evaluation other
// than a name lookup failure.
func EvalErrorf(format string, v ...interface{}) error {
	return &Error{Kind: ErrEval, Msg: fmt.Sprintf(format, v...)}
}

// IsSchemeError returns true if err belongs to the interpreter's taxonomy.
func IsSchemeError(err error) bool {
	var e *Error
	return errors.As(err, &e)
}

// IsSyntaxError returns true if err is a syntax error.
func IsSyntaxError(err error) bool { return hasKind(err, ErrSyntax) }

// IsNameError returns true if err is a name error.
func IsNameError(err error) bool { return hasKind(err, ErrName) }

// IsEvalError returns true if err is an evaluation error.
func IsEvalError(err error) bool { return hasKind(err, ErrEval) }

func hasKind(err error, kind ErrKind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}
