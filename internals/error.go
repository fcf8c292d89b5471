package internals

// This file handles the error taxonomy shared by the whole pipeline.
// Every kind is fatal and propagates to the top level, nothing is
// retried or resumed mid statement.

import "fmt"

type ErrorKind string

const (
	LexError          ErrorKind = "LexError"
	SyntaxError       ErrorKind = "SyntaxError"
	UndefinedVariable ErrorKind = "UndefinedVariable"
	TypeMismatch      ErrorKind = "TypeMismatch"
	DivisionByZero    ErrorKind = "DivisionByZero"
)

type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return string(e.Kind) + ": " + e.Message
}

func Errorf(kind ErrorKind, format string, a ...interface{}) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, a...),
	}
}
