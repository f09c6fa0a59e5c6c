// Package status holds the error kinds raised inside the library and the
// closed set of status codes returned across the public entry points.
package status

import (
	"errors"
	"fmt"
)

// Kind classifies an internal failure
type Kind int

const (
	// InternalFault is any failure not otherwise classified
	InternalFault Kind = iota
	InvalidHandle
	InvalidEnum
	InvalidSize
	InvalidPointer
	InvalidValue
	// TransferMismatch is a shape (m, n, nnz, base) mismatch between two
	// sparse matrices on transfer
	TransferMismatch
	// LocationTransferFault is a length mismatch between two containers on
	// transfer
	LocationTransferFault
)

func (k Kind) String() string {
	switch k {
	case InternalFault:
		return "internal fault"
	case InvalidHandle:
		return "invalid handle"
	case InvalidEnum:
		return "invalid enum"
	case InvalidSize:
		return "invalid size"
	case InvalidPointer:
		return "invalid pointer"
	case InvalidValue:
		return "invalid value"
	case TransferMismatch:
		return "location transfer mismatch"
	case LocationTransferFault:
		return "location transfer fault"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Error is the error type returned by every internal operation
type Error struct {
	Kind Kind
	Op   string
	// Arg is the 0-based position of the offending argument, -1 when the
	// failure is not tied to one
	Arg int
	Msg string
	Err error
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Msg != "" {
		msg += ": " + e.Msg
	}
	if e.Arg >= 0 {
		msg = fmt.Sprintf("argument %d: %s", e.Arg, msg)
	}
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Errorf creates an Error of the given kind that is not tied to an argument
func Errorf(kind Kind, op, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Op: op, Arg: -1, Msg: fmt.Sprintf(format, args...)}
}

// Arg creates an Error for the argument at position pos
func Arg(kind Kind, op string, pos int, name string) *Error {
	return &Error{Kind: kind, Op: op, Arg: pos, Msg: name}
}

// Wrap attaches a kind to an underlying error
func Wrap(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Arg: -1, Err: err}
}

// KindOf returns the Kind carried by err, or InternalFault when err does not
// wrap an *Error
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return InternalFault
}

// Is reports whether err carries the given kind
func Is(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
