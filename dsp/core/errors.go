package core

import (
	"errors"
	"fmt"
)

// Error kinds. Match them with errors.Is through any amount of wrapping.
var (
	ErrParse       = errors.New("parse error")
	ErrIO          = errors.New("io error")
	ErrComputation = errors.New("computation error")
)

// Error tags a failure with one of the error kinds and the operation that
// produced it.
type Error struct {
	Kind error
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %v: %v", e.Op, e.Kind, e.Err)
}

// Unwrap exposes both the kind and the underlying cause.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// ParseError returns an [ErrParse] error for op.
func ParseError(op string, err error) error {
	return &Error{Kind: ErrParse, Op: op, Err: err}
}

// IOError returns an [ErrIO] error for op.
func IOError(op string, err error) error {
	return &Error{Kind: ErrIO, Op: op, Err: err}
}

// ComputationError returns an [ErrComputation] error for op.
func ComputationError(op string, err error) error {
	return &Error{Kind: ErrComputation, Op: op, Err: err}
}

// Parsef is shorthand for ParseError(op, fmt.Errorf(format, args...)).
func Parsef(op, format string, args ...any) error {
	return ParseError(op, fmt.Errorf(format, args...))
}

// Computef is shorthand for ComputationError(op, fmt.Errorf(format, args...)).
func Computef(op, format string, args ...any) error {
	return ComputationError(op, fmt.Errorf(format, args...))
}
