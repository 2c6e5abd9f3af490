package ir

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is wrapped by NotFoundError.
	ErrNotFound = errors.New("key not found")
	// ErrWrongShape is wrapped by WrongShapeError.
	ErrWrongShape = errors.New("wrong shape")
	// ErrValue is wrapped by ValueError.
	ErrValue = errors.New("bad value")
)

// NotFoundError reports a key absent from a node.
type NotFoundError struct {
	Key string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%q: %s", e.Key, ErrNotFound)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// WrongShapeError reports a node whose structural kind does not admit the
// requested access.
type WrongShapeError struct {
	Key  string
	Want Kind
	Got  Kind
}

func (e *WrongShapeError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("%q: %s: want %s, got %s", e.Key, ErrWrongShape, e.Want, e.Got)
	}
	return fmt.Sprintf("%s: want %s, got %s", ErrWrongShape, e.Want, e.Got)
}

func (e *WrongShapeError) Unwrap() error {
	return ErrWrongShape
}

// ValueError reports a scalar whose text does not parse as the requested
// type.
type ValueError struct {
	Key     string
	Literal string
	Want    string
	Err     error
}

func (e *ValueError) Error() string {
	msg := fmt.Sprintf("%s: %q is not a %s", ErrValue, e.Literal, e.Want)
	if e.Key != "" {
		msg = fmt.Sprintf("%q: %s", e.Key, msg)
	}
	return msg
}

func (e *ValueError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrValue, e.Err}
	}
	return []error{ErrValue}
}
