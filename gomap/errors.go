package gomap

import "fmt"

// DecodeError reports a failure mapping a document node onto a Go value.
type DecodeError struct {
	FieldPath string
	Message   string
	Err       error
}

func (e *DecodeError) Error() string {
	if e.FieldPath != "" {
		return fmt.Sprintf("decode error at %s: %s", e.FieldPath, e.Message)
	}
	return fmt.Sprintf("decode error: %s", e.Message)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// EncodeError reports a Go value that cannot be represented as a document
// node.
type EncodeError struct {
	FieldPath string
	Message   string
	Err       error
}

func (e *EncodeError) Error() string {
	if e.FieldPath != "" {
		return fmt.Sprintf("encode error at %s: %s", e.FieldPath, e.Message)
	}
	return fmt.Sprintf("encode error: %s", e.Message)
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}

func decodeErrf(path string, err error, format string, args ...any) *DecodeError {
	return &DecodeError{FieldPath: path, Message: fmt.Sprintf(format, args...), Err: err}
}

func encodeErrf(path string, err error, format string, args ...any) *EncodeError {
	return &EncodeError{FieldPath: path, Message: fmt.Sprintf(format, args...), Err: err}
}
