package quill

import (
	"errors"
	"fmt"
)

// ErrNonFinite is returned by encode when a NaN or ±Infinity float is
// encountered with no substitution policy active in a strict build.
var ErrNonFinite = errors.New("quill: non-finite float not permitted")

// ErrorKind classifies decode failures.
type ErrorKind uint8

const (
	ErrorInvalidUTF8 ErrorKind = iota
	ErrorUnexpectedToken
	ErrorTrailingData
	ErrorUnterminatedValue
)

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case ErrorInvalidUTF8:
		return "invalid utf-8"
	case ErrorUnexpectedToken:
		return "unexpected token"
	case ErrorTrailingData:
		return "trailing data"
	case ErrorUnterminatedValue:
		return "unterminated value"
	default:
		return "unknown"
	}
}

// DecodeError is a structural decode failure carrying the byte offset
// where it was detected. Offsets from the backend tokenizer point at
// the start of the failing value.
type DecodeError struct {
	Kind   ErrorKind
	Offset int
	msg    string
	err    error
}

func (e *DecodeError) Error() string {
	if e.msg != "" {
		return fmt.Sprintf("quill: %s at byte %d: %s", e.Kind, e.Offset, e.msg)
	}
	if e.err != nil {
		return fmt.Sprintf("quill: %s at byte %d: %v", e.Kind, e.Offset, e.err)
	}
	return fmt.Sprintf("quill: %s at byte %d", e.Kind, e.Offset)
}

// Unwrap exposes the backend error, if any.
func (e *DecodeError) Unwrap() error {
	return e.err
}

func decodeErrf(kind ErrorKind, offset int, format string, args ...interface{}) *DecodeError {
	return &DecodeError{Kind: kind, Offset: offset, msg: fmt.Sprintf(format, args...)}
}
