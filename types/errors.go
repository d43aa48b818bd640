package types

import (
	"errors"
	"fmt"
)

// ErrorKind defines the category of a pipeline error.
type ErrorKind string

// Error kinds
const (
	RetrievalError ErrorKind = "retrieval"
	ParseError     ErrorKind = "parse"
	NotFoundError  ErrorKind = "not_found"
)

// Common errors that can be used throughout the module
var (
	ErrEmptyDocument    = errors.New("empty document")
	ErrNoContentRegion  = errors.New("no content region matched")
	ErrUnexpectedStatus = errors.New("unexpected HTTP status")
)

// Error is returned by every pipeline stage. Kind tells the caller which
// stage failed; StatusCode is set for retrieval failures that got as far as
// an HTTP response and is zero otherwise.
type Error struct {
	Kind       ErrorKind
	Op         string
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("[%s:%s] status %d: %v", e.Kind, e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("[%s:%s] %v", e.Kind, e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// WrapError wraps an error with its kind and the operation that failed.
func WrapError(err error, kind ErrorKind, op string) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Op: op, Err: err}
}

// NewRetrievalError reports a failed fetch or file read. status is the HTTP
// status code, or zero when no response was received.
func NewRetrievalError(op string, status int, err error) error {
	if err == nil {
		err = ErrUnexpectedStatus
	}
	return &Error{Kind: RetrievalError, Op: op, StatusCode: status, Err: err}
}

// WrapParseError wraps a parsing error
func WrapParseError(err error, op string) error {
	return WrapError(err, ParseError, op)
}

// NewNotFoundError reports that query matched nothing in the document.
func NewNotFoundError(op, query string) error {
	return &Error{Kind: NotFoundError, Op: op, Err: fmt.Errorf("%w: %s", ErrNoContentRegion, query)}
}

// IsErrorType checks if an error is of a specific kind
func IsErrorType(err error, kind ErrorKind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}

// IsRetrievalError returns true if the error is a retrieval error
func IsRetrievalError(err error) bool {
	return IsErrorType(err, RetrievalError)
}

// IsParseError returns true if the error is a parse error
func IsParseError(err error) bool {
	return IsErrorType(err, ParseError)
}

// IsNotFoundError returns true if the error is a not-found error
func IsNotFoundError(err error) bool {
	return IsErrorType(err, NotFoundError)
}

// StatusCode returns the HTTP status carried by a retrieval error, or zero.
func StatusCode(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.StatusCode
	}
	return 0
}
