// Package apperr defines the failure kinds surfaced by the company aggregation
// layer. Every lower-layer fault is translated into one of these kinds before
// it reaches the HTTP boundary.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an application error.
type Kind int

const (
	// Internal is the zero kind, used for faults that were never classified.
	Internal Kind = iota
	// InvalidArgument means caller input violated a stated constraint.
	InvalidArgument
	// NotFound means no matching company exists.
	NotFound
	// StoreUnavailable means the backing query itself failed or timed out.
	StoreUnavailable
)

func (k Kind) String() string {
	switch k {
	case InvalidArgument:
		return "invalid_argument"
	case NotFound:
		return "not_found"
	case StoreUnavailable:
		return "store_unavailable"
	default:
		return "internal"
	}
}

// HTTPStatus maps a kind onto the status code used by the API.
func (k Kind) HTTPStatus() int {
	switch k {
	case InvalidArgument:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Error carries a client-safe message and the raw cause, which is only
// exposed to clients in development mode.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches on kind so callers can write errors.Is(err, apperr.ErrNotFound).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Message == "" && t.Err == nil
}

// Sentinels for errors.Is comparisons.
var (
	ErrInvalidArgument  = &Error{Kind: InvalidArgument}
	ErrNotFound         = &Error{Kind: NotFound}
	ErrStoreUnavailable = &Error{Kind: StoreUnavailable}
)

func Invalid(msg string) *Error {
	return &Error{Kind: InvalidArgument, Message: msg}
}

func NotFoundf(format string, args ...any) *Error {
	return &Error{Kind: NotFound, Message: fmt.Sprintf(format, args...)}
}

// Unavailable wraps a storage fault. The message is what clients see.
func Unavailable(msg string, err error) *Error {
	return &Error{Kind: StoreUnavailable, Message: msg, Err: err}
}

// KindOf returns the kind of err, or Internal if err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Internal
}

// Message returns the client-safe message of err, falling back to a generic one.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Message != "" {
		return e.Message
	}
	return "internal server error"
}
