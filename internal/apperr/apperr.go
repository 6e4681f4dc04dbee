// Package apperr defines the service error taxonomy as a tagged kind
// enumeration with a single kind-to-HTTP-status mapping consumed at the
// handler boundary.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind tags an error with its failure category.
type Kind int

const (
	KindInternal Kind = iota
	KindInvalidCredentials
	KindInvalidToken
	KindTokenExpired
	KindTokenNotFound
	KindUserNotFound
	KindInsufficientPermission
	KindUserAlreadyExists
	KindNotFound
	KindConflict
	KindValidation
)

// Error is a kinded error carried from services to handlers.
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

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf creates an error of the given kind with a formatted message.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an error of the given kind preserving the cause.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf extracts the kind of err, defaulting to KindInternal for errors
// that did not originate in a service.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// Is lets errors.Is match two apperr values by kind.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Kind == t.Kind
}

var statusByKind = map[Kind]int{
	KindInternal:               http.StatusInternalServerError,
	KindInvalidCredentials:     http.StatusUnauthorized,
	KindInvalidToken:           http.StatusUnauthorized,
	KindTokenExpired:           http.StatusUnauthorized,
	KindTokenNotFound:          http.StatusNotFound,
	KindUserNotFound:           http.StatusUnauthorized,
	KindInsufficientPermission: http.StatusForbidden,
	KindUserAlreadyExists:      http.StatusConflict,
	KindNotFound:               http.StatusNotFound,
	KindConflict:               http.StatusConflict,
	KindValidation:             http.StatusBadRequest,
}

// HTTPStatus maps an error kind to its transport status code.
func HTTPStatus(err error) int {
	if status, ok := statusByKind[KindOf(err)]; ok {
		return status
	}
	return http.StatusInternalServerError
}

var labelByKind = map[Kind]string{
	KindInternal:               "Internal server error",
	KindInvalidCredentials:     "Unauthorized",
	KindInvalidToken:           "Unauthorized",
	KindTokenExpired:           "Unauthorized",
	KindTokenNotFound:          "Not Found",
	KindUserNotFound:           "Unauthorized",
	KindInsufficientPermission: "Forbidden",
	KindUserAlreadyExists:      "Conflict",
	KindNotFound:               "Not Found",
	KindConflict:               "Conflict",
	KindValidation:             "Bad request",
}

// Label returns the short client-facing label for an error kind.
func Label(err error) string {
	if label, ok := labelByKind[KindOf(err)]; ok {
		return label
	}
	return "Internal server error"
}
