// Package errors defines typed errors with categories for user-friendly reporting.
// It provides a structured approach to error handling with machine-readable error kinds
// and human-friendly messages, making it easier to handle different classes of
// failure (bad credentials, expired session, plain request failure) appropriately.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind is a machine-readable error category.
type Kind string

const (
	// LoginFailed indicates the login endpoint rejected the credentials.
	LoginFailed Kind = "login_failed"
	// Unauthorized indicates the API rejected the presented bearer token.
	Unauthorized Kind = "unauthorized"
	// RequestFailed indicates an API call failed for a non-auth reason.
	RequestFailed Kind = "request_failed"
	// StorageUnavailable indicates the OS keychain could not be used.
	StorageUnavailable Kind = "storage_unavailable"
)

// E wraps an error with kind and human-friendly message.
type E struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *E) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *E) Unwrap() error { return e.Err }

func Wrap(kind Kind, msg string, err error) *E { return &E{Kind: kind, Message: msg, Err: err} }
func New(kind Kind, msg string) *E             { return &E{Kind: kind, Message: msg} }

// IsKind reports whether err is, or wraps, an *E of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *E
	return stderrors.As(err, &e) && e.Kind == kind
}
