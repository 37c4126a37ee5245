// Package apperr defines the application-layer error taxonomy. Services
// return *Error for rule violations so callers can map them to structured
// responses; collaborator failures are wrapped, never swallowed.
package apperr

import (
	"errors"
	"fmt"
)

type Error struct {
	Status  int
	Code    string
	Message string
	Details map[string]any

	// Err is the underlying collaborator error for STORAGE_FAILURE.
	Err error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Code, e.Err)
	}
	if e.Message != "" {
		return e.Message
	}
	return e.Code
}

func (e *Error) Unwrap() error { return e.Err }

func NotAuthenticated() *Error {
	return &Error{Status: 401, Code: "NOT_AUTHENTICATED", Message: "no verified identity"}
}

func NotAuthorized() *Error {
	return &Error{Status: 403, Code: "NOT_AUTHORIZED", Message: "not permitted for this actor"}
}

// ValidationFailed carries the complete set of per-field messages so the
// caller can display every problem at once.
func ValidationFailed(details map[string]any) *Error {
	return &Error{Status: 422, Code: "VALIDATION_FAILED", Message: "one or more fields are invalid", Details: details}
}

func EditLocked() *Error {
	return &Error{Status: 423, Code: "EDIT_LOCKED", Message: "registration is locked for editing"}
}

func EmptySelection() *Error {
	return &Error{Status: 422, Code: "EMPTY_SELECTION", Message: "no accounts selected"}
}

func NotFound(message string) *Error {
	return &Error{Status: 404, Code: "NOT_FOUND", Message: message}
}

func Storage(err error) *Error {
	return &Error{Status: 502, Code: "STORAGE_FAILURE", Message: "storage operation failed", Err: err}
}

// Is reports whether err is (or wraps) an *Error with the given code.
func Is(err error, code string) bool {
	ae := (*Error)(nil)
	return errors.As(err, &ae) && ae.Code == code
}
