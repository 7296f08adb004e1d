// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package fire

import (
	"errors"
	"fmt"
)

// Error represents all possible errors from the fire library.
type Error struct {
	Kind       ErrorKind
	Message    string
	StatusCode int
	Cause      error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// ErrorKind categorizes the error type.
type ErrorKind string

const (
	ErrKindAPI        ErrorKind = "API"
	ErrKindNetwork    ErrorKind = "Network"
	ErrKindParse      ErrorKind = "Parse"
	ErrKindAuth       ErrorKind = "Auth"
	ErrKindNotFound   ErrorKind = "NotFound"
	ErrKindValidation ErrorKind = "Validation"
)

// NewAPIError creates an error for a request the API rejected. statusCode is
// the HTTP status, or 0 when the request returned 200 with a non-success
// envelope status.
func NewAPIError(statusCode int, message string) *Error {
	return &Error{
		Kind:       ErrKindAPI,
		Message:    message,
		StatusCode: statusCode,
	}
}

// NewNetworkError creates a new transport-level error.
func NewNetworkError(message string, cause error) *Error {
	return &Error{
		Kind:    ErrKindNetwork,
		Message: message,
		Cause:   cause,
	}
}

// NewParseError creates a new response-decoding error.
func NewParseError(message string, cause error) *Error {
	return &Error{
		Kind:    ErrKindParse,
		Message: message,
		Cause:   cause,
	}
}

// NewAuthError creates a new authentication error.
func NewAuthError(message string) *Error {
	return &Error{
		Kind:       ErrKindAuth,
		Message:    message,
		StatusCode: 401,
	}
}

// NewNotFoundError creates an error for an identifier that resolved to nothing.
func NewNotFoundError(message string) *Error {
	return &Error{
		Kind:    ErrKindNotFound,
		Message: message,
	}
}

// NewValidationError creates an error for invalid input caught before any
// request is issued.
func NewValidationError(message string) *Error {
	return &Error{
		Kind:    ErrKindValidation,
		Message: message,
	}
}

func isKind(err error, kind ErrorKind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// IsNotFoundError checks if the error is a not found error.
func IsNotFoundError(err error) bool {
	return isKind(err, ErrKindNotFound)
}

// IsValidationError checks if the error is an input validation error.
func IsValidationError(err error) bool {
	return isKind(err, ErrKindValidation)
}

// IsAuthError checks if the error is an authentication error.
func IsAuthError(err error) bool {
	if isKind(err, ErrKindAuth) {
		return true
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == ErrKindAPI && (e.StatusCode == 401 || e.StatusCode == 403)
	}
	return false
}

// IsNetworkError checks if the error is a transport-level error.
func IsNetworkError(err error) bool {
	return isKind(err, ErrKindNetwork)
}

// IsAPIError checks if the error is an error reported by the API itself.
func IsAPIError(err error) bool {
	return isKind(err, ErrKindAPI)
}