package service

import (
	"errors"
	"fmt"
)

const (
	// ErrInternalServerError means that an internal server error has occurred.
	ErrInternalServerError = "internal_server_error"
	// ErrEntityNotFound means that record or row is absent in repository or storage.
	ErrEntityNotFound = "entity_not_found"
	// ErrBadParameter means that provided parameter does not match declared.
	ErrBadParameter = "bad_parameter"
	// ErrClusterUnavailable means that the shared cluster store could not be reached.
	ErrClusterUnavailable = "cluster_unavailable"
	// ErrConfigSourceUnavailable means that the external configuration source could not be probed or watched.
	ErrConfigSourceUnavailable = "config_source_unavailable"
	// ErrSessionStoreFailure means that the session could not be read or written.
	ErrSessionStoreFailure = "session_store_failure"
	// ErrStartupFailure means that the instance could not complete its startup sequence.
	ErrStartupFailure = "startup_failure"
)

// MyError represents an error within the context of mypodinfo services.
type MyError struct {
	// Code is a machine-readable code.
	Code string `json:"code,omitempty"`
	// Message is a human-readable message.
	Message string `json:"message"`
	// Inner is a wrapped error that is never shown to API consumers.
	Inner error `json:"-"`
}

// NewMyError creates a new MyError.
func NewMyError(code string, message string, inner error) *MyError {
	return &MyError{
		Code:    code,
		Message: message,
		Inner:   inner,
	}
}

func NewInternalServerError(message string, inner error) *MyError {
	myInner := ToMyError(inner)
	if myInner != nil {
		return myInner
	}

	return NewMyError(ErrInternalServerError, message, inner)
}

func NewEntityNotFoundError(message string, inner error) *MyError {
	myInner := ToMyError(inner)
	if myInner != nil {
		return myInner
	}

	return NewMyError(ErrEntityNotFound, message, inner)
}

func NewBadParameterError(message string, inner error) *MyError {
	myInner := ToMyError(inner)
	if myInner != nil {
		return myInner
	}

	return NewMyError(ErrBadParameter, message, inner)
}

func NewClusterUnavailableError(message string, inner error) *MyError {
	myInner := ToMyError(inner)
	if myInner != nil {
		return myInner
	}

	return NewMyError(ErrClusterUnavailable, message, inner)
}

func NewConfigSourceUnavailableError(message string, inner error) *MyError {
	return NewMyError(ErrConfigSourceUnavailable, message, inner)
}

func NewSessionStoreFailureError(message string, inner error) *MyError {
	myInner := ToMyError(inner)
	if myInner != nil && myInner.Code == ErrSessionStoreFailure {
		return myInner
	}

	return NewMyError(ErrSessionStoreFailure, message, inner)
}

// NewStartupFailureError always wraps, so the failing startup step keeps its own code underneath.
func NewStartupFailureError(message string, inner error) *MyError {
	return NewMyError(ErrStartupFailure, message, inner)
}

func (e MyError) Error() string {
	if e.Inner != nil {
		return fmt.Sprintf("%s %s: %v", e.Code, e.Message, e.Inner)
	}

	return fmt.Sprintf("%s %s", e.Code, e.Message)
}

// Unwrap the error returning the error's reason.
func (e MyError) Unwrap() error {
	return e.Inner
}

// ToMyError returns a pointer to a mypodinfo error, or nil if it is not a mypodinfo error.
func ToMyError(err error) *MyError {
	var e *MyError
	if errors.As(err, &e) {
		return e
	}

	return nil
}

// ToMyErrorCode returns the code of the error, if available.
func ToMyErrorCode(err error) string {
	myerror := ToMyError(err)
	if myerror != nil {
		return myerror.Code
	}
	return ""
}

func IsMyError(err error, code string) bool {
	myerror := ToMyError(err)
	if myerror != nil {
		return myerror.Code == code
	}
	return false
}

func IsInternalServerError(err error) bool {
	return IsMyError(err, ErrInternalServerError)
}

func IsEntityNotFoundError(err error) bool {
	return IsMyError(err, ErrEntityNotFound)
}

func IsBadParameterError(err error) bool {
	return IsMyError(err, ErrBadParameter)
}

func IsClusterUnavailableError(err error) bool {
	return IsMyError(err, ErrClusterUnavailable)
}

func IsConfigSourceUnavailableError(err error) bool {
	return IsMyError(err, ErrConfigSourceUnavailable)
}

func IsSessionStoreFailureError(err error) bool {
	return IsMyError(err, ErrSessionStoreFailure)
}

func IsStartupFailureError(err error) bool {
	return IsMyError(err, ErrStartupFailure)
}
