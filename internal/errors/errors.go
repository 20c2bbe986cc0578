package errors

import (
	"errors"
	"fmt"
)

// Exit codes for forage-ports
const (
	ExitSuccess         = 0
	ExitGeneralError    = 1
	ExitServiceNotFound = 2
	ExitConfigError     = 3
	ExitPortAllocation  = 4
	ExitInvalidRange    = 5
)

// ForageError is the base error type for forage-ports
type ForageError struct {
	Code    int
	Message string
	Cause   error
}

func (e *ForageError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ForageError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the exit code for this error
func (e *ForageError) ExitCode() int {
	return e.Code
}

// New creates a new ForageError
func New(code int, message string) *ForageError {
	return &ForageError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a ForageError
func Wrap(code int, message string, cause error) *ForageError {
	return &ForageError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Common error constructors

// ServiceNotFound returns an error for a service missing from the workspace
func ServiceNotFound(name string) *ForageError {
	return New(ExitServiceNotFound, fmt.Sprintf("service not found: %s", name))
}

// RangeTooSmall returns an error for a port range that cannot hold every service
func RangeTooSmall(cause error) *ForageError {
	return Wrap(ExitPortAllocation, "cannot fit every service (widen ports.min/ports.max or pass --range)", cause)
}

// ConfigError returns an error for configuration issues
func ConfigError(message string, cause error) *ForageError {
	return Wrap(ExitConfigError, message, cause)
}

// InvalidRange returns an error for a malformed port range
func InvalidRange(cause error) *ForageError {
	return Wrap(ExitInvalidRange, "invalid port range", cause)
}

// TLSDisabled returns an error when a TLS port is requested but secure ports are off
func TLSDisabled(name string) *ForageError {
	return New(ExitGeneralError, fmt.Sprintf("service %s has no TLS port: secure ports are disabled", name))
}

// ValidationError returns an error for input validation failures
func ValidationError(message string) *ForageError {
	return New(ExitGeneralError, message)
}

// GetExitCode extracts the exit code from an error
func GetExitCode(err error) int {
	var forageErr *ForageError
	if errors.As(err, &forageErr) {
		return forageErr.ExitCode()
	}
	return ExitGeneralError
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target any) bool {
	return errors.As(err, target)
}
