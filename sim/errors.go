package sim

import (
	"fmt"
)

// ErrorCode represents different types of simulation errors
type ErrorCode int

const (
	// Generic errors
	ErrCodeUnknown ErrorCode = iota
	ErrCodeInternal

	// Input validation errors
	ErrCodeInvalidFrameCount
	ErrCodeInvalidReference
	ErrCodePolicyUnknown
	ErrCodeInvalidConfig

	// Trace file errors
	ErrCodeTraceCorrupted
	ErrCodeTraceIO
)

// SimError represents a simulation engine error with context
type SimError struct {
	Code    ErrorCode
	Message string
	Op      string // Operation that failed
	Err     error  // Underlying error (if any)
}

// Error implements the error interface
func (e *SimError) Error() string {
	if e.Op != "" {
		if e.Err != nil {
			return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
		}
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error
func (e *SimError) Unwrap() error {
	return e.Err
}

// Is checks if the error matches a specific error code
func (e *SimError) Is(target error) bool {
	if t, ok := target.(*SimError); ok {
		return e.Code == t.Code
	}
	return false
}

// NewSimError creates a new simulation error
func NewSimError(code ErrorCode, op, message string, err error) *SimError {
	return &SimError{
		Code:    code,
		Message: message,
		Op:      op,
		Err:     err,
	}
}

// Helper functions for common errors

func ErrInvalidFrameCount(op string, frameCount int) *SimError {
	return NewSimError(
		ErrCodeInvalidFrameCount,
		op,
		fmt.Sprintf("frame count must be at least 1, got %d", frameCount),
		nil,
	)
}

func ErrInvalidReference(op string, token string, position int) *SimError {
	return NewSimError(
		ErrCodeInvalidReference,
		op,
		fmt.Sprintf("invalid page reference %q at position %d", token, position),
		nil,
	)
}

func ErrPolicyUnknown(op string, name string) *SimError {
	return NewSimError(
		ErrCodePolicyUnknown,
		op,
		fmt.Sprintf("unknown replacement policy %q", name),
		nil,
	)
}

func ErrTraceCorrupted(op string, detail string) *SimError {
	return NewSimError(
		ErrCodeTraceCorrupted,
		op,
		fmt.Sprintf("trace corrupted: %s", detail),
		nil,
	)
}

func ErrTraceIO(op string, err error) *SimError {
	return NewSimError(
		ErrCodeTraceIO,
		op,
		"trace file operation failed",
		err,
	)
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	if se, ok := err.(*SimError); ok {
		return se.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrCodeUnknown
func GetErrorCode(err error) ErrorCode {
	if se, ok := err.(*SimError); ok {
		return se.Code
	}
	return ErrCodeUnknown
}
