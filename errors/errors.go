package errors

import (
	"errors"
	"fmt"

	"cabin-backend/models"
)

// ErrorCode classifies a reservation failure for callers. Codes, not error
// types, are the contract: the HTTP layer maps them to statuses and the UI
// maps them to messages.
type ErrorCode string

const (
	ErrCodePermissionDenied ErrorCode = "PERMISSION_DENIED"
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrCodeCabinUnavailable ErrorCode = "CABIN_UNAVAILABLE"
	ErrCodeInvalidDateRange ErrorCode = "INVALID_DATE_RANGE"
	ErrCodeInfrastructure   ErrorCode = "INFRASTRUCTURE_FAILURE"
)

// AppError is the structured error returned by the reservation engine.
// Field is set for validation failures, Conflicts for availability failures
// detected at pre-check time (commit-time races carry no conflict detail).
type AppError struct {
	Code      ErrorCode
	Field     string
	Message   string
	Conflicts []models.Booking
	Err       error
}

func (e *AppError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Field, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error { return e.Err }

func PermissionDenied(message string) *AppError {
	return &AppError{Code: ErrCodePermissionDenied, Message: message}
}

func ValidationFailed(field, reason string) *AppError {
	return &AppError{Code: ErrCodeValidationFailed, Field: field, Message: reason}
}

func CabinUnavailable(conflicts []models.Booking) *AppError {
	return &AppError{
		Code:      ErrCodeCabinUnavailable,
		Message:   "cabin is already booked for the requested dates",
		Conflicts: conflicts,
	}
}

func InvalidDateRange(reason string) *AppError {
	return &AppError{Code: ErrCodeInvalidDateRange, Message: reason}
}

// Infrastructure wraps a store failure. Callers must treat the outcome as
// unknown, never as "unavailable" or "succeeded".
func Infrastructure(message string, err error) *AppError {
	return &AppError{Code: ErrCodeInfrastructure, Message: message, Err: err}
}

// As extracts an *AppError from an error chain.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// CodeOf returns the error's code, defaulting to infrastructure for anything
// the engine did not classify itself.
func CodeOf(err error) ErrorCode {
	if appErr, ok := As(err); ok {
		return appErr.Code
	}
	return ErrCodeInfrastructure
}
