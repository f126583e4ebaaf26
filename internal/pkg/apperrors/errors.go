package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrNotFound      = errors.New("resource not found")
	ErrAlreadyExists = errors.New("resource already exists")
	ErrConflict      = errors.New("conflict")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// State machine errors
	ErrInvalidStateTransition = errors.New("invalid state transition")

	// Data source errors
	ErrTransport = errors.New("transport error")
)

// Entity errors. Each unwraps to ErrNotFound so callers can test the class
// without naming the entity.
var (
	ErrStudentNotFound          = NewNotFoundError("student not found")
	ErrTutorNotFound            = NewNotFoundError("tutor not found")
	ErrEmergencyContactNotFound = NewNotFoundError("emergency contact not found")
	ErrGroupNotFound            = NewNotFoundError("group not found")
	ErrEnrollmentNotFound       = NewNotFoundError("enrollment not found")
	ErrPaymentNotFound          = NewNotFoundError("payment not found")
)

// NewNotFoundError creates a new custom error for resource not found with a message
func NewNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrNotFound,
		Message: message,
	}
}

// NewValidationError creates a new custom error for invalid caller input with a message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// NewInvalidTransitionError creates a new custom error for a rejected status change
func NewInvalidTransitionError(message string) error {
	return &CustomError{
		Err:     ErrInvalidStateTransition,
		Message: message,
	}
}

// NewTransportError wraps a remote data source I/O failure
func NewTransportError(cause error, message string) error {
	return &CustomError{
		Err:     ErrTransport,
		Message: message,
		Cause:   cause,
	}
}

// Is returns whether target matches any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Cause   error
	Message string
	Code    string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// WithCode adds an error code
func (e *CustomError) WithCode(code string) *CustomError {
	e.Code = code
	return e
}
