package domain

import "fmt"

// DomainError represents a domain-specific error
type DomainError struct {
	Code    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError creates a new DomainError
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     nil,
	}
}

// NewDomainErrorWithCause creates a new DomainError with an underlying cause
func NewDomainErrorWithCause(code, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common domain error codes
const (
	ErrCodeValidation    = "VALIDATION_ERROR"
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeUnauthorized  = "UNAUTHORIZED"
	ErrCodeInternalError = "INTERNAL_ERROR"
)

// Validation errors
var (
	ErrInvalidRole           = NewDomainError(ErrCodeValidation, "invalid role")
	ErrInvalidLevel          = NewDomainError(ErrCodeValidation, "invalid proficiency level")
	ErrInvalidProgressStatus = NewDomainError(ErrCodeValidation, "invalid progress status")
	ErrInvalidSuggestionKind = NewDomainError(ErrCodeValidation, "invalid suggestion kind")
	ErrMissingRequiredField  = NewDomainError(ErrCodeValidation, "missing required field")
)

// Not found errors
var (
	ErrProfileNotFound = NewDomainError(ErrCodeNotFound, "employee profile not found")
	ErrPolicyNotFound  = NewDomainError(ErrCodeNotFound, "compliance policy not found")
	ErrItemNotFound    = NewDomainError(ErrCodeNotFound, "catalog item not found")
)

// Identity errors
var (
	ErrMissingIdentity = NewDomainError(ErrCodeUnauthorized, "employee identity header missing")
)
