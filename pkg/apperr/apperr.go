package apperr

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies an application error so the transport boundary can map it
// to a status code without parsing message text.
type Kind string

const (
	KindValidation   Kind = "validation_failed"
	KindNotFound     Kind = "not_found"
	KindConflict     Kind = "conflict"
	KindUnauthorized Kind = "unauthorized"
	KindForbidden    Kind = "forbidden"
	KindUnexpected   Kind = "unexpected"
)

// Sentinel errors for errors.Is checks
var (
	ErrValidationFailed        = errors.New("validation failed")
	ErrCustomerNotFound        = errors.New("customer not found")
	ErrLoanApplicationNotFound = errors.New("loan application not found")
	ErrEmailAlreadyUsed        = errors.New("email already used")
	ErrUnauthorized            = errors.New("unauthorized")
)

// FieldViolation describes a single invalid input field.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is the application error carried across layer boundaries.
type Error struct {
	Kind       Kind
	Code       string
	Message    string
	Violations []FieldViolation
	Err        error
}

func (e *Error) Error() string {
	if e.Kind == KindValidation && len(e.Violations) > 0 {
		parts := make([]string, 0, len(e.Violations))
		for _, v := range e.Violations {
			parts = append(parts, v.Field+": "+v.Message)
		}
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, strings.Join(parts, "; "))
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Error codes
const (
	CodeValidationFailed        = "VALIDATION_FAILED"
	CodeCustomerNotFound        = "CUSTOMER_NOT_FOUND"
	CodeLoanApplicationNotFound = "LOAN_APPLICATION_NOT_FOUND"
	CodeEmailAlreadyUsed        = "EMAIL_ALREADY_USED"
	CodeUnauthorized            = "UNAUTHORIZED"
	CodeInternalError           = "INTERNAL_ERROR"
)

// Validation builds a validation error carrying every field violation, not
// just the first one.
func Validation(violations ...FieldViolation) *Error {
	return &Error{
		Kind:       KindValidation,
		Code:       CodeValidationFailed,
		Message:    "one or more fields are invalid",
		Violations: violations,
		Err:        ErrValidationFailed,
	}
}

// ValidationMessage builds a validation error with a single request-level
// message, such as an update with no fields present.
func ValidationMessage(message string) *Error {
	return &Error{
		Kind:       KindValidation,
		Code:       CodeValidationFailed,
		Message:    message,
		Violations: []FieldViolation{{Field: "request", Message: message}},
		Err:        ErrValidationFailed,
	}
}

func CustomerNotFound(id string) *Error {
	return &Error{
		Kind:    KindNotFound,
		Code:    CodeCustomerNotFound,
		Message: fmt.Sprintf("customer with id %s not found", id),
		Err:     ErrCustomerNotFound,
	}
}

func LoanApplicationNotFound(id string) *Error {
	return &Error{
		Kind:    KindNotFound,
		Code:    CodeLoanApplicationNotFound,
		Message: fmt.Sprintf("loan application with id %s not found", id),
		Err:     ErrLoanApplicationNotFound,
	}
}

func EmailAlreadyUsed(email string) *Error {
	return &Error{
		Kind:    KindConflict,
		Code:    CodeEmailAlreadyUsed,
		Message: fmt.Sprintf("email %s is already used by another customer", email),
		Err:     ErrEmailAlreadyUsed,
	}
}

func Unauthorized(message string) *Error {
	return &Error{
		Kind:    KindUnauthorized,
		Code:    CodeUnauthorized,
		Message: message,
		Err:     ErrUnauthorized,
	}
}

// Unexpected wraps a failure this core did not anticipate, typically a
// persistence error. The original error is preserved for logging; the
// boundary decides whether to expose it.
func Unexpected(err error) *Error {
	return &Error{
		Kind:    KindUnexpected,
		Code:    CodeInternalError,
		Message: "internal error",
		Err:     err,
	}
}

// KindOf reports the Kind of err, or KindUnexpected for anything that is not
// an application error.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnexpected
}
