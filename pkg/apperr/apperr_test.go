package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindsAreDistinguishableByType(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		sentinel error
		kind     Kind
	}{
		{"customer not found", CustomerNotFound("abc"), ErrCustomerNotFound, KindNotFound},
		{"application not found", LoanApplicationNotFound("abc"), ErrLoanApplicationNotFound, KindNotFound},
		{"email conflict", EmailAlreadyUsed("a@b.com"), ErrEmailAlreadyUsed, KindConflict},
		{"unauthorized", Unauthorized("nope"), ErrUnauthorized, KindUnauthorized},
		{"validation", Validation(FieldViolation{Field: "email", Message: "bad"}), ErrValidationFailed, KindValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.sentinel)
			assert.Equal(t, tt.kind, KindOf(tt.err))
		})
	}
}

func TestValidationCarriesAllViolations(t *testing.T) {
	err := Validation(
		FieldViolation{Field: "fullName", Message: "too short"},
		FieldViolation{Field: "email", Message: "malformed"},
	)

	assert.Len(t, err.Violations, 2)
	assert.Contains(t, err.Error(), "fullName")
	assert.Contains(t, err.Error(), "email")
}

func TestUnexpectedPreservesTheCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Unexpected(fmt.Errorf("query customers: %w", cause))

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, KindUnexpected, KindOf(err))
	assert.Equal(t, KindUnexpected, KindOf(errors.New("plain")))
}

func TestValidationMessage(t *testing.T) {
	err := ValidationMessage("At least one field must be provided for update")
	assert.Equal(t, KindValidation, err.Kind)
	assert.Len(t, err.Violations, 1)
}
