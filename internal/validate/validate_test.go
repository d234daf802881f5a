package validate

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lendq/loan-intake/internal/domain"
	"github.com/lendq/loan-intake/pkg/apperr"
)

func violationFields(t *testing.T, err error) []string {
	t.Helper()
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, apperr.KindValidation, appErr.Kind)

	fields := make([]string, 0, len(appErr.Violations))
	for _, v := range appErr.Violations {
		fields = append(fields, v.Field)
	}
	return fields
}

func TestCreateCustomerValidation(t *testing.T) {
	v := New()

	t.Run("valid input passes", func(t *testing.T) {
		err := v.Struct(&domain.CreateCustomerRequest{
			FullName: "John Doe",
			Email:    "john@example.com",
		})
		assert.NoError(t, err)
	})

	t.Run("reports every invalid field, not just the first", func(t *testing.T) {
		err := v.Struct(&domain.CreateCustomerRequest{
			FullName: "J",
			Email:    "not-an-email",
		})
		fields := violationFields(t, err)
		assert.Len(t, fields, 2)
		assert.Contains(t, fields, "fullName")
		assert.Contains(t, fields, "email")
	})

	t.Run("missing fields are required", func(t *testing.T) {
		err := v.Struct(&domain.CreateCustomerRequest{})
		fields := violationFields(t, err)
		assert.Len(t, fields, 2)
	})
}

func TestUpdateCustomerValidation(t *testing.T) {
	v := New()

	t.Run("one field is enough", func(t *testing.T) {
		name := "Jane Doe"
		assert.NoError(t, v.Struct(&domain.UpdateCustomerRequest{FullName: &name}))
	})

	t.Run("no fields fails with the update message", func(t *testing.T) {
		err := v.Struct(&domain.UpdateCustomerRequest{})

		var appErr *apperr.Error
		require.ErrorAs(t, err, &appErr)
		require.Len(t, appErr.Violations, 1)
		assert.Equal(t, MsgAtLeastOneField, appErr.Violations[0].Message)
	})

	t.Run("present fields are still validated", func(t *testing.T) {
		bad := "x"
		err := v.Struct(&domain.UpdateCustomerRequest{FullName: &bad})
		fields := violationFields(t, err)
		assert.Equal(t, []string{"fullName"}, fields)
	})
}

func TestCreateLoanApplicationValidation(t *testing.T) {
	v := New()

	valid := func() *domain.CreateLoanApplicationRequest {
		return &domain.CreateLoanApplicationRequest{
			CustomerID:         "0d4f0ffb-3f28-4a8d-9d3a-1f6f7b5a2c91",
			Amount:             decimal.NewFromInt(25000),
			Currency:           "USD",
			TermMonths:         48,
			AnnualInterestRate: decimal.RequireFromString("4.5"),
		}
	}

	t.Run("valid input passes", func(t *testing.T) {
		assert.NoError(t, v.Struct(valid()))
	})

	t.Run("empty currency is allowed, caller defaults it", func(t *testing.T) {
		req := valid()
		req.Currency = ""
		assert.NoError(t, v.Struct(req))
	})

	tests := []struct {
		name      string
		mutate    func(*domain.CreateLoanApplicationRequest)
		wantField string
	}{
		{"malformed customer id", func(r *domain.CreateLoanApplicationRequest) { r.CustomerID = "invalid-id" }, "customerId"},
		{"zero amount", func(r *domain.CreateLoanApplicationRequest) { r.Amount = decimal.Zero }, "amount"},
		{"negative amount", func(r *domain.CreateLoanApplicationRequest) { r.Amount = decimal.NewFromInt(-5) }, "amount"},
		{"term too short", func(r *domain.CreateLoanApplicationRequest) { r.TermMonths = 0 }, "termMonths"},
		{"term too long", func(r *domain.CreateLoanApplicationRequest) { r.TermMonths = 361 }, "termMonths"},
		{"rate above bound", func(r *domain.CreateLoanApplicationRequest) { r.AnnualInterestRate = decimal.NewFromInt(101) }, "annualInterestRate"},
		{"negative rate", func(r *domain.CreateLoanApplicationRequest) { r.AnnualInterestRate = decimal.NewFromInt(-1) }, "annualInterestRate"},
		{"bad currency", func(r *domain.CreateLoanApplicationRequest) { r.Currency = "US" }, "currency"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.mutate(req)
			fields := violationFields(t, v.Struct(req))
			assert.Contains(t, fields, tt.wantField)
		})
	}

	t.Run("boundary values are accepted", func(t *testing.T) {
		req := valid()
		req.TermMonths = 1
		req.AnnualInterestRate = decimal.Zero
		assert.NoError(t, v.Struct(req))

		req = valid()
		req.TermMonths = 360
		req.AnnualInterestRate = decimal.NewFromInt(100)
		assert.NoError(t, v.Struct(req))
	})
}

func TestValidationErrorIsTyped(t *testing.T) {
	v := New()
	err := v.Struct(&domain.CreateCustomerRequest{})
	assert.True(t, errors.Is(err, apperr.ErrValidationFailed))
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}
