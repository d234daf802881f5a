package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lendq/loan-intake/internal/domain"
	"github.com/lendq/loan-intake/internal/repository"
	"github.com/lendq/loan-intake/internal/validate"
)

// Wiring-level test over the in-memory repositories: the full intake flow
// from customer creation to listing a customer's applications.
func TestIntakeFlow(t *testing.T) {
	ctx := context.Background()
	v := validate.New()
	customerRepo := repository.NewMemoryCustomerRepository()
	applicationRepo := repository.NewMemoryLoanApplicationRepository()

	customerSvc := NewCustomerService(customerRepo, v)
	applicationSvc := NewLoanApplicationService(applicationRepo, customerRepo, v)

	customer, err := customerSvc.Create(ctx, &domain.CreateCustomerRequest{
		FullName: "John Doe",
		Email:    "john@example.com",
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, customer.ID)

	app, err := applicationSvc.Create(ctx, &domain.CreateLoanApplicationRequest{
		CustomerID:         customer.ID.String(),
		Amount:             decimal.NewFromInt(25000),
		TermMonths:         48,
		AnnualInterestRate: decimal.RequireFromString("4.5"),
	})
	require.NoError(t, err)

	loaded, err := applicationSvc.GetByID(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, "25000.00", loaded.Amount.Amount().StringFixed(2))
	assert.Equal(t, "USD", loaded.Amount.Currency())
	assert.Equal(t, customer.ID, loaded.CustomerID)
	assert.True(t, loaded.MonthlyPayment.Equals(app.MonthlyPayment))

	byCustomer, err := applicationSvc.ListByCustomer(ctx, customer.ID, 1, 10)
	require.NoError(t, err)
	require.Len(t, byCustomer.Items, 1)
	assert.Equal(t, app.ID, byCustomer.Items[0].ID)
	assert.Equal(t, int64(1), byCustomer.Total)
}

func TestCustomerPaginationFlow(t *testing.T) {
	ctx := context.Background()
	customerRepo := repository.NewMemoryCustomerRepository()
	customerSvc := NewCustomerService(customerRepo, validate.New())

	for i := 0; i < 5; i++ {
		_, err := customerSvc.Create(ctx, &domain.CreateCustomerRequest{
			FullName: fmt.Sprintf("Customer %d", i),
			Email:    fmt.Sprintf("customer%d@example.com", i),
		})
		require.NoError(t, err)
	}

	seen := map[uuid.UUID]bool{}
	sizes := []int{2, 2, 1}
	for page := 1; page <= 3; page++ {
		result, err := customerSvc.List(ctx, page, 2)
		require.NoError(t, err)

		assert.Len(t, result.Items, sizes[page-1], "page %d", page)
		assert.Equal(t, int64(5), result.Total)
		assert.Equal(t, 3, result.TotalPages)

		for _, c := range result.Items {
			assert.False(t, seen[c.ID], "customer %s appeared on two pages", c.ID)
			seen[c.ID] = true
		}
	}
	assert.Len(t, seen, 5)

	// Past the last page
	result, err := customerSvc.List(ctx, 4, 2)
	require.NoError(t, err)
	assert.Empty(t, result.Items)
	assert.Equal(t, int64(5), result.Total)
}

func TestDuplicateEmailFlow(t *testing.T) {
	ctx := context.Background()
	customerRepo := repository.NewMemoryCustomerRepository()
	customerSvc := NewCustomerService(customerRepo, validate.New())

	_, err := customerSvc.Create(ctx, &domain.CreateCustomerRequest{
		FullName: "John Doe",
		Email:    "john@example.com",
	})
	require.NoError(t, err)

	_, err = customerSvc.Create(ctx, &domain.CreateCustomerRequest{
		FullName: "Other John",
		Email:    "john@example.com",
	})
	require.Error(t, err)

	// Still exactly one customer
	result, err := customerSvc.List(ctx, 1, 10)
	require.NoError(t, err)
	assert.Len(t, result.Items, 1)
}
