package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/lendq/loan-intake/internal/domain"
)

// CustomerRepository defines the persistence operations for customers.
// Lookup methods return (nil, nil) when no row matches; Save is an upsert
// that assigns an ID on first insert.
type CustomerRepository interface {
	// FindByID retrieves a customer by id
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error)

	// FindByEmail retrieves a customer by email
	FindByEmail(ctx context.Context, email string) (*domain.Customer, error)

	// Save inserts the customer when its ID is unassigned, otherwise updates it
	Save(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)

	// FindAll returns one page of customers plus the total row count
	FindAll(ctx context.Context, skip, take int) ([]*domain.Customer, int64, error)

	// Delete removes a customer; deleting a missing row is a no-op
	Delete(ctx context.Context, id uuid.UUID) error
}

// LoanApplicationRepository defines the persistence operations for loan
// applications.
type LoanApplicationRepository interface {
	// FindByID retrieves a loan application by id
	FindByID(ctx context.Context, id uuid.UUID) (*domain.LoanApplication, error)

	// Save inserts the application when its ID is unassigned, otherwise updates it
	Save(ctx context.Context, app *domain.LoanApplication) (*domain.LoanApplication, error)

	// FindAll returns one page of applications plus the total row count
	FindAll(ctx context.Context, skip, take int) ([]*domain.LoanApplication, int64, error)

	// FindByCustomerID returns one page of a customer's applications plus the total
	FindByCustomerID(ctx context.Context, customerID uuid.UUID, skip, take int) ([]*domain.LoanApplication, int64, error)

	// Delete removes a loan application; deleting a missing row is a no-op
	Delete(ctx context.Context, id uuid.UUID) error
}
