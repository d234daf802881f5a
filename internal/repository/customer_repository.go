package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/lendq/loan-intake/internal/domain"
	"github.com/lendq/loan-intake/pkg/apperr"
)

const pqUniqueViolation = "23505"

type customerRepository struct {
	db *sqlx.DB
}

func NewCustomerRepository(db *sqlx.DB) CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	query := `
		SELECT id, full_name, email, created_at
		FROM customers
		WHERE id = $1
	`

	var customer domain.Customer
	err := r.db.GetContext(ctx, &customer, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &customer, nil
}

func (r *customerRepository) FindByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	query := `
		SELECT id, full_name, email, created_at
		FROM customers
		WHERE email = $1
	`

	var customer domain.Customer
	err := r.db.GetContext(ctx, &customer, query, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &customer, nil
}

func (r *customerRepository) Save(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	if customer.ID == uuid.Nil {
		return r.insert(ctx, customer)
	}
	return r.update(ctx, customer)
}

func (r *customerRepository) insert(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	query := `
		INSERT INTO customers (id, full_name, email, created_at)
		VALUES ($1, $2, $3, $4)
	`

	saved := *customer
	saved.ID = uuid.New()

	_, err := r.db.ExecContext(ctx, query, saved.ID, saved.FullName, saved.Email, saved.CreatedAt)
	if err != nil {
		return nil, translateUniqueViolation(err, saved.Email)
	}

	return &saved, nil
}

func (r *customerRepository) update(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	query := `
		UPDATE customers
		SET full_name = $2, email = $3
		WHERE id = $1
	`

	_, err := r.db.ExecContext(ctx, query, customer.ID, customer.FullName, customer.Email)
	if err != nil {
		return nil, translateUniqueViolation(err, customer.Email)
	}

	return customer, nil
}

func (r *customerRepository) FindAll(ctx context.Context, skip, take int) ([]*domain.Customer, int64, error) {
	query := `
		SELECT id, full_name, email, created_at
		FROM customers
		ORDER BY created_at, id
		LIMIT $1 OFFSET $2
	`

	customers := []*domain.Customer{}
	if err := r.db.SelectContext(ctx, &customers, query, take, skip); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM customers`); err != nil {
		return nil, 0, err
	}

	return customers, total, nil
}

func (r *customerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM customers WHERE id = $1`, id)
	return err
}

// translateUniqueViolation closes the check-then-insert race on email: the
// unique index is authoritative, and its violation surfaces as the same
// conflict the use-case pre-check produces.
func translateUniqueViolation(err error, email string) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
		return apperr.EmailAlreadyUsed(email)
	}
	return err
}
