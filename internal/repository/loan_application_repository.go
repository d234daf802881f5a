package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/lendq/loan-intake/internal/domain"
)

// loanApplicationRow is the storage shape. Money fields are flattened into
// numeric + currency columns and normalized back into domain values on load,
// so amounts round-trip as decimals regardless of the driver's numeric type.
type loanApplicationRow struct {
	ID                 uuid.UUID       `db:"id"`
	CustomerID         uuid.UUID       `db:"customer_id"`
	Amount             decimal.Decimal `db:"amount"`
	Currency           string          `db:"currency"`
	TermMonths         int             `db:"term_months"`
	AnnualInterestRate decimal.Decimal `db:"annual_interest_rate"`
	MonthlyPayment     decimal.Decimal `db:"monthly_payment"`
	CreatedAt          time.Time       `db:"created_at"`
}

func (row *loanApplicationRow) toDomain() (*domain.LoanApplication, error) {
	amount, err := domain.NewMoney(row.Amount, row.Currency)
	if err != nil {
		return nil, err
	}
	payment, err := domain.NewMoney(row.MonthlyPayment, row.Currency)
	if err != nil {
		return nil, err
	}

	return &domain.LoanApplication{
		ID:                 row.ID,
		CustomerID:         row.CustomerID,
		Amount:             amount,
		TermMonths:         row.TermMonths,
		AnnualInterestRate: row.AnnualInterestRate,
		MonthlyPayment:     payment,
		CreatedAt:          row.CreatedAt,
	}, nil
}

type loanApplicationRepository struct {
	db *sqlx.DB
}

func NewLoanApplicationRepository(db *sqlx.DB) LoanApplicationRepository {
	return &loanApplicationRepository{db: db}
}

const loanApplicationColumns = `id, customer_id, amount, currency, term_months, annual_interest_rate, monthly_payment, created_at`

func (r *loanApplicationRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.LoanApplication, error) {
	query := `
		SELECT ` + loanApplicationColumns + `
		FROM loan_applications
		WHERE id = $1
	`

	var row loanApplicationRow
	err := r.db.GetContext(ctx, &row, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return row.toDomain()
}

func (r *loanApplicationRepository) Save(ctx context.Context, app *domain.LoanApplication) (*domain.LoanApplication, error) {
	saved := *app
	if saved.ID == uuid.Nil {
		saved.ID = uuid.New()
	}

	query := `
		INSERT INTO loan_applications (` + loanApplicationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE
		SET customer_id = EXCLUDED.customer_id,
		    amount = EXCLUDED.amount,
		    currency = EXCLUDED.currency,
		    term_months = EXCLUDED.term_months,
		    annual_interest_rate = EXCLUDED.annual_interest_rate,
		    monthly_payment = EXCLUDED.monthly_payment
	`

	_, err := r.db.ExecContext(ctx, query,
		saved.ID,
		saved.CustomerID,
		saved.Amount.Amount(),
		saved.Amount.Currency(),
		saved.TermMonths,
		saved.AnnualInterestRate,
		saved.MonthlyPayment.Amount(),
		saved.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &saved, nil
}

func (r *loanApplicationRepository) FindAll(ctx context.Context, skip, take int) ([]*domain.LoanApplication, int64, error) {
	query := `
		SELECT ` + loanApplicationColumns + `
		FROM loan_applications
		ORDER BY created_at, id
		LIMIT $1 OFFSET $2
	`

	rows := []*loanApplicationRow{}
	if err := r.db.SelectContext(ctx, &rows, query, take, skip); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM loan_applications`); err != nil {
		return nil, 0, err
	}

	apps, err := rowsToDomain(rows)
	if err != nil {
		return nil, 0, err
	}

	return apps, total, nil
}

func (r *loanApplicationRepository) FindByCustomerID(ctx context.Context, customerID uuid.UUID, skip, take int) ([]*domain.LoanApplication, int64, error) {
	query := `
		SELECT ` + loanApplicationColumns + `
		FROM loan_applications
		WHERE customer_id = $1
		ORDER BY created_at, id
		LIMIT $2 OFFSET $3
	`

	rows := []*loanApplicationRow{}
	if err := r.db.SelectContext(ctx, &rows, query, customerID, take, skip); err != nil {
		return nil, 0, err
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM loan_applications WHERE customer_id = $1`
	if err := r.db.GetContext(ctx, &total, countQuery, customerID); err != nil {
		return nil, 0, err
	}

	apps, err := rowsToDomain(rows)
	if err != nil {
		return nil, 0, err
	}

	return apps, total, nil
}

func (r *loanApplicationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM loan_applications WHERE id = $1`, id)
	return err
}

func rowsToDomain(rows []*loanApplicationRow) ([]*domain.LoanApplication, error) {
	apps := make([]*domain.LoanApplication, 0, len(rows))
	for _, row := range rows {
		app, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}
	return apps, nil
}
