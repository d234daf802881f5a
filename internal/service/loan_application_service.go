package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/lendq/loan-intake/internal/domain"
	"github.com/lendq/loan-intake/internal/repository"
	"github.com/lendq/loan-intake/internal/validate"
	"github.com/lendq/loan-intake/pkg/amortize"
	"github.com/lendq/loan-intake/pkg/apperr"
	"github.com/lendq/loan-intake/pkg/pagination"
)

// LoanApplicationService implements the loan-application use cases.
// Applications are immutable after creation; there is no update path.
type LoanApplicationService struct {
	applications repository.LoanApplicationRepository
	customers    repository.CustomerRepository
	validate     *validate.Validator
	now          func() time.Time
}

func NewLoanApplicationService(
	applications repository.LoanApplicationRepository,
	customers repository.CustomerRepository,
	validate *validate.Validator,
) *LoanApplicationService {
	return &LoanApplicationService{
		applications: applications,
		customers:    customers,
		validate:     validate,
		now:          time.Now,
	}
}

// Create validates the input, verifies the referenced customer exists,
// derives the monthly payment and persists the application. Nothing is
// written when the customer is missing.
func (s *LoanApplicationService) Create(ctx context.Context, req *domain.CreateLoanApplicationRequest) (*domain.LoanApplication, error) {
	if req.Currency == "" {
		req.Currency = domain.DefaultCurrency
	}

	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}

	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		// Unreachable after the uuid4 schema check; kept as a guard.
		return nil, apperr.Validation(apperr.FieldViolation{Field: "customerId", Message: "must be a valid UUID"})
	}

	customer, err := s.customers.FindByID(ctx, customerID)
	if err != nil {
		return nil, wrapRepositoryError(err)
	}
	if customer == nil {
		return nil, apperr.CustomerNotFound(req.CustomerID)
	}

	principal, err := domain.NewMoney(req.Amount, req.Currency)
	if err != nil {
		return nil, wrapRepositoryError(err)
	}

	// The only rounding happens here, inside NewMoney.
	payment := amortize.MonthlyPayment(principal.Amount(), req.AnnualInterestRate, req.TermMonths)
	monthlyPayment, err := domain.NewMoney(payment, principal.Currency())
	if err != nil {
		return nil, wrapRepositoryError(err)
	}

	app := &domain.LoanApplication{
		CustomerID:         customerID,
		Amount:             principal,
		TermMonths:         req.TermMonths,
		AnnualInterestRate: req.AnnualInterestRate,
		MonthlyPayment:     monthlyPayment,
		CreatedAt:          s.now().UTC(),
	}

	saved, err := s.applications.Save(ctx, app)
	if err != nil {
		return nil, wrapRepositoryError(err)
	}

	return saved, nil
}

func (s *LoanApplicationService) GetByID(ctx context.Context, id uuid.UUID) (*domain.LoanApplication, error) {
	app, err := s.applications.FindByID(ctx, id)
	if err != nil {
		return nil, wrapRepositoryError(err)
	}
	if app == nil {
		return nil, apperr.LoanApplicationNotFound(id.String())
	}
	return app, nil
}

func (s *LoanApplicationService) Delete(ctx context.Context, id uuid.UUID) error {
	app, err := s.applications.FindByID(ctx, id)
	if err != nil {
		return wrapRepositoryError(err)
	}
	if app == nil {
		return apperr.LoanApplicationNotFound(id.String())
	}

	if err := s.applications.Delete(ctx, id); err != nil {
		return wrapRepositoryError(err)
	}
	return nil
}

func (s *LoanApplicationService) List(ctx context.Context, page, pageSize int) (pagination.Result[*domain.LoanApplication], error) {
	p := pagination.Normalize(page, pageSize)

	apps, total, err := s.applications.FindAll(ctx, p.Offset(), p.Limit())
	if err != nil {
		return pagination.Result[*domain.LoanApplication]{}, wrapRepositoryError(err)
	}

	return pagination.NewResult(apps, total, p), nil
}

// ListByCustomer verifies the customer exists before reading its page of
// applications.
func (s *LoanApplicationService) ListByCustomer(ctx context.Context, customerID uuid.UUID, page, pageSize int) (pagination.Result[*domain.LoanApplication], error) {
	customer, err := s.customers.FindByID(ctx, customerID)
	if err != nil {
		return pagination.Result[*domain.LoanApplication]{}, wrapRepositoryError(err)
	}
	if customer == nil {
		return pagination.Result[*domain.LoanApplication]{}, apperr.CustomerNotFound(customerID.String())
	}

	p := pagination.Normalize(page, pageSize)

	apps, total, err := s.applications.FindByCustomerID(ctx, customerID, p.Offset(), p.Limit())
	if err != nil {
		return pagination.Result[*domain.LoanApplication]{}, wrapRepositoryError(err)
	}

	return pagination.NewResult(apps, total, p), nil
}
