package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lendq/loan-intake/internal/domain"
	"github.com/lendq/loan-intake/internal/repository"
	"github.com/lendq/loan-intake/internal/validate"
	"github.com/lendq/loan-intake/pkg/apperr"
	"github.com/lendq/loan-intake/pkg/pagination"
)

// CustomerService implements the customer use cases. Each call is a
// single-shot orchestration: validation first, then repository access, with
// no state kept between invocations.
type CustomerService struct {
	customers repository.CustomerRepository
	validate  *validate.Validator
	now       func() time.Time
}

func NewCustomerService(customers repository.CustomerRepository, validate *validate.Validator) *CustomerService {
	return &CustomerService{
		customers: customers,
		validate:  validate,
		now:       time.Now,
	}
}

// Create validates the input, rejects an already-used email and persists a
// new customer.
func (s *CustomerService) Create(ctx context.Context, req *domain.CreateCustomerRequest) (*domain.Customer, error) {
	req.FullName = strings.TrimSpace(req.FullName)
	req.Email = strings.TrimSpace(req.Email)

	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}

	existing, err := s.customers.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, wrapRepositoryError(err)
	}
	if existing != nil {
		return nil, apperr.EmailAlreadyUsed(req.Email)
	}

	customer := &domain.Customer{
		FullName:  req.FullName,
		Email:     req.Email,
		CreatedAt: s.now().UTC(),
	}

	saved, err := s.customers.Save(ctx, customer)
	if err != nil {
		return nil, wrapRepositoryError(err)
	}

	return saved, nil
}

// Update applies the present fields to an existing customer. Changing the
// email re-checks uniqueness, excluding the customer itself.
func (s *CustomerService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateCustomerRequest) (*domain.Customer, error) {
	if req.FullName != nil {
		trimmed := strings.TrimSpace(*req.FullName)
		req.FullName = &trimmed
	}
	if req.Email != nil {
		trimmed := strings.TrimSpace(*req.Email)
		req.Email = &trimmed
	}

	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}

	customer, err := s.customers.FindByID(ctx, id)
	if err != nil {
		return nil, wrapRepositoryError(err)
	}
	if customer == nil {
		return nil, apperr.CustomerNotFound(id.String())
	}

	if req.Email != nil && *req.Email != customer.Email {
		other, err := s.customers.FindByEmail(ctx, *req.Email)
		if err != nil {
			return nil, wrapRepositoryError(err)
		}
		if other != nil && other.ID != id {
			return nil, apperr.EmailAlreadyUsed(*req.Email)
		}
		customer.Email = *req.Email
	}
	if req.FullName != nil {
		customer.FullName = *req.FullName
	}

	saved, err := s.customers.Save(ctx, customer)
	if err != nil {
		return nil, wrapRepositoryError(err)
	}

	return saved, nil
}

func (s *CustomerService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	customer, err := s.customers.FindByID(ctx, id)
	if err != nil {
		return nil, wrapRepositoryError(err)
	}
	if customer == nil {
		return nil, apperr.CustomerNotFound(id.String())
	}
	return customer, nil
}

func (s *CustomerService) Delete(ctx context.Context, id uuid.UUID) error {
	customer, err := s.customers.FindByID(ctx, id)
	if err != nil {
		return wrapRepositoryError(err)
	}
	if customer == nil {
		return apperr.CustomerNotFound(id.String())
	}

	if err := s.customers.Delete(ctx, id); err != nil {
		return wrapRepositoryError(err)
	}
	return nil
}

// List returns one page of customers. An empty page is a valid result.
func (s *CustomerService) List(ctx context.Context, page, pageSize int) (pagination.Result[*domain.Customer], error) {
	p := pagination.Normalize(page, pageSize)

	customers, total, err := s.customers.FindAll(ctx, p.Offset(), p.Limit())
	if err != nil {
		return pagination.Result[*domain.Customer]{}, wrapRepositoryError(err)
	}

	return pagination.NewResult(customers, total, p), nil
}

// wrapRepositoryError keeps typed application errors intact and treats
// anything else from the persistence layer as unexpected.
func wrapRepositoryError(err error) error {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		return err
	}
	return apperr.Unexpected(err)
}
