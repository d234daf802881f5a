package repository

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/lendq/loan-intake/internal/domain"
	"github.com/lendq/loan-intake/pkg/apperr"
)

// In-memory repository implementations backing tests and local runs without
// a database. Rows are kept in insertion order so pagination is stable.

type MemoryCustomerRepository struct {
	mu    sync.RWMutex
	order []uuid.UUID
	rows  map[uuid.UUID]domain.Customer
}

func NewMemoryCustomerRepository() *MemoryCustomerRepository {
	return &MemoryCustomerRepository{rows: make(map[uuid.UUID]domain.Customer)}
}

func (r *MemoryCustomerRepository) FindByID(_ context.Context, id uuid.UUID) (*domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	customer, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &customer, nil
}

func (r *MemoryCustomerRepository) FindByEmail(_ context.Context, email string) (*domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		customer := r.rows[id]
		if strings.EqualFold(customer.Email, email) {
			return &customer, nil
		}
	}
	return nil, nil
}

func (r *MemoryCustomerRepository) Save(_ context.Context, customer *domain.Customer) (*domain.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	saved := *customer
	if saved.ID == uuid.Nil {
		saved.ID = uuid.New()
	}
	// Same uniqueness guarantee the SQL index provides
	for _, id := range r.order {
		existing := r.rows[id]
		if id != saved.ID && strings.EqualFold(existing.Email, saved.Email) {
			return nil, apperr.EmailAlreadyUsed(saved.Email)
		}
	}
	if _, ok := r.rows[saved.ID]; !ok {
		r.order = append(r.order, saved.ID)
	}
	r.rows[saved.ID] = saved
	return &saved, nil
}

func (r *MemoryCustomerRepository) FindAll(_ context.Context, skip, take int) ([]*domain.Customer, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	customers := []*domain.Customer{}
	for i := skip; i < len(r.order) && len(customers) < take; i++ {
		customer := r.rows[r.order[i]]
		customers = append(customers, &customer)
	}
	return customers, int64(len(r.order)), nil
}

func (r *MemoryCustomerRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rows[id]; !ok {
		return nil
	}
	delete(r.rows, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

type MemoryLoanApplicationRepository struct {
	mu    sync.RWMutex
	order []uuid.UUID
	rows  map[uuid.UUID]domain.LoanApplication
}

func NewMemoryLoanApplicationRepository() *MemoryLoanApplicationRepository {
	return &MemoryLoanApplicationRepository{rows: make(map[uuid.UUID]domain.LoanApplication)}
}

func (r *MemoryLoanApplicationRepository) FindByID(_ context.Context, id uuid.UUID) (*domain.LoanApplication, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	app, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &app, nil
}

func (r *MemoryLoanApplicationRepository) Save(_ context.Context, app *domain.LoanApplication) (*domain.LoanApplication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	saved := *app
	if saved.ID == uuid.Nil {
		saved.ID = uuid.New()
	}
	if _, ok := r.rows[saved.ID]; !ok {
		r.order = append(r.order, saved.ID)
	}
	r.rows[saved.ID] = saved
	return &saved, nil
}

func (r *MemoryLoanApplicationRepository) FindAll(_ context.Context, skip, take int) ([]*domain.LoanApplication, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	apps := []*domain.LoanApplication{}
	for i := skip; i < len(r.order) && len(apps) < take; i++ {
		app := r.rows[r.order[i]]
		apps = append(apps, &app)
	}
	return apps, int64(len(r.order)), nil
}

func (r *MemoryLoanApplicationRepository) FindByCustomerID(_ context.Context, customerID uuid.UUID, skip, take int) ([]*domain.LoanApplication, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := []*domain.LoanApplication{}
	var total int64
	for _, id := range r.order {
		app := r.rows[id]
		if app.CustomerID != customerID {
			continue
		}
		total++
		if int(total) > skip && len(matched) < take {
			matched = append(matched, &app)
		}
	}
	return matched, total, nil
}

func (r *MemoryLoanApplicationRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rows[id]; !ok {
		return nil
	}
	delete(r.rows, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
