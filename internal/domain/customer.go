package domain

import (
	"time"

	"github.com/google/uuid"
)

// Customer is identified by ID. A zero ID means the record has not been
// persisted yet; the repository assigns one on insert.
type Customer struct {
	ID        uuid.UUID `json:"id" db:"id"`
	FullName  string    `json:"fullName" db:"full_name"`
	Email     string    `json:"email" db:"email"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// DTOs for requests

type CreateCustomerRequest struct {
	FullName string `json:"fullName" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
}

// UpdateCustomerRequest carries optional fields; at least one must be
// present, which is enforced by a struct-level validation.
type UpdateCustomerRequest struct {
	FullName *string `json:"fullName" validate:"omitempty,min=2,max=100"`
	Email    *string `json:"email" validate:"omitempty,email"`
}
