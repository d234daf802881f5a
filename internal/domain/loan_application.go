package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Loan term and rate bounds
const (
	MinTermMonths = 1
	MaxTermMonths = 360
	MaxAnnualRate = 100
)

// LoanApplication is immutable after creation. MonthlyPayment is always the
// amortization output for (Amount, AnnualInterestRate, TermMonths) at
// creation time and is never recomputed on read.
type LoanApplication struct {
	ID                 uuid.UUID       `json:"id"`
	CustomerID         uuid.UUID       `json:"customerId"`
	Amount             Money           `json:"amount"`
	TermMonths         int             `json:"termMonths"`
	AnnualInterestRate decimal.Decimal `json:"annualInterestRate"`
	MonthlyPayment     Money           `json:"monthlyPayment"`
	CreatedAt          time.Time       `json:"createdAt"`
}

type CreateLoanApplicationRequest struct {
	CustomerID         string          `json:"customerId" validate:"required,uuid4"`
	Amount             decimal.Decimal `json:"amount" validate:"gt=0"`
	Currency           string          `json:"currency" validate:"omitempty,len=3,alpha"`
	TermMonths         int             `json:"termMonths" validate:"required,gte=1,lte=360"`
	AnnualInterestRate decimal.Decimal `json:"annualInterestRate" validate:"gte=0,lte=100"`
}
