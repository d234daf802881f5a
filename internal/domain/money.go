package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is used when a request does not name one.
const DefaultCurrency = "USD"

// Money value errors
var (
	ErrInvalidAmount    = errors.New("amount must not be negative")
	ErrInvalidCurrency  = errors.New("currency must be a 3-letter code")
	ErrCurrencyMismatch = errors.New("currency codes do not match")
	ErrNegativeResult   = errors.New("result must not be negative")
	ErrNegativeFactor   = errors.New("factor must not be negative")
)

// Money is an immutable non-negative monetary amount with a currency code.
// The amount is rounded to cents exactly once, at construction; every
// arithmetic operation returns a fresh value. Instances are safe to share
// between goroutines.
type Money struct {
	amount   decimal.Decimal
	currency string
}

// NewMoney builds a Money value, rounding the amount to 2 decimal places and
// upper-casing the currency code.
func NewMoney(amount decimal.Decimal, currency string) (Money, error) {
	if amount.IsNegative() {
		return Money{}, fmt.Errorf("%w: %s", ErrInvalidAmount, amount.String())
	}
	code := strings.ToUpper(strings.TrimSpace(currency))
	if len(code) != 3 || !isAlpha(code) {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidCurrency, currency)
	}
	return Money{amount: amount.Round(2), currency: code}, nil
}

// MustMoney is a constructor for values known to be valid, such as test
// fixtures and defaults. It panics on invalid input.
func MustMoney(amount decimal.Decimal, currency string) Money {
	m, err := NewMoney(amount, currency)
	if err != nil {
		panic(err)
	}
	return m
}

func isAlpha(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// Amount returns the cent-rounded amount.
func (m Money) Amount() decimal.Decimal { return m.amount }

// Currency returns the upper-cased 3-letter currency code.
func (m Money) Currency() string { return m.currency }

// Add returns the sum of two amounts in the same currency.
func (m Money) Add(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, fmt.Errorf("%w: %s vs %s", ErrCurrencyMismatch, m.currency, other.currency)
	}
	return NewMoney(m.amount.Add(other.amount), m.currency)
}

// Subtract returns the difference of two amounts in the same currency. A
// negative difference is rejected.
func (m Money) Subtract(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, fmt.Errorf("%w: %s vs %s", ErrCurrencyMismatch, m.currency, other.currency)
	}
	diff := m.amount.Sub(other.amount)
	if diff.IsNegative() {
		return Money{}, fmt.Errorf("%w: %s - %s", ErrNegativeResult, m.amount.String(), other.amount.String())
	}
	return NewMoney(diff, m.currency)
}

// Multiply scales the amount by a non-negative factor.
func (m Money) Multiply(factor decimal.Decimal) (Money, error) {
	if factor.IsNegative() {
		return Money{}, fmt.Errorf("%w: %s", ErrNegativeFactor, factor.String())
	}
	return NewMoney(m.amount.Mul(factor), m.currency)
}

// Equals reports whether amount and currency both match exactly.
func (m Money) Equals(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

func (m Money) String() string {
	return m.amount.StringFixed(2) + " " + m.currency
}

type moneyJSON struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

// MarshalJSON renders the amount with exactly two decimal places.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(moneyJSON{Amount: m.amount.StringFixed(2), Currency: m.currency})
}

func (m *Money) UnmarshalJSON(data []byte) error {
	var raw moneyJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	amount, err := decimal.NewFromString(raw.Amount)
	if err != nil {
		return err
	}
	parsed, err := NewMoney(amount, raw.Currency)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
