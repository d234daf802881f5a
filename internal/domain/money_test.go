package domain

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	tests := []struct {
		name     string
		amount   decimal.Decimal
		currency string
		wantErr  error
		want     string
	}{
		{
			name:     "rounds to two decimals",
			amount:   decimal.RequireFromString("10.005"),
			currency: "USD",
			want:     "10.01 USD",
		},
		{
			name:     "already rounded stays put",
			amount:   decimal.RequireFromString("25000"),
			currency: "USD",
			want:     "25000.00 USD",
		},
		{
			name:     "currency is upper-cased",
			amount:   decimal.NewFromInt(5),
			currency: "eur",
			want:     "5.00 EUR",
		},
		{
			name:     "negative amount rejected",
			amount:   decimal.NewFromInt(-1),
			currency: "USD",
			wantErr:  ErrInvalidAmount,
		},
		{
			name:     "bad currency rejected",
			amount:   decimal.NewFromInt(1),
			currency: "USDT",
			wantErr:  ErrInvalidCurrency,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMoney(tt.amount, tt.currency)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.String())
		})
	}
}

func TestMoneyRoundingIsIdempotent(t *testing.T) {
	a := MustMoney(decimal.RequireFromString("10.005"), "USD")
	b := MustMoney(a.Amount(), "USD")

	assert.True(t, a.Equals(b))
	assert.Equal(t, "10.01", a.Amount().StringFixed(2))
	assert.True(t, a.Amount().Equal(a.Amount().Round(2)))
}

func TestMoneyAdd(t *testing.T) {
	usd10 := MustMoney(decimal.NewFromInt(10), "USD")
	usd5 := MustMoney(decimal.NewFromInt(5), "USD")
	eur5 := MustMoney(decimal.NewFromInt(5), "EUR")

	sum, err := usd10.Add(usd5)
	require.NoError(t, err)
	assert.True(t, sum.Equals(MustMoney(decimal.NewFromInt(15), "USD")))

	_, err = usd10.Add(eur5)
	assert.ErrorIs(t, err, ErrCurrencyMismatch)

	// Operands are untouched
	assert.Equal(t, "10.00 USD", usd10.String())
}

func TestMoneySubtract(t *testing.T) {
	usd10 := MustMoney(decimal.NewFromInt(10), "USD")
	usd5 := MustMoney(decimal.NewFromInt(5), "USD")
	eur5 := MustMoney(decimal.NewFromInt(5), "EUR")

	diff, err := usd10.Subtract(usd5)
	require.NoError(t, err)
	assert.Equal(t, "5.00 USD", diff.String())

	_, err = usd5.Subtract(usd10)
	assert.ErrorIs(t, err, ErrNegativeResult)

	_, err = usd10.Subtract(eur5)
	assert.ErrorIs(t, err, ErrCurrencyMismatch)
}

func TestMoneyMultiply(t *testing.T) {
	usd10 := MustMoney(decimal.NewFromInt(10), "USD")

	doubled, err := usd10.Multiply(decimal.NewFromInt(2))
	require.NoError(t, err)
	assert.Equal(t, "20.00 USD", doubled.String())

	_, err = usd10.Multiply(decimal.NewFromInt(-1))
	assert.ErrorIs(t, err, ErrNegativeFactor)
}

func TestMoneyJSONRoundTrip(t *testing.T) {
	m := MustMoney(decimal.RequireFromString("25000"), "USD")

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{"amount":"25000.00","currency":"USD"}`, string(data))

	var decoded Money
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, m.Equals(decoded))
}
