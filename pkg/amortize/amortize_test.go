package amortize

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMonthlyPayment(t *testing.T) {
	t.Run("standard amortization", func(t *testing.T) {
		payment := MonthlyPayment(decimal.NewFromInt(10000), decimal.RequireFromString("5.25"), 36)

		// ~300 a month for 10k over 3 years at 5.25%
		assert.True(t, payment.GreaterThan(decimal.NewFromInt(299)),
			"payment %s too low", payment)
		assert.True(t, payment.LessThan(decimal.NewFromInt(303)),
			"payment %s too high", payment)

		// Paying interest means paying more than principal/term in total
		total := payment.Mul(decimal.NewFromInt(36))
		assert.True(t, total.GreaterThan(decimal.NewFromInt(10000)))
	})

	t.Run("zero rate is straight-line division", func(t *testing.T) {
		payment := MonthlyPayment(decimal.NewFromInt(12000), decimal.Zero, 48)
		assert.True(t, payment.Equal(decimal.NewFromInt(250)))

		payment = MonthlyPayment(decimal.NewFromInt(10000), decimal.Zero, 36)
		assert.Equal(t, "277.78", payment.Round(2).StringFixed(2))
	})

	t.Run("single month repays everything at once", func(t *testing.T) {
		payment := MonthlyPayment(decimal.NewFromInt(1000), decimal.Zero, 1)
		assert.True(t, payment.Equal(decimal.NewFromInt(1000)))
	})

	t.Run("higher rate means higher payment", func(t *testing.T) {
		low := MonthlyPayment(decimal.NewFromInt(25000), decimal.RequireFromString("4.5"), 48)
		high := MonthlyPayment(decimal.NewFromInt(25000), decimal.RequireFromString("9.0"), 48)
		assert.True(t, high.GreaterThan(low))
	})

	t.Run("longer term means lower payment", func(t *testing.T) {
		short := MonthlyPayment(decimal.NewFromInt(25000), decimal.RequireFromString("4.5"), 24)
		long := MonthlyPayment(decimal.NewFromInt(25000), decimal.RequireFromString("4.5"), 60)
		assert.True(t, long.LessThan(short))
	})
}
