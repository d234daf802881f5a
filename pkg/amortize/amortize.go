package amortize

import "github.com/shopspring/decimal"

var (
	one     = decimal.NewFromInt(1)
	twelve  = decimal.NewFromInt(12)
	hundred = decimal.NewFromInt(100)
)

// MonthlyPayment computes the fixed monthly payment that fully amortizes a
// loan of the given principal over termMonths at the given annual interest
// rate (in percent).
//
// With a zero rate the general formula divides by zero, so that case falls
// back to straight-line division of the principal. The result is returned
// unrounded; callers round once when wrapping it as a monetary value.
//
// Inputs are assumed pre-validated (termMonths 1-360, rate 0-100); the
// function itself is pure and performs no bounds checking.
func MonthlyPayment(principal, annualRatePercent decimal.Decimal, termMonths int) decimal.Decimal {
	term := decimal.NewFromInt(int64(termMonths))

	monthlyRate := annualRatePercent.Div(twelve).Div(hundred)
	if monthlyRate.IsZero() {
		return principal.Div(term)
	}

	// payment = P * (r * (1+r)^n) / ((1+r)^n - 1)
	compound := one.Add(monthlyRate).Pow(term)
	return principal.Mul(monthlyRate.Mul(compound)).Div(compound.Sub(one))
}
