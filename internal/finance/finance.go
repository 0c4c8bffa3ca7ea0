package finance

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReprocessInterval is how long a creditworthiness result stays final
const ReprocessInterval = 15 * 24 * time.Hour

// factorScale bounds intermediate precision of the compounding loop
const factorScale = 20

var (
	monthsPerYear = decimal.NewFromInt(12)
	hundred       = decimal.NewFromInt(100)
)

// MonthlyPayment returns the annuity instalment for a loan of amount over
// years at the yearly interest rate given in percent, rounded to cents. A zero
// rate spreads the amount evenly.
func MonthlyPayment(amount, annualRatePct decimal.Decimal, years int) decimal.Decimal {
	payments := int64(years) * 12
	if payments <= 0 {
		return decimal.Zero
	}
	if annualRatePct.IsZero() {
		return amount.DivRound(decimal.NewFromInt(payments), 2)
	}

	rate := annualRatePct.DivRound(monthsPerYear.Mul(hundred), factorScale)
	base := decimal.NewFromInt(1).Add(rate)
	factor := decimal.NewFromInt(1)
	for i := int64(0); i < payments; i++ {
		factor = factor.Mul(base).Round(factorScale)
	}

	numerator := amount.Mul(rate).Mul(factor)
	denominator := factor.Sub(decimal.NewFromInt(1))
	return numerator.DivRound(denominator, factorScale).RoundBank(2)
}

// Creditworthiness is the yearly amount a client can service: what is left of
// net income after living expenses, times twelve, never below zero.
func Creditworthiness(netIncome, livingExpenses decimal.Decimal) decimal.Decimal {
	free := netIncome.Sub(livingExpenses)
	if free.IsNegative() {
		return decimal.Zero
	}
	return free.Mul(monthsPerYear).Round(2)
}

// CanReprocess reports whether a result processed at last may be recomputed
// at now. A nil last means the client was never processed.
func CanReprocess(last *time.Time, now time.Time) bool {
	return last == nil || now.Sub(*last) > ReprocessInterval
}
