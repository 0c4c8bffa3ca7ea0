package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestClientAge(t *testing.T) {
	client := Client{BirthDate: time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC)}

	tests := []struct {
		name string
		now  time.Time
		want int
	}{
		{"day before birthday", time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC), 34},
		{"on birthday", time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), 35},
		{"earlier month", time.Date(2025, 1, 30, 0, 0, 0, 0, time.UTC), 34},
		{"later month", time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), 35},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, client.Age(tt.now))
		})
	}
}

func TestClientNetIncome(t *testing.T) {
	tests := []struct {
		name        string
		salary      string
		liabilities string
		rate        string
		want        string
	}{
		{"no debts", "5000", "0", "0", "5000"},
		{"liabilities and rate", "5000", "750.50", "1200", "3049.50"},
		{"over committed", "2000", "1500", "900", "-400"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := Client{
				Salary:       decimal.RequireFromString(tt.salary),
				Liabilities:  decimal.RequireFromString(tt.liabilities),
				RatePerMonth: decimal.RequireFromString(tt.rate),
			}
			got := client.NetIncome()
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s, want %s", got, tt.want)
		})
	}
}

func TestClientEnums(t *testing.T) {
	assert.True(t, IncomeRental.IsValid())
	assert.False(t, SourceOfIncome("salary").IsValid())
	assert.True(t, EmploymentType("").IsValid())
	assert.True(t, EmploymentFixedTermB2B.IsValid())
	assert.False(t, EmploymentType("freelance").IsValid())
	assert.True(t, BankProductCreditCard.IsValid())
	assert.False(t, BankProductType("insurance").IsValid())
	assert.True(t, SaleStatusManualCheck.IsValid())
	assert.False(t, SaleStatus("closed").IsValid())
}
