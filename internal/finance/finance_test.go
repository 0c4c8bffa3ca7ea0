package finance

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMonthlyPayment(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		rate   string
		years  int
		want   string
	}{
		{"thirty year mortgage", "100000", "6", 30, "599.55"},
		{"one year loan", "10000", "5", 1, "856.07"},
		{"interest free", "12000", "0", 1, "1000"},
		{"fractional rate", "250000", "7.25", 25, "1807.02"},
		{"no duration", "5000", "4", 0, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MonthlyPayment(decimal.RequireFromString(tt.amount), decimal.RequireFromString(tt.rate), tt.years)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s, want %s", got, tt.want)
		})
	}
}

func TestCreditworthiness(t *testing.T) {
	tests := []struct {
		name      string
		netIncome string
		expenses  string
		want      string
	}{
		{"surplus", "5000", "2000", "36000"},
		{"exactly covered", "2000", "2000", "0"},
		{"deficit", "1500", "2000", "0"},
		{"cents", "3000.50", "1000.25", "24003"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Creditworthiness(decimal.RequireFromString(tt.netIncome), decimal.RequireFromString(tt.expenses))
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s, want %s", got, tt.want)
		})
	}
}

func TestCanReprocess(t *testing.T) {
	now := time.Date(2025, 3, 20, 12, 0, 0, 0, time.UTC)
	recent := now.Add(-14 * 24 * time.Hour)
	boundary := now.Add(-ReprocessInterval)
	old := now.Add(-16 * 24 * time.Hour)

	assert.True(t, CanReprocess(nil, now))
	assert.False(t, CanReprocess(&recent, now))
	assert.False(t, CanReprocess(&boundary, now))
	assert.True(t, CanReprocess(&old, now))
}
