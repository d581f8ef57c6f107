package payroll

import (
	"testing"

	"github.com/cmlabs-hris/payroll-engine/internal/domain/payroll"
	"github.com/stretchr/testify/assert"
)

func TestPriceDay(t *testing.T) {
	both := payroll.ResolveRates(decPtr("50"), decPtr("500"))
	hourlyOnly := payroll.ResolveRates(decPtr("50"), nil)
	dailyOnly := payroll.ResolveRates(nil, decPtr("500"))
	none := payroll.ResolveRates(nil, nil)

	tests := []struct {
		name       string
		hours      string
		rates      payroll.Rates
		method     payroll.CalculationMethod
		amount     string
		unrateable bool
	}{
		{"Both rates, 8 hours is hourly", "8", both, payroll.MethodHourly, "400", false},
		{"Both rates, exactly 12 hours is hourly", "12.0", both, payroll.MethodHourly, "600", false},
		{"Both rates, just over 12 hours is daily", "12.0001", both, payroll.MethodDaily, "500", false},
		{"Both rates, 13 hours is daily", "13", both, payroll.MethodDaily, "500", false},
		{"Hourly only, 13 hours stays hourly", "13", hourlyOnly, payroll.MethodHourly, "650", false},
		{"Hourly only keeps full precision", "7.3333", hourlyOnly, payroll.MethodHourly, "366.665", false},
		{"Daily only, 1 hour earns the daily rate", "1", dailyOnly, payroll.MethodDaily, "500", false},
		{"Daily only, 13 hours earns the daily rate", "13", dailyOnly, payroll.MethodDaily, "500", false},
		{"No rate is unrateable", "8", none, payroll.MethodHourly, "0", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PriceDay(dec(tt.hours), tt.rates)
			assert.Equal(t, tt.method, got.Method)
			assert.True(t, dec(tt.amount).Equal(got.Amount), "amount = %s, want %s", got.Amount, tt.amount)
			assert.Equal(t, tt.unrateable, got.Unrateable)
		})
	}
}

func TestResolveRates(t *testing.T) {
	assert.Equal(t, payroll.RateBoth, payroll.ResolveRates(decPtr("1"), decPtr("2")).Kind)
	assert.Equal(t, payroll.RateHourlyOnly, payroll.ResolveRates(decPtr("1"), nil).Kind)
	assert.Equal(t, payroll.RateDailyOnly, payroll.ResolveRates(nil, decPtr("2")).Kind)
	assert.Equal(t, payroll.RateNone, payroll.ResolveRates(nil, nil).Kind)
	assert.Equal(t, "daily_only", payroll.RateDailyOnly.String())
}
