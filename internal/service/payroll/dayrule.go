package payroll

import (
	"github.com/cmlabs-hris/payroll-engine/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// DailyRateThresholdHours is the point past which an employee with a daily
// rate is paid the daily rate instead of hours × hourly rate. Exactly 12
// hours is still paid hourly.
var DailyRateThresholdHours = decimal.NewFromInt(12)

// DayPay is the priced outcome of a single worked date.
type DayPay struct {
	Method     payroll.CalculationMethod
	Amount     decimal.Decimal
	Unrateable bool
}

// PriceDay applies the dual-rate rule to one date's hours.
func PriceDay(hours decimal.Decimal, rates payroll.Rates) DayPay {
	switch rates.Kind {
	case payroll.RateBoth:
		if hours.GreaterThan(DailyRateThresholdHours) {
			return DayPay{Method: payroll.MethodDaily, Amount: rates.Daily}
		}
		return DayPay{Method: payroll.MethodHourly, Amount: hours.Mul(rates.Hourly)}
	case payroll.RateHourlyOnly:
		return DayPay{Method: payroll.MethodHourly, Amount: hours.Mul(rates.Hourly)}
	case payroll.RateDailyOnly:
		// Daily-only employees earn the full daily rate regardless of hours.
		return DayPay{Method: payroll.MethodDaily, Amount: rates.Daily}
	default:
		return DayPay{Method: payroll.MethodHourly, Amount: decimal.Zero, Unrateable: true}
	}
}
