package payroll

import (
	"time"

	"github.com/cmlabs-hris/payroll-engine/internal/domain/attendance"
	"github.com/cmlabs-hris/payroll-engine/internal/domain/employee"
	"github.com/cmlabs-hris/payroll-engine/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// Anomaly is a completed interval that was skipped because it ends before it starts.
type Anomaly struct {
	EmployeeID string
	IntervalID string
	ClockIn    time.Time
	ClockOut   time.Time
}

// UnrateableDay is a worked date priced at zero because the employee has no usable rate.
type UnrateableDay struct {
	EmployeeID string
	Date       string
}

// Calculation is the outcome of pricing a whole cycle.
type Calculation struct {
	Details    []payroll.Detail
	Anomalies  []Anomaly
	Unrateable []UnrateableDay
}

// TotalBasePay sums base pay across all details.
func (c Calculation) TotalBasePay() decimal.Decimal {
	total := decimal.Zero
	for _, d := range c.Details {
		total = total.Add(d.BasePay)
	}
	return total
}

// CalculateCycle prices every employee's attendance over the cycle window and
// returns one unsaved detail per employee, in the order employees are given.
// Daily amounts keep full precision; base pay is rounded to 2 places once.
func CalculateCycle(cycle payroll.Cycle, employees []employee.RateProfile, intervals []attendance.Interval, loc *time.Location) Calculation {
	byEmployee := make(map[string][]attendance.Interval)
	for _, iv := range intervals {
		byEmployee[iv.EmployeeID] = append(byEmployee[iv.EmployeeID], iv)
	}

	result := Calculation{Details: make([]payroll.Detail, 0, len(employees))}
	for _, emp := range employees {
		agg := AggregateHours(byEmployee[emp.ID], cycle.StartDate, cycle.EndDate, loc)
		rates := payroll.ResolveRates(emp.HourlyRate, emp.DailyRate)

		breakdown := make([]payroll.DailyCalculation, 0, len(agg.Days))
		methods := make([]payroll.CalculationMethod, 0, len(agg.Days))
		total := decimal.Zero

		for _, day := range agg.Days {
			pay := PriceDay(day.Hours, rates)
			breakdown = append(breakdown, payroll.DailyCalculation{
				Date:       day.Date,
				Hours:      day.Hours,
				Method:     pay.Method,
				Amount:     pay.Amount,
				Unrateable: pay.Unrateable,
			})
			methods = append(methods, pay.Method)
			total = total.Add(pay.Amount)

			if pay.Unrateable {
				result.Unrateable = append(result.Unrateable, UnrateableDay{EmployeeID: emp.ID, Date: day.Date})
			}
		}

		for _, iv := range agg.Anomalies {
			result.Anomalies = append(result.Anomalies, Anomaly{
				EmployeeID: emp.ID,
				IntervalID: iv.ID,
				ClockIn:    iv.ClockIn,
				ClockOut:   *iv.ClockOut,
			})
		}

		basePay := total.Round(2)
		name := emp.FullName
		result.Details = append(result.Details, payroll.Detail{
			CycleID:           cycle.ID,
			EmployeeID:        emp.ID,
			BasePay:           basePay,
			Bonus:             decimal.Zero,
			Deduction:         decimal.Zero,
			NetPay:            basePay,
			CalculationMethod: ClassifyMethods(methods),
			DaysWorked:        agg.DaysWorked(),
			DailyBreakdown:    breakdown,
			EmployeeName:      &name,
		})
	}

	return result
}

// ClassifyMethods reduces per-day methods to hourly, daily or mixed.
// No worked days is classified hourly.
func ClassifyMethods(methods []payroll.CalculationMethod) payroll.CalculationMethod {
	if len(methods) == 0 {
		return payroll.MethodHourly
	}
	first := methods[0]
	for _, m := range methods[1:] {
		if m != first {
			return payroll.MethodMixed
		}
	}
	return first
}
