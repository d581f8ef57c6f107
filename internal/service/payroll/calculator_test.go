package payroll

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/payroll-engine/internal/domain/attendance"
	"github.com/cmlabs-hris/payroll-engine/internal/domain/employee"
	"github.com/cmlabs-hris/payroll-engine/internal/domain/payroll"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCycle(t *testing.T) payroll.Cycle {
	return payroll.Cycle{
		ID:        "cycle-1",
		Name:      "January 2025 (1)",
		StartDate: day(t, "2025-01-01"),
		EndDate:   day(t, "2025-01-15"),
		Status:    payroll.CycleStatusActive,
	}
}

func TestCalculateCycle_Scenarios(t *testing.T) {
	tests := []struct {
		name      string
		profile   employee.RateProfile
		intervals []attendance.Interval
		basePay   string
		method    payroll.CalculationMethod
		days      int
	}{
		{
			name:      "Hourly rate, one 8 hour day",
			profile:   employee.RateProfile{ID: "e1", FullName: "Somchai", HourlyRate: decPtr("50")},
			intervals: []attendance.Interval{session("a1", "e1", "2025-01-02 08:00", 8*time.Hour)},
			basePay:   "400",
			method:    payroll.MethodHourly,
			days:      1,
		},
		{
			name:      "Both rates, one 13 hour day",
			profile:   employee.RateProfile{ID: "e1", FullName: "Somchai", HourlyRate: decPtr("50"), DailyRate: decPtr("500")},
			intervals: []attendance.Interval{session("a1", "e1", "2025-01-02 07:00", 13*time.Hour)},
			basePay:   "500",
			method:    payroll.MethodDaily,
			days:      1,
		},
		{
			name:    "Both rates, 8 hour and 13 hour days",
			profile: employee.RateProfile{ID: "e1", FullName: "Somchai", HourlyRate: decPtr("50"), DailyRate: decPtr("500")},
			intervals: []attendance.Interval{
				session("a1", "e1", "2025-01-02 08:00", 8*time.Hour),
				session("a2", "e1", "2025-01-03 07:00", 13*time.Hour),
			},
			basePay: "900",
			method:  payroll.MethodMixed,
			days:    2,
		},
		{
			name:      "No attendance is hourly with zero pay",
			profile:   employee.RateProfile{ID: "e1", FullName: "Somchai", DailyRate: decPtr("500")},
			intervals: nil,
			basePay:   "0",
			method:    payroll.MethodHourly,
			days:      0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calc := CalculateCycle(testCycle(t), []employee.RateProfile{tt.profile}, tt.intervals, bangkok)

			require.Len(t, calc.Details, 1)
			d := calc.Details[0]
			assert.True(t, dec(tt.basePay).Equal(d.BasePay), "base_pay = %s, want %s", d.BasePay, tt.basePay)
			assert.True(t, d.BasePay.Equal(d.NetPay))
			assert.True(t, d.Bonus.IsZero())
			assert.True(t, d.Deduction.IsZero())
			assert.Nil(t, d.BonusReason)
			assert.Nil(t, d.DeductionReason)
			assert.Equal(t, tt.method, d.CalculationMethod)
			assert.Equal(t, tt.days, d.DaysWorked)
			assert.Len(t, d.DailyBreakdown, tt.days)
			assert.Equal(t, "cycle-1", d.CycleID)
			assert.Equal(t, "e1", d.EmployeeID)
			require.NotNil(t, d.EmployeeName)
			assert.Equal(t, "Somchai", *d.EmployeeName)
		})
	}
}

func TestCalculateCycle_RoundsOnceAtTotal(t *testing.T) {
	// 20 minutes at 10.01/hour is 3.33666..., three such days sum to 10.01 exactly.
	// Rounding per day would give 3.34 * 3 = 10.02.
	profile := employee.RateProfile{ID: "e1", FullName: "Somchai", HourlyRate: decPtr("10.01")}
	intervals := []attendance.Interval{
		session("a1", "e1", "2025-01-02 08:00", 20*time.Minute),
		session("a2", "e1", "2025-01-03 08:00", 20*time.Minute),
		session("a3", "e1", "2025-01-04 08:00", 20*time.Minute),
	}

	calc := CalculateCycle(testCycle(t), []employee.RateProfile{profile}, intervals, bangkok)

	require.Len(t, calc.Details, 1)
	d := calc.Details[0]
	assert.Equal(t, "10.01", d.BasePay.StringFixed(2))
	for _, b := range d.DailyBreakdown {
		assert.NotEqual(t, "3.34", b.Amount.String(), "day amounts keep full precision")
	}
}

func TestCalculateCycle_OneDetailPerEmployeeInOrder(t *testing.T) {
	employees := []employee.RateProfile{
		{ID: "e1", FullName: "Anan", HourlyRate: decPtr("50")},
		{ID: "e2", FullName: "Benja", DailyRate: decPtr("400")},
		{ID: "e3", FullName: "Chai", HourlyRate: decPtr("60"), DailyRate: decPtr("600")},
	}
	intervals := []attendance.Interval{
		session("a1", "e2", "2025-01-02 08:00", time.Hour),
		session("a2", "e1", "2025-01-02 08:00", 2*time.Hour),
		session("a3", "e9", "2025-01-02 08:00", 2*time.Hour),
	}

	calc := CalculateCycle(testCycle(t), employees, intervals, bangkok)

	require.Len(t, calc.Details, 3)
	assert.Equal(t, "e1", calc.Details[0].EmployeeID)
	assert.Equal(t, "e2", calc.Details[1].EmployeeID)
	assert.Equal(t, "e3", calc.Details[2].EmployeeID)
	assert.True(t, dec("100").Equal(calc.Details[0].BasePay))
	assert.True(t, dec("400").Equal(calc.Details[1].BasePay))
	assert.True(t, calc.Details[2].BasePay.IsZero())
	assert.True(t, dec("500").Equal(calc.TotalBasePay()))
}

func TestCalculateCycle_ReportsAnomaliesAndUnrateableDays(t *testing.T) {
	employees := []employee.RateProfile{
		{ID: "e1", FullName: "Anan", HourlyRate: decPtr("50")},
		{ID: "e2", FullName: "Benja"},
	}
	intervals := []attendance.Interval{
		session("bad", "e1", "2025-01-02 17:00", -2*time.Hour),
		session("a2", "e2", "2025-01-03 08:00", 8*time.Hour),
	}

	calc := CalculateCycle(testCycle(t), employees, intervals, bangkok)

	require.Len(t, calc.Anomalies, 1)
	assert.Equal(t, "e1", calc.Anomalies[0].EmployeeID)
	assert.Equal(t, "bad", calc.Anomalies[0].IntervalID)
	assert.Equal(t, 1, calc.Details[0].DaysWorked)
	assert.True(t, calc.Details[0].BasePay.IsZero())

	require.Len(t, calc.Unrateable, 1)
	assert.Equal(t, UnrateableDay{EmployeeID: "e2", Date: "2025-01-03"}, calc.Unrateable[0])
	require.Len(t, calc.Details[1].DailyBreakdown, 1)
	assert.True(t, calc.Details[1].DailyBreakdown[0].Unrateable)
	assert.True(t, calc.Details[1].BasePay.IsZero())
}

func TestCalculateCycle_DailyOnlyPaidForAnomalousDay(t *testing.T) {
	profile := employee.RateProfile{ID: "e1", FullName: "Somchai", DailyRate: decPtr("500")}
	intervals := []attendance.Interval{session("bad", "e1", "2025-01-02 08:00", -time.Second)}

	calc := CalculateCycle(testCycle(t), []employee.RateProfile{profile}, intervals, bangkok)

	require.Len(t, calc.Details, 1)
	d := calc.Details[0]
	assert.Equal(t, 1, d.DaysWorked)
	assert.Equal(t, "500.00", d.BasePay.StringFixed(2))
	assert.Equal(t, payroll.MethodDaily, d.CalculationMethod)
	require.Len(t, calc.Anomalies, 1)
	assert.Equal(t, "bad", calc.Anomalies[0].IntervalID)
}

func TestClassifyMethods(t *testing.T) {
	assert.Equal(t, payroll.MethodHourly, ClassifyMethods(nil))
	assert.Equal(t, payroll.MethodHourly, ClassifyMethods([]payroll.CalculationMethod{payroll.MethodHourly, payroll.MethodHourly}))
	assert.Equal(t, payroll.MethodDaily, ClassifyMethods([]payroll.CalculationMethod{payroll.MethodDaily}))
	assert.Equal(t, payroll.MethodMixed, ClassifyMethods([]payroll.CalculationMethod{payroll.MethodDaily, payroll.MethodHourly}))
}
