package payroll

import (
	"testing"

	"github.com/cmlabs-hris/payroll-engine/internal/domain/payroll"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func detailWith(id, employeeID, name, base, bonus, deduction string) payroll.Detail {
	d := payroll.Detail{
		ID:           id,
		EmployeeID:   employeeID,
		BasePay:      dec(base),
		Bonus:        dec(bonus),
		Deduction:    dec(deduction),
		EmployeeName: strPtr(name),
	}
	d.NetPay = d.ComputeNetPay()
	return d
}

func TestCheckFinalization_Clean(t *testing.T) {
	details := []payroll.Detail{
		detailWith("d1", "e1", "Anan", "1000", "100", "50"),
		detailWith("d2", "e2", "Benja", "500", "0", "0"),
	}

	report := CheckFinalization(details)

	assert.True(t, report.CanFinalize())
	assert.Equal(t, 2, report.TotalEmployees)
	assert.Equal(t, "1550.00", report.TotalNetPay.StringFixed(2))
	assert.Empty(t, report.Issues)
	assert.Empty(t, report.Offenders)
}

func TestCheckFinalization_ListsEveryNegativeNetPay(t *testing.T) {
	details := []payroll.Detail{
		detailWith("d1", "e1", "Anan", "1000", "0", "1200"),
		detailWith("d2", "e2", "Benja", "500", "0", "0"),
		detailWith("d3", "e3", "", "100", "0", "101"),
	}

	report := CheckFinalization(details)

	assert.False(t, report.CanFinalize())
	require.Len(t, report.Offenders, 2)
	assert.Equal(t, "Anan", report.Offenders[0].FullName)
	assert.Equal(t, "-200.00", report.Offenders[0].NetPay.StringFixed(2))
	assert.Equal(t, "e3", report.Offenders[1].EmployeeID)

	require.Len(t, report.Issues, 2)
	assert.Equal(t, payroll.IssueNegativeNetPay, report.Issues[0].Type)
	assert.Equal(t, "net pay for Anan is -200.00", report.Issues[0].Message)
	assert.Equal(t, "net pay for e3 is -1.00", report.Issues[1].Message)
}

func TestCheckFinalization_Empty(t *testing.T) {
	report := CheckFinalization(nil)

	assert.True(t, report.CanFinalize())
	assert.Equal(t, 0, report.TotalEmployees)
	assert.True(t, report.TotalNetPay.IsZero())
	assert.NotNil(t, report.Issues)
}

func TestTotals(t *testing.T) {
	details := []payroll.Detail{
		detailWith("d1", "e1", "Anan", "1000", "100", "50"),
		detailWith("d2", "e2", "Benja", "500.50", "0", "0.25"),
	}

	totals := Totals(details)

	assert.Equal(t, 2, totals.TotalEmployees)
	assert.Equal(t, "1500.50", totals.TotalBasePay.StringFixed(2))
	assert.Equal(t, "100.00", totals.TotalBonuses.StringFixed(2))
	assert.Equal(t, "50.25", totals.TotalDeductions.StringFixed(2))
	assert.Equal(t, "1550.25", totals.TotalNetPay.StringFixed(2))
}
