package payroll

import (
	"fmt"

	"github.com/cmlabs-hris/payroll-engine/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// FinalizationReport lists everything that blocks closing a cycle.
type FinalizationReport struct {
	TotalEmployees int
	TotalNetPay    decimal.Decimal
	Issues         []payroll.ValidationIssue
	Offenders      []payroll.NegativeNetPay
}

// CanFinalize is true iff no blocking issue was found.
func (r FinalizationReport) CanFinalize() bool {
	return len(r.Issues) == 0
}

// CheckFinalization re-checks every detail of a cycle. Negative net pay should
// be impossible through adjustments, but rows written out of band are caught here.
func CheckFinalization(details []payroll.Detail) FinalizationReport {
	report := FinalizationReport{
		TotalEmployees: len(details),
		TotalNetPay:    decimal.Zero,
		Issues:         []payroll.ValidationIssue{},
		Offenders:      []payroll.NegativeNetPay{},
	}

	for _, d := range details {
		report.TotalNetPay = report.TotalNetPay.Add(d.NetPay)
		if !d.NetPay.IsNegative() {
			continue
		}

		offender := negativeNetPayOf(d)
		report.Offenders = append(report.Offenders, offender)
		report.Issues = append(report.Issues, payroll.ValidationIssue{
			Type:       payroll.IssueNegativeNetPay,
			EmployeeID: offender.EmployeeID,
			FullName:   offender.FullName,
			NetPay:     offender.NetPay,
			Message:    fmt.Sprintf("net pay for %s is %s", displayName(offender), offender.NetPay.StringFixed(2)),
		})
	}

	return report
}

// Totals sums the monetary columns of a cycle's details.
func Totals(details []payroll.Detail) payroll.SummaryTotals {
	totals := payroll.SummaryTotals{
		TotalEmployees:  len(details),
		TotalBasePay:    decimal.Zero,
		TotalBonuses:    decimal.Zero,
		TotalDeductions: decimal.Zero,
		TotalNetPay:     decimal.Zero,
	}
	for _, d := range details {
		totals.TotalBasePay = totals.TotalBasePay.Add(d.BasePay)
		totals.TotalBonuses = totals.TotalBonuses.Add(d.Bonus)
		totals.TotalDeductions = totals.TotalDeductions.Add(d.Deduction)
		totals.TotalNetPay = totals.TotalNetPay.Add(d.NetPay)
	}
	return totals
}

func displayName(o payroll.NegativeNetPay) string {
	if o.FullName != "" {
		return o.FullName
	}
	return o.EmployeeID
}
