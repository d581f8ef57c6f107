package employee

import (
	"github.com/shopspring/decimal"
)

// RateProfile is an employee as seen by payroll: identity plus optional pay rates.
type RateProfile struct {
	ID         string
	FullName   string
	HourlyRate *decimal.Decimal
	DailyRate  *decimal.Decimal
}

// HasRate reports whether at least one rate is configured.
func (p RateProfile) HasRate() bool {
	return p.HourlyRate != nil || p.DailyRate != nil
}

// RoleEmployee is the user role whose members are paid through payroll cycles.
const RoleEmployee = "employee"

type EmploymentStatus string

// EmploymentStatusActive is the only status included in a cycle calculation.
const EmploymentStatusActive EmploymentStatus = "active"
