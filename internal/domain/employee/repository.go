package employee

import "context"

// EmployeeRepository is a read-only view over the HR store.
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mock_employee -source=repository.go
type EmployeeRepository interface {
	// ListPayrollEligible returns active employees with role "employee" and at
	// least one of hourly_rate / daily_rate set.
	ListPayrollEligible(ctx context.Context) ([]RateProfile, error)
}
