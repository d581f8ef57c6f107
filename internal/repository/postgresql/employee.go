package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/payroll-engine/internal/domain/employee"
	"github.com/cmlabs-hris/payroll-engine/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// ListPayrollEligible implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ListPayrollEligible(ctx context.Context) ([]employee.RateProfile, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT e.id, e.full_name, e.hourly_rate, e.daily_rate
		FROM employees e
		JOIN users u ON u.id = e.user_id
		WHERE u.role = $1
		  AND e.employment_status = $2
		  AND e.deleted_at IS NULL
		  AND (e.hourly_rate IS NOT NULL OR e.daily_rate IS NOT NULL)
		ORDER BY e.full_name, e.id
	`

	rows, err := q.Query(ctx, query, employee.RoleEmployee, string(employee.EmploymentStatusActive))
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll eligible employees: %w", err)
	}
	defer rows.Close()

	profiles := make([]employee.RateProfile, 0)
	for rows.Next() {
		var p employee.RateProfile
		if err := rows.Scan(&p.ID, &p.FullName, &p.HourlyRate, &p.DailyRate); err != nil {
			return nil, fmt.Errorf("failed to scan employee rate profile: %w", err)
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employees: %w", err)
	}

	return profiles, nil
}
