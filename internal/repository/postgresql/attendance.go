package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/payroll-engine/internal/domain/attendance"
	"github.com/cmlabs-hris/payroll-engine/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// ListIntervals implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListIntervals(ctx context.Context, employeeIDs []string, startDate, endDate time.Time, loc *time.Location) ([]attendance.Interval, error) {
	if len(employeeIDs) == 0 {
		return []attendance.Interval{}, nil
	}
	if loc == nil {
		loc = time.UTC
	}

	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, employee_id, clock_in, clock_out
		FROM attendances
		WHERE employee_id = ANY($1)
		  AND (clock_in AT TIME ZONE $4)::date BETWEEN $2::date AND $3::date
		ORDER BY employee_id, clock_in
	`

	rows, err := q.Query(ctx, query,
		employeeIDs, startDate.Format("2006-01-02"), endDate.Format("2006-01-02"), loc.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", attendance.ErrAttendanceStoreUnavailable, err)
	}
	defer rows.Close()

	intervals := make([]attendance.Interval, 0)
	for rows.Next() {
		var iv attendance.Interval
		if err := rows.Scan(&iv.ID, &iv.EmployeeID, &iv.ClockIn, &iv.ClockOut); err != nil {
			return nil, fmt.Errorf("failed to scan attendance interval: %w", err)
		}
		intervals = append(intervals, iv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", attendance.ErrAttendanceStoreUnavailable, err)
	}

	return intervals, nil
}
