package attendance

import (
	"context"
	"time"
)

// AttendanceRepository is a read-only view over the attendance store.
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mock_attendance -source=repository.go
type AttendanceRepository interface {
	// ListIntervals returns sessions whose clock-in falls on a calendar date in
	// [startDate, endDate] (inclusive, evaluated in loc) for the given employees.
	ListIntervals(ctx context.Context, employeeIDs []string, startDate, endDate time.Time, loc *time.Location) ([]Interval, error)
}
