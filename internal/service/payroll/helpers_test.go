package payroll

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/payroll-engine/internal/domain/attendance"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var bangkok = mustLoadLocation("Asia/Bangkok")

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func strPtr(s string) *string {
	return &s
}

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

// session builds a completed interval starting at clockIn (local Bangkok time) lasting d.
func session(id, employeeID, clockIn string, d time.Duration) attendance.Interval {
	in, err := time.ParseInLocation("2006-01-02 15:04", clockIn, bangkok)
	if err != nil {
		panic(err)
	}
	out := in.Add(d)
	return attendance.Interval{ID: id, EmployeeID: employeeID, ClockIn: in, ClockOut: &out}
}

func openSession(id, employeeID, clockIn string) attendance.Interval {
	in, err := time.ParseInLocation("2006-01-02 15:04", clockIn, bangkok)
	if err != nil {
		panic(err)
	}
	return attendance.Interval{ID: id, EmployeeID: employeeID, ClockIn: in}
}
