package attendance

import (
	"time"
)

// Interval is one check-in/check-out session. A nil ClockOut is an open
// session that has not been closed yet.
type Interval struct {
	ID         string
	EmployeeID string
	ClockIn    time.Time
	ClockOut   *time.Time
}

// IsComplete reports whether the session has been checked out.
func (i Interval) IsComplete() bool {
	return i.ClockOut != nil
}
