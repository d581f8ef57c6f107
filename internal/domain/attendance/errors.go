package attendance

import "errors"

var (
	ErrAttendanceStoreUnavailable = errors.New("attendance store unavailable")
)
