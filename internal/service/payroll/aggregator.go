package payroll

import (
	"sort"
	"time"

	"github.com/cmlabs-hris/payroll-engine/internal/domain/attendance"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

var secondsPerHour = decimal.NewFromInt(3600)

// DailyHours is the worked time attributed to one calendar date.
type DailyHours struct {
	Date  string
	Hours decimal.Decimal
}

// Aggregation is the per-date view of one employee's attendance.
type Aggregation struct {
	Days []DailyHours

	// Anomalies are completed intervals whose clock-out precedes clock-in.
	// They contribute zero hours to their date.
	Anomalies []attendance.Interval
}

// DaysWorked is the number of distinct dates with completed attendance.
func (a Aggregation) DaysWorked() int {
	return len(a.Days)
}

// AggregateHours groups completed intervals by the calendar date of their
// clock-in (in loc) and sums the worked hours per date. Open sessions and
// sessions whose clock-in date falls outside [start, end] are ignored. A
// session spanning midnight is attributed entirely to its start date.
func AggregateHours(intervals []attendance.Interval, start, end time.Time, loc *time.Location) Aggregation {
	if loc == nil {
		loc = time.UTC
	}
	from := start.Format(dateLayout)
	to := end.Format(dateLayout)

	totals := make(map[string]time.Duration)
	var anomalies []attendance.Interval

	for _, iv := range intervals {
		if !iv.IsComplete() {
			continue
		}
		date := iv.ClockIn.In(loc).Format(dateLayout)
		if date < from || date > to {
			continue
		}

		worked := iv.ClockOut.Sub(iv.ClockIn)
		if worked < 0 {
			// Zero hours, but the date still counts as worked.
			anomalies = append(anomalies, iv)
			worked = 0
		}
		totals[date] += worked
	}

	days := make([]DailyHours, 0, len(totals))
	for date, worked := range totals {
		days = append(days, DailyHours{
			Date:  date,
			Hours: durationToHours(worked),
		})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })

	return Aggregation{Days: days, Anomalies: anomalies}
}

func durationToHours(d time.Duration) decimal.Decimal {
	// Nanosecond precision survives the conversion; the division is the only inexact step.
	return decimal.New(d.Nanoseconds(), -9).Div(secondsPerHour)
}
