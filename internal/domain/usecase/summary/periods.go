package summary

import "time"

// period is a half-open [start, end) window
type period struct {
	start time.Time
	end   time.Time
}

// dayPeriod returns the calendar day containing now in loc
func dayPeriod(now time.Time, loc *time.Location) period {
	local := now.In(loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	return period{start: start, end: start.AddDate(0, 0, 1)}
}

// monthPeriod returns the calendar month containing now in loc
func monthPeriod(now time.Time, loc *time.Location) period {
	local := now.In(loc)
	start := time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc)
	return period{start: start, end: start.AddDate(0, 1, 0)}
}
