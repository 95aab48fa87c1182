package core

import (
	"time"
)

// TimeProvider is the clock behind posting timestamps, period windows and retry delays.
// Tests substitute a manual clock so "today" and "this month" are deterministic.
type TimeProvider interface {
	// Now returns the current instant; callers convert to the ledger timezone themselves
	Now() time.Time
	Since(t time.Time) time.Duration
	Sleep(d time.Duration)
}
