package time

import (
	"time"

	"github.com/amirhossein-jamali/agency-ledger/internal/domain/port/core"
)

// RealTimeProvider reads the system clock. Instants are returned in UTC, the zone
// every stored timestamp uses.
type RealTimeProvider struct{}

// NewRealTimeProvider returns the system clock
func NewRealTimeProvider() core.TimeProvider {
	return RealTimeProvider{}
}

func (RealTimeProvider) Now() time.Time {
	return time.Now().UTC()
}

func (RealTimeProvider) Since(t time.Time) time.Duration {
	return time.Since(t)
}

func (RealTimeProvider) Sleep(d time.Duration) {
	time.Sleep(d)
}
