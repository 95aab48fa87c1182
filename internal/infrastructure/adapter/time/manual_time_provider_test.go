package time

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestManualTimeProvider(t *testing.T) {
	start := time.Date(2024, 3, 31, 23, 59, 0, 0, time.UTC)
	clock := NewManualTimeProvider(start)

	assert.Equal(t, start, clock.Now())

	clock.Advance(2 * time.Minute)
	assert.Equal(t, 4, int(clock.Now().Month()))
	assert.Equal(t, 2*time.Minute, clock.Since(start))

	clock.Sleep(time.Hour)
	assert.Equal(t, 62*time.Minute, clock.Since(start))

	clock.Set(start)
	assert.Equal(t, start, clock.Now())
}

func TestRealTimeProviderReturnsUTC(t *testing.T) {
	clock := NewRealTimeProvider()

	now := clock.Now()
	assert.Equal(t, time.UTC, now.Location())
	assert.GreaterOrEqual(t, clock.Since(now), time.Duration(0))
}
