package time

import (
	"sync"
	"time"
)

// ManualTimeProvider is a clock that only moves when told to.
// Sleep advances the clock instead of blocking.
type ManualTimeProvider struct {
	mu  sync.Mutex
	now time.Time
}

// NewManualTimeProvider creates a clock stopped at start
func NewManualTimeProvider(start time.Time) *ManualTimeProvider {
	return &ManualTimeProvider{now: start}
}

// Now returns the current manual time
func (p *ManualTimeProvider) Now() time.Time {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.now
}

// Since returns the manual time elapsed since t
func (p *ManualTimeProvider) Since(t time.Time) time.Duration {
	return p.Now().Sub(t)
}

// Sleep advances the clock by d
func (p *ManualTimeProvider) Sleep(d time.Duration) {
	p.Advance(d)
}

// Advance moves the clock forward
func (p *ManualTimeProvider) Advance(d time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.now = p.now.Add(d)
}

// Set moves the clock to t
func (p *ManualTimeProvider) Set(t time.Time) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.now = t
}
