package database

import (
	"database/sql"
	"sync"
	"time"

	coreport "github.com/amirhossein-jamali/agency-ledger/internal/domain/port/core"
)

// PoolStats is one sample of the connection pool
type PoolStats struct {
	MaxOpen   int    `json:"maxOpen"`
	Open      int    `json:"open"`
	InUse     int    `json:"inUse"`
	Idle      int    `json:"idle"`
	WaitCount int64  `json:"waitCount"`
	WaitTime  string `json:"waitTime"`
}

func newPoolStats(s sql.DBStats) PoolStats {
	return PoolStats{
		MaxOpen:   s.MaxOpenConnections,
		Open:      s.OpenConnections,
		InUse:     s.InUse,
		Idle:      s.Idle,
		WaitCount: s.WaitCount,
		WaitTime:  s.WaitDuration.String(),
	}
}

// poolMonitor samples the pool in the background. A posting unit holds its connection
// from the balance row lock until commit, so waits that grow between samples mean
// writers are queuing for connections rather than for the row.
type poolMonitor struct {
	db     *sql.DB
	logger coreport.Logger

	mu       sync.Mutex
	previous sql.DBStats

	stop     chan struct{}
	stopOnce sync.Once
	done     chan struct{}
}

func newPoolMonitor(db *sql.DB, logger coreport.Logger) *poolMonitor {
	return &poolMonitor{
		db:       db,
		logger:   logger,
		previous: db.Stats(),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

func (m *poolMonitor) start(interval time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		defer close(m.done)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				m.sample()
			case <-m.stop:
				return
			}
		}
	}()
}

// sample compares the pool with the previous sample and warns about new waits
func (m *poolMonitor) sample() {
	current := m.db.Stats()

	m.mu.Lock()
	waits := current.WaitCount - m.previous.WaitCount
	waited := current.WaitDuration - m.previous.WaitDuration
	m.previous = current
	m.mu.Unlock()

	if waits <= 0 {
		return
	}
	m.logger.Warn("Ledger units waited for database connections", map[string]any{
		"waits":    waits,
		"waited":   waited.String(),
		"in_use":   current.InUse,
		"max_open": current.MaxOpenConnections,
	})
}

func (m *poolMonitor) close() {
	m.stopOnce.Do(func() {
		close(m.stop)
		<-m.done
	})
}
