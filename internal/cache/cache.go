// Package cache holds the most recent aggregate scrape so repeat requests
// within the TTL skip the network entirely.
package cache

import (
	"sync"
	"time"

	"skijobs-engine/internal/domain"
)

const DefaultTTL = 24 * time.Hour

// Cache is a single-slot store: one aggregate result, one timestamp.
// Per-source results are never cached; a partial scrape covering only one
// company would otherwise mask the full set until expiry.
type Cache struct {
	mu    sync.Mutex
	jobs  []domain.Job
	at    time.Time
	ttl   time.Duration
	clock func() time.Time
}

func New(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{ttl: ttl, clock: time.Now}
}

// NewWithClock injects a clock for deterministic expiry tests.
func NewWithClock(ttl time.Duration, clock func() time.Time) *Cache {
	c := New(ttl)
	c.clock = clock
	return c
}

// Get returns the cached jobs if the slot is filled and fresh. An expired
// entry is cleared on read so the old snapshot can be collected.
func (c *Cache) Get() ([]domain.Job, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.at.IsZero() {
		return nil, false
	}
	if c.clock().Sub(c.at) > c.ttl {
		c.jobs = nil
		c.at = time.Time{}
		return nil, false
	}
	return c.jobs, true
}

// Put stores an aggregate result. Results covering fewer than two companies
// are rejected unless explicitly empty: a run where most sources died should
// not pin a near-empty list for a full TTL.
func (c *Cache) Put(jobs []domain.Job) bool {
	if len(jobs) > 0 && countCompanies(jobs) < 2 {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.jobs = jobs
	c.at = c.clock()
	return true
}

func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.jobs = nil
	c.at = time.Time{}
}

func countCompanies(jobs []domain.Job) int {
	seen := make(map[domain.Company]struct{})
	for _, j := range jobs {
		seen[j.Company] = struct{}{}
	}
	return len(seen)
}
