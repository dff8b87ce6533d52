// Package refresh ties the pipeline together: scrape every source, normalize
// the postings, then publish the snapshot to the cache and the database.
package refresh

import (
	"context"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"skijobs-engine/internal/cache"
	"skijobs-engine/internal/domain"
	"skijobs-engine/internal/normalize"
	"skijobs-engine/internal/scrape"
	"skijobs-engine/internal/store"
)

type Status struct {
	Running   bool      `json:"running"`
	LastRun   time.Time `json:"lastRun"`
	LastCount int       `json:"lastCount"`
	LastError string    `json:"lastError,omitempty"`
}

type Service struct {
	runner *scrape.Runner
	cache  *cache.Cache
	db     *store.DB

	mu     sync.Mutex // one refresh at a time
	status atomic.Value
}

func New(runner *scrape.Runner, c *cache.Cache, db *store.DB) *Service {
	s := &Service{runner: runner, cache: c, db: db}
	s.status.Store(Status{})
	return s
}

func (s *Service) Status() Status {
	return s.status.Load().(Status)
}

// Run executes one full pipeline pass. Safe to call from the scheduler, the
// HTTP refresh endpoint, and startup at once; overlapping calls serialize.
func (s *Service) Run(ctx context.Context) ([]domain.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.Status()
	st.Running = true
	s.status.Store(st)

	start := time.Now()
	postings := s.runner.All(ctx)
	jobs := normalize.Convert(postings)

	st.Running = false
	st.LastRun = time.Now()
	st.LastCount = len(jobs)
	st.LastError = ""

	if !s.cache.Put(jobs) {
		log.Printf("[refresh] result spans too few companies, not caching")
	}

	if s.db != nil {
		if err := store.ReplaceAll(ctx, s.db.Pool, jobs); err != nil {
			log.Printf("[refresh] persist failed: %v", err)
			st.LastError = err.Error()
		}
	}

	s.status.Store(st)
	log.Printf("[refresh] done: %d jobs in %s", len(jobs), time.Since(start).Round(time.Millisecond))
	return jobs, nil
}

// Jobs returns the aggregate set, preferring the cache over a fresh scrape.
// The second return names where the data came from.
func (s *Service) Jobs(ctx context.Context) ([]domain.Job, string, error) {
	if jobs, ok := s.cache.Get(); ok {
		return jobs, "cache", nil
	}
	jobs, err := s.Run(ctx)
	if err != nil {
		return nil, "", err
	}
	return jobs, "live", nil
}
