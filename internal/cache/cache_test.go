package cache

import (
	"testing"
	"time"

	"skijobs-engine/internal/domain"
)

func multiCompany() []domain.Job {
	return []domain.Job{
		{ID: "vail-1", Company: domain.CompanyVail},
		{ID: "alterra-2", Company: domain.CompanyAlterra},
	}
}

func TestCacheHitAndExpiry(t *testing.T) {
	now := time.Date(2026, 1, 15, 8, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	c := NewWithClock(24*time.Hour, clock)

	if _, ok := c.Get(); ok {
		t.Fatal("empty cache should miss")
	}

	if !c.Put(multiCompany()) {
		t.Fatal("multi-company result should cache")
	}
	if jobs, ok := c.Get(); !ok || len(jobs) != 2 {
		t.Fatalf("expected hit with 2 jobs, got ok=%v len=%d", ok, len(jobs))
	}

	now = now.Add(23 * time.Hour)
	if _, ok := c.Get(); !ok {
		t.Fatal("should still be fresh at 23h")
	}

	now = now.Add(2 * time.Hour)
	if _, ok := c.Get(); ok {
		t.Fatal("should have expired after 25h")
	}
}

func TestCacheExpiryClearsSlot(t *testing.T) {
	now := time.Date(2026, 1, 15, 8, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	c := NewWithClock(24*time.Hour, clock)

	c.Put(multiCompany())
	now = now.Add(25 * time.Hour)
	if _, ok := c.Get(); ok {
		t.Fatal("expired entry should miss")
	}

	// the expired read empties the slot; a stale entry must not come back
	// even if the clock would again consider its old timestamp fresh
	now = now.Add(-24 * time.Hour)
	if _, ok := c.Get(); ok {
		t.Fatal("expired entry should have been cleared on read")
	}
}

func TestCacheRejectsSingleCompany(t *testing.T) {
	c := New(time.Hour)
	ok := c.Put([]domain.Job{
		{ID: "vail-1", Company: domain.CompanyVail},
		{ID: "vail-2", Company: domain.CompanyVail},
	})
	if ok {
		t.Fatal("single-company result should not cache")
	}
	if _, hit := c.Get(); hit {
		t.Fatal("rejected put should not fill the slot")
	}
}

func TestCacheAcceptsExplicitEmpty(t *testing.T) {
	c := New(time.Hour)
	if !c.Put([]domain.Job{}) {
		t.Fatal("explicitly empty result should cache")
	}
	jobs, ok := c.Get()
	if !ok || len(jobs) != 0 {
		t.Fatalf("expected empty hit, got ok=%v len=%d", ok, len(jobs))
	}
}

func TestCacheClear(t *testing.T) {
	c := New(time.Hour)
	c.Put(multiCompany())
	c.Clear()
	if _, ok := c.Get(); ok {
		t.Fatal("cleared cache should miss")
	}
}
