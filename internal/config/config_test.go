package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte("app:\n  port: 4000\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.App.Port != 4000 {
		t.Errorf("Port = %d", cfg.App.Port)
	}
	if cfg.Scrape.HostReqPerSec != 1 {
		t.Errorf("HostReqPerSec default = %v", cfg.Scrape.HostReqPerSec)
	}
	if cfg.Refresh.IntervalHours != 24 || cfg.Cache.TTLHours != 24 {
		t.Errorf("interval defaults: refresh=%d cache=%d", cfg.Refresh.IntervalHours, cfg.Cache.TTLHours)
	}
}

func TestSaveAtomicRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")

	var cfg Config
	applyDefaults(&cfg)
	cfg.App.Port = 39999
	cfg.Scrape.VailDescriptionLimit = 5

	if err := SaveAtomic(path, cfg); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.App.Port != 39999 || got.Scrape.VailDescriptionLimit != 5 {
		t.Errorf("round trip lost values: %+v", got)
	}

	// second save keeps a backup of the first
	cfg.App.Port = 40000
	if err := SaveAtomic(path, cfg); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path + ".bak"); err != nil {
		t.Errorf("expected backup file: %v", err)
	}
}

func TestSaveAtomicRejectsInvalid(t *testing.T) {
	var cfg Config
	applyDefaults(&cfg)
	cfg.App.Port = -1

	if err := SaveAtomic(filepath.Join(t.TempDir(), "config.yml"), cfg); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestOverlayEnv(t *testing.T) {
	t.Setenv("SKIJOBS_PORT", "41000")
	t.Setenv("SKIJOBS_HOST_REQ_PER_SEC", "2.5")
	t.Setenv("SKIJOBS_CACHE_TTL_HOURS", "notanumber")

	var cfg Config
	applyDefaults(&cfg)
	OverlayEnv(&cfg)

	if cfg.App.Port != 41000 {
		t.Errorf("Port = %d", cfg.App.Port)
	}
	if cfg.Scrape.HostReqPerSec != 2.5 {
		t.Errorf("HostReqPerSec = %v", cfg.Scrape.HostReqPerSec)
	}
	if cfg.Cache.TTLHours != 24 {
		t.Errorf("malformed env should not override, got %d", cfg.Cache.TTLHours)
	}
}
