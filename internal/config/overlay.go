package config

import (
	"os"
	"strconv"
)

// OverlayEnv applies environment overrides on top of the file config.
// Vars come from the process environment or a .env file loaded at startup.
func OverlayEnv(cfg *Config) {
	if v, ok := envInt("SKIJOBS_PORT"); ok {
		cfg.App.Port = v
	}
	if v := os.Getenv("SKIJOBS_DATA_DIR"); v != "" {
		cfg.App.DataDir = v
	}
	if v, ok := envFloat("SKIJOBS_HOST_REQ_PER_SEC"); ok {
		cfg.Scrape.HostReqPerSec = v
	}
	if v, ok := envInt("SKIJOBS_VAIL_DESCRIPTION_LIMIT"); ok {
		cfg.Scrape.VailDescriptionLimit = v
	}
	if v, ok := envInt("SKIJOBS_REFRESH_INTERVAL_HOURS"); ok {
		cfg.Refresh.IntervalHours = v
	}
	if v, ok := envInt("SKIJOBS_CACHE_TTL_HOURS"); ok {
		cfg.Cache.TTLHours = v
	}
}

func envInt(key string) (int, bool) {
	s := os.Getenv(key)
	if s == "" {
		return 0, false
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return v, true
}

func envFloat(key string) (float64, bool) {
	s := os.Getenv(key)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
