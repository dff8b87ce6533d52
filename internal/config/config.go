package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App struct {
		Port    int    `yaml:"port"`
		DataDir string `yaml:"data_dir"`
	} `yaml:"app"`

	Scrape struct {
		HostReqPerSec        float64 `yaml:"host_req_per_sec"`
		VailDescriptionLimit int     `yaml:"vail_description_limit"`
	} `yaml:"scrape"`

	Refresh struct {
		IntervalHours int `yaml:"interval_hours"`
	} `yaml:"refresh"`

	Cache struct {
		TTLHours int `yaml:"ttl_hours"`
	} `yaml:"cache"`
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	applyDefaults(&cfg)
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.App.Port == 0 {
		cfg.App.Port = 38560
	}
	if cfg.App.DataDir == "" {
		cfg.App.DataDir = "./data"
	}
	if cfg.Scrape.HostReqPerSec <= 0 {
		cfg.Scrape.HostReqPerSec = 1
	}
	if cfg.Refresh.IntervalHours <= 0 {
		cfg.Refresh.IntervalHours = 24
	}
	if cfg.Cache.TTLHours <= 0 {
		cfg.Cache.TTLHours = 24
	}
}
