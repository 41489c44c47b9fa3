package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the overall application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Store      StoreConfig      `yaml:"store"`
	Activity   ActivityConfig   `yaml:"activity"`
	Push       PushConfig       `yaml:"push"`
	WorkerPool WorkerPoolConfig `yaml:"worker_pool"`
}

// ServerConfig holds the server-related configuration.
type ServerConfig struct {
	Port            int     `yaml:"port"`
	RateLimitPerSec float64 `yaml:"rate_limit_per_sec"`
	RateLimitBurst  int     `yaml:"rate_limit_burst"`
	CacheTTLSeconds int     `yaml:"cache_ttl_seconds"`
}

// DatabaseConfig holds the connection settings for the persisted
// collaborators (activity log, push subscriptions, preferences). Complaint
// data itself is kept in memory.
type DatabaseConfig struct {
	DSN                    string `yaml:"dsn"`
	MaxOpenConns           int    `yaml:"max_open_conns"`
	MaxIdleConns           int    `yaml:"max_idle_conns"`
	ConnMaxLifetimeMinutes int    `yaml:"conn_max_lifetime_minutes"`
}

// StoreConfig tunes the in-memory complaint store.
type StoreConfig struct {
	DefaultAssignee string `yaml:"default_assignee"`
	Seed            *bool  `yaml:"seed_demo_data"`
}

// ActivityConfig holds the audit log cap and retention settings.
type ActivityConfig struct {
	MaxLogs              int `yaml:"max_logs"`
	RetentionDays        int `yaml:"retention_days"`
	PruneIntervalMinutes int `yaml:"prune_interval_minutes"`
}

// PushConfig holds the VAPID keys for web push notifications.
type PushConfig struct {
	Enabled    bool   `yaml:"enabled"`
	PublicKey  string `yaml:"vapid_public_key"`
	PrivateKey string `yaml:"vapid_private_key"`
	Subject    string `yaml:"subject"`
	TTL        int    `yaml:"ttl"`
}

// WorkerPoolConfig holds the configuration for the notification worker pool.
type WorkerPoolConfig struct {
	Size int `yaml:"size"`
}

// Load reads the configuration from the given path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}

	if cfg.Server.Port <= 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.RateLimitPerSec <= 0 {
		cfg.Server.RateLimitPerSec = 10
	}
	if cfg.Server.RateLimitBurst <= 0 {
		cfg.Server.RateLimitBurst = 20
	}
	if cfg.Server.CacheTTLSeconds <= 0 {
		cfg.Server.CacheTTLSeconds = 60
	}

	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "ccms.db"
	}

	if cfg.Activity.MaxLogs <= 0 {
		cfg.Activity.MaxLogs = 500
	}
	if cfg.Activity.RetentionDays <= 0 {
		cfg.Activity.RetentionDays = 90
	}
	if cfg.Activity.PruneIntervalMinutes <= 0 {
		cfg.Activity.PruneIntervalMinutes = 60
	}

	if cfg.Push.TTL <= 0 {
		cfg.Push.TTL = 3600
	}
	if cfg.WorkerPool.Size <= 0 {
		cfg.WorkerPool.Size = 1
	}

	return &cfg, nil
}

// SeedDemoData reports whether the demo complaints should be loaded at
// startup. Defaults to true when unset.
func (c *StoreConfig) SeedDemoData() bool {
	return c.Seed == nil || *c.Seed
}
