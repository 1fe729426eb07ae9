package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Server holds the API server configuration. Values come from the
// environment; a YAML file named by CONFIG_FILE is merged over the
// environment values when present.
type Server struct {
	Addr            string        `yaml:"addr"`
	MetricsAddr     string        `yaml:"metrics_addr"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`

	RateLimit RateLimit `yaml:"rate_limit"`
}

// RateLimit configures the per-client write/login rate limiter.
type RateLimit struct {
	PerSecond float64 `yaml:"per_second"`
	Burst     int     `yaml:"burst"`
}

// Worker holds the maintenance worker configuration.
type Worker struct {
	PruneSchedule string `yaml:"prune_schedule"`
	GaugeSchedule string `yaml:"gauge_schedule"`
}

// LoadServer builds the server configuration: defaults, then environment,
// then the optional CONFIG_FILE overlay.
func LoadServer() (Server, error) {
	cfg := Server{
		Addr:            GetEnvString("HTTP_ADDR", ":8080"),
		MetricsAddr:     GetEnvString("METRICS_ADDR", ":9090"),
		MaxBodyBytes:    int64(GetEnvInt("HTTP_MAX_BODY_BYTES", 1<<20)),
		ShutdownTimeout: GetEnvDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
		RateLimit: RateLimit{
			PerSecond: float64(GetEnvInt("RATELIMIT_PER_SECOND", 5)),
			Burst:     GetEnvInt("RATELIMIT_BURST", 10),
		},
	}
	if err := overlayFile(&cfg); err != nil {
		return Server{}, err
	}
	return cfg, nil
}

// LoadWorker builds the worker configuration the same way.
func LoadWorker() (Worker, error) {
	cfg := Worker{
		PruneSchedule: GetEnvString("WORKER_PRUNE_SCHEDULE", "@hourly"),
		GaugeSchedule: GetEnvString("WORKER_GAUGE_SCHEDULE", "@every 1m"),
	}
	if err := overlayFile(&cfg); err != nil {
		return Worker{}, err
	}
	return cfg, nil
}

// overlayFile merges the YAML file named by CONFIG_FILE into cfg.
// A missing variable means no overlay; a named but unreadable file is an
// error so a typo does not silently run on defaults.
func overlayFile(cfg any) error {
	path := os.Getenv("CONFIG_FILE")
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}
