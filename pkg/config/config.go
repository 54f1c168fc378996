// Package config loads application configuration from a YAML file with
// environment variable expansion.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:pagewatch.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Redis struct {
		Addr     string `yaml:"addr" json:"addr" jsonschema:"description=Redis address, empty disables the task queue and distributed locks"`
		Password string `yaml:"password" json:"password" jsonschema:"description=Redis password"`
		DB       int    `yaml:"db" json:"db" jsonschema:"default=0,description=Redis database number"`
		QueueKey string `yaml:"queue_key" json:"queue_key" jsonschema:"default=pagewatch:tasks,description=Redis list used for crawl tasks"`
	} `yaml:"redis" json:"redis" jsonschema:"description=Redis configuration"`

	Schedule struct {
		Tick        time.Duration `yaml:"tick" json:"tick" jsonschema:"default=1m,description=Scan period for due targets"`
		LockAtMost  time.Duration `yaml:"lock_at_most" json:"lock_at_most" jsonschema:"default=5m,description=Maximum time the scan lock is held"`
		LockAtLeast time.Duration `yaml:"lock_at_least" json:"lock_at_least" jsonschema:"default=30s,description=Minimum time the scan lock is held"`
		Workers     int           `yaml:"workers" json:"workers" jsonschema:"default=4,description=Number of queue workers"`
		Direct      bool          `yaml:"direct" json:"direct" jsonschema:"default=false,description=Execute crawls in-process instead of through the queue"`
	} `yaml:"schedule" json:"schedule" jsonschema:"description=Scheduler configuration"`

	Fetch struct {
		Timeout   time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=10s,description=Page fetch timeout per crawl"`
		UserAgent string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=Mozilla/5.0 (compatible; Pagewatch/1.0),description=User agent for page fetches"`
	} `yaml:"fetch" json:"fetch" jsonschema:"description=Page fetch configuration"`

	Notify NotifyConfig `yaml:"notify" json:"notify" jsonschema:"description=Notification channel configuration"`

	Limits struct {
		MaxValueLen  int `yaml:"max_value_len" json:"max_value_len" jsonschema:"default=1000,description=Stored crawl value length cap"`
		MaxErrorLen  int `yaml:"max_error_len" json:"max_error_len" jsonschema:"default=500,description=Stored error message length cap"`
		MaxDetailLen int `yaml:"max_detail_len" json:"max_detail_len" jsonschema:"default=200,description=Event detail length cap"`
	} `yaml:"limits" json:"limits" jsonschema:"description=Storage truncation limits"`
}

// EmailConfig holds SMTP settings for the email channel
type EmailConfig struct {
	Enabled  bool          `yaml:"enabled" json:"enabled" jsonschema:"default=false,description=Enable email notifications"`
	Host     string        `yaml:"host" json:"host" jsonschema:"description=SMTP host"`
	Port     int           `yaml:"port" json:"port" jsonschema:"default=587,description=SMTP port"`
	Username string        `yaml:"username" json:"username" jsonschema:"description=SMTP username"`
	Password string        `yaml:"password" json:"password" jsonschema:"description=SMTP password (can use environment variable)"`
	From     string        `yaml:"from" json:"from" jsonschema:"description=From address"`
	TLS      bool          `yaml:"tls" json:"tls" jsonschema:"default=false,description=Use TLS connection"`
	StartTLS bool          `yaml:"starttls" json:"starttls" jsonschema:"default=true,description=Use STARTTLS"`
	Timeout  time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=10s,description=SMTP send timeout"`
}

// SlackConfig holds settings for the slack channel
type SlackConfig struct {
	Enabled bool   `yaml:"enabled" json:"enabled" jsonschema:"default=false,description=Enable slack notifications"`
	Token   string `yaml:"token" json:"token" jsonschema:"description=Slack bot token (can use environment variable)"`
}

// NotifyConfig groups the notification channels
type NotifyConfig struct {
	Email EmailConfig `yaml:"email" json:"email" jsonschema:"description=Email channel"`
	Slack SlackConfig `yaml:"slack" json:"slack" jsonschema:"description=Slack channel"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// set defaults for server
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}

	// set defaults for database
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:pagewatch.db?cache=shared&mode=rwc"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 3600
	}

	// set defaults for redis
	if cfg.Redis.QueueKey == "" {
		cfg.Redis.QueueKey = "pagewatch:tasks"
	}

	// set defaults for schedule
	if cfg.Schedule.Tick == 0 {
		cfg.Schedule.Tick = time.Minute
	}
	if cfg.Schedule.LockAtMost == 0 {
		cfg.Schedule.LockAtMost = 5 * time.Minute
	}
	if cfg.Schedule.LockAtLeast == 0 {
		cfg.Schedule.LockAtLeast = 30 * time.Second
	}
	if cfg.Schedule.Workers == 0 {
		cfg.Schedule.Workers = 4
	}

	// set defaults for fetch
	if cfg.Fetch.Timeout == 0 {
		cfg.Fetch.Timeout = 10 * time.Second
	}
	if cfg.Fetch.UserAgent == "" {
		cfg.Fetch.UserAgent = "Mozilla/5.0 (compatible; Pagewatch/1.0)"
	}

	// set defaults for notify
	if cfg.Notify.Email.Port == 0 {
		cfg.Notify.Email.Port = 587
	}
	if cfg.Notify.Email.Timeout == 0 {
		cfg.Notify.Email.Timeout = 10 * time.Second
	}

	// set defaults for limits
	if cfg.Limits.MaxValueLen == 0 {
		cfg.Limits.MaxValueLen = 1000
	}
	if cfg.Limits.MaxErrorLen == 0 {
		cfg.Limits.MaxErrorLen = 500
	}
	if cfg.Limits.MaxDetailLen == 0 {
		cfg.Limits.MaxDetailLen = 200
	}

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	if cfg.Schedule.Tick < time.Second {
		return fmt.Errorf("schedule tick must be at least 1 second")
	}
	if cfg.Schedule.LockAtLeast > cfg.Schedule.LockAtMost {
		return fmt.Errorf("schedule lock_at_least must not exceed lock_at_most")
	}
	if cfg.Schedule.Workers < 1 {
		return fmt.Errorf("schedule workers must be at least 1")
	}

	if cfg.Fetch.Timeout < time.Second {
		return fmt.Errorf("fetch timeout must be at least 1 second")
	}

	if cfg.Notify.Email.Enabled {
		if cfg.Notify.Email.Host == "" {
			return fmt.Errorf("notify.email.host is required when email is enabled")
		}
		if cfg.Notify.Email.From == "" {
			return fmt.Errorf("notify.email.from is required when email is enabled")
		}
	}
	if cfg.Notify.Slack.Enabled && cfg.Notify.Slack.Token == "" {
		return fmt.Errorf("notify.slack.token is required when slack is enabled")
	}

	return nil
}
