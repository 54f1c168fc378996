package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pagewatch.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, "server:\n  listen: \":9090\"\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Listen)
	assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
	assert.Equal(t, "file:pagewatch.db?cache=shared&mode=rwc", cfg.Database.DSN)
	assert.Equal(t, 10, cfg.Database.MaxOpenConns)
	assert.Equal(t, "pagewatch:tasks", cfg.Redis.QueueKey)
	assert.Equal(t, time.Minute, cfg.Schedule.Tick)
	assert.Equal(t, 5*time.Minute, cfg.Schedule.LockAtMost)
	assert.Equal(t, 30*time.Second, cfg.Schedule.LockAtLeast)
	assert.Equal(t, 4, cfg.Schedule.Workers)
	assert.Equal(t, 10*time.Second, cfg.Fetch.Timeout)
	assert.Equal(t, 1000, cfg.Limits.MaxValueLen)
	assert.Equal(t, 500, cfg.Limits.MaxErrorLen)
	assert.Equal(t, 200, cfg.Limits.MaxDetailLen)
	assert.False(t, cfg.Notify.Email.Enabled)
	assert.False(t, cfg.Notify.Slack.Enabled)
}

func TestLoad_FullConfig(t *testing.T) {
	path := writeConfig(t, `
server:
  listen: ":8085"
  timeout: 15s
database:
  dsn: "file:test.db?mode=rwc"
redis:
  addr: "localhost:6379"
  queue_key: "custom:tasks"
schedule:
  tick: 30s
  workers: 8
  direct: true
fetch:
  timeout: 5s
  user_agent: "custom-agent/1.0"
notify:
  email:
    enabled: true
    host: smtp.example.com
    port: 465
    from: alerts@example.com
    tls: true
  slack:
    enabled: true
    token: xoxb-test
limits:
  max_value_len: 2000
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":8085", cfg.Server.Listen)
	assert.Equal(t, 15*time.Second, cfg.Server.Timeout)
	assert.Equal(t, "file:test.db?mode=rwc", cfg.Database.DSN)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, "custom:tasks", cfg.Redis.QueueKey)
	assert.Equal(t, 30*time.Second, cfg.Schedule.Tick)
	assert.Equal(t, 8, cfg.Schedule.Workers)
	assert.True(t, cfg.Schedule.Direct)
	assert.Equal(t, 5*time.Second, cfg.Fetch.Timeout)
	assert.Equal(t, "custom-agent/1.0", cfg.Fetch.UserAgent)
	assert.True(t, cfg.Notify.Email.Enabled)
	assert.Equal(t, 465, cfg.Notify.Email.Port)
	assert.True(t, cfg.Notify.Email.TLS)
	assert.Equal(t, "xoxb-test", cfg.Notify.Slack.Token)
	assert.Equal(t, 2000, cfg.Limits.MaxValueLen)
}

func TestLoad_EnvExpansion(t *testing.T) {
	t.Setenv("TEST_SLACK_TOKEN", "xoxb-secret")

	path := writeConfig(t, `
notify:
  slack:
    enabled: true
    token: ${TEST_SLACK_TOKEN}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "xoxb-secret", cfg.Notify.Slack.Token)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/no/such/file.yml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config file")
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "server: [not a map")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{
			name:    "email enabled without host",
			content: "notify:\n  email:\n    enabled: true\n    from: a@b.c\n",
			errMsg:  "notify.email.host is required",
		},
		{
			name:    "email enabled without from",
			content: "notify:\n  email:\n    enabled: true\n    host: smtp.example.com\n",
			errMsg:  "notify.email.from is required",
		},
		{
			name:    "slack enabled without token",
			content: "notify:\n  slack:\n    enabled: true\n",
			errMsg:  "notify.slack.token is required",
		},
		{
			name:    "lock bounds inverted",
			content: "schedule:\n  lock_at_most: 10s\n  lock_at_least: 1m\n",
			errMsg:  "lock_at_least must not exceed",
		},
		{
			name:    "workers negative",
			content: "schedule:\n  workers: -1\n",
			errMsg:  "workers must be at least 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			_, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
