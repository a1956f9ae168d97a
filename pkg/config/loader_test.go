package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "backoffice.yaml"), []byte(content), 0o600))
	return dir
}

func TestInitialize_MinimalConfig(t *testing.T) {
	dir := writeConfig(t, `
hubsoft:
  base_url: https://api.hubsoft.example
  username: backoffice
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, "https://api.hubsoft.example", cfg.HubSoft.BaseURL)
	assert.Equal(t, "backoffice", cfg.HubSoft.Username)

	// Unset sections fall back to built-in defaults.
	assert.Equal(t, 30, cfg.HubSoft.MaxRequestsPerMinute)
	assert.Equal(t, 30*time.Second, cfg.HubSoft.RequestTimeout)
	assert.Equal(t, 1000, cfg.Cache.MaxSize)
	assert.Equal(t, 10, cfg.Events.MaxConcurrentHandlers)
	assert.Equal(t, 3, cfg.Verification.MaxAttempts)
	assert.Equal(t, 5, cfg.Verification.DailyAttemptCap)
	assert.Equal(t, 30*time.Minute, cfg.Conversation.IdleTimeout)
	assert.Equal(t, 1, cfg.Scheduler.WorkerCount)
	assert.Equal(t, 5, cfg.Scheduler.BreakerThreshold)
	assert.Equal(t, 30, cfg.Retention.RecordRetentionDays)
	assert.False(t, cfg.Slack.Enabled)
}

func TestInitialize_UserValuesOverrideDefaults(t *testing.T) {
	dir := writeConfig(t, `
hubsoft:
  base_url: https://api.hubsoft.example
  max_requests_per_minute: 10
scheduler:
  worker_count: 4
  breaker_threshold: 3
verification:
  daily_attempt_cap: 8
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.HubSoft.MaxRequestsPerMinute)
	assert.Equal(t, 4, cfg.Scheduler.WorkerCount)
	assert.Equal(t, 3, cfg.Scheduler.BreakerThreshold)
	assert.Equal(t, 8, cfg.Verification.DailyAttemptCap)

	// Untouched fields in the same sections keep their defaults.
	assert.Equal(t, 5, cfg.HubSoft.BurstLimit)
	assert.Equal(t, time.Second, cfg.Scheduler.PollInterval)
}

func TestInitialize_EnvExpansion(t *testing.T) {
	t.Setenv("TEST_HUBSOFT_URL", "https://expanded.example")

	dir := writeConfig(t, `
hubsoft:
  base_url: "{{.TEST_HUBSOFT_URL}}"
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, "https://expanded.example", cfg.HubSoft.BaseURL)
}

func TestInitialize_MissingFile(t *testing.T) {
	_, err := Initialize(context.Background(), t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestInitialize_InvalidYAML(t *testing.T) {
	dir := writeConfig(t, "hubsoft: [not: a: mapping")
	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidYAML)
}

func TestExpandEnv_PreservesLiteralDollar(t *testing.T) {
	in := []byte(`pattern: "^\\d{3}\\.\\d{3}$"`)
	assert.Equal(t, in, ExpandEnv(in))
}
