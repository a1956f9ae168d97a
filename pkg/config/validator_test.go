package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	cfg := &Config{
		HubSoft:      DefaultHubSoftConfig(),
		Cache:        DefaultCacheConfig(),
		Events:       DefaultEventsConfig(),
		Verification: DefaultVerificationConfig(),
		Conversation: DefaultConversationConfig(),
		Scheduler:    DefaultSchedulerConfig(),
		Retention:    DefaultRetentionConfig(),
		Slack:        DefaultSlackConfig(),
	}
	cfg.HubSoft.BaseURL = "https://api.hubsoft.example"
	return cfg
}

func TestValidator_ValidConfig(t *testing.T) {
	require.NoError(t, NewValidator(validConfig()).ValidateAll())
}

func TestValidator_Rejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing base_url", func(c *Config) { c.HubSoft.BaseURL = "" }},
		{"zero rpm budget", func(c *Config) { c.HubSoft.MaxRequestsPerMinute = 0 }},
		{"zero burst", func(c *Config) { c.HubSoft.BurstLimit = 0 }},
		{"zero cache ttl", func(c *Config) { c.Cache.DefaultTTL = 0 }},
		{"zero handler fan-out", func(c *Config) { c.Events.MaxConcurrentHandlers = 0 }},
		{"daily cap below max attempts", func(c *Config) { c.Verification.DailyAttemptCap = 2 }},
		{"zero workers", func(c *Config) { c.Scheduler.WorkerCount = 0 }},
		{"orphan threshold not above heartbeat", func(c *Config) {
			c.Scheduler.OrphanThreshold = c.Scheduler.HeartbeatInterval
		}},
		{"zero breaker threshold", func(c *Config) { c.Scheduler.BreakerThreshold = 0 }},
		{"zero retention", func(c *Config) { c.Retention.RecordRetentionDays = 0 }},
		{"slack enabled without channel", func(c *Config) {
			c.Slack.Enabled = true
			c.Slack.Channel = ""
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(cfg)
			err := NewValidator(cfg).ValidateAll()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidationFailed)
		})
	}
}

func TestValidator_SlackDisabledSkipsChecks(t *testing.T) {
	cfg := validConfig()
	cfg.Slack.Enabled = false
	cfg.Slack.TokenEnv = ""
	cfg.Slack.Channel = ""
	require.NoError(t, NewValidator(cfg).ValidateAll())
}

func TestDefaults_AreInternallyConsistent(t *testing.T) {
	cfg := validConfig()
	assert.Greater(t, cfg.Scheduler.OrphanThreshold, cfg.Scheduler.HeartbeatInterval)
	assert.GreaterOrEqual(t, cfg.Verification.DailyAttemptCap, cfg.Verification.MaxAttempts)
	assert.Equal(t, 5*time.Minute, cfg.Cache.DefaultTTL)
}
