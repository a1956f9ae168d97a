package config

import "time"

// DefaultHubSoftConfig returns the built-in upstream client defaults.
func DefaultHubSoftConfig() *HubSoftConfig {
	return &HubSoftConfig{
		PasswordEnv:          "HUBSOFT_PASSWORD",
		RequestTimeout:       30 * time.Second,
		MaxRequestsPerMinute: 30,
		BurstLimit:           5,
	}
}

// DefaultCacheConfig returns the built-in cache defaults.
func DefaultCacheConfig() *CacheConfig {
	return &CacheConfig{
		DefaultTTL:      5 * time.Minute,
		MaxSize:         1000,
		CleanupInterval: time.Minute,
	}
}

// DefaultEventsConfig returns the built-in event bus defaults.
func DefaultEventsConfig() *EventsConfig {
	return &EventsConfig{
		MaxConcurrentHandlers: 10,
		HandlerTimeout:        30 * time.Second,
	}
}

// DefaultVerificationConfig returns the built-in verification defaults.
func DefaultVerificationConfig() *VerificationConfig {
	return &VerificationConfig{
		ExpiryHours:     24,
		MaxAttempts:     3,
		DailyAttemptCap: 5,
	}
}

// DefaultConversationConfig returns the built-in conversation defaults.
func DefaultConversationConfig() *ConversationConfig {
	return &ConversationConfig{
		IdleTimeout:    30 * time.Minute,
		MaxAttachments: 3,
	}
}

// DefaultSchedulerConfig returns the built-in scheduler defaults.
func DefaultSchedulerConfig() *SchedulerConfig {
	return &SchedulerConfig{
		WorkerCount:             1,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		HeartbeatInterval:       30 * time.Second,
		OrphanDetectionInterval: 5 * time.Minute,
		OrphanThreshold:         5 * time.Minute,
		GracefulShutdownTimeout: 2 * time.Minute,
		BreakerThreshold:        5,
		BreakerProbeInterval:    5 * time.Second,
	}
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		RecordRetentionDays: 30,
		CleanupInterval:     time.Hour,
	}
}

// DefaultSlackConfig returns the built-in Slack defaults (disabled).
func DefaultSlackConfig() *SlackConfig {
	return &SlackConfig{
		Enabled:  false,
		TokenEnv: "SLACK_TOKEN",
	}
}
