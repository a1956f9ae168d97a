// Package config loads and validates the backoffice YAML configuration.
package config

import "time"

// Config is the fully resolved runtime configuration.
type Config struct {
	configDir string

	HubSoft      *HubSoftConfig
	Cache        *CacheConfig
	Events       *EventsConfig
	Verification *VerificationConfig
	Conversation *ConversationConfig
	Scheduler    *SchedulerConfig
	Retention    *RetentionConfig
	Slack        *SlackConfig
}

// ConfigDir returns the directory the configuration was loaded from.
func (c *Config) ConfigDir() string {
	return c.configDir
}

// HubSoftConfig holds upstream ERP client settings.
type HubSoftConfig struct {
	// BaseURL is the upstream API root. Required.
	BaseURL string `yaml:"base_url"`

	// Username for the token endpoint. The password is read from the
	// environment variable named by PasswordEnv.
	Username    string `yaml:"username"`
	PasswordEnv string `yaml:"password_env"`

	// RequestTimeout bounds every upstream HTTP call.
	RequestTimeout time.Duration `yaml:"request_timeout"`

	// MaxRequestsPerMinute is the hard budget enforced by the sliding
	// window limiter in front of every dispatch.
	MaxRequestsPerMinute int `yaml:"max_requests_per_minute"`

	// BurstLimit is the client-side burst smoothing bucket size.
	BurstLimit int `yaml:"burst_limit"`
}

// CacheConfig holds TTL cache settings for upstream responses.
type CacheConfig struct {
	DefaultTTL      time.Duration `yaml:"default_ttl"`
	MaxSize         int           `yaml:"max_size"`
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// EventsConfig holds event bus settings.
type EventsConfig struct {
	// MaxConcurrentHandlers bounds the bus fan-out.
	MaxConcurrentHandlers int `yaml:"max_concurrent_handlers"`

	// HandlerTimeout is the per-handler deadline.
	HandlerTimeout time.Duration `yaml:"handler_timeout"`
}

// VerificationConfig holds CPF verification settings.
type VerificationConfig struct {
	// ExpiryHours is how long a verification request stays actionable.
	ExpiryHours int `yaml:"expiry_hours"`

	// MaxAttempts is the per-request attempt cap.
	MaxAttempts int `yaml:"max_attempts"`

	// DailyAttemptCap is the per-user attempt count allowed in any
	// rolling 24 h window, across requests.
	DailyAttemptCap int `yaml:"daily_attempt_cap"`
}

// ConversationConfig holds support-conversation settings.
type ConversationConfig struct {
	IdleTimeout    time.Duration `yaml:"idle_timeout"`
	MaxAttachments int           `yaml:"max_attachments"`
}

// SchedulerConfig contains worker pool and circuit breaker configuration.
type SchedulerConfig struct {
	// WorkerCount is the number of dispatch workers per replica/pod.
	WorkerCount int `yaml:"worker_count"`

	// PollInterval is the base interval for checking dispatchable requests.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter is the random jitter added to PollInterval.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// HeartbeatInterval is how often a worker refreshes the claim heartbeat.
	HeartbeatInterval time.Duration `yaml:"heartbeat_interval"`

	// OrphanDetectionInterval is how often to scan for orphaned requests.
	OrphanDetectionInterval time.Duration `yaml:"orphan_detection_interval"`

	// OrphanThreshold is how long an in-progress request can go without a
	// heartbeat before it is re-queued.
	OrphanThreshold time.Duration `yaml:"orphan_threshold"`

	// GracefulShutdownTimeout is the max wait for in-flight dispatches on
	// shutdown.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`

	// BreakerThreshold is the consecutive-failure count that opens the
	// circuit breaker.
	BreakerThreshold int `yaml:"breaker_threshold"`

	// BreakerProbeInterval is how often an open breaker probes upstream
	// health.
	BreakerProbeInterval time.Duration `yaml:"breaker_probe_interval"`
}

// RetentionConfig controls data retention and cleanup behavior.
type RetentionConfig struct {
	// RecordRetentionDays is how many days terminal records are kept.
	RecordRetentionDays int `yaml:"record_retention_days"`

	// CleanupInterval is how often the cleanup loop runs.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// SlackConfig holds the chat notification adapter settings.
type SlackConfig struct {
	Enabled  bool   `yaml:"enabled"`
	TokenEnv string `yaml:"token_env"`
	Channel  string `yaml:"channel"`
}
