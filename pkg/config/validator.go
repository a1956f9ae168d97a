package config

import (
	"fmt"
)

// Validator performs validation on a loaded Config.
type Validator struct {
	cfg *Config
}

// NewValidator creates a validator for the given config.
func NewValidator(cfg *Config) *Validator {
	return &Validator{cfg: cfg}
}

// ValidateAll validates every configuration section and returns the first
// error found.
func (v *Validator) ValidateAll() error {
	checks := []func() error{
		v.validateHubSoft,
		v.validateCache,
		v.validateEvents,
		v.validateVerification,
		v.validateConversation,
		v.validateScheduler,
		v.validateRetention,
		v.validateSlack,
	}
	for _, check := range checks {
		if err := check(); err != nil {
			return fmt.Errorf("%w: %w", ErrValidationFailed, err)
		}
	}
	return nil
}

func (v *Validator) validateHubSoft() error {
	h := v.cfg.HubSoft
	if h.BaseURL == "" {
		return NewValidationError("hubsoft", "base_url", ErrMissingRequiredField)
	}
	if h.RequestTimeout <= 0 {
		return NewValidationError("hubsoft", "request_timeout", ErrInvalidValue)
	}
	if h.MaxRequestsPerMinute <= 0 {
		return NewValidationError("hubsoft", "max_requests_per_minute", ErrInvalidValue)
	}
	if h.BurstLimit <= 0 {
		return NewValidationError("hubsoft", "burst_limit", ErrInvalidValue)
	}
	return nil
}

func (v *Validator) validateCache() error {
	c := v.cfg.Cache
	if c.DefaultTTL <= 0 {
		return NewValidationError("cache", "default_ttl", ErrInvalidValue)
	}
	if c.MaxSize <= 0 {
		return NewValidationError("cache", "max_size", ErrInvalidValue)
	}
	return nil
}

func (v *Validator) validateEvents() error {
	e := v.cfg.Events
	if e.MaxConcurrentHandlers <= 0 {
		return NewValidationError("events", "max_concurrent_handlers", ErrInvalidValue)
	}
	if e.HandlerTimeout <= 0 {
		return NewValidationError("events", "handler_timeout", ErrInvalidValue)
	}
	return nil
}

func (v *Validator) validateVerification() error {
	ver := v.cfg.Verification
	if ver.ExpiryHours <= 0 {
		return NewValidationError("verification", "expiry_hours", ErrInvalidValue)
	}
	if ver.MaxAttempts <= 0 {
		return NewValidationError("verification", "max_attempts", ErrInvalidValue)
	}
	if ver.DailyAttemptCap < ver.MaxAttempts {
		return NewValidationError("verification", "daily_attempt_cap",
			fmt.Errorf("%w: must be >= max_attempts", ErrInvalidValue))
	}
	return nil
}

func (v *Validator) validateConversation() error {
	c := v.cfg.Conversation
	if c.IdleTimeout <= 0 {
		return NewValidationError("conversation", "idle_timeout", ErrInvalidValue)
	}
	if c.MaxAttachments <= 0 {
		return NewValidationError("conversation", "max_attachments", ErrInvalidValue)
	}
	return nil
}

func (v *Validator) validateScheduler() error {
	s := v.cfg.Scheduler
	if s.WorkerCount <= 0 {
		return NewValidationError("scheduler", "worker_count", ErrInvalidValue)
	}
	if s.PollInterval <= 0 {
		return NewValidationError("scheduler", "poll_interval", ErrInvalidValue)
	}
	if s.HeartbeatInterval <= 0 {
		return NewValidationError("scheduler", "heartbeat_interval", ErrInvalidValue)
	}
	if s.OrphanThreshold <= s.HeartbeatInterval {
		return NewValidationError("scheduler", "orphan_threshold",
			fmt.Errorf("%w: must exceed heartbeat_interval", ErrInvalidValue))
	}
	if s.BreakerThreshold <= 0 {
		return NewValidationError("scheduler", "breaker_threshold", ErrInvalidValue)
	}
	if s.BreakerProbeInterval <= 0 {
		return NewValidationError("scheduler", "breaker_probe_interval", ErrInvalidValue)
	}
	return nil
}

func (v *Validator) validateRetention() error {
	r := v.cfg.Retention
	if r.RecordRetentionDays <= 0 {
		return NewValidationError("retention", "record_retention_days", ErrInvalidValue)
	}
	if r.CleanupInterval <= 0 {
		return NewValidationError("retention", "cleanup_interval", ErrInvalidValue)
	}
	return nil
}

func (v *Validator) validateSlack() error {
	s := v.cfg.Slack
	if !s.Enabled {
		return nil
	}
	if s.TokenEnv == "" {
		return NewValidationError("slack", "token_env", ErrMissingRequiredField)
	}
	if s.Channel == "" {
		return NewValidationError("slack", "channel", ErrMissingRequiredField)
	}
	return nil
}
