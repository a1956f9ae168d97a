package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// BackofficeYAMLConfig represents the complete backoffice.yaml file structure.
type BackofficeYAMLConfig struct {
	HubSoft      *HubSoftConfig      `yaml:"hubsoft"`
	Cache        *CacheConfig        `yaml:"cache"`
	Events       *EventsConfig       `yaml:"events"`
	Verification *VerificationConfig `yaml:"verification"`
	Conversation *ConversationConfig `yaml:"conversation"`
	Scheduler    *SchedulerConfig    `yaml:"scheduler"`
	Retention    *RetentionConfig    `yaml:"retention"`
	Slack        *SlackConfig        `yaml:"slack"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load backoffice.yaml from configDir
//  2. Expand environment variables
//  3. Merge user values over built-in defaults
//  4. Validate all configuration
//  5. Return Config ready for use
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	log.Info("Configuration initialized successfully",
		"hubsoft_url", cfg.HubSoft.BaseURL,
		"workers", cfg.Scheduler.WorkerCount,
		"max_rpm", cfg.HubSoft.MaxRequestsPerMinute,
		"slack_enabled", cfg.Slack.Enabled)

	return cfg, nil
}

// load is the internal loader (not exported)
func load(_ context.Context, configDir string) (*Config, error) {
	raw, err := loadBackofficeYAML(configDir)
	if err != nil {
		return nil, NewLoadError("backoffice.yaml", err)
	}

	cfg := &Config{
		configDir:    configDir,
		HubSoft:      DefaultHubSoftConfig(),
		Cache:        DefaultCacheConfig(),
		Events:       DefaultEventsConfig(),
		Verification: DefaultVerificationConfig(),
		Conversation: DefaultConversationConfig(),
		Scheduler:    DefaultSchedulerConfig(),
		Retention:    DefaultRetentionConfig(),
		Slack:        DefaultSlackConfig(),
	}

	// Merge user-provided sections into the defaults (non-zero values
	// override, unset values keep the default).
	sections := []struct {
		name string
		dst  any
		src  any
	}{
		{"hubsoft", cfg.HubSoft, raw.HubSoft},
		{"cache", cfg.Cache, raw.Cache},
		{"events", cfg.Events, raw.Events},
		{"verification", cfg.Verification, raw.Verification},
		{"conversation", cfg.Conversation, raw.Conversation},
		{"scheduler", cfg.Scheduler, raw.Scheduler},
		{"retention", cfg.Retention, raw.Retention},
		{"slack", cfg.Slack, raw.Slack},
	}
	for _, s := range sections {
		if s.src == nil || isNilPointer(s.src) {
			continue
		}
		if err := mergo.Merge(s.dst, s.src, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge %s config: %w", s.name, err)
		}
	}

	return cfg, nil
}

func isNilPointer(v any) bool {
	switch p := v.(type) {
	case *HubSoftConfig:
		return p == nil
	case *CacheConfig:
		return p == nil
	case *EventsConfig:
		return p == nil
	case *VerificationConfig:
		return p == nil
	case *ConversationConfig:
		return p == nil
	case *SchedulerConfig:
		return p == nil
	case *RetentionConfig:
		return p == nil
	case *SlackConfig:
		return p == nil
	}
	return false
}

// validate performs comprehensive validation on loaded configuration
func validate(cfg *Config) error {
	validator := NewValidator(cfg)
	return validator.ValidateAll()
}

func loadBackofficeYAML(configDir string) (*BackofficeYAMLConfig, error) {
	var config BackofficeYAMLConfig

	path := filepath.Join(configDir, "backoffice.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, err
	}

	// Expand environment variables using {{.VAR}} template syntax.
	data = ExpandEnv(data)

	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return &config, nil
}
