package config

import (
	"fmt"
	"time"
)

// ObservabilityConfig groups configuration related to telemetry and
// runtime visibility: logging, New Relic APM, and health checks.
//
// LoadConfig starts from DefaultObservabilityConfig and overrides only the
// fields present in the environment.
type ObservabilityConfig struct {
	// ServiceName identifies this service in logs and traces. It is forced
	// to "lightbnb" by LoadConfig.
	ServiceName string `koanf:"service_name"`

	// Environment labels telemetry by environment. It is copied from
	// Primary.Env by LoadConfig.
	Environment string `koanf:"environment"`

	Logging      LoggingConfig      `koanf:"logging" validate:"required"`
	NewRelic     NewRelicConfig     `koanf:"new_relic"`
	HealthChecks HealthChecksConfig `koanf:"health_checks"`
}

// LoggingConfig holds application logging configuration.
type LoggingConfig struct {
	// Level is the verbosity threshold (debug/info/warn/error). Empty
	// means the environment default, see GetLogLevel.
	Level string `koanf:"level"`

	// Format selects the output format: "json" or "console".
	Format string `koanf:"format"`

	// SlowQueryThreshold is a duration beyond which statements are logged
	// at warn level. Env values must be duration strings like "100ms";
	// zero disables slow query logging.
	SlowQueryThreshold time.Duration `koanf:"slow_query_threshold"`
}

// NewRelicConfig holds configuration for New Relic APM and tracing.
//
// An empty LicenseKey means New Relic is not configured and no agent is
// started.
type NewRelicConfig struct {
	LicenseKey                string `koanf:"license_key"`
	AppLogForwardingEnabled   bool   `koanf:"app_log_forwarding_enabled"`
	DistributedTracingEnabled bool   `koanf:"distributed_tracing_enabled"`

	// DebugLogging enables agent debug output. Usually off in production so
	// agent logs do not mix with application logs.
	DebugLogging bool `koanf:"debug_logging"`
}

// HealthChecksConfig controls the dependency checks behind /status.
type HealthChecksConfig struct {
	Enabled bool `koanf:"enabled"`

	// Timeout is the max time a single check may take.
	Timeout time.Duration `koanf:"timeout"`

	// Checks is the list of check names to run. Only "database" is known.
	Checks []string `koanf:"checks"`
}

// DefaultObservabilityConfig provides the defaults that loaded
// LIGHTBNB_OBSERVABILITY__* values are merged over.
func DefaultObservabilityConfig() *ObservabilityConfig {
	return &ObservabilityConfig{
		ServiceName: "lightbnb",
		Environment: "development",
		Logging: LoggingConfig{
			Level:              "info",
			Format:             "json",
			SlowQueryThreshold: 100 * time.Millisecond,
		},
		NewRelic: NewRelicConfig{
			AppLogForwardingEnabled:   true,
			DistributedTracingEnabled: true,
			DebugLogging:              false,
		},
		HealthChecks: HealthChecksConfig{
			Enabled: true,
			Timeout: 5 * time.Second,
			Checks:  []string{"database"},
		},
	}
}

// Validate applies rules that go beyond struct tags.
func (c *ObservabilityConfig) Validate() error {
	if c.ServiceName == "" {
		return fmt.Errorf("service_name is required")
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if c.Logging.Level != "" && !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s (must be one of: debug, info, warn, error)", c.Logging.Level)
	}

	switch c.Logging.Format {
	case "", "json", "console":
	default:
		return fmt.Errorf("invalid logging format: %s (must be json or console)", c.Logging.Format)
	}

	if c.Logging.SlowQueryThreshold < 0 {
		return fmt.Errorf("logging slow_query_threshold must be non-negative")
	}

	if c.HealthChecks.Timeout < 0 {
		return fmt.Errorf("health_checks timeout must be non-negative")
	}

	return nil
}

// GetLogLevel returns the effective log level. An empty level means
// "info" in production and "debug" in every other environment.
func (c *ObservabilityConfig) GetLogLevel() string {
	if c.Logging.Level != "" {
		return c.Logging.Level
	}
	if c.IsProduction() {
		return "info"
	}
	return "debug"
}

// IsProduction reports whether the application is running in production mode.
func (c *ObservabilityConfig) IsProduction() bool {
	return c.Environment == "production"
}

// HealthCheckTimeout returns the per-check timeout, defaulting to 5s.
func (c *ObservabilityConfig) HealthCheckTimeout() time.Duration {
	if c.HealthChecks.Timeout <= 0 {
		return 5 * time.Second
	}
	return c.HealthChecks.Timeout
}
