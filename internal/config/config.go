// Package config holds the service configuration. The struct is built once
// at process start from an optional YAML file plus environment variables and
// is passed by reference to whatever needs it; nothing reads the environment
// after startup.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config is the full service configuration.
type Config struct {
	// ServiceKey is the shared secret IFTTT sends in the
	// IFTTT-Service-Key header.
	ServiceKey string `yaml:"service_key"`

	// App registration used by the /test/setup password grant.
	TenantID     string `yaml:"tenant_id"`
	ClientID     string `yaml:"client_id"`
	ClientSecret string `yaml:"client_secret"`
	TestUser     string `yaml:"test_user"`
	TestPassword string `yaml:"test_password"`

	// ListenAddr is the address the HTTP server binds, e.g. ":8080".
	ListenAddr string `yaml:"listen_addr"`

	LogLevel string `yaml:"log_level"`
	Verbose  bool   `yaml:"verbose"`

	// GraphRPS throttles the per-member birthday fan-out; 0 disables.
	GraphRPS float64 `yaml:"graph_rps"`

	// AuditLog enables the CSV audit trail for action endpoints.
	AuditLog bool `yaml:"audit_log"`
}

// Load builds the configuration. path may be empty, in which case only the
// environment is consulted. Environment variables override file values.
func Load(path string) (*Config, error) {
	cfg := &Config{
		ListenAddr: ":8080",
		LogLevel:   "INFO",
		GraphRPS:   4,
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	setString := func(dst *string, envName string) {
		if value := os.Getenv(envName); value != "" {
			*dst = value
		}
	}

	setString(&cfg.ServiceKey, "IFTTT_KEY")
	setString(&cfg.TenantID, "TENANT_ID")
	setString(&cfg.ClientID, "CLIENT_ID")
	setString(&cfg.ClientSecret, "CLIENT_SECRET")
	setString(&cfg.TestUser, "TEST_USER")
	setString(&cfg.TestPassword, "TEST_PWD")
	setString(&cfg.LogLevel, "LOG_LEVEL")

	if port := os.Getenv("PORT"); port != "" {
		cfg.ListenAddr = ":" + port
	}
	if rps := os.Getenv("GRAPH_RPS"); rps != "" {
		if parsed, err := strconv.ParseFloat(rps, 64); err == nil {
			cfg.GraphRPS = parsed
		}
	}
	if audit := os.Getenv("AUDIT_LOG"); audit != "" {
		if parsed, err := strconv.ParseBool(audit); err == nil {
			cfg.AuditLog = parsed
		}
	}
}

// Validate checks the invariants required to serve at all. The test/setup
// credentials are validated lazily by that endpoint since every other route
// works without them.
func (c *Config) Validate() error {
	if c.ServiceKey == "" {
		return fmt.Errorf("service key is required (set IFTTT_KEY)")
	}
	if c.ListenAddr == "" {
		return fmt.Errorf("listen address cannot be empty")
	}
	return nil
}

// SetupConfigured reports whether the credentials needed by /test/setup are
// all present.
func (c *Config) SetupConfigured() bool {
	return c.TenantID != "" && c.ClientID != "" && c.ClientSecret != "" &&
		c.TestUser != "" && c.TestPassword != ""
}
