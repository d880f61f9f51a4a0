package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEnvOnly(t *testing.T) {
	t.Setenv("IFTTT_KEY", "test-service-key")
	t.Setenv("PORT", "9090")
	t.Setenv("GRAPH_RPS", "2.5")
	t.Setenv("AUDIT_LOG", "true")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.ServiceKey != "test-service-key" {
		t.Errorf("ServiceKey = %q", cfg.ServiceKey)
	}
	if cfg.ListenAddr != ":9090" {
		t.Errorf("ListenAddr = %q, want :9090", cfg.ListenAddr)
	}
	if cfg.GraphRPS != 2.5 {
		t.Errorf("GraphRPS = %v, want 2.5", cfg.GraphRPS)
	}
	if !cfg.AuditLog {
		t.Error("AuditLog = false, want true")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("IFTTT_KEY", "k")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.ListenAddr != ":8080" {
		t.Errorf("ListenAddr = %q, want :8080", cfg.ListenAddr)
	}
	if cfg.LogLevel != "INFO" {
		t.Errorf("LogLevel = %q, want INFO", cfg.LogLevel)
	}
	if cfg.GraphRPS != 4 {
		t.Errorf("GraphRPS = %v, want 4", cfg.GraphRPS)
	}
}

func TestLoadMissingServiceKey(t *testing.T) {
	t.Setenv("IFTTT_KEY", "")

	if _, err := Load(""); err == nil {
		t.Fatal("Load() without IFTTT_KEY expected error, got nil")
	}
}

func TestLoadYAMLWithEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	content := []byte("service_key: from-file\ntenant_id: tenant-a\nlog_level: DEBUG\n")
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("IFTTT_KEY", "from-env")
	t.Setenv("TENANT_ID", "")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.ServiceKey != "from-env" {
		t.Errorf("ServiceKey = %q, env should override file", cfg.ServiceKey)
	}
	if cfg.TenantID != "tenant-a" {
		t.Errorf("TenantID = %q, want value from file", cfg.TenantID)
	}
	if cfg.LogLevel != "DEBUG" {
		t.Errorf("LogLevel = %q, want DEBUG", cfg.LogLevel)
	}
}

func TestSetupConfigured(t *testing.T) {
	cfg := &Config{
		TenantID:     "t",
		ClientID:     "c",
		ClientSecret: "s",
		TestUser:     "u",
		TestPassword: "p",
	}
	if !cfg.SetupConfigured() {
		t.Error("SetupConfigured() = false with all credentials present")
	}

	cfg.TestPassword = ""
	if cfg.SetupConfigured() {
		t.Error("SetupConfigured() = true with missing password")
	}
}
