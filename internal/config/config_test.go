package config

import (
	"os"
	"strings"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("PORT")
	os.Unsetenv("DATA_PATH")
	os.Unsetenv("SESSION_TTL_HOURS")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "8090" {
		t.Errorf("expected default port 8090, got %s", cfg.Port)
	}
	if cfg.DataPath != "./radreport.db" {
		t.Errorf("expected default data path, got %s", cfg.DataPath)
	}
	if cfg.SessionTTLHours != 12 {
		t.Errorf("expected default ttl 12, got %d", cfg.SessionTTLHours)
	}
	if !cfg.SeedData {
		t.Error("expected SEED_DATA to default to true")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	os.Setenv("DATA_PATH", "/tmp/reports.db")
	os.Setenv("PORT", "9999")
	defer os.Unsetenv("DATA_PATH")
	defer os.Unsetenv("PORT")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DataPath != "/tmp/reports.db" {
		t.Errorf("expected DATA_PATH override, got %s", cfg.DataPath)
	}
	if cfg.Port != "9999" {
		t.Errorf("expected PORT override, got %s", cfg.Port)
	}
}

func TestConfig_IsDev(t *testing.T) {
	c := &Config{Env: "development"}
	if !c.IsDev() {
		t.Error("expected IsDev() to return true for development")
	}

	c.Env = "production"
	if c.IsDev() {
		t.Error("expected IsDev() to return false for production")
	}
}

func TestValidate_ProductionRequiresSigningKey(t *testing.T) {
	c := &Config{Env: "production", SessionTTLHours: 12}
	if err := c.Validate(); err == nil {
		t.Fatal("expected error when SESSION_SIGNING_KEY is missing in production")
	}
}

func TestValidate_SigningKeyMustBeHex(t *testing.T) {
	c := &Config{Env: "development", SessionTTLHours: 12, SessionSigningKey: "not-hex"}
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for non-hex signing key")
	}
}

func TestValidate_SigningKeyLength(t *testing.T) {
	c := &Config{Env: "development", SessionTTLHours: 12, SessionSigningKey: "abcd"}
	err := c.Validate()
	if err == nil {
		t.Fatal("expected error for short signing key")
	}
	if !strings.Contains(err.Error(), "32 bytes") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestValidate_OK(t *testing.T) {
	key := strings.Repeat("ab", 32)
	c := &Config{Env: "production", SessionTTLHours: 12, SessionSigningKey: key}
	if err := c.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_TTLPositive(t *testing.T) {
	c := &Config{Env: "development", SessionTTLHours: 0}
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for non-positive ttl")
	}
}
