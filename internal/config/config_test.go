package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func emptyConfigFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func loadClean(t *testing.T, configFile string) *Config {
	t.Helper()
	Reset()
	t.Cleanup(Reset)
	cfg, err := Load(configFile)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return cfg
}

func TestLoadDefaultsWithoutAPIKey(t *testing.T) {
	for _, key := range []string{"GEMINI_API_KEY", "GOOGLE_GEMINI_API_KEY", "GOOGLE_AI_API_KEY"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg := loadClean(t, emptyConfigFile(t))

	if cfg.AI.Gemini.APIKey != "" {
		t.Errorf("expected empty API key, got %q", cfg.AI.Gemini.APIKey)
	}
	if cfg.Generation.MaxAttempts != 5 {
		t.Errorf("expected default max attempts 5, got %d", cfg.Generation.MaxAttempts)
	}
	if cfg.Generation.PollInterval != "10s" {
		t.Errorf("expected default poll interval 10s, got %q", cfg.Generation.PollInterval)
	}
	if cfg.Server.Port != 8787 {
		t.Errorf("expected default port 8787, got %d", cfg.Server.Port)
	}
	if cfg.Insights.MinTracked != 3 {
		t.Errorf("expected default min tracked 3, got %d", cfg.Insights.MinTracked)
	}
}

func TestLoadBindsGeminiEnvKey(t *testing.T) {
	t.Setenv("GOOGLE_GEMINI_API_KEY", "test-key-123")

	cfg := loadClean(t, emptyConfigFile(t))

	if cfg.AI.Gemini.APIKey != "test-key-123" {
		t.Errorf("expected bound API key, got %q", cfg.AI.Gemini.APIKey)
	}
}

func TestLoadRejectsInvalidDuration(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "generation:\n  poll_interval: soon\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	Reset()
	t.Cleanup(Reset)
	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid duration")
	}
}

func TestHasGeminiAPIKeyRejectsPlaceholders(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "YOUR_API_KEY")

	loadClean(t, emptyConfigFile(t))

	if HasGeminiAPIKey() {
		t.Error("expected placeholder key to be rejected")
	}
}

func TestParseDuration(t *testing.T) {
	if d := ParseDuration("30s", time.Minute); d != 30*time.Second {
		t.Errorf("ParseDuration(30s) = %v", d)
	}
	if d := ParseDuration("", time.Minute); d != time.Minute {
		t.Errorf("ParseDuration(empty) = %v, want fallback", d)
	}
	if d := ParseDuration("nope", time.Minute); d != time.Minute {
		t.Errorf("ParseDuration(invalid) = %v, want fallback", d)
	}
}
