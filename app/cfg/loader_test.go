package cfg

import (
	"os"
	"testing"
)

func TestGetVersion(t *testing.T) {
	if GetVersion() == "" {
		t.Error("GetVersion should never return empty string")
	}
}

func TestLoadDefaults(t *testing.T) {
	// Clear os.Args to prevent config parsing from failing on test flags
	oldArgs := os.Args
	os.Args = []string{"test"}
	defer func() { os.Args = oldArgs }()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if cfg == nil {
		t.Fatal("Expected a configuration, got nil")
	}

	if os.Getenv("USER_AGENT") == "" && cfg.UserAgent != "Mozilla/5.0 (RSS generator; GitHub Pages)" {
		t.Errorf("Unexpected default user agent: %s", cfg.UserAgent)
	}
	if os.Getenv("TIMEOUT") == "" && cfg.Timeout != 30 {
		t.Errorf("Expected default timeout 30, got %d", cfg.Timeout)
	}
	if os.Getenv("OUTPUT_DIR") == "" && cfg.OutputDir != "." {
		t.Errorf("Expected default output dir '.', got '%s'", cfg.OutputDir)
	}
	if os.Getenv("PORT") == "" && cfg.Port != "8080" {
		t.Errorf("Expected default port '8080', got '%s'", cfg.Port)
	}

	if Get() != cfg {
		t.Error("Get should return the loaded configuration")
	}
}

func TestConfigFields(t *testing.T) {
	cfg := &Cfg{
		SourcesFile:     "./sources.yml",
		OutputDir:       "/var/feeds",
		Serve:           true,
		Port:            "8080",
		RefreshInterval: 900,
		WorkerCount:     2,
		UserAgent:       "Test Agent",
		Timeout:         30,
		Debug:           true,
		Version:         "test-version",
	}

	if cfg.SourcesFile != "./sources.yml" {
		t.Errorf("Expected sources file './sources.yml', got '%s'", cfg.SourcesFile)
	}
	if cfg.OutputDir != "/var/feeds" {
		t.Errorf("Expected output dir '/var/feeds', got '%s'", cfg.OutputDir)
	}
	if !cfg.Serve {
		t.Error("Expected serve mode to be enabled")
	}
	if cfg.RefreshInterval != 900 {
		t.Errorf("Expected refresh interval 900, got %d", cfg.RefreshInterval)
	}
	if cfg.WorkerCount != 2 {
		t.Errorf("Expected worker count 2, got %d", cfg.WorkerCount)
	}
	if cfg.UserAgent != "Test Agent" {
		t.Errorf("Expected user agent 'Test Agent', got '%s'", cfg.UserAgent)
	}
	if cfg.Timeout != 30 {
		t.Errorf("Expected timeout 30, got %d", cfg.Timeout)
	}
	if !cfg.Debug {
		t.Error("Expected debug to be enabled")
	}
	if cfg.Version != "test-version" {
		t.Errorf("Expected version 'test-version', got '%s'", cfg.Version)
	}
}
