package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/downfa11-org/aostore/pkg/config"
)

func TestNormalizeDefaults(t *testing.T) {
	cfg := &config.Config{}
	cfg.Normalize()

	if cfg.DataDir != "aostore-data" {
		t.Errorf("DataDir default incorrect: %s", cfg.DataDir)
	}
	if cfg.MaxConcurrency != 128 {
		t.Errorf("MaxConcurrency default incorrect: %d", cfg.MaxConcurrency)
	}
	if cfg.MaxColumns != 1599 {
		t.Errorf("MaxColumns default incorrect: %d", cfg.MaxColumns)
	}
	if cfg.ExporterPort != 9100 {
		t.Errorf("ExporterPort default incorrect: %d", cfg.ExporterPort)
	}
}

func TestNormalizeRejectsBadLimits(t *testing.T) {
	cfg := &config.Config{MaxConcurrency: 1, MaxColumns: -4}
	cfg.Normalize()

	if cfg.MaxConcurrency != 128 {
		t.Errorf("MaxConcurrency normalization failed: %d", cfg.MaxConcurrency)
	}
	if cfg.MaxColumns != 1599 {
		t.Errorf("MaxColumns normalization failed: %d", cfg.MaxColumns)
	}
}

func TestLimitsBridge(t *testing.T) {
	cfg := &config.Config{MaxConcurrency: 16, MaxColumns: 7}
	lim := cfg.Limits()

	if lim.MaxConcurrency != 16 || lim.MaxColumns != 7 {
		t.Errorf("Limits() = %+v", lim)
	}
	if lim.Multiplier() != 16 {
		t.Errorf("Multiplier() = %d", lim.Multiplier())
	}
}

func TestLoadConfigYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "aostore.yaml")

	data := []byte("data_dir: /var/lib/aostore\nmax_concurrency: 64\nmax_columns: 99\nlog_level: debug\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := config.LoadConfig([]string{"-config", path})
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.DataDir != "/var/lib/aostore" {
		t.Errorf("DataDir not loaded: %s", cfg.DataDir)
	}
	if cfg.MaxConcurrency != 64 {
		t.Errorf("MaxConcurrency not loaded: %d", cfg.MaxConcurrency)
	}
	if cfg.MaxColumns != 99 {
		t.Errorf("MaxColumns not loaded: %d", cfg.MaxColumns)
	}
}

func TestLoadConfigFlagBeatsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "aostore.yaml")

	if err := os.WriteFile(path, []byte("max_concurrency: 64\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := config.LoadConfig([]string{"-config", path, "-max-concurrency", "32"})
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.MaxConcurrency != 32 {
		t.Errorf("flag should override file: %d", cfg.MaxConcurrency)
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("AOSTORE_MAX_COLUMNS", "11")

	cfg, err := config.LoadConfig(nil)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.MaxColumns != 11 {
		t.Errorf("env should override default: %d", cfg.MaxColumns)
	}
}
