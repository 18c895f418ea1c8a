package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()

	if cfg.OutputDir != "." {
		t.Errorf("expected OutputDir '.', got %q", cfg.OutputDir)
	}
	if cfg.DataDir != XDGDataDir() {
		t.Errorf("expected DataDir %q, got %q", XDGDataDir(), cfg.DataDir)
	}
	if cfg.LogFile != filepath.Join(XDGStateDir(), "toolbelt.log") {
		t.Errorf("unexpected LogFile %q", cfg.LogFile)
	}
	if cfg.BaseURL != "https://alltoolshub.pro" {
		t.Errorf("unexpected BaseURL %q", cfg.BaseURL)
	}
	if cfg.QREndpoint != "https://api.qrserver.com/v1/create-qr-code/" {
		t.Errorf("unexpected QREndpoint %q", cfg.QREndpoint)
	}
	if cfg.QRSize != 300 {
		t.Errorf("expected QRSize 300, got %d", cfg.QRSize)
	}
	if cfg.HTTPTimeout != 10*time.Second {
		t.Errorf("expected HTTPTimeout 10s, got %v", cfg.HTTPTimeout)
	}
	if cfg.Verbose || cfg.SkipTutorials {
		t.Error("expected Verbose and SkipTutorials off by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		modify func(*Config)
		want   error
	}{
		{"empty data dir", func(c *Config) { c.DataDir = "" }, ErrInvalidDataDir},
		{"empty output dir", func(c *Config) { c.OutputDir = "" }, ErrInvalidOutputDir},
		{"relative base url", func(c *Config) { c.BaseURL = "alltoolshub.pro" }, ErrInvalidBaseURL},
		{"ftp base url", func(c *Config) { c.BaseURL = "ftp://example.com" }, ErrInvalidBaseURL},
		{"bad qr endpoint", func(c *Config) { c.QREndpoint = "::" }, ErrInvalidQREndpoint},
		{"zero qr size", func(c *Config) { c.QRSize = 0 }, ErrInvalidQRSize},
		{"huge qr size", func(c *Config) { c.QRSize = 5000 }, ErrInvalidQRSize},
		{"zero timeout", func(c *Config) { c.HTTPTimeout = 0 }, ErrInvalidHTTPTimeout},
		{"http base url is fine", func(c *Config) { c.BaseURL = "http://localhost:3000" }, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := NewConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "config.yaml", `
output_dir: /tmp/out
qr_size: 500
skip_tutorials: true
http_timeout: 3s
`)

	cfg := NewConfig()
	if err := cfg.LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.OutputDir != "/tmp/out" || cfg.QRSize != 500 || !cfg.SkipTutorials {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.HTTPTimeout != 3*time.Second {
		t.Errorf("expected 3s timeout, got %v", cfg.HTTPTimeout)
	}
	if cfg.BaseURL != DefaultBaseURL {
		t.Errorf("absent key should keep default, got %q", cfg.BaseURL)
	}
	if cfg.ConfigFilePath != path {
		t.Errorf("expected ConfigFilePath %q, got %q", path, cfg.ConfigFilePath)
	}
}

func TestLoadFile_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		err := NewConfig().LoadFile(filepath.Join(dir, "nope.yaml"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("expected ErrConfigNotFound, got %v", err)
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, dir, "bad.yaml", "qr_size: [1, 2")
		if err := NewConfig().LoadFile(path); err == nil {
			t.Error("expected parse error")
		}
	})
}

func TestLoad_ExplicitMissing(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("expected ErrConfigNotFound, got %v", err)
	}
}

func TestLoad_LocalFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, LocalConfigFile, "base_url: https://example.com\n")
	t.Chdir(dir)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BaseURL != "https://example.com" {
		t.Errorf("expected local file to apply, got %q", cfg.BaseURL)
	}
	if filepath.Base(cfg.ConfigFilePath) != LocalConfigFile {
		t.Errorf("unexpected ConfigFilePath %q", cfg.ConfigFilePath)
	}
}
