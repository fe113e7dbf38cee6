package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/theirongolddev/fintrack/internal/model"
)

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv(EnvDataDir, "")
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvTheme, "")
}

func TestLoadFile_MissingReturnsDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	def := DefaultConfig()
	if cfg != def {
		t.Errorf("got %+v, want defaults %+v", cfg, def)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "sub", "config.toml")

	cfg := DefaultConfig()
	cfg.General.DataDir = "/tmp/ledger"
	cfg.General.DefaultType = "Income"
	cfg.Appearance.Theme = "tokyo-night"
	cfg.Log.Level = "debug"

	if err := SaveFile(path, cfg); err != nil {
		t.Fatalf("SaveFile: %v", err)
	}
	if !Exists(path) {
		t.Fatal("config file not written")
	}

	got, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if got != cfg {
		t.Errorf("round trip = %+v, want %+v", got, cfg)
	}
	if got.DefaultTransactionType() != model.Income {
		t.Errorf("DefaultTransactionType = %q", got.DefaultTransactionType())
	}
}

func TestLoadFile_PartialKeepsDefaults(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[appearance]\ntheme = \"terminal\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Appearance.Theme != "terminal" {
		t.Errorf("theme = %q", cfg.Appearance.Theme)
	}
	if cfg.General.TransactionsFile != "expenses.json" {
		t.Errorf("transactions_file = %q, want default", cfg.General.TransactionsFile)
	}
}

func TestLoadFile_EnvOverrides(t *testing.T) {
	t.Setenv(EnvDataDir, "/srv/money")
	t.Setenv(EnvLogLevel, "info")
	t.Setenv(EnvTheme, "catppuccin-mocha")

	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.ResolvedDataDir() != "/srv/money" {
		t.Errorf("data dir = %q", cfg.ResolvedDataDir())
	}
	if cfg.Log.Level != "info" {
		t.Errorf("log level = %q", cfg.Log.Level)
	}
	if cfg.Appearance.Theme != "catppuccin-mocha" {
		t.Errorf("theme = %q", cfg.Appearance.Theme)
	}
}

func TestLoadFile_Invalid(t *testing.T) {
	clearEnv(t)
	tests := []struct {
		name    string
		content string
	}{
		{"bad toml", "[general\n"},
		{"bad type", "[general]\ndefault_type = \"transfer\"\n"},
		{"bad format", "[log]\nformat = \"xml\"\n"},
		{"empty file name", "[general]\ntransactions_file = \"\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0o600); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadFile(path); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestResolvedDataDir(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	t.Setenv("XDG_DATA_HOME", "/xdg/data")

	tests := []struct {
		dataDir string
		want    string
	}{
		{"", "/xdg/data/fintrack"},
		{"~/money", filepath.Join(home, "money")},
		{"/abs/path", "/abs/path"},
	}
	for _, tt := range tests {
		cfg := DefaultConfig()
		cfg.General.DataDir = tt.dataDir
		if got := cfg.ResolvedDataDir(); got != tt.want {
			t.Errorf("ResolvedDataDir(%q) = %q, want %q", tt.dataDir, got, tt.want)
		}
	}
}

func TestConfigDir_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg/config")
	if got := ConfigPath(); got != "/xdg/config/fintrack/config.toml" {
		t.Errorf("ConfigPath = %q", got)
	}
}
