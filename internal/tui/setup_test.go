package tui

import (
	"testing"

	"github.com/theirongolddev/fintrack/internal/config"
	"github.com/theirongolddev/fintrack/internal/model"
)

func TestSetupValuesApply(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/xdg")
	cfg := config.DefaultConfig()

	v := SetupValuesFrom(cfg)
	if v.DataDir != "/xdg/fintrack" || v.DefaultType != model.Expense || v.Theme != "flexoki-dark" {
		t.Fatalf("seed values = %+v", v)
	}

	v.DataDir = " /srv/ledger "
	v.DefaultType = model.Income
	v.Currency = "€"
	v.Theme = "tokyo-night"
	v.LogLevel = "debug"
	v.Apply(&cfg)

	if cfg.General.DataDir != "/srv/ledger" {
		t.Errorf("data dir = %q", cfg.General.DataDir)
	}
	if cfg.General.DefaultType != "Income" || cfg.General.CurrencySymbol != "€" {
		t.Errorf("general = %+v", cfg.General)
	}
	if cfg.Appearance.Theme != "tokyo-night" || cfg.Log.Level != "debug" {
		t.Errorf("appearance/log = %+v %+v", cfg.Appearance, cfg.Log)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("applied config invalid: %v", err)
	}
}
