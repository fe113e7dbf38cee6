package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/fintrack/internal/config"
	"github.com/theirongolddev/fintrack/internal/model"
	"github.com/theirongolddev/fintrack/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// SetupValues backs the first-run setup wizard.
type SetupValues struct {
	DataDir     string
	DefaultType model.TransactionType
	Currency    string
	Theme       string
	LogLevel    string
}

// SetupValuesFrom seeds the wizard from an existing config.
func SetupValuesFrom(cfg config.Config) *SetupValues {
	return &SetupValues{
		DataDir:     cfg.ResolvedDataDir(),
		DefaultType: cfg.DefaultTransactionType(),
		Currency:    cfg.General.CurrencySymbol,
		Theme:       theme.ByName(cfg.Appearance.Theme).Name,
		LogLevel:    cfg.Log.Level,
	}
}

// Apply copies the wizard answers into cfg.
func (v *SetupValues) Apply(cfg *config.Config) {
	if dir := strings.TrimSpace(v.DataDir); dir != "" {
		cfg.General.DataDir = dir
	}
	if v.DefaultType.Valid() {
		cfg.General.DefaultType = string(v.DefaultType)
	}
	cfg.General.CurrencySymbol = strings.TrimSpace(v.Currency)
	if v.Theme != "" {
		cfg.Appearance.Theme = v.Theme
	}
	if v.LogLevel != "" {
		cfg.Log.Level = v.LogLevel
	}
}

// NewSetupForm builds the setup wizard. configPath is shown as the save
// location.
func NewSetupForm(vals *SetupValues, configPath string) *huh.Form {
	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(t.Name, t.Name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to fintrack!").
				Description("Let's set up a few things.\nSaved to "+configPath),
			huh.NewInput().
				Title("Data directory").
				Description("Where expenses.json and categories.json live").
				Value(&vals.DataDir).
				Validate(validateRequired),
			huh.NewSelect[model.TransactionType]().
				Title("Default transaction type").
				Options(
					huh.NewOption("Expense", model.Expense),
					huh.NewOption("Income", model.Income),
				).
				Value(&vals.DefaultType),
			huh.NewInput().
				Title("Currency symbol").
				Value(&vals.Currency),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&vals.Theme),
			huh.NewSelect[string]().
				Title("Log level").
				Description("Diagnostics written to stderr").
				Options(
					huh.NewOption("warn", "warn"),
					huh.NewOption("info", "info"),
					huh.NewOption("debug", "debug"),
					huh.NewOption("error", "error"),
				).
				Value(&vals.LogLevel),
		),
	).WithShowHelp(true)
}

// saveSetupConfig applies the wizard answers to the running app and writes
// the config file.
func (a *App) saveSetupConfig() error {
	a.setupVals.Apply(&a.cfg)
	theme.SetActive(a.cfg.Appearance.Theme)
	if err := config.SaveFile(a.cfgPath, a.cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	return nil
}
