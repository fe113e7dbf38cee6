package cmd

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/fintrack/internal/config"
	"github.com/theirongolddev/fintrack/internal/tui/theme"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	path := configPath()

	fmt.Printf("  Config file: %s\n", path)
	if config.Exists(path) {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Data directory:    %s\n", cfg.ResolvedDataDir())
	fmt.Printf("    Transactions file: %s\n", cfg.General.TransactionsFile)
	fmt.Printf("    Categories file:   %s\n", cfg.General.CategoriesFile)
	fmt.Printf("    Default type:      %s\n", cfg.DefaultTransactionType())
	fmt.Printf("    Currency symbol:   %q\n", cfg.General.CurrencySymbol)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Printf("    Available: %s\n", strings.Join(theme.Names(), ", "))
	fmt.Println()

	fmt.Println("  [Log]")
	fmt.Printf("    Level:  %s\n", cfg.Log.Level)
	fmt.Printf("    Format: %s\n", cfg.Log.Format)
	fmt.Println()

	fmt.Printf("  Environment overrides: %s, %s, %s\n",
		config.EnvDataDir, config.EnvLogLevel, config.EnvTheme)
	fmt.Println("  Run `fintrack setup` to reconfigure.")
	return nil
}
