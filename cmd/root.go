// Package cmd implements the fintrack CLI commands.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/theirongolddev/fintrack/internal/cli"
	"github.com/theirongolddev/fintrack/internal/config"
	"github.com/theirongolddev/fintrack/internal/ledger"
	"github.com/theirongolddev/fintrack/internal/logging"
	"github.com/theirongolddev/fintrack/internal/store"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var (
	flagDataDir    string
	flagConfigPath string
	flagLogLevel   string
	flagLogFormat  string
	flagQuiet      bool
)

// cfg is the effective configuration, loaded before any command runs.
var cfg = config.DefaultConfig()

var rootCmd = &cobra.Command{
	Use:               "fintrack",
	Short:             "Personal income and expense tracker",
	Long:              "Record income and expenses, browse them by category, and see where the money goes.",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
	RunE:              runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cli.RenderWarning("  Error: %s", cli.DescribeError(err)))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Directory holding the ledger files (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Config file (default "+config.ConfigPath()+")")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFormat, "log-format", "", "Log format: text or json")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress informational output and diagnostics")
}

// configPath returns the config file this invocation reads and writes.
func configPath() string {
	if flagConfigPath != "" {
		return flagConfigPath
	}
	return config.ConfigPath()
}

// loadConfig resolves the effective configuration: defaults, then the
// config file, then environment, then flags.
func loadConfig(_ *cobra.Command, _ []string) error {
	config.LoadEnv()

	loaded, err := config.LoadFile(configPath())
	if err != nil {
		return err
	}
	cfg = loaded

	if flagDataDir != "" {
		cfg.General.DataDir = flagDataDir
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if flagLogFormat != "" {
		cfg.Log.Format = flagLogFormat
	}

	if _, err := logging.Setup(cfg.Log.Level, cfg.Log.Format); err != nil {
		return err
	}
	if flagQuiet {
		slog.SetDefault(logging.Discard())
	}
	cli.CurrencySymbol = cfg.General.CurrencySymbol
	return nil
}

// openLedger is the shared data loading path used by all commands.
func openLedger() (*ledger.Ledger, *store.Store, error) {
	dir := cfg.ResolvedDataDir()
	st := store.New(dir,
		store.WithTransactionsFile(cfg.General.TransactionsFile),
		store.WithCategoriesFile(cfg.General.CategoriesFile),
		store.WithLogger(slog.Default()),
	)

	l, err := ledger.Open(st, ledger.WithLogger(slog.Default()))
	if err != nil {
		return nil, nil, fmt.Errorf("opening ledger in %s: %w", dir, err)
	}

	if st.Corrupt() && !flagQuiet {
		fmt.Fprintln(os.Stderr, cli.RenderWarning(
			"  Warning: unreadable ledger file in %s, starting empty. The next change replaces it.", dir))
		for _, b := range st.Backups() {
			fmt.Fprintln(os.Stderr, cli.RenderWarning("  Original content kept at %s", b))
		}
	}
	return l, st, nil
}

// interactive reports whether prompts can be shown on this terminal.
func interactive() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd())
}

// info prints a status line unless --quiet is set.
func info(format string, args ...any) {
	if flagQuiet {
		return
	}
	fmt.Printf("  "+format+"\n", args...)
}
