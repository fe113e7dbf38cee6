package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/theirongolddev/fintrack/internal/cli"
	"github.com/theirongolddev/fintrack/internal/ledger"
	"github.com/theirongolddev/fintrack/internal/store/archive"
	"github.com/theirongolddev/fintrack/internal/store/spreadsheet"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var (
	flagExportDB      string
	flagExportXLSX    string
	flagExportHistory bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Snapshot the ledger into a SQLite database",
	Long: "Write every transaction and category into a SQLite database for ad-hoc SQL queries. " +
		"Each export replaces the previous snapshot and is recorded in the exports table. " +
		"With --xlsx a spreadsheet is written instead, unless --db is also given. " +
		"--history lists earlier snapshots without writing.",
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&flagExportDB, "db", "", "SQLite file to write (default <data-dir>/fintrack.db)")
	exportCmd.Flags().StringVar(&flagExportXLSX, "xlsx", "", "Write an Excel workbook to this path")
	exportCmd.Flags().BoolVar(&flagExportHistory, "history", false, "List the snapshots recorded in the database")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	if flagExportHistory {
		return runExportHistory()
	}

	l, _, err := openLedger()
	if err != nil {
		return err
	}

	if flagExportXLSX != "" {
		if err := spreadsheet.WriteFile(flagExportXLSX, l.ListTransactions(ledger.Filter{}), l.Summarize()); err != nil {
			return err
		}
		info("Wrote workbook %s", flagExportXLSX)
		if flagExportDB == "" {
			return nil
		}
	}

	a, err := archive.Open(exportDBPath())
	if err != nil {
		return fmt.Errorf("opening archive: %w", err)
	}
	defer a.Close()

	txs := l.Transactions()

	var progress func(done int)
	if !flagQuiet && len(txs) > 0 {
		bar := newExportBar(len(txs))
		progress = func(done int) {
			_ = bar.Set(done)
		}
		defer func() { _ = bar.Finish() }()
	}

	if err := a.WriteLedger(txs, l.Categories(), progress); err != nil {
		return fmt.Errorf("writing archive: %w", err)
	}

	version, err := a.SchemaVersion()
	if err != nil {
		return err
	}
	n, err := a.Count()
	if err != nil {
		return fmt.Errorf("counting archived transactions: %w", err)
	}
	cats, err := a.Categories()
	if err != nil {
		return fmt.Errorf("reading archived categories: %w", err)
	}
	info("Exported %s transactions and %d categories to %s (schema v%d)",
		cli.FormatNumber(int64(n)), len(cats), a.Path(), version)
	return nil
}

func exportDBPath() string {
	if flagExportDB != "" {
		return flagExportDB
	}
	return filepath.Join(cfg.ResolvedDataDir(), "fintrack.db")
}

func runExportHistory() error {
	dbPath := exportDBPath()
	if _, err := os.Stat(dbPath); err != nil {
		if os.IsNotExist(err) {
			info("No exports yet. Run `fintrack export` to create %s.", dbPath)
			return nil
		}
		return err
	}

	a, err := archive.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening archive: %w", err)
	}
	defer a.Close()

	exports, err := a.Exports()
	if err != nil {
		return fmt.Errorf("reading export history: %w", err)
	}
	if len(exports) == 0 {
		info("No exports recorded in %s.", a.Path())
		return nil
	}

	fmt.Print(cli.RenderTable(exportHistoryTable(exports)))
	return nil
}

func exportHistoryTable(exports []archive.Export) cli.Table {
	rows := make([][]string, 0, len(exports))
	for _, e := range exports {
		at := "-"
		if !e.At.IsZero() {
			at = e.At.Local().Format("2006-01-02 15:04")
		}
		rows = append(rows, []string{
			at,
			cli.FormatNumber(int64(e.Transactions)),
			cli.FormatNumber(int64(e.Categories)),
			cli.FormatMoney(e.TotalIncome),
			cli.FormatMoney(e.TotalExpense),
		})
	}
	return cli.Table{
		Title:   "Export History",
		Headers: []string{"Exported", "Transactions", "Categories", "Income", "Expenses"},
		Rows:    rows,
	}
}

func newExportBar(total int) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("  Exporting"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(os.Stderr)
		}),
	)
}
