package cmd

import (
	"errors"
	"strings"

	"github.com/theirongolddev/fintrack/internal/cli"
	"github.com/theirongolddev/fintrack/internal/ledger"
	"github.com/theirongolddev/fintrack/internal/model"
	"github.com/theirongolddev/fintrack/internal/tui"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var (
	flagTxType        string
	flagTxAmount      string
	flagTxCategory    string
	flagTxDescription string
	flagTxDate        string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Record an income or expense",
	Long: "Record an income or expense. Missing fields are asked for interactively " +
		"when running in a terminal.",
	Example: "  fintrack add --type expense --amount 12.50 --category food --description Lunch",
	Args:    cobra.NoArgs,
	RunE:    runAdd,
}

func init() {
	addTransactionFlags(addCmd)
	rootCmd.AddCommand(addCmd)
}

// addTransactionFlags registers the field flags shared by add and edit.
func addTransactionFlags(c *cobra.Command) {
	c.Flags().StringVar(&flagTxType, "type", "", "Expense or Income")
	c.Flags().StringVar(&flagTxAmount, "amount", "", "Positive amount, e.g. 12.50")
	c.Flags().StringVar(&flagTxCategory, "category", "", "Category name")
	c.Flags().StringVar(&flagTxDescription, "description", "", "Short description")
	c.Flags().StringVar(&flagTxDate, "date", "", "Date as YYYY-MM-DD (default today)")
}

func runAdd(_ *cobra.Command, _ []string) error {
	l, _, err := openLedger()
	if err != nil {
		return err
	}

	vals := tui.NewTransactionValues(cfg.DefaultTransactionType(), l.Categories())
	vals.Category = ""
	if err := applyTransactionFlags(vals, nil); err != nil {
		return err
	}

	if missingFields(vals) && interactive() {
		if vals.Category == "" && len(l.Categories()) > 0 {
			vals.Category = l.Categories()[0]
		}
		form := tui.NewTransactionForm("Add Transaction", "", vals, l.Categories())
		if err := form.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				info("Cancelled.")
				return nil
			}
			return err
		}
	}

	in, err := vals.Input()
	if err != nil {
		return err
	}
	t, err := l.AddTransaction(in)
	if err != nil {
		return err
	}

	info("'%s' of %s added! (id %s)", t.Type, cli.FormatMoney(t.Amount), t.ShortID())
	return nil
}

// applyTransactionFlags copies the field flags that were given onto vals.
// When changed is nil every non-empty flag counts as given.
func applyTransactionFlags(vals *tui.TransactionValues, changed func(name string) bool) error {
	given := func(name, v string) bool {
		if changed != nil {
			return changed(name)
		}
		return v != ""
	}

	if given("type", flagTxType) {
		typ, err := model.ParseTransactionType(flagTxType)
		if err != nil {
			return &ledger.Error{Op: "parse type", Field: "type", Value: flagTxType, Err: ledger.ErrInvalidType}
		}
		vals.Type = typ
	}
	if given("amount", flagTxAmount) {
		vals.Amount = flagTxAmount
	}
	if given("category", flagTxCategory) {
		vals.Category = model.NormalizeCategory(flagTxCategory)
	}
	if given("description", flagTxDescription) {
		vals.Description = flagTxDescription
	}
	if given("date", flagTxDate) {
		vals.Date = flagTxDate
	}
	return nil
}

func missingFields(vals *tui.TransactionValues) bool {
	return strings.TrimSpace(vals.Amount) == "" ||
		strings.TrimSpace(vals.Category) == "" ||
		strings.TrimSpace(vals.Description) == ""
}
