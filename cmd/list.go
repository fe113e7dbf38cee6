package cmd

import (
	"fmt"

	"github.com/theirongolddev/fintrack/internal/cli"
	"github.com/theirongolddev/fintrack/internal/ledger"
	"github.com/theirongolddev/fintrack/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagListCategory string
	flagListType     string
	flagListLimit    int
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List transactions, newest first",
	Args:    cobra.NoArgs,
	RunE:    runList,
}

func init() {
	listCmd.Flags().StringVar(&flagListCategory, "category", "", "Only this category")
	listCmd.Flags().StringVar(&flagListType, "type", "", "Only Expense or Income")
	listCmd.Flags().IntVarP(&flagListLimit, "limit", "l", 0, "Show at most this many rows (0 = all)")
	rootCmd.AddCommand(listCmd)
}

func runList(_ *cobra.Command, _ []string) error {
	l, _, err := openLedger()
	if err != nil {
		return err
	}

	f := ledger.Filter{Category: flagListCategory}
	if flagListType != "" {
		typ, err := model.ParseTransactionType(flagListType)
		if err != nil {
			return &ledger.Error{Op: "list", Field: "type", Value: flagListType, Err: ledger.ErrInvalidType}
		}
		f.Type = typ
	}

	txs := l.ListTransactions(f)
	if len(txs) == 0 {
		fmt.Println()
		fmt.Println(cli.RenderMuted("  No transactions found."))
		fmt.Println()
		return nil
	}

	total := len(txs)
	if flagListLimit > 0 && len(txs) > flagListLimit {
		txs = txs[:flagListLimit]
	}

	rows := make([][]string, 0, len(txs))
	for _, t := range txs {
		amount := cli.RenderExpense(t.Amount)
		if t.Type == model.Income {
			amount = cli.RenderIncome(t.Amount)
		}
		rows = append(rows, []string{
			t.ShortID(),
			t.Date,
			string(t.Type),
			amount,
			cli.FormatCategory(t.Category),
			cli.Truncate(t.Description, 32),
		})
	}

	title := "Transactions"
	if len(txs) < total {
		title = fmt.Sprintf("Transactions (%d of %d)", len(txs), total)
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   title,
		Headers: []string{"ID", "Date", "Type", "Amount", "Category", "Description"},
		Rows:    rows,
		Right:   []bool{false, false, false, true, false, false},
	}))
	fmt.Println()
	return nil
}
