package cmd

import (
	"fmt"

	"github.com/theirongolddev/fintrack/internal/cli"
	"github.com/theirongolddev/fintrack/internal/ledger"

	"github.com/spf13/cobra"
)

var flagMonthly bool

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Totals, net balance and expenses by category",
	Args:  cobra.NoArgs,
	RunE:  runSummary,
}

func init() {
	summaryCmd.Flags().BoolVar(&flagMonthly, "monthly", false, "Also show income and expenses per month")
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	l, _, err := openLedger()
	if err != nil {
		return err
	}

	s := l.Summarize()

	fmt.Println()
	fmt.Println(cli.RenderTitle("FINANCIAL SUMMARY"))
	fmt.Println()

	if s.Transactions == 0 {
		fmt.Println(cli.RenderMuted("  No transactions yet."))
		fmt.Println(cli.RenderMuted("  Add one with `fintrack add` or open `fintrack tui`."))
		fmt.Println()
		return nil
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Rows: [][]string{
			{"Total Income", cli.RenderIncome(s.TotalIncome)},
			{"Total Expenses", cli.RenderExpense(s.TotalExpense)},
			{"---"},
			{"Net Balance", cli.RenderBalance(s.NetBalance)},
			{"Transactions", cli.FormatNumber(int64(s.Transactions))},
		},
	}))
	fmt.Println()

	if len(s.ExpenseByCategory) == 0 {
		fmt.Println(cli.RenderMuted("  (No expenses recorded.)"))
		fmt.Println()
	} else {
		rows := make([][]string, 0, len(s.ExpenseByCategory))
		for _, c := range s.ExpenseByCategory {
			rows = append(rows, []string{
				cli.FormatCategory(c.Category),
				cli.FormatMoney(c.Amount),
				cli.FormatPercent(c.Percent),
				cli.RenderShareBar(c.Percent, 20),
			})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "Expenses by Category",
			Headers: []string{"Category", "Amount", "Share", ""},
			Rows:    rows,
			Right:   []bool{false, true, true, false},
		}))
		fmt.Println()
	}

	if flagMonthly {
		printMonthly(l)
	}
	return nil
}

func printMonthly(l *ledger.Ledger) {
	months := l.MonthlyTotals()
	if len(months) == 0 {
		return
	}

	rows := make([][]string, 0, len(months))
	for _, m := range months {
		rows = append(rows, []string{
			m.Month,
			cli.FormatMoney(m.Income),
			cli.FormatMoney(m.Expense),
			cli.RenderBalance(m.Net()),
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "By Month",
		Headers: []string{"Month", "Income", "Expenses", "Net"},
		Rows:    rows,
	}))
	fmt.Println()
}
