package cmd

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/fintrack/internal/tui"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Change an existing transaction",
	Long: "Change an existing transaction. Fields without a flag keep their current value. " +
		"The id may be shortened to its first 8 characters when that is unambiguous.",
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func init() {
	addTransactionFlags(editCmd)
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	l, _, err := openLedger()
	if err != nil {
		return err
	}

	id, err := l.ResolveID(args[0])
	if err != nil {
		return err
	}
	current, _ := l.Get(id)

	vals := tui.ValuesFromTransaction(current)
	if err := applyTransactionFlags(vals, cmd.Flags().Changed); err != nil {
		return err
	}

	if !anyFieldFlag(cmd) {
		if !interactive() {
			return fmt.Errorf("nothing to change: pass at least one of --type, --amount, --category, --description, --date")
		}
		form := tui.NewTransactionForm("Edit Transaction", "ID "+current.ShortID(), vals, l.Categories())
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
	if _, err := l.EditTransaction(id, in); err != nil {
		return err
	}

	info("Transaction %s updated.", current.ShortID())
	return nil
}

func anyFieldFlag(cmd *cobra.Command) bool {
	for _, name := range []string{"type", "amount", "category", "description", "date"} {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}
