package cmd

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/fintrack/internal/cli"
	"github.com/theirongolddev/fintrack/internal/model"
	"github.com/theirongolddev/fintrack/internal/tui"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var flagYes bool

var deleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a transaction",
	Args:    cobra.ExactArgs(1),
	RunE:    runDelete,
}

func init() {
	deleteCmd.Flags().BoolVarP(&flagYes, "yes", "y", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(_ *cobra.Command, args []string) error {
	l, _, err := openLedger()
	if err != nil {
		return err
	}

	id, err := l.ResolveID(args[0])
	if err != nil {
		return err
	}
	t, _ := l.Get(id)

	if !flagYes {
		if !interactive() {
			return fmt.Errorf("refusing to delete without confirmation: pass --yes")
		}
		confirmed := false
		desc := fmt.Sprintf("%s %s · %s · %s · %s",
			t.Type, cli.FormatMoney(t.Amount), model.DisplayCategory(t.Category), t.Date, t.Description)
		if err := tui.NewConfirmForm("Delete this transaction?", desc, &confirmed).Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				info("Cancelled.")
				return nil
			}
			return err
		}
		if !confirmed {
			info("Deletion cancelled.")
			return nil
		}
	}

	if err := l.DeleteTransaction(id); err != nil {
		return err
	}
	info("Transaction %s deleted.", t.ShortID())
	return nil
}
