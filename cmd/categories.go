package cmd

import (
	"fmt"

	"github.com/theirongolddev/fintrack/internal/cli"
	"github.com/theirongolddev/fintrack/internal/model"

	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:     "categories",
	Aliases: []string{"cat"},
	Short:   "Manage expense and income categories",
	Args:    cobra.NoArgs,
	RunE:    runCategoriesList,
}

var categoriesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories with usage counts",
	Args:  cobra.NoArgs,
	RunE:  runCategoriesList,
}

var categoriesAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a category",
	Args:  cobra.ExactArgs(1),
	RunE:  runCategoriesAdd,
}

var categoriesRemoveCmd = &cobra.Command{
	Use:     "remove <name>",
	Aliases: []string{"rm"},
	Short:   "Remove a category that no transaction uses",
	Args:    cobra.ExactArgs(1),
	RunE:    runCategoriesRemove,
}

func init() {
	categoriesCmd.AddCommand(categoriesListCmd, categoriesAddCmd, categoriesRemoveCmd)
	rootCmd.AddCommand(categoriesCmd)
}

func runCategoriesList(_ *cobra.Command, _ []string) error {
	l, _, err := openLedger()
	if err != nil {
		return err
	}

	cats := l.Categories()
	if len(cats) == 0 {
		fmt.Println()
		fmt.Println(cli.RenderMuted("  No categories. Add one with `fintrack categories add <name>`."))
		fmt.Println()
		return nil
	}

	rows := make([][]string, 0, len(cats))
	for _, c := range cats {
		rows = append(rows, []string{
			cli.FormatCategory(c),
			cli.FormatNumber(int64(l.CategoryUsage(c))),
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Categories",
		Headers: []string{"Category", "Transactions"},
		Rows:    rows,
	}))
	fmt.Println()
	return nil
}

func runCategoriesAdd(_ *cobra.Command, args []string) error {
	l, _, err := openLedger()
	if err != nil {
		return err
	}
	c, err := l.AddCategory(args[0])
	if err != nil {
		return err
	}
	info("Category '%s' added.", model.DisplayCategory(c))
	return nil
}

func runCategoriesRemove(_ *cobra.Command, args []string) error {
	l, _, err := openLedger()
	if err != nil {
		return err
	}
	if err := l.RemoveCategory(args[0]); err != nil {
		return err
	}
	info("Category '%s' removed.", model.DisplayCategory(model.NormalizeCategory(args[0])))
	return nil
}
