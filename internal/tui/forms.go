package tui

import (
	"errors"
	"strconv"
	"strings"

	"github.com/theirongolddev/fintrack/internal/ledger"
	"github.com/theirongolddev/fintrack/internal/model"

	"github.com/charmbracelet/huh"
)

// TransactionValues backs the add and edit transaction forms.
type TransactionValues struct {
	Type        model.TransactionType
	Amount      string
	Category    string
	Description string
	Date        string
}

// NewTransactionValues returns blank values dated today.
func NewTransactionValues(defaultType model.TransactionType, categories []string) *TransactionValues {
	v := &TransactionValues{Type: defaultType, Date: model.Today()}
	if !v.Type.Valid() {
		v.Type = model.Expense
	}
	if len(categories) > 0 {
		v.Category = categories[0]
	}
	return v
}

// ValuesFromTransaction prefills the form with an existing record.
func ValuesFromTransaction(t model.Transaction) *TransactionValues {
	return &TransactionValues{
		Type:        t.Type,
		Amount:      formatAmount(t.Amount),
		Category:    model.NormalizeCategory(t.Category),
		Description: t.Description,
		Date:        t.Date,
	}
}

// formatAmount renders an amount for editing. Two decimals are used when
// they reproduce the stored value exactly; otherwise the shortest exact form
// is used, so an untouched field parses back to the same amount.
func formatAmount(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	if back, err := strconv.ParseFloat(s, 64); err == nil && back == v {
		return s
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Input converts the form values into a ledger input.
func (v *TransactionValues) Input() (ledger.TransactionInput, error) {
	amount, err := ledger.ParseAmount(v.Amount)
	if err != nil {
		return ledger.TransactionInput{}, err
	}
	return ledger.TransactionInput{
		Type:        v.Type,
		Amount:      amount,
		Category:    v.Category,
		Description: strings.TrimSpace(v.Description),
		Date:        strings.TrimSpace(v.Date),
	}, nil
}

func validateAmount(s string) error {
	if _, err := ledger.ParseAmount(s); err != nil {
		return errors.New("enter a positive number")
	}
	return nil
}

func validateDate(s string) error {
	if _, err := model.ParseDate(strings.TrimSpace(s)); err != nil {
		return errors.New("use YYYY-MM-DD")
	}
	return nil
}

func validateRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("required")
	}
	return nil
}

// NewTransactionForm builds the add/edit form. categories are canonical
// names; the select shows them display-cased.
func NewTransactionForm(title, subtitle string, vals *TransactionValues, categories []string) *huh.Form {
	typeOpts := make([]huh.Option[model.TransactionType], 0, len(model.TransactionTypes))
	for _, t := range model.TransactionTypes {
		typeOpts = append(typeOpts, huh.NewOption(string(t), t))
	}

	var category huh.Field
	if len(categories) > 0 {
		catOpts := make([]huh.Option[string], 0, len(categories))
		for _, c := range categories {
			catOpts = append(catOpts, huh.NewOption(model.DisplayCategory(c), c))
		}
		category = huh.NewSelect[string]().
			Title("Category").
			Options(catOpts...).
			Value(&vals.Category)
	} else {
		category = huh.NewInput().
			Title("Category").
			Description("No categories yet").
			Value(&vals.Category).
			Validate(validateRequired)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title(title).
				Description(subtitle),
			huh.NewSelect[model.TransactionType]().
				Title("Type").
				Options(typeOpts...).
				Value(&vals.Type),
			huh.NewInput().
				Title("Amount").
				Placeholder("0.00").
				Value(&vals.Amount).
				Validate(validateAmount),
			huh.NewInput().
				Title("Date").
				Placeholder("YYYY-MM-DD").
				Value(&vals.Date).
				Validate(validateDate),
			category,
			huh.NewInput().
				Title("Description").
				Value(&vals.Description).
				Validate(validateRequired),
		),
	).WithShowHelp(true)
}

// NewConfirmForm builds a yes/no confirmation bound to confirmed.
func NewConfirmForm(title, description string, confirmed *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(description).
				Affirmative("Yes").
				Negative("No").
				Value(confirmed),
		),
	)
}

// NewCategoryForm asks for a new category name.
func NewCategoryForm(name *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("New category").
				Placeholder("e.g. Groceries").
				Value(name).
				Validate(validateRequired),
		),
	)
}
