package cli

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/fintrack/internal/ledger"
	"github.com/theirongolddev/fintrack/internal/model"
)

// DescribeError turns a ledger error into a one-line message for people.
// Errors that are not ledger errors are returned as-is.
func DescribeError(err error) string {
	if err == nil {
		return ""
	}

	var lerr *ledger.Error
	value := ""
	if errors.As(err, &lerr) {
		value = lerr.Value
	}

	switch {
	case errors.Is(err, ledger.ErrInvalidAmount):
		return "Amount must be a positive number."
	case errors.Is(err, ledger.ErrInvalidDate):
		return fmt.Sprintf("Invalid date %q. Use YYYY-MM-DD.", value)
	case errors.Is(err, ledger.ErrInvalidType):
		return fmt.Sprintf("Invalid type %q. Use Expense or Income.", value)
	case errors.Is(err, ledger.ErrMissingField):
		field := "A required field"
		if lerr != nil && lerr.Field != "" {
			field = model.DisplayCategory(lerr.Field)
		}
		return field + " is required."
	case errors.Is(err, ledger.ErrCategoryInUse):
		return fmt.Sprintf("Category '%s' is in use. Update or delete related transactions first.",
			model.DisplayCategory(value))
	case errors.Is(err, ledger.ErrAlreadyExists):
		return fmt.Sprintf("Category '%s' already exists.", model.DisplayCategory(value))
	case errors.Is(err, ledger.ErrAmbiguousID):
		return fmt.Sprintf("ID %q matches more than one transaction. Use more characters.", value)
	case errors.Is(err, ledger.ErrNotFound):
		if lerr != nil && lerr.Field == "category" {
			return fmt.Sprintf("Unknown category '%s'. Add it with `fintrack categories add`.", model.DisplayCategory(value))
		}
		if lerr != nil && lerr.Field == "name" {
			return fmt.Sprintf("Category '%s' not found.", model.DisplayCategory(value))
		}
		return fmt.Sprintf("Transaction %q not found.", value)
	}
	return err.Error()
}
