package ledger

import (
	"math"
	"strconv"
	"strings"

	"github.com/theirongolddev/fintrack/internal/model"
)

// TransactionInput carries the user-editable fields of a transaction.
type TransactionInput struct {
	Type        model.TransactionType
	Amount      float64
	Category    string
	Description string
	Date        string
}

// ParseAmount converts user text to an amount. Non-numeric, non-finite and
// non-positive values fail with ErrInvalidAmount.
func ParseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, opError("parse amount", "amount", s, ErrInvalidAmount)
	}
	return v, nil
}

// validate checks in against the field rules and the current category set.
// It returns the input with the category normalized.
func (l *Ledger) validate(op string, in TransactionInput) (TransactionInput, error) {
	if !in.Type.Valid() {
		return in, opError(op, "type", string(in.Type), ErrInvalidType)
	}
	if math.IsNaN(in.Amount) || math.IsInf(in.Amount, 0) || in.Amount <= 0 {
		return in, opError(op, "amount", strconv.FormatFloat(in.Amount, 'f', -1, 64), ErrInvalidAmount)
	}

	in.Category = model.NormalizeCategory(in.Category)
	if in.Category == "" {
		return in, opError(op, "category", "", ErrMissingField)
	}
	if strings.TrimSpace(in.Description) == "" {
		return in, opError(op, "description", "", ErrMissingField)
	}
	if _, err := model.ParseDate(in.Date); err != nil {
		return in, opError(op, "date", in.Date, ErrInvalidDate)
	}
	if l.categoryIndex(in.Category) < 0 {
		return in, opError(op, "category", in.Category, ErrNotFound)
	}
	return in, nil
}
