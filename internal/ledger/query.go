package ledger

import (
	"sort"

	"github.com/theirongolddev/fintrack/internal/model"
)

// Filter narrows ListTransactions. Zero values mean "no filter".
type Filter struct {
	Category string                // matched against the normalized category
	Type     model.TransactionType // Expense, Income or empty
}

// Matches reports whether t passes the filter.
func (f Filter) Matches(t model.Transaction) bool {
	if c := model.NormalizeCategory(f.Category); c != "" && model.NormalizeCategory(t.Category) != c {
		return false
	}
	if f.Type != "" && t.Type != f.Type {
		return false
	}
	return true
}

// ListTransactions returns copies of the matching transactions, newest date
// first. Records sharing a date keep their insertion order.
func (l *Ledger) ListTransactions(f Filter) []model.Transaction {
	out := make([]model.Transaction, 0, len(l.transactions))
	for _, t := range l.transactions {
		if f.Matches(t) {
			out = append(out, t.Clone())
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})
	return out
}
