package ledger

import (
	"sort"

	"github.com/theirongolddev/fintrack/internal/model"
)

// Summarize aggregates the whole, unfiltered ledger.
func (l *Ledger) Summarize() model.Summary {
	return Summarize(l.transactions)
}

// Summarize computes totals and the expense breakdown for txs. The
// breakdown is sorted by amount descending (ties by category name) and is
// empty when there are no expenses.
func Summarize(txs []model.Transaction) model.Summary {
	var s model.Summary
	byCategory := make(map[string]float64)

	for _, t := range txs {
		s.Transactions++
		switch t.Type {
		case model.Income:
			s.TotalIncome += t.Amount
		case model.Expense:
			s.TotalExpense += t.Amount
			byCategory[model.NormalizeCategory(t.Category)] += t.Amount
		}
	}
	s.NetBalance = s.TotalIncome - s.TotalExpense

	if s.TotalExpense <= 0 {
		s.ExpenseByCategory = []model.CategoryShare{}
		return s
	}

	shares := make([]model.CategoryShare, 0, len(byCategory))
	for c, amt := range byCategory {
		shares = append(shares, model.CategoryShare{
			Category: c,
			Amount:   amt,
			Percent:  amt / s.TotalExpense * 100,
		})
	}
	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Amount != shares[j].Amount {
			return shares[i].Amount > shares[j].Amount
		}
		return shares[i].Category < shares[j].Category
	})
	s.ExpenseByCategory = shares
	return s
}
