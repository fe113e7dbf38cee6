package ledger

import (
	"sort"

	"github.com/theirongolddev/fintrack/internal/model"
)

// MonthlyTotals buckets the ledger by calendar month, oldest first.
func (l *Ledger) MonthlyTotals() []model.MonthTotal {
	return MonthlyTotals(l.transactions)
}

// MonthlyTotals groups txs by the YYYY-MM prefix of their date. Records with
// an unparsable date are skipped.
func MonthlyTotals(txs []model.Transaction) []model.MonthTotal {
	byMonth := make(map[string]*model.MonthTotal)
	for _, t := range txs {
		d, err := t.ParsedDate()
		if err != nil {
			continue
		}
		key := d.Format("2006-01")
		m, ok := byMonth[key]
		if !ok {
			m = &model.MonthTotal{Month: key}
			byMonth[key] = m
		}
		switch t.Type {
		case model.Income:
			m.Income += t.Amount
		case model.Expense:
			m.Expense += t.Amount
		}
	}

	out := make([]model.MonthTotal, 0, len(byMonth))
	for _, m := range byMonth {
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}
