package ledger

import (
	"testing"

	"github.com/theirongolddev/fintrack/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthlyTotals(t *testing.T) {
	got := MonthlyTotals([]model.Transaction{
		{Type: model.Expense, Amount: 10, Date: "2024-02-10"},
		{Type: model.Income, Amount: 100, Date: "2024-01-31"},
		{Type: model.Expense, Amount: 5, Date: "2024-02-01"},
		{Type: model.Expense, Amount: 7, Date: "not-a-date"},
		{Type: model.Expense, Amount: 3, Date: "2023-12-24"},
	})

	require.Len(t, got, 3)
	assert.Equal(t, model.MonthTotal{Month: "2023-12", Expense: 3}, got[0])
	assert.Equal(t, model.MonthTotal{Month: "2024-01", Income: 100}, got[1])
	assert.Equal(t, model.MonthTotal{Month: "2024-02", Expense: 15}, got[2])
	assert.Equal(t, -15.0, got[2].Net())

	assert.Empty(t, MonthlyTotals(nil))
}
