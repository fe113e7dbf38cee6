package spreadsheet

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/theirongolddev/fintrack/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sample() ([]model.Transaction, model.Summary) {
	txs := []model.Transaction{
		{ID: "b", Type: model.Expense, Amount: 12.5, Category: "food", Description: "Lunch", Date: "2024-03-02"},
		{ID: "a", Type: model.Income, Amount: 100, Category: "salary", Description: "Pay", Date: "2024-03-01"},
	}
	s := model.Summary{
		TotalIncome:  100,
		TotalExpense: 12.5,
		NetBalance:   87.5,
		Transactions: 2,
		ExpenseByCategory: []model.CategoryShare{
			{Category: "food", Amount: 12.5, Percent: 100},
		},
	}
	return txs, s
}

func TestWriteFile(t *testing.T) {
	txs, s := sample()
	path := filepath.Join(t.TempDir(), "ledger.xlsx")
	require.NoError(t, WriteFile(path, txs, s))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{TransactionsSheet, SummarySheet}, f.GetSheetList())

	rows, err := f.GetRows(TransactionsSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"ID", "Date", "Type", "Category", "Description", "Amount"}, rows[0])
	assert.Equal(t, []string{"b", "2024-03-02", "Expense", "Food", "Lunch"}, rows[1][:5])

	raw, err := f.GetCellValue(TransactionsSheet, "F2", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "12.5", raw)

	label, err := f.GetCellValue(SummarySheet, "A3")
	require.NoError(t, err)
	assert.Equal(t, "Net Balance", label)

	net, err := f.GetCellValue(SummarySheet, "B3", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "87.5", net)

	cat, err := f.GetCellValue(SummarySheet, "A7")
	require.NoError(t, err)
	assert.Equal(t, "Food", cat)
}

func TestWriteEmptyLedger(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, nil, model.Summary{}))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(TransactionsSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
