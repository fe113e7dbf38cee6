package archive

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/theirongolddev/fintrack/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestArchive(t *testing.T) *Archive {
	t.Helper()
	a, err := Open(filepath.Join(t.TempDir(), "nested", "ledger.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	return a
}

func sampleTransactions() []model.Transaction {
	return []model.Transaction{
		{ID: "t1", Type: model.Income, Amount: 100, Category: "other", Description: "pay", Date: "2024-01-01"},
		{ID: "t2", Type: model.Expense, Amount: 40, Category: "food", Description: "groceries", Date: "2024-01-02",
			Extra: map[string]json.RawMessage{"note": json.RawMessage(`"weekly"`)}},
		{ID: "t3", Type: model.Expense, Amount: 10, Category: "food", Description: "snack", Date: "2024-01-02"},
	}
}

func TestOpen_MigratesSchema(t *testing.T) {
	a := openTestArchive(t)

	v, err := a.SchemaVersion()
	require.NoError(t, err)
	assert.Equal(t, uint(2), v)

	n, err := a.Count()
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestOpen_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.db")
	a, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, a.WriteLedger(sampleTransactions(), []string{"Food", "Other"}, nil))
	require.NoError(t, a.Close())

	b, err := Open(path)
	require.NoError(t, err)
	defer b.Close()

	n, err := b.Count()
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestWriteLedger_RoundTrip(t *testing.T) {
	a := openTestArchive(t)
	txs := sampleTransactions()

	var calls []int
	err := a.WriteLedger(txs, []string{"Food", "Other", "Bills"}, func(done int) {
		calls = append(calls, done)
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, calls)

	got, err := a.loadTransactions()
	require.NoError(t, err)
	require.Len(t, got, 3)
	for i := range txs {
		assert.Equal(t, txs[i].ID, got[i].ID)
		assert.Equal(t, txs[i].Type, got[i].Type)
		assert.Equal(t, txs[i].Amount, got[i].Amount)
		assert.Equal(t, txs[i].Category, got[i].Category)
		assert.Equal(t, txs[i].Description, got[i].Description)
		assert.Equal(t, txs[i].Date, got[i].Date)
	}
	assert.Nil(t, got[0].Extra)
	assert.JSONEq(t, `"weekly"`, string(got[1].Extra["note"]))

	cats, err := a.Categories()
	require.NoError(t, err)
	assert.Equal(t, []string{"bills", "food", "other"}, cats)
}

func TestWriteLedger_ReplacesPreviousSnapshot(t *testing.T) {
	a := openTestArchive(t)
	require.NoError(t, a.WriteLedger(sampleTransactions(), []string{"food"}, nil))
	require.NoError(t, a.WriteLedger(sampleTransactions()[:1], []string{"other"}, nil))

	n, err := a.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	exports, err := a.Exports()
	require.NoError(t, err)
	require.Len(t, exports, 2)
	assert.Equal(t, 1, exports[0].Transactions)
	assert.Equal(t, 100.0, exports[0].TotalIncome)
	assert.Zero(t, exports[0].TotalExpense)
	assert.Equal(t, 3, exports[1].Transactions)
	assert.Equal(t, 50.0, exports[1].TotalExpense)
	assert.False(t, exports[0].At.IsZero())
}

func TestWriteLedger_RejectsInvalidRowAtomically(t *testing.T) {
	a := openTestArchive(t)
	require.NoError(t, a.WriteLedger(sampleTransactions(), []string{"food"}, nil))

	bad := []model.Transaction{
		{ID: "ok", Type: model.Expense, Amount: 1, Category: "food", Description: "x", Date: "2024-01-01"},
		{ID: "neg", Type: model.Expense, Amount: -1, Category: "food", Description: "x", Date: "2024-01-01"},
	}
	require.Error(t, a.WriteLedger(bad, []string{"food"}, nil))

	n, err := a.Count()
	require.NoError(t, err)
	assert.Equal(t, 3, n, "failed write must leave the previous snapshot")
}
