// Package spreadsheet exports the ledger as an XLSX workbook.
package spreadsheet

import (
	"fmt"
	"io"

	"github.com/theirongolddev/fintrack/internal/model"

	"github.com/xuri/excelize/v2"
)

// Sheet names in the exported workbook.
const (
	TransactionsSheet = "Transactions"
	SummarySheet      = "Summary"
)

var transactionHeaders = []any{"ID", "Date", "Type", "Category", "Description", "Amount"}

// Write renders txs and their summary as a workbook to w. txs are written
// in the given order.
func Write(w io.Writer, txs []model.Transaction, s model.Summary) error {
	f, err := build(txs, s)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

// WriteFile saves the workbook to path, replacing any existing file.
func WriteFile(path string, txs []model.Transaction, s model.Summary) error {
	f, err := build(txs, s)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook %s: %w", path, err)
	}
	return nil
}

func build(txs []model.Transaction, s model.Summary) (*excelize.File, error) {
	f := excelize.NewFile()

	// NewFile starts with one sheet named "Sheet1".
	if err := f.SetSheetName("Sheet1", TransactionsSheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("naming sheet: %w", err)
	}

	styles, err := newStyles(f)
	if err != nil {
		f.Close()
		return nil, err
	}

	if err := writeTransactions(f, styles, txs); err != nil {
		f.Close()
		return nil, err
	}
	if err := writeSummary(f, styles, s); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

type styleSet struct {
	header int
	money  int
}

func newStyles(f *excelize.File) (styleSet, error) {
	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return styleSet{}, fmt.Errorf("creating header style: %w", err)
	}
	money, err := f.NewStyle(&excelize.Style{NumFmt: 4}) // #,##0.00
	if err != nil {
		return styleSet{}, fmt.Errorf("creating money style: %w", err)
	}
	return styleSet{header: header, money: money}, nil
}

func writeTransactions(f *excelize.File, st styleSet, txs []model.Transaction) error {
	sheet := TransactionsSheet
	if err := f.SetSheetRow(sheet, "A1", &transactionHeaders); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	if err := f.SetCellStyle(sheet, "A1", "F1", st.header); err != nil {
		return err
	}

	for i, t := range txs {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{t.ID, t.Date, string(t.Type), model.DisplayCategory(t.Category), t.Description, t.Amount}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}

	if len(txs) > 0 {
		last, _ := excelize.CoordinatesToCellName(6, len(txs)+1)
		if err := f.SetCellStyle(sheet, "F2", last, st.money); err != nil {
			return err
		}
	}

	widths := map[string]float64{"A": 38, "B": 12, "C": 10, "D": 16, "E": 36, "F": 14}
	for col, w := range widths {
		if err := f.SetColWidth(sheet, col, col, w); err != nil {
			return err
		}
	}
	return nil
}

func writeSummary(f *excelize.File, st styleSet, s model.Summary) error {
	sheet := SummarySheet
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("creating sheet: %w", err)
	}

	totals := [][]any{
		{"Total Income", s.TotalIncome},
		{"Total Expenses", s.TotalExpense},
		{"Net Balance", s.NetBalance},
		{"Transactions", s.Transactions},
	}
	for i, row := range totals {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("writing totals: %w", err)
		}
	}
	if err := f.SetCellStyle(sheet, "A1", "A4", st.header); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "B1", "B3", st.money); err != nil {
		return err
	}

	// Breakdown starts after one blank row.
	const start = 6
	header := []any{"Category", "Amount", "Share %"}
	if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", start), &header); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, fmt.Sprintf("A%d", start), fmt.Sprintf("C%d", start), st.header); err != nil {
		return err
	}
	for i, c := range s.ExpenseByCategory {
		row := []any{model.DisplayCategory(c.Category), c.Amount, c.Percent}
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", start+1+i), &row); err != nil {
			return fmt.Errorf("writing breakdown: %w", err)
		}
	}
	if n := len(s.ExpenseByCategory); n > 0 {
		if err := f.SetCellStyle(sheet, fmt.Sprintf("B%d", start+1), fmt.Sprintf("C%d", start+n), st.money); err != nil {
			return err
		}
	}

	return f.SetColWidth(sheet, "A", "A", 18)
}
