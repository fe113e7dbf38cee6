package tui

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/theirongolddev/fintrack/internal/cli"
	"github.com/theirongolddev/fintrack/internal/config"
	"github.com/theirongolddev/fintrack/internal/ledger"
	"github.com/theirongolddev/fintrack/internal/model"
	"github.com/theirongolddev/fintrack/internal/tui/components"
	"github.com/theirongolddev/fintrack/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
)

type memStorage struct {
	txs  []model.Transaction
	cats []string
}

func (m *memStorage) LoadTransactions() ([]model.Transaction, bool, error) { return m.txs, false, nil }
func (m *memStorage) LoadCategories() ([]string, error)                     { return m.cats, nil }
func (m *memStorage) SaveTransactions(txs []model.Transaction) error {
	m.txs = txs
	return nil
}
func (m *memStorage) SaveCategories(cats []string) error {
	m.cats = cats
	return nil
}

func newTestApp(t *testing.T) App {
	t.Helper()
	st := &memStorage{cats: []string{"Food", "Bills", "Salary"}}
	l, err := ledger.Open(st)
	if err != nil {
		t.Fatal(err)
	}
	inputs := []ledger.TransactionInput{
		{Type: model.Income, Amount: 1000, Category: "salary", Description: "Pay", Date: "2024-03-01"},
		{Type: model.Expense, Amount: 50, Category: "food", Description: "Groceries", Date: "2024-03-02"},
		{Type: model.Expense, Amount: 120, Category: "bills", Description: "Power", Date: "2024-03-03"},
	}
	for _, in := range inputs {
		if _, err := l.AddTransaction(in); err != nil {
			t.Fatal(err)
		}
	}
	return NewApp(l, config.DefaultConfig(), "", false)
}

func press(t *testing.T, a App, key string) App {
	t.Helper()
	var msg tea.KeyMsg
	switch key {
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	next, _ := a.Update(msg)
	return next.(App)
}

func TestTabAtXMatchesTabWidths(t *testing.T) {
	n := len(components.Tabs)
	for active := 0; active < n; active++ {
		a := App{activeTab: active}
		pos := 0

		for i, tab := range components.Tabs {
			w := len(tab.Name) + 2 // horizontal padding of the active tab
			if i != active {
				w = len(tab.Name) + 5 // " Name[k] "
			}
			x := pos + w/2
			if got := a.tabAtX(x); got != i {
				t.Fatalf("active=%d x=%d -> tab=%d, want %d", active, x, got, i)
			}
			pos += w
			if i < n-1 {
				pos++ // separator
			}
		}
		if got := a.tabAtX(pos + 5); got != -1 {
			t.Errorf("active=%d x past tabs -> %d, want -1", active, got)
		}
	}
}

func TestNumberKeysSwitchTabs(t *testing.T) {
	a := newTestApp(t)
	a = press(t, a, "2")
	if a.activeTab != tabOverview {
		t.Fatalf("activeTab = %d, want overview", a.activeTab)
	}
	a = press(t, a, "3")
	if a.activeTab != tabCategories {
		t.Fatalf("activeTab = %d, want categories", a.activeTab)
	}
}

func TestRowsAreNewestFirst(t *testing.T) {
	a := newTestApp(t)
	if len(a.rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(a.rows))
	}
	if a.rows[0].Date != "2024-03-03" || a.rows[2].Date != "2024-03-01" {
		t.Errorf("rows not sorted newest first: %s .. %s", a.rows[0].Date, a.rows[2].Date)
	}
}

func TestTypeFilterCycles(t *testing.T) {
	a := newTestApp(t)

	a = press(t, a, "t")
	if a.txState.typ != model.Expense || len(a.rows) != 2 {
		t.Fatalf("after first t: typ=%q rows=%d", a.txState.typ, len(a.rows))
	}
	a = press(t, a, "t")
	if a.txState.typ != model.Income || len(a.rows) != 1 {
		t.Fatalf("after second t: typ=%q rows=%d", a.txState.typ, len(a.rows))
	}
	a = press(t, a, "t")
	if a.txState.typ != "" || len(a.rows) != 3 {
		t.Fatalf("after third t: typ=%q rows=%d", a.txState.typ, len(a.rows))
	}
}

func TestCategoryFilterCycles(t *testing.T) {
	a := newTestApp(t)

	// Categories are sorted: bills, food, salary.
	a = press(t, a, "f")
	if a.txState.category != "bills" || len(a.rows) != 1 {
		t.Fatalf("category=%q rows=%d", a.txState.category, len(a.rows))
	}
	a = press(t, a, "f")
	if a.txState.category != "food" {
		t.Fatalf("category=%q, want food", a.txState.category)
	}
	a = press(t, a, "c")
	if a.txState.category != "" || len(a.rows) != 3 {
		t.Fatalf("after clear: category=%q rows=%d", a.txState.category, len(a.rows))
	}
}

func TestNextCategoryFilterWrapsToAll(t *testing.T) {
	cats := []string{"a", "b"}
	if got := nextCategoryFilter("b", cats); got != "" {
		t.Errorf("nextCategoryFilter(b) = %q, want empty", got)
	}
	if got := nextCategoryFilter("gone", cats); got != "" {
		t.Errorf("nextCategoryFilter(gone) = %q, want empty", got)
	}
	if got := nextCategoryFilter("", nil); got != "" {
		t.Errorf("nextCategoryFilter with no categories = %q", got)
	}
}

func TestEscCancelsForm(t *testing.T) {
	a := newTestApp(t)
	a = press(t, a, "a")
	if a.form == nil || a.pending.kind != actionAdd {
		t.Fatal("expected add form to open")
	}
	a = press(t, a, "esc")
	if a.form != nil {
		t.Fatal("form still open after esc")
	}
	if a.flash.text != "Cancelled." {
		t.Errorf("flash = %q", a.flash.text)
	}
	if len(a.rows) != 3 {
		t.Errorf("rows = %d, cancel must not change the ledger", len(a.rows))
	}
}

func TestCompleteAdd(t *testing.T) {
	a := newTestApp(t)
	vals := &TransactionValues{
		Type: model.Income, Amount: "100", Category: "salary", Description: "Bonus", Date: "2024-04-01",
	}
	a.pending = pendingAction{kind: actionAdd, tx: vals}
	a.completePending()

	if a.flash.isErr {
		t.Fatalf("unexpected error flash: %s", a.flash.text)
	}
	if a.flash.text != "'Income' of $100.00 added!" {
		t.Errorf("flash = %q", a.flash.text)
	}
	if len(a.rows) != 4 || a.rows[0].Description != "Bonus" {
		t.Errorf("new transaction not listed first: %+v", a.rows[0])
	}
	if a.summary.TotalIncome != 1100 {
		t.Errorf("summary not refreshed: income = %v", a.summary.TotalIncome)
	}
}

func TestCompleteAddInvalidAmount(t *testing.T) {
	a := newTestApp(t)
	vals := &TransactionValues{
		Type: model.Expense, Amount: "-5", Category: "food", Description: "x", Date: "2024-04-01",
	}
	a.pending = pendingAction{kind: actionAdd, tx: vals}
	a.completePending()

	if !a.flash.isErr {
		t.Fatalf("expected error flash, got %q", a.flash.text)
	}
	if len(a.rows) != 3 {
		t.Errorf("rows = %d, want 3", len(a.rows))
	}
}

func TestCompleteEdit(t *testing.T) {
	a := newTestApp(t)
	sel, _ := a.selectedTransaction()
	vals := ValuesFromTransaction(sel)
	vals.Amount = "99.5"

	a.pending = pendingAction{kind: actionEdit, id: sel.ID, tx: vals}
	a.completePending()

	if a.flash.text != "Transaction updated." {
		t.Fatalf("flash = %q", a.flash.text)
	}
	got, ok := a.ledger.Get(sel.ID)
	if !ok || got.Amount != 99.5 {
		t.Errorf("edited transaction = %+v", got)
	}
}

func TestCompleteDelete(t *testing.T) {
	a := newTestApp(t)
	sel, _ := a.selectedTransaction()

	no := false
	a.pending = pendingAction{kind: actionDelete, id: sel.ID, confirm: &no}
	a.completePending()
	if len(a.rows) != 3 || a.flash.text != "Deletion cancelled." {
		t.Fatalf("declined delete changed ledger: rows=%d flash=%q", len(a.rows), a.flash.text)
	}

	yes := true
	a.pending = pendingAction{kind: actionDelete, id: sel.ID, confirm: &yes}
	a.completePending()
	if len(a.rows) != 2 || a.flash.text != "Transaction deleted." {
		t.Fatalf("rows=%d flash=%q", len(a.rows), a.flash.text)
	}
	if _, ok := a.ledger.Get(sel.ID); ok {
		t.Error("deleted transaction still present")
	}
}

func TestRemoveCategoryInUse(t *testing.T) {
	a := newTestApp(t)
	a = press(t, a, "3")
	a = press(t, a, "d") // cursor 0 is "bills", used once

	if a.form != nil {
		t.Fatal("confirm form opened for a category in use")
	}
	if !a.flash.isErr || !strings.Contains(a.flash.text, "Update or delete related transactions first.") {
		t.Errorf("flash = %q", a.flash.text)
	}
}

func TestCategoryAddAndRemove(t *testing.T) {
	a := newTestApp(t)

	name := "Travel"
	a.pending = pendingAction{kind: actionAddCategory, name: &name}
	a.completePending()
	if a.flash.text != "Category 'Travel' added." {
		t.Fatalf("flash = %q", a.flash.text)
	}
	if !a.ledger.HasCategory("travel") {
		t.Fatal("category not added")
	}

	yes := true
	a.pending = pendingAction{kind: actionRemoveCategory, category: "travel", confirm: &yes}
	a.completePending()
	if a.flash.text != "Category 'Travel' removed." {
		t.Fatalf("flash = %q", a.flash.text)
	}
	if a.ledger.HasCategory("travel") {
		t.Error("category still present")
	}
}

func TestViewAfterResize(t *testing.T) {
	a := newTestApp(t)
	next, _ := a.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	a = next.(App)

	for _, key := range []string{"1", "2", "3"} {
		a = press(t, a, key)
		if v := a.View(); !strings.Contains(v, "Transactions") {
			t.Errorf("tab %s view missing tab bar", key)
		}
	}

	next, _ = a.Update(tea.WindowSizeMsg{Width: 40, Height: 20})
	a = next.(App)
	if v := a.View(); !strings.Contains(v, "Terminal too narrow") {
		t.Error("narrow terminal message not shown")
	}
}

func TestMonthLabel(t *testing.T) {
	tests := map[string]string{
		"2024-01": "Jan",
		"2024-12": "Dec",
		"bogus":   "bogus",
		"2024-13": "2024-13",
	}
	for in, want := range tests {
		if got := monthLabel(in); got != want {
			t.Errorf("monthLabel(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMonthlySeriesKeepsRecent(t *testing.T) {
	months := []model.MonthTotal{
		{Month: "2024-01", Income: 10, Expense: 1},
		{Month: "2024-02", Income: 20, Expense: 2},
		{Month: "2024-03", Income: 30, Expense: 3},
	}
	labels, series := monthlySeries(months, 2)
	if len(labels) != 2 || labels[0] != "Feb" || labels[1] != "Mar" {
		t.Fatalf("labels = %v", labels)
	}
	if len(series) != 2 || series[0].Values[1] != 30 || series[1].Values[0] != 2 {
		t.Errorf("series = %+v", series)
	}
}

func TestSetupFormSavesConfig(t *testing.T) {
	t.Cleanup(func() {
		theme.SetActive(theme.FlexokiDark.Name)
		cli.CurrencySymbol = "$"
	})

	st := &memStorage{}
	l, err := ledger.Open(st)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "config.toml")
	a := NewApp(l, config.DefaultConfig(), path, true)
	if a.form == nil || a.pending.kind != actionSetup {
		t.Fatal("setup form not shown on first run")
	}

	a.setupVals.Currency = "€"
	a.setupVals.Theme = "tokyo-night"
	a.form = nil
	a.completePending()

	if a.needSetup || a.flash.isErr {
		t.Fatalf("needSetup=%v flash=%q", a.needSetup, a.flash.text)
	}
	cfg, err := config.LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.General.CurrencySymbol != "€" || cfg.Appearance.Theme != "tokyo-night" {
		t.Errorf("saved config = %+v %+v", cfg.General, cfg.Appearance)
	}
	if theme.Active.Name != "tokyo-night" || cli.CurrencySymbol != "€" {
		t.Errorf("active theme %q currency %q", theme.Active.Name, cli.CurrencySymbol)
	}
}
