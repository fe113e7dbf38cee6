package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/fintrack/internal/cli"
	"github.com/theirongolddev/fintrack/internal/model"
	"github.com/theirongolddev/fintrack/internal/tui/components"
	"github.com/theirongolddev/fintrack/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// transactionsState holds the transactions tab state. An empty category or
// type means no filter on that field.
type transactionsState struct {
	cursor   int
	offset   int
	category string
	typ      model.TransactionType
}

func (a App) updateTransactionsKeys(key string) (App, tea.Cmd, bool) {
	ts := &a.txState
	switch key {
	case "j", "down":
		ts.cursor = clamp(ts.cursor+1, 0, len(a.rows)-1)
	case "k", "up":
		ts.cursor = clamp(ts.cursor-1, 0, len(a.rows)-1)
	case "g", "home":
		ts.cursor = 0
		ts.offset = 0
	case "G", "end":
		ts.cursor = clamp(len(a.rows)-1, 0, len(a.rows)-1)
	case "f":
		ts.category = nextCategoryFilter(ts.category, a.categories)
		ts.cursor, ts.offset = 0, 0
		a.refresh()
	case "t":
		ts.typ = nextTypeFilter(ts.typ)
		ts.cursor, ts.offset = 0, 0
		a.refresh()
	case "c":
		ts.category, ts.typ = "", ""
		ts.cursor, ts.offset = 0, 0
		a.refresh()
	case "a":
		vals := NewTransactionValues(a.cfg.DefaultTransactionType(), a.categories)
		next, cmd := a.openForm(
			NewTransactionForm("Add Transaction", "", vals, a.categories),
			pendingAction{kind: actionAdd, tx: vals},
		)
		return next.(App), cmd, true
	case "e", "enter":
		sel, ok := a.selectedTransaction()
		if !ok {
			return a, nil, true
		}
		vals := ValuesFromTransaction(sel)
		next, cmd := a.openForm(
			NewTransactionForm("Edit Transaction", "ID "+sel.ShortID(), vals, a.categories),
			pendingAction{kind: actionEdit, id: sel.ID, tx: vals},
		)
		return next.(App), cmd, true
	case "d", "delete":
		sel, ok := a.selectedTransaction()
		if !ok {
			return a, nil, true
		}
		confirmed := new(bool)
		desc := fmt.Sprintf("%s %s · %s · %s",
			sel.Type, cli.FormatMoney(sel.Amount), model.DisplayCategory(sel.Category), sel.Date)
		next, cmd := a.openForm(
			NewConfirmForm("Delete this transaction?", desc, confirmed),
			pendingAction{kind: actionDelete, id: sel.ID, confirm: confirmed},
		)
		return next.(App), cmd, true
	default:
		return a, nil, false
	}
	return a, nil, true
}

func (a App) selectedTransaction() (model.Transaction, bool) {
	if a.txState.cursor < 0 || a.txState.cursor >= len(a.rows) {
		return model.Transaction{}, false
	}
	return a.rows[a.txState.cursor], true
}

// nextCategoryFilter cycles "" -> first category -> ... -> last -> "".
func nextCategoryFilter(current string, categories []string) string {
	if len(categories) == 0 {
		return ""
	}
	if current == "" {
		return categories[0]
	}
	for i, c := range categories {
		if c == current {
			if i+1 < len(categories) {
				return categories[i+1]
			}
			return ""
		}
	}
	return ""
}

// nextTypeFilter cycles "" -> Expense -> Income -> "".
func nextTypeFilter(current model.TransactionType) model.TransactionType {
	switch current {
	case "":
		return model.Expense
	case model.Expense:
		return model.Income
	default:
		return ""
	}
}

func (a App) renderTransactionsTab(cw, h int) string {
	t := theme.Active
	ts := a.txState

	if len(a.rows) == 0 {
		msg := "No transactions yet. Press [a] to add one."
		if ts.category != "" || ts.typ != "" {
			msg = "No transactions match the current filter. Press [c] to clear it."
		}
		return components.ContentCard("Transactions",
			lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).Render(msg), cw)
	}

	innerW := components.CardInnerWidth(cw)

	const (
		dateW   = 10
		typeW   = 7
		amountW = 13
		catW    = 14
	)
	descW := innerW - dateW - typeW - amountW - catW - 4
	if descW < 8 {
		descW = 8
	}

	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	selectedBg := t.SurfaceHover

	var body strings.Builder
	body.WriteString(headerStyle.Render(fmt.Sprintf("%-*s %-*s %*s %-*s %-*s",
		dateW, "Date", typeW, "Type", amountW, "Amount", catW, "Category", descW, "Description")))
	body.WriteString("\n")
	body.WriteString(mutedStyle.Render(strings.Repeat("─", innerW)))
	body.WriteString("\n")

	visible := h - 6 // card border (2) + title (1) + header rows (2) + footer (1)
	if visible < 3 {
		visible = 3
	}

	offset := ts.offset
	if ts.cursor < offset {
		offset = ts.cursor
	}
	if ts.cursor >= offset+visible {
		offset = ts.cursor - visible + 1
	}
	end := offset + visible
	if end > len(a.rows) {
		end = len(a.rows)
	}

	for i := offset; i < end; i++ {
		tx := a.rows[i]
		bg := t.Surface
		if i == ts.cursor {
			bg = selectedBg
		}
		cell := lipgloss.NewStyle().Background(bg)
		amountStyle := cell.Foreground(t.ForType(tx.Type == model.Income))
		textStyle := rowStyle.Background(bg)
		if i == ts.cursor {
			textStyle = textStyle.Bold(true)
		}

		line := textStyle.Render(fmt.Sprintf("%-*s ", dateW, tx.Date)) +
			textStyle.Render(fmt.Sprintf("%-*s ", typeW, tx.Type)) +
			amountStyle.Render(fmt.Sprintf("%*s ", amountW, cli.FormatMoney(tx.Amount))) +
			textStyle.Render(fmt.Sprintf("%-*s ", catW, truncStr(model.DisplayCategory(tx.Category), catW))) +
			textStyle.Render(fmt.Sprintf("%-*s", descW, truncStr(tx.Description, descW)))
		body.WriteString(line)
		body.WriteString("\n")
	}

	footer := fmt.Sprintf("%d-%d of %d", offset+1, end, len(a.rows))
	if sel, ok := a.selectedTransaction(); ok {
		footer = fmt.Sprintf("ID %s  ·  %s", sel.ShortID(), footer)
	}
	body.WriteString(mutedStyle.Render(footer))

	return components.ContentCard("Transactions", body.String(), cw)
}
