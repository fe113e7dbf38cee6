package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/fintrack/internal/cli"
	"github.com/theirongolddev/fintrack/internal/model"
	"github.com/theirongolddev/fintrack/internal/tui/components"
	"github.com/theirongolddev/fintrack/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

const (
	compactWidth = 100
	chartMonths  = 12
)

func (a App) isCompactLayout() bool {
	return a.width < compactWidth
}

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active
	s := a.summary
	var b strings.Builder

	// Row 1: Metric cards
	cards := []components.Metric{
		{Label: "Income", Value: cli.FormatMoney(s.TotalIncome), Color: t.Income},
		{Label: "Expenses", Value: cli.FormatMoney(s.TotalExpense), Color: t.Expense},
		{Label: "Net Balance", Value: cli.FormatSignedMoney(s.NetBalance), Color: t.Balance(s.NetBalance)},
		{Label: "Transactions", Value: cli.FormatNumber(int64(s.Transactions)), Note: fmt.Sprintf("%d categories", len(a.categories))},
	}
	if a.isCompactLayout() {
		b.WriteString(components.MetricCardRow(cards[:2], cw))
		b.WriteString("\n")
		b.WriteString(components.MetricCardRow(cards[2:], cw))
	} else {
		b.WriteString(components.MetricCardRow(cards, cw))
	}
	b.WriteString("\n")

	// Row 2: Breakdown + monthly chart
	breakdownW, chartW := cw, cw
	if !a.isCompactLayout() {
		halves := components.LayoutRow(cw, 2)
		breakdownW, chartW = halves[0], halves[1]
	}

	breakdown := components.ContentCard("Expenses by Category",
		renderBreakdown(s.ExpenseByCategory, components.CardInnerWidth(breakdownW)),
		breakdownW)

	var chart string
	if len(a.monthly) > 0 {
		labels, series := monthlySeries(a.monthly, chartMonths)
		chart = components.ContentCard(
			fmt.Sprintf("Income vs Expenses (%dm)", len(labels)),
			components.GroupedBarChart(labels, series, components.CardInnerWidth(chartW), 8),
			chartW,
		)
	}

	switch {
	case chart == "":
		b.WriteString(components.ContentCard("Expenses by Category",
			renderBreakdown(s.ExpenseByCategory, components.CardInnerWidth(cw)), cw))
	case a.isCompactLayout():
		b.WriteString(breakdown)
		b.WriteString("\n")
		b.WriteString(chart)
	default:
		b.WriteString(components.CardRow([]string{breakdown, chart}))
	}

	return b.String()
}

// renderBreakdown lists one share bar per category with expenses.
func renderBreakdown(shares []model.CategoryShare, innerW int) string {
	t := theme.Active
	if len(shares) == 0 {
		return lipgloss.NewStyle().
			Foreground(t.TextDim).
			Background(t.Surface).
			Render("No expenses recorded.")
	}

	labelW := 12
	for _, sh := range shares {
		if n := len([]rune(model.DisplayCategory(sh.Category))); n > labelW {
			labelW = n
		}
	}
	if labelW > innerW/3 {
		labelW = innerW / 3
	}

	amountW := 0
	for _, sh := range shares {
		if n := len(cli.FormatMoney(sh.Amount)); n > amountW {
			amountW = n
		}
	}

	// label + space + bar + space + "100.0%" + two spaces + amount
	barW := innerW - labelW - 1 - 1 - 6 - 2 - amountW
	if barW < 4 {
		barW = 4
	}

	lines := make([]string, 0, len(shares))
	for _, sh := range shares {
		lines = append(lines, components.ShareBar(
			model.DisplayCategory(sh.Category),
			sh.Percent,
			cli.FormatMoney(sh.Amount),
			labelW, barW))
	}
	return strings.Join(lines, "\n")
}

// monthlySeries returns income and expense series for the most recent n
// months, oldest first, with short month labels.
func monthlySeries(months []model.MonthTotal, n int) ([]string, []components.Series) {
	t := theme.Active
	if len(months) > n {
		months = months[len(months)-n:]
	}
	labels := make([]string, len(months))
	income := make([]float64, len(months))
	expense := make([]float64, len(months))
	for i, m := range months {
		labels[i] = monthLabel(m.Month)
		income[i] = m.Income
		expense[i] = m.Expense
	}
	return labels, []components.Series{
		{Name: "Income", Values: income, Color: t.Income},
		{Name: "Expenses", Values: expense, Color: t.Expense},
	}
}

var monthNames = [...]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// monthLabel turns "2024-03" into "Mar".
func monthLabel(month string) string {
	var year, mon int
	if _, err := fmt.Sscanf(month, "%d-%d", &year, &mon); err != nil || mon < 1 || mon > 12 {
		return month
	}
	return monthNames[mon-1]
}
