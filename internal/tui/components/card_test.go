package components

import (
	"strings"
	"testing"

	"github.com/theirongolddev/fintrack/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func init() {
	// Force TrueColor output so ANSI codes are generated in tests
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestLayoutRow(t *testing.T) {
	got := LayoutRow(10, 3)
	want := []int{4, 3, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("LayoutRow(10,3) = %v, want %v", got, want)
		}
	}
	if LayoutRow(10, 0) != nil {
		t.Error("LayoutRow with n=0 should be nil")
	}
}

func TestCardRowPadsToTallest(t *testing.T) {
	theme.SetActive("flexoki-dark")

	shortCard := ContentCard("Short", "Content", 22)
	tallCard := ContentCard("Tall", "Line 1\nLine 2\nLine 3\nLine 4\nLine 5", 22)

	shortLines := len(strings.Split(shortCard, "\n"))
	tallLines := len(strings.Split(tallCard, "\n"))
	if shortLines >= tallLines {
		t.Fatal("short card should be shorter than tall card")
	}

	joined := CardRow([]string{tallCard, shortCard})
	lines := strings.Split(joined, "\n")
	if len(lines) != tallLines {
		t.Fatalf("joined height = %d, want %d", len(lines), tallLines)
	}

	// Padding below the short card must carry background styling.
	for i := shortLines; i < len(lines); i++ {
		if !strings.Contains(lines[i], "\x1b[") {
			t.Errorf("line %d has no ANSI styling: %q", i, lines[i])
		}
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 44 {
			t.Errorf("line %d width = %d, want 44", i, w)
		}
	}
}

func TestMetricCardRowWidth(t *testing.T) {
	theme.SetActive("terminal")
	row := MetricCardRow([]Metric{
		{Label: "Income", Value: "$100.00", Color: theme.Active.Income},
		{Label: "Expenses", Value: "$50.00"},
		{Label: "Net", Value: "$50.00", Note: "this ledger"},
	}, 61)
	for i, line := range strings.Split(row, "\n") {
		if w := lipgloss.Width(line); w != 61 {
			t.Errorf("line %d width = %d, want 61", i, w)
		}
	}
}

func TestTabVisualWidth(t *testing.T) {
	for _, tab := range Tabs {
		if got, want := TabVisualWidth(tab, true), len(tab.Name)+2; got != want {
			t.Errorf("active %s width = %d, want %d", tab.Name, got, want)
		}
		if got, want := TabVisualWidth(tab, false), len(tab.Name)+5; got != want {
			t.Errorf("inactive %s width = %d, want %d", tab.Name, got, want)
		}
	}
	if TabIdxByKey('2') != 1 || TabIdxByKey('z') != -1 {
		t.Error("TabIdxByKey mismatch")
	}
}

func TestStatusBarWidth(t *testing.T) {
	theme.SetActive("flexoki-dark")
	bar := RenderStatusBar(60, "[?]help [q]uit", "Transaction deleted.", false)
	if w := lipgloss.Width(bar); w != 60 {
		t.Errorf("status bar width = %d, want 60", w)
	}
	long := RenderStatusBar(30, "[?]help [q]uit", strings.Repeat("x", 80), true)
	if w := lipgloss.Width(long); w > 30 {
		t.Errorf("status bar overflow: width %d", w)
	}
}

func TestShareBarColor(t *testing.T) {
	theme.SetActive("flexoki-dark")
	if ColorForShare(60) != theme.Active.Expense {
		t.Error("large share should be red")
	}
	if ColorForShare(5) != theme.Active.Accent {
		t.Error("small share should use accent")
	}
	out := ShareBar("Food", 50, "$50.00", 12, 20)
	if !strings.Contains(out, "50.0%") || !strings.Contains(out, "$50.00") {
		t.Errorf("ShareBar missing parts: %q", out)
	}
}
