package components

import (
	"github.com/theirongolddev/fintrack/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar: key hints on the left and
// the last result message on the right, red when isErr is set.
func RenderStatusBar(width int, hints, message string, isErr bool) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	msgColor := t.Income
	if isErr {
		msgColor = t.Expense
	}
	msgStyle := lipgloss.NewStyle().
		Foreground(msgColor).
		Background(t.Surface).
		Bold(true)

	left := " " + hints
	right := ""
	if message != "" {
		right = message + " "
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		avail := width - lipgloss.Width(left) - 2
		if avail < 0 {
			avail = 0
		}
		right = truncate(right, avail)
		padding = width - lipgloss.Width(left) - lipgloss.Width(right)
		if padding < 0 {
			padding = 0
		}
	}

	spaces := make([]byte, padding)
	for i := range spaces {
		spaces[i] = ' '
	}

	return style.Render(left+string(spaces)) + msgStyle.Render(right)
}

func truncate(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit-1]) + "…"
}
