package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/fintrack/internal/model"
	"github.com/theirongolddev/fintrack/internal/tui/components"
	"github.com/theirongolddev/fintrack/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type categoriesState struct {
	cursor int
}

func (a App) updateCategoriesKeys(key string) (App, tea.Cmd, bool) {
	switch key {
	case "j", "down":
		a.catState.cursor = clamp(a.catState.cursor+1, 0, len(a.categories)-1)
	case "k", "up":
		a.catState.cursor = clamp(a.catState.cursor-1, 0, len(a.categories)-1)
	case "a":
		name := new(string)
		next, cmd := a.openForm(NewCategoryForm(name),
			pendingAction{kind: actionAddCategory, name: name})
		return next.(App), cmd, true
	case "d", "delete":
		if a.catState.cursor >= len(a.categories) {
			return a, nil, true
		}
		c := a.categories[a.catState.cursor]
		if n := a.ledger.CategoryUsage(c); n > 0 {
			a.setFlash(fmt.Sprintf("Category '%s' is used by %d transaction(s). Update or delete related transactions first.",
				model.DisplayCategory(c), n), true)
			return a, nil, true
		}
		confirmed := new(bool)
		next, cmd := a.openForm(
			NewConfirmForm(fmt.Sprintf("Remove category '%s'?", model.DisplayCategory(c)), "", confirmed),
			pendingAction{kind: actionRemoveCategory, category: c, confirm: confirmed},
		)
		return next.(App), cmd, true
	default:
		return a, nil, false
	}
	return a, nil, true
}

func (a App) renderCategoriesTab(cw, h int) string {
	t := theme.Active

	if len(a.categories) == 0 {
		return components.ContentCard("Categories",
			lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).Render("No categories. Press [a] to add one."), cw)
	}

	innerW := components.CardInnerWidth(cw)
	nameW := innerW - 16
	if nameW < 10 {
		nameW = 10
	}

	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selectedStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceHover).Bold(true)
	countStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	selectedCountStyle := countStyle.Background(t.SurfaceHover)

	visible := h - 3
	if visible < 3 {
		visible = 3
	}
	start := 0
	if a.catState.cursor >= visible {
		start = a.catState.cursor - visible + 1
	}
	end := start + visible
	if end > len(a.categories) {
		end = len(a.categories)
	}

	var body strings.Builder
	for i := start; i < end; i++ {
		c := a.categories[i]
		n := a.ledger.CategoryUsage(c)
		name := fmt.Sprintf("%-*s", nameW, truncStr(model.DisplayCategory(c), nameW))
		count := fmt.Sprintf("%15s", fmt.Sprintf("%d transaction%s", n, plural(n)))
		if i == a.catState.cursor {
			body.WriteString(selectedStyle.Render(name) + selectedCountStyle.Render(" "+count))
		} else {
			body.WriteString(rowStyle.Render(name) + countStyle.Render(" "+count))
		}
		if i < end-1 {
			body.WriteString("\n")
		}
	}

	return components.ContentCard(fmt.Sprintf("Categories (%d)", len(a.categories)), body.String(), cw)
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
