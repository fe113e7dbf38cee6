// Package tui provides the interactive Bubble Tea shell for fintrack.
package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/fintrack/internal/cli"
	"github.com/theirongolddev/fintrack/internal/config"
	"github.com/theirongolddev/fintrack/internal/ledger"
	"github.com/theirongolddev/fintrack/internal/model"
	"github.com/theirongolddev/fintrack/internal/tui/components"
	"github.com/theirongolddev/fintrack/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

const (
	tabTransactions = iota
	tabOverview
	tabCategories
)

const (
	minTerminalWidth = 60
	maxContentWidth  = 140
	maxFormWidth     = 70
	minContentHeight = 5
)

type actionKind int

const (
	actionNone actionKind = iota
	actionAdd
	actionEdit
	actionDelete
	actionAddCategory
	actionRemoveCategory
	actionSetup
)

// pendingAction is what the open form will do once it completes. Values
// live behind pointers so the form keeps writing to the same memory while
// App is copied between updates.
type pendingAction struct {
	kind     actionKind
	id       string
	category string
	tx       *TransactionValues
	confirm  *bool
	name     *string
}

type flashMessage struct {
	text  string
	isErr bool
}

// App is the root Bubble Tea model.
type App struct {
	ledger  *ledger.Ledger
	cfg     config.Config
	cfgPath string

	// Derived from the ledger on every refresh
	rows       []model.Transaction
	summary    model.Summary
	monthly    []model.MonthTotal
	categories []string

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	txState  transactionsState
	catState categoriesState

	form    *huh.Form
	pending pendingAction
	flash   flashMessage

	needSetup bool
	setupVals *SetupValues
}

// NewApp creates the TUI model over an opened ledger. When needSetup is set
// the setup wizard runs before the main view.
func NewApp(l *ledger.Ledger, cfg config.Config, cfgPath string, needSetup bool) App {
	a := App{
		ledger:    l,
		cfg:       cfg,
		cfgPath:   cfgPath,
		needSetup: needSetup,
	}
	if needSetup {
		a.setupVals = SetupValuesFrom(cfg)
		a.form = NewSetupForm(a.setupVals, cfgPath)
		a.pending = pendingAction{kind: actionSetup}
	}
	a.refresh()
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.EnableMouseCellMotion}
	if a.form != nil {
		cmds = append(cmds, a.form.Init())
	}
	return tea.Batch(cmds...)
}

// refresh recomputes every derived view of the ledger and clamps cursors.
func (a *App) refresh() {
	a.categories = a.ledger.Categories()
	if a.txState.category != "" && !a.ledger.HasCategory(a.txState.category) {
		a.txState.category = ""
	}

	a.rows = a.ledger.ListTransactions(ledger.Filter{
		Category: a.txState.category,
		Type:     a.txState.typ,
	})
	a.summary = a.ledger.Summarize()
	a.monthly = a.ledger.MonthlyTotals()

	a.txState.cursor = clamp(a.txState.cursor, 0, len(a.rows)-1)
	a.catState.cursor = clamp(a.catState.cursor, 0, len(a.categories)-1)
}

func (a *App) setFlash(text string, isErr bool) {
	a.flash = flashMessage{text: text, isErr: isErr}
}

func (a *App) setError(err error) {
	a.setFlash(cli.DescribeError(err), true)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.form != nil {
			a.form = a.form.WithWidth(a.formWidth())
		}
		return a, nil

	case tea.MouseMsg:
		if a.form != nil || a.showHelp {
			return a, nil
		}
		return a.updateMouse(msg)

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		if a.form != nil {
			if key == "esc" {
				return a.abortForm()
			}
			return a.updateForm(msg)
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		switch a.activeTab {
		case tabTransactions:
			if next, cmd, handled := a.updateTransactionsKeys(key); handled {
				return next, cmd
			}
		case tabCategories:
			if next, cmd, handled := a.updateCategoriesKeys(key); handled {
				return next, cmd
			}
		}

		switch key {
		case "q":
			return a, tea.Quit
		case "1", "2", "3":
			if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
				a.activeTab = idx
			}
		case "tab", "right", "l":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		case "shift+tab", "left", "h":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		}
		return a, nil
	}

	// Forward everything else (cursor blinks, etc.) to an open form.
	if a.form != nil {
		return a.updateForm(msg)
	}
	return a, nil
}

func (a App) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		a.moveCursor(-1)
	case tea.MouseButtonWheelDown:
		a.moveCursor(1)
	case tea.MouseButtonLeft:
		if msg.Action == tea.MouseActionPress && msg.Y == 0 {
			if tab := a.tabAtX(msg.X); tab >= 0 {
				a.activeTab = tab
			}
		}
	}
	return a, nil
}

func (a *App) moveCursor(delta int) {
	switch a.activeTab {
	case tabTransactions:
		a.txState.cursor = clamp(a.txState.cursor+delta, 0, len(a.rows)-1)
	case tabCategories:
		a.catState.cursor = clamp(a.catState.cursor+delta, 0, len(a.categories)-1)
	}
}

// openForm shows form and records what to do when it completes.
func (a App) openForm(form *huh.Form, p pendingAction) (tea.Model, tea.Cmd) {
	a.form = form.WithWidth(a.formWidth())
	a.pending = p
	return a, a.form.Init()
}

func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	switch a.form.State {
	case huh.StateCompleted:
		a.form = nil
		a.completePending()
		return a, nil
	case huh.StateAborted:
		return a.abortForm()
	}
	return a, cmd
}

func (a App) abortForm() (tea.Model, tea.Cmd) {
	kind := a.pending.kind
	a.form = nil
	a.pending = pendingAction{}
	if kind == actionSetup {
		a.needSetup = false
		a.setFlash("Setup skipped. Run `fintrack setup` to configure.", false)
		return a, nil
	}
	a.setFlash("Cancelled.", false)
	return a, nil
}

// completePending runs the ledger operation behind a completed form.
func (a *App) completePending() {
	p := a.pending
	a.pending = pendingAction{}
	defer a.refresh()

	switch p.kind {
	case actionAdd:
		in, err := p.tx.Input()
		if err != nil {
			a.setError(err)
			return
		}
		t, err := a.ledger.AddTransaction(in)
		if err != nil {
			a.setError(err)
			return
		}
		a.setFlash(fmt.Sprintf("'%s' of %s added!", t.Type, cli.FormatMoney(t.Amount)), false)

	case actionEdit:
		in, err := p.tx.Input()
		if err != nil {
			a.setError(err)
			return
		}
		if _, err := a.ledger.EditTransaction(p.id, in); err != nil {
			a.setError(err)
			return
		}
		a.setFlash("Transaction updated.", false)

	case actionDelete:
		if p.confirm == nil || !*p.confirm {
			a.setFlash("Deletion cancelled.", false)
			return
		}
		if err := a.ledger.DeleteTransaction(p.id); err != nil {
			a.setError(err)
			return
		}
		a.setFlash("Transaction deleted.", false)

	case actionAddCategory:
		c, err := a.ledger.AddCategory(*p.name)
		if err != nil {
			a.setError(err)
			return
		}
		a.setFlash(fmt.Sprintf("Category '%s' added.", model.DisplayCategory(c)), false)

	case actionRemoveCategory:
		if p.confirm == nil || !*p.confirm {
			a.setFlash("Removal cancelled.", false)
			return
		}
		if err := a.ledger.RemoveCategory(p.category); err != nil {
			a.setError(err)
			return
		}
		a.setFlash(fmt.Sprintf("Category '%s' removed.", model.DisplayCategory(p.category)), false)

	case actionSetup:
		a.needSetup = false
		if err := a.saveSetupConfig(); err != nil {
			a.setFlash(fmt.Sprintf("Could not save config: %s", err), true)
			return
		}
		cli.CurrencySymbol = a.cfg.General.CurrencySymbol
		a.setFlash("Saved to "+a.cfgPath, false)
	}
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) formWidth() int {
	w := a.width - 8
	if w > maxFormWidth {
		w = maxFormWidth
	}
	if w < 30 {
		w = 30
	}
	return w
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if a.form != nil {
		return a.viewForm()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  fintrack needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewForm() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 2)

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center,
		cardStyle.Render(a.form.View()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	sectionStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Cyan).
		Background(t.Surface).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	sections := []struct {
		title    string
		bindings []struct{ key, desc string }
	}{
		{"Navigation", []struct{ key, desc string }{
			{"1 2 3", "Jump to tab"},
			{"← → tab", "Previous / Next tab"},
			{"j k", "Move selection"},
			{"g G", "First / Last row"},
		}},
		{"Transactions", []struct{ key, desc string }{
			{"a", "Add transaction"},
			{"e Enter", "Edit selected"},
			{"d", "Delete selected"},
			{"f", "Cycle category filter"},
			{"t", "Cycle type filter"},
			{"c", "Clear filters"},
		}},
		{"Categories", []struct{ key, desc string }{
			{"a", "Add category"},
			{"d", "Remove selected"},
		}},
		{"General", []struct{ key, desc string }{
			{"Esc", "Cancel form"},
			{"?", "Toggle help"},
			{"q", "Quit"},
		}},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n")
	for _, s := range sections {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render(s.title))
		b.WriteString("\n")
		for _, bind := range s.bindings {
			fmt.Fprintf(&b, "  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-8s", bind.key)),
				descStyle.Render(bind.desc))
		}
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center,
		cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab, w) + "\n" + a.renderFilterRow(w)

	var hints string
	switch a.activeTab {
	case tabTransactions:
		hints = "[a]dd [e]dit [d]elete [f]ilter [t]ype [?]help [q]uit"
	case tabCategories:
		hints = "[a]dd [d]elete [?]help [q]uit"
	default:
		hints = "[?]help [q]uit"
	}
	statusBar := components.RenderStatusBar(w, hints, a.flash.text, a.flash.isErr)

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case tabTransactions:
		content = a.renderTransactionsTab(cw, contentH)
	case tabOverview:
		content = a.renderOverviewTab(cw)
	case tabCategories:
		content = a.renderCategoriesTab(cw, contentH)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) renderFilterRow(w int) string {
	t := theme.Active

	pillStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	accentStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	category := "All categories"
	if a.txState.category != "" {
		category = model.DisplayCategory(a.txState.category)
	}
	typ := "All types"
	if a.txState.typ != "" {
		typ = string(a.txState.typ)
	}

	s := pillStyle.Render(" ") +
		accentStyle.Render(category) +
		pillStyle.Render(" │ ") +
		accentStyle.Render(typ) +
		pillStyle.Render(fmt.Sprintf(" │ %d of %d ", len(a.rows), a.summary.Transactions))

	return lipgloss.NewStyle().Background(t.Surface).Width(w).Render(s)
}

// ─── Helpers ────────────────────────────────────────────────────

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes are derived from the same width rules used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 0
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)

		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW

		// Separator is one column between tabs.
		if i < len(components.Tabs)-1 {
			pos++
		}
	}
	return -1
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	padding := strings.Repeat("\n", h-len(lines))
	return s + padding
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}
