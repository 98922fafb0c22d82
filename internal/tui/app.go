// Package tui provides the interactive Bubble Tea dashboard for nido.
package tui

import (
	"fmt"
	"strings"

	"github.com/marciooo/nido/internal/config"
	"github.com/marciooo/nido/internal/dataset"
	"github.com/marciooo/nido/internal/pipeline"
	"github.com/marciooo/nido/internal/store"
	"github.com/marciooo/nido/internal/tui/components"
	"github.com/marciooo/nido/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// App is the root Bubble Tea model.
type App struct {
	cfg      config.Config
	set      dataset.Set
	useCache bool

	// Current scenario and its projection
	req    pipeline.Request
	result *pipeline.Result
	runErr error

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals setupValues
	needSetup bool
}

const (
	minTerminalWidth = 60
	maxContentWidth  = 140
	minContentHeight = 5
)

var bracketOrder = []string{config.BracketLow, config.BracketAverage, config.BracketHigh}

// NewApp creates a new TUI app model.
func NewApp(cfg config.Config, req pipeline.Request, set dataset.Set, useCache bool) App {
	a := App{
		cfg:       cfg,
		set:       set,
		useCache:  useCache,
		req:       req,
		needSetup: !config.Exists(),
	}
	a.recompute()

	if a.needSetup {
		a.setupForm = newSetupForm(cfg, a.regions(), &a.setupVals)
	}

	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	if a.needSetup && a.setupForm != nil {
		return a.setupForm.Init()
	}
	return nil
}

// recompute re-runs the projection for the current scenario.
// The cache is opened per run; a cache failure falls back to computing.
func (a *App) recompute() {
	var cache *store.Cache
	if a.useCache {
		if c, err := store.Open(pipeline.CachePath()); err == nil {
			cache = c
			defer func() { _ = c.Close() }()
		}
	}
	a.result, a.runErr = pipeline.Run(a.cfg, a.req, a.set, cache)
}

// regions returns the region names available for cycling, sorted.
func (a App) regions() []string {
	if a.set != nil {
		return a.set.Regions()
	}
	return dataset.Default(a.req.CareType).Regions()
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		// First-run setup wizard intercepts all keys
		if a.needSetup && a.setupForm != nil {
			return a.updateSetupForm(msg)
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}

		// Dismiss help with any key
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		switch key {
		case "q":
			return a, tea.Quit

		case "tab":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
			return a, nil
		case "shift+tab":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
			return a, nil

		case "left":
			a.adjustStart(-1)
			return a, nil
		case "right":
			a.adjustStart(1)
			return a, nil
		case "shift+left":
			a.adjustEnd(-1)
			return a, nil
		case "shift+right":
			a.adjustEnd(1)
			return a, nil

		case "r":
			a.cycleRegion()
			return a, nil
		case "c":
			a.toggleCareType()
			return a, nil
		case "b":
			a.cycleBracket()
			return a, nil
		case "t":
			a.cycleTheme()
			return a, nil
		}

		if idx := components.TabIdxByKey(firstRune(key)); idx >= 0 {
			a.activeTab = idx
		}
		return a, nil
	}

	// Forward unhandled messages to the setup form (cursor blinks, etc.)
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	return a, nil
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	if a.setupForm.State == huh.StateCompleted {
		a.applySetup()
		a.needSetup = false
		a.setupForm = nil
		a.recompute()
		return a, nil
	}

	if a.setupForm.State == huh.StateAborted {
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	return a, cmd
}

// ─── Scenario adjustments ───────────────────────────────────────

func (a *App) adjustStart(delta int) {
	span, err := a.cfg.Span()
	if err != nil {
		return
	}
	start := a.req.Interval.Start + delta
	if start < span.Min {
		start = span.Min
	}
	if start > a.req.Interval.End {
		start = a.req.Interval.End
	}
	if start == a.req.Interval.Start {
		return
	}
	a.req.Interval.Start = start
	a.recompute()
}

func (a *App) adjustEnd(delta int) {
	span, err := a.cfg.Span()
	if err != nil {
		return
	}
	end := a.req.Interval.End + delta
	if end > span.Max {
		end = span.Max
	}
	if end < a.req.Interval.Start {
		end = a.req.Interval.Start
	}
	if end == a.req.Interval.End {
		return
	}
	a.req.Interval.End = end
	a.recompute()
}

func (a *App) cycleRegion() {
	regions := a.regions()
	if len(regions) == 0 {
		return
	}
	next := regions[0]
	for i, r := range regions {
		if strings.EqualFold(r, a.req.Region) {
			next = regions[(i+1)%len(regions)]
			break
		}
	}
	a.req.Region = next
	a.recompute()
}

func (a *App) toggleCareType() {
	if a.req.CareType == dataset.CenterBased {
		a.req.CareType = dataset.FamilyCare
	} else {
		a.req.CareType = dataset.CenterBased
	}
	a.recompute()
}

func (a *App) cycleBracket() {
	next := bracketOrder[0]
	for i, b := range bracketOrder {
		if strings.EqualFold(b, a.req.Bracket) {
			next = bracketOrder[(i+1)%len(bracketOrder)]
			break
		}
	}
	a.req.Bracket = next
	a.recompute()
}

func (a *App) cycleTheme() {
	for i, th := range theme.All {
		if th.Name == theme.Active.Name {
			theme.SetActive(theme.All[(i+1)%len(theme.All)].Name)
			break
		}
	}
	// Persist best-effort, ignore errors
	a.cfg.Appearance.Theme = theme.Active.Name
	_ = config.Save(a.cfg)
}

// ─── View ───────────────────────────────────────────────────────

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	// First-run setup wizard
	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
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
		"\n  Terminal too narrow (%d cols)\n\n  nido needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderBright).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	bindings := []struct{ key, desc string }{
		{"1 2 3", "Jump to tab"},
		{"Tab / S-Tab", "Next / Previous tab"},
		{"← →", "Move interval start"},
		{"S-← S-→", "Move interval end"},
		{"r", "Cycle region"},
		{"c", "Toggle care type"},
		{"b", "Cycle cost bracket"},
		{"t", "Cycle theme"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
	for _, bind := range bindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-12s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card)
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	// 1. Header: title + tab bar
	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Bold(true)
	subtitleStyle := lipgloss.NewStyle().
		Foreground(t.TextDim)

	header := " " + titleStyle.Render("◈ nido") +
		subtitleStyle.Render(" · Childcare Cost Estimator") + "\n" +
		components.RenderTabBar(a.activeTab, w) + "\n"

	// 2. Status bar with the current scenario
	ctx := fmt.Sprintf("%s · %s · %s · mo %d–%d",
		a.req.Region,
		a.req.CareType.Display(),
		a.req.Bracket,
		a.req.Interval.Start, a.req.Interval.End)
	if a.runErr == nil && a.result != nil && a.result.FromCache {
		ctx += " · cached"
	}
	statusBar := components.RenderStatusBar(w, ctx)

	// 3. Content zone height
	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	// 4. Tab content
	var content string
	switch a.activeTab {
	case 0:
		content = a.renderEstimateTab(cw)
	case 1:
		content = a.renderBracketsTab(cw)
	case 2:
		content = a.renderSavingsTab(cw)
	}

	// 5. Truncate + pad to exactly contentH lines
	content = padHeight(truncateHeight(content, contentH), contentH)

	// 6. Center content when the terminal is wider than the content cap
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
}

// renderError renders the projection error card shown when the current
// scenario cannot be computed.
func (a App) renderError(cw int) string {
	t := theme.Active
	errStyle := lipgloss.NewStyle().Foreground(t.Red)
	hintStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	body := errStyle.Render(a.runErr.Error()) + "\n\n" +
		hintStyle.Render("Adjust the scenario (r/c/b, arrow keys) or fix the config.")
	return components.ContentCard("Projection failed", body, cw)
}

// ─── Helpers ────────────────────────────────────────────────────

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
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
	return s + strings.Repeat("\n", h-len(lines))
}

// wrapText splits text into lines no longer than width, on word boundaries.
func wrapText(text string, width int) []string {
	words := strings.Fields(text)
	var lines []string
	var line string
	for _, word := range words {
		if line == "" {
			line = word
			continue
		}
		if len(line)+1+len(word) > width {
			lines = append(lines, line)
			line = word
			continue
		}
		line += " " + word
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}
