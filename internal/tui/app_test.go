package tui

import (
	"testing"

	"github.com/marciooo/nido/internal/config"
	"github.com/marciooo/nido/internal/pipeline"

	tea "github.com/charmbracelet/bubbletea"
)

// newTestApp builds an app against isolated XDG dirs with a saved config,
// so the first-run wizard stays out of the way.
func newTestApp(t *testing.T) App {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	cfg := config.DefaultConfig()
	if err := config.Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	req, err := pipeline.DefaultRequest(cfg)
	if err != nil {
		t.Fatalf("DefaultRequest: %v", err)
	}

	return NewApp(cfg, req, nil, false)
}

func TestNewAppComputesProjection(t *testing.T) {
	a := newTestApp(t)

	if a.needSetup {
		t.Fatal("saved config should skip the setup wizard")
	}
	if a.runErr != nil {
		t.Fatalf("initial projection failed: %v", a.runErr)
	}
	if a.result == nil || a.result.Summary.TotalCost <= 0 {
		t.Fatal("initial projection should produce a positive total")
	}
}

func TestTabSwitching(t *testing.T) {
	a := newTestApp(t)

	m, _ := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}})
	a = m.(App)
	if a.activeTab != 1 {
		t.Errorf("activeTab = %d after '2', want 1", a.activeTab)
	}

	m, _ = a.Update(tea.KeyMsg{Type: tea.KeyTab})
	a = m.(App)
	if a.activeTab != 2 {
		t.Errorf("activeTab = %d after tab, want 2", a.activeTab)
	}

	m, _ = a.Update(tea.KeyMsg{Type: tea.KeyTab})
	a = m.(App)
	if a.activeTab != 0 {
		t.Errorf("activeTab = %d after wrap, want 0", a.activeTab)
	}
}

func TestBracketCycling(t *testing.T) {
	a := newTestApp(t)

	before := a.req.Bracket
	m, _ := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'b'}})
	a = m.(App)
	if a.req.Bracket == before {
		t.Error("'b' should cycle to a different bracket")
	}
	if a.runErr != nil {
		t.Fatalf("recompute after bracket cycle failed: %v", a.runErr)
	}
	if a.result.Summary.Bracket != a.req.Bracket {
		t.Errorf("summary bracket %q does not track request %q",
			a.result.Summary.Bracket, a.req.Bracket)
	}
}

func TestIntervalAdjustClamps(t *testing.T) {
	a := newTestApp(t)

	span, err := a.cfg.Span()
	if err != nil {
		t.Fatalf("Span: %v", err)
	}

	// Walk the start far left; it must stop at the span minimum
	for i := 0; i < span.Max+5; i++ {
		a.adjustStart(-1)
	}
	if a.req.Interval.Start != span.Min {
		t.Errorf("start = %d after clamping, want %d", a.req.Interval.Start, span.Min)
	}

	// Walk the end far right; it must stop at the span maximum
	for i := 0; i < span.Max+5; i++ {
		a.adjustEnd(1)
	}
	if a.req.Interval.End != span.Max {
		t.Errorf("end = %d after clamping, want %d", a.req.Interval.End, span.Max)
	}

	// Start can never cross the end
	a.req.Interval.End = a.req.Interval.Start
	a.adjustStart(1)
	if a.req.Interval.Start > a.req.Interval.End {
		t.Error("start moved past end")
	}
}

func TestCareTypeToggleRecomputes(t *testing.T) {
	a := newTestApp(t)

	before := a.result.Summary.TotalCost
	m, _ := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}})
	a = m.(App)
	if a.runErr != nil {
		t.Fatalf("recompute after care type toggle failed: %v", a.runErr)
	}
	if a.result.Summary.TotalCost == before {
		t.Error("family care should project a different total than center based")
	}
}
