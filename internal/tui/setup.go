package tui

import (
	"github.com/marciooo/nido/internal/config"
	"github.com/marciooo/nido/internal/dataset"
	"github.com/marciooo/nido/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// setupValues collects the first-run wizard answers.
type setupValues struct {
	region   string
	careType string
	bracket  string
	theme    string
}

// newSetupForm builds the first-run wizard, pre-filled from cfg.
func newSetupForm(cfg config.Config, regions []string, vals *setupValues) *huh.Form {
	vals.region = cfg.General.Region
	vals.careType = cfg.General.CareType
	vals.bracket = cfg.General.Bracket
	vals.theme = cfg.Appearance.Theme

	regionOpts := make([]huh.Option[string], len(regions))
	for i, r := range regions {
		regionOpts[i] = huh.NewOption(r, r)
	}

	themeOpts := make([]huh.Option[string], len(theme.All))
	for i, th := range theme.All {
		themeOpts[i] = huh.NewOption(th.Name, th.Name)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Where do you live?").
				Options(regionOpts...).
				Value(&vals.region),
			huh.NewSelect[string]().
				Title("Type of daycare").
				Options(
					huh.NewOption(dataset.CenterBased.Display(), string(dataset.CenterBased)),
					huh.NewOption(dataset.FamilyCare.Display(), string(dataset.FamilyCare)),
				).
				Value(&vals.careType),
			huh.NewSelect[string]().
				Title("Expected cost bracket").
				Options(
					huh.NewOption(config.BracketLow, config.BracketLow),
					huh.NewOption(config.BracketAverage, config.BracketAverage),
					huh.NewOption(config.BracketHigh, config.BracketHigh),
				).
				Value(&vals.bracket),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&vals.theme),
		),
	)
}

// applySetup saves the wizard answers and folds them into the live scenario.
func (a *App) applySetup() {
	a.cfg.General.Region = a.setupVals.region
	a.cfg.General.CareType = a.setupVals.careType
	a.cfg.General.Bracket = a.setupVals.bracket
	a.cfg.Appearance.Theme = a.setupVals.theme

	theme.SetActive(a.cfg.Appearance.Theme)
	_ = config.Save(a.cfg)

	a.req.Region = a.setupVals.region
	if ct, err := dataset.ParseCareType(a.setupVals.careType); err == nil {
		a.req.CareType = ct
	}
	a.req.Bracket = a.setupVals.bracket
}
