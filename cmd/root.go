// Package cmd implements the nido CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/marciooo/nido/internal/cli"
	"github.com/marciooo/nido/internal/config"
	"github.com/marciooo/nido/internal/costs"
	"github.com/marciooo/nido/internal/dataset"
	"github.com/marciooo/nido/internal/pipeline"
	"github.com/marciooo/nido/internal/store"
	"github.com/marciooo/nido/internal/tui/components"
	"github.com/marciooo/nido/internal/tui/theme"

	"github.com/spf13/cobra"
)

var (
	flagRegion   string
	flagCareType string
	flagBracket  string
	flagStart    int
	flagEnd      int
	flagStep     int
	flagDataset  string
	flagNoCache  bool
	flagQuiet    bool
)

var rootCmd = &cobra.Command{
	Use:   "nido",
	Short: "Childcare cost estimator",
	Long: "Estimate the total cost of childcare: baseline tuition by state and\n" +
		"care type, scaled by your cost expectations, projected over the time\n" +
		"your child will be in care.",
	RunE: runEstimate,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagRegion, "region", "r", "", "Region (US state or National)")
	rootCmd.PersistentFlags().StringVarP(&flagCareType, "care-type", "c", "", "Care type: center-based or family-care")
	rootCmd.PersistentFlags().StringVarP(&flagBracket, "bracket", "b", "", "Cost bracket: Low, Average, or High")
	rootCmd.PersistentFlags().IntVar(&flagStart, "start", -1, "Care start age in months")
	rootCmd.PersistentFlags().IntVar(&flagEnd, "end", -1, "Care end age in months")
	rootCmd.PersistentFlags().IntVar(&flagStep, "step", 0, "Sampling step in months")
	rootCmd.PersistentFlags().StringVar(&flagDataset, "dataset", "", "YAML dataset file instead of the embedded tables")
	rootCmd.PersistentFlags().BoolVar(&flagNoCache, "no-cache", false, "Skip the projection cache, recompute everything")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress diagnostic output")
}

// buildRequest merges the configured defaults with any flag overrides.
func buildRequest(cfg config.Config) (pipeline.Request, error) {
	req, err := pipeline.DefaultRequest(cfg)
	if err != nil {
		return pipeline.Request{}, err
	}

	if flagRegion != "" {
		req.Region = flagRegion
	}
	if flagCareType != "" {
		careType, err := dataset.ParseCareType(flagCareType)
		if err != nil {
			return pipeline.Request{}, err
		}
		req.CareType = careType
	}
	if flagBracket != "" {
		req.Bracket = flagBracket
	}
	if flagStart >= 0 {
		req.Interval.Start = flagStart
	}
	if flagEnd >= 0 {
		req.Interval.End = flagEnd
	}
	if flagStep > 0 {
		req.Step = flagStep
	}

	return req, nil
}

// loadSet returns the dataset selected by --dataset, or nil for the
// embedded tables.
func loadSet() (dataset.Set, error) {
	if flagDataset == "" {
		return nil, nil
	}
	return dataset.LoadFile(flagDataset)
}

// runEstimate is the shared computation path used by all commands.
// Uses the SQLite projection cache when available.
func computeEstimate() (*pipeline.Result, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	theme.SetActive(cfg.Appearance.Theme)

	req, err := buildRequest(cfg)
	if err != nil {
		return nil, err
	}

	set, err := loadSet()
	if err != nil {
		return nil, err
	}

	var cache *store.Cache
	if !flagNoCache {
		cache, err = store.Open(pipeline.CachePath())
		if err != nil {
			// Cache open failed — fall back to recomputation.
			if !flagQuiet {
				fmt.Fprintf(os.Stderr, "  Cache unavailable, recomputing\n")
			}
			cache = nil
		} else {
			defer cache.Close()
		}
	}

	return pipeline.Run(cfg, req, set, cache)
}

func runEstimate(_ *cobra.Command, _ []string) error {
	result, err := computeEstimate()
	if err != nil {
		return err
	}

	req := result.Request

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("CHILDCARE COSTS  %s · %s", req.Region, req.CareType.Display())))
	fmt.Println()

	// Adjusted tuition per age band
	adjusted := pipeline.AdjustedBands(result)
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("Assumed annual tuition (%s bracket)", req.Bracket),
		Headers: []string{"Age Band", "Annual", "Monthly"},
		Rows: [][]string{
			{"Infant (0-11 mo)", cli.FormatMoney(adjusted.Infant), cli.FormatMoney(adjusted.Infant / 12)},
			{"Toddler (12-47 mo)", cli.FormatMoney(adjusted.Toddler), cli.FormatMoney(adjusted.Toddler / 12)},
			{"Preschool (48+ mo)", cli.FormatMoney(adjusted.Preschool), cli.FormatMoney(adjusted.Preschool / 12)},
		},
	}))
	fmt.Println()

	// Cumulative cost curve with the care interval highlighted
	if ticks, err := costs.TickLayout(result.Span, 12, req.Interval); err == nil {
		fmt.Println("  " + components.IntervalMarkers(req.Interval,
			cli.FormatMoney(seriesValue(result.Cumulative.Points, req.Interval.Start, req.Bracket)),
			cli.FormatMoney(seriesValue(result.Cumulative.Points, req.Interval.End, req.Bracket))))
		fmt.Println(components.CumulativeChart(result.Cumulative, req.Bracket, req.Interval, ticks, 72, 10))
		fmt.Println()
	}

	// Summary card
	s := result.Summary
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Summary",
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Total Cost", cli.FormatMoney(s.TotalCost)},
			{"Avg Monthly Cost", cli.FormatMoneyf(s.AvgMonthlyCost)},
			{"Duration", cli.FormatMonths(s.DurationMonths)},
			{"---"},
			{"From", cli.FormatMonths(req.Interval.Start) + " of age"},
			{"To", cli.FormatMonths(req.Interval.End) + " of age"},
			{"Cost Bracket", req.Bracket},
		},
	}))

	if !flagQuiet && result.FromCache {
		fmt.Fprintln(os.Stderr, "\n  (served from projection cache)")
	}

	fmt.Println()
	fmt.Println("  Run `nido brackets` to compare brackets, `nido tui` for the dashboard.")
	return nil
}

// seriesValue returns the bracket's value at an exactly sampled month,
// or 0 when the month is not in the series.
func seriesValue(points []costs.Point, month int, bracket string) int64 {
	for _, p := range points {
		if p.Month == month {
			return p.Values[bracket]
		}
	}
	return 0
}
