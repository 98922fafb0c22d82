package tui

import (
	"fmt"

	"github.com/marciooo/nido/internal/cli"
	"github.com/marciooo/nido/internal/costs"
	"github.com/marciooo/nido/internal/pipeline"
	"github.com/marciooo/nido/internal/tui/components"

	"github.com/charmbracelet/lipgloss"
)

// tickStride is the regular x-axis tick spacing in months (yearly).
const tickStride = 12

func (a App) renderEstimateTab(cw int) string {
	if a.runErr != nil {
		return a.renderError(cw)
	}
	r := a.result
	iv := r.Summary.Interval

	// Headline metric cards
	metrics := []components.Metric{
		{
			Label:  "Total cost",
			Value:  cli.FormatMoney(r.Summary.TotalCost),
			Detail: cli.FormatMonths(r.Summary.DurationMonths) + " in care",
		},
		{
			Label:  "Avg monthly",
			Value:  cli.FormatMoneyf(r.Summary.AvgMonthlyCost),
			Detail: r.Summary.Bracket + " bracket",
		},
		{
			Label:  "Monthly at start",
			Value:  cli.FormatMoney(seriesValue(r.Monthly.Points, iv.Start, r.Summary.Bracket)),
			Detail: fmt.Sprintf("month %d", iv.Start),
		},
	}
	top := components.MetricCardRow(metrics, cw)

	// Cumulative cost chart over the full age span, interval emphasized
	inner := components.CardInnerWidth(cw)
	chartBody := components.IntervalMarkers(iv,
		cli.FormatMoney(seriesValue(r.Cumulative.Points, iv.Start, r.Summary.Bracket)),
		cli.FormatMoney(seriesValue(r.Cumulative.Points, iv.End, r.Summary.Bracket)))
	if ticks, err := costs.TickLayout(r.Span, tickStride, iv); err == nil {
		chartBody += "\n" + components.CumulativeChart(r.Cumulative, r.Summary.Bracket, iv, ticks, inner, 12)
	}
	chart := components.ContentCard("Cumulative cost by age (months)", chartBody, cw)

	// Adjusted annual tuition per age band
	adj := pipeline.AdjustedBands(r)
	bars := components.BandBars([]components.BandBar{
		{Label: costs.Infant.String(), Value: adj.Infant, Text: cli.FormatMoney(adj.Infant) + "/yr"},
		{Label: costs.Toddler.String(), Value: adj.Toddler, Text: cli.FormatMoney(adj.Toddler) + "/yr"},
		{Label: costs.Preschool.String(), Value: adj.Preschool, Text: cli.FormatMoney(adj.Preschool) + "/yr"},
	}, inner)
	tuition := components.ContentCard(
		fmt.Sprintf("Annual tuition · %s · %s bracket", r.Request.Region, r.Summary.Bracket),
		bars, cw)

	return lipgloss.JoinVertical(lipgloss.Left, top, chart, tuition)
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
