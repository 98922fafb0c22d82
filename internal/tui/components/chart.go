package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/marciooo/nido/internal/costs"
	"github.com/marciooo/nido/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// CumulativeChart renders the cumulative cost curve for one bracket as a
// column chart. Columns whose month falls inside iv use the accent color;
// the rest render dim. ticks place the x-axis markers, with emphasized
// ticks drawn in the accent color.
func CumulativeChart(series costs.CumulativeSeries, bracket string, iv costs.Interval, ticks []costs.Tick, width, height int) string {
	if len(series.Points) == 0 {
		return ""
	}
	if width < 15 || height < 3 {
		return ""
	}

	t := theme.Active

	n := len(series.Points)
	months := make([]int, n)
	values := make([]float64, n)
	for i, p := range series.Points {
		months[i] = p.Month
		values[i] = float64(p.Values[bracket])
	}

	maxVal := 0.0
	for _, v := range values {
		if v > maxVal {
			maxVal = v
		}
	}
	if maxVal == 0 {
		maxVal = 1
	}

	// Y-axis: compute tick step and ceiling
	tickStep := chartTickStep(maxVal)
	maxIntervals := height / 2
	if maxIntervals < 2 {
		maxIntervals = 2
	}
	for {
		if int(math.Ceil(maxVal/tickStep)) <= maxIntervals {
			break
		}
		tickStep *= 2
	}
	ceiling := math.Ceil(maxVal/tickStep) * tickStep
	numIntervals := int(math.Round(ceiling / tickStep))
	if numIntervals < 1 {
		numIntervals = 1
	}

	rowsPerTick := height / numIntervals
	if rowsPerTick < 2 {
		rowsPerTick = 2
	}
	chartH := rowsPerTick * numIntervals

	yLabelW := len(formatChartLabel(ceiling)) + 2 // room for $ prefix
	if yLabelW < 5 {
		yLabelW = 5
	}
	tickLabels := make(map[int]string)
	for i := 1; i <= numIntervals; i++ {
		row := i * rowsPerTick
		tickLabels[row] = "$" + formatChartLabel(tickStep*float64(i))
	}

	chartW := width - yLabelW - 1
	if chartW < 5 {
		chartW = 5
	}

	// Downsample to one column per terminal cell
	if n > chartW {
		sampledMonths := make([]int, chartW)
		sampledValues := make([]float64, chartW)
		for i := range sampledValues {
			srcIdx := i * (n - 1) / (chartW - 1)
			sampledMonths[i] = months[srcIdx]
			sampledValues[i] = values[srcIdx]
		}
		months = sampledMonths
		values = sampledValues
		n = chartW
	}

	blocks := []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	dimBar := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder

	for row := chartH; row >= 1; row-- {
		rowTop := ceiling * float64(row) / float64(chartH)
		rowBottom := ceiling * float64(row-1) / float64(chartH)
		rowPct := float64(row) / float64(chartH)

		var accentColor lipgloss.Color
		if rowPct > 0.6 {
			accentColor = t.AccentBright
		} else {
			accentColor = t.Accent
		}
		accentBar := lipgloss.NewStyle().Foreground(accentColor)

		label := tickLabels[row]
		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, label)))
		b.WriteString(axisStyle.Render("│"))

		for i, v := range values {
			style := dimBar
			if months[i] >= iv.Start && months[i] <= iv.End {
				style = accentBar
			}
			switch {
			case v >= rowTop:
				b.WriteString(style.Render("█"))
			case v > rowBottom:
				frac := (v - rowBottom) / (rowTop - rowBottom)
				idx := int(frac * 8)
				if idx > 8 {
					idx = 8
				}
				if idx < 1 {
					idx = 1
				}
				b.WriteString(style.Render(string(blocks[idx])))
			default:
				b.WriteString(" ")
			}
		}
		b.WriteString("\n")
	}

	// Column index of each tick month, nearest point wins
	colOf := func(month int) int {
		best, bestDist := 0, math.MaxInt
		for i, m := range months {
			d := m - month
			if d < 0 {
				d = -d
			}
			if d < bestDist {
				best, bestDist = i, d
			}
		}
		return best
	}

	// X-axis line with tick marks
	b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, "$0")))
	b.WriteString(axisStyle.Render("└"))
	axis := make([]rune, n)
	for i := range axis {
		axis[i] = '─'
	}
	emphAt := make(map[int]bool)
	for _, tk := range ticks {
		col := colOf(tk.Month)
		axis[col] = '┴'
		if tk.Emphasized {
			emphAt[col] = true
		}
	}
	emphStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	for i, r := range axis {
		if emphAt[i] {
			b.WriteString(emphStyle.Render(string(r)))
		} else {
			b.WriteString(axisStyle.Render(string(r)))
		}
	}
	b.WriteString("\n")

	// X-axis labels, skipping overlaps
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = ' '
	}
	lastEnd := -2
	for _, tk := range ticks {
		lbl := fmt.Sprintf("%d", tk.Month)
		pos := colOf(tk.Month)
		if pos+len(lbl) > n {
			pos = n - len(lbl)
		}
		if pos <= lastEnd {
			continue
		}
		copy(buf[pos:pos+len(lbl)], lbl)
		lastEnd = pos + len(lbl)
	}
	b.WriteString(strings.Repeat(" ", yLabelW+1))
	b.WriteString(axisStyle.Render(strings.TrimRight(string(buf), " ")))

	return b.String()
}

// IntervalMarkers renders the endpoint legend shown above the chart:
// diamond markers at the interval start and end with their running totals.
func IntervalMarkers(iv costs.Interval, startLabel, endLabel string) string {
	t := theme.Active
	diamond := lipgloss.NewStyle().Foreground(t.Accent).Bold(true).Render("◆")
	text := lipgloss.NewStyle().Foreground(t.TextPrimary)
	dim := lipgloss.NewStyle().Foreground(t.TextDim)

	return fmt.Sprintf("%s %s %s   %s   %s %s %s",
		diamond, dim.Render(fmt.Sprintf("mo %d", iv.Start)), text.Render(startLabel),
		dim.Render("→"),
		diamond, dim.Render(fmt.Sprintf("mo %d", iv.End)), text.Render(endLabel))
}

// BandBar is one row in a BandBars chart.
type BandBar struct {
	Label string
	Value int64
	Text  string // formatted value shown after the bar
}

// BandBars renders horizontal bars scaled against the largest value.
func BandBars(bars []BandBar, width int) string {
	if len(bars) == 0 {
		return ""
	}
	t := theme.Active

	labelW, textW := 0, 0
	var maxVal int64
	for _, bar := range bars {
		if len(bar.Label) > labelW {
			labelW = len(bar.Label)
		}
		if len(bar.Text) > textW {
			textW = len(bar.Text)
		}
		if bar.Value > maxVal {
			maxVal = bar.Value
		}
	}
	if maxVal == 0 {
		maxVal = 1
	}

	barW := width - labelW - textW - 3
	if barW < 8 {
		barW = 8
	}

	fill := progress.New(
		progress.WithSolidFill(string(t.Accent)),
		progress.WithWidth(barW),
		progress.WithoutPercentage(),
	)
	fill.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	textStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)

	var b strings.Builder
	for i, bar := range bars {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-*s", labelW, bar.Label)))
		b.WriteString(" ")
		b.WriteString(fill.ViewAs(float64(bar.Value) / float64(maxVal)))
		b.WriteString(" ")
		b.WriteString(textStyle.Render(fmt.Sprintf("%*s", textW, bar.Text)))
	}

	return b.String()
}

// chartTickStep computes a nice tick interval targeting ~5 ticks.
func chartTickStep(maxVal float64) float64 {
	if maxVal <= 0 {
		return 1
	}
	rough := maxVal / 5
	exp := math.Floor(math.Log10(rough))
	base := math.Pow(10, exp)
	frac := rough / base

	switch {
	case frac < 1.5:
		return base
	case frac < 3.5:
		return 2 * base
	default:
		return 5 * base
	}
}

func formatChartLabel(v float64) string {
	switch {
	case v >= 1e6:
		if v == math.Trunc(v/1e6)*1e6 {
			return fmt.Sprintf("%.0fM", v/1e6)
		}
		return fmt.Sprintf("%.1fM", v/1e6)
	case v >= 1e3:
		if v == math.Trunc(v/1e3)*1e3 {
			return fmt.Sprintf("%.0fk", v/1e3)
		}
		return fmt.Sprintf("%.1fk", v/1e3)
	default:
		return fmt.Sprintf("%.0f", v)
	}
}
