package tui

import (
	"fmt"
	"strings"

	"github.com/marciooo/nido/internal/cli"
	"github.com/marciooo/nido/internal/costs"
	"github.com/marciooo/nido/internal/tui/components"
	"github.com/marciooo/nido/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// renderBracketsTab compares all cost brackets over the current interval.
func (a App) renderBracketsTab(cw int) string {
	if a.runErr != nil {
		return a.renderError(cw)
	}
	t := theme.Active
	r := a.result
	iv := r.Summary.Interval
	inner := components.CardInnerWidth(cw)

	headerStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	selStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("  %-10s %8s %14s %14s", "Bracket", "Factor", "Total", "Avg monthly")))
	b.WriteString("\n")

	var bars []components.BandBar
	for _, bf := range r.Multipliers.Brackets {
		sum, err := costs.Summarize(r.Cumulative, r.Monthly, bf.Name, iv)
		if err != nil {
			b.WriteString(dimStyle.Render(fmt.Sprintf("  %-10s %s", bf.Name, err)))
			b.WriteString("\n")
			continue
		}

		marker := " "
		style := rowStyle
		if strings.EqualFold(bf.Name, r.Summary.Bracket) {
			marker = "◆"
			style = selStyle
		}
		b.WriteString(style.Render(fmt.Sprintf("%s %-10s %8.2f %14s %14s",
			marker, bf.Name, bf.Factor,
			cli.FormatMoney(sum.TotalCost),
			cli.FormatMoneyf(sum.AvgMonthlyCost))))
		b.WriteString("\n")

		bars = append(bars, components.BandBar{
			Label: bf.Name,
			Value: sum.TotalCost,
			Text:  cli.FormatMoneyShort(sum.TotalCost),
		})
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Interval: months %d–%d (%s)",
		iv.Start, iv.End, cli.FormatMonths(iv.End-iv.Start))))

	table := components.ContentCard("Cost brackets", b.String(), cw)
	compare := components.ContentCard("Total cost comparison", components.BandBars(bars, inner), cw)

	return lipgloss.JoinVertical(lipgloss.Left, table, compare)
}
