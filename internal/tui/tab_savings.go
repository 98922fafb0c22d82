package tui

import (
	"strings"

	"github.com/marciooo/nido/internal/advice"
	"github.com/marciooo/nido/internal/tui/components"
	"github.com/marciooo/nido/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// renderSavingsTab lists cost-reduction programs and further reading.
func (a App) renderSavingsTab(cw int) string {
	t := theme.Active
	inner := components.CardInnerWidth(cw)

	rangeStyle := lipgloss.NewStyle().Foreground(t.Green).Bold(true)
	textStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	linkStyle := lipgloss.NewStyle().Foreground(t.Blue)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var cards []string
	for _, p := range advice.Programs {
		var b strings.Builder
		b.WriteString(rangeStyle.Render(p.Range))
		b.WriteString("\n")
		for _, line := range wrapText(p.Summary, inner) {
			b.WriteString(textStyle.Render(line))
			b.WriteString("\n")
		}
		b.WriteString(linkStyle.Render(truncStr(p.Link, inner)))
		cards = append(cards, components.ContentCard(p.Name, b.String(), cw))
	}

	var refs strings.Builder
	for i, ref := range advice.References {
		if i > 0 {
			refs.WriteString("\n")
		}
		refs.WriteString(dimStyle.Render(truncStr("• "+ref, inner)))
	}
	cards = append(cards, components.ContentCard("References", refs.String(), cw))

	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}
