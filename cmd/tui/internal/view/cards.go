package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/nomadmatch/internal/match"
)

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			Padding(0, 1).
			Width(56)

	cityStyle    = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	scoreStyle   = lipgloss.NewStyle().Bold(true).Foreground(successColor)
	labelStyle   = lipgloss.NewStyle().Foreground(mutedColor)
	premiumStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
)

// RenderResult renders the cards of res, or the no-matches placeholder.
func RenderResult(res match.Result) string {
	if res.Empty {
		return labelStyle.Render(res.Message)
	}

	rendered := make([]string, len(res.Cards))
	for i, c := range res.Cards {
		rendered[i] = RenderCard(i+1, c)
	}

	return lipgloss.JoinVertical(lipgloss.Left, rendered...)
}

func RenderCard(rank int, c match.Card) string {
	title := fmt.Sprintf("%d. %s", rank, cityStyle.Render(c.City))
	if c.Country != "" {
		title += ", " + c.Country
	}

	lines := []string{
		title + "  " + scoreStyle.Render(FormatPercent(c.ScorePercent)),
		field("Region", orDash(c.Region)),
		field("Budget", orDash(c.Metadata.Budget)),
		field("Internet", orDash(c.Metadata.Internet)),
		field("Visa", yesNo(c.Metadata.VisaAvailable)),
		field("Safety", orDash(c.Metadata.Safety)),
	}

	if len(c.VibeTags) > 0 {
		lines = append(lines, field("Vibe", strings.Join(c.VibeTags, ", ")))
	}

	if len(c.Boosts) > 0 {
		lines = append(lines, field("Matched", strings.Join(c.Boosts, ", ")))
	}

	if p := c.Premium; p != nil {
		lines = append(lines,
			"",
			premiumStyle.Render("Premium visa details"),
			field("Visa type", orDash(p.VisaType)),
			field("Duration", orDash(p.VisaDuration)),
			field("Min income", FormatIncome(p.MinMonthlyIncome)),
			field("Visa score", orDash(p.VisaScore)),
			field("Schengen", orDash(p.Schengen)),
		)
	}

	return cardStyle.Render(strings.Join(lines, "\n"))
}

func field(label, value string) string {
	return labelStyle.Render(fmt.Sprintf("%-11s", label+":")) + " " + value
}
