package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHelp renders the full-screen help overlay. Any key closes it.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	type binding struct{ keys, desc string }
	sections := []struct {
		title    string
		bindings []binding
	}{
		{
			"Tabs",
			[]binding{
				{"1 / 2 / 3", "Listings, Post, Profile"},
				{"tab / shift+tab", "Cycle tabs"},
				{"esc", "Back to listings"},
			},
		},
		{
			"Listings",
			[]binding{
				{"/", "Search title and description"},
				{"f", "Cycle category filter"},
				{"c", "Claim the selected item"},
				{"j / k", "Move selection"},
				{"g / G", "Top / bottom"},
			},
		},
		{
			"Post",
			[]binding{
				{"tab / shift+tab", "Next / previous field"},
				{"left / right", "Pick category"},
				{"enter", "Next field; posts on the submit row"},
			},
		},
		{
			"Session",
			[]binding{
				{"x", "Logout"},
				{"T", "Cycle theme"},
				{"q / ctrl+c", "Quit"},
			},
		},
	}

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Help"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 44)))
	b.WriteString("\n\n")

	for _, section := range sections {
		b.WriteString(styles.AccentText.Render(section.title))
		b.WriteString("\n")
		for _, bind := range section.bindings {
			pad := 18 - len(bind.keys)
			if pad < 1 {
				pad = 1
			}
			b.WriteString("  ")
			b.WriteString(styles.Text.Render(bind.keys))
			b.WriteString(strings.Repeat(" ", pad))
			b.WriteString(styles.MutedText.Render(bind.desc))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(styles.FaintText.Render("Press any key to close"))

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(1, 2).
		Render(b.String())

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		card,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}
