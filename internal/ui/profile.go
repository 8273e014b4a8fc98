package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// handleProfileKey processes keyboard input for the profile view.
func (m Model) handleProfileKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if cmd, handled := m.handleGlobalKey(msg); handled {
		return m, cmd
	}
	return m, nil
}

// renderProfile renders the active profile card.
func (m Model) renderProfile() string {
	styles := m.theme.Styles()

	user := m.snapshot.User
	if user == nil {
		return styles.MutedText.Render("No active session")
	}

	label := func(s string) string { return styles.MutedText.Render(s) }

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render(user.Name))
	b.WriteString("  ")
	b.WriteString(styles.AccentText.Render(user.Role.Label()))
	b.WriteString("\n\n")

	for _, line := range wrapText(user.Description, 56) {
		b.WriteString(styles.Text.Render(line))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(label("Contact:             ") + styles.InfoText.Render(user.Contact))
	b.WriteString("\n")
	b.WriteString(label("Posted this session: ") + styles.Text.Render(fmt.Sprintf("%d", m.snapshot.PostedThisSession)))
	b.WriteString("\n\n")
	b.WriteString(styles.FaintText.Render("x: Logout  •  1: Listings"))

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Border)).
		Padding(1, 3).
		Render(b.String())

	return lipgloss.Place(
		m.width,
		m.contentHeight(),
		lipgloss.Center,
		lipgloss.Center,
		card,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}
