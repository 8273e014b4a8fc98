package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/foodshare/foodshare/internal/session"
)

// handleLoginKey processes keyboard input on the role selection screen.
func (m Model) handleLoginKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	roles := session.Roles()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.loginIdx < len(roles)-1 {
			m.loginIdx++
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.loginIdx > 0 {
			m.loginIdx--
		}
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		m.login(roles[m.loginIdx])
		return m, nil
	}

	// Number keys select a role directly.
	switch msg.String() {
	case "1", "2", "3":
		idx := int(msg.String()[0] - '1')
		if idx < len(roles) {
			m.loginIdx = idx
			m.login(roles[idx])
		}
	}

	return m, nil
}

// renderLogin renders the landing screen with role selection.
func (m Model) renderLogin() string {
	styles := m.theme.Styles()
	roles := session.Roles()

	var b strings.Builder
	b.WriteString(styles.Logo.Render("foodshare"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("share surplus food with your neighborhood"))
	b.WriteString("\n\n")
	b.WriteString(styles.Text.Render("Who are you today?"))
	b.WriteString("\n\n")

	descriptions := map[session.Role]string{
		session.RoleDonor:    "Post surplus food for others to pick up",
		session.RoleReceiver: "Browse available donations near you",
		session.RoleNGO:      "Collect and redistribute donations",
	}

	for i, role := range roles {
		cursor := "  "
		label := fmt.Sprintf("%d. %s", i+1, role.Label())
		line := label + "  " + descriptions[role]
		if i == m.loginIdx {
			cursor = styles.AccentText.Render("> ")
			b.WriteString(cursor + styles.Selected.Render(" "+line+" "))
		} else {
			b.WriteString(cursor + styles.Text.Render(label) + "  " + styles.MutedText.Render(descriptions[role]))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("j/k: Move  •  Enter or 1-3: Continue  •  T: Theme  •  q: Quit"))

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.BorderFocus)).
		Padding(1, 3).
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
