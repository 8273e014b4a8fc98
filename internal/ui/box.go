package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderTitledBox renders content in a box with the title embedded in the
// top border: ┌─── Title ───┐. When focused is true the border uses the
// focus color.
func (m Model) renderTitledBox(title, content string, width, height int, focused bool) string {
	borderColorStr := m.theme.Border
	if focused {
		borderColorStr = m.theme.BorderFocus
	}
	borderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(borderColorStr))
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.Text))

	if width < 4 {
		width = 4
	}
	innerWidth := width - 2
	title = truncate(title, innerWidth-2)
	titleLen := len(title)
	leftPad := (innerWidth - titleLen - 2) / 2
	if leftPad < 0 {
		leftPad = 0
	}
	rightPad := innerWidth - titleLen - 2 - leftPad
	if rightPad < 0 {
		rightPad = 0
	}

	topBorder := borderStyle.Render("┌") +
		borderStyle.Render(strings.Repeat("─", leftPad)) +
		titleStyle.Render(" "+title+" ") +
		borderStyle.Render(strings.Repeat("─", rightPad)) +
		borderStyle.Render("┐")

	bottomBorder := borderStyle.Render("└") +
		borderStyle.Render(strings.Repeat("─", innerWidth)) +
		borderStyle.Render("┘")

	contentStyle := lipgloss.NewStyle().Width(innerWidth).MaxWidth(innerWidth)

	contentLines := strings.Split(content, "\n")
	boxHeight := height - 2
	if boxHeight < 0 {
		boxHeight = 0
	}

	var paddedLines []string
	for i := 0; i < boxHeight; i++ {
		var line string
		if i < len(contentLines) {
			line = contentLines[i]
		}
		paddedLines = append(paddedLines,
			borderStyle.Render("│")+
				contentStyle.Render(line)+
				borderStyle.Render("│"))
	}

	return topBorder + "\n" + strings.Join(paddedLines, "\n") + "\n" + bottomBorder
}

// contentHeight is the height left for the active view after the header,
// tab bar, and notice line.
func (m Model) contentHeight() int {
	h := m.height - 3
	if h < 3 {
		h = 3
	}
	return h
}
