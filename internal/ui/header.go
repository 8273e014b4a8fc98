package ui

import (
	"fmt"
	"strings"
)

// renderHeader renders the top status bar: logo, active user, and catalog
// counts.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()

	parts := []string{styles.Logo.Render("foodshare")}

	if user := m.snapshot.User; user != nil {
		parts = append(parts,
			styles.Text.Render(user.Name)+
				styles.FaintText.Render(" · ")+
				styles.AccentText.Render(user.Role.Label()))
	}

	parts = append(parts,
		styles.MutedText.Render("Items:")+" "+
			styles.Text.Render(fmt.Sprintf("%d", len(m.snapshot.Items))))

	if m.snapshot.PostedThisSession > 0 {
		parts = append(parts,
			styles.MutedText.Render("Posted:")+" "+
				styles.SuccessText.Render(fmt.Sprintf("%d", m.snapshot.PostedThisSession)))
	}

	if m.snapshot.LastSaveFailed {
		parts = append(parts, styles.DangerText.Render("SAVE FAILED"))
	}

	return styles.Header.Width(m.width).Render(strings.Join(parts, "  "))
}

// renderTabBar renders the tab strip with the active tab highlighted,
// followed by context key hints.
func (m Model) renderTabBar() string {
	styles := m.theme.Styles()

	labels := map[View]string{
		ViewListings: "1:Listings",
		ViewPost:     "2:Post",
		ViewProfile:  "3:Profile",
	}

	segments := make([]string, 0, 6)
	for _, tab := range m.tabs() {
		if tab == m.currentView {
			segments = append(segments, styles.Selected.Render(" "+labels[tab]+" "))
			continue
		}
		segments = append(segments, styles.MutedText.Render(labels[tab]))
	}

	hints := m.contextHints()
	if hints != "" {
		segments = append(segments, styles.FaintText.Render(hints))
	}

	return styles.Header.Width(m.width).Render(strings.Join(segments, "  "))
}

// contextHints returns the command hints for the active view.
func (m Model) contextHints() string {
	switch m.currentView {
	case ViewListings:
		if m.searching {
			return "Enter: Apply  •  Esc: Cancel"
		}
		return "/: Search  •  f: " + m.categoryHint() + "  •  c: Claim  •  j/k: Move  •  x: Logout  •  ?: Help"
	case ViewPost:
		return "Enter: Next, posts on submit row  •  Tab: Field  •  Esc: Listings"
	case ViewProfile:
		return "x: Logout  •  ?: Help"
	}
	return ""
}

// categoryHint shows the current category filter on the f hint.
func (m Model) categoryHint() string {
	return m.category.Label()
}

// renderNotice renders the transient notice line, or a blank placeholder
// so the layout stays stable.
func (m Model) renderNotice() string {
	styles := m.theme.Styles()
	if m.notice == "" {
		return ""
	}

	text := truncate(m.notice, m.width-2)
	switch m.noticeLevel {
	case noticeError:
		return " " + styles.DangerText.Render(text)
	case noticeWarn:
		return " " + styles.WarningText.Render(text)
	default:
		return " " + styles.SuccessText.Render(text)
	}
}
