package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/foodshare/foodshare/internal/catalog"
)

// initSearchInput initializes the listings search field.
func (m *Model) initSearchInput() {
	input := textinput.New()
	input.Placeholder = "title or description"
	input.CharLimit = 64
	input.Width = 30
	m.searchInput = input
}

// categoryCycle is the order the f key walks through.
func categoryCycle() []catalog.Category {
	return append([]catalog.Category{catalog.CategoryAll}, catalog.Categories()...)
}

// handleListingsKey processes keyboard input for the listings view.
func (m Model) handleListingsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While the search field has focus it owns most keys.
	if m.searching {
		switch {
		case key.Matches(msg, m.keys.Escape):
			m.searchInput.SetValue("")
			m.searchInput.Blur()
			m.searching = false
			m.clampSelection()
			return m, nil

		case key.Matches(msg, m.keys.Confirm):
			m.searchInput.Blur()
			m.searching = false
			m.clampSelection()
			return m, nil
		}

		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		m.clampSelection()
		return m, cmd
	}

	if cmd, handled := m.handleGlobalKey(msg); handled {
		return m, cmd
	}

	items := m.filteredItems()

	switch {
	case key.Matches(msg, m.keys.Search):
		m.searching = true
		return m, m.searchInput.Focus()

	case key.Matches(msg, m.keys.Escape):
		if m.searchInput.Value() != "" {
			m.searchInput.SetValue("")
			m.clampSelection()
		}
		return m, nil

	case key.Matches(msg, m.keys.CycleCategory):
		m.cycleCategory()
		return m, nil

	case key.Matches(msg, m.keys.Claim):
		if len(items) > 0 {
			m.setNotice("Claiming is not available yet. Contact the poster directly.", noticeWarn)
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.selectedRow < len(items)-1 {
			m.selectedRow++
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.selectedRow > 0 {
			m.selectedRow--
		}
		return m, nil

	case key.Matches(msg, m.keys.Top):
		m.selectedRow = 0
		return m, nil

	case key.Matches(msg, m.keys.Bottom):
		if len(items) > 0 {
			m.selectedRow = len(items) - 1
		}
		return m, nil
	}

	return m, nil
}

// cycleCategory advances the category filter and remembers it.
func (m *Model) cycleCategory() {
	cycle := categoryCycle()
	for i, c := range cycle {
		if c == m.category {
			m.category = cycle[(i+1)%len(cycle)]
			m.clampSelection()
			m.savePrefs()
			return
		}
	}
	m.category = catalog.CategoryAll
}

// filteredItems returns the catalog filtered by the current search term
// and category, in catalog order.
func (m Model) filteredItems() []catalog.FoodItem {
	if m.store == nil {
		return catalog.Filter(m.snapshot.Items, m.searchInput.Value(), m.category)
	}
	return m.store.List(m.searchInput.Value(), m.category)
}

// selectedItem returns the item under the cursor, or nil.
func (m Model) selectedItem() *catalog.FoodItem {
	items := m.filteredItems()
	if len(items) == 0 || m.selectedRow < 0 || m.selectedRow >= len(items) {
		return nil
	}
	return &items[m.selectedRow]
}

// clampSelection keeps the cursor inside the filtered list after the
// filter or catalog changes.
func (m *Model) clampSelection() {
	count := len(m.filteredItems())
	if count == 0 {
		m.selectedRow = 0
		return
	}
	if m.selectedRow >= count {
		m.selectedRow = count - 1
	}
	if m.selectedRow < 0 {
		m.selectedRow = 0
	}
}

// renderListings renders the listings view with split layout (table + detail).
func (m Model) renderListings() string {
	styles := m.theme.Styles()
	contentHeight := m.contentHeight()

	items := m.filteredItems()

	// Filter bar above the panes: search field and category indicator.
	filterBar := m.renderFilterBar(styles)

	if len(items) == 0 {
		var empty string
		if len(m.snapshot.Items) == 0 {
			empty = styles.MutedText.Render("No food has been posted yet")
		} else {
			empty = styles.MutedText.Render("No items match the current filters")
		}
		body := lipgloss.Place(m.width, contentHeight-1, lipgloss.Center, lipgloss.Center, empty)
		return filterBar + "\n" + body
	}

	// Pane split: 40% table, 60% detail.
	tableWidth := m.width * 40 / 100
	if tableWidth < 30 {
		tableWidth = min(30, m.width)
	}
	detailWidth := m.width - tableWidth
	paneHeight := contentHeight - 1

	title := fmt.Sprintf("Listings (%d)", len(m.snapshot.Items))
	if len(items) != len(m.snapshot.Items) {
		title = fmt.Sprintf("Listings (%d/%d)", len(items), len(m.snapshot.Items))
	}
	tablePane := m.renderTitledBox(title, m.renderItemRows(items, tableWidth-2), tableWidth, paneHeight, !m.searching)

	var detailContent string
	if item := m.selectedItem(); item != nil {
		detailContent = m.renderItemDetail(*item, detailWidth-4)
	} else {
		detailContent = styles.MutedText.Render("Select an item")
	}
	detailPane := m.renderTitledBox("Details", detailContent, detailWidth, paneHeight, false)

	panes := lipgloss.JoinHorizontal(lipgloss.Top, tablePane, detailPane)
	return filterBar + "\n" + panes
}

// renderFilterBar renders the search field and active category filter.
func (m Model) renderFilterBar(styles Styles) string {
	var search string
	if m.searching {
		search = styles.AccentText.Render("Search: ") + m.searchInput.View()
	} else if m.searchInput.Value() != "" {
		search = styles.MutedText.Render("Search: ") + styles.Text.Render(m.searchInput.Value()) +
			styles.FaintText.Render("  (esc clears)")
	} else {
		search = styles.FaintText.Render("/ to search")
	}

	var cat string
	if m.category == catalog.CategoryAll {
		cat = styles.MutedText.Render("Category: ") + styles.Text.Render("All")
	} else {
		cat = styles.MutedText.Render("Category: ") + styles.CategoryStyle(m.category.String()).Render(m.category.Label())
	}

	return lipgloss.NewStyle().Padding(0, 1).Render(search + "    " + cat)
}

// renderItemRows renders the filtered catalog as styled rows.
func (m Model) renderItemRows(items []catalog.FoodItem, width int) string {
	styles := m.theme.Styles()

	var lines []string
	for i, item := range items {
		content := m.formatItemRow(item, width, i == m.selectedRow)
		if i == m.selectedRow {
			content = styles.Selected.Width(width).Render(content)
		}
		lines = append(lines, content)
	}
	return strings.Join(lines, "\n")
}

// formatItemRow formats a catalog row: "Title · category · quantity".
func (m Model) formatItemRow(item catalog.FoodItem, width int, selected bool) string {
	styles := m.theme.Styles()

	category := item.Category.String()
	quantity := item.Quantity
	sep := " · "
	titleWidth := width - len(category) - len(quantity) - 2*len(sep)
	if titleWidth < 8 {
		titleWidth = 8
	}
	title := truncate(item.Title, titleWidth)

	if selected {
		// Row style supplies colors; keep the text plain for contrast.
		return title + sep + category + sep + quantity
	}
	return styles.Text.Render(title) +
		styles.FaintText.Render(sep) +
		styles.CategoryColor(category).Render(category) +
		styles.FaintText.Render(sep) +
		styles.MutedText.Render(truncate(quantity, 12))
}

// renderItemDetail renders the full record for the selected item.
func (m Model) renderItemDetail(item catalog.FoodItem, width int) string {
	styles := m.theme.Styles()
	if width < 16 {
		width = 16
	}

	label := func(s string) string { return styles.MutedText.Render(s) }

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render(truncate(item.Title, width)))
	b.WriteString("\n")
	b.WriteString(styles.CategoryStyle(item.Category.String()).Render(item.Category.Label()))
	b.WriteString("\n\n")

	for _, line := range wrapText(item.Description, width) {
		b.WriteString(styles.Text.Render(line))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(label("Quantity:  ") + styles.Text.Render(item.Quantity))
	b.WriteString("\n")
	b.WriteString(label("Expires:   ") + styles.WarningText.Render(item.ExpiryDate))
	b.WriteString("\n")
	b.WriteString(label("Pickup:    ") + styles.Text.Render(truncate(item.Location, width-11)))
	b.WriteString("\n")
	b.WriteString(label("Posted by: ") + styles.InfoText.Render(item.PostedBy))
	b.WriteString("\n")
	b.WriteString(label("Posted at: ") + styles.MutedText.Render(item.PostedAt.Format("2006-01-02 15:04")))
	b.WriteString("\n\n")

	// Present but inert, matching the product contract.
	b.WriteString(styles.AccentText.Render("[c] Claim Food"))

	return b.String()
}

// wrapText breaks text into lines no wider than width, on word boundaries.
func wrapText(text string, width int) []string {
	if width <= 0 {
		return nil
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		if len(current)+1+len(word) > width {
			lines = append(lines, current)
			current = word
			continue
		}
		current += " " + word
	}
	return append(lines, current)
}
