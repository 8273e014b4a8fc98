package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/foodshare/foodshare/internal/catalog"
)

// Form field indices. The category selector sits between description and
// quantity, matching the original form order.
const (
	fieldTitle = iota
	fieldDescription
	fieldQuantity
	fieldExpiry
	fieldLocation
	formFieldCount

	// fieldCategory and fieldSubmit are not text inputs; they follow the
	// text fields in the focus cycle.
	fieldCategory = formFieldCount
	fieldSubmit   = formFieldCount + 1
	formSlotCount = formFieldCount + 2
)

var formLabels = [formFieldCount]string{
	fieldTitle:       "Title",
	fieldDescription: "Description",
	fieldQuantity:    "Quantity",
	fieldExpiry:      "Expiry date",
	fieldLocation:    "Pickup location",
}

// initFormInputs initializes the post form text inputs.
func (m *Model) initFormInputs() {
	title := textinput.New()
	title.Placeholder = "e.g. Fresh Apples"
	title.CharLimit = 80
	title.Width = 40

	desc := textinput.New()
	desc.Placeholder = "what it is and why you're sharing it"
	desc.CharLimit = 240
	desc.Width = 40

	quantity := textinput.New()
	quantity.Placeholder = "e.g. 5 kg, 12 loaves"
	quantity.CharLimit = 40
	quantity.Width = 40

	expiry := textinput.New()
	expiry.Placeholder = "YYYY-MM-DD"
	expiry.CharLimit = 10
	expiry.Width = 40

	location := textinput.New()
	location.Placeholder = "where to pick it up"
	location.CharLimit = 120
	location.Width = 40

	m.formInputs[fieldTitle] = title
	m.formInputs[fieldDescription] = desc
	m.formInputs[fieldQuantity] = quantity
	m.formInputs[fieldExpiry] = expiry
	m.formInputs[fieldLocation] = location

	m.formFocusIdx = fieldTitle
	m.formInputs[fieldTitle].Focus()
}

// resetForm restores the draft to its defaults.
func (m *Model) resetForm() {
	for i := range m.formInputs {
		m.formInputs[i].SetValue("")
		m.formInputs[i].Blur()
	}
	m.formCategoryIdx = 0
	m.formFocusIdx = fieldTitle
	m.formInputs[fieldTitle].Focus()
}

// draft assembles the current form values.
func (m Model) draft() catalog.Draft {
	return catalog.Draft{
		Title:       m.formInputs[fieldTitle].Value(),
		Description: m.formInputs[fieldDescription].Value(),
		Category:    catalog.Categories()[m.formCategoryIdx],
		Quantity:    m.formInputs[fieldQuantity].Value(),
		ExpiryDate:  m.formInputs[fieldExpiry].Value(),
		Location:    m.formInputs[fieldLocation].Value(),
	}
}

// handlePostKey processes keyboard input for the post form. While a text
// field has focus it owns every rune, so words containing j or k type
// normally; tab and shift+tab always move focus. Enter advances through
// the form and submits from the submit row.
func (m Model) handlePostKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.currentView = ViewListings
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		if m.formFocusIdx == fieldSubmit {
			m.submitForm()
		} else {
			m.moveFormFocus(1)
		}
		return m, nil

	case key.Matches(msg, m.keys.Tab):
		m.moveFormFocus(1)
		return m, nil

	case key.Matches(msg, m.keys.ShiftTab):
		m.moveFormFocus(-1)
		return m, nil
	}

	// Category selector and submit row: no input has focus, so navigation
	// runes and global keys apply.
	if m.formFocusIdx >= formFieldCount {
		switch {
		case key.Matches(msg, m.keys.Down):
			m.moveFormFocus(1)
			return m, nil
		case key.Matches(msg, m.keys.Up):
			m.moveFormFocus(-1)
			return m, nil
		}
		if m.formFocusIdx == fieldCategory {
			count := len(catalog.Categories())
			switch {
			case key.Matches(msg, m.keys.Left):
				m.formCategoryIdx = (m.formCategoryIdx - 1 + count) % count
				return m, nil
			case key.Matches(msg, m.keys.Right):
				m.formCategoryIdx = (m.formCategoryIdx + 1) % count
				return m, nil
			}
		}
		if cmd, handled := m.handleGlobalKey(msg); handled {
			return m, cmd
		}
		return m, nil
	}

	// Let the focused input handle the key.
	var cmd tea.Cmd
	m.formInputs[m.formFocusIdx], cmd = m.formInputs[m.formFocusIdx].Update(msg)
	return m, cmd
}

// moveFormFocus shifts focus through the form slots, wrapping around.
func (m *Model) moveFormFocus(dir int) {
	if m.formFocusIdx < formFieldCount {
		m.formInputs[m.formFocusIdx].Blur()
	}
	m.formFocusIdx = (m.formFocusIdx + dir + formSlotCount) % formSlotCount
	if m.formFocusIdx < formFieldCount {
		m.formInputs[m.formFocusIdx].Focus()
	}
}

// submitForm validates the draft and adds the item to the catalog. On
// success the draft resets and the view switches to listings; on
// validation failure the notice names the missing field.
func (m *Model) submitForm() {
	if m.store == nil {
		return
	}

	item, err := m.store.AddItem(m.draft())
	if err != nil {
		m.setNotice(err.Error(), noticeError)
		return
	}

	m.snapshot = m.store.Snapshot()
	m.resetForm()
	m.currentView = ViewListings
	m.clampSelection()

	if m.snapshot.LastSaveFailed {
		m.setNotice("Posted \""+item.Title+"\", but saving to disk failed", noticeError)
		return
	}
	m.setNotice("Posted \""+item.Title+"\"", noticeInfo)
}

// renderPost renders the item creation form.
func (m Model) renderPost() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Post food"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("All fields are required."))
	b.WriteString("\n\n")

	renderLabel := func(idx int, label string) string {
		padded := label + ":" + strings.Repeat(" ", 17-len(label))
		if m.formFocusIdx == idx {
			return styles.AccentText.Render(padded)
		}
		return styles.MutedText.Render(padded)
	}

	// Title and description ahead of the category row.
	for _, idx := range []int{fieldTitle, fieldDescription} {
		b.WriteString(renderLabel(idx, formLabels[idx]))
		b.WriteString(m.formInputs[idx].View())
		b.WriteString("\n\n")
	}

	// Category selector row.
	b.WriteString(renderLabel(fieldCategory, "Category"))
	b.WriteString(m.renderCategorySelector(styles))
	b.WriteString("\n\n")

	for _, idx := range []int{fieldQuantity, fieldExpiry, fieldLocation} {
		b.WriteString(renderLabel(idx, formLabels[idx]))
		b.WriteString(m.formInputs[idx].View())
		b.WriteString("\n\n")
	}

	// Submit row at the end of the focus cycle.
	if m.formFocusIdx == fieldSubmit {
		b.WriteString(styles.Selected.Render(" [ Post food ] "))
	} else {
		b.WriteString(styles.MutedText.Render(" [ Post food ] "))
	}
	b.WriteString("\n\n")

	b.WriteString(styles.FaintText.Render("Enter: Next field, posts on the submit row  •  Tab: Next field  •  Esc: Back to listings"))

	form := lipgloss.NewStyle().Padding(0, 2).Render(b.String())
	return lipgloss.NewStyle().Height(m.contentHeight()).Render(form)
}

// renderCategorySelector renders the closed category set, highlighting the
// selection.
func (m Model) renderCategorySelector(styles Styles) string {
	parts := make([]string, 0, len(catalog.Categories()))
	for i, c := range catalog.Categories() {
		if i == m.formCategoryIdx {
			parts = append(parts, styles.CategoryStyle(c.String()).Render(c.Label()))
			continue
		}
		parts = append(parts, styles.MutedText.Render(c.Label()))
	}
	sep := styles.FaintText.Render(" ")
	out := strings.Join(parts, sep)
	if m.formFocusIdx == fieldCategory {
		out += styles.FaintText.Render("  (left/right)")
	}
	return out
}
