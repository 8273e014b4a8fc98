package ui

import (
	"bytes"
	"context"
	"errors"
	"io"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/foodshare/foodshare/internal/catalog"
	"github.com/foodshare/foodshare/internal/session"
	"github.com/foodshare/foodshare/internal/state"
)

func testModel(t *testing.T) Model {
	t.Helper()
	store := state.New(catalog.Seed(), nil, zerolog.New(io.Discard))
	m := New(Options{
		Store:     store,
		PrefsPath: filepath.Join(t.TempDir(), "prefs.toml"),
	})
	m.width = 120
	m.height = 40
	m.ready = true
	return m
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEscape}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		if !ok {
			t.Fatalf("Update returned %T, want Model", next)
		}
	}
	return m
}

func TestLoginTransition(t *testing.T) {
	m := testModel(t)
	if m.currentView != ViewLogin {
		t.Fatalf("initial view = %v, want login", m.currentView)
	}

	m = press(t, m, "enter") // first role is donor
	if m.currentView != ViewListings {
		t.Fatalf("view after login = %v, want listings", m.currentView)
	}
	snap := m.snapshot
	if !snap.Authenticated() || snap.User.Role != session.RoleDonor {
		t.Fatalf("snapshot after login = %+v", snap.User)
	}
}

func TestLoginByNumberKey(t *testing.T) {
	m := press(t, testModel(t), "3")
	if m.snapshot.User == nil || m.snapshot.User.Role != session.RoleNGO {
		t.Fatalf("user after pressing 3 = %+v, want ngo", m.snapshot.User)
	}
}

func TestLogoutClearsSessionState(t *testing.T) {
	m := press(t, testModel(t), "1") // login as donor
	m.searchInput.SetValue("apple")
	m.category = catalog.CategoryBakery
	m.selectedRow = 1

	m = press(t, m, "x")
	if m.currentView != ViewLogin {
		t.Fatalf("view after logout = %v, want login", m.currentView)
	}
	if m.snapshot.Authenticated() {
		t.Fatal("still authenticated after logout")
	}
	if m.searchInput.Value() != "" || m.category != catalog.CategoryAll || m.selectedRow != 0 {
		t.Fatalf("session UI state leaked: search=%q category=%s row=%d",
			m.searchInput.Value(), m.category, m.selectedRow)
	}
}

func TestReceiverHasNoPostTab(t *testing.T) {
	m := press(t, testModel(t), "2") // login as receiver

	tabs := m.tabs()
	for _, tab := range tabs {
		if tab == ViewPost {
			t.Fatal("receiver tabs include post")
		}
	}

	m = press(t, m, "2") // try to open the post tab anyway
	if m.currentView == ViewPost {
		t.Fatal("receiver reached the post view")
	}
	if m.notice == "" {
		t.Fatal("blocked tab switch produced no notice")
	}
}

func TestTabCycling(t *testing.T) {
	m := press(t, testModel(t), "1") // donor: three tabs

	m = press(t, m, "tab")
	if m.currentView != ViewPost {
		t.Fatalf("after tab view = %v, want post", m.currentView)
	}
	// Post form consumes tab for field focus; leave via esc then cycle on.
	m = press(t, m, "esc")
	if m.currentView != ViewListings {
		t.Fatalf("after esc view = %v, want listings", m.currentView)
	}
	m = press(t, m, "3")
	if m.currentView != ViewProfile {
		t.Fatalf("after 3 view = %v, want profile", m.currentView)
	}
	m = press(t, m, "tab")
	if m.currentView != ViewListings {
		t.Fatalf("tab from profile = %v, want wrap to listings", m.currentView)
	}
}

func TestSearchFiltersListings(t *testing.T) {
	m := press(t, testModel(t), "1", "/")
	if !m.searching {
		t.Fatal("/ did not focus the search input")
	}

	m = press(t, m, "a", "p", "p", "l", "e")
	items := m.filteredItems()
	if len(items) != 1 || items[0].Title != "Fresh Apples" {
		t.Fatalf("filtered items while typing = %+v", items)
	}

	m = press(t, m, "enter")
	if m.searching {
		t.Fatal("enter did not leave search mode")
	}
	if got := m.filteredItems(); len(got) != 1 {
		t.Fatalf("filter lost on confirm: %+v", got)
	}
}

func TestCategoryCycleConjunctiveWithSearch(t *testing.T) {
	m := press(t, testModel(t), "1", "/")
	m = press(t, m, "b", "r", "e", "a", "d", "enter")

	// Cycle to fruits: text matches Day-old Bread, category excludes it.
	m = press(t, m, "f")
	if m.category != catalog.CategoryFruits {
		t.Fatalf("category after f = %s, want fruits", m.category)
	}
	if got := m.filteredItems(); len(got) != 0 {
		t.Fatalf("conjunctive filter broken: %+v", got)
	}
}

func TestClaimShowsNotice(t *testing.T) {
	m := press(t, testModel(t), "1", "c")
	if m.notice == "" {
		t.Fatal("claim produced no notice")
	}
	// Next keypress clears it.
	m = press(t, m, "j")
	if m.notice != "" {
		t.Fatalf("notice not cleared: %q", m.notice)
	}
}

func TestPostFormSubmission(t *testing.T) {
	m := press(t, testModel(t), "1")
	m = press(t, m, "2")
	if m.currentView != ViewPost {
		t.Fatalf("view = %v, want post", m.currentView)
	}

	m.formInputs[fieldTitle].SetValue("Lentil Stew")
	m.formInputs[fieldDescription].SetValue("Four portions, still warm.")
	m.formInputs[fieldQuantity].SetValue("4 portions")
	m.formInputs[fieldExpiry].SetValue("2025-06-01")
	m.formInputs[fieldLocation].SetValue("Community Hall")
	m.formCategoryIdx = 4 // meals

	before := len(m.snapshot.Items)

	// Enter walks the focus cycle; only the submit row posts.
	m = press(t, m, "enter")
	if m.currentView != ViewPost || len(m.snapshot.Items) != before {
		t.Fatal("enter on a text field submitted the form")
	}
	m = press(t, m, "enter", "enter", "enter", "enter", "enter")
	if m.formFocusIdx != fieldSubmit {
		t.Fatalf("focus after walking the form = %d, want submit row", m.formFocusIdx)
	}
	m = press(t, m, "enter")

	if m.currentView != ViewListings {
		t.Fatalf("view after submit = %v, want listings", m.currentView)
	}
	items := m.snapshot.Items
	if len(items) != before+1 {
		t.Fatalf("catalog size = %d, want %d", len(items), before+1)
	}
	added := items[len(items)-1]
	if added.Title != "Lentil Stew" || added.Category != catalog.CategoryMeals {
		t.Fatalf("added item = %+v", added)
	}
	if added.PostedBy != session.ProfileFor(session.RoleDonor).Name {
		t.Fatalf("PostedBy = %q, want donor name", added.PostedBy)
	}
	// Draft resets to defaults.
	if m.formInputs[fieldTitle].Value() != "" || m.formCategoryIdx != 0 {
		t.Fatal("draft not reset after submit")
	}
}

func TestPostFormValidationFailure(t *testing.T) {
	m := press(t, testModel(t), "1", "2")
	m.formInputs[fieldTitle].SetValue("Only a title")

	before := len(m.snapshot.Items)
	m = press(t, m, "tab", "tab", "tab", "tab", "tab", "tab", "enter")

	if m.currentView != ViewPost {
		t.Fatalf("view after invalid submit = %v, want post", m.currentView)
	}
	if len(m.snapshot.Items) != before {
		t.Fatal("invalid draft reached the catalog")
	}
	if m.notice == "" || m.noticeLevel != noticeError {
		t.Fatalf("notice = %q level=%d, want validation error", m.notice, m.noticeLevel)
	}
}

func TestPostFormTypesNavigationRunes(t *testing.T) {
	m := press(t, testModel(t), "1", "2")
	if m.formFocusIdx != fieldTitle {
		t.Fatalf("initial form focus = %d, want title", m.formFocusIdx)
	}

	m = press(t, m, "j", "a", "m")
	if got := m.formInputs[fieldTitle].Value(); got != "jam" {
		t.Fatalf("title after typing = %q, want jam", got)
	}
	if m.formFocusIdx != fieldTitle {
		t.Fatalf("typing moved focus to %d", m.formFocusIdx)
	}

	m = press(t, m, "k", "a", "l", "e")
	if got := m.formInputs[fieldTitle].Value(); got != "jamkale" {
		t.Fatalf("title after more typing = %q", got)
	}
}

func TestPostFormRuneNavigationOnSelectorRows(t *testing.T) {
	m := press(t, testModel(t), "1", "2")
	for i := 0; i < formFieldCount; i++ {
		m = press(t, m, "tab")
	}
	if m.formFocusIdx != fieldCategory {
		t.Fatalf("focus = %d, want category row", m.formFocusIdx)
	}

	// No input has focus on the selector rows, so j/k move through them.
	m = press(t, m, "j")
	if m.formFocusIdx != fieldSubmit {
		t.Fatalf("j on category row moved focus to %d, want submit row", m.formFocusIdx)
	}
	m = press(t, m, "k")
	if m.formFocusIdx != fieldCategory {
		t.Fatalf("k on submit row moved focus to %d, want category row", m.formFocusIdx)
	}
}

func TestQuitKeyOnLogin(t *testing.T) {
	m := testModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q on the login view produced no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("q produced %T, want quit", cmd())
	}
}

func TestProgramStopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := newProgram(ctx, testModel(t),
		tea.WithInput(&bytes.Buffer{}),
		tea.WithoutRenderer(),
	)
	if _, err := p.Run(); !errors.Is(err, tea.ErrProgramKilled) {
		t.Fatalf("Run with canceled context = %v, want killed", err)
	}
}

func TestHelpOverlayTogglesAndCloses(t *testing.T) {
	m := press(t, testModel(t), "1", "?")
	if !m.showHelp {
		t.Fatal("? did not open help")
	}
	m = press(t, m, "j")
	if m.showHelp {
		t.Fatal("help did not close on keypress")
	}
	if m.currentView != ViewListings {
		t.Fatalf("closing help changed view to %v", m.currentView)
	}
}
