package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/foodshare/foodshare/internal/catalog"
	"github.com/foodshare/foodshare/internal/prefs"
	"github.com/foodshare/foodshare/internal/session"
	"github.com/foodshare/foodshare/internal/state"
)

// View represents the current active view.
type View int

const (
	ViewLogin View = iota
	ViewListings
	ViewPost
	ViewProfile
)

// Options configures the UI.
type Options struct {
	Store     *state.Store
	ThemeName string
	PrefsPath string
	Category  catalog.Category // initial listings filter, from prefs
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	store     *state.Store
	prefsPath string

	// UI state
	theme       Theme
	keys        keyMap
	currentView View
	width       int
	height      int
	ready       bool

	// Data state
	snapshot state.Snapshot

	// Login state
	loginIdx int

	// Listings state
	searchInput     textinput.Model
	searching       bool
	category        catalog.Category
	initialCategory catalog.Category
	selectedRow     int

	// Post form state
	formInputs      [formFieldCount]textinput.Model
	formFocusIdx    int
	formCategoryIdx int

	// Transient notice shown under the command bar, cleared on next key
	notice      string
	noticeLevel noticeLevel

	// Help overlay
	showHelp bool
}

type noticeLevel int

const (
	noticeInfo noticeLevel = iota
	noticeWarn
	noticeError
)

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Dracula"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	category := opts.Category
	if category == "" {
		category = catalog.CategoryAll
	}

	m := Model{
		store:           opts.Store,
		prefsPath:       prefsPath,
		theme:           GetTheme(themeName),
		keys:            DefaultKeyMap(),
		currentView:     ViewLogin,
		category:        category,
		initialCategory: category,
	}
	m.initSearchInput()
	m.initFormInputs()
	if opts.Store != nil {
		m.snapshot = opts.Store.Snapshot()
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tea.EnterAltScreen, textinput.Blink)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resizeInputs()
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	if m.currentView == ViewLogin {
		return m.renderLogin()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderTabBar())
	b.WriteString("\n")
	b.WriteString(m.renderNotice())
	b.WriteString("\n")
	b.WriteString(m.renderContent())
	return b.String()
}

// renderContent renders the main content area based on current view.
func (m Model) renderContent() string {
	switch m.currentView {
	case ViewListings:
		return m.renderListings()
	case ViewPost:
		return m.renderPost()
	case ViewProfile:
		return m.renderProfile()
	default:
		return ""
	}
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Help overlay: any key closes it
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	// The notice line is transient; clearing here means any keypress
	// after the one that produced it dismisses it.
	m.notice = ""

	// Ctrl+C always quits, even while typing.
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.currentView {
	case ViewLogin:
		return m.handleLoginKey(msg)
	case ViewListings:
		return m.handleListingsKey(msg)
	case ViewPost:
		return m.handlePostKey(msg)
	case ViewProfile:
		return m.handleProfileKey(msg)
	}

	return m, nil
}

// handleGlobalKey processes keys shared by all authenticated views when no
// text input has focus. The second return value reports whether the key
// was consumed.
func (m *Model) handleGlobalKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit, true

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return nil, true

	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()
		return nil, true

	case key.Matches(msg, m.keys.ViewListings):
		m.switchTab(ViewListings)
		return nil, true

	case key.Matches(msg, m.keys.ViewPost):
		m.switchTab(ViewPost)
		return nil, true

	case key.Matches(msg, m.keys.ViewProfile):
		m.switchTab(ViewProfile)
		return nil, true

	case key.Matches(msg, m.keys.Tab):
		m.cycleTab(1)
		return nil, true

	case key.Matches(msg, m.keys.ShiftTab):
		m.cycleTab(-1)
		return nil, true

	case key.Matches(msg, m.keys.Logout):
		m.logout()
		return nil, true
	}
	return nil, false
}

// tabs returns the tabs available to the active role. Receivers browse
// and view their profile but cannot post.
func (m Model) tabs() []View {
	if m.snapshot.User != nil && m.snapshot.User.Role == session.RoleReceiver {
		return []View{ViewListings, ViewProfile}
	}
	return []View{ViewListings, ViewPost, ViewProfile}
}

// switchTab activates a tab if the active role may see it.
func (m *Model) switchTab(v View) {
	for _, tab := range m.tabs() {
		if tab == v {
			m.currentView = v
			return
		}
	}
	m.setNotice("Receivers cannot post items", noticeWarn)
}

// cycleTab moves to the next or previous available tab.
func (m *Model) cycleTab(dir int) {
	tabs := m.tabs()
	idx := 0
	for i, tab := range tabs {
		if tab == m.currentView {
			idx = i
			break
		}
	}
	idx = (idx + dir + len(tabs)) % len(tabs)
	m.currentView = tabs[idx]
}

// cycleTheme switches to the next theme and remembers the choice.
func (m *Model) cycleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	m.savePrefs()
}

// savePrefs persists theme and category filter. Failures are ignored;
// preferences are a convenience, not data.
func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	_ = prefs.Save(m.prefsPath, prefs.Prefs{
		Theme:    m.theme.Name,
		Category: m.category.String(),
	})
}

// login activates the selected role and enters the listings view.
func (m *Model) login(role session.Role) {
	if m.store != nil {
		m.store.Login(role)
		m.snapshot = m.store.Snapshot()
	}
	m.currentView = ViewListings
}

// logout discards the session and every piece of per-session UI state, so
// the next login starts clean.
func (m *Model) logout() {
	if m.store != nil {
		m.store.Logout()
		m.snapshot = m.store.Snapshot()
	}
	m.searchInput.SetValue("")
	m.searchInput.Blur()
	m.searching = false
	m.category = m.initialCategory
	m.selectedRow = 0
	m.resetForm()
	m.loginIdx = 0
	m.currentView = ViewLogin
}

func (m *Model) setNotice(text string, level noticeLevel) {
	m.notice = text
	m.noticeLevel = level
}

// resizeInputs adjusts input widths to the window.
func (m *Model) resizeInputs() {
	w := m.width/2 - 4
	if w < 20 {
		w = 20
	}
	if w > 60 {
		w = 60
	}
	m.searchInput.Width = w
	for i := range m.formInputs {
		m.formInputs[i].Width = w
	}
}

// Run starts the Bubble Tea program and blocks until the user quits or
// ctx is canceled (SIGINT/SIGTERM arrive here as cancellation).
func Run(ctx context.Context, opts Options) error {
	p := newProgram(ctx, New(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// newProgram builds the Bubble Tea program bound to ctx so cancellation
// tears the UI down cleanly.
func newProgram(ctx context.Context, m Model, extra ...tea.ProgramOption) *tea.Program {
	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, extra...)
	return tea.NewProgram(m, opts...)
}
