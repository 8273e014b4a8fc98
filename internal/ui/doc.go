// Package ui provides the terminal user interface for foodshare.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. The Model is the single source of UI
// state; every user event flows through Update and the whole screen is
// re-derived in View. The renderer keeps no state of its own: everything
// it displays comes from the state.Store snapshot and the Model's
// selection/filter/draft fields.
//
// # Views
//
// The view state machine is deliberately small:
//
//	Login ──enter/1-3──> Listings
//	Listings/Post/Profile: tab switches (self-loops within the session)
//	any tab ──x──> Login (logout)
//
// Receivers do not get the Post tab.
//
//   - Login: role selection (donor, receiver, ngo); no credentials
//   - Listings: split panes, filtered item table on the left and the
//     selected item's detail on the right; "/" searches, "f" cycles the
//     category filter, both constraints apply together
//   - Post: the item form; required-field validation happens on submit
//     and failures surface on the notice line
//   - Profile: the canned profile card for the active role
//
// # Package Structure
//
//   - app.go: Model, Update dispatch, tab handling, Run
//   - login.go, listings.go, form.go, profile.go: per-view keys + render
//   - header.go: status bar, tab strip, notice line
//   - theme.go: Dracula and Slate palettes compiled to lipgloss styles
//   - keys.go: key bindings (bubbles/key)
//   - box.go, helpers.go: titled panes and text utilities
//
// # Key Bindings
//
//   - 1/2/3: Switch tabs (2 hidden for receivers)
//   - /: Search listings; f: Cycle category filter
//   - c: Claim Food (shows a notice; claiming has no backing operation)
//   - j/k, g/G: Navigation
//   - x: Logout; T: Cycle theme; h/?: Help; e or Ctrl+C: Quit
package ui
