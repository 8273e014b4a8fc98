// Package app provides the orchestration layer for foodshare.
//
// # Overview
//
// This package is the composition root: it wires configuration,
// preferences, logging, the persisted catalog snapshot, the state store,
// and the UI into the complete application.
//
// # Initialization
//
//  1. Load config from ~/.config/foodshare/config.toml (or -config flag)
//  2. Open the file logger in the data directory
//  3. Load user preferences (theme, last category filter)
//  4. Read the catalog snapshot, seeding a fixed two-item catalog when
//     the file is missing or unreadable
//  5. Build the state store with a write-through saver
//  6. Start the TUI and block until the user quits
//
// # Error Handling
//
// Fatal errors (returned from Run): malformed config, and whatever the
// terminal runtime reports. Recoverable conditions (logged or defaulted,
// never fatal): missing config or prefs files, corrupt catalog snapshots,
// snapshot write failures, unusable log destinations.
//
// There is no background work: every state change happens synchronously
// in response to a key event, and the catalog write happens inside the
// same transition.
package app
