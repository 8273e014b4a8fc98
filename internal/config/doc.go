// Package config handles loading the foodshare configuration file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/foodshare/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// After the file is read, the FOODSHARE_DATA_DIR environment variable
// (usually supplied through a .env file loaded at startup) overrides the
// configured data directory. This mirrors how the store path is pointed at
// a scratch location in tests.
//
// # Default Values
//
//   - Config file: ~/.config/foodshare/config.toml
//   - Data directory: ~/.local/share/foodshare
//   - Catalog snapshot: <data_dir>/catalog.json
//   - Application log: <data_dir>/foodshare.log
//
// # TOML Format
//
// Example config.toml:
//
//	data_dir = "~/.local/share/foodshare"
//
// The field is optional. Tilde expansion is performed automatically.
//
// # Error Handling
//
// Missing config files are NOT an error - defaults are used so foodshare
// works out-of-the-box. Load returns errors only for unreadable files,
// malformed TOML, and path expansion failures.
package config
