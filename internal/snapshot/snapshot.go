// Package snapshot persists the catalog as a single JSON file. The whole
// catalog is rewritten on every change; there is one writer per store file
// and no locking, so concurrent processes pointed at the same path would
// race.
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/foodshare/foodshare/internal/catalog"
)

// Load reads the catalog from path. A missing file, an unreadable file,
// or invalid JSON all fall back to the seed catalog; the caller never
// sees an error from the read path.
func Load(path string) []catalog.FoodItem {
	bytes, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return catalog.Seed()
		}
		return catalog.Seed() // Graceful degradation
	}

	var items []catalog.FoodItem
	if err := json.Unmarshal(bytes, &items); err != nil {
		return catalog.Seed() // Graceful degradation
	}
	if items == nil {
		items = []catalog.FoodItem{}
	}
	return items
}

// Save overwrites the snapshot at path with the full catalog, creating
// parent directories as needed.
func Save(path string, items []catalog.FoodItem) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create store dir: %w", err)
	}

	if items == nil {
		items = []catalog.FoodItem{}
	}
	bytes, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal catalog: %w", err)
	}

	if err := os.WriteFile(path, bytes, 0o644); err != nil {
		return fmt.Errorf("write catalog: %w", err)
	}
	return nil
}
