package app

import (
	"context"
	"fmt"

	"github.com/foodshare/foodshare/internal/catalog"
	"github.com/foodshare/foodshare/internal/config"
	"github.com/foodshare/foodshare/internal/logging"
	"github.com/foodshare/foodshare/internal/prefs"
	"github.com/foodshare/foodshare/internal/snapshot"
	"github.com/foodshare/foodshare/internal/state"
	"github.com/foodshare/foodshare/internal/ui"
)

// Options configure the foodshare application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/foodshare/prefs.toml
	StorePath  string // empty uses <data_dir>/catalog.json
}

// Run boots the foodshare TUI and blocks until the user quits or ctx is
// canceled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	storePath := opts.StorePath
	if storePath == "" {
		storePath = cfg.StorePath()
	}

	logger := logging.New(cfg.LogPath())
	userPrefs, _ := prefs.Load(opts.PrefsPath)

	items := snapshot.Load(storePath)
	saver := state.SaverFunc(func(items []catalog.FoodItem) error {
		return snapshot.Save(storePath, items)
	})
	store := state.New(items, saver, logger)

	logger.Info().
		Str("store", storePath).
		Int("items", len(items)).
		Msg("foodshare starting")

	category, err := catalog.ParseCategory(userPrefs.Category)
	if err != nil {
		category = catalog.CategoryAll
	}

	uiOpts := ui.Options{
		Store:     store,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
		Category:  category,
	}
	runErr := ui.Run(ctx, uiOpts)

	logger.Info().Msg("foodshare exiting")
	return runErr
}
