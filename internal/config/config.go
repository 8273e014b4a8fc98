package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the few settings foodshare needs: where the catalog
// snapshot and log file live.
type Config struct {
	DataDir string
}

const (
	defaultConfigPath = "~/.config/foodshare/config.toml"
	defaultDataDir    = "~/.local/share/foodshare"

	// envDataDir overrides the configured data directory. It is typically
	// set via a .env file loaded at startup.
	envDataDir = "FOODSHARE_DATA_DIR"
)

// Load locates and parses the foodshare config, falling back to defaults
// when missing. A missing file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{DataDir: defaultDataDir}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg.finalize()
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		DataDir string `toml:"data_dir"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if dir := strings.TrimSpace(raw.DataDir); dir != "" {
		cfg.DataDir = dir
	}
	return cfg.finalize()
}

// finalize applies the environment override and expands paths.
func (c Config) finalize() (Config, error) {
	if dir := strings.TrimSpace(os.Getenv(envDataDir)); dir != "" {
		c.DataDir = dir
	}
	expanded, err := expandPath(c.DataDir)
	if err != nil {
		return Config{}, fmt.Errorf("resolve data dir: %w", err)
	}
	c.DataDir = expanded
	return c, nil
}

// StorePath returns the path of the catalog snapshot file.
func (c Config) StorePath() string {
	return filepath.Join(c.DataDir, "catalog.json")
}

// LogPath returns the path of the application log file.
func (c Config) LogPath() string {
	return filepath.Join(c.DataDir, "foodshare.log")
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
