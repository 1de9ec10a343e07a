// Package config loads the picker configuration. The file lives next to
// the recent-emoji history in ~/.emoji_picker and uses the same JSON
// schema the desktop picker documents: hotkey, max_recent and window
// dimensions.
package config

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

type Window struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

type Config struct {
	// Hotkey is the global shortcut the desktop environment binds to
	// launch the picker. Informational for the terminal frontend.
	Hotkey    string `json:"hotkey"`
	MaxRecent int    `json:"max_recent"`
	Window    Window `json:"window"`
	// Theme selects the TUI palette: auto, dark or light.
	Theme string `json:"theme"`
}

func Default() Config {
	return Config{
		Hotkey:    "super+period",
		MaxRecent: 20,
		Window:    Window{Width: 800, Height: 600},
		Theme:     "auto",
	}
}

// Path returns ~/.emoji_picker/config.json.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".emoji_picker", "config.json"), nil
}

// Load reads the config file and overlays it on the defaults. A missing
// file yields the defaults; a malformed one is an error.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), err
	}
	return LoadFile(path)
}

func LoadFile(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}
	var user Config
	if err := json.Unmarshal(data, &user); err != nil {
		return cfg, err
	}
	if user.Hotkey != "" {
		cfg.Hotkey = user.Hotkey
	}
	if user.MaxRecent > 0 {
		cfg.MaxRecent = user.MaxRecent
	}
	if user.Window.Width > 0 {
		cfg.Window.Width = user.Window.Width
	}
	if user.Window.Height > 0 {
		cfg.Window.Height = user.Window.Height
	}
	if user.Theme != "" {
		cfg.Theme = user.Theme
	}
	return cfg, nil
}
