// Package theme resolves the picker's terminal palette from the
// desktop environment so the TUI matches the rest of the system.
package theme

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
)

// Theme is the resolved appearance for the TUI.
type Theme struct {
	Mode   string // auto|dark|light as configured
	Dark   bool
	Colors Palette
}

// Detect resolves a theme. Explicit config wins; auto mode prefers the
// Omarchy current theme, then pywal, then dark.
func Detect(mode string) Theme {
	t := Theme{Mode: mode, Dark: true}
	switch mode {
	case "dark":
		return t
	case "light":
		t.Dark = false
		return t
	}
	if pal, ok := loadFromOmarchy(); ok {
		t.Colors = pal
		if r, g, b, ok := hexToRGB(pal.Background); ok {
			t.Dark = luminance(r, g, b) < 0.5
		}
		return t
	}
	if bg, ok := pywalBackground(); ok {
		if r, g, b, okc := hexToRGB(bg); okc {
			t.Dark = luminance(r, g, b) < 0.5
		}
	}
	return t
}

type pywalColors struct {
	Special struct {
		Background string `json:"background"`
	} `json:"special"`
}

func pywalBackground() (string, bool) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", false
	}
	b, err := os.ReadFile(filepath.Join(home, ".cache", "wal", "colors.json"))
	if err != nil {
		return "", false
	}
	var c pywalColors
	if err := json.Unmarshal(b, &c); err != nil {
		return "", false
	}
	if c.Special.Background == "" {
		return "", false
	}
	return c.Special.Background, true
}

func luminance(r, g, b int) float64 {
	return 0.2126*float64(r)/255 + 0.7152*float64(g)/255 + 0.0722*float64(b)/255
}

func hexToRGB(s string) (int, int, int, bool) {
	if len(s) != 7 || s[0] != '#' {
		return 0, 0, 0, false
	}
	r, err1 := strconv.ParseUint(s[1:3], 16, 8)
	g, err2 := strconv.ParseUint(s[3:5], 16, 8)
	b, err3 := strconv.ParseUint(s[5:7], 16, 8)
	if err1 != nil || err2 != nil || err3 != nil {
		return 0, 0, 0, false
	}
	return int(r), int(g), int(b), true
}
