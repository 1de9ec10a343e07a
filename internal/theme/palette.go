package theme

import (
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Palette is the subset of terminal colors the picker styles with.
type Palette struct {
	Background string
	Foreground string
	Accent     string
}

// OmarchyThemeFile is the alacritty.toml inside the current Omarchy
// theme; it doubles as the palette source even for non-Alacritty
// terminals.
func OmarchyThemeFile() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "omarchy", "current", "theme", "alacritty.toml")
}

func loadFromOmarchy() (Palette, bool) {
	p := OmarchyThemeFile()
	if p == "" {
		return Palette{}, false
	}
	b, err := os.ReadFile(p)
	if err != nil {
		return Palette{}, false
	}
	return ParseAlacrittyPalette(b)
}

// ParseAlacrittyPalette extracts the primary colors and an accent from
// Alacritty-style TOML.
func ParseAlacrittyPalette(data []byte) (Palette, bool) {
	var root map[string]any
	if err := toml.Unmarshal(data, &root); err != nil {
		return Palette{}, false
	}
	var pal Palette
	colors, _ := root["colors"].(map[string]any)
	if colors == nil {
		return pal, false
	}
	if prim, ok := colors["primary"].(map[string]any); ok {
		if bg, ok := prim["background"].(string); ok {
			pal.Background = normalizeHex(bg)
		}
		if fg, ok := prim["foreground"].(string); ok {
			pal.Foreground = normalizeHex(fg)
		}
	}
	if norm, ok := colors["normal"].(map[string]any); ok {
		// Blue is the conventional accent; fall back to magenta.
		if s, ok := norm["blue"].(string); ok {
			pal.Accent = normalizeHex(s)
		} else if s, ok := norm["magenta"].(string); ok {
			pal.Accent = normalizeHex(s)
		}
	}
	if pal.Background == "" && pal.Foreground == "" {
		return pal, false
	}
	return pal, true
}

// normalizeHex converts Alacritty-style "0x1d2021" to "#1d2021".
func normalizeHex(s string) string {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return s
	case strings.HasPrefix(s, "0x") && len(s) == 8:
		return "#" + s[2:]
	case s[0] == '#' && len(s) == 7:
		return s
	case len(s) == 6:
		return "#" + s
	}
	return s
}
