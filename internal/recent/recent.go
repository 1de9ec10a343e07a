// Package recent persists the recently used emoji list. The file format
// (a plain JSON array of emoji characters under ~/.emoji_picker) is
// shared with the desktop picker, so both frontends see the same
// history.
package recent

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

const fileName = "recent_emojis.json"

// DefaultMax is how many entries survive an insert when the config does
// not say otherwise.
const DefaultMax = 20

// Store reads and writes the recent-emoji file. Dir overrides the
// default ~/.emoji_picker location (tests point it at a temp dir).
type Store struct {
	Dir string
}

func (s Store) path() (string, error) {
	dir := s.Dir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(home, ".emoji_picker")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(dir, fileName), nil
}

// Load returns the persisted list, oldest last. A missing file is an
// empty history, not an error.
func (s Store) Load() ([]string, error) {
	p, err := s.path()
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var list []string
	if err := json.Unmarshal(b, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (s Store) Save(list []string) error {
	p, err := s.path()
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o644)
}

// Push inserts char at the front, removing any earlier occurrence and
// truncating to max. The input slice is not mutated.
func Push(list []string, char string, max int) []string {
	if max <= 0 {
		max = DefaultMax
	}
	out := make([]string, 0, len(list)+1)
	out = append(out, char)
	for _, c := range list {
		if c == char {
			continue
		}
		out = append(out, c)
	}
	if len(out) > max {
		out = out[:max]
	}
	return out
}
