// Package emoji loads the emoji dataset and answers search queries over
// it. The dataset format is the same emoji.json the desktop picker
// uses: a map from emoji character to name, slug and group. A curated
// set ships embedded; an emoji.json next to the binary or in the
// working directory overrides it.
package emoji

import (
	_ "embed"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/sahilm/fuzzy"
)

//go:embed emoji.json
var embedded []byte

// Entry is one emoji with its searchable metadata.
type Entry struct {
	Char  string
	Name  string
	Slug  string
	Group string
}

func (e Entry) searchText() string {
	return strings.ToLower(e.Name + " " + e.Slug + " " + e.Group)
}

type rawInfo struct {
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Group string `json:"group"`
}

var (
	loadOnce sync.Once
	loaded   []Entry
	loadErr  error
)

// Load returns all known emojis, grouped and in stable order. The
// dataset is resolved once per process: external overrides first, then
// the embedded copy.
func Load() ([]Entry, error) {
	loadOnce.Do(func() {
		data := embedded
		if b, ok := readOverride(); ok {
			data = b
		}
		loaded, loadErr = parse(data)
	})
	return loaded, loadErr
}

// readOverride looks for an emoji.json next to the executable, then in
// the working directory, mirroring the desktop picker's lookup.
func readOverride() ([]byte, bool) {
	var candidates []string
	if exe, err := os.Executable(); err == nil {
		candidates = append(candidates, filepath.Join(filepath.Dir(exe), "emoji.json"))
	}
	candidates = append(candidates, "emoji.json")
	for _, p := range candidates {
		if b, err := os.ReadFile(p); err == nil {
			return b, true
		}
	}
	return nil, false
}

func parse(data []byte) ([]Entry, error) {
	var raw map[string]rawInfo
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	out := make([]Entry, 0, len(raw))
	for char, info := range raw {
		out = append(out, Entry{Char: char, Name: info.Name, Slug: info.Slug, Group: info.Group})
	}
	// Map order is random; sort by group then slug so the grid is stable
	// between runs.
	sort.Slice(out, func(i, j int) bool {
		if out[i].Group != out[j].Group {
			return out[i].Group < out[j].Group
		}
		return out[i].Slug < out[j].Slug
	})
	return out, nil
}

// entrySource adapts a slice of entries to fuzzy.Source.
type entrySource []Entry

func (s entrySource) String(i int) string { return s[i].searchText() }
func (s entrySource) Len() int            { return len(s) }

// Search filters entries the way the desktop picker does: the query is
// split into words and an entry matches when every word appears in its
// name, slug or group. Matches are then ranked fuzzily; entries that
// pass the word filter but score no fuzzy match keep their original
// order at the end.
func Search(entries []Entry, query string) []Entry {
	words := strings.Fields(strings.ToLower(query))
	if len(words) == 0 {
		return entries
	}

	var matched []Entry
	for _, e := range entries {
		text := e.searchText()
		ok := true
		for _, w := range words {
			if !strings.Contains(text, w) {
				ok = false
				break
			}
		}
		if ok {
			matched = append(matched, e)
		}
	}
	if len(matched) == 0 {
		return nil
	}

	ranked := fuzzy.FindFrom(strings.Join(words, " "), entrySource(matched))
	if len(ranked) == 0 {
		return matched
	}
	out := make([]Entry, 0, len(matched))
	seen := make(map[int]struct{}, len(ranked))
	for _, m := range ranked {
		out = append(out, matched[m.Index])
		seen[m.Index] = struct{}{}
	}
	for i, e := range matched {
		if _, ok := seen[i]; !ok {
			out = append(out, e)
		}
	}
	return out
}

// Groups returns the distinct groups in display order.
func Groups(entries []Entry) []string {
	var out []string
	last := ""
	for _, e := range entries {
		if e.Group != last {
			out = append(out, e.Group)
			last = e.Group
		}
	}
	return out
}
