package distro

import (
	_ "embed"
	"fmt"
	"os/exec"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed packages.yml
var manifestData []byte

// Family is one supported distribution family: the substring patterns
// that identify it and the privileged commands that install the picker's
// dependencies on it.
type Family struct {
	Name         string     `yaml:"name"`
	Patterns     []string   `yaml:"patterns"`
	ManagerProbe []string   `yaml:"manager_probe"`
	Install      [][]string `yaml:"install"`
}

// Manifest is the full dispatch table plus the manual-install package
// categories reported for unsupported distributions.
type Manifest struct {
	Families   []Family `yaml:"families"`
	Categories []string `yaml:"categories"`
}

var (
	manifestOnce sync.Once
	manifest     *Manifest
	manifestErr  error
)

// Load returns the embedded dispatch table. Parsed once per process.
func Load() (*Manifest, error) {
	manifestOnce.Do(func() {
		var m Manifest
		if err := yaml.Unmarshal(manifestData, &m); err != nil {
			manifestErr = fmt.Errorf("decode package manifest: %w", err)
			return
		}
		manifest = &m
	})
	return manifest, manifestErr
}

// Match selects the family for a reported distribution name. Patterns
// are case-insensitive substrings and the first match wins, in table
// order.
func (m *Manifest) Match(osName string) (*Family, error) {
	lower := strings.ToLower(osName)
	for i := range m.Families {
		for _, pat := range m.Families[i].Patterns {
			if strings.Contains(lower, pat) {
				return &m.Families[i], nil
			}
		}
	}
	return nil, &UnsupportedError{Name: osName, Categories: append([]string(nil), m.Categories...)}
}

// Commands resolves the family's install steps against the host. The
// only host-dependent part is the Fedora-style manager probe: the first
// binary from ManagerProbe found on PATH replaces the {manager}
// placeholder. When none is found the probe falls back to the first
// candidate so the resulting command still names the family's canonical
// tool. lookPath defaults to exec.LookPath.
func (f *Family) Commands(lookPath func(string) (string, error)) [][]string {
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	manager := ""
	if len(f.ManagerProbe) > 0 {
		manager = f.ManagerProbe[0]
		for _, cand := range f.ManagerProbe {
			if _, err := lookPath(cand); err == nil {
				manager = cand
				break
			}
		}
	}
	out := make([][]string, 0, len(f.Install))
	for _, step := range f.Install {
		resolved := make([]string, 0, len(step))
		for _, arg := range step {
			if arg == "{manager}" {
				arg = manager
			}
			resolved = append(resolved, arg)
		}
		out = append(out, resolved)
	}
	return out
}
