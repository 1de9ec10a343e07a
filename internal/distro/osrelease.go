// Package distro identifies the host Linux distribution and maps it to
// the package-manager command sequence able to install the picker's
// dependencies.
package distro

import (
	"bufio"
	"os"
	"strings"
)

// DefaultOSReleasePath is where every systemd-era distribution publishes
// its identity.
const DefaultOSReleasePath = "/etc/os-release"

// Identity is the host's distribution identity, read once at startup.
type Identity struct {
	Name      string
	VersionID string
}

// Read parses an os-release file into an Identity. There is no fallback
// probing: a host without the file is reported as undetectable.
func Read(path string) (Identity, error) {
	f, err := os.Open(path)
	if err != nil {
		return Identity{}, &DetectionError{Path: path, Err: err}
	}
	defer f.Close()

	fields := map[string]string{}
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, val, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		fields[strings.TrimSpace(key)] = unquote(strings.TrimSpace(val))
	}
	if err := sc.Err(); err != nil {
		return Identity{}, &DetectionError{Path: path, Err: err}
	}

	id := Identity{Name: fields["NAME"], VersionID: fields["VERSION_ID"]}
	if id.Name == "" {
		return Identity{}, &DetectionError{Path: path, Err: errMissingName}
	}
	return id, nil
}

func unquote(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
