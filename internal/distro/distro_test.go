package distro

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeOSRelease(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "os-release")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestReadParsesQuotedFields(t *testing.T) {
	p := writeOSRelease(t, `# comment line
NAME="Ubuntu"
VERSION_ID="24.04"
PRETTY_NAME="Ubuntu 24.04 LTS"
ID=ubuntu
`)
	id, err := Read(p)
	require.NoError(t, err)
	require.Equal(t, "Ubuntu", id.Name)
	require.Equal(t, "24.04", id.VersionID)
}

func TestReadUnquotedAndSingleQuoted(t *testing.T) {
	p := writeOSRelease(t, "NAME='Arch Linux'\nVERSION_ID=rolling\n")
	id, err := Read(p)
	require.NoError(t, err)
	require.Equal(t, "Arch Linux", id.Name)
	require.Equal(t, "rolling", id.VersionID)
}

func TestReadMissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "nope"))
	var de *DetectionError
	require.ErrorAs(t, err, &de)
}

func TestReadMissingName(t *testing.T) {
	p := writeOSRelease(t, "VERSION_ID=1\nID=mystery\n")
	_, err := Read(p)
	var de *DetectionError
	require.ErrorAs(t, err, &de)
}

func TestMatchFamilies(t *testing.T) {
	m, err := Load()
	require.NoError(t, err)

	tests := []struct {
		osName string
		family string
	}{
		{"Ubuntu", "debian"},
		{"Debian GNU/Linux", "debian"},
		{"Linux Mint", "debian"},
		{"Pop!_OS", "debian"},
		{"Fedora Linux", "fedora"},
		{"Red Hat Enterprise Linux", "fedora"},
		{"CentOS Stream", "fedora"},
		{"Rocky Linux", "fedora"},
		{"AlmaLinux", "fedora"},
		{"Arch Linux", "arch"},
		{"Manjaro Linux", "arch"},
		{"EndeavourOS", "arch"},
		{"openSUSE Tumbleweed", "opensuse"},
		{"SUSE Linux Enterprise Server", "opensuse"},
		{"Gentoo", "gentoo"},
	}
	for _, tt := range tests {
		t.Run(tt.osName, func(t *testing.T) {
			fam, err := m.Match(tt.osName)
			require.NoError(t, err)
			require.Equal(t, tt.family, fam.Name)
		})
	}
}

func TestMatchIsFirstMatchWins(t *testing.T) {
	m, err := Load()
	require.NoError(t, err)

	// A derivative reporting two family names resolves to the earlier
	// table entry, deterministically.
	fam, err := m.Match("Ubuntu Arch Remix")
	require.NoError(t, err)
	require.Equal(t, "debian", fam.Name)
}

func TestMatchUnsupported(t *testing.T) {
	m, err := Load()
	require.NoError(t, err)

	_, err = m.Match("FreeBSD")
	var ue *UnsupportedError
	require.ErrorAs(t, err, &ue)
	require.Equal(t, "FreeBSD", ue.Name)
	require.Len(t, ue.Categories, 3)
}

func TestManifestShape(t *testing.T) {
	m, err := Load()
	require.NoError(t, err)
	require.Len(t, m.Families, 5)
	for _, f := range m.Families {
		require.NotEmpty(t, f.Patterns, "family %s has no patterns", f.Name)
		require.NotEmpty(t, f.Install, "family %s has no install steps", f.Name)
		for _, step := range f.Install {
			require.Equal(t, "sudo", step[0], "family %s step does not request elevation", f.Name)
		}
	}
}

func TestFedoraManagerProbe(t *testing.T) {
	m, err := Load()
	require.NoError(t, err)
	fam, err := m.Match("Fedora Linux")
	require.NoError(t, err)

	only := func(name string) func(string) (string, error) {
		return func(bin string) (string, error) {
			if bin == name {
				return "/usr/bin/" + bin, nil
			}
			return "", errors.New("not found")
		}
	}

	cmds := fam.Commands(only("dnf"))
	require.Contains(t, cmds[0], "dnf")

	cmds = fam.Commands(only("yum"))
	require.Contains(t, cmds[0], "yum")

	// Neither present: keep the canonical tool so the error message
	// names something sensible.
	cmds = fam.Commands(only("nothing"))
	require.Contains(t, cmds[0], "dnf")
}

func TestCommandsResolvePlaceholder(t *testing.T) {
	m, err := Load()
	require.NoError(t, err)
	for _, fam := range m.Families {
		for _, step := range fam.Commands(func(string) (string, error) { return "", errors.New("none") }) {
			require.NotContains(t, step, "{manager}")
		}
	}
}
