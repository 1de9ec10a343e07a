package installer

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"emojipick/internal/distro"
)

// fakeRunner records every invocation and fails the configured command.
type fakeRunner struct {
	calls  [][]string
	failOn string
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) error {
	f.calls = append(f.calls, append([]string{name}, args...))
	if name == f.failOn {
		return errors.New("exit status 1")
	}
	return nil
}

func allPresent(bin string) (string, error) { return "/usr/bin/" + bin, nil }

func nonePresent(string) (string, error) { return "", errors.New("not found") }

// newTestInstaller sets up an installer in a temp working directory
// with an Ubuntu os-release and the target file present.
func newTestInstaller(t *testing.T) (*Installer, *fakeRunner, *bytes.Buffer) {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)

	osRelease := filepath.Join(dir, "os-release")
	require.NoError(t, os.WriteFile(osRelease, []byte("NAME=\"Ubuntu\"\nVERSION_ID=\"24.04\"\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultTarget), []byte("#!/usr/bin/env python3\n"), 0o644))

	out := &bytes.Buffer{}
	runner := &fakeRunner{}
	ins := New(out)
	ins.Runner = runner
	ins.OSReleasePath = osRelease
	ins.lookPath = allPresent
	ins.geteuid = func() int { return 1000 }
	return ins, runner, out
}

func TestRunAsRootAbortsBeforeAnything(t *testing.T) {
	ins, runner, _ := newTestInstaller(t)
	ins.geteuid = func() int { return 0 }

	err := ins.Run(context.Background())
	var pe *PrivilegeError
	require.ErrorAs(t, err, &pe)
	require.Empty(t, runner.calls)
}

func TestMissingTargetAbortsBeforeDispatch(t *testing.T) {
	ins, runner, _ := newTestInstaller(t)
	require.NoError(t, os.Remove(ins.Target))

	err := ins.Run(context.Background())
	var me *MissingTargetError
	require.ErrorAs(t, err, &me)
	require.Equal(t, DefaultTarget, me.Path)
	require.Empty(t, runner.calls)
}

func TestDetectionFailureIsFatal(t *testing.T) {
	ins, runner, _ := newTestInstaller(t)
	ins.OSReleasePath = filepath.Join(t.TempDir(), "absent")

	err := ins.Run(context.Background())
	var de *distro.DetectionError
	require.ErrorAs(t, err, &de)
	require.Empty(t, runner.calls)
}

func TestUnsupportedDistroPrintsCategories(t *testing.T) {
	ins, runner, out := newTestInstaller(t)
	require.NoError(t, os.WriteFile(ins.OSReleasePath, []byte("NAME=FreeBSD\nVERSION_ID=14\n"), 0o644))

	err := ins.Run(context.Background())
	var ue *distro.UnsupportedError
	require.ErrorAs(t, err, &ue)
	require.Empty(t, runner.calls, "no package manager may run for an unknown distribution")

	text := out.String()
	require.Contains(t, text, "GUI toolkit binding")
	require.Contains(t, text, "GTK 4 toolkit library")
	require.Contains(t, text, "clipboard helper")
}

func TestSuccessfulRunOnUbuntu(t *testing.T) {
	ins, runner, out := newTestInstaller(t)

	require.NoError(t, ins.Run(context.Background()))

	require.Len(t, runner.calls, 3)
	require.Equal(t, []string{"sudo", "apt-get", "update"}, runner.calls[0])
	require.Equal(t, "sudo", runner.calls[1][0])
	require.Contains(t, runner.calls[1], "python3-gi")
	require.Contains(t, runner.calls[1], "gir1.2-gtk-4.0")
	require.Equal(t, "python3", runner.calls[2][0])

	fi, err := os.Stat(DefaultTarget)
	require.NoError(t, err)
	require.NotZero(t, fi.Mode()&0o111, "target must be executable after a successful run")

	require.Contains(t, out.String(), "GTK 4 binding verified")
}

func TestRerunIsIdempotent(t *testing.T) {
	ins, _, _ := newTestInstaller(t)
	require.NoError(t, ins.Run(context.Background()))

	// Second pass with the executable bit already set must not fail.
	require.NoError(t, ins.Run(context.Background()))
	fi, err := os.Stat(DefaultTarget)
	require.NoError(t, err)
	require.NotZero(t, fi.Mode()&0o111)
}

func TestVerificationFailureIsHard(t *testing.T) {
	ins, runner, _ := newTestInstaller(t)
	runner.failOn = "python3"

	err := ins.Run(context.Background())
	var ve *VerificationError
	require.ErrorAs(t, err, &ve, "a failed GTK import aborts even after packages installed")
}

func TestPackageManagerFailureAborts(t *testing.T) {
	ins, runner, _ := newTestInstaller(t)
	runner.failOn = "sudo"

	err := ins.Run(context.Background())
	require.Error(t, err)
	require.Len(t, runner.calls, 1, "fail-fast: later steps must not run")
}

func TestMissingClipboardHelperIsSoft(t *testing.T) {
	ins, _, out := newTestInstaller(t)
	ins.lookPath = nonePresent

	require.NoError(t, ins.Run(context.Background()), "missing clipboard helper must not fail the run")
	require.Contains(t, out.String(), "Warning: no clipboard helper")
}
