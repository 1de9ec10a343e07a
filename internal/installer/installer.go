// Package installer prepares a host to run the Emoji Picker desktop
// app: it detects the distribution, drives its package manager, marks
// the picker script executable and smoke-tests the installed GTK
// binding. Execution is strictly sequential and fail-fast; nothing is
// rolled back and nothing is retried.
package installer

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"emojipick/internal/clipboard"
	"emojipick/internal/distro"
	"emojipick/internal/run"
)

// DefaultTarget is the picker script expected in the working directory.
const DefaultTarget = "emoji_picker.py"

// gtkImportProbe is the import-only smoke test: load the binding at the
// pinned major version, instantiate nothing.
const gtkImportProbe = `import gi; gi.require_version("Gtk", "4.0"); from gi.repository import Gtk`

// Installer runs one top-to-bottom installation pass. The process hooks
// (runner, lookPath, geteuid) are fields so tests can run the whole
// sequence without touching the host.
type Installer struct {
	Out           io.Writer
	Runner        run.Runner
	Target        string
	OSReleasePath string

	lookPath func(string) (string, error)
	geteuid  func() int
}

func New(out io.Writer) *Installer {
	return &Installer{
		Out:           out,
		Runner:        run.NewExec(),
		Target:        DefaultTarget,
		OSReleasePath: distro.DefaultOSReleasePath,
		lookPath:      exec.LookPath,
		geteuid:       os.Geteuid,
	}
}

// Run executes the install sequence. The returned error is always one
// of the closed taxonomy; the caller only needs to exit non-zero.
func (ins *Installer) Run(ctx context.Context) error {
	// Preconditions come before any side-effecting step.
	if ins.geteuid() == 0 {
		return &PrivilegeError{}
	}
	if _, err := os.Stat(ins.Target); err != nil {
		return &MissingTargetError{Path: ins.Target}
	}

	id, err := distro.Read(ins.OSReleasePath)
	if err != nil {
		return err
	}
	fmt.Fprintf(ins.Out, "Detected %s %s\n", id.Name, id.VersionID)

	m, err := distro.Load()
	if err != nil {
		return err
	}
	fam, err := m.Match(id.Name)
	if err != nil {
		ins.printUnsupported(err)
		return err
	}
	fmt.Fprintf(ins.Out, "Using the %s package set\n", fam.Name)

	for _, step := range fam.Commands(ins.lookPath) {
		fmt.Fprintf(ins.Out, "  $ %s\n", strings.Join(step, " "))
		if err := ins.Runner.Run(ctx, step[0], step[1:]...); err != nil {
			return fmt.Errorf("%s failed: %w", step[0], err)
		}
	}

	if err := ins.markExecutable(); err != nil {
		return err
	}
	fmt.Fprintf(ins.Out, "Marked %s executable\n", ins.Target)

	if err := ins.verify(ctx); err != nil {
		return err
	}
	return nil
}

// printUnsupported spells out what to install by hand when no family
// matched, before the run terminates.
func (ins *Installer) printUnsupported(err error) {
	ue, ok := err.(*distro.UnsupportedError)
	if !ok {
		return
	}
	fmt.Fprintf(ins.Out, "No package set for %q. Install these manually:\n", ue.Name)
	for _, c := range ue.Categories {
		fmt.Fprintf(ins.Out, "  - %s\n", c)
	}
}

// markExecutable sets the +x bits on the target. Idempotent: a target
// that is already executable passes unchanged.
func (ins *Installer) markExecutable() error {
	fi, err := os.Stat(ins.Target)
	if err != nil {
		return &MissingTargetError{Path: ins.Target}
	}
	mode := fi.Mode() | 0o111
	if mode == fi.Mode() {
		return nil
	}
	return os.Chmod(ins.Target, mode)
}

// verify smoke-tests the GTK binding (hard failure) and probes for a
// clipboard helper (soft failure: warn and continue).
func (ins *Installer) verify(ctx context.Context) error {
	if err := ins.Runner.Run(ctx, "python3", "-c", gtkImportProbe); err != nil {
		return &VerificationError{Err: err}
	}
	fmt.Fprintln(ins.Out, "GTK 4 binding verified")

	if helper, ok := clipboard.Detect(ins.lookPath); ok {
		fmt.Fprintf(ins.Out, "Clipboard helper: %s\n", helper)
	} else {
		fmt.Fprintln(ins.Out, "Warning: no clipboard helper found (xclip, xsel or wl-copy); copying will not work until one is installed")
	}
	return nil
}
