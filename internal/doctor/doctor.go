// Package doctor runs read-only environment checks for the picker: it
// reports what the installer would find without installing anything.
package doctor

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"

	"emojipick/internal/clipboard"
	"emojipick/internal/distro"
	"emojipick/internal/emoji"
	"emojipick/internal/installer"
	"emojipick/internal/run"
)

type Status int

const (
	StatusOK Status = iota
	StatusWarn
	StatusError
)

// Result is the outcome of one check.
type Result struct {
	Name    string
	Status  Status
	Message string
	Fix     string
}

// Doctor collects check results. All host access goes through the
// injectable fields.
type Doctor struct {
	Out           io.Writer
	Runner        run.Runner
	OSReleasePath string
	Target        string

	lookPath func(string) (string, error)
	results  []Result
}

func New(out io.Writer) *Doctor {
	return &Doctor{
		Out:           out,
		Runner:        run.Quiet{},
		OSReleasePath: distro.DefaultOSReleasePath,
		Target:        installer.DefaultTarget,
		lookPath:      exec.LookPath,
	}
}

// Run executes every check and prints a summary. It returns an error
// only when at least one check failed hard.
func (d *Doctor) Run(ctx context.Context) error {
	d.checkDistribution()
	d.checkPython()
	d.checkGTKBinding(ctx)
	d.checkClipboard()
	d.checkEmojiData()
	d.checkTarget()

	errCount := d.print()
	if errCount > 0 {
		return fmt.Errorf("%d check(s) failed", errCount)
	}
	return nil
}

func (d *Doctor) add(r Result) { d.results = append(d.results, r) }

func (d *Doctor) checkDistribution() {
	r := Result{Name: "Distribution"}
	id, err := distro.Read(d.OSReleasePath)
	if err != nil {
		r.Status = StatusError
		r.Message = err.Error()
		d.add(r)
		return
	}
	m, err := distro.Load()
	if err != nil {
		r.Status = StatusError
		r.Message = err.Error()
		d.add(r)
		return
	}
	fam, err := m.Match(id.Name)
	if err != nil {
		r.Status = StatusWarn
		r.Message = fmt.Sprintf("%s %s has no package set; dependencies must be installed manually", id.Name, id.VersionID)
		d.add(r)
		return
	}
	r.Status = StatusOK
	r.Message = fmt.Sprintf("%s %s (%s family)", id.Name, id.VersionID, fam.Name)
	d.add(r)
}

func (d *Doctor) checkPython() {
	r := Result{Name: "Python"}
	path, err := d.lookPath("python3")
	if err != nil {
		r.Status = StatusError
		r.Message = "python3 not found in PATH"
		r.Fix = "install python3 via the distribution package manager"
	} else {
		r.Status = StatusOK
		r.Message = path
	}
	d.add(r)
}

func (d *Doctor) checkGTKBinding(ctx context.Context) {
	r := Result{Name: "GTK binding"}
	err := d.Runner.Run(ctx, "python3", "-c",
		`import gi; gi.require_version("Gtk", "4.0"); from gi.repository import Gtk`)
	if err != nil {
		r.Status = StatusError
		r.Message = "GTK 4 binding not importable"
		r.Fix = "run 'emojipick install'"
	} else {
		r.Status = StatusOK
		r.Message = "PyGObject imports Gtk 4.0"
	}
	d.add(r)
}

func (d *Doctor) checkClipboard() {
	r := Result{Name: "Clipboard helper"}
	if helper, ok := clipboard.Detect(d.lookPath); ok {
		r.Status = StatusOK
		r.Message = helper
	} else {
		r.Status = StatusWarn
		r.Message = "none of xclip, xsel, wl-copy found"
		r.Fix = "install xclip (X11) or wl-clipboard (Wayland)"
	}
	d.add(r)
}

func (d *Doctor) checkEmojiData() {
	r := Result{Name: "Emoji data"}
	entries, err := emoji.Load()
	switch {
	case err != nil:
		r.Status = StatusError
		r.Message = "emoji dataset unreadable: " + err.Error()
	case len(entries) == 0:
		r.Status = StatusError
		r.Message = "emoji dataset is empty"
	default:
		r.Status = StatusOK
		r.Message = fmt.Sprintf("%d emojis in %d groups", len(entries), len(emoji.Groups(entries)))
	}
	d.add(r)
}

func (d *Doctor) checkTarget() {
	r := Result{Name: "Picker script"}
	fi, err := os.Stat(d.Target)
	switch {
	case err != nil:
		r.Status = StatusWarn
		r.Message = fmt.Sprintf("%s not in the working directory", d.Target)
		r.Fix = "run 'emojipick install' from the picker checkout"
	case fi.Mode()&0o111 == 0:
		r.Status = StatusWarn
		r.Message = fmt.Sprintf("%s is not executable", d.Target)
		r.Fix = "run 'emojipick install' or chmod +x"
	default:
		r.Status = StatusOK
		r.Message = d.Target
	}
	d.add(r)
}

// print writes all results and a summary line, returning the number of
// hard failures.
func (d *Doctor) print() int {
	okCount, warnCount, errCount := 0, 0, 0
	for _, r := range d.results {
		var tag string
		switch r.Status {
		case StatusOK:
			tag = "[ok]  "
			okCount++
		case StatusWarn:
			tag = "[warn]"
			warnCount++
		case StatusError:
			tag = "[fail]"
			errCount++
		}
		fmt.Fprintf(d.Out, "%s %s: %s\n", tag, r.Name, r.Message)
		if r.Fix != "" && r.Status != StatusOK {
			fmt.Fprintf(d.Out, "       fix: %s\n", r.Fix)
		}
	}
	fmt.Fprintf(d.Out, "\n%d ok, %d warnings, %d failures\n", okCount, warnCount, errCount)
	return errCount
}
