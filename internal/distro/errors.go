package distro

import (
	"errors"
	"fmt"
	"strings"
)

var errMissingName = errors.New("no NAME field")

// DetectionError means the distribution identity could not be read at
// all. Fatal: without it no dispatch branch can be chosen.
type DetectionError struct {
	Path string
	Err  error
}

func (e *DetectionError) Error() string {
	return fmt.Sprintf("cannot detect distribution from %s: %v", e.Path, e.Err)
}

func (e *DetectionError) Unwrap() error { return e.Err }

// UnsupportedError means the reported distribution name matched no known
// family. It carries the package categories the user has to install by
// hand instead of this tool guessing a package manager.
type UnsupportedError struct {
	Name       string
	Categories []string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("unsupported distribution %q; install manually: %s",
		e.Name, strings.Join(e.Categories, ", "))
}
