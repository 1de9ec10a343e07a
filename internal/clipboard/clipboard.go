// Package clipboard writes text to the system clipboard, preferring the
// native binding and falling back to the external helpers the desktop
// picker relies on.
package clipboard

import (
	"errors"
	"os/exec"
	"strings"

	"github.com/atotto/clipboard"
)

// Helper is one external clipboard tool, in the fixed probe order:
// xclip and xsel for X11 first, then the Wayland-native wl-copy.
type Helper struct {
	Name string
	Args []string
}

// Helpers lists the known tools in priority order.
func Helpers() []Helper {
	return []Helper{
		{Name: "xclip", Args: []string{"-selection", "clipboard"}},
		{Name: "xsel", Args: []string{"--clipboard", "--input"}},
		{Name: "wl-copy"},
	}
}

// Detect returns the first helper present on PATH. lookPath defaults to
// exec.LookPath; tests inject their own.
func Detect(lookPath func(string) (string, error)) (string, bool) {
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	for _, h := range Helpers() {
		if _, err := lookPath(h.Name); err == nil {
			return h.Name, true
		}
	}
	return "", false
}

// Copy writes text to the clipboard. The atotto binding is tried first;
// on failure each helper gets the text on stdin until one succeeds.
func Copy(text string) error {
	if err := clipboard.WriteAll(text); err == nil {
		return nil
	}
	for _, h := range Helpers() {
		cmd := exec.Command(h.Name, h.Args...)
		cmd.Stdin = strings.NewReader(text)
		if err := cmd.Run(); err == nil {
			return nil
		}
	}
	return errors.New("clipboard unavailable (tried xclip, xsel, wl-copy)")
}
