// Package run executes external processes on behalf of the installer
// and doctor. The Runner interface exists so tests can swap the real
// executor for a recording fake.
package run

import (
	"context"
	"io"
	"os"
	"os/exec"
)

// Runner runs one external command to completion.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) error
}

// Exec is the production Runner. Output streams are attached so the
// user sees package-manager progress (and sudo can prompt on the tty).
type Exec struct {
	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader
}

func NewExec() Exec {
	return Exec{Stdout: os.Stdout, Stderr: os.Stderr, Stdin: os.Stdin}
}

func (e Exec) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr
	cmd.Stdin = e.Stdin
	return cmd.Run()
}

// Quiet runs commands with output discarded. Used for probes whose
// only interesting result is the exit status.
type Quiet struct{}

func (Quiet) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	return cmd.Run()
}
