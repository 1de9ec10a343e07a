package installer

import "fmt"

// The error taxonomy is deliberately closed: together with
// distro.DetectionError and distro.UnsupportedError these are the only
// ways an install run can fail, and all of them are fatal. The single
// non-fatal condition (no clipboard helper on PATH) is a warning, not
// an error.

// PrivilegeError means the process itself was started as root. The
// package-manager steps request elevation via sudo on their own, so a
// root invocation is refused before any side effect.
type PrivilegeError struct{}

func (*PrivilegeError) Error() string {
	return "refusing to run as root; the package-manager steps use sudo themselves"
}

// MissingTargetError means the picker script the installer prepares is
// not in the working directory.
type MissingTargetError struct {
	Path string
}

func (e *MissingTargetError) Error() string {
	return fmt.Sprintf("target %s not found in the working directory", e.Path)
}

// VerificationError means package installation reported success but the
// GTK binding import smoke test still failed. Hard failure.
type VerificationError struct {
	Err error
}

func (e *VerificationError) Error() string {
	return fmt.Sprintf("GTK binding verification failed: %v", e.Err)
}

func (e *VerificationError) Unwrap() error { return e.Err }
