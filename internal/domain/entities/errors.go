package entities

import (
	"errors"
	"fmt"
)

//nolint:staticcheck // operator-facing messages keep their capitalization
var (
	// ErrMissingBinary is returned when the git executable cannot be found on PATH.
	ErrMissingBinary = errors.New(
		"Missing Git binary. Make sure Git is installed on your system and is globally accessible (present in PATH).",
	)

	ErrCouldNotRegisterWebhook   = errors.New("could not register webhook")
	ErrCouldNotListWebhooks      = errors.New("could not list webhooks")
	ErrCouldNotUnregisterWebhook = errors.New("could not unregister webhook")
	ErrBadStatusCode             = errors.New("bad status code")
	ErrMalformedResponse         = errors.New("malformed response")
)

// ExecutionError reports a version control command that exited with a non-zero status.
type ExecutionError struct {
	Args   []string
	Output string
}

func (e *ExecutionError) Error() string {
	return "Error while executing git: " + e.Output
}

// IOError wraps a filesystem failure met while preparing a working copy.
type IOError struct {
	Err error
}

func (e *IOError) Error() string { return fmt.Sprintf("I/O error: %v", e.Err) }
func (e *IOError) Unwrap() error { return e.Err }

// UnsupportedRefTypeError is returned for references outside refs/branches and refs/tags.
type UnsupportedRefTypeError struct {
	Value string
}

func (e *UnsupportedRefTypeError) Error() string {
	return "Unsupported Git reference type: " + e.Value
}

// UnsupportedBackendError is returned for an unknown backend name.
type UnsupportedBackendError struct {
	Value string
}

func (e *UnsupportedBackendError) Error() string {
	return "Unsupported Git backend: " + e.Value
}

// MalformedRepositoryPathError is returned when a repository name is not "owner/name".
type MalformedRepositoryPathError struct {
	Value string
}

func (e *MalformedRepositoryPathError) Error() string {
	return "Malformed repository path: " + e.Value
}

// MissingWorkingDirectoryError is returned when the configured working directory does not exist.
type MissingWorkingDirectoryError struct {
	Path string
}

func (e *MissingWorkingDirectoryError) Error() string {
	return fmt.Sprintf("Missing working directory: '%s'. Make sure it exists on disk.", e.Path)
}
