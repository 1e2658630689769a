package permission

import (
	"errors"
	"fmt"
)

// NotAccessibleError reports a path that resolved cleanly but lies outside
// every configured accessible root.
type NotAccessibleError struct {
	Path  string
	Roots []string
}

func (e *NotAccessibleError) Error() string {
	return fmt.Sprintf("operation on path %q is not allowed: not within any accessible path %v",
		e.Path, e.Roots)
}

// PathResolutionError reports a path (or its parent) that could not be
// canonicalized: missing intermediate directory, broken symlink, or a
// permission problem.
type PathResolutionError struct {
	Path string
	Err  error
}

func (e *PathResolutionError) Error() string {
	return fmt.Sprintf("failed to resolve path %q: %v", e.Path, e.Err)
}

func (e *PathResolutionError) Unwrap() error {
	return e.Err
}

// NoParentDirectoryError reports a non-existent path with no parent segment
// left to resolve.
type NoParentDirectoryError struct {
	Path string
}

func (e *NoParentDirectoryError) Error() string {
	return fmt.Sprintf("cannot check accessibility of %q: it has no parent directory", e.Path)
}

// CommandDeniedError reports a command that matched none of the configured
// prefixes.
type CommandDeniedError struct {
	Command  string
	Prefixes []string
}

func (e *CommandDeniedError) Error() string {
	return fmt.Sprintf("command %q is not allowed: it does not start with any allowed prefix %v",
		e.Command, e.Prefixes)
}

// RejectedError is returned when the user declines a confirmation request.
type RejectedError struct {
	RequestID string
	Command   string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("command %q rejected by user", e.Command)
}

// IsDenied reports whether err is a policy denial (as opposed to a
// resolution failure). Callers treat denials as "explain and skip", never
// as a reason to abort the process.
func IsDenied(err error) bool {
	var notAccessible *NotAccessibleError
	var commandDenied *CommandDeniedError
	var rejected *RejectedError
	return errors.As(err, &notAccessible) ||
		errors.As(err, &commandDenied) ||
		errors.As(err, &rejected)
}
