package errors

import "errors"

// Common errors with actionable meaning for the experiment operator.
var (
	// ErrNoPreviousSession indicates restart-from-last was requested but no
	// earlier session exists in the data folder.
	ErrNoPreviousSession = errors.New("no previous session to restart from")

	// ErrSnapshotNotFound indicates a session snapshot file is missing.
	ErrSnapshotNotFound = errors.New("session snapshot not found")

	// ErrNoRelease indicates the repository has no published release.
	ErrNoRelease = errors.New("no release published")
)
