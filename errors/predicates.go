package errors

import (
	"errors"
	"os"
	"strings"
)

// IsNotFound checks if an error means a requested thing doesn't exist,
// whether a local file or a remote resource.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, ErrSnapshotNotFound) ||
		errors.Is(err, ErrNoRelease) ||
		errors.Is(err, os.ErrNotExist) {
		return true
	}

	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "not found") ||
		strings.Contains(errStr, "404")
}

// IsConnectionError checks if an error is connection-related. This includes
// TLS errors, timeouts, and network connectivity issues from the release
// lookup or a webhook notifier.
func IsConnectionError(err error) bool {
	if err == nil {
		return false
	}

	errStr := strings.ToLower(err.Error())
	if strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "no such host") ||
		strings.Contains(errStr, "network is unreachable") ||
		strings.Contains(errStr, "dial tcp") {
		return true
	}
	if strings.Contains(errStr, "certificate") ||
		strings.Contains(errStr, "tls") ||
		strings.Contains(errStr, "x509") {
		return true
	}
	return strings.Contains(errStr, "timeout") ||
		strings.Contains(errStr, "deadline exceeded")
}
