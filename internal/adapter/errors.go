package adapter

import "errors"

// ErrNetwork is returned (wrapped) when the backend cannot be reached or
// answers outside the 2xx range: DNS failures, timeouts, HTTP errors. The
// only recovery path is a manual retry by the user.
var ErrNetwork = errors.New("backend unreachable")

// BackendError is an application-level failure: the backend answered but
// reported success=false. Message carries the backend's human-readable
// reason and is shown to the user as-is.
type BackendError struct {
	Message string
}

func (e *BackendError) Error() string {
	if e.Message == "" {
		return "backend reported failure"
	}
	return e.Message
}
