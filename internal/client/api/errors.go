package api

import "errors"

var (
	// ErrAuthentication means the backend rejected a login attempt.
	ErrAuthentication = errors.New("authentication failed")

	// ErrRegistration means the backend rejected a registration attempt.
	ErrRegistration = errors.New("registration failed")

	// ErrNetwork means a request could not be completed at the transport
	// level: connection failure, timeout, or an unreadable response body.
	ErrNetwork = errors.New("network error")

	// ErrDataUnavailable means a read endpoint answered with a non-success
	// envelope for optional data. Callers render an empty state instead of
	// surfacing it.
	ErrDataUnavailable = errors.New("data unavailable")
)
