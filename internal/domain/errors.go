package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSnapshot indicates the session has no stored order snapshot.
	// Presenters treat this as an empty state, not a failure.
	ErrNoSnapshot = errors.New("no order snapshot")
	// ErrUnauthorized indicates the session carries no valid admin credential.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrSubmitInFlight indicates a checkout submission is already running
	// for the session.
	ErrSubmitInFlight = errors.New("checkout submission in flight")
)

// RemoteError is a non-2xx backend response carrying the server's message.
// The message is surfaced to the user verbatim; the presentation layer
// decides how to render it.
type RemoteError struct {
	Status  int
	Message string
}

func (e *RemoteError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend returned status %d", e.Status)
	}
	return fmt.Sprintf("backend returned status %d: %s", e.Status, e.Message)
}

// AsRemoteError unwraps err into a RemoteError if one is in the chain.
func AsRemoteError(err error) (*RemoteError, bool) {
	var re *RemoteError
	if errors.As(err, &re) {
		return re, true
	}
	return nil, false
}
