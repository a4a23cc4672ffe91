package session

import (
	"strings"

	"github.com/google/uuid"
)

// CookieName is the browser cookie carrying the session identifier.
const CookieName = "chillout_session"

// NewID generates a session identifier. It is an opaque correlator
// between a browser profile and its remote cart, not an authenticated
// identity. The guest_ prefix makes that explicit in backend logs.
func NewID() string {
	return "guest_" + uuid.NewString()
}

// ValidID reports whether a cookie value looks like an identifier this
// client issued. Anything else gets replaced with a fresh one.
func ValidID(id string) bool {
	raw, ok := strings.CutPrefix(id, "guest_")
	if !ok {
		return false
	}
	_, err := uuid.Parse(raw)
	return err == nil
}
