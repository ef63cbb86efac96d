package errors

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// ValidateNodeID checks that id has the shape of an editor-assigned node ID:
// a positive decimal integer without sign or leading zeros.
func ValidateNodeID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "node id cannot be empty")
	}
	if strings.HasPrefix(id, "0") {
		return New(ErrCodeInvalidInput, "invalid node id: %q", id)
	}
	for _, r := range id {
		if !unicode.IsDigit(r) {
			return New(ErrCodeInvalidInput, "invalid node id: %q", id)
		}
	}
	if _, err := strconv.Atoi(id); err != nil {
		return New(ErrCodeInvalidInput, "invalid node id: %q", id)
	}
	return nil
}

// ValidateSessionID checks that id is a UUID as issued by the session store.
func ValidateSessionID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "session id cannot be empty")
	}
	if _, err := uuid.Parse(id); err != nil {
		return New(ErrCodeInvalidInput, "invalid session id: %q", id)
	}
	return nil
}

// ValidateURL validates a URL string for safety.
// It ensures the URL has a safe scheme (http or https).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	// Simple scheme validation without full URL parsing
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}

	return nil
}
