package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is a non-2xx response from the backend. Message carries the
// optional {message} field of the error body.
type Error struct {
	Status  int
	Path    string
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend %s: %s (status %d)", e.Path, e.Message, e.Status)
	}
	return fmt.Sprintf("backend %s: status %d", e.Path, e.Status)
}

func AsError(err error) (*Error, bool) {
	var apiErr *Error
	ok := errors.As(err, &apiErr)
	return apiErr, ok
}

func IsUnauthorized(err error) bool {
	apiErr, ok := AsError(err)
	return ok && apiErr.Status == http.StatusUnauthorized
}

// Message extracts the most useful text for display: the server's
// message when there is one, otherwise the plain error text.
func Message(err error) string {
	if err == nil {
		return ""
	}
	if apiErr, ok := AsError(err); ok && apiErr.Message != "" {
		return apiErr.Message
	}
	return err.Error()
}
