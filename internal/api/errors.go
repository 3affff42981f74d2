package api

import "errors"

// ErrUnauthenticated is returned when an authenticated operation is attempted
// without a stored credential. No network call is made in that case.
var ErrUnauthenticated = errors.New("no authentication token found, please log in")

// APIError is a non-2xx gateway response carrying the server's message field.
type APIError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface, returning the server message
func (e *APIError) Error() string {
	return e.Message
}
