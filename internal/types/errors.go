package types

import "errors"

var ErrInvalidInput = errors.New("invalid input")
var ErrServerUnreachable = errors.New("can not access the server")
var ErrLocationNotFound = errors.New("no results for passed location")

// ErrorKind returns a stable machine-readable name for the search error taxonomy.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, ErrLocationNotFound):
		return "location_not_found"
	case errors.Is(err, ErrServerUnreachable):
		return "server_unreachable"
	default:
		return "unknown"
	}
}
