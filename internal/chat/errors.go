package chat

import (
	"errors"
	"net/http"
)

// serviceDetail is implemented by transport errors that carry a
// service-reported status and human-readable detail (see client.APIError).
type serviceDetail interface {
	error
	HTTPStatus() int
	ServiceDetail() string
}

// conflictDetail extracts the service's explanation from a conflict-class
// (4xx) error, if err carries one.
func conflictDetail(err error) (string, bool) {
	var de serviceDetail
	if !errors.As(err, &de) {
		return "", false
	}
	if de.HTTPStatus() < http.StatusBadRequest || de.HTTPStatus() >= http.StatusInternalServerError {
		return "", false
	}
	return de.ServiceDetail(), true
}
