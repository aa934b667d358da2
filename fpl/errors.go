package fpl

import (
	"errors"
	"fmt"
	"net/http"
)

// StatusError is returned when the FPL API answers with a non-2xx status.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code from fpl: %d (%s)", e.StatusCode, e.URL)
}

// IsNotFound reports whether err is an upstream 404. The API answers 404 for
// gameweeks that do not exist.
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == http.StatusNotFound
}
