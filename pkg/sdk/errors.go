package advisor

import (
	"errors"
	"fmt"
)

// ErrUnavailable indicates the server reported its catalog as unreachable.
var ErrUnavailable = errors.New("advisor: service unavailable")

// APIError is a structured error response from the advisor API.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("advisor: API error %d (%s): %s", e.StatusCode, e.Code, e.Message)
}

// Is lets errors.Is(err, ErrUnavailable) match 503 responses.
func (e *APIError) Is(target error) bool {
	return target == ErrUnavailable && e.StatusCode == 503
}
