package upstream

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownService      = errors.New("unknown upstream service")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	ErrInvalidBody         = errors.New("invalid upstream body")
)

// StatusError is returned when a microservice answers with a non-2xx status.
// Message carries the service's own message or error text when it sent one.
type StatusError struct {
	Service Service
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s service returned status %d: %s", e.Service, e.Status, e.Message)
	}
	return fmt.Sprintf("%s service returned status %d", e.Service, e.Status)
}
